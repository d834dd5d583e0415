package services

import (
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/logger"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context, from, to time.Time) ([]*model.Transaction, error)
	Delete(ctx context.Context, id int64) error
	GetBalance(ctx context.Context) (model.Balance, error)
	GetPeriodBalance(ctx context.Context, from, to time.Time) (model.Balance, error)
}

type FinanceService struct {
	repo TransactionRepository
	club config.ClubSettings
}

func NewFinanceService(repo TransactionRepository, club config.ClubSettings) *FinanceService {
	return &FinanceService{
		repo: repo,
		club: club,
	}
}

func (s *FinanceService) Record(ctx context.Context, p model.TransactionCreateRequest) (txn *model.Transaction, err error) {
	defer func(start time.Time) { observe(entityTransaction, "create", start, err) }(time.Now())

	p.Category = cleanText(p.Category)
	p.Description = cleanText(p.Description)
	if err = invalidRequest(p.Validate()); err != nil {
		return nil, err
	}
	if categories := s.categories(p.Type); len(categories) > 0 && !config.HasCategory(categories, p.Category) {
		return nil, invalid("category", "unknown "+string(p.Type)+" category "+p.Category)
	}

	t := &model.Transaction{
		Type:             p.Type,
		Category:         p.Category,
		Description:      p.Description,
		Amount:           p.Amount,
		PaymentMethod:    p.PaymentMethod,
		Voucher:          p.Voucher,
		ResponsibleParty: p.ResponsibleParty,
		Notes:            p.Notes,
	}
	if p.Date != nil {
		t.Date = *p.Date
	}

	txn, err = s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	logger.Info("transaction recorded", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	return txn, nil
}

// List returns the transactions dated within [from, to], newest first.
func (s *FinanceService) List(ctx context.Context, from, to time.Time) (list []*model.Transaction, err error) {
	defer func(start time.Time) { observe(entityTransaction, "list", start, err) }(time.Now())
	if err = checkRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, from, to)
}

func (s *FinanceService) Delete(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { observe(entityTransaction, "delete", start, err) }(time.Now())
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("transaction deleted", "id", id)
	return nil
}

func (s *FinanceService) Balance(ctx context.Context) (b model.Balance, err error) {
	defer func(start time.Time) { observe(entityTransaction, "balance", start, err) }(time.Now())
	return s.repo.GetBalance(ctx)
}

func (s *FinanceService) PeriodBalance(ctx context.Context, from, to time.Time) (b model.Balance, err error) {
	defer func(start time.Time) { observe(entityTransaction, "period_balance", start, err) }(time.Now())
	if err = checkRange(from, to); err != nil {
		return b, err
	}
	return s.repo.GetPeriodBalance(ctx, from, to)
}

func (s *FinanceService) categories(t model.TransactionType) []string {
	if t == model.TransactionExpense {
		return s.club.ExpenseCategories
	}
	return s.club.IncomeCategories
}

func checkRange(from, to time.Time) error {
	if model.Day(to).Before(model.Day(from)) {
		return invalid("to", "end date is before start date")
	}
	return nil
}
