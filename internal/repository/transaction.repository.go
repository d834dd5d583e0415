package repository

import (
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
)

type TransactionRepository struct {
	*sqlite.DB
	now Clock
}

func NewTransactionRepository(db *sqlite.DB) *TransactionRepository {
	return &TransactionRepository{
		DB:  db,
		now: systemClock,
	}
}

func (r *TransactionRepository) WithClock(c Clock) *TransactionRepository {
	r.now = c
	return r
}

func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	if !txn.Type.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if txn.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	entity := toTransactionEntity(txn)
	entity.ID = 0
	if entity.Date == "" {
		entity.Date = model.FormatDate(r.now())
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, storageError("create transaction", err)
	}

	return toTransactionModel(entity), nil
}

// List returns the transactions dated within [from, to], newest first.
func (r *TransactionRepository) List(ctx context.Context, from, to time.Time) ([]*model.Transaction, error) {
	var entities []*TransactionEntity
	err := r.Read(ctx).
		Where("date BETWEEN ? AND ?", model.FormatDate(from), model.FormatDate(to)).
		Order("date DESC, id DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, storageError("list transactions", err)
	}
	return toTransactionModels(entities), nil
}

// Delete removes a ledger entry. Nothing references transactions, so the
// delete is physical.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&TransactionEntity{})
	if result.Error != nil {
		return storageError("delete transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

type totals struct {
	Income  float64
	Expense float64
}

const totalsSelect = `
    COALESCE(SUM(CASE WHEN type = 'income'  THEN amount END), 0.0) AS income,
    COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0.0) AS expense`

// GetBalance aggregates every transaction ever recorded.
func (r *TransactionRepository) GetBalance(ctx context.Context) (model.Balance, error) {
	var t totals
	err := r.Read(ctx).
		Model(&TransactionEntity{}).
		Select(totalsSelect).
		Scan(&t).
		Error
	if err != nil {
		return model.Balance{}, storageError("balance", err)
	}
	return toBalance(t), nil
}

// GetPeriodBalance aggregates the transactions dated within [from, to].
func (r *TransactionRepository) GetPeriodBalance(ctx context.Context, from, to time.Time) (model.Balance, error) {
	var t totals
	err := r.Read(ctx).
		Model(&TransactionEntity{}).
		Select(totalsSelect).
		Where("date BETWEEN ? AND ?", model.FormatDate(from), model.FormatDate(to)).
		Scan(&t).
		Error
	if err != nil {
		return model.Balance{}, storageError("period balance", err)
	}
	return toBalance(t), nil
}

func toBalance(t totals) model.Balance {
	return model.Balance{
		Income:  t.Income,
		Expense: t.Expense,
		Balance: t.Income - t.Expense,
	}
}
