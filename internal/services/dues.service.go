package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/logger"
)

type DuesRepository interface {
	Register(ctx context.Context, p *model.DuesPayment) (*model.DuesPayment, error)
	ListByMember(ctx context.Context, memberID int64) ([]*model.DuesPayment, error)
	ListByPeriod(ctx context.Context, month int, year int) ([]*model.DuesPayment, error)
}

type MemberReader interface {
	GetByID(ctx context.Context, id int64) (*model.Member, error)
}

type TransactionWriter interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
}

// Transactor runs fn in one storage transaction carried by ctx.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DuesService struct {
	tx      Transactor
	dues    DuesRepository
	members MemberReader
	txns    TransactionWriter
	clock   func() time.Time
}

func NewDuesService(tx Transactor, dues DuesRepository, members MemberReader, txns TransactionWriter) *DuesService {
	return &DuesService{
		tx:      tx,
		dues:    dues,
		members: members,
		txns:    txns,
		clock:   time.Now,
	}
}

func (s *DuesService) WithClock(c func() time.Time) *DuesService {
	s.clock = c
	return s
}

// Collect registers a dues payment together with the matching income
// transaction. Either both are stored or neither is.
func (s *DuesService) Collect(ctx context.Context, p model.DuesCreateRequest) (receipt *model.DuesReceipt, err error) {
	defer func(start time.Time) { observe(entityDues, "collect", start, err) }(time.Now())

	if err = invalidRequest(p.Validate()); err != nil {
		return nil, err
	}
	paidOn := model.Day(s.clock())
	if p.PaymentDate != nil {
		paidOn = model.Day(*p.PaymentDate)
	}
	p.ReceiptNumber = strings.TrimSpace(p.ReceiptNumber)
	if p.ReceiptNumber == "" {
		p.ReceiptNumber = newReceiptNumber()
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		member, err := s.members.GetByID(ctx, p.MemberID)
		if err != nil {
			return err
		}

		payment, err := s.dues.Register(ctx, &model.DuesPayment{
			MemberID:      p.MemberID,
			Month:         p.Month,
			Year:          p.Year,
			Amount:        p.Amount,
			PaymentDate:   paidOn,
			PaymentMethod: p.PaymentMethod,
			ReceiptNumber: p.ReceiptNumber,
			Notes:         p.Notes,
		})
		if err != nil {
			return err
		}

		txn, err := s.txns.Create(ctx, &model.Transaction{
			Type:          model.TransactionIncome,
			Category:      model.DuesCategory,
			Description:   DuesDescription(payment, member),
			Amount:        payment.Amount,
			Date:          payment.PaymentDate,
			PaymentMethod: payment.PaymentMethod,
			Voucher:       payment.ReceiptNumber,
			Notes:         payment.Notes,
		})
		if err != nil {
			return fmt.Errorf("record dues income: %w", err)
		}

		member.PaymentStatus = model.PaymentStatusCurrent
		member.LastPaymentDate = &payment.PaymentDate
		receipt = &model.DuesReceipt{
			Payment:     payment,
			Transaction: txn,
			Member:      member,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("dues collected",
		"member_id", p.MemberID,
		"period", receipt.Payment.Period(),
		"amount", receipt.Payment.Amount,
		"receipt", receipt.Payment.ReceiptNumber,
	)
	return receipt, nil
}

// History lists a member's payments, most recent period first.
func (s *DuesService) History(ctx context.Context, memberID int64) (list []*model.DuesPayment, err error) {
	defer func(start time.Time) { observe(entityDues, "history", start, err) }(time.Now())
	return s.dues.ListByMember(ctx, memberID)
}

func (s *DuesService) Period(ctx context.Context, month, year int) (list []*model.DuesPayment, err error) {
	defer func(start time.Time) { observe(entityDues, "period", start, err) }(time.Now())
	if month < 1 || month > 12 {
		return nil, invalid("month", "must be between 1 and 12")
	}
	return s.dues.ListByPeriod(ctx, month, year)
}

// DuesDescription is the income transaction text for a dues payment,
// e.g. "Dues 03/2025 - Gomez, Ana".
func DuesDescription(p *model.DuesPayment, m *model.Member) string {
	return fmt.Sprintf("Dues %s - %s", p.Period(), m.FullName())
}

func newReceiptNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "R-" + strings.ToUpper(id[:10])
}
