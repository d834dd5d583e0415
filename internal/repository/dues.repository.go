package repository

import (
	"context"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
)

type DuesRepository struct {
	*sqlite.DB
	now Clock
}

func NewDuesRepository(db *sqlite.DB) *DuesRepository {
	return &DuesRepository{
		DB:  db,
		now: systemClock,
	}
}

func (r *DuesRepository) WithClock(c Clock) *DuesRepository {
	r.now = c
	return r
}

// Register stores a dues payment and marks the member current with the
// payment date as last payment. Both writes commit together or not at all.
func (r *DuesRepository) Register(ctx context.Context, p *model.DuesPayment) (*model.DuesPayment, error) {
	if p.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if p.Month < 1 || p.Month > 12 {
		return nil, ErrInvalidPeriod
	}

	entity := toDuesEntity(p)
	entity.ID = 0
	if entity.PaymentDate == "" {
		entity.PaymentDate = model.FormatDate(r.now())
	}

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		var exists int64
		err := r.Read(ctx).
			Model(&MemberEntity{}).
			Where("id = ?", entity.MemberID).
			Count(&exists).
			Error
		if err != nil {
			return storageError("check member", err)
		}
		if exists == 0 {
			return ErrMemberNotFound
		}

		if err = r.Write(ctx).Create(entity).Error; err != nil {
			if isDuplicate(err) {
				return ErrDuplicateDuesPeriod
			}
			if isForeignKeyViolation(err) {
				return ErrMemberNotFound
			}
			return storageError("create dues payment", err)
		}

		err = r.Write(ctx).
			Model(&MemberEntity{}).
			Where("id = ?", entity.MemberID).
			Updates(map[string]any{
				"payment_status":    string(model.PaymentStatusCurrent),
				"last_payment_date": entity.PaymentDate,
			}).
			Error
		if err != nil {
			return storageError("update member payment status", err)
		}
		return nil
	})
	if err != nil {
		return nil, storageError("register dues", err)
	}

	return toDuesModel(entity), nil
}

// ListByMember returns the member's payments, most recent period first.
func (r *DuesRepository) ListByMember(ctx context.Context, memberID int64) ([]*model.DuesPayment, error) {
	var entities []*DuesEntity
	err := r.Read(ctx).
		Where("member_id = ?", memberID).
		Order("year DESC, month DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, storageError("list dues", err)
	}
	return toDuesModels(entities), nil
}

// ListByPeriod returns every payment registered for month/year.
func (r *DuesRepository) ListByPeriod(ctx context.Context, month int, year int) ([]*model.DuesPayment, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	var entities []*DuesEntity
	err := r.Read(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("payment_date ASC, id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, storageError("list dues by period", err)
	}
	return toDuesModels(entities), nil
}
