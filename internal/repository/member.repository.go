package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
	"gorm.io/gorm"
)

type MemberRepository struct {
	*sqlite.DB
	now Clock
}

func NewMemberRepository(db *sqlite.DB) *MemberRepository {
	return &MemberRepository{
		DB:  db,
		now: systemClock,
	}
}

func (r *MemberRepository) WithClock(c Clock) *MemberRepository {
	r.now = c
	return r
}

// Create registers a member. The national id is unique across active and
// inactive members alike.
func (r *MemberRepository) Create(ctx context.Context, m *model.Member) (*model.Member, error) {
	entity := toMemberEntity(m)
	entity.ID = 0
	entity.Active = true
	if entity.EnrollmentDate == "" {
		entity.EnrollmentDate = model.FormatDate(r.now())
	}
	if entity.PaymentStatus == "" {
		entity.PaymentStatus = string(model.PaymentStatusCurrent)
	}
	if !model.PaymentStatus(entity.PaymentStatus).Valid() {
		return nil, ErrInvalidPaymentStatus
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateNationalID
		}
		return nil, storageError("create member", err)
	}

	return toMemberModel(entity), nil
}

// List returns members ordered by last name then first name.
func (r *MemberRepository) List(ctx context.Context, activeOnly bool) ([]*model.Member, error) {
	q := r.Read(ctx).Model(&MemberEntity{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var entities []*MemberEntity
	if err := q.Order("last_name ASC, first_name ASC, id ASC").Find(&entities).Error; err != nil {
		return nil, storageError("list members", err)
	}
	return toMemberModels(entities), nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	entity, err := r.first(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMemberModel(entity), nil
}

// FindByNationalID returns (nil, nil) when no member has that id.
func (r *MemberRepository) FindByNationalID(ctx context.Context, nationalID string) (*model.Member, error) {
	var entity MemberEntity
	err := r.Read(ctx).
		Where("national_id = ?", nationalID).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("find member", err)
	}
	return toMemberModel(&entity), nil
}

// Update applies the editable fields. The national id is fixed at
// registration; a request carrying a different one is rejected.
func (r *MemberRepository) Update(ctx context.Context, id int64, u model.MemberUpdate) (*model.Member, error) {
	var updated *model.Member
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := r.first(ctx, id)
		if err != nil {
			return err
		}
		if u.NationalID != "" && u.NationalID != current.NationalID {
			return ErrNationalIDImmutable
		}

		err = r.Write(ctx).
			Model(&MemberEntity{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"first_name": u.FirstName,
				"last_name":  u.LastName,
				"birth_date": model.FormatDatePtr(u.BirthDate),
				"phone":      u.Phone,
				"email":      u.Email,
				"address":    u.Address,
				"category":   u.Category,
				"notes":      u.Notes,
				"updated_at": r.now(),
			}).
			Error
		if err != nil {
			return storageError("update member", err)
		}

		entity, err := r.first(ctx, id)
		if err != nil {
			return err
		}
		updated = toMemberModel(entity)
		return nil
	})
	if err != nil {
		return nil, storageError("update member", err)
	}
	return updated, nil
}

// SetPaymentStatus changes the dues standing and, when given, the date of
// the last payment.
func (r *MemberRepository) SetPaymentStatus(ctx context.Context, id int64, status model.PaymentStatus, lastPayment *time.Time) error {
	if !status.Valid() {
		return ErrInvalidPaymentStatus
	}

	values := map[string]any{"payment_status": string(status), "updated_at": r.now()}
	if lastPayment != nil {
		values["last_payment_date"] = model.FormatDate(*lastPayment)
	}

	result := r.Write(ctx).
		Model(&MemberEntity{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return storageError("set payment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// Deactivate is the member soft delete. Dues history stays untouched.
func (r *MemberRepository) Deactivate(ctx context.Context, id int64) error {
	return r.setActive(ctx, id, false)
}

func (r *MemberRepository) Reactivate(ctx context.Context, id int64) error {
	return r.setActive(ctx, id, true)
}

func (r *MemberRepository) setActive(ctx context.Context, id int64, active bool) error {
	result := r.Write(ctx).
		Model(&MemberEntity{}).
		Where("id = ?", id).
		Updates(map[string]any{"active": active, "updated_at": r.now()})
	if result.Error != nil {
		return storageError("set member active", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

type statusCount struct {
	PaymentStatus string
	Count         int64
}

// CountByStatus partitions the active roster by payment status.
func (r *MemberRepository) CountByStatus(ctx context.Context) (model.MemberCounts, error) {
	var rows []statusCount
	err := r.Read(ctx).
		Model(&MemberEntity{}).
		Select("payment_status, COUNT(*) AS count").
		Where("active = ?", true).
		Group("payment_status").
		Scan(&rows).
		Error
	if err != nil {
		return model.MemberCounts{}, storageError("count members", err)
	}

	var counts model.MemberCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch model.PaymentStatus(row.PaymentStatus) {
		case model.PaymentStatusCurrent:
			counts.Current = row.Count
		case model.PaymentStatusOverdue:
			counts.Overdue = row.Count
		case model.PaymentStatusExempt:
			counts.Exempt = row.Count
		}
	}
	return counts, nil
}

// MarkOverdue moves active members that are current but have not paid since
// cutoff to overdue. Members who never paid are measured from enrollment.
// Exempt members are never touched.
func (r *MemberRepository) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.Write(ctx).
		Model(&MemberEntity{}).
		Where("active = ? AND payment_status = ?", true, string(model.PaymentStatusCurrent)).
		Where("COALESCE(last_payment_date, enrollment_date) < ?", model.FormatDate(cutoff)).
		Updates(map[string]any{"payment_status": string(model.PaymentStatusOverdue), "updated_at": r.now()})
	if result.Error != nil {
		return 0, storageError("mark overdue", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MemberRepository) first(ctx context.Context, id int64) (*MemberEntity, error) {
	var entity MemberEntity
	err := r.Read(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, storageError("get member", err)
	}
	return &entity, nil
}
