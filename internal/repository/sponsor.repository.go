package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
	"gorm.io/gorm"
)

type SponsorRepository struct {
	*sqlite.DB
	now Clock
}

func NewSponsorRepository(db *sqlite.DB) *SponsorRepository {
	return &SponsorRepository{
		DB:  db,
		now: systemClock,
	}
}

func (r *SponsorRepository) WithClock(c Clock) *SponsorRepository {
	r.now = c
	return r
}

func (r *SponsorRepository) Create(ctx context.Context, s *model.Sponsor) (*model.Sponsor, error) {
	entity := toSponsorEntity(s)
	entity.ID = 0
	if entity.Status == "" {
		entity.Status = model.SponsorStatusActive
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, storageError("create sponsor", err)
	}
	return toSponsorModel(entity), nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id int64) (*model.Sponsor, error) {
	var entity SponsorEntity
	err := r.Read(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, storageError("get sponsor", err)
	}
	return toSponsorModel(&entity), nil
}

// Update replaces the editable fields. Status is stored as given; no
// transition rules apply.
func (r *SponsorRepository) Update(ctx context.Context, id int64, u model.SponsorUpdate) (*model.Sponsor, error) {
	result := r.Write(ctx).
		Model(&SponsorEntity{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"company_name":     u.CompanyName,
			"contact_name":     u.ContactName,
			"phone":            u.Phone,
			"email":            u.Email,
			"address":          u.Address,
			"contract_amount":  u.ContractAmount,
			"start_date":       model.FormatDate(u.StartDate),
			"expiration_date":  model.FormatDate(u.ExpirationDate),
			"status":           u.Status,
			"sponsorship_type": u.SponsorshipType,
			"notes":            u.Notes,
			"updated_at":       r.now(),
		})
	if result.Error != nil {
		return nil, storageError("update sponsor", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSponsorNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SponsorRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&SponsorEntity{})
	if result.Error != nil {
		return storageError("delete sponsor", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSponsorNotFound
	}
	return nil
}

// ListActive returns sponsors with status active ordered by company name.
func (r *SponsorRepository) ListActive(ctx context.Context) ([]*model.Sponsor, error) {
	var entities []*SponsorEntity
	err := r.Read(ctx).
		Where("status = ?", model.SponsorStatusActive).
		Order("company_name ASC, id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, storageError("list sponsors", err)
	}
	return toSponsorModels(entities), nil
}

// ListExpiringWithin returns active sponsors whose contract expires between
// today and today+days, both inclusive, soonest first.
func (r *SponsorRepository) ListExpiringWithin(ctx context.Context, days int) ([]*model.Sponsor, error) {
	if days < 0 {
		return []*model.Sponsor{}, nil
	}
	today := model.Day(r.now())
	until := today.AddDate(0, 0, days)

	var entities []*SponsorEntity
	err := r.Read(ctx).
		Where("status = ?", model.SponsorStatusActive).
		Where("expiration_date BETWEEN ? AND ?", model.FormatDate(today), model.FormatDate(until)).
		Order("expiration_date ASC, id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, storageError("list expiring sponsors", err)
	}
	return toSponsorModels(entities), nil
}
