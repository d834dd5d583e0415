package services

import (
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/logger"
)

type SponsorRepository interface {
	Create(ctx context.Context, s *model.Sponsor) (*model.Sponsor, error)
	GetByID(ctx context.Context, id int64) (*model.Sponsor, error)
	Update(ctx context.Context, id int64, u model.SponsorUpdate) (*model.Sponsor, error)
	Delete(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]*model.Sponsor, error)
	ListExpiringWithin(ctx context.Context, days int) ([]*model.Sponsor, error)
}

type SponsorService struct {
	repo SponsorRepository
	club config.ClubSettings
}

func NewSponsorService(repo SponsorRepository, club config.ClubSettings) *SponsorService {
	return &SponsorService{
		repo: repo,
		club: club,
	}
}

func (s *SponsorService) Create(ctx context.Context, p model.SponsorCreateRequest) (sp *model.Sponsor, err error) {
	defer func(start time.Time) { observe(entitySponsor, "create", start, err) }(time.Now())

	p.CompanyName = cleanText(p.CompanyName)
	if err = invalidRequest(p.Validate()); err != nil {
		return nil, err
	}
	if err = validateSponsorContact(p.Email, p.Phone); err != nil {
		return nil, err
	}

	sp, err = s.repo.Create(ctx, &model.Sponsor{
		CompanyName:     p.CompanyName,
		ContactName:     cleanText(p.ContactName),
		Phone:           cleanText(p.Phone),
		Email:           cleanText(p.Email),
		Address:         cleanText(p.Address),
		ContractAmount:  p.ContractAmount,
		StartDate:       model.Day(p.StartDate),
		ExpirationDate:  model.Day(p.ExpirationDate),
		SponsorshipType: cleanText(p.SponsorshipType),
		Notes:           p.Notes,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("sponsor created", "id", sp.ID, "company", sp.CompanyName)
	return sp, nil
}

func (s *SponsorService) Get(ctx context.Context, id int64) (sp *model.Sponsor, err error) {
	defer func(start time.Time) { observe(entitySponsor, "get", start, err) }(time.Now())
	return s.repo.GetByID(ctx, id)
}

func (s *SponsorService) Update(ctx context.Context, id int64, u model.SponsorUpdate) (sp *model.Sponsor, err error) {
	defer func(start time.Time) { observe(entitySponsor, "update", start, err) }(time.Now())

	u.CompanyName = cleanText(u.CompanyName)
	u.Status = cleanText(u.Status)
	if err = invalidRequest(u.Validate()); err != nil {
		return nil, err
	}
	if err = validateSponsorContact(u.Email, u.Phone); err != nil {
		return nil, err
	}
	u.StartDate = model.Day(u.StartDate)
	u.ExpirationDate = model.Day(u.ExpirationDate)
	return s.repo.Update(ctx, id, u)
}

func (s *SponsorService) Delete(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { observe(entitySponsor, "delete", start, err) }(time.Now())
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("sponsor deleted", "id", id)
	return nil
}

func (s *SponsorService) ListActive(ctx context.Context) (list []*model.Sponsor, err error) {
	defer func(start time.Time) { observe(entitySponsor, "list_active", start, err) }(time.Now())
	return s.repo.ListActive(ctx)
}

// Expiring lists active sponsors whose contract ends within days from
// today. A negative days falls back to the configured alert window.
func (s *SponsorService) Expiring(ctx context.Context, days int) (list []*model.Sponsor, err error) {
	defer func(start time.Time) { observe(entitySponsor, "list_expiring", start, err) }(time.Now())
	if days < 0 {
		days = s.club.SponsorAlertDays
	}
	return s.repo.ListExpiringWithin(ctx, days)
}

func validateSponsorContact(email, phone string) error {
	if !ValidEmail(email) {
		return invalid("email", "invalid format")
	}
	if !ValidPhone(phone) {
		return invalid("phone", "must have 10 to 13 digits")
	}
	return nil
}
