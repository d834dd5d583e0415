package services

import (
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/nimasrn/clubhouse/pkg/prom"
)

type MemberRepository interface {
	Create(ctx context.Context, m *model.Member) (*model.Member, error)
	List(ctx context.Context, activeOnly bool) ([]*model.Member, error)
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	FindByNationalID(ctx context.Context, nationalID string) (*model.Member, error)
	Update(ctx context.Context, id int64, u model.MemberUpdate) (*model.Member, error)
	SetPaymentStatus(ctx context.Context, id int64, status model.PaymentStatus, lastPayment *time.Time) error
	Deactivate(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (model.MemberCounts, error)
	MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error)
}

type MemberService struct {
	repo MemberRepository
	club config.ClubSettings
}

func NewMemberService(repo MemberRepository, club config.ClubSettings) *MemberService {
	return &MemberService{
		repo: repo,
		club: club,
	}
}

func (s *MemberService) Create(ctx context.Context, p model.MemberCreateRequest) (m *model.Member, err error) {
	defer func(start time.Time) { observe(entityMember, "create", start, err) }(time.Now())

	p.FirstName = cleanText(p.FirstName)
	p.LastName = cleanText(p.LastName)
	p.Category = cleanText(p.Category)
	if err = invalidRequest(p.Validate()); err != nil {
		return nil, err
	}
	if err = s.validateContact(p.NationalID, p.Email, p.Phone, p.Category); err != nil {
		return nil, err
	}

	member := &model.Member{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		NationalID: NormalizeNationalID(p.NationalID),
		BirthDate:  p.BirthDate,
		Phone:      cleanText(p.Phone),
		Email:      cleanText(p.Email),
		Address:    cleanText(p.Address),
		Category:   p.Category,
		Notes:      p.Notes,
	}
	// zero enrollment date lets the store default it to today
	if p.EnrollmentDate != nil {
		member.EnrollmentDate = *p.EnrollmentDate
	}

	m, err = s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	logger.Info("member created", "id", m.ID, "name", m.FullName())
	return m, nil
}

func (s *MemberService) List(ctx context.Context, activeOnly bool) (list []*model.Member, err error) {
	defer func(start time.Time) { observe(entityMember, "list", start, err) }(time.Now())
	return s.repo.List(ctx, activeOnly)
}

func (s *MemberService) Get(ctx context.Context, id int64) (m *model.Member, err error) {
	defer func(start time.Time) { observe(entityMember, "get", start, err) }(time.Now())
	return s.repo.GetByID(ctx, id)
}

// FindByNationalID accepts the id with or without separators. It returns
// (nil, nil) when no member has it.
func (s *MemberService) FindByNationalID(ctx context.Context, nationalID string) (m *model.Member, err error) {
	defer func(start time.Time) { observe(entityMember, "find", start, err) }(time.Now())
	if !ValidNationalID(nationalID) {
		return nil, invalid("national_id", "must have 7 or 8 digits")
	}
	return s.repo.FindByNationalID(ctx, NormalizeNationalID(nationalID))
}

func (s *MemberService) Update(ctx context.Context, id int64, u model.MemberUpdate) (m *model.Member, err error) {
	defer func(start time.Time) { observe(entityMember, "update", start, err) }(time.Now())

	u.FirstName = cleanText(u.FirstName)
	u.LastName = cleanText(u.LastName)
	u.Category = cleanText(u.Category)
	u.Phone = cleanText(u.Phone)
	u.Email = cleanText(u.Email)
	u.Address = cleanText(u.Address)
	if err = invalidRequest(u.Validate()); err != nil {
		return nil, err
	}
	if u.NationalID != "" {
		if !ValidNationalID(u.NationalID) {
			return nil, invalid("national_id", "must have 7 or 8 digits")
		}
		u.NationalID = NormalizeNationalID(u.NationalID)
	}
	if err = s.validateContact("", u.Email, u.Phone, u.Category); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, u)
}

func (s *MemberService) SetPaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (err error) {
	defer func(start time.Time) { observe(entityMember, "set_status", start, err) }(time.Now())
	return s.repo.SetPaymentStatus(ctx, id, status, nil)
}

func (s *MemberService) Deactivate(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { observe(entityMember, "deactivate", start, err) }(time.Now())
	if err = s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	logger.Info("member deactivated", "id", id)
	return nil
}

func (s *MemberService) Reactivate(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { observe(entityMember, "reactivate", start, err) }(time.Now())
	if err = s.repo.Reactivate(ctx, id); err != nil {
		return err
	}
	logger.Info("member reactivated", "id", id)
	return nil
}

func (s *MemberService) Counts(ctx context.Context) (counts model.MemberCounts, err error) {
	defer func(start time.Time) { observe(entityMember, "count", start, err) }(time.Now())
	counts, err = s.repo.CountByStatus(ctx)
	if err != nil {
		return counts, err
	}
	prom.SetMembersByStatus(string(model.PaymentStatusCurrent), counts.Current)
	prom.SetMembersByStatus(string(model.PaymentStatusOverdue), counts.Overdue)
	prom.SetMembersByStatus(string(model.PaymentStatusExempt), counts.Exempt)
	return counts, nil
}

// SweepOverdue marks as overdue the current members whose last payment is
// older than the configured grace period.
func (s *MemberService) SweepOverdue(ctx context.Context, now time.Time) (n int64, err error) {
	defer func(start time.Time) { observe(entityMember, "sweep", start, err) }(time.Now())
	cutoff := model.Day(now).AddDate(0, 0, -s.club.OverdueGraceDays)
	n, err = s.repo.MarkOverdue(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logger.Info("overdue sweep finished", "cutoff", model.FormatDate(cutoff), "marked", n)
	return n, nil
}

func (s *MemberService) validateContact(nationalID, email, phone, category string) error {
	if nationalID != "" && !ValidNationalID(nationalID) {
		return invalid("national_id", "must have 7 or 8 digits")
	}
	if !ValidEmail(email) {
		return invalid("email", "invalid format")
	}
	if !ValidPhone(phone) {
		return invalid("phone", "must have 10 to 13 digits")
	}
	if len(s.club.MemberCategories) > 0 && !config.HasCategory(s.club.MemberCategories, category) {
		return invalid("category", "unknown category "+category)
	}
	return nil
}
