package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/prom"
)

type MemberCounter interface {
	CountByStatus(ctx context.Context) (model.MemberCounts, error)
}

type BalanceReader interface {
	GetBalance(ctx context.Context) (model.Balance, error)
}

type SponsorLister interface {
	ListActive(ctx context.Context) ([]*model.Sponsor, error)
	ListExpiringWithin(ctx context.Context, days int) ([]*model.Sponsor, error)
}

// DashboardService derives the summary figures from the store on every
// call. Nothing is cached.
type DashboardService struct {
	members  MemberCounter
	balance  BalanceReader
	sponsors SponsorLister
	club     config.ClubSettings
	clock    func() time.Time
}

func NewDashboardService(members MemberCounter, balance BalanceReader, sponsors SponsorLister, club config.ClubSettings) *DashboardService {
	return &DashboardService{
		members:  members,
		balance:  balance,
		sponsors: sponsors,
		club:     club,
		clock:    time.Now,
	}
}

func (s *DashboardService) WithClock(c func() time.Time) *DashboardService {
	s.clock = c
	return s
}

func (s *DashboardService) Summary(ctx context.Context) (summary *model.Summary, err error) {
	defer func(start time.Time) { observe(entityDashboard, "summary", start, err) }(time.Now())

	balance, err := s.balance.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	counts, err := s.members.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("member counts: %w", err)
	}
	active, err := s.sponsors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("active sponsors: %w", err)
	}
	expiring, err := s.sponsors.ListExpiringWithin(ctx, s.club.SponsorAlertDays)
	if err != nil {
		return nil, fmt.Errorf("expiring sponsors: %w", err)
	}

	prom.SetMembersByStatus(string(model.PaymentStatusCurrent), counts.Current)
	prom.SetMembersByStatus(string(model.PaymentStatusOverdue), counts.Overdue)
	prom.SetMembersByStatus(string(model.PaymentStatusExempt), counts.Exempt)

	return &model.Summary{
		Balance:          balance,
		Members:          counts,
		ActiveSponsors:   len(active),
		ExpiringSponsors: expiring,
		Alerts:           s.alerts(balance, counts, expiring),
	}, nil
}

func (s *DashboardService) alerts(balance model.Balance, counts model.MemberCounts, expiring []*model.Sponsor) []string {
	var alerts []string
	if counts.Overdue > 0 {
		alerts = append(alerts, fmt.Sprintf("%d member(s) with overdue dues", counts.Overdue))
	}
	today := model.Day(s.clock())
	for _, sp := range expiring {
		days := int(model.Day(sp.ExpirationDate).Sub(today).Hours() / 24)
		alerts = append(alerts, fmt.Sprintf("sponsor %s contract expires on %s (%d days)",
			sp.CompanyName, model.FormatDate(sp.ExpirationDate), days))
	}
	if balance.Balance < 0 {
		alerts = append(alerts, fmt.Sprintf("negative balance: %.2f", balance.Balance))
	}
	return alerts
}
