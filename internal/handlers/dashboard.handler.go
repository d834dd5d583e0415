package handlers

import (
	"context"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type DashboardService interface {
	Summary(ctx context.Context) (*model.Summary, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func RegisterDashboardCommands(g *cli.Group, h *DashboardHandler) {
	g.Handle("", "balance, member counts, sponsors and alerts", h.Summary)
}

func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: dashboardService,
	}
}

func (h *DashboardHandler) Summary(c *cli.Context) error {
	if err := parse(c, c.Flags()); err != nil {
		return err
	}
	s, err := h.svc.Summary(c)
	if err != nil {
		return err
	}
	if s.ExpiringSponsors == nil {
		s.ExpiringSponsors = []*model.Sponsor{}
	}
	if s.Alerts == nil {
		s.Alerts = []string{}
	}
	return c.JSON(s)
}
