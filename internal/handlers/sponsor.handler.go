package handlers

import (
	"context"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type SponsorService interface {
	Create(ctx context.Context, p model.SponsorCreateRequest) (*model.Sponsor, error)
	Get(ctx context.Context, id int64) (*model.Sponsor, error)
	Update(ctx context.Context, id int64, u model.SponsorUpdate) (*model.Sponsor, error)
	Delete(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]*model.Sponsor, error)
	Expiring(ctx context.Context, days int) ([]*model.Sponsor, error)
}

type SponsorHandler struct {
	svc SponsorService
}

func RegisterSponsorCommands(g *cli.Group, h *SponsorHandler) {
	g.Handle("add", "register a sponsor contract", h.Add)
	g.Handle("list", "list active sponsors", h.List)
	g.Handle("expiring", "active sponsors expiring within -days", h.Expiring)
	g.Handle("update", "change a sponsor, status included", h.Update)
	g.Handle("delete", "delete a sponsor", h.Delete)
}

func NewSponsorHandler(sponsorService SponsorService) *SponsorHandler {
	return &SponsorHandler{
		svc: sponsorService,
	}
}

/* --------------------------------- Commands --------------------------------- */

func (h *SponsorHandler) Add(c *cli.Context) error {
	var p model.SponsorCreateRequest
	fs := c.Flags()
	fs.StringVar(&p.CompanyName, "company", "", "company name")
	fs.StringVar(&p.ContactName, "contact", "", "contact name")
	fs.StringVar(&p.Phone, "phone", "", "phone number")
	fs.StringVar(&p.Email, "email", "", "email address")
	fs.StringVar(&p.Address, "address", "", "address")
	fs.Float64Var(&p.ContractAmount, "amount", 0, "contract amount")
	fs.StringVar(&p.SponsorshipType, "kind", "", "sponsorship type")
	fs.StringVar(&p.Notes, "notes", "", "notes")
	start := dateVar(fs, "start", "contract start YYYY-MM-DD")
	end := dateVar(fs, "end", "contract expiration YYYY-MM-DD")
	if err := parse(c, fs); err != nil {
		return err
	}
	if start.t != nil {
		p.StartDate = *start.t
	}
	if end.t != nil {
		p.ExpirationDate = *end.t
	}

	s, err := h.svc.Create(c, p)
	if err != nil {
		return err
	}
	return c.JSON(s)
}

func (h *SponsorHandler) List(c *cli.Context) error {
	if err := parse(c, c.Flags()); err != nil {
		return err
	}
	items, err := h.svc.ListActive(c)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.Sponsor{}
	}
	return c.JSON(items)
}

func (h *SponsorHandler) Expiring(c *cli.Context) error {
	fs := c.Flags()
	days := fs.Int("days", -1, "look-ahead window in days, defaults to the configured alert window")
	if err := parse(c, fs); err != nil {
		return err
	}

	items, err := h.svc.Expiring(c, *days)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.Sponsor{}
	}
	return c.JSON(items)
}

// Update loads the sponsor and overlays only the flags given on the
// command line.
func (h *SponsorHandler) Update(c *cli.Context) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "sponsor id")
	company := fs.String("company", "", "company name")
	contact := fs.String("contact", "", "contact name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	address := fs.String("address", "", "address")
	amount := fs.Float64("amount", 0, "contract amount")
	status := fs.String("status", "", "status, e.g. active or inactive")
	kind := fs.String("kind", "", "sponsorship type")
	notes := fs.String("notes", "", "notes")
	start := dateVar(fs, "start", "contract start YYYY-MM-DD")
	end := dateVar(fs, "end", "contract expiration YYYY-MM-DD")
	if err := parse(c, fs); err != nil {
		return err
	}
	if *id == 0 {
		return errMissingID
	}

	current, err := h.svc.Get(c, *id)
	if err != nil {
		return err
	}
	u := model.SponsorUpdate{
		CompanyName:     current.CompanyName,
		ContactName:     current.ContactName,
		Phone:           current.Phone,
		Email:           current.Email,
		Address:         current.Address,
		ContractAmount:  current.ContractAmount,
		StartDate:       current.StartDate,
		ExpirationDate:  current.ExpirationDate,
		Status:          current.Status,
		SponsorshipType: current.SponsorshipType,
		Notes:           current.Notes,
	}
	set := visited(fs)
	if set["company"] {
		u.CompanyName = *company
	}
	if set["contact"] {
		u.ContactName = *contact
	}
	if set["phone"] {
		u.Phone = *phone
	}
	if set["email"] {
		u.Email = *email
	}
	if set["address"] {
		u.Address = *address
	}
	if set["amount"] {
		u.ContractAmount = *amount
	}
	if set["status"] {
		u.Status = *status
	}
	if set["kind"] {
		u.SponsorshipType = *kind
	}
	if set["notes"] {
		u.Notes = *notes
	}
	if start.t != nil {
		u.StartDate = *start.t
	}
	if end.t != nil {
		u.ExpirationDate = *end.t
	}

	s, err := h.svc.Update(c, *id, u)
	if err != nil {
		return err
	}
	return c.JSON(s)
}

func (h *SponsorHandler) Delete(c *cli.Context) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "sponsor id")
	if err := parse(c, fs); err != nil {
		return err
	}
	if *id == 0 {
		return errMissingID
	}

	if err := h.svc.Delete(c, *id); err != nil {
		return err
	}
	return c.JSON(map[string]any{"id": *id, "status": "deleted"})
}
