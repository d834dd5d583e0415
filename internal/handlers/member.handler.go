package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type MemberService interface {
	Create(ctx context.Context, p model.MemberCreateRequest) (*model.Member, error)
	List(ctx context.Context, activeOnly bool) ([]*model.Member, error)
	Get(ctx context.Context, id int64) (*model.Member, error)
	FindByNationalID(ctx context.Context, nationalID string) (*model.Member, error)
	Update(ctx context.Context, id int64, u model.MemberUpdate) (*model.Member, error)
	SetPaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error
	Deactivate(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, id int64) error
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

type MemberHandler struct {
	svc   MemberService
	clock func() time.Time
}

func RegisterMemberCommands(g *cli.Group, h *MemberHandler) {
	g.Handle("add", "register a member", h.Add)
	g.Handle("list", "list members by last name (-all includes inactive)", h.List)
	g.Handle("find", "find a member by -id or -national-id", h.Find)
	g.Handle("update", "change the editable fields of a member", h.Update)
	g.Handle("deactivate", "soft delete a member", h.Deactivate)
	g.Handle("reactivate", "restore a deactivated member", h.Reactivate)
	g.Handle("status", "set the payment status of a member", h.Status)
	g.Handle("sweep", "mark members with stale payments as overdue", h.Sweep)
}

func NewMemberHandler(memberService MemberService) *MemberHandler {
	return &MemberHandler{
		svc:   memberService,
		clock: time.Now,
	}
}

type sweepResponse struct {
	Date   string `json:"date"`
	Marked int64  `json:"marked"`
}

/* --------------------------------- Commands --------------------------------- */

func (h *MemberHandler) Add(c *cli.Context) error {
	var p model.MemberCreateRequest
	fs := c.Flags()
	fs.StringVar(&p.FirstName, "first", "", "first name")
	fs.StringVar(&p.LastName, "last", "", "last name")
	fs.StringVar(&p.NationalID, "national-id", "", "national id, 7 or 8 digits")
	fs.StringVar(&p.Phone, "phone", "", "phone number")
	fs.StringVar(&p.Email, "email", "", "email address")
	fs.StringVar(&p.Address, "address", "", "address")
	fs.StringVar(&p.Category, "category", "", "member category")
	fs.StringVar(&p.Notes, "notes", "", "notes")
	birth := dateVar(fs, "birth", "birth date YYYY-MM-DD")
	enrolled := dateVar(fs, "enrolled", "enrollment date YYYY-MM-DD, defaults to today")
	if err := parse(c, fs); err != nil {
		return err
	}
	p.BirthDate = birth.t
	p.EnrollmentDate = enrolled.t

	m, err := h.svc.Create(c, p)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (h *MemberHandler) List(c *cli.Context) error {
	fs := c.Flags()
	all := fs.Bool("all", false, "include inactive members")
	if err := parse(c, fs); err != nil {
		return err
	}

	items, err := h.svc.List(c, !*all)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.Member{}
	}
	return c.JSON(items)
}

func (h *MemberHandler) Find(c *cli.Context) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "member id")
	nationalID := fs.String("national-id", "", "national id")
	if err := parse(c, fs); err != nil {
		return err
	}

	var (
		m   *model.Member
		err error
	)
	switch {
	case *id != 0:
		m, err = h.svc.Get(c, *id)
	case *nationalID != "":
		m, err = h.svc.FindByNationalID(c, *nationalID)
	default:
		return errors.New("-id or -national-id is required")
	}
	if err != nil {
		return err
	}
	if m == nil {
		return errors.New("no member with national id " + *nationalID)
	}
	return c.JSON(m)
}

// Update loads the member and overlays only the flags given on the command
// line.
func (h *MemberHandler) Update(c *cli.Context) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "member id")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	nationalID := fs.String("national-id", "", "national id (cannot change)")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	address := fs.String("address", "", "address")
	category := fs.String("category", "", "member category")
	notes := fs.String("notes", "", "notes")
	birth := dateVar(fs, "birth", "birth date YYYY-MM-DD")
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
	u := model.MemberUpdate{
		FirstName: current.FirstName,
		LastName:  current.LastName,
		BirthDate: current.BirthDate,
		Phone:     current.Phone,
		Email:     current.Email,
		Address:   current.Address,
		Category:  current.Category,
		Notes:     current.Notes,
	}
	set := visited(fs)
	if set["first"] {
		u.FirstName = *first
	}
	if set["last"] {
		u.LastName = *last
	}
	if set["national-id"] {
		u.NationalID = *nationalID
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
	if set["category"] {
		u.Category = *category
	}
	if set["notes"] {
		u.Notes = *notes
	}
	if set["birth"] {
		u.BirthDate = birth.t
	}

	m, err := h.svc.Update(c, *id, u)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (h *MemberHandler) Deactivate(c *cli.Context) error {
	return h.withID(c, h.svc.Deactivate, "deactivated")
}

func (h *MemberHandler) Reactivate(c *cli.Context) error {
	return h.withID(c, h.svc.Reactivate, "reactivated")
}

func (h *MemberHandler) Status(c *cli.Context) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "member id")
	status := fs.String("status", "", "current, overdue or exempt")
	if err := parse(c, fs); err != nil {
		return err
	}
	if *id == 0 {
		return errMissingID
	}

	if err := h.svc.SetPaymentStatus(c, *id, model.PaymentStatus(*status)); err != nil {
		return err
	}
	return c.JSON(map[string]any{"id": *id, "payment_status": *status})
}

func (h *MemberHandler) Sweep(c *cli.Context) error {
	fs := c.Flags()
	on := dateVar(fs, "date", "reference date YYYY-MM-DD, defaults to today")
	if err := parse(c, fs); err != nil {
		return err
	}
	now := h.clock()
	if on.t != nil {
		now = *on.t
	}

	n, err := h.svc.SweepOverdue(c, now)
	if err != nil {
		return err
	}
	return c.JSON(sweepResponse{Date: model.FormatDate(now), Marked: n})
}

func (h *MemberHandler) withID(c *cli.Context, fn func(ctx context.Context, id int64) error, done string) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "member id")
	if err := parse(c, fs); err != nil {
		return err
	}
	if *id == 0 {
		return errMissingID
	}
	if err := fn(c, *id); err != nil {
		return err
	}
	return c.JSON(map[string]any{"id": *id, "status": done})
}
