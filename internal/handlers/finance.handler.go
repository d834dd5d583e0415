package handlers

import (
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type FinanceService interface {
	Record(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error)
	List(ctx context.Context, from, to time.Time) ([]*model.Transaction, error)
	Delete(ctx context.Context, id int64) error
	Balance(ctx context.Context) (model.Balance, error)
	PeriodBalance(ctx context.Context, from, to time.Time) (model.Balance, error)
}

type FinanceHandler struct {
	svc   FinanceService
	clock func() time.Time
}

func RegisterFinanceCommands(g *cli.Group, h *FinanceHandler) {
	g.Handle("add", "record an income or expense", h.Add)
	g.Handle("list", "list transactions between -from and -to (default: this month)", h.List)
	g.Handle("delete", "delete a transaction", h.Delete)
	g.Handle("balance", "overall balance, or of a period with -from/-to", h.Balance)
}

func NewFinanceHandler(financeService FinanceService) *FinanceHandler {
	return &FinanceHandler{
		svc:   financeService,
		clock: time.Now,
	}
}

type periodBalanceResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	model.Balance
}

/* --------------------------------- Commands --------------------------------- */

func (h *FinanceHandler) Add(c *cli.Context) error {
	var (
		p   model.TransactionCreateRequest
		typ string
	)
	fs := c.Flags()
	fs.StringVar(&typ, "type", "", "income or expense")
	fs.StringVar(&p.Category, "category", "", "category")
	fs.StringVar(&p.Description, "description", "", "description")
	fs.Float64Var(&p.Amount, "amount", 0, "amount")
	fs.StringVar(&p.PaymentMethod, "method", "", "payment method")
	fs.StringVar(&p.Voucher, "voucher", "", "voucher or invoice number")
	fs.StringVar(&p.ResponsibleParty, "responsible", "", "responsible party")
	fs.StringVar(&p.Notes, "notes", "", "notes")
	on := dateVar(fs, "date", "transaction date YYYY-MM-DD, defaults to today")
	if err := parse(c, fs); err != nil {
		return err
	}
	p.Type = model.TransactionType(typ)
	p.Date = on.t

	txn, err := h.svc.Record(c, p)
	if err != nil {
		return err
	}
	return c.JSON(txn)
}

func (h *FinanceHandler) List(c *cli.Context) error {
	from, to, _, err := h.parseRange(c)
	if err != nil {
		return err
	}

	items, err := h.svc.List(c, from, to)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.Transaction{}
	}
	return c.JSON(items)
}

func (h *FinanceHandler) Delete(c *cli.Context) error {
	fs := c.Flags()
	id := fs.Int64("id", 0, "transaction id")
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

func (h *FinanceHandler) Balance(c *cli.Context) error {
	from, to, ranged, err := h.parseRange(c)
	if err != nil {
		return err
	}

	if !ranged {
		b, err := h.svc.Balance(c)
		if err != nil {
			return err
		}
		return c.JSON(b)
	}

	b, err := h.svc.PeriodBalance(c, from, to)
	if err != nil {
		return err
	}
	return c.JSON(periodBalanceResponse{From: model.FormatDate(from), To: model.FormatDate(to), Balance: b})
}

// parseRange reads -from/-to. Missing bounds default to the current month;
// ranged is false when neither flag was given.
func (h *FinanceHandler) parseRange(c *cli.Context) (from, to time.Time, ranged bool, err error) {
	fs := c.Flags()
	fromFlag := dateVar(fs, "from", "first day YYYY-MM-DD")
	toFlag := dateVar(fs, "to", "last day YYYY-MM-DD")
	if err = parse(c, fs); err != nil {
		return
	}

	from, to = monthRange(h.clock())
	if fromFlag.t != nil {
		from = *fromFlag.t
	}
	if toFlag.t != nil {
		to = *toFlag.t
	}
	ranged = fromFlag.t != nil || toFlag.t != nil
	return
}
