package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type Exporter interface {
	WriteDuesReceipt(r *model.DuesReceipt) (string, error)
	WriteTransactions(txns []*model.Transaction, from, to time.Time) (string, error)
	WriteMembers(members []*model.Member) (string, error)
}

type ExportSources struct {
	Members interface {
		Get(ctx context.Context, id int64) (*model.Member, error)
		List(ctx context.Context, activeOnly bool) ([]*model.Member, error)
	}
	Dues interface {
		History(ctx context.Context, memberID int64) ([]*model.DuesPayment, error)
	}
	Finance interface {
		List(ctx context.Context, from, to time.Time) ([]*model.Transaction, error)
	}
}

type ExportHandler struct {
	src   ExportSources
	exp   Exporter
	clock func() time.Time
}

func RegisterExportCommands(g *cli.Group, h *ExportHandler) {
	g.Handle("receipt", "write the PDF receipt of a paid period", h.Receipt)
	g.Handle("transactions", "write the transactions of a period as CSV", h.Transactions)
	g.Handle("members", "write the member roster as CSV", h.Members)
}

func NewExportHandler(src ExportSources, exp Exporter) *ExportHandler {
	return &ExportHandler{
		src:   src,
		exp:   exp,
		clock: time.Now,
	}
}

type exportResponse struct {
	Path string `json:"path"`
	Rows int    `json:"rows,omitempty"`
}

/* --------------------------------- Commands --------------------------------- */

// Receipt rebuilds the receipt of an already collected payment.
func (h *ExportHandler) Receipt(c *cli.Context) error {
	fs := c.Flags()
	memberID := fs.Int64("member", 0, "member id")
	month := fs.Int("month", 0, "paid month 1-12")
	year := fs.Int("year", 0, "paid year")
	if err := parse(c, fs); err != nil {
		return err
	}
	if *memberID == 0 {
		return errors.New("-member is required")
	}

	member, err := h.src.Members.Get(c, *memberID)
	if err != nil {
		return err
	}
	history, err := h.src.Dues.History(c, *memberID)
	if err != nil {
		return err
	}
	var payment *model.DuesPayment
	for _, p := range history {
		if p.Month == *month && p.Year == *year {
			payment = p
			break
		}
	}
	if payment == nil {
		return fmt.Errorf("no payment of member %d for %02d/%d", *memberID, *month, *year)
	}

	path, err := h.exp.WriteDuesReceipt(&model.DuesReceipt{Payment: payment, Member: member})
	if err != nil {
		return err
	}
	return c.JSON(exportResponse{Path: path})
}

func (h *ExportHandler) Transactions(c *cli.Context) error {
	fs := c.Flags()
	fromFlag := dateVar(fs, "from", "first day YYYY-MM-DD, defaults to the start of this month")
	toFlag := dateVar(fs, "to", "last day YYYY-MM-DD, defaults to today")
	if err := parse(c, fs); err != nil {
		return err
	}
	from, to := monthRange(h.clock())
	if fromFlag.t != nil {
		from = *fromFlag.t
	}
	if toFlag.t != nil {
		to = *toFlag.t
	}

	txns, err := h.src.Finance.List(c, from, to)
	if err != nil {
		return err
	}
	path, err := h.exp.WriteTransactions(txns, from, to)
	if err != nil {
		return err
	}
	return c.JSON(exportResponse{Path: path, Rows: len(txns)})
}

func (h *ExportHandler) Members(c *cli.Context) error {
	fs := c.Flags()
	all := fs.Bool("all", false, "include inactive members")
	if err := parse(c, fs); err != nil {
		return err
	}

	members, err := h.src.Members.List(c, !*all)
	if err != nil {
		return err
	}
	path, err := h.exp.WriteMembers(members)
	if err != nil {
		return err
	}
	return c.JSON(exportResponse{Path: path, Rows: len(members)})
}
