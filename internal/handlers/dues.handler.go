package handlers

import (
	"context"
	"errors"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type DuesService interface {
	Collect(ctx context.Context, p model.DuesCreateRequest) (*model.DuesReceipt, error)
	History(ctx context.Context, memberID int64) ([]*model.DuesPayment, error)
	Period(ctx context.Context, month, year int) ([]*model.DuesPayment, error)
}

type ReceiptWriter interface {
	WriteDuesReceipt(r *model.DuesReceipt) (string, error)
}

type DuesHandler struct {
	svc      DuesService
	receipts ReceiptWriter
}

func RegisterDuesCommands(g *cli.Group, h *DuesHandler) {
	g.Handle("pay", "collect a monthly payment (-pdf writes the receipt)", h.Pay)
	g.Handle("history", "list the payments of a member", h.History)
	g.Handle("period", "list every payment of a month", h.Period)
}

func NewDuesHandler(duesService DuesService, receipts ReceiptWriter) *DuesHandler {
	return &DuesHandler{
		svc:      duesService,
		receipts: receipts,
	}
}

type payResponse struct {
	*model.DuesReceipt
	ReceiptFile string `json:"receipt_file,omitempty"`
}

/* --------------------------------- Commands --------------------------------- */

func (h *DuesHandler) Pay(c *cli.Context) error {
	var p model.DuesCreateRequest
	fs := c.Flags()
	fs.Int64Var(&p.MemberID, "member", 0, "member id")
	fs.IntVar(&p.Month, "month", 0, "paid month 1-12")
	fs.IntVar(&p.Year, "year", 0, "paid year")
	fs.Float64Var(&p.Amount, "amount", 0, "amount paid")
	fs.StringVar(&p.PaymentMethod, "method", "", "payment method")
	fs.StringVar(&p.ReceiptNumber, "receipt", "", "receipt number, generated when empty")
	fs.StringVar(&p.Notes, "notes", "", "notes")
	paid := dateVar(fs, "date", "payment date YYYY-MM-DD, defaults to today")
	pdf := fs.Bool("pdf", false, "write a PDF receipt to the export directory")
	if err := parse(c, fs); err != nil {
		return err
	}
	p.PaymentDate = paid.t

	receipt, err := h.svc.Collect(c, p)
	if err != nil {
		return err
	}

	resp := payResponse{DuesReceipt: receipt}
	if *pdf {
		if h.receipts == nil {
			return errors.New("receipt export is not configured")
		}
		if resp.ReceiptFile, err = h.receipts.WriteDuesReceipt(receipt); err != nil {
			return err
		}
	}
	return c.JSON(resp)
}

func (h *DuesHandler) History(c *cli.Context) error {
	fs := c.Flags()
	memberID := fs.Int64("member", 0, "member id")
	if err := parse(c, fs); err != nil {
		return err
	}
	if *memberID == 0 {
		return errors.New("-member is required")
	}

	items, err := h.svc.History(c, *memberID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.DuesPayment{}
	}
	return c.JSON(items)
}

func (h *DuesHandler) Period(c *cli.Context) error {
	fs := c.Flags()
	month := fs.Int("month", 0, "month 1-12")
	year := fs.Int("year", 0, "year")
	if err := parse(c, fs); err != nil {
		return err
	}

	items, err := h.svc.Period(c, *month, *year)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.DuesPayment{}
	}
	return c.JSON(items)
}
