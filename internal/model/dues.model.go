package model

import (
	"errors"
	"time"
)

// DuesPayment is one monthly payment of one member. Rows are append-only.
type DuesPayment struct {
	ID            int64     `json:"id"`
	MemberID      int64     `json:"member_id"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	ReceiptNumber string    `json:"receipt_number"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// Period renders the paid period as MM/YYYY.
func (d DuesPayment) Period() string {
	return time.Date(d.Year, time.Month(d.Month), 1, 0, 0, 0, 0, time.UTC).Format("01/2006")
}

type DuesCreateRequest struct {
	MemberID      int64
	Month         int
	Year          int
	Amount        float64
	PaymentDate   *time.Time
	PaymentMethod string
	ReceiptNumber string
	Notes         string
}

func (p DuesCreateRequest) Validate() error {
	if p.MemberID == 0 {
		return errors.New("member_id is required")
	}
	if p.Month < 1 || p.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if p.Year <= 0 {
		return errors.New("year is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// DuesReceipt is the outcome of collecting dues: the stored payment, the
// income transaction recorded with it and the paying member.
type DuesReceipt struct {
	Payment     *DuesPayment `json:"payment"`
	Transaction *Transaction `json:"transaction"`
	Member      *Member      `json:"member"`
}
