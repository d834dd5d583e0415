package model

import (
	"errors"
	"time"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// DuesCategory is the income category used for transactions generated by
// dues collection.
const DuesCategory = "Member Dues"

type Transaction struct {
	ID               int64           `json:"id"`
	Type             TransactionType `json:"type"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Amount           float64         `json:"amount"`
	Date             time.Time       `json:"date"`
	PaymentMethod    string          `json:"payment_method"`
	Voucher          string          `json:"voucher"`
	ResponsibleParty string          `json:"responsible_party"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
}

type TransactionCreateRequest struct {
	Type             TransactionType
	Category         string
	Description      string
	Amount           float64
	Date             *time.Time
	PaymentMethod    string
	Voucher          string
	ResponsibleParty string
	Notes            string
}

func (p TransactionCreateRequest) Validate() error {
	if !p.Type.Valid() {
		return errors.New("type must be income or expense")
	}
	if p.Category == "" {
		return errors.New("category is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// Balance aggregates income and expense totals.
type Balance struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
