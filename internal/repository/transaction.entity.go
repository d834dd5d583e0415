package repository

import (
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
)

type TransactionEntity struct {
	ID               int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Type             string    `gorm:"column:type;not null"`
	Category         string    `gorm:"column:category;not null"`
	Description      string    `gorm:"column:description;not null"`
	Amount           float64   `gorm:"column:amount;not null"`
	Date             string    `gorm:"column:date;not null"`
	PaymentMethod    string    `gorm:"column:payment_method"`
	Voucher          string    `gorm:"column:voucher"`
	ResponsibleParty string    `gorm:"column:responsible_party"`
	Notes            string    `gorm:"column:notes"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	e := &TransactionEntity{
		ID:               m.ID,
		Type:             string(m.Type),
		Category:         m.Category,
		Description:      m.Description,
		Amount:           m.Amount,
		PaymentMethod:    m.PaymentMethod,
		Voucher:          m.Voucher,
		ResponsibleParty: m.ResponsibleParty,
		Notes:            m.Notes,
	}
	if !m.Date.IsZero() {
		e.Date = model.FormatDate(m.Date)
	}
	return e
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	m := &model.Transaction{
		ID:               e.ID,
		Type:             model.TransactionType(e.Type),
		Category:         e.Category,
		Description:      e.Description,
		Amount:           e.Amount,
		PaymentMethod:    e.PaymentMethod,
		Voucher:          e.Voucher,
		ResponsibleParty: e.ResponsibleParty,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
	}
	if t := model.ParseDatePtr(&e.Date); t != nil {
		m.Date = *t
	}
	return m
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
