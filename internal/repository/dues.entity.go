package repository

import (
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
)

type DuesEntity struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id"`
	MemberID      int64     `gorm:"column:member_id;not null;index"`
	Month         int       `gorm:"column:month;not null"`
	Year          int       `gorm:"column:year;not null"`
	Amount        float64   `gorm:"column:amount;not null"`
	PaymentDate   string    `gorm:"column:payment_date;not null"`
	PaymentMethod string    `gorm:"column:payment_method"`
	ReceiptNumber string    `gorm:"column:receipt_number"`
	Notes         string    `gorm:"column:notes"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (DuesEntity) TableName() string {
	return "dues_payments"
}

func toDuesEntity(m *model.DuesPayment) *DuesEntity {
	if m == nil {
		return nil
	}
	e := &DuesEntity{
		ID:            m.ID,
		MemberID:      m.MemberID,
		Month:         m.Month,
		Year:          m.Year,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		ReceiptNumber: m.ReceiptNumber,
		Notes:         m.Notes,
	}
	if !m.PaymentDate.IsZero() {
		e.PaymentDate = model.FormatDate(m.PaymentDate)
	}
	return e
}

func toDuesModel(e *DuesEntity) *model.DuesPayment {
	if e == nil {
		return nil
	}
	m := &model.DuesPayment{
		ID:            e.ID,
		MemberID:      e.MemberID,
		Month:         e.Month,
		Year:          e.Year,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		ReceiptNumber: e.ReceiptNumber,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
	if t := model.ParseDatePtr(&e.PaymentDate); t != nil {
		m.PaymentDate = *t
	}
	return m
}

func toDuesModels(entities []*DuesEntity) []*model.DuesPayment {
	if entities == nil {
		return nil
	}
	models := make([]*model.DuesPayment, len(entities))
	for i, e := range entities {
		models[i] = toDuesModel(e)
	}
	return models
}
