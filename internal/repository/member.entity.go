package repository

import (
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
)

type MemberEntity struct {
	sqlite.Model
	FirstName       string  `gorm:"column:first_name;not null"`
	LastName        string  `gorm:"column:last_name;not null"`
	NationalID      string  `gorm:"column:national_id;not null;unique"`
	BirthDate       *string `gorm:"column:birth_date"`
	Phone           string  `gorm:"column:phone"`
	Email           string  `gorm:"column:email"`
	Address         string  `gorm:"column:address"`
	Category        string  `gorm:"column:category;not null"`
	EnrollmentDate  string  `gorm:"column:enrollment_date;not null"`
	PaymentStatus   string  `gorm:"column:payment_status;not null"`
	LastPaymentDate *string `gorm:"column:last_payment_date"`
	Notes           string  `gorm:"column:notes"`
	Active          bool    `gorm:"column:active;not null"`
}

func (MemberEntity) TableName() string {
	return "members"
}

func toMemberEntity(m *model.Member) *MemberEntity {
	if m == nil {
		return nil
	}
	e := &MemberEntity{
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		NationalID:      m.NationalID,
		BirthDate:       model.FormatDatePtr(m.BirthDate),
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		Category:        m.Category,
		PaymentStatus:   string(m.PaymentStatus),
		LastPaymentDate: model.FormatDatePtr(m.LastPaymentDate),
		Notes:           m.Notes,
		Active:          m.Active,
	}
	e.ID = m.ID
	if !m.EnrollmentDate.IsZero() {
		e.EnrollmentDate = model.FormatDate(m.EnrollmentDate)
	}
	return e
}

func toMemberModel(e *MemberEntity) *model.Member {
	if e == nil {
		return nil
	}
	m := &model.Member{
		ID:              e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		NationalID:      e.NationalID,
		BirthDate:       model.ParseDatePtr(e.BirthDate),
		Phone:           e.Phone,
		Email:           e.Email,
		Address:         e.Address,
		Category:        e.Category,
		PaymentStatus:   model.PaymentStatus(e.PaymentStatus),
		LastPaymentDate: model.ParseDatePtr(e.LastPaymentDate),
		Notes:           e.Notes,
		Active:          e.Active,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if t := model.ParseDatePtr(&e.EnrollmentDate); t != nil {
		m.EnrollmentDate = *t
	}
	return m
}

func toMemberModels(entities []*MemberEntity) []*model.Member {
	if entities == nil {
		return nil
	}
	models := make([]*model.Member, len(entities))
	for i, e := range entities {
		models[i] = toMemberModel(e)
	}
	return models
}
