package repository

import (
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
)

type SponsorEntity struct {
	sqlite.Model
	CompanyName     string  `gorm:"column:company_name;not null"`
	ContactName     string  `gorm:"column:contact_name"`
	Phone           string  `gorm:"column:phone"`
	Email           string  `gorm:"column:email"`
	Address         string  `gorm:"column:address"`
	ContractAmount  float64 `gorm:"column:contract_amount;not null"`
	StartDate       string  `gorm:"column:start_date;not null"`
	ExpirationDate  string  `gorm:"column:expiration_date;not null"`
	Status          string  `gorm:"column:status;not null"`
	SponsorshipType string  `gorm:"column:sponsorship_type"`
	Notes           string  `gorm:"column:notes"`
}

func (SponsorEntity) TableName() string {
	return "sponsors"
}

func toSponsorEntity(m *model.Sponsor) *SponsorEntity {
	if m == nil {
		return nil
	}
	e := &SponsorEntity{
		CompanyName:     m.CompanyName,
		ContactName:     m.ContactName,
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		ContractAmount:  m.ContractAmount,
		StartDate:       model.FormatDate(m.StartDate),
		ExpirationDate:  model.FormatDate(m.ExpirationDate),
		Status:          m.Status,
		SponsorshipType: m.SponsorshipType,
		Notes:           m.Notes,
	}
	e.ID = m.ID
	return e
}

func toSponsorModel(e *SponsorEntity) *model.Sponsor {
	if e == nil {
		return nil
	}
	m := &model.Sponsor{
		ID:              e.ID,
		CompanyName:     e.CompanyName,
		ContactName:     e.ContactName,
		Phone:           e.Phone,
		Email:           e.Email,
		Address:         e.Address,
		ContractAmount:  e.ContractAmount,
		Status:          e.Status,
		SponsorshipType: e.SponsorshipType,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if t := model.ParseDatePtr(&e.StartDate); t != nil {
		m.StartDate = *t
	}
	if t := model.ParseDatePtr(&e.ExpirationDate); t != nil {
		m.ExpirationDate = *t
	}
	return m
}

func toSponsorModels(entities []*SponsorEntity) []*model.Sponsor {
	if entities == nil {
		return nil
	}
	models := make([]*model.Sponsor, len(entities))
	for i, e := range entities {
		models[i] = toSponsorModel(e)
	}
	return models
}
