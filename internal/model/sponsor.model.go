package model

import (
	"errors"
	"time"
)

// SponsorStatusActive is the only status the queries treat specially.
const SponsorStatusActive = "active"

type Sponsor struct {
	ID              int64     `json:"id"`
	CompanyName     string    `json:"company_name"`
	ContactName     string    `json:"contact_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	ContractAmount  float64   `json:"contract_amount"`
	StartDate       time.Time `json:"start_date"`
	ExpirationDate  time.Time `json:"expiration_date"`
	Status          string    `json:"status"`
	SponsorshipType string    `json:"sponsorship_type"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SponsorCreateRequest struct {
	CompanyName     string
	ContactName     string
	Phone           string
	Email           string
	Address         string
	ContractAmount  float64
	StartDate       time.Time
	ExpirationDate  time.Time
	SponsorshipType string
	Notes           string
}

func (p SponsorCreateRequest) Validate() error {
	if p.CompanyName == "" {
		return errors.New("company name is required")
	}
	if p.ContractAmount <= 0 {
		return errors.New("contract amount must be positive")
	}
	if p.StartDate.IsZero() || p.ExpirationDate.IsZero() {
		return errors.New("contract start and expiration dates are required")
	}
	if p.ExpirationDate.Before(p.StartDate) {
		return errors.New("expiration date is before start date")
	}
	return nil
}

// SponsorUpdate replaces the editable sponsor fields, status included.
type SponsorUpdate struct {
	CompanyName     string
	ContactName     string
	Phone           string
	Email           string
	Address         string
	ContractAmount  float64
	StartDate       time.Time
	ExpirationDate  time.Time
	Status          string
	SponsorshipType string
	Notes           string
}

func (p SponsorUpdate) Validate() error {
	if p.Status == "" {
		return errors.New("status is required")
	}
	return SponsorCreateRequest{
		CompanyName:    p.CompanyName,
		ContractAmount: p.ContractAmount,
		StartDate:      p.StartDate,
		ExpirationDate: p.ExpirationDate,
	}.Validate()
}
