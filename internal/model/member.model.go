package model

import (
	"errors"
	"time"
)

// PaymentStatus is the dues standing of a member.
type PaymentStatus string

const (
	PaymentStatusCurrent PaymentStatus = "current"
	PaymentStatusOverdue PaymentStatus = "overdue"
	PaymentStatusExempt  PaymentStatus = "exempt"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusCurrent, PaymentStatusOverdue, PaymentStatusExempt:
		return true
	}
	return false
}

type Member struct {
	ID              int64         `json:"id"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	NationalID      string        `json:"national_id"`
	BirthDate       *time.Time    `json:"birth_date,omitempty"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	Address         string        `json:"address"`
	Category        string        `json:"category"`
	EnrollmentDate  time.Time     `json:"enrollment_date"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	LastPaymentDate *time.Time    `json:"last_payment_date,omitempty"`
	Notes           string        `json:"notes"`
	Active          bool          `json:"active"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (m Member) FullName() string {
	return m.LastName + ", " + m.FirstName
}

// MemberCreateRequest is the input for registering a member.
type MemberCreateRequest struct {
	FirstName      string
	LastName       string
	NationalID     string
	BirthDate      *time.Time
	Phone          string
	Email          string
	Address        string
	Category       string
	EnrollmentDate *time.Time
	Notes          string
}

func (p MemberCreateRequest) Validate() error {
	if p.FirstName == "" {
		return errors.New("first name is required")
	}
	if p.LastName == "" {
		return errors.New("last name is required")
	}
	if p.NationalID == "" {
		return errors.New("national id is required")
	}
	if p.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

// MemberUpdate holds the editable member fields. NationalID is only used
// to detect an attempted change, which is rejected.
type MemberUpdate struct {
	FirstName  string
	LastName   string
	NationalID string
	BirthDate  *time.Time
	Phone      string
	Email      string
	Address    string
	Category   string
	Notes      string
}

func (p MemberUpdate) Validate() error {
	if p.FirstName == "" {
		return errors.New("first name is required")
	}
	if p.LastName == "" {
		return errors.New("last name is required")
	}
	if p.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

// MemberCounts partitions the active roster by payment status.
type MemberCounts struct {
	Total   int64 `json:"total"`
	Current int64 `json:"current"`
	Overdue int64 `json:"overdue"`
	Exempt  int64 `json:"exempt"`
}
