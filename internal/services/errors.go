package services

import (
	"errors"
	"fmt"

	"github.com/nimasrn/clubhouse/internal/repository"
)

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports input rejected before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func invalidRequest(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Reason: err.Error()}
}

// outcome labels an operation result for the store metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation),
		errors.Is(err, repository.ErrInvalidAmount),
		errors.Is(err, repository.ErrInvalidPeriod),
		errors.Is(err, repository.ErrInvalidPaymentStatus),
		errors.Is(err, repository.ErrInvalidTransactionType),
		errors.Is(err, repository.ErrNationalIDImmutable):
		return "invalid"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrDuplicateKey):
		return "duplicate"
	}
	return "error"
}
