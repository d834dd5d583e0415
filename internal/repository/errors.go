package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey marks a uniqueness violation. It is recoverable: the
	// caller reports it and nothing was written.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by operations that require an existing row.
	ErrNotFound = errors.New("record not found")
	// ErrStorage wraps every other persistence failure.
	ErrStorage = errors.New("storage failure")

	ErrDuplicateNationalID = fmt.Errorf("%w: a member with that national id already exists", ErrDuplicateKey)
	ErrDuplicateDuesPeriod = fmt.Errorf("%w: dues already registered for that member and period", ErrDuplicateKey)
	ErrDuplicateUsername   = fmt.Errorf("%w: username already taken", ErrDuplicateKey)

	ErrMemberNotFound      = fmt.Errorf("member %w", ErrNotFound)
	ErrSponsorNotFound     = fmt.Errorf("sponsor %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidPeriod          = errors.New("month must be between 1 and 12")
	ErrInvalidPaymentStatus   = errors.New("payment status must be current, overdue or exempt")
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrNationalIDImmutable    = errors.New("national id cannot be changed")
)

var classified = []error{
	ErrDuplicateKey,
	ErrNotFound,
	ErrStorage,
	ErrInvalidAmount,
	ErrInvalidPeriod,
	ErrInvalidPaymentStatus,
	ErrInvalidTransactionType,
	ErrNationalIDImmutable,
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// storageError classifies err as a storage failure unless it already
// carries one of the package kinds.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range classified {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
