package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDescriptionLength = 1024
	MaxEntryAmount       = "1000000000000" // 1 trillion
)

// ValidateNewEntry validates an entry before persistence. Exactly one of
// the debit and credit amounts must be positive; the entry date must be
// set.
func ValidateNewEntry(e *Entry) error {
	if e.EntryDate.IsZero() {
		return ErrMissingEntryDate
	}

	if e.DebitAmount.IsNegative() || e.CreditAmount.IsNegative() {
		return ErrNegativeAmount
	}

	debitSet := e.DebitAmount.IsPositive()
	creditSet := e.CreditAmount.IsPositive()

	if debitSet && creditSet {
		return ErrBothSidesSet
	}

	if !debitSet && !creditSet {
		return ErrAmountRequired
	}

	amount := e.DebitAmount
	if creditSet {
		amount = e.CreditAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountRequired, MaxEntryAmount)
	}

	if e.TaxAmount.IsNegative() {
		return ErrNegativeAmount
	}

	if len(e.Description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
