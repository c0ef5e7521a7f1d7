package domain

import "errors"

var (
	// Validation errors: rejected before anything is persisted.
	ErrMissingEntryDate = errors.New("entry date is required")
	ErrAmountRequired   = errors.New("either debit or credit amount must be positive")
	ErrBothSidesSet     = errors.New("entry cannot carry both a debit and a credit amount")
	ErrNegativeAmount   = errors.New("amounts must not be negative")
	ErrEmptyBatch       = errors.New("batch must contain at least one entry")
	ErrAmountImmutable  = errors.New("amounts cannot be updated; delete and recreate the entry")

	// Lookup errors
	ErrEntryNotFound   = errors.New("entry not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
)
