package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// EntryRepository defines data access for persisted ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Entry, error)
	ListByCustomer(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.Entry, error)
	MaxSequenceForDate(ctx context.Context, tx Transaction, customerID string, date time.Time) (decimal.Decimal, error)
	// LastBalance returns the balance of the customer's chronologically
	// last entry in statement order, or zero when the ledger is empty.
	LastBalance(ctx context.Context, tx Transaction, customerID string) (decimal.Decimal, error)
	// MaxBalance returns the maximum balance value persisted for the
	// customer across all dates, or zero when the ledger is empty.
	MaxBalance(ctx context.Context, tx Transaction, customerID string) (decimal.Decimal, error)
	Delete(ctx context.Context, tx Transaction, id string) error
	// DeleteByRelated removes entries whose RelatedEntryID points at the
	// given entry and returns how many were removed.
	DeleteByRelated(ctx context.Context, tx Transaction, relatedID string) (int64, error)
	// RecomputeBalances rebuilds balances for the customer's entries at or
	// after the (entryDate, entryID) position in (entryDate, id) order,
	// inside the given transaction. Entries ordered before that position
	// keep their stored balances.
	RecomputeBalances(ctx context.Context, tx Transaction, customerID string, entryDate time.Time, entryID string) error
	UpdateFields(ctx context.Context, id string, fields UpdateEntryFields) (*domain.Entry, error)
	// LockCustomer serializes mutations for one customer within the
	// transaction. No cross-customer locking.
	LockCustomer(ctx context.Context, tx Transaction, customerID string) error
}

// InvoiceSource yields sales invoice records for a customer, optionally
// bounded by an inclusive date range on the invoice date.
type InvoiceSource interface {
	ListByCustomer(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
}

// POInvoiceSource yields purchase-order-derived invoice records.
type POInvoiceSource interface {
	ListByCustomer(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.POInvoice, error)
	Create(ctx context.Context, invoice *domain.POInvoice) error
	GetByID(ctx context.Context, id string) (*domain.POInvoice, error)
}

// UpdateEntryFields carries the non-balance-affecting fields an update may
// change. Amount changes are modeled as delete+recreate.
type UpdateEntryFields struct {
	Description   *string
	Status        *domain.EntryStatus
	DueDate       *time.Time
	PaymentMode   *string
	BillReference *string
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient failures such as deadlocks
// between customer mutations.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
