package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
)

// EntryUseCase is the mutation engine for persisted ledger entries. Every
// operation runs inside a single transaction and serializes against other
// mutations for the same customer.
type EntryUseCase struct {
	txManager TransactionManager
	entryRepo EntryRepository
	idGen     IDGenerator
	caps      domain.SchemaCapabilities
	logger    zerolog.Logger
	retrier   Retrier
	metrics   *metrics.Metrics
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(
	txManager TransactionManager,
	entryRepo EntryRepository,
	idGen IDGenerator,
	caps domain.SchemaCapabilities,
	logger zerolog.Logger,
) *EntryUseCase {
	return &EntryUseCase{
		txManager: txManager,
		entryRepo: entryRepo,
		idGen:     idGen,
		caps:      caps,
		logger:    logger,
		retrier:   noRetry{},
	}
}

// WithRetrier retries transactional mutations through r when they fail
// with a transient error. Returns the use case for chaining.
func (uc *EntryUseCase) WithRetrier(r Retrier) *EntryUseCase {
	uc.retrier = r
	return uc
}

// WithMetrics attaches Prometheus metrics. Returns the use case for
// chaining.
func (uc *EntryUseCase) WithMetrics(m *metrics.Metrics) *EntryUseCase {
	uc.metrics = m
	return uc
}

type noRetry struct{}

func (noRetry) Retry(_ context.Context, operation func() error) error {
	return operation()
}

// CreateEntryInput represents input for creating a persisted entry.
type CreateEntryInput struct {
	EntryDate     time.Time
	Description   string
	BillReference string
	DebitAmount   decimal.Decimal
	CreditAmount  decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	Kind          domain.EntryKind
	Status        domain.EntryStatus
	DueDate       *time.Time
	PaymentMode   string
	LineItems     []domain.LineItem
}

// CreateEntryResult carries the created entry and, when a tax amount
// accompanied it, the auto-generated tax sibling.
type CreateEntryResult struct {
	Entry    *domain.Entry
	TaxEntry *domain.Entry
}

// CreateEntry persists a single entry. The previous balance is taken from
// the customer's chronologically last entry; the entry receives the next
// whole sequence number for its (customer, date). A positive tax amount on
// a non-tax entry also persists a paired tax entry at sequence +0.5 inside
// the same transaction.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, customerID string, input CreateEntryInput) (*CreateEntryResult, error) {
	entry := uc.buildEntry(customerID, input)

	if err := domain.ValidateNewEntry(entry); err != nil {
		return nil, err
	}

	var result *CreateEntryResult
	err := uc.retrier.Retry(ctx, func() error {
		var opErr error
		result, opErr = uc.createEntryTx(ctx, entry)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.WithLabelValues(string(entry.Kind)).Inc()
		if result.TaxEntry != nil {
			uc.metrics.TaxEntriesSplit.Inc()
		}
	}

	return result, nil
}

func (uc *EntryUseCase) createEntryTx(ctx context.Context, entry *domain.Entry) (*CreateEntryResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.LockCustomer(ctx, tx, entry.CustomerID); err != nil {
		return nil, err
	}

	previousBalance, err := uc.previousBalanceChronological(ctx, tx, entry.CustomerID)
	if err != nil {
		return nil, err
	}

	maxSeq, err := uc.entryRepo.MaxSequenceForDate(ctx, tx, entry.CustomerID, entry.EntryDate)
	if err != nil {
		return nil, err
	}

	entry.Sequence = maxSeq.Add(decimal.NewFromInt(1))
	entry.Balance = previousBalance.Add(entry.Signed())

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	result := &CreateEntryResult{Entry: entry}

	if entry.TaxAmount.IsPositive() && !entry.Kind.IsTax() {
		taxEntry := uc.buildTaxSibling(entry)
		if err := uc.entryRepo.Create(ctx, tx, taxEntry); err != nil {
			return nil, err
		}
		result.TaxEntry = taxEntry
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateEntriesBulk persists an ordered batch of entries for one customer
// atomically. Each entry chains off the maximum balance persisted so far
// for the customer, not the chronologically previous one; the batch path
// keeps that rule deliberately distinct from single create. The batch does
// not auto-split tax: callers include tax siblings explicitly.
func (uc *EntryUseCase) CreateEntriesBulk(ctx context.Context, customerID string, inputs []CreateEntryInput) ([]*domain.Entry, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	entries := make([]*domain.Entry, 0, len(inputs))
	for _, input := range inputs {
		entry := uc.buildEntry(customerID, input)
		if err := domain.ValidateNewEntry(entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.createEntriesBulkTx(ctx, customerID, entries)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BulkBatchSize.Observe(float64(len(entries)))
		for _, entry := range entries {
			uc.metrics.EntriesCreated.WithLabelValues(string(entry.Kind)).Inc()
		}
	}

	return entries, nil
}

func (uc *EntryUseCase) createEntriesBulkTx(ctx context.Context, customerID string, entries []*domain.Entry) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Concurrent bulk creates for the same customer would each read the
	// running maximum; the advisory lock serializes them.
	if err := uc.entryRepo.LockCustomer(ctx, tx, customerID); err != nil {
		return err
	}

	for _, entry := range entries {
		previousBalance, err := uc.previousBalanceBatchMax(ctx, tx, customerID)
		if err != nil {
			return err
		}

		maxSeq, err := uc.entryRepo.MaxSequenceForDate(ctx, tx, customerID, entry.EntryDate)
		if err != nil {
			return err
		}

		entry.Sequence = maxSeq.Add(decimal.NewFromInt(1))
		entry.Balance = previousBalance.Add(entry.Signed())

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteEntry removes an entry and its tax sibling, then rebuilds the
// balances of entries at or after the deleted entry's (entryDate, id)
// position; earlier entries keep their stored balances. Deletion and
// recomputation share one transaction so no caller observes inconsistent
// balances.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	err := uc.retrier.Retry(ctx, func() error {
		return uc.deleteEntryTx(ctx, id)
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesDeleted.Inc()
	}
	return nil
}

func (uc *EntryUseCase) deleteEntryTx(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}

	if err := uc.entryRepo.LockCustomer(ctx, tx, entry.CustomerID); err != nil {
		return err
	}

	if err := uc.entryRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	cascaded, err := uc.entryRepo.DeleteByRelated(ctx, tx, id)
	if err != nil {
		return err
	}
	if cascaded > 0 {
		uc.logger.Info().
			Str("entry_id", id).
			Int64("tax_entries", cascaded).
			Msg("cascade deleted tax siblings")
	}

	if err := uc.entryRepo.RecomputeBalances(ctx, tx, entry.CustomerID, entry.EntryDate, entry.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateEntry changes non-balance-affecting fields only. There is no
// amount-edited transition: callers wanting a different amount delete and
// recreate the entry.
func (uc *EntryUseCase) UpdateEntry(ctx context.Context, id string, fields UpdateEntryFields) (*domain.Entry, error) {
	entry, err := uc.entryRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesUpdated.Inc()
	}
	return entry, nil
}

// GetEntry retrieves a persisted entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// previousBalanceChronological is the single-create chaining strategy: the
// balance of the customer's chronologically last entry in statement order.
func (uc *EntryUseCase) previousBalanceChronological(ctx context.Context, tx Transaction, customerID string) (decimal.Decimal, error) {
	return uc.entryRepo.LastBalance(ctx, tx, customerID)
}

// previousBalanceBatchMax is the bulk-create chaining strategy: the
// maximum balance value persisted so far across the whole customer,
// regardless of date. Inherited behavior; do not unify with the
// chronological strategy without a product decision.
func (uc *EntryUseCase) previousBalanceBatchMax(ctx context.Context, tx Transaction, customerID string) (decimal.Decimal, error) {
	return uc.entryRepo.MaxBalance(ctx, tx, customerID)
}

func (uc *EntryUseCase) buildEntry(customerID string, input CreateEntryInput) *domain.Entry {
	kind := input.Kind
	if kind == "" {
		kind = domain.KindManual
	}
	if kind.IsInvoiceDerived() && !uc.caps.EntryKindTagging {
		uc.logger.Warn().
			Str("customer_id", customerID).
			Str("kind", string(kind)).
			Msg("ledger store lacks entry kind tagging, persisting untagged entry")
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	return &domain.Entry{
		ID:            uc.idGen.Generate(),
		CustomerID:    customerID,
		EntryDate:     input.EntryDate,
		CreatedAt:     time.Now().UTC(),
		Description:   input.Description,
		BillReference: input.BillReference,
		DebitAmount:   input.DebitAmount,
		CreditAmount:  input.CreditAmount,
		TaxRate:       input.TaxRate,
		TaxAmount:     input.TaxAmount,
		Kind:          kind,
		Status:        status,
		DueDate:       input.DueDate,
		PaymentMode:   input.PaymentMode,
		LineItems:     input.LineItems,
	}
}

func (uc *EntryUseCase) buildTaxSibling(principal *domain.Entry) *domain.Entry {
	tax := &domain.Entry{
		ID:             uc.idGen.Generate(),
		CustomerID:     principal.CustomerID,
		EntryDate:      principal.EntryDate,
		CreatedAt:      principal.CreatedAt,
		Description:    taxDescription(principal),
		BillReference:  principal.BillReference,
		Kind:           taxKind(principal.Kind),
		Status:         principal.Status,
		TaxRate:        principal.TaxRate,
		RelatedEntryID: principal.ID,
		Sequence:       principal.Sequence.Add(domain.TaxSequenceOffset),
		DueDate:        principal.DueDate,
		PaymentMode:    principal.PaymentMode,
	}

	applyAmount(tax, principal.Side(), principal.TaxAmount)
	tax.Balance = principal.Balance.Add(tax.Signed())

	return tax
}
