package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/postgres/generated"
	"github.com/openbooks/openbooks/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository. Deployments whose
// schema predates the entry_kind column run the legacy query variants,
// selected once at construction from the probed capabilities.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
	caps    domain.SchemaCapabilities
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool, caps domain.SchemaCapabilities) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
		caps:    caps,
	}
}

// Create persists an entry and its line items inside the transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	var err error
	if r.caps.EntryKindTagging {
		var row generated.Entry
		row, err = queries.CreateEntry(ctx, generated.CreateEntryParams{
			ID:             entry.ID,
			CustomerID:     entry.CustomerID,
			EntryDate:      timeToPgDate(entry.EntryDate),
			CreatedAt:      timeToPgTimestamptz(entry.CreatedAt),
			Description:    entry.Description,
			BillReference:  entry.BillReference,
			DebitAmount:    decimalToNumeric(entry.DebitAmount),
			CreditAmount:   decimalToNumeric(entry.CreditAmount),
			Balance:        decimalToNumeric(entry.Balance),
			Sequence:       decimalToNumeric(entry.Sequence),
			EntryKind:      string(entry.Kind),
			Status:         string(entry.Status),
			TaxRate:        decimalToNumeric(entry.TaxRate),
			TaxAmount:      decimalToNumeric(entry.TaxAmount),
			RelatedEntryID: entry.RelatedEntryID,
			DueDate:        optionalDate(entry.DueDate),
			PaymentMode:    entry.PaymentMode,
		})
		if err == nil {
			entry.Position = row.Position
		}
	} else {
		var row generated.CreateEntryLegacyRow
		row, err = queries.CreateEntryLegacy(ctx, generated.CreateEntryLegacyParams{
			ID:             entry.ID,
			CustomerID:     entry.CustomerID,
			EntryDate:      timeToPgDate(entry.EntryDate),
			CreatedAt:      timeToPgTimestamptz(entry.CreatedAt),
			Description:    entry.Description,
			BillReference:  entry.BillReference,
			DebitAmount:    decimalToNumeric(entry.DebitAmount),
			CreditAmount:   decimalToNumeric(entry.CreditAmount),
			Balance:        decimalToNumeric(entry.Balance),
			Sequence:       decimalToNumeric(entry.Sequence),
			Status:         string(entry.Status),
			TaxRate:        decimalToNumeric(entry.TaxRate),
			TaxAmount:      decimalToNumeric(entry.TaxAmount),
			RelatedEntryID: entry.RelatedEntryID,
			DueDate:        optionalDate(entry.DueDate),
			PaymentMode:    entry.PaymentMode,
		})
		if err == nil {
			entry.Position = row.Position
		}
	}
	if err != nil {
		return err
	}

	for _, li := range entry.LineItems {
		if err := queries.CreateEntryLineItem(ctx, generated.CreateEntryLineItemParams{
			EntryID:     entry.ID,
			Description: li.Description,
			Quantity:    decimalToNumeric(li.Quantity),
			Rate:        decimalToNumeric(li.Rate),
			TaxRate:     decimalToNumeric(li.TaxRate),
			Amount:      decimalToNumeric(li.Amount),
		}); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves an entry with its line items.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	var entry *domain.Entry

	if r.caps.EntryKindTagging {
		row, err := r.queries.GetEntryByID(ctx, id)
		if err != nil {
			return nil, mapNotFound(err)
		}
		entry = rowToEntry(row)
	} else {
		row, err := r.queries.GetEntryByIDLegacy(ctx, id)
		if err != nil {
			return nil, mapNotFound(err)
		}
		entry = legacyRowToEntry(row)
	}

	items, err := r.queries.ListEntryLineItemsByEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.LineItems = lineItemsToDomain(items)

	return entry, nil
}

// GetByIDForUpdate retrieves an entry with a row lock held for the
// transaction.
func (r *EntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Entry, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	if r.caps.EntryKindTagging {
		row, err := queries.GetEntryByIDForUpdate(ctx, id)
		if err != nil {
			return nil, mapNotFound(err)
		}

		return rowToEntry(row), nil
	}

	row, err := queries.GetEntryByIDForUpdateLegacy(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return legacyRowToEntry(generated.GetEntryByIDLegacyRow(row)), nil
}

// ListByCustomer retrieves all persisted entries for a customer, optionally
// bounded by an inclusive entry-date range, with line items attached.
func (r *EntryRepository) ListByCustomer(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.Entry, error) {
	var entries []*domain.Entry

	if r.caps.EntryKindTagging {
		rows, err := r.queries.ListEntriesByCustomer(ctx, generated.ListEntriesByCustomerParams{
			CustomerID: customerID,
			FromDate:   optionalDate(from),
			ToDate:     optionalDate(to),
		})
		if err != nil {
			return nil, err
		}

		entries = make([]*domain.Entry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, rowToEntry(row))
		}
	} else {
		rows, err := r.queries.ListEntriesByCustomerLegacy(ctx, generated.ListEntriesByCustomerLegacyParams{
			CustomerID: customerID,
			FromDate:   optionalDate(from),
			ToDate:     optionalDate(to),
		})
		if err != nil {
			return nil, err
		}

		entries = make([]*domain.Entry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, legacyRowToEntry(generated.GetEntryByIDLegacyRow(row)))
		}
	}

	items, err := r.queries.ListEntryLineItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	attachLineItems(entries, items)

	return entries, nil
}

// MaxSequenceForDate returns the highest sequence already assigned for the
// customer and entry date, zero when none exists.
func (r *EntryRepository) MaxSequenceForDate(ctx context.Context, tx usecase.Transaction, customerID string, date time.Time) (decimal.Decimal, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	max, err := queries.MaxEntrySequenceForDate(ctx, generated.MaxEntrySequenceForDateParams{
		CustomerID: customerID,
		EntryDate:  timeToPgDate(date),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(max), nil
}

// LastBalance returns the balance of the customer's chronologically last
// entry, zero for an empty ledger.
func (r *EntryRepository) LastBalance(ctx context.Context, tx usecase.Transaction, customerID string) (decimal.Decimal, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	balance, err := queries.LastEntryBalance(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}

// MaxBalance returns the maximum persisted balance for the customer, zero
// for an empty ledger.
func (r *EntryRepository) MaxBalance(ctx context.Context, tx usecase.Transaction, customerID string) (decimal.Decimal, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	balance, err := queries.MaxEntryBalance(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}

// Delete removes an entry.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	affected, err := queries.DeleteEntry(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// DeleteByRelated removes entries related to the given entry, typically the
// tax sibling, and reports how many were removed.
func (r *EntryRepository) DeleteByRelated(ctx context.Context, tx usecase.Transaction, relatedID string) (int64, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.DeleteEntriesByRelated(ctx, relatedID)
}

// RecomputeBalances rebuilds balances as a running sum over
// (entry_date, id) order, touching only entries at or after the given
// position. Entries ordered before it keep their stored balances.
func (r *EntryRepository) RecomputeBalances(ctx context.Context, tx usecase.Transaction, customerID string, entryDate time.Time, entryID string) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.RecomputeEntryBalances(ctx, generated.RecomputeEntryBalancesParams{
		CustomerID: customerID,
		EntryDate:  timeToPgDate(entryDate),
		ID:         entryID,
	})
}

// UpdateFields applies a partial update to the non-amount fields.
func (r *EntryRepository) UpdateFields(ctx context.Context, id string, fields usecase.UpdateEntryFields) (*domain.Entry, error) {
	var status *string
	if fields.Status != nil {
		s := string(*fields.Status)
		status = &s
	}

	if r.caps.EntryKindTagging {
		row, err := r.queries.UpdateEntryFields(ctx, generated.UpdateEntryFieldsParams{
			ID:            id,
			Description:   optionalText(fields.Description),
			Status:        optionalText(status),
			DueDate:       optionalDate(fields.DueDate),
			PaymentMode:   optionalText(fields.PaymentMode),
			BillReference: optionalText(fields.BillReference),
		})
		if err != nil {
			return nil, mapNotFound(err)
		}

		return rowToEntry(row), nil
	}

	row, err := r.queries.UpdateEntryFieldsLegacy(ctx, generated.UpdateEntryFieldsLegacyParams{
		ID:            id,
		Description:   optionalText(fields.Description),
		Status:        optionalText(status),
		DueDate:       optionalDate(fields.DueDate),
		PaymentMode:   optionalText(fields.PaymentMode),
		BillReference: optionalText(fields.BillReference),
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	return legacyRowToEntry(generated.GetEntryByIDLegacyRow(row)), nil
}

// LockCustomer takes the per-customer advisory lock for the transaction.
func (r *EntryRepository) LockCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.LockCustomer(ctx, customerID)
}

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrEntryNotFound
	}

	return err
}

func rowToEntry(row generated.Entry) *domain.Entry {
	return &domain.Entry{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		EntryDate:      row.EntryDate.Time,
		CreatedAt:      row.CreatedAt.Time,
		Description:    row.Description,
		BillReference:  row.BillReference,
		DebitAmount:    numericToDecimal(row.DebitAmount),
		CreditAmount:   numericToDecimal(row.CreditAmount),
		Balance:        numericToDecimal(row.Balance),
		Sequence:       numericToDecimal(row.Sequence),
		Kind:           domain.EntryKind(row.EntryKind),
		Status:         domain.EntryStatus(row.Status),
		TaxRate:        numericToDecimal(row.TaxRate),
		TaxAmount:      numericToDecimal(row.TaxAmount),
		RelatedEntryID: row.RelatedEntryID,
		DueDate:        pgDateToTimePtr(row.DueDate),
		PaymentMode:    row.PaymentMode,
		Position:       row.Position,
	}
}

// legacyRowToEntry maps a row from an untagged schema. The kind stays
// empty; readers that need one treat empty as unknown. The legacy row
// types share one shape, callers convert to GetEntryByIDLegacyRow.
func legacyRowToEntry(row generated.GetEntryByIDLegacyRow) *domain.Entry {
	return &domain.Entry{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		EntryDate:      row.EntryDate.Time,
		CreatedAt:      row.CreatedAt.Time,
		Description:    row.Description,
		BillReference:  row.BillReference,
		DebitAmount:    numericToDecimal(row.DebitAmount),
		CreditAmount:   numericToDecimal(row.CreditAmount),
		Balance:        numericToDecimal(row.Balance),
		Sequence:       numericToDecimal(row.Sequence),
		Status:         domain.EntryStatus(row.Status),
		TaxRate:        numericToDecimal(row.TaxRate),
		TaxAmount:      numericToDecimal(row.TaxAmount),
		RelatedEntryID: row.RelatedEntryID,
		DueDate:        pgDateToTimePtr(row.DueDate),
		PaymentMode:    row.PaymentMode,
		Position:       row.Position,
	}
}

func lineItemsToDomain(items []generated.EntryLineItem) []domain.LineItem {
	if len(items) == 0 {
		return nil
	}

	out := make([]domain.LineItem, 0, len(items))
	for _, li := range items {
		out = append(out, domain.LineItem{
			Description: li.Description,
			Quantity:    numericToDecimal(li.Quantity),
			Rate:        numericToDecimal(li.Rate),
			TaxRate:     numericToDecimal(li.TaxRate),
			Amount:      numericToDecimal(li.Amount),
		})
	}

	return out
}

func attachLineItems(entries []*domain.Entry, items []generated.EntryLineItem) {
	if len(items) == 0 {
		return
	}

	byEntry := make(map[string][]domain.LineItem, len(entries))
	for _, li := range items {
		byEntry[li.EntryID] = append(byEntry[li.EntryID], domain.LineItem{
			Description: li.Description,
			Quantity:    numericToDecimal(li.Quantity),
			Rate:        numericToDecimal(li.Rate),
			TaxRate:     numericToDecimal(li.TaxRate),
			Amount:      numericToDecimal(li.Amount),
		})
	}

	for _, e := range entries {
		e.LineItems = byEntry[e.ID]
	}
}
