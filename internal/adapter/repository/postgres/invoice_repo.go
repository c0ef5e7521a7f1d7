package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/postgres/generated"
)

// InvoiceRepository implements usecase.InvoiceSource over the invoices
// projection tables.
type InvoiceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// ListByCustomer retrieves invoices for a customer with line items, bounded
// by an optional inclusive invoice-date range.
func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.Invoice, error) {
	rows, err := r.queries.ListInvoicesByCustomer(ctx, generated.ListInvoicesByCustomerParams{
		CustomerID: customerID,
		FromDate:   optionalDate(from),
		ToDate:     optionalDate(to),
	})
	if err != nil {
		return nil, err
	}

	items, err := r.queries.ListInvoiceLineItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	byInvoice := make(map[string][]domain.LineItem)
	for _, li := range items {
		byInvoice[li.InvoiceID] = append(byInvoice[li.InvoiceID], invoiceLineItemToDomain(li))
	}

	invoices := make([]*domain.Invoice, 0, len(rows))
	for _, row := range rows {
		inv := rowToInvoice(row)
		inv.LineItems = byInvoice[inv.ID]
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// Create persists an invoice and its line items in one transaction.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	queries := generated.New(tx)

	if _, err := queries.CreateInvoice(ctx, generated.CreateInvoiceParams{
		ID:            invoice.ID,
		CustomerID:    invoice.CustomerID,
		BillReference: invoice.BillReference,
		InvoiceDate:   timeToPgDate(invoice.Date),
		CreatedAt:     timeToPgTimestamptz(invoice.CreatedAt),
		DueDate:       optionalDate(invoice.DueDate),
		Subtotal:      decimalToNumeric(invoice.Subtotal),
		TaxRate:       decimalToNumeric(invoice.TaxRate),
		TaxAmount:     decimalToNumeric(invoice.TaxAmount),
		Total:         decimalToNumeric(invoice.Total),
		Status:        string(invoice.Status),
	}); err != nil {
		return err
	}

	for _, li := range invoice.LineItems {
		if err := queries.CreateInvoiceLineItem(ctx, generated.CreateInvoiceLineItemParams{
			InvoiceID:   invoice.ID,
			Description: li.Description,
			Quantity:    decimalToNumeric(li.Quantity),
			Rate:        decimalToNumeric(li.Rate),
			TaxRate:     decimalToNumeric(li.TaxRate),
			Amount:      decimalToNumeric(li.Amount),
		}); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves an invoice with its line items.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row, err := r.queries.GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	items, err := r.queries.ListInvoiceLineItemsByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := rowToInvoice(row)
	for _, li := range items {
		inv.LineItems = append(inv.LineItems, invoiceLineItemToDomain(li))
	}

	return inv, nil
}

func rowToInvoice(row generated.Invoice) *domain.Invoice {
	return &domain.Invoice{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		BillReference: row.BillReference,
		Date:          row.InvoiceDate.Time,
		CreatedAt:     row.CreatedAt.Time,
		DueDate:       pgDateToTimePtr(row.DueDate),
		Subtotal:      numericToDecimal(row.Subtotal),
		TaxRate:       numericToDecimal(row.TaxRate),
		TaxAmount:     numericToDecimal(row.TaxAmount),
		Total:         numericToDecimal(row.Total),
		Status:        domain.InvoiceStatus(row.Status),
	}
}

func invoiceLineItemToDomain(li generated.InvoiceLineItem) domain.LineItem {
	return domain.LineItem{
		Description: li.Description,
		Quantity:    numericToDecimal(li.Quantity),
		Rate:        numericToDecimal(li.Rate),
		TaxRate:     numericToDecimal(li.TaxRate),
		Amount:      numericToDecimal(li.Amount),
	}
}
