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

// POInvoiceRepository implements usecase.POInvoiceSource.
type POInvoiceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPOInvoiceRepository creates a new POInvoiceRepository.
func NewPOInvoiceRepository(pool *pgxpool.Pool) *POInvoiceRepository {
	return &POInvoiceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// ListByCustomer retrieves PO invoices for a customer with line items.
func (r *POInvoiceRepository) ListByCustomer(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.POInvoice, error) {
	rows, err := r.queries.ListPoInvoicesByCustomer(ctx, generated.ListPoInvoicesByCustomerParams{
		CustomerID: customerID,
		FromDate:   optionalDate(from),
		ToDate:     optionalDate(to),
	})
	if err != nil {
		return nil, err
	}

	items, err := r.queries.ListPoInvoiceLineItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	byInvoice := make(map[string][]domain.LineItem)
	for _, li := range items {
		byInvoice[li.PoInvoiceID] = append(byInvoice[li.PoInvoiceID], poLineItemToDomain(li))
	}

	invoices := make([]*domain.POInvoice, 0, len(rows))
	for _, row := range rows {
		inv := rowToPOInvoice(row)
		inv.LineItems = byInvoice[inv.ID]
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// Create persists a PO invoice and its line items in one transaction.
func (r *POInvoiceRepository) Create(ctx context.Context, invoice *domain.POInvoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	queries := generated.New(tx)

	if _, err := queries.CreatePoInvoice(ctx, generated.CreatePoInvoiceParams{
		ID:            invoice.ID,
		CustomerID:    invoice.CustomerID,
		BillReference: invoice.BillReference,
		PoReference:   invoice.POReference,
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
		if err := queries.CreatePoInvoiceLineItem(ctx, generated.CreatePoInvoiceLineItemParams{
			PoInvoiceID: invoice.ID,
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

// GetByID retrieves a PO invoice with its line items.
func (r *POInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.POInvoice, error) {
	row, err := r.queries.GetPoInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	items, err := r.queries.ListPoInvoiceLineItemsByPoInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := rowToPOInvoice(row)
	for _, li := range items {
		inv.LineItems = append(inv.LineItems, poLineItemToDomain(li))
	}

	return inv, nil
}

func rowToPOInvoice(row generated.PoInvoice) *domain.POInvoice {
	return &domain.POInvoice{
		Invoice: domain.Invoice{
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
		},
		POReference: row.PoReference,
	}
}

func poLineItemToDomain(li generated.PoInvoiceLineItem) domain.LineItem {
	return domain.LineItem{
		Description: li.Description,
		Quantity:    numericToDecimal(li.Quantity),
		Rate:        numericToDecimal(li.Rate),
		TaxRate:     numericToDecimal(li.TaxRate),
		Amount:      numericToDecimal(li.Amount),
	}
}
