package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// candidate is a normalized source record that still carries its gross
// (tax-inclusive) total. Candidates flow through deduplication and the tax
// splitter before they become statement entries.
type candidate struct {
	entry    domain.Entry
	side     domain.Side
	total    decimal.Decimal
	subtotal decimal.Decimal
}

// normalizeInvoice projects a sales invoice into a candidate entry. Pure;
// no side effects.
func normalizeInvoice(inv *domain.Invoice) candidate {
	return candidate{
		entry:    invoiceEntry(inv, domain.KindInvoice, "invoice:"+inv.ID, ""),
		side:     inv.Side(),
		total:    inv.Total,
		subtotal: inv.Subtotal,
	}
}

// normalizePOInvoice projects a PO-derived invoice into a candidate entry.
func normalizePOInvoice(inv *domain.POInvoice) candidate {
	suffix := ""
	if inv.POReference != "" {
		suffix = " (PO " + inv.POReference + ")"
	}

	return candidate{
		entry:    invoiceEntry(&inv.Invoice, domain.KindPOInvoice, "po_invoice:"+inv.ID, suffix),
		side:     inv.Side(),
		total:    inv.Total,
		subtotal: inv.Subtotal,
	}
}

func invoiceEntry(inv *domain.Invoice, kind domain.EntryKind, id, descriptionSuffix string) domain.Entry {
	return domain.Entry{
		ID:            id,
		CustomerID:    inv.CustomerID,
		EntryDate:     inv.Date,
		CreatedAt:     inv.CreatedAt,
		Description:   invoiceDescription(inv) + descriptionSuffix,
		BillReference: inv.BillReference,
		Kind:          kind,
		Status:        domain.EntryStatus(inv.Status),
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		DueDate:       inv.DueDate,
		LineItems:     aggregateLineItems(inv.LineItems),
	}
}

// invoiceDescription concatenates line item descriptions. Falls back to the
// bill reference for invoices recorded without items.
func invoiceDescription(inv *domain.Invoice) string {
	parts := make([]string, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		if item.Description != "" {
			parts = append(parts, item.Description)
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Invoice %s", inv.BillReference)
	}

	return strings.Join(parts, ", ")
}

// aggregateLineItems collapses an invoice's items into a single line:
// quantities summed, one representative rate retained. The rate is
// informational only and never feeds balance math.
func aggregateLineItems(items []domain.LineItem) []domain.LineItem {
	if len(items) == 0 {
		return nil
	}

	if len(items) == 1 {
		return []domain.LineItem{items[0]}
	}

	agg := domain.LineItem{}
	descriptions := make([]string, 0, len(items))

	for _, item := range items {
		if item.Description != "" {
			descriptions = append(descriptions, item.Description)
		}
		agg.Quantity = agg.Quantity.Add(item.Quantity)
		agg.Amount = agg.Amount.Add(item.Amount)
		if agg.Rate.IsZero() {
			agg.Rate = item.Rate
		}
		if agg.TaxRate.IsZero() {
			agg.TaxRate = item.TaxRate
		}
	}

	agg.Description = strings.Join(descriptions, ", ")

	return []domain.LineItem{agg}
}
