package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            "i1",
		CustomerID:    "cust-1",
		BillReference: "INV-001",
		Date:          day(10),
		CreatedAt:     at(10, 9),
		Subtotal:      decimal.NewFromInt(500),
		TaxRate:       decimal.NewFromInt(10),
		TaxAmount:     decimal.NewFromInt(50),
		Total:         decimal.NewFromInt(550),
		Status:        domain.InvoicePending,
		LineItems: []domain.LineItem{
			{Description: "Widgets", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(300)},
			{Description: "Gadgets", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(200)},
		},
	}
}

func TestNormalizeInvoice(t *testing.T) {
	c := normalizeInvoice(sampleInvoice())

	if c.entry.Kind != domain.KindInvoice {
		t.Errorf("expected invoice kind, got %s", c.entry.Kind)
	}
	if c.side != domain.SideDebit {
		t.Errorf("pending invoice should normalize to debit, got %s", c.side)
	}
	if !c.total.Equal(decimal.NewFromInt(550)) {
		t.Errorf("gross total should carry through, got %s", c.total)
	}
	if c.entry.Description != "Widgets, Gadgets" {
		t.Errorf("descriptions should concatenate, got %q", c.entry.Description)
	}
}

func TestNormalizeInvoice_AggregatesLineItems(t *testing.T) {
	c := normalizeInvoice(sampleInvoice())

	if len(c.entry.LineItems) != 1 {
		t.Fatalf("expected aggregated single line item, got %d", len(c.entry.LineItems))
	}

	agg := c.entry.LineItems[0]
	if !agg.Quantity.Equal(decimal.NewFromInt(5)) {
		t.Errorf("quantities should sum, got %s", agg.Quantity)
	}
	if !agg.Rate.Equal(decimal.NewFromInt(100)) {
		t.Errorf("one representative rate should be retained, got %s", agg.Rate)
	}
	if !agg.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("amounts should sum, got %s", agg.Amount)
	}
}

func TestNormalizeInvoice_PaidCreditSide(t *testing.T) {
	inv := sampleInvoice()
	inv.Status = domain.InvoicePaid

	if c := normalizeInvoice(inv); c.side != domain.SideCredit {
		t.Errorf("paid invoice should normalize to credit, got %s", c.side)
	}
}

func TestNormalizeInvoice_NoLineItems(t *testing.T) {
	inv := sampleInvoice()
	inv.LineItems = nil

	c := normalizeInvoice(inv)
	if c.entry.Description != "Invoice INV-001" {
		t.Errorf("expected bill reference fallback, got %q", c.entry.Description)
	}
}

func TestNormalizePOInvoice(t *testing.T) {
	po := &domain.POInvoice{Invoice: *sampleInvoice(), POReference: "PO-77"}

	c := normalizePOInvoice(po)
	if c.entry.Kind != domain.KindPOInvoice {
		t.Errorf("expected po_invoice kind, got %s", c.entry.Kind)
	}
	if c.entry.Description != "Widgets, Gadgets (PO PO-77)" {
		t.Errorf("expected PO reference suffix, got %q", c.entry.Description)
	}
}
