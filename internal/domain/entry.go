
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies where a ledger entry came from.
type EntryKind string

const (
	KindManual       EntryKind = "manual"
	KindInvoice      EntryKind = "invoice"
	KindInvoiceTax   EntryKind = "invoice_tax"
	KindPOInvoice    EntryKind = "po_invoice"
	KindPOInvoiceTax EntryKind = "po_invoice_tax"
)

// IsInvoiceDerived reports whether the kind represents a materialized
// invoice or PO-invoice row (including their tax siblings).
func (k EntryKind) IsInvoiceDerived() bool {
	switch k {
	case KindInvoice, KindInvoiceTax, KindPOInvoice, KindPOInvoiceTax:
		return true
	}
	return false
}

// IsTax reports whether the kind is a tax sibling kind.
func (k EntryKind) IsTax() bool {
	return k == KindInvoiceTax || k == KindPOInvoiceTax
}

// Side is the ledger side of an entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// EntryStatus is the lifecycle tag of an entry. It is orthogonal to the
// balance sign.
type EntryStatus string

const (
	StatusPending EntryStatus = "pending"
	StatusPaid    EntryStatus = "paid"
	StatusDraft   EntryStatus = "draft"
	StatusOverdue EntryStatus = "overdue"
)

// LineItem is one billed item inside an entry or invoice.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	TaxRate     decimal.Decimal
	Amount      decimal.Decimal
}

// Entry is one line of a customer's ledger. Exactly one of DebitAmount and
// CreditAmount is positive; the other is zero. Balance is the running
// balance after the entry is applied and is always derived, never
// authoritative on its own.
type Entry struct {
	ID             string
	CustomerID     string
	EntryDate      time.Time
	CreatedAt      time.Time
	Description    string
	BillReference  string
	DebitAmount    decimal.Decimal
	CreditAmount   decimal.Decimal
	Balance        decimal.Decimal
	Sequence       decimal.Decimal
	Kind           EntryKind
	Status         EntryStatus
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	RelatedEntryID string
	DueDate        *time.Time
	PaymentMode    string
	LineItems      []LineItem

	// Position is a monotonic counter assigned at persistence time. It
	// breaks ordering ties when two entries share the same CreatedAt
	// timestamp. Derived entries have Position 0.
	Position int64

	// DaysOutstanding is computed on read for aging display.
	DaysOutstanding int
}

// Signed returns debit - credit, the amount the entry contributes to the
// running balance.
func (e *Entry) Signed() decimal.Decimal {
	return e.DebitAmount.Sub(e.CreditAmount)
}

// Side returns which side of the ledger the entry sits on.
func (e *Entry) Side() Side {
	if e.CreditAmount.IsPositive() {
		return SideCredit
	}
	return SideDebit
}

// MatchesBillReference compares bill references case-insensitively.
func (e *Entry) MatchesBillReference(ref string) bool {
	return ref != "" && strings.EqualFold(e.BillReference, ref)
}

// StatementLess is the total statement order: entries created later sort
// after entries created earlier even when backdated, so the ledger reads as
// an append log. EntryDate and Sequence break ties; Position disambiguates
// same-timestamp writes.
func StatementLess(a, b *Entry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	if !a.EntryDate.Equal(b.EntryDate) {
		return a.EntryDate.Before(b.EntryDate)
	}
	if !a.Sequence.Equal(b.Sequence) {
		return a.Sequence.LessThan(b.Sequence)
	}
	return a.Position < b.Position
}

// RecomputeLess is the order used when rebuilding balances after a
// deletion: (entryDate, id). It is deliberately not the statement order.
func RecomputeLess(a, b *Entry) bool {
	if !a.EntryDate.Equal(b.EntryDate) {
		return a.EntryDate.Before(b.EntryDate)
	}
	return a.ID < b.ID
}

// TaxSequenceOffset is added to a principal's sequence to place its tax
// sibling immediately after it among same-day entries.
var TaxSequenceOffset = decimal.NewFromFloat(0.5)
