package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment status of a source invoice. It determines
// which ledger side a derived entry lands on: paid invoices credit the
// customer's account, everything else debits it.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is a sales invoice source record, read-only from the ledger's
// point of view.
type Invoice struct {
	ID            string
	CustomerID    string
	BillReference string
	Date          time.Time
	CreatedAt     time.Time
	DueDate       *time.Time
	LineItems     []LineItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Status        InvoiceStatus
}

// Side returns the ledger side a derived entry takes, based on payment
// status at the source.
func (i *Invoice) Side() Side {
	if i.Status == InvoicePaid {
		return SideCredit
	}
	return SideDebit
}

// POInvoice is an invoice derived from a purchase order. Identical to
// Invoice apart from the PO reference it carries.
type POInvoice struct {
	Invoice

	POReference string
}
