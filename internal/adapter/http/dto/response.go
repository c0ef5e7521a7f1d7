package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// LineItemResponse represents a billable line in API responses.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Amount      decimal.Decimal `json:"amount"`
}

func lineItemsFromDomain(items []domain.LineItem) []LineItemResponse {
	if len(items) == 0 {
		return nil
	}

	out := make([]LineItemResponse, len(items))
	for i, li := range items {
		out[i] = LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			TaxRate:     li.TaxRate,
			Amount:      li.Amount,
		}
	}

	return out
}

// EntryResponse represents a statement line in API responses.
type EntryResponse struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"customer_id"`
	EntryDate       string             `json:"entry_date"`
	CreatedAt       time.Time          `json:"created_at"`
	Description     string             `json:"description"`
	BillReference   string             `json:"bill_reference,omitempty"`
	DebitAmount     decimal.Decimal    `json:"debit_amount"`
	CreditAmount    decimal.Decimal    `json:"credit_amount"`
	Balance         decimal.Decimal    `json:"balance"`
	Sequence        decimal.Decimal    `json:"sequence"`
	Kind            string             `json:"kind,omitempty"`
	Status          string             `json:"status"`
	TaxRate         decimal.Decimal    `json:"tax_rate"`
	TaxAmount       decimal.Decimal    `json:"tax_amount"`
	RelatedEntryID  string             `json:"related_entry_id,omitempty"`
	DueDate         *string            `json:"due_date,omitempty"`
	PaymentMode     string             `json:"payment_mode,omitempty"`
	DaysOutstanding int                `json:"days_outstanding"`
	LineItems       []LineItemResponse `json:"line_items,omitempty"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	resp := &EntryResponse{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		EntryDate:       e.EntryDate.Format(dateLayout),
		CreatedAt:       e.CreatedAt,
		Description:     e.Description,
		BillReference:   e.BillReference,
		DebitAmount:     e.DebitAmount,
		CreditAmount:    e.CreditAmount,
		Balance:         e.Balance,
		Sequence:        e.Sequence,
		Kind:            string(e.Kind),
		Status:          string(e.Status),
		TaxRate:         e.TaxRate,
		TaxAmount:       e.TaxAmount,
		RelatedEntryID:  e.RelatedEntryID,
		PaymentMode:     e.PaymentMode,
		DaysOutstanding: e.DaysOutstanding,
		LineItems:       lineItemsFromDomain(e.LineItems),
	}

	if e.DueDate != nil {
		d := e.DueDate.Format(dateLayout)
		resp.DueDate = &d
	}

	return resp
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// StatementResponse represents a customer statement.
type StatementResponse struct {
	CustomerID     string           `json:"customer_id"`
	From           *string          `json:"from,omitempty"`
	To             *string          `json:"to,omitempty"`
	Entries        []*EntryResponse `json:"entries"`
	ClosingBalance decimal.Decimal  `json:"closing_balance"`
}

// StatementFromDomain builds a statement response. The closing balance is
// the balance of the last entry, zero for an empty statement.
func StatementFromDomain(customerID string, from, to *time.Time, entries []*domain.Entry) *StatementResponse {
	resp := &StatementResponse{
		CustomerID: customerID,
		Entries:    EntriesFromDomain(entries),
	}

	if from != nil {
		f := from.Format(dateLayout)
		resp.From = &f
	}
	if to != nil {
		t := to.Format(dateLayout)
		resp.To = &t
	}

	if len(entries) > 0 {
		resp.ClosingBalance = entries[len(entries)-1].Balance
	}

	return resp
}

// CreateEntryResponse carries a created entry and its optional tax sibling.
type CreateEntryResponse struct {
	Entry    *EntryResponse `json:"entry"`
	TaxEntry *EntryResponse `json:"tax_entry,omitempty"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	BillReference string             `json:"bill_reference"`
	Date          string             `json:"date"`
	CreatedAt     time.Time          `json:"created_at"`
	DueDate       *string            `json:"due_date,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	LineItems     []LineItemResponse `json:"line_items,omitempty"`
}

// InvoiceFromDomain converts a domain invoice to a response.
func InvoiceFromDomain(inv *domain.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		BillReference: inv.BillReference,
		Date:          inv.Date.Format(dateLayout),
		CreatedAt:     inv.CreatedAt,
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		Status:        string(inv.Status),
		LineItems:     lineItemsFromDomain(inv.LineItems),
	}

	if inv.DueDate != nil {
		d := inv.DueDate.Format(dateLayout)
		resp.DueDate = &d
	}

	return resp
}

// POInvoiceResponse represents a PO invoice in API responses.
type POInvoiceResponse struct {
	InvoiceResponse

	POReference string `json:"po_reference"`
}

// POInvoiceFromDomain converts a domain PO invoice to a response.
func POInvoiceFromDomain(inv *domain.POInvoice) *POInvoiceResponse {
	return &POInvoiceResponse{
		InvoiceResponse: *InvoiceFromDomain(&inv.Invoice),
		POReference:     inv.POReference,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
