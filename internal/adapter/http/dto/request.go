package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// LineItemInput represents one billable line in a request body.
type LineItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Amount      decimal.Decimal `json:"amount"`
}

func lineItemsToDomain(items []LineItemInput) []domain.LineItem {
	if len(items) == 0 {
		return nil
	}

	out := make([]domain.LineItem, len(items))
	for i, li := range items {
		out[i] = domain.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			TaxRate:     li.TaxRate,
			Amount:      li.Amount,
		}
	}

	return out
}

// CreateEntryRequest represents a request to create a ledger entry. Both
// payment_mode and the historical paymentMode spelling are accepted; the
// snake_case form wins when both are present.
type CreateEntryRequest struct {
	EntryDate      string          `json:"entry_date" validate:"required"`
	Description    string          `json:"description" validate:"max=1024"`
	BillReference  string          `json:"bill_reference"`
	DebitAmount    decimal.Decimal `json:"debit_amount"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Kind           string          `json:"kind" validate:"omitempty,oneof=manual invoice invoice_tax po_invoice po_invoice_tax"`
	Status         string          `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	DueDate        *string         `json:"due_date"`
	PaymentMode    string          `json:"payment_mode"`
	PaymentModeAlt string          `json:"paymentMode"`
	LineItems      []LineItemInput `json:"line_items"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	if err := validate.Struct(r); err != nil {
		return usecase.CreateEntryInput{}, err
	}

	entryDate, err := time.Parse(dateLayout, r.EntryDate)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	var dueDate *time.Time
	if r.DueDate != nil && *r.DueDate != "" {
		d, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			return usecase.CreateEntryInput{}, err
		}
		dueDate = &d
	}

	paymentMode := r.PaymentMode
	if paymentMode == "" {
		paymentMode = r.PaymentModeAlt
	}

	return usecase.CreateEntryInput{
		EntryDate:     entryDate,
		Description:   r.Description,
		BillReference: r.BillReference,
		DebitAmount:   r.DebitAmount,
		CreditAmount:  r.CreditAmount,
		TaxRate:       r.TaxRate,
		TaxAmount:     r.TaxAmount,
		Kind:          domain.EntryKind(r.Kind),
		Status:        domain.EntryStatus(r.Status),
		DueDate:       dueDate,
		PaymentMode:   paymentMode,
		LineItems:     lineItemsToDomain(r.LineItems),
	}, nil
}

// BulkCreateEntriesRequest represents an ordered batch of entries.
type BulkCreateEntriesRequest struct {
	Entries []CreateEntryRequest `json:"entries"`
}

// ToUseCaseInputs converts every batch member, failing on the first
// invalid one.
func (r *BulkCreateEntriesRequest) ToUseCaseInputs() ([]usecase.CreateEntryInput, error) {
	inputs := make([]usecase.CreateEntryInput, 0, len(r.Entries))
	for i := range r.Entries {
		input, err := r.Entries[i].ToUseCaseInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

// UpdateEntryRequest represents a partial update. Amounts, sides and the
// entry date are immutable; the fields exist here so a request carrying
// them is rejected rather than silently ignored.
type UpdateEntryRequest struct {
	Description    *string `json:"description" validate:"omitempty,max=1024"`
	Status         *string `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	DueDate        *string `json:"due_date"`
	PaymentMode    *string `json:"payment_mode"`
	PaymentModeAlt *string `json:"paymentMode"`
	BillReference  *string `json:"bill_reference"`

	DebitAmount  *decimal.Decimal `json:"debit_amount"`
	CreditAmount *decimal.Decimal `json:"credit_amount"`
	TaxAmount    *decimal.Decimal `json:"tax_amount"`
	EntryDate    *string          `json:"entry_date"`
}

// ToUseCaseFields converts to the use case field set.
func (r *UpdateEntryRequest) ToUseCaseFields() (usecase.UpdateEntryFields, error) {
	if r.DebitAmount != nil || r.CreditAmount != nil || r.TaxAmount != nil || r.EntryDate != nil {
		return usecase.UpdateEntryFields{}, domain.ErrAmountImmutable
	}

	if err := validate.Struct(r); err != nil {
		return usecase.UpdateEntryFields{}, err
	}

	fields := usecase.UpdateEntryFields{
		Description:   r.Description,
		BillReference: r.BillReference,
	}

	if r.Status != nil {
		s := domain.EntryStatus(*r.Status)
		fields.Status = &s
	}

	if r.DueDate != nil && *r.DueDate != "" {
		d, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			return usecase.UpdateEntryFields{}, err
		}
		fields.DueDate = &d
	}

	fields.PaymentMode = r.PaymentMode
	if fields.PaymentMode == nil {
		fields.PaymentMode = r.PaymentModeAlt
	}

	return fields, nil
}

// CreateInvoiceRequest represents a request to record a sales invoice.
type CreateInvoiceRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required"`
	BillReference string          `json:"bill_reference" validate:"required"`
	Date          string          `json:"date" validate:"required"`
	DueDate       *string         `json:"due_date"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft pending paid overdue"`
	LineItems     []LineItemInput `json:"line_items"`
}

// ToDomain converts to a domain invoice. The ID and CreatedAt are assigned
// by the caller.
func (r *CreateInvoiceRequest) ToDomain() (*domain.Invoice, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}

	var dueDate *time.Time
	if r.DueDate != nil && *r.DueDate != "" {
		d, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &d
	}

	status := domain.InvoiceStatus(r.Status)
	if status == "" {
		status = domain.InvoicePending
	}

	return &domain.Invoice{
		CustomerID:    r.CustomerID,
		BillReference: r.BillReference,
		Date:          date,
		DueDate:       dueDate,
		Subtotal:      r.Subtotal,
		TaxRate:       r.TaxRate,
		TaxAmount:     r.TaxAmount,
		Total:         r.Total,
		Status:        status,
		LineItems:     lineItemsToDomain(r.LineItems),
	}, nil
}

// CreatePOInvoiceRequest represents a request to record a purchase-order
// invoice.
type CreatePOInvoiceRequest struct {
	CreateInvoiceRequest

	POReference string `json:"po_reference" validate:"required"`
}

// ToDomain converts to a domain PO invoice.
func (r *CreatePOInvoiceRequest) ToDomain() (*domain.POInvoice, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	inv, err := r.CreateInvoiceRequest.ToDomain()
	if err != nil {
		return nil, err
	}

	return &domain.POInvoice{
		Invoice:     *inv,
		POReference: r.POReference,
	}, nil
}
