package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// splitTax decomposes a candidate carrying a non-zero tax amount into a
// principal entry and a linked tax entry. The pair conserves the gross
// total: principal + tax == total. The tax sibling shares the principal's
// date and side and sequences immediately after it.
func splitTax(c candidate) []domain.Entry {
	principal := c.entry

	amount := c.total
	if c.entry.TaxAmount.IsPositive() {
		if c.subtotal.IsPositive() {
			amount = c.subtotal
		} else {
			amount = c.total.Sub(c.entry.TaxAmount)
		}
	}

	applyAmount(&principal, c.side, amount)
	principal.Sequence = decimal.Zero

	if !c.entry.TaxAmount.IsPositive() {
		return []domain.Entry{principal}
	}

	tax := domain.Entry{
		ID:             principal.ID + ":tax",
		CustomerID:     principal.CustomerID,
		EntryDate:      principal.EntryDate,
		CreatedAt:      principal.CreatedAt,
		Description:    taxDescription(&principal),
		BillReference:  principal.BillReference,
		Kind:           taxKind(principal.Kind),
		Status:         principal.Status,
		TaxRate:        principal.TaxRate,
		RelatedEntryID: principal.ID,
		Sequence:       principal.Sequence.Add(domain.TaxSequenceOffset),
		DueDate:        principal.DueDate,
	}
	applyAmount(&tax, c.side, principal.TaxAmount)

	return []domain.Entry{principal, tax}
}

func applyAmount(e *domain.Entry, side domain.Side, amount decimal.Decimal) {
	if side == domain.SideCredit {
		e.CreditAmount = amount
		e.DebitAmount = decimal.Zero
		return
	}
	e.DebitAmount = amount
	e.CreditAmount = decimal.Zero
}

func taxDescription(principal *domain.Entry) string {
	ref := principal.BillReference
	if ref == "" {
		ref = principal.Description
	}

	return fmt.Sprintf("Tax %s%% on %s", principal.TaxRate.String(), ref)
}

func taxKind(kind domain.EntryKind) domain.EntryKind {
	switch kind {
	case domain.KindInvoice:
		return domain.KindInvoiceTax
	case domain.KindPOInvoice:
		return domain.KindPOInvoiceTax
	default:
		return kind
	}
}
