package usecase

import (
	"strings"

	"github.com/openbooks/openbooks/internal/domain"
)

// dedupeCandidates drops derived candidates that have already been
// materialized as persisted ledger rows, so an invoice never appears twice
// in the merged statement. Matching is on (billReference, customerID),
// case-insensitive, restricted to invoice-derived row kinds when the store
// supports kind tagging. Pure set difference; neither input is mutated.
func dedupeCandidates(candidates []candidate, persisted []*domain.Entry, caps domain.SchemaCapabilities) []candidate {
	materialized := make(map[string]struct{})

	for _, e := range persisted {
		if e.BillReference == "" {
			continue
		}
		// Without kind tagging every persisted row with a bill reference
		// counts, accepting a higher false-positive exclusion rate.
		if caps.EntryKindTagging && !e.Kind.IsInvoiceDerived() {
			continue
		}
		materialized[dedupeKey(e.CustomerID, e.BillReference)] = struct{}{}
	}

	kept := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.entry.BillReference != "" {
			if _, ok := materialized[dedupeKey(c.entry.CustomerID, c.entry.BillReference)]; ok {
				continue
			}
		}
		kept = append(kept, c)
	}

	return kept
}

func dedupeKey(customerID, billReference string) string {
	return customerID + "\x00" + strings.ToLower(billReference)
}
