package domain

// SchemaCapabilities describes what the ledger store's schema supports.
// It is resolved once at startup and threaded through the components that
// need it; there is no global capability cache.
type SchemaCapabilities struct {
	// EntryKindTagging is true when persisted entries carry an entry_kind
	// column. Without it, deduplication degrades to matching on
	// (billReference, customerID) alone and inserts omit the kind.
	EntryKindTagging bool
}
