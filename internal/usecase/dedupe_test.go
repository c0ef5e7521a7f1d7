package usecase

import (
	"testing"

	"github.com/openbooks/openbooks/internal/domain"
)

func refCandidate(ref string) candidate {
	return candidate{entry: domain.Entry{CustomerID: "cust-1", BillReference: ref, Kind: domain.KindInvoice}}
}

func TestDedupeCandidates_ExcludesMaterialized(t *testing.T) {
	caps := domain.SchemaCapabilities{EntryKindTagging: true}
	persisted := []*domain.Entry{
		{CustomerID: "cust-1", BillReference: "INV-001", Kind: domain.KindInvoice},
	}

	kept := dedupeCandidates([]candidate{refCandidate("inv-001"), refCandidate("INV-002")}, persisted, caps)

	if len(kept) != 1 {
		t.Fatalf("expected 1 candidate kept, got %d", len(kept))
	}
	if kept[0].entry.BillReference != "INV-002" {
		t.Errorf("wrong candidate excluded: %s", kept[0].entry.BillReference)
	}
}

func TestDedupeCandidates_ManualRowsDoNotMatchWhenTagged(t *testing.T) {
	caps := domain.SchemaCapabilities{EntryKindTagging: true}
	persisted := []*domain.Entry{
		{CustomerID: "cust-1", BillReference: "INV-001", Kind: domain.KindManual},
	}

	kept := dedupeCandidates([]candidate{refCandidate("INV-001")}, persisted, caps)

	if len(kept) != 1 {
		t.Error("manual row should not exclude a derived candidate when kinds are tagged")
	}
}

func TestDedupeCandidates_FallbackMatchesAnyKind(t *testing.T) {
	// Without kind tagging every persisted bill reference excludes,
	// accepting false positives.
	caps := domain.SchemaCapabilities{EntryKindTagging: false}
	persisted := []*domain.Entry{
		{CustomerID: "cust-1", BillReference: "INV-001", Kind: domain.KindManual},
	}

	kept := dedupeCandidates([]candidate{refCandidate("INV-001")}, persisted, caps)

	if len(kept) != 0 {
		t.Error("fallback should exclude on bill reference alone")
	}
}

func TestDedupeCandidates_EmptyReferencesNeverMatch(t *testing.T) {
	caps := domain.SchemaCapabilities{EntryKindTagging: false}
	persisted := []*domain.Entry{
		{CustomerID: "cust-1", BillReference: "", Kind: domain.KindManual},
	}

	kept := dedupeCandidates([]candidate{refCandidate("")}, persisted, caps)

	if len(kept) != 1 {
		t.Error("candidates without a bill reference must always be included")
	}
}

func TestDedupeCandidates_DoesNotMutateInputs(t *testing.T) {
	caps := domain.SchemaCapabilities{EntryKindTagging: true}
	candidates := []candidate{refCandidate("INV-001"), refCandidate("INV-002")}
	persisted := []*domain.Entry{
		{CustomerID: "cust-1", BillReference: "INV-001", Kind: domain.KindInvoice},
	}

	dedupeCandidates(candidates, persisted, caps)

	if len(candidates) != 2 || candidates[0].entry.BillReference != "INV-001" {
		t.Error("candidate slice was mutated")
	}
	if persisted[0].BillReference != "INV-001" {
		t.Error("persisted slice was mutated")
	}
}
