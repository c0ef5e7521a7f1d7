package domain

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEntrySide(t *testing.T) {
	debit := &Entry{DebitAmount: decimal.NewFromInt(100)}
	if debit.Side() != SideDebit {
		t.Errorf("expected debit side, got %s", debit.Side())
	}

	credit := &Entry{CreditAmount: decimal.NewFromInt(100)}
	if credit.Side() != SideCredit {
		t.Errorf("expected credit side, got %s", credit.Side())
	}
}

func TestEntrySigned(t *testing.T) {
	e := &Entry{DebitAmount: decimal.NewFromInt(250)}
	if !e.Signed().Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected 250, got %s", e.Signed())
	}

	e = &Entry{CreditAmount: decimal.NewFromInt(40)}
	if !e.Signed().Equal(decimal.NewFromInt(-40)) {
		t.Errorf("expected -40, got %s", e.Signed())
	}
}

func TestStatementLess_CreatedAtIsPrimary(t *testing.T) {
	// A backdated entry created later must sort after earlier entries,
	// even though its entry date is older.
	early := &Entry{
		ID:        "a",
		EntryDate: date(2025, time.March, 10),
		CreatedAt: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
	backdated := &Entry{
		ID:        "b",
		EntryDate: date(2025, time.January, 1),
		CreatedAt: time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC),
	}

	if !StatementLess(early, backdated) {
		t.Error("entry created earlier should sort first")
	}
	if StatementLess(backdated, early) {
		t.Error("backdated entry created later should not sort first")
	}
}

func TestStatementLess_SequenceBreaksSameDayTies(t *testing.T) {
	created := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := date(2025, time.March, 10)

	principal := &Entry{ID: "p", EntryDate: day, CreatedAt: created, Sequence: decimal.NewFromInt(2)}
	tax := &Entry{ID: "t", EntryDate: day, CreatedAt: created, Sequence: decimal.NewFromFloat(2.5)}
	next := &Entry{ID: "n", EntryDate: day, CreatedAt: created, Sequence: decimal.NewFromInt(3)}

	entries := []*Entry{next, tax, principal}
	sort.SliceStable(entries, func(i, j int) bool { return StatementLess(entries[i], entries[j]) })

	if entries[0].ID != "p" || entries[1].ID != "t" || entries[2].ID != "n" {
		t.Errorf("expected p,t,n order, got %s,%s,%s", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestStatementLess_PositionBreaksTimestampCollisions(t *testing.T) {
	created := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := date(2025, time.March, 10)
	seq := decimal.NewFromInt(1)

	first := &Entry{ID: "x", EntryDate: day, CreatedAt: created, Sequence: seq, Position: 7}
	second := &Entry{ID: "y", EntryDate: day, CreatedAt: created, Sequence: seq, Position: 8}

	if !StatementLess(first, second) {
		t.Error("lower position should sort first on full timestamp collision")
	}
}

func TestRecomputeLess(t *testing.T) {
	a := &Entry{ID: "b", EntryDate: date(2025, time.March, 1)}
	b := &Entry{ID: "a", EntryDate: date(2025, time.March, 2)}

	if !RecomputeLess(a, b) {
		t.Error("earlier entry date should sort first")
	}

	c := &Entry{ID: "a", EntryDate: date(2025, time.March, 1)}
	if !RecomputeLess(c, a) {
		t.Error("same date should fall back to id order")
	}
}

func TestMatchesBillReference(t *testing.T) {
	e := &Entry{BillReference: "INV-0042"}

	if !e.MatchesBillReference("inv-0042") {
		t.Error("bill reference match should be case-insensitive")
	}
	if e.MatchesBillReference("") {
		t.Error("empty reference should never match")
	}
}

func TestInvoiceSide(t *testing.T) {
	paid := &Invoice{Status: InvoicePaid}
	if paid.Side() != SideCredit {
		t.Error("paid invoice should credit the customer")
	}

	pending := &Invoice{Status: InvoicePending}
	if pending.Side() != SideDebit {
		t.Error("unpaid invoice should debit the customer")
	}
}
