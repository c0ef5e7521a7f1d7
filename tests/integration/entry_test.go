package integration

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/adapter/repository/postgres"
	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
	"github.com/openbooks/openbooks/tests/testutil"

	"github.com/rs/zerolog"
)

func newEntryUseCase(t *testing.T, testDB *testutil.TestDB) (*usecase.EntryUseCase, *postgres.EntryRepository) {
	t.Helper()

	ctx := context.Background()
	caps, err := postgres.ProbeCapabilities(ctx, testDB.Pool)
	if err != nil {
		t.Fatalf("failed to probe capabilities: %v", err)
	}

	entryRepo := postgres.NewEntryRepository(testDB.Pool, caps)
	txManager := postgres.NewTxManager(testDB.Pool)
	idGen := postgres.NewULIDGenerator()

	uc := usecase.NewEntryUseCase(txManager, entryRepo, idGen, caps, zerolog.Nop()).
		WithRetrier(postgres.NewRetrier())
	return uc, entryRepo
}

func TestCreateEntryWithTaxSibling(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc, _ := newEntryUseCase(t, testDB)
	customerID := testutil.GenerateID()

	result, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Invoice INV-100",
		DebitAmount: decimal.NewFromInt(100),
		TaxRate:     decimal.RequireFromString("17.70"),
		TaxAmount:   decimal.RequireFromString("17.70"),
		Kind:        domain.KindInvoice,
	})
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	if result.TaxEntry == nil {
		t.Fatal("expected a tax sibling to be created")
	}
	if result.TaxEntry.RelatedEntryID != result.Entry.ID {
		t.Errorf("tax sibling not linked to principal: %s", result.TaxEntry.RelatedEntryID)
	}

	wantSeq := result.Entry.Sequence.Add(domain.TaxSequenceOffset)
	if !result.TaxEntry.Sequence.Equal(wantSeq) {
		t.Errorf("expected tax sequence %s, got %s", wantSeq, result.TaxEntry.Sequence)
	}

	wantBalance := decimal.RequireFromString("117.70")
	if !result.TaxEntry.Balance.Equal(wantBalance) {
		t.Errorf("expected tax balance %s, got %s", wantBalance, result.TaxEntry.Balance)
	}
}

func TestCreateEntryChainsOffLastBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc, _ := newEntryUseCase(t, testDB)
	customerID := testutil.GenerateID()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   day,
		Description: "opening",
		DebitAmount: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("failed to create first entry: %v", err)
	}

	second, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:    day,
		Description:  "payment received",
		CreditAmount: decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("failed to create second entry: %v", err)
	}

	if !first.Entry.Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected first balance 500, got %s", first.Entry.Balance)
	}
	if !second.Entry.Balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected second balance 300, got %s", second.Entry.Balance)
	}
	if !second.Entry.Sequence.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected second sequence 2, got %s", second.Entry.Sequence)
	}
}

func TestDeleteEntryCascadesAndRecomputes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc, entryRepo := newEntryUseCase(t, testDB)
	customerID := testutil.GenerateID()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	taxed, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   day,
		Description: "Invoice INV-200",
		DebitAmount: decimal.NewFromInt(100),
		TaxAmount:   decimal.NewFromInt(18),
		Kind:        domain.KindInvoice,
	})
	if err != nil {
		t.Fatalf("failed to create taxed entry: %v", err)
	}

	later, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   day.AddDate(0, 0, 1),
		Description: "later charge",
		DebitAmount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("failed to create later entry: %v", err)
	}

	if err := uc.DeleteEntry(ctx, taxed.Entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}

	if _, err := entryRepo.GetByID(ctx, taxed.TaxEntry.ID); err != domain.ErrEntryNotFound {
		t.Errorf("expected tax sibling gone, got %v", err)
	}

	remaining, err := entryRepo.GetByID(ctx, later.Entry.ID)
	if err != nil {
		t.Fatalf("failed to reload remaining entry: %v", err)
	}
	if !remaining.Balance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected recomputed balance 50, got %s", remaining.Balance)
	}
}

func TestDeleteEntryLeavesEarlierBalancesUntouched(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc, entryRepo := newEntryUseCase(t, testDB)
	customerID := testutil.GenerateID()

	// Single creates chain off the statement-order tail, so a backdated
	// entry carries a balance that diverges from the (entryDate, id) fold.
	// Deleting a later entry must not erase that divergence.
	a, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "march charge",
		DebitAmount: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	b, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "backdated charge",
		DebitAmount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("failed to create backdated entry: %v", err)
	}

	c, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Description: "late charge",
		DebitAmount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("failed to create late entry: %v", err)
	}

	if !b.Entry.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected backdated balance 150, got %s", b.Entry.Balance)
	}

	// Deleting the last entry recomputes nothing before it.
	if err := uc.DeleteEntry(ctx, c.Entry.ID); err != nil {
		t.Fatalf("failed to delete late entry: %v", err)
	}

	reloadedA, err := entryRepo.GetByID(ctx, a.Entry.ID)
	if err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	reloadedB, err := entryRepo.GetByID(ctx, b.Entry.ID)
	if err != nil {
		t.Fatalf("failed to reload backdated entry: %v", err)
	}
	if !reloadedA.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected untouched balance 100, got %s", reloadedA.Balance)
	}
	if !reloadedB.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected untouched backdated balance 150, got %s", reloadedB.Balance)
	}
}

func TestDeleteEntryRecomputesOnlyFromDeletedPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc, entryRepo := newEntryUseCase(t, testDB)
	customerID := testutil.GenerateID()

	a, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "march charge",
		DebitAmount: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	b, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "backdated charge",
		DebitAmount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("failed to create backdated entry: %v", err)
	}

	c, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Description: "late charge",
		DebitAmount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("failed to create late entry: %v", err)
	}

	// Deleting the middle of the recompute order rewrites only the
	// entries at or after its (entryDate, id) position.
	if err := uc.DeleteEntry(ctx, a.Entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}

	remaining := []*domain.Entry{}
	for _, id := range []string{b.Entry.ID, c.Entry.ID} {
		e, err := entryRepo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("failed to reload entry %s: %v", id, err)
		}
		remaining = append(remaining, e)
	}

	// Expected balances: fold the survivors in recompute order, but only
	// entries at or after the deleted position take the folded value.
	sort.Slice(remaining, func(i, j int) bool {
		return domain.RecomputeLess(remaining[i], remaining[j])
	})

	running := decimal.Zero
	for _, e := range remaining {
		running = running.Add(e.DebitAmount).Sub(e.CreditAmount)
		deletedPos := &domain.Entry{EntryDate: a.Entry.EntryDate, ID: a.Entry.ID}
		if domain.RecomputeLess(e, deletedPos) {
			continue
		}
		if !e.Balance.Equal(running) {
			t.Errorf("entry %s: expected recomputed balance %s, got %s", e.ID, running, e.Balance)
		}
	}

	reloadedB := remaining[0]
	if !reloadedB.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("entry before the deleted position must keep balance 150, got %s", reloadedB.Balance)
	}
	reloadedC := remaining[1]
	if !reloadedC.Balance.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected recomputed balance 60, got %s", reloadedC.Balance)
	}
}

func TestUpdateEntryFields(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc, _ := newEntryUseCase(t, testDB)
	customerID := testutil.GenerateID()

	created, err := uc.CreateEntry(ctx, customerID, usecase.CreateEntryInput{
		EntryDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "before",
		DebitAmount: decimal.NewFromInt(75),
	})
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	desc := "after"
	status := domain.StatusPaid
	mode := "cheque"
	updated, err := uc.UpdateEntry(ctx, created.Entry.ID, usecase.UpdateEntryFields{
		Description: &desc,
		Status:      &status,
		PaymentMode: &mode,
	})
	if err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}

	if updated.Description != "after" || updated.Status != domain.StatusPaid || updated.PaymentMode != "cheque" {
		t.Errorf("unexpected updated entry: %+v", updated)
	}
	if !updated.DebitAmount.Equal(decimal.NewFromInt(75)) {
		t.Errorf("amount must not change on update, got %s", updated.DebitAmount)
	}
}
