package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
	"github.com/openbooks/openbooks/internal/usecase/mocks"
)

type entryFixture struct {
	txManager *mocks.MockTransactionManager
	tx        *mocks.MockTransaction
	entryRepo *mocks.MockEntryRepository
	idGen     *mocks.MockIDGenerator
	uc        *usecase.EntryUseCase
}

func newEntryFixture(ctrl *gomock.Controller) *entryFixture {
	f := &entryFixture{
		txManager: mocks.NewMockTransactionManager(ctrl),
		tx:        mocks.NewMockTransaction(ctrl),
		entryRepo: mocks.NewMockEntryRepository(ctrl),
		idGen:     mocks.NewMockIDGenerator(ctrl),
	}

	f.uc = usecase.NewEntryUseCase(
		f.txManager,
		f.entryRepo,
		f.idGen,
		domain.SchemaCapabilities{EntryKindTagging: true},
		zerolog.Nop(),
	)

	return f
}

func (f *entryFixture) expectTransaction() {
	f.txManager.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func entryDate() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func TestCreateEntry_WithTaxSibling(t *testing.T) {
	// A customer whose ledger stands at 1000 posts a manual debit of 500
	// with 10% tax: principal lands at 1500, tax sibling at 1550 with
	// sequence principal + 0.5.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)
	f.expectTransaction()

	f.idGen.EXPECT().Generate().Return("e-100")
	f.idGen.EXPECT().Generate().Return("e-101")
	f.entryRepo.EXPECT().LockCustomer(gomock.Any(), f.tx, "cust-1").Return(nil)
	f.entryRepo.EXPECT().LastBalance(gomock.Any(), f.tx, "cust-1").Return(decimal.NewFromInt(1000), nil)
	f.entryRepo.EXPECT().MaxSequenceForDate(gomock.Any(), f.tx, "cust-1", entryDate()).Return(decimal.Zero, nil)

	var created []*domain.Entry
	f.entryRepo.EXPECT().Create(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, e *domain.Entry) error {
			created = append(created, e)
			return nil
		}).Times(2)

	result, err := f.uc.CreateEntry(context.Background(), "cust-1", usecase.CreateEntryInput{
		EntryDate:   entryDate(),
		Description: "Consulting",
		DebitAmount: decimal.NewFromInt(500),
		TaxRate:     decimal.NewFromInt(10),
		TaxAmount:   decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("expected principal and tax entry persisted, got %d", len(created))
	}

	principal, tax := result.Entry, result.TaxEntry
	if !principal.Balance.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected principal balance 1500, got %s", principal.Balance)
	}
	if !principal.Sequence.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected sequence 1, got %s", principal.Sequence)
	}
	if tax == nil {
		t.Fatal("expected a tax sibling")
	}
	if !tax.DebitAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected tax debit 50, got %s", tax.DebitAmount)
	}
	if !tax.Balance.Equal(decimal.NewFromInt(1550)) {
		t.Errorf("expected tax balance 1550, got %s", tax.Balance)
	}
	if !tax.Sequence.Equal(decimal.NewFromFloat(1.5)) {
		t.Errorf("expected tax sequence 1.5, got %s", tax.Sequence)
	}
	if tax.RelatedEntryID != principal.ID {
		t.Error("tax sibling must reference its principal")
	}
}

func TestCreateEntry_NoTax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)
	f.expectTransaction()

	f.idGen.EXPECT().Generate().Return("e-100")
	f.entryRepo.EXPECT().LockCustomer(gomock.Any(), f.tx, "cust-1").Return(nil)
	f.entryRepo.EXPECT().LastBalance(gomock.Any(), f.tx, "cust-1").Return(decimal.Zero, nil)
	f.entryRepo.EXPECT().MaxSequenceForDate(gomock.Any(), f.tx, "cust-1", entryDate()).Return(decimal.NewFromFloat(2.5), nil)
	f.entryRepo.EXPECT().Create(gomock.Any(), f.tx, gomock.Any()).Return(nil)

	result, err := f.uc.CreateEntry(context.Background(), "cust-1", usecase.CreateEntryInput{
		EntryDate:    entryDate(),
		CreditAmount: decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TaxEntry != nil {
		t.Error("no tax sibling expected")
	}
	if !result.Entry.Balance.Equal(decimal.NewFromInt(-250)) {
		t.Errorf("expected balance -250, got %s", result.Entry.Balance)
	}
	// Next sequence is literally max + 1, even past a tax half-step.
	if !result.Entry.Sequence.Equal(decimal.NewFromFloat(3.5)) {
		t.Errorf("expected sequence 3.5, got %s", result.Entry.Sequence)
	}
}

func TestCreateEntry_ValidationRejectsBeforePersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No transaction expectations: validation failures must never reach
	// the store.
	f := newEntryFixture(ctrl)
	f.idGen.EXPECT().Generate().Return("e-100").AnyTimes()

	tests := []struct {
		name  string
		input usecase.CreateEntryInput
		want  error
	}{
		{
			"missing date",
			usecase.CreateEntryInput{DebitAmount: decimal.NewFromInt(10)},
			domain.ErrMissingEntryDate,
		},
		{
			"no amount",
			usecase.CreateEntryInput{EntryDate: entryDate()},
			domain.ErrAmountRequired,
		},
		{
			"both sides",
			usecase.CreateEntryInput{
				EntryDate:    entryDate(),
				DebitAmount:  decimal.NewFromInt(10),
				CreditAmount: decimal.NewFromInt(10),
			},
			domain.ErrBothSidesSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.CreateEntry(context.Background(), "cust-1", tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateEntriesBulk_ChainsFromMaxBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)
	f.expectTransaction()

	f.idGen.EXPECT().Generate().Return("e-1")
	f.idGen.EXPECT().Generate().Return("e-2")
	f.entryRepo.EXPECT().LockCustomer(gomock.Any(), f.tx, "cust-1").Return(nil)

	// The batch strategy reads the running maximum before each insert,
	// not the chronologically previous balance.
	f.entryRepo.EXPECT().MaxBalance(gomock.Any(), f.tx, "cust-1").Return(decimal.NewFromInt(1000), nil)
	f.entryRepo.EXPECT().MaxBalance(gomock.Any(), f.tx, "cust-1").Return(decimal.NewFromInt(1500), nil)
	f.entryRepo.EXPECT().MaxSequenceForDate(gomock.Any(), f.tx, "cust-1", entryDate()).Return(decimal.Zero, nil)
	f.entryRepo.EXPECT().MaxSequenceForDate(gomock.Any(), f.tx, "cust-1", entryDate()).Return(decimal.NewFromInt(1), nil)
	f.entryRepo.EXPECT().Create(gomock.Any(), f.tx, gomock.Any()).Return(nil).Times(2)

	entries, err := f.uc.CreateEntriesBulk(context.Background(), "cust-1", []usecase.CreateEntryInput{
		{EntryDate: entryDate(), DebitAmount: decimal.NewFromInt(500)},
		{EntryDate: entryDate(), DebitAmount: decimal.NewFromInt(200)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Final balance = starting max + sum over the whole batch.
	if !entries[1].Balance.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("expected final balance 1700, got %s", entries[1].Balance)
	}
	if !entries[0].Sequence.Equal(decimal.NewFromInt(1)) || !entries[1].Sequence.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected sequences 1 and 2, got %s and %s", entries[0].Sequence, entries[1].Sequence)
	}
}

func TestCreateEntriesBulk_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)

	_, err := f.uc.CreateEntriesBulk(context.Background(), "cust-1", nil)
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestCreateEntriesBulk_InvalidEntryRejectsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)
	f.idGen.EXPECT().Generate().Return("e-1").AnyTimes()

	_, err := f.uc.CreateEntriesBulk(context.Background(), "cust-1", []usecase.CreateEntryInput{
		{EntryDate: entryDate(), DebitAmount: decimal.NewFromInt(500)},
		{DebitAmount: decimal.NewFromInt(200)}, // missing date
	})
	if !errors.Is(err, domain.ErrMissingEntryDate) {
		t.Errorf("expected ErrMissingEntryDate, got %v", err)
	}
}

func TestDeleteEntry_CascadesAndRecomputes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)
	f.expectTransaction()

	entry := &domain.Entry{ID: "e-1", CustomerID: "cust-1", EntryDate: entryDate()}

	f.entryRepo.EXPECT().GetByIDForUpdate(gomock.Any(), f.tx, "e-1").Return(entry, nil)
	f.entryRepo.EXPECT().LockCustomer(gomock.Any(), f.tx, "cust-1").Return(nil)
	f.entryRepo.EXPECT().Delete(gomock.Any(), f.tx, "e-1").Return(nil)
	f.entryRepo.EXPECT().DeleteByRelated(gomock.Any(), f.tx, "e-1").Return(int64(1), nil)
	// Recomputation is scoped to the deleted entry's position so entries
	// ordered before it keep their balances.
	f.entryRepo.EXPECT().RecomputeBalances(gomock.Any(), f.tx, "cust-1", entryDate(), "e-1").Return(nil)

	if err := f.uc.DeleteEntry(context.Background(), "e-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)
	f.txManager.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	f.entryRepo.EXPECT().GetByIDForUpdate(gomock.Any(), f.tx, "missing").Return(nil, domain.ErrEntryNotFound)

	err := f.uc.DeleteEntry(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteEntry_RecomputeFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)

	recomputeErr := errors.New("recompute failed")
	entry := &domain.Entry{ID: "e-1", CustomerID: "cust-1", EntryDate: entryDate()}

	f.txManager.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	f.entryRepo.EXPECT().GetByIDForUpdate(gomock.Any(), f.tx, "e-1").Return(entry, nil)
	f.entryRepo.EXPECT().LockCustomer(gomock.Any(), f.tx, "cust-1").Return(nil)
	f.entryRepo.EXPECT().Delete(gomock.Any(), f.tx, "e-1").Return(nil)
	f.entryRepo.EXPECT().DeleteByRelated(gomock.Any(), f.tx, "e-1").Return(int64(0), nil)
	f.entryRepo.EXPECT().RecomputeBalances(gomock.Any(), f.tx, "cust-1", entryDate(), "e-1").Return(recomputeErr)

	if err := f.uc.DeleteEntry(context.Background(), "e-1"); !errors.Is(err, recomputeErr) {
		t.Errorf("expected recompute error, got %v", err)
	}
}

func TestUpdateEntry_NonAmountFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)

	description := "Adjusted description"
	status := domain.StatusPaid
	fields := usecase.UpdateEntryFields{Description: &description, Status: &status}

	updated := &domain.Entry{ID: "e-1", Description: description, Status: status}
	f.entryRepo.EXPECT().UpdateFields(gomock.Any(), "e-1", fields).Return(updated, nil)

	entry, err := f.uc.UpdateEntry(context.Background(), "e-1", fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Description != description || entry.Status != status {
		t.Error("updated fields not applied")
	}
}

type retryOnce struct {
	attempts int
}

func (r *retryOnce) Retry(_ context.Context, operation func() error) error {
	r.attempts++
	if err := operation(); err != nil {
		r.attempts++
		return operation()
	}
	return nil
}

func TestCreateEntry_RetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEntryFixture(ctrl)

	retrier := &retryOnce{}
	f.uc.WithRetrier(retrier)

	f.idGen.EXPECT().Generate().Return("e-900")

	// First attempt dies on Begin, second runs to completion.
	transient := errors.New("deadlock detected")
	f.txManager.EXPECT().Begin(gomock.Any()).Return(nil, transient)
	f.expectTransaction()

	f.entryRepo.EXPECT().LockCustomer(gomock.Any(), f.tx, "cust-9").Return(nil)
	f.entryRepo.EXPECT().LastBalance(gomock.Any(), f.tx, "cust-9").Return(decimal.Zero, nil)
	f.entryRepo.EXPECT().MaxSequenceForDate(gomock.Any(), f.tx, "cust-9", entryDate()).Return(decimal.Zero, nil)
	f.entryRepo.EXPECT().Create(gomock.Any(), f.tx, gomock.Any()).Return(nil)

	result, err := f.uc.CreateEntry(context.Background(), "cust-9", usecase.CreateEntryInput{
		EntryDate:   entryDate(),
		Description: "retried",
		DebitAmount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retrier.attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", retrier.attempts)
	}
	if !result.Entry.Balance.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected balance 10, got %s", result.Entry.Balance)
	}
}
