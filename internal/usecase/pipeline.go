package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// sequenceEntries establishes the total statement order in place.
func sequenceEntries(entries []*domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return domain.StatementLess(entries[i], entries[j])
	})
}

// foldBalances assigns running balances over an already sequenced slice.
// The first entry folds against a previous balance of zero.
func foldBalances(entries []*domain.Entry) {
	running := decimal.Zero
	for _, e := range entries {
		running = running.Add(e.Signed())
		e.Balance = running
	}
}

// applyDaysOutstanding computes the aging of each entry relative to now.
// Display-only; not part of the accounting invariant.
func applyDaysOutstanding(entries []*domain.Entry, now time.Time) {
	for _, e := range entries {
		e.DaysOutstanding = daysOutstanding(e.EntryDate, now)
	}
}

func daysOutstanding(entryDate, now time.Time) int {
	elapsed := now.Sub(entryDate)
	if elapsed <= 0 {
		return 0
	}

	return int(math.Ceil(elapsed.Hours() / 24))
}
