// Package analysis recomputes the derived view of a ledger in one call.
package analysis

import (
	"github.com/cleared-dev/ledgerview/internal/health"
	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/ratios"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

// Snapshot is the derived view of an entry set. It holds no reference to
// the entries and is never updated in place.
type Snapshot struct {
	FinancialYear string
	EntryCount    int
	Totals        totals.Totals
	Ratios        ratios.Ratios
	Health        health.Breakdown
	HealthScore   int
	Status        string
}

// Compute derives a Snapshot from entries. Call it again after every change
// to the entries; nothing is cached between calls.
func Compute(financialYear string, entries []model.JournalEntry) Snapshot {
	t := totals.Aggregate(entries)
	r := ratios.Calculate(t)
	b := health.Evaluate(t, r)
	score := b.Total()
	return Snapshot{
		FinancialYear: financialYear,
		EntryCount:    len(entries),
		Totals:        t,
		Ratios:        r,
		Health:        b,
		HealthScore:   score,
		Status:        health.Status(score),
	}
}

// Recomputer keeps the latest Snapshot for a caller that is notified of
// entry changes, such as a journal service subscriber.
type Recomputer struct {
	load   func(financialYear string) ([]model.JournalEntry, error)
	latest Snapshot
}

// NewRecomputer returns a Recomputer that reads entries with load.
func NewRecomputer(load func(financialYear string) ([]model.JournalEntry, error)) *Recomputer {
	return &Recomputer{load: load}
}

// Refresh reloads the entries of financialYear and replaces the snapshot.
func (r *Recomputer) Refresh(financialYear string) error {
	entries, err := r.load(financialYear)
	if err != nil {
		return err
	}
	r.latest = Compute(financialYear, entries)
	return nil
}

// Latest returns the most recent snapshot.
func (r *Recomputer) Latest() Snapshot {
	return r.latest
}
