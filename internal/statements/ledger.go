package statements

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// LedgerLine is one posting in a T-account. Exactly one of Debit and
// Credit is non-zero.
type LedgerLine struct {
	Date        time.Time
	EntryID     string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// Ledger is the T-account of one chart account.
type Ledger struct {
	Account model.Account
	Lines   []LedgerLine
	Balance decimal.Decimal
}

// Side labels the closing balance Dr or Cr.
func (l Ledger) Side() string {
	if l.Balance.IsNegative() {
		return "Cr"
	}
	return "Dr"
}

// NewLedgers builds a ledger per chart account. Postings are ordered by
// date, then entry ID, and the running balance is debit positive.
func NewLedgers(chart []model.Account, entries []model.JournalEntry) []Ledger {
	sorted := append([]model.JournalEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	index := make(map[int]int, len(chart))
	ledgers := make([]Ledger, len(chart))
	for i, a := range chart {
		index[a.ID] = i
		ledgers[i].Account = a
	}

	post := func(accountID int, e model.JournalEntry, debit bool) {
		i, ok := index[accountID]
		if !ok {
			return
		}
		l := &ledgers[i]
		line := LedgerLine{Date: e.Date, EntryID: e.ID, Description: e.Description}
		if debit {
			line.Debit = e.Amount
			l.Balance = l.Balance.Add(e.Amount)
		} else {
			line.Credit = e.Amount
			l.Balance = l.Balance.Sub(e.Amount)
		}
		line.Balance = l.Balance
		l.Lines = append(l.Lines, line)
	}

	for _, e := range sorted {
		post(e.DebitAccount.ID, e, true)
		post(e.CreditAccount.ID, e, false)
	}
	return ledgers
}

// FilterLedgers keeps the ledgers of one category. An empty category keeps
// all ledgers.
func FilterLedgers(ledgers []Ledger, category model.Category) []Ledger {
	if category == "" {
		return ledgers
	}
	var out []Ledger
	for _, l := range ledgers {
		if l.Account.Category == category {
			out = append(out, l)
		}
	}
	return out
}
