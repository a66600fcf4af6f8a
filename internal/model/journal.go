package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one double-entry transaction: a single debit leg and a
// single credit leg of the same amount. The accounts are full snapshots so
// derivations never need a separate lookup.
type JournalEntry struct {
	ID            string // "<financial year>-NNNN"
	Date          time.Time
	Description   string
	DebitAccount  Account
	CreditAccount Account
	Amount        decimal.Decimal // always positive
	FinancialYear string
}

// Legs returns the two legs of the entry, debit first.
func (e JournalEntry) Legs() [2]Leg {
	return [2]Leg{
		{Account: e.DebitAccount, Amount: e.Amount, Debit: true},
		{Account: e.CreditAccount, Amount: e.Amount, Debit: false},
	}
}

// Leg is one side of a journal entry.
type Leg struct {
	Account Account
	Amount  decimal.Decimal
	Debit   bool
}

// Signed returns the amount with debits positive and credits negative.
func (l Leg) Signed() decimal.Decimal {
	if l.Debit {
		return l.Amount
	}
	return l.Amount.Neg()
}

// DraftEntry is an unsaved entry referring to accounts by name, as produced
// by the transaction parser or typed in by hand.
type DraftEntry struct {
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// FilterYear returns the entries booked to a financial year. An empty year
// returns all entries.
func FilterYear(entries []JournalEntry, year string) []JournalEntry {
	if year == "" {
		return entries
	}
	var out []JournalEntry
	for _, e := range entries {
		if e.FinancialYear == year {
			out = append(out, e)
		}
	}
	return out
}
