package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// TrialBalanceRow is one chart account's activity. Debit and Credit hold
// the net balance on its side; the other is zero.
type TrialBalanceRow struct {
	Account     model.Account
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// TrialBalance lists every chart account with its net balance.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}

var tolerance = decimal.New(1, -2)

// NewTrialBalance sums entries per chart account in chart order. Legs
// posted to accounts missing from the chart are ignored.
func NewTrialBalance(chart []model.Account, entries []model.JournalEntry) TrialBalance {
	index := make(map[int]int, len(chart))
	rows := make([]TrialBalanceRow, len(chart))
	for i, a := range chart {
		index[a.ID] = i
		rows[i].Account = a
	}

	for _, e := range entries {
		if i, ok := index[e.DebitAccount.ID]; ok {
			rows[i].DebitTotal = rows[i].DebitTotal.Add(e.Amount)
		}
		if i, ok := index[e.CreditAccount.ID]; ok {
			rows[i].CreditTotal = rows[i].CreditTotal.Add(e.Amount)
		}
	}

	tb := TrialBalance{Rows: rows}
	for i := range rows {
		net := rows[i].DebitTotal.Sub(rows[i].CreditTotal)
		if net.IsPositive() {
			rows[i].Debit = net
		} else {
			rows[i].Credit = net.Neg()
		}
		tb.TotalDebit = tb.TotalDebit.Add(rows[i].Debit)
		tb.TotalCredit = tb.TotalCredit.Add(rows[i].Credit)
	}
	tb.Balanced = tb.TotalDebit.Sub(tb.TotalCredit).Abs().LessThan(tolerance)
	return tb
}

// Active returns the rows with a non-zero balance.
func (tb TrialBalance) Active() []TrialBalanceRow {
	var out []TrialBalanceRow
	for _, r := range tb.Rows {
		if !r.Debit.IsZero() || !r.Credit.IsZero() {
			out = append(out, r)
		}
	}
	return out
}
