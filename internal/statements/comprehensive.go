package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

// ComprehensiveIncome adds other comprehensive income to net income.
type ComprehensiveIncome struct {
	NetIncome                decimal.Decimal
	Revenue                  Group
	Expense                  Group
	TotalComprehensiveIncome decimal.Decimal
}

// NewComprehensiveIncome isolates legs posted to comprehensive income
// accounts. Revenue lines are credit positive and expense lines debit
// positive.
func NewComprehensiveIncome(entries []model.JournalEntry) ComprehensiveIncome {
	g := make(grouper)
	for _, e := range entries {
		for _, leg := range e.Legs() {
			a := leg.Account
			if a.FinancialStatement != model.StatementComprehensiveIncome {
				continue
			}
			switch a.Category {
			case model.CategoryRevenue:
				g.add(string(model.CategoryRevenue), a.Name, leg.Signed().Neg())
			case model.CategoryExpense:
				g.add(string(model.CategoryExpense), a.Name, leg.Signed())
			}
		}
	}

	ci := ComprehensiveIncome{
		NetIncome: totals.Aggregate(entries).NetIncome,
		Revenue:   g.group(string(model.CategoryRevenue)),
		Expense:   g.group(string(model.CategoryExpense)),
	}
	ci.TotalComprehensiveIncome = ci.NetIncome.Add(ci.Revenue.Total).Sub(ci.Expense.Total)
	return ci
}
