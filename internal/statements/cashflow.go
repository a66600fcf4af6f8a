package statements

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// CashFlow is the cash flow statement. Lines are named after the non-cash
// account; inflows are positive.
type CashFlow struct {
	Operating       Group
	Investing       Group
	Financing       Group
	NetChangeInCash decimal.Decimal
}

// NewCashFlow classifies every entry with exactly one cash leg by its other
// leg. Entries between two cash accounts move no cash and are skipped.
func NewCashFlow(entries []model.JournalEntry) CashFlow {
	g := make(grouper)

	for _, e := range entries {
		debitIsCash := e.DebitAccount.NameContains("cash")
		creditIsCash := e.CreditAccount.NameContains("cash")
		if debitIsCash == creditIsCash {
			continue
		}

		other, amt := e.CreditAccount, e.Amount
		if creditIsCash {
			other, amt = e.DebitAccount, e.Amount.Neg()
		}
		g.add(string(ClassifyActivity(other)), other.Name, amt)
	}

	cf := CashFlow{
		Operating: g.group(string(model.SectionOperating)),
		Investing: g.group(string(model.SectionInvesting)),
		Financing: g.group(string(model.SectionFinancing)),
	}
	cf.NetChangeInCash = cf.Operating.Total.Add(cf.Investing.Total).Add(cf.Financing.Total)
	return cf
}

// ClassifyActivity returns the cash flow section of the counter account.
// An explicit tag wins. Otherwise the first matching rule applies:
// operating, then investing, then financing, then operating by default.
func ClassifyActivity(a model.Account) model.CashFlowSection {
	switch strings.ToLower(string(a.CashFlowSection)) {
	case "operating":
		return model.SectionOperating
	case "investing":
		return model.SectionInvesting
	case "financing":
		return model.SectionFinancing
	}

	mentions := func(fragments ...string) bool {
		return a.SubCategoryContains(fragments...) || a.NameContains(fragments...)
	}
	switch {
	case a.Category == model.CategoryRevenue || a.Category == model.CategoryExpense ||
		mentions("revenue", "expense"):
		return model.SectionOperating
	case a.Category == model.CategoryAsset || mentions("asset", "equipment", "investment"):
		return model.SectionInvesting
	case a.Category == model.CategoryEquity || a.Category == model.CategoryLiability ||
		mentions("loan", "capital", "equity", "liability"):
		return model.SectionFinancing
	default:
		return model.SectionOperating
	}
}
