package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// Fallback group names for untagged income statement accounts.
const (
	GroupOtherRevenue  = "Other Revenue"
	GroupOtherExpenses = "Other Expenses"
)

// incomeOrder is the display order of the standard income statement groups.
var incomeOrder = []string{
	model.SubRevenue,
	model.SubContraRevenue,
	model.SubCostOfGoodsSold,
	model.SubOperatingExpense,
	model.SubDepreciation,
	model.SubInterestIncome,
	model.SubInterestExpense,
	model.SubNonOperatingIncome,
	model.SubNonOperatingExpense,
	model.SubTaxExpense,
}

// IncomeStatement is the profit and loss waterfall.
type IncomeStatement struct {
	Groups []Group

	Revenue              decimal.Decimal
	ContraRevenue        decimal.Decimal
	COGS                 decimal.Decimal
	OperatingExpenses    decimal.Decimal
	Depreciation         decimal.Decimal
	FinanceIncome        decimal.Decimal
	FinanceCost          decimal.Decimal
	NonOperatingIncome   decimal.Decimal
	NonOperatingExpenses decimal.Decimal
	TaxExpense           decimal.Decimal

	NetRevenue      decimal.Decimal
	GrossProfit     decimal.Decimal
	EBITDA          decimal.Decimal
	EBIT            decimal.Decimal
	IncomeBeforeTax decimal.Decimal
	NetIncome       decimal.Decimal
}

// NewIncomeStatement groups income-statement revenue and expense legs by
// sub-category. Revenue lines are credit positive, expense and contra
// revenue lines debit positive, so reversals reduce their bucket.
func NewIncomeStatement(entries []model.JournalEntry) IncomeStatement {
	var is IncomeStatement
	g := make(grouper)

	for _, e := range entries {
		for _, leg := range e.Legs() {
			a := leg.Account
			if a.FinancialStatement != model.StatementIncome {
				continue
			}
			switch a.Category {
			case model.CategoryExpense:
				amt := leg.Signed()
				g.add(groupKey(a.SubCategory, GroupOtherExpenses), a.Name, amt)
				is.addExpense(a, amt)
			case model.CategoryRevenue:
				if a.SubCategory == model.SubContraRevenue {
					amt := leg.Signed()
					g.add(model.SubContraRevenue, a.Name, amt)
					is.ContraRevenue = is.ContraRevenue.Add(amt)
					continue
				}
				amt := leg.Signed().Neg()
				g.add(groupKey(a.SubCategory, GroupOtherRevenue), a.Name, amt)
				is.addRevenue(a, amt)
			}
		}
	}

	for _, name := range incomeOrder {
		if _, ok := g[name]; ok {
			is.Groups = append(is.Groups, g.group(name))
		}
	}
	for _, name := range g.names(incomeOrder...) {
		is.Groups = append(is.Groups, g.group(name))
	}

	is.NetRevenue = is.Revenue.Sub(is.ContraRevenue)
	is.GrossProfit = is.NetRevenue.Sub(is.COGS)
	is.EBITDA = is.GrossProfit.Sub(is.OperatingExpenses)
	is.EBIT = is.EBITDA.Sub(is.Depreciation)
	is.IncomeBeforeTax = is.EBIT.
		Add(is.FinanceIncome).
		Sub(is.FinanceCost).
		Add(is.NonOperatingIncome).
		Sub(is.NonOperatingExpenses)
	is.NetIncome = is.IncomeBeforeTax.Sub(is.TaxExpense)
	return is
}

func (is *IncomeStatement) addExpense(a model.Account, amt decimal.Decimal) {
	switch {
	case a.SubCategory == model.SubCostOfGoodsSold:
		is.COGS = is.COGS.Add(amt)
	case a.SubCategory == model.SubDepreciation:
		is.Depreciation = is.Depreciation.Add(amt)
	case a.SubCategoryContains("interest expense"):
		is.FinanceCost = is.FinanceCost.Add(amt)
	case a.SubCategoryContains("tax expense"):
		is.TaxExpense = is.TaxExpense.Add(amt)
	case a.SubCategoryContains("non"):
		is.NonOperatingExpenses = is.NonOperatingExpenses.Add(amt)
	default:
		is.OperatingExpenses = is.OperatingExpenses.Add(amt)
	}
}

func (is *IncomeStatement) addRevenue(a model.Account, amt decimal.Decimal) {
	switch {
	case a.SubCategoryContains("interest income"):
		is.FinanceIncome = is.FinanceIncome.Add(amt)
	case a.SubCategoryContains("non"):
		is.NonOperatingIncome = is.NonOperatingIncome.Add(amt)
	default:
		is.Revenue = is.Revenue.Add(amt)
	}
}

func groupKey(sub, fallback string) string {
	if sub == "" {
		return fallback
	}
	return sub
}
