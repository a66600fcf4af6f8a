// Package totals folds journal entries into the flat set of accounting
// totals every report and ratio is derived from.
package totals

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// Totals is the derived, immutable summary of an entry set. Every field is
// a sum of signed leg amounts, so the result depends only on the multiset
// of entries.
type Totals struct {
	Assets                decimal.Decimal
	Liabilities           decimal.Decimal
	TotalEquity           decimal.Decimal
	Revenue               decimal.Decimal
	Expenses              decimal.Decimal
	NetIncome             decimal.Decimal
	OCI                   decimal.Decimal
	CurrentAssets         decimal.Decimal
	NonCurrentAssets      decimal.Decimal
	CurrentLiabilities    decimal.Decimal
	NonCurrentLiabilities decimal.Decimal

	NetSales          decimal.Decimal
	COGS              decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	OperatingProfit   decimal.Decimal
	InterestExpense   decimal.Decimal
	ProfitBeforeTax   decimal.Decimal
	NetProfitAfterTax decimal.Decimal

	TotalDebt          decimal.Decimal
	ShareholdersEquity decimal.Decimal
	CapitalEmployed    decimal.Decimal
	TotalInvestment    decimal.Decimal

	CashAndCashEquivalents decimal.Decimal
	Inventory              decimal.Decimal
	AccountsReceivable     decimal.Decimal
	AccountsPayable        decimal.Decimal
	NetFixedAssets         decimal.Decimal
	WorkingCapital         decimal.Decimal
	NetCreditSales         decimal.Decimal
	NetCreditPurchases     decimal.Decimal

	OperatingCashFlow decimal.Decimal
	CashInflows       decimal.Decimal
	CashOutflows      decimal.Decimal
}

// Aggregate computes Totals for entries in a single pass. Entries are
// assumed well formed; accounts missing tags only reach the coarse totals.
func Aggregate(entries []model.JournalEntry) Totals {
	var t Totals
	for _, e := range entries {
		for _, leg := range e.Legs() {
			t.apply(leg)
		}
	}
	t.derive()
	return t
}

// apply adds one leg's effect. dr is the debit-positive signed amount, so
// credit-normal buckets subtract it.
func (t *Totals) apply(leg model.Leg) {
	a := leg.Account
	dr := leg.Signed()

	switch a.Category {
	case model.CategoryAsset:
		t.Assets = t.Assets.Add(dr)
	case model.CategoryLiability:
		t.Liabilities = t.Liabilities.Sub(dr)
	case model.CategoryEquity:
		t.TotalEquity = t.TotalEquity.Sub(dr)
	case model.CategoryRevenue:
		if a.FinancialStatement == model.StatementIncome {
			t.NetIncome = t.NetIncome.Sub(dr)
			t.Revenue = t.Revenue.Sub(dr)
		}
	case model.CategoryExpense:
		if a.FinancialStatement == model.StatementIncome {
			t.NetIncome = t.NetIncome.Sub(dr)
			t.Expenses = t.Expenses.Add(dr)
		}
	}

	switch a.SubCategory {
	case model.SubCurrentAsset:
		t.CurrentAssets = t.CurrentAssets.Add(dr)
	case model.SubNonCurrentAsset:
		t.NonCurrentAssets = t.NonCurrentAssets.Add(dr)
	case model.SubContraAsset:
		t.NonCurrentAssets = t.NonCurrentAssets.Add(dr)
	case model.SubCurrentLiability:
		t.CurrentLiabilities = t.CurrentLiabilities.Sub(dr)
	case model.SubNonCurrentLiability, model.SubContraLiability:
		t.NonCurrentLiabilities = t.NonCurrentLiabilities.Sub(dr)
	}

	if a.FinancialStatement == model.StatementComprehensiveIncome {
		t.OCI = t.OCI.Sub(dr)
	}

	if a.Category == model.CategoryRevenue && a.NameContains("sales", "revenue") {
		t.NetSales = t.NetSales.Sub(dr)
	}
	if a.Category == model.CategoryExpense {
		if a.SubCategory == model.SubCostOfGoodsSold || a.NameContains("cost of goods sold") {
			t.COGS = t.COGS.Add(dr)
		}
		if a.SubCategoryContains("interest expense") || a.NameContains("interest") {
			t.InterestExpense = t.InterestExpense.Add(dr)
		}
	}
	// Case-sensitive so "Non-operating Expense" stays out.
	if strings.Contains(a.SubCategory, model.SubOperatingExpense) {
		t.OperatingExpenses = t.OperatingExpenses.Add(dr)
	}

	if a.NameContains("cash") {
		t.CashAndCashEquivalents = t.CashAndCashEquivalents.Add(dr)
		if a.SubCategory == model.SubCurrentAsset {
			if leg.Debit {
				t.CashInflows = t.CashInflows.Add(leg.Amount)
			} else {
				t.CashOutflows = t.CashOutflows.Add(leg.Amount)
			}
		}
	}
	if a.NameContains("inventory") {
		t.Inventory = t.Inventory.Add(dr)
	}
	if a.NameContains("receivable") {
		t.AccountsReceivable = t.AccountsReceivable.Add(dr)
	}
	if a.NameContains("payable") {
		t.AccountsPayable = t.AccountsPayable.Sub(dr)
	}
	if a.SubCategory == model.SubNonCurrentAsset && !a.NameContains("intangible") {
		t.NetFixedAssets = t.NetFixedAssets.Add(dr)
	}
	if a.Category == model.CategoryLiability && a.NameContains("loan", "debt", "bond") {
		t.TotalDebt = t.TotalDebt.Sub(dr)
	}
	if a.FinancialStatement == model.StatementCashFlow && strings.Contains(strings.ToLower(string(a.CashFlowSection)), "operating") {
		t.OperatingCashFlow = t.OperatingCashFlow.Add(dr)
	}
}

func (t *Totals) derive() {
	t.TotalEquity = t.TotalEquity.Add(t.NetIncome).Add(t.OCI)
	t.GrossProfit = t.NetSales.Sub(t.COGS)
	t.OperatingProfit = t.GrossProfit.Sub(t.OperatingExpenses)
	t.ProfitBeforeTax = t.OperatingProfit.Sub(t.InterestExpense)
	t.NetProfitAfterTax = t.NetIncome
	t.ShareholdersEquity = t.TotalEquity
	t.CapitalEmployed = t.ShareholdersEquity.Add(t.TotalDebt)
	t.TotalInvestment = t.Assets
	t.WorkingCapital = t.CurrentAssets.Sub(t.CurrentLiabilities)
	t.NetCreditSales = t.NetSales
	t.NetCreditPurchases = t.COGS
}
