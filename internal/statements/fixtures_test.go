package statements

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func acct(id int, name string, cat model.Category, sub string, fs model.FinancialStatement) model.Account {
	return model.Account{ID: id, Name: name, Category: cat, SubCategory: sub, FinancialStatement: fs}
}

func tagged(a model.Account, section model.CashFlowSection) model.Account {
	a.CashFlowSection = section
	return a
}

var (
	cash           = acct(1010, "Cash", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet)
	receivable     = tagged(acct(1200, "Accounts Receivable", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet), model.SectionOperating)
	inventory      = acct(1300, "Inventory", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet)
	equipment      = acct(1500, "Equipment", model.CategoryAsset, model.SubNonCurrentAsset, model.StatementBalanceSheet)
	accumDep       = acct(1510, "Accumulated Depreciation", model.CategoryAsset, model.SubContraAsset, model.StatementBalanceSheet)
	payable        = tagged(acct(2010, "Accounts Payable", model.CategoryLiability, model.SubCurrentLiability, model.StatementBalanceSheet), model.SectionOperating)
	loan           = tagged(acct(2500, "Bank Loan", model.CategoryLiability, model.SubNonCurrentLiability, model.StatementBalanceSheet), model.SectionFinancing)
	capital        = tagged(acct(3010, "Share Capital", model.CategoryEquity, model.SubEquity, model.StatementChangesInEquity), model.SectionFinancing)
	drawings       = acct(3020, "Drawings", model.CategoryEquity, model.SubEquity, model.StatementChangesInEquity)
	sales          = acct(4010, "Sales Revenue", model.CategoryRevenue, model.SubRevenue, model.StatementIncome)
	returns        = acct(4020, "Sales Returns", model.CategoryRevenue, model.SubContraRevenue, model.StatementIncome)
	interestIncome = acct(4100, "Interest Income", model.CategoryRevenue, model.SubInterestIncome, model.StatementIncome)
	gain           = acct(4200, "Gain on Disposal", model.CategoryRevenue, model.SubNonOperatingIncome, model.StatementIncome)
	revaluation    = acct(4900, "Revaluation Surplus", model.CategoryRevenue, "Other Comprehensive Income", model.StatementComprehensiveIncome)
	cogs           = acct(5010, "Cost of Goods Sold", model.CategoryExpense, model.SubCostOfGoodsSold, model.StatementIncome)
	rent           = acct(5100, "Rent Expense", model.CategoryExpense, model.SubOperatingExpense, model.StatementIncome)
	depreciation   = acct(5200, "Depreciation Expense", model.CategoryExpense, model.SubDepreciation, model.StatementIncome)
	interestExp    = acct(5300, "Interest Expense", model.CategoryExpense, model.SubInterestExpense, model.StatementIncome)
	loss           = acct(5400, "Loss on Disposal", model.CategoryExpense, model.SubNonOperatingExpense, model.StatementIncome)
	tax            = acct(5500, "Income Tax Expense", model.CategoryExpense, model.SubTaxExpense, model.StatementIncome)
	translation    = acct(5900, "Translation Loss", model.CategoryExpense, "Other Comprehensive Income", model.StatementComprehensiveIncome)
)

func chart() []model.Account {
	return []model.Account{cash, receivable, inventory, equipment, accumDep, payable, loan, capital, drawings,
		sales, returns, interestIncome, gain, revaluation, cogs, rent, depreciation, interestExp, loss, tax, translation}
}

var day0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// ledger is a year of trading for a small shop. Entry n is dated n days
// after 1 January.
func ledger() []model.JournalEntry {
	legs := []struct {
		debit, credit model.Account
		amount        string
	}{
		{cash, capital, "100000"},
		{cash, loan, "50000"},
		{equipment, cash, "40000"},
		{inventory, payable, "20000"},
		{cash, sales, "60000"},
		{receivable, sales, "30000"},
		{returns, cash, "2000"},
		{cogs, inventory, "15000"},
		{rent, cash, "8000"},
		{depreciation, accumDep, "4000"},
		{interestExp, cash, "3000"},
		{cash, interestIncome, "1000"},
		{cash, gain, "500"},
		{loss, cash, "700"},
		{tax, cash, "5000"},
		{drawings, cash, "6000"},
		{equipment, revaluation, "3000"},
		{translation, cash, "400"},
		{payable, cash, "10000"},
		{cash, receivable, "12000"},
	}

	entries := make([]model.JournalEntry, len(legs))
	for i, l := range legs {
		entries[i] = model.JournalEntry{
			ID:            fmt.Sprintf("FY2025-%04d", i+1),
			Date:          day0.AddDate(0, 0, i),
			Description:   fmt.Sprintf("entry %d", i+1),
			DebitAccount:  l.debit,
			CreditAccount: l.credit,
			Amount:        dec(l.amount),
			FinancialYear: "FY2025",
		}
	}
	return entries
}

func lineAmounts(g Group) map[string]string {
	out := make(map[string]string, len(g.Lines))
	for _, l := range g.Lines {
		out[l.Name] = l.Amount.String()
	}
	return out
}
