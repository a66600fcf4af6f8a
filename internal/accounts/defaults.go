package accounts

import "github.com/cleared-dev/ledgerview/internal/model"

// Chart templates accepted by DefaultChart.
const (
	TemplateTrading  = "trading"
	TemplateServices = "services"
)

// DefaultChart returns a fully tagged chart of accounts for a business
// template. Unknown templates fall back to trading.
func DefaultChart(template string) []model.Account {
	switch template {
	case TemplateServices:
		return servicesChart()
	default:
		return tradingChart()
	}
}

func tradingChart() []model.Account {
	chart := commonBalanceSheet()
	chart = append(chart,
		debitAccount(1300, "Inventory", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet, model.SectionOperating, "Goods held for sale"),
		creditAccount(4010, "Sales Revenue", model.CategoryRevenue, model.SubRevenue, model.StatementIncome, model.SectionOperating, "Sales of goods"),
		debitAccount(4020, "Sales Returns", model.CategoryRevenue, model.SubContraRevenue, model.StatementIncome, model.SectionOperating, "Returns and allowances"),
		debitAccount(5010, "Cost of Goods Sold", model.CategoryExpense, model.SubCostOfGoodsSold, model.StatementIncome, model.SectionOperating, "Cost of inventory sold"),
	)
	return append(chart, commonProfitAndLoss()...)
}

func servicesChart() []model.Account {
	chart := commonBalanceSheet()
	chart = append(chart,
		creditAccount(4010, "Service Revenue", model.CategoryRevenue, model.SubRevenue, model.StatementIncome, model.SectionOperating, "Fees for services"),
	)
	return append(chart, commonProfitAndLoss()...)
}

func commonBalanceSheet() []model.Account {
	return []model.Account{
		debitAccount(1010, "Cash", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet, model.SectionNA, "Cash on hand"),
		debitAccount(1020, "Bank", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet, model.SectionNA, "Operating bank account"),
		debitAccount(1200, "Accounts Receivable", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet, model.SectionOperating, "Amounts owed by customers"),
		debitAccount(1500, "Equipment", model.CategoryAsset, model.SubNonCurrentAsset, model.StatementBalanceSheet, model.SectionInvesting, "Machinery and office equipment"),
		creditAccount(1510, "Accumulated Depreciation", model.CategoryAsset, model.SubContraAsset, model.StatementBalanceSheet, model.SectionNA, "Depreciation to date on equipment"),
		debitAccount(1600, "Intangible Assets", model.CategoryAsset, model.SubNonCurrentAsset, model.StatementBalanceSheet, model.SectionInvesting, "Software, licences, goodwill"),
		creditAccount(2010, "Accounts Payable", model.CategoryLiability, model.SubCurrentLiability, model.StatementBalanceSheet, model.SectionOperating, "Amounts owed to suppliers"),
		creditAccount(2500, "Bank Loan", model.CategoryLiability, model.SubNonCurrentLiability, model.StatementBalanceSheet, model.SectionFinancing, "Long-term borrowing"),
		creditAccount(3010, "Share Capital", model.CategoryEquity, model.SubEquity, model.StatementChangesInEquity, model.SectionFinancing, "Owner contributions"),
		debitAccount(3020, "Drawings", model.CategoryEquity, model.SubEquity, model.StatementChangesInEquity, model.SectionFinancing, "Owner withdrawals"),
	}
}

func commonProfitAndLoss() []model.Account {
	return []model.Account{
		creditAccount(4100, "Interest Income", model.CategoryRevenue, model.SubInterestIncome, model.StatementIncome, model.SectionOperating, "Profit on deposits"),
		creditAccount(4200, "Gain on Disposal", model.CategoryRevenue, model.SubNonOperatingIncome, model.StatementIncome, model.SectionInvesting, "Gains on sale of assets"),
		creditAccount(4900, "Revaluation Surplus", model.CategoryRevenue, "Other Comprehensive Income", model.StatementComprehensiveIncome, model.SectionNA, "Revaluation gains on assets"),
		debitAccount(5100, "Rent Expense", model.CategoryExpense, model.SubOperatingExpense, model.StatementIncome, model.SectionOperating, "Premises rent"),
		debitAccount(5110, "Salaries Expense", model.CategoryExpense, model.SubOperatingExpense, model.StatementIncome, model.SectionOperating, "Staff salaries"),
		debitAccount(5120, "Utilities Expense", model.CategoryExpense, model.SubOperatingExpense, model.StatementIncome, model.SectionOperating, "Electricity, gas and water"),
		debitAccount(5200, "Depreciation Expense", model.CategoryExpense, model.SubDepreciation, model.StatementIncome, model.SectionNA, "Depreciation charge"),
		debitAccount(5300, "Interest Expense", model.CategoryExpense, model.SubInterestExpense, model.StatementIncome, model.SectionFinancing, "Interest on borrowing"),
		debitAccount(5400, "Loss on Disposal", model.CategoryExpense, model.SubNonOperatingExpense, model.StatementIncome, model.SectionInvesting, "Losses on sale of assets"),
		debitAccount(5500, "Income Tax Expense", model.CategoryExpense, model.SubTaxExpense, model.StatementIncome, model.SectionOperating, "Tax on profit"),
		debitAccount(5900, "Translation Loss", model.CategoryExpense, "Other Comprehensive Income", model.StatementComprehensiveIncome, model.SectionNA, "Foreign operation translation losses"),
	}
}

func debitAccount(id int, name string, cat model.Category, sub string, fs model.FinancialStatement, cf model.CashFlowSection, desc string) model.Account {
	return model.Account{
		ID: id, Name: name, Type: model.AccountTypeDebit, Category: cat, SubCategory: sub,
		FinancialStatement: fs, CashFlowSection: cf, Description: desc,
	}
}

func creditAccount(id int, name string, cat model.Category, sub string, fs model.FinancialStatement, cf model.CashFlowSection, desc string) model.Account {
	a := debitAccount(id, name, cat, sub, fs, cf, desc)
	a.Type = model.AccountTypeCredit
	return a
}
