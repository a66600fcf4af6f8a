package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType is the normal balance side of an account.
type AccountType string

const (
	AccountTypeDebit  AccountType = "debit"
	AccountTypeCredit AccountType = "credit"
)

// Category is the top-level classification of an account.
type Category string

const (
	CategoryAsset     Category = "Asset"
	CategoryLiability Category = "Liability"
	CategoryEquity    Category = "Equity"
	CategoryRevenue   Category = "Revenue"
	CategoryExpense   Category = "Expense"
)

// FinancialStatement names the statement an account reports on.
type FinancialStatement string

const (
	StatementBalanceSheet        FinancialStatement = "Balance Sheet"
	StatementIncome              FinancialStatement = "Income Statement"
	StatementComprehensiveIncome FinancialStatement = "Comprehensive Income"
	StatementChangesInEquity     FinancialStatement = "Statement of Changes in Equity"
	StatementCashFlow            FinancialStatement = "Cash Flow Statement"
)

// CashFlowSection buckets cash movements on the cash flow statement.
type CashFlowSection string

const (
	SectionOperating CashFlowSection = "Operating"
	SectionInvesting CashFlowSection = "Investing"
	SectionFinancing CashFlowSection = "Financing"
	SectionNA        CashFlowSection = "NA"
)

// Sub-category tags the derivations key off. Any other value is allowed and
// only affects grouping.
const (
	SubCurrentAsset        = "Current Asset"
	SubNonCurrentAsset     = "Non-current Asset"
	SubContraAsset         = "Contra Asset"
	SubCurrentLiability    = "Current Liability"
	SubNonCurrentLiability = "Non-current Liability"
	SubContraLiability     = "Contra Liability"
	SubEquity              = "Equity"
	SubRevenue             = "Revenue"
	SubContraRevenue       = "Contra Revenue"
	SubInterestIncome      = "Interest Income"
	SubNonOperatingIncome  = "Non-operating Income"
	SubCostOfGoodsSold     = "Cost of Goods Sold"
	SubOperatingExpense    = "Operating Expense"
	SubDepreciation        = "Operating Expense - Depreciation"
	SubInterestExpense     = "Interest Expense"
	SubNonOperatingExpense = "Non-operating Expense"
	SubTaxExpense          = "Tax Expense"
)

// YearlyBalance is an account's closing balance for one financial year.
type YearlyBalance struct {
	FinancialYear string
	Balance       decimal.Decimal
}

// Account represents a row in chart-of-accounts.csv. The tags jointly decide
// how an amount posted to the account moves every derived total.
type Account struct {
	ID                 int
	Name               string
	Type               AccountType
	Category           Category
	SubCategory        string
	FinancialStatement FinancialStatement
	CashFlowSection    CashFlowSection
	Balance            decimal.Decimal
	YearlyBalances     []YearlyBalance
	Description        string
}

// NameContains reports whether the lowercased account name contains any of
// the given lowercase fragments.
func (a Account) NameContains(fragments ...string) bool {
	name := strings.ToLower(a.Name)
	for _, f := range fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// SubCategoryContains is NameContains for the sub-category tag.
func (a Account) SubCategoryContains(fragments ...string) bool {
	sub := strings.ToLower(a.SubCategory)
	for _, f := range fragments {
		if strings.Contains(sub, f) {
			return true
		}
	}
	return false
}

// Sign returns the balance-sheet direction of a leg posted to the account:
// assets grow on debit, liabilities and equity on credit. Revenue and expense
// accounts return 0.
func (a Account) Sign(debit bool) int {
	switch a.Category {
	case CategoryAsset:
		if debit {
			return 1
		}
		return -1
	case CategoryLiability, CategoryEquity:
		if debit {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// IsCashOrBank reports whether the account is an asset named like cash or bank.
func (a Account) IsCashOrBank() bool {
	return a.Category == CategoryAsset && a.NameContains("cash", "bank")
}
