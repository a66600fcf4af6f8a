package totals

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func acct(name string, cat model.Category, sub string, fs model.FinancialStatement) model.Account {
	return model.Account{Name: name, Category: cat, SubCategory: sub, FinancialStatement: fs}
}

var (
	cash        = acct("Cash", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet)
	receivable  = acct("Accounts Receivable", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet)
	inventory   = acct("Inventory", model.CategoryAsset, model.SubCurrentAsset, model.StatementBalanceSheet)
	equipment   = acct("Equipment", model.CategoryAsset, model.SubNonCurrentAsset, model.StatementBalanceSheet)
	software    = acct("Intangible Software", model.CategoryAsset, model.SubNonCurrentAsset, model.StatementBalanceSheet)
	accumDep    = acct("Accumulated Depreciation", model.CategoryAsset, model.SubContraAsset, model.StatementBalanceSheet)
	payable     = acct("Accounts Payable", model.CategoryLiability, model.SubCurrentLiability, model.StatementBalanceSheet)
	loan        = acct("Bank Loan", model.CategoryLiability, model.SubNonCurrentLiability, model.StatementBalanceSheet)
	capital     = acct("Share Capital", model.CategoryEquity, model.SubEquity, model.StatementChangesInEquity)
	revenue     = acct("Revenue", model.CategoryRevenue, model.SubRevenue, model.StatementIncome)
	cogs        = acct("Cost of Goods Sold", model.CategoryExpense, model.SubCostOfGoodsSold, model.StatementIncome)
	rent        = acct("Rent Expense", model.CategoryExpense, model.SubOperatingExpense, model.StatementIncome)
	depExpense  = acct("Depreciation Expense", model.CategoryExpense, model.SubDepreciation, model.StatementIncome)
	interest    = acct("Interest Expense", model.CategoryExpense, model.SubInterestExpense, model.StatementIncome)
	revaluation = acct("Revaluation Surplus", model.CategoryRevenue, "Other Comprehensive Income", model.StatementComprehensiveIncome)
	untagged    = model.Account{Name: "Mystery Asset", Category: model.CategoryAsset}
)

func entry(debit, credit model.Account, amount string) model.JournalEntry {
	return model.JournalEntry{DebitAccount: debit, CreditAccount: credit, Amount: dec(amount)}
}

// sampleLedger touches every bucket at least once.
func sampleLedger() []model.JournalEntry {
	return []model.JournalEntry{
		entry(cash, capital, "50000"),
		entry(cash, loan, "20000"),
		entry(equipment, cash, "30000"),
		entry(software, cash, "5000"),
		entry(inventory, payable, "12000"),
		entry(receivable, revenue, "40000"),
		entry(cash, revenue, "10000"),
		entry(cogs, inventory, "9000"),
		entry(rent, cash, "6000"),
		entry(depExpense, accumDep, "3000"),
		entry(interest, cash, "1500"),
		entry(payable, cash, "4000"),
		entry(cash, receivable, "15000"),
		entry(equipment, revaluation, "2500"),
		entry(untagged, cash, "700"),
	}
}

func assertTotalsEqual(t *testing.T, want, got Totals) {
	t.Helper()
	wv, gv := reflect.ValueOf(want), reflect.ValueOf(got)
	for i := 0; i < wv.NumField(); i++ {
		name := wv.Type().Field(i).Name
		w := wv.Field(i).Interface().(decimal.Decimal)
		g := gv.Field(i).Interface().(decimal.Decimal)
		assert.True(t, w.Equal(g), "%s: want %s, got %s", name, w, g)
	}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assertTotalsEqual(t, Totals{}, got)
	assert.True(t, got.Assets.IsZero())
}

func TestAggregate_CashSale(t *testing.T) {
	got := Aggregate([]model.JournalEntry{entry(cash, revenue, "1000")})

	assert.Equal(t, "1000", got.Assets.String())
	assert.Equal(t, "1000", got.Revenue.String())
	assert.Equal(t, "1000", got.NetIncome.String())
	assert.Equal(t, "1000", got.TotalEquity.String())
	assert.Equal(t, "1000", got.CurrentAssets.String())
	assert.Equal(t, "1000", got.CashAndCashEquivalents.String())
	assert.Equal(t, "1000", got.NetSales.String())
	assert.Equal(t, "1000", got.CashInflows.String())
	assert.True(t, got.CashOutflows.IsZero())

	imbalance := got.TotalEquity.Add(got.Liabilities).Sub(got.Assets).Abs()
	assert.True(t, imbalance.LessThan(decimal.NewFromInt(1)))
}

func TestAggregate_SampleLedger(t *testing.T) {
	got := Aggregate(sampleLedger())

	tests := []struct {
		field string
		value decimal.Decimal
		want  string
	}{
		{"Assets", got.Assets, "111000"},
		{"Liabilities", got.Liabilities, "28000"},
		{"Revenue", got.Revenue, "50000"},
		{"Expenses", got.Expenses, "19500"},
		{"NetIncome", got.NetIncome, "30500"},
		{"OCI", got.OCI, "2500"},
		{"TotalEquity", got.TotalEquity, "83000"},
		{"CurrentAssets", got.CurrentAssets, "75800"},
		{"NonCurrentAssets", got.NonCurrentAssets, "34500"},
		{"CurrentLiabilities", got.CurrentLiabilities, "8000"},
		{"NonCurrentLiabilities", got.NonCurrentLiabilities, "20000"},
		{"NetSales", got.NetSales, "50000"},
		{"COGS", got.COGS, "9000"},
		{"GrossProfit", got.GrossProfit, "41000"},
		{"OperatingExpenses", got.OperatingExpenses, "9000"},
		{"OperatingProfit", got.OperatingProfit, "32000"},
		{"InterestExpense", got.InterestExpense, "1500"},
		{"ProfitBeforeTax", got.ProfitBeforeTax, "30500"},
		{"NetProfitAfterTax", got.NetProfitAfterTax, "30500"},
		{"TotalDebt", got.TotalDebt, "20000"},
		{"ShareholdersEquity", got.ShareholdersEquity, "83000"},
		{"CapitalEmployed", got.CapitalEmployed, "103000"},
		{"TotalInvestment", got.TotalInvestment, "111000"},
		{"CashAndCashEquivalents", got.CashAndCashEquivalents, "47800"},
		{"Inventory", got.Inventory, "3000"},
		{"AccountsReceivable", got.AccountsReceivable, "25000"},
		{"AccountsPayable", got.AccountsPayable, "8000"},
		{"NetFixedAssets", got.NetFixedAssets, "32500"},
		{"WorkingCapital", got.WorkingCapital, "67800"},
		{"NetCreditSales", got.NetCreditSales, "50000"},
		{"NetCreditPurchases", got.NetCreditPurchases, "9000"},
		{"CashInflows", got.CashInflows, "95000"},
		{"CashOutflows", got.CashOutflows, "47200"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.String(), tt.field)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := sampleLedger()
	assertTotalsEqual(t, Aggregate(entries), Aggregate(entries))
}

func TestAggregate_OrderIndependent(t *testing.T) {
	entries := sampleLedger()
	want := Aggregate(entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.JournalEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assertTotalsEqual(t, want, Aggregate(shuffled))
	}
}

func TestAggregate_BalanceInvariant(t *testing.T) {
	pool := []model.Account{cash, receivable, inventory, equipment, software, accumDep, payable, loan,
		capital, revenue, cogs, rent, depExpense, interest, revaluation, untagged}

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		var entries []model.JournalEntry
		for i := 0; i < 30; i++ {
			d := pool[rng.Intn(len(pool))]
			c := pool[rng.Intn(len(pool))]
			amount := decimal.New(rng.Int63n(1_000_000)+1, -2)
			entries = append(entries, model.JournalEntry{DebitAccount: d, CreditAccount: c, Amount: amount})
		}

		got := Aggregate(entries)
		diff := got.Assets.Sub(got.Liabilities.Add(got.TotalEquity)).Abs()
		require.True(t, diff.LessThan(decimal.NewFromInt(1)), "round %d: imbalance %s", round, diff)
	}
}

func TestAggregate_UnclassifiedOnlyCoarse(t *testing.T) {
	other := model.Account{Name: "Suspense", Category: model.CategoryLiability}
	got := Aggregate([]model.JournalEntry{entry(untagged, other, "500")})

	assert.Equal(t, "500", got.Assets.String())
	assert.Equal(t, "500", got.Liabilities.String())
	assert.True(t, got.CurrentAssets.IsZero())
	assert.True(t, got.NonCurrentAssets.IsZero())
	assert.True(t, got.CurrentLiabilities.IsZero())
	assert.True(t, got.TotalDebt.IsZero())
}

func TestAggregate_ComprehensiveIncomeExcludedFromNetIncome(t *testing.T) {
	got := Aggregate([]model.JournalEntry{entry(equipment, revaluation, "800")})

	assert.True(t, got.NetIncome.IsZero())
	assert.True(t, got.Revenue.IsZero())
	assert.Equal(t, "800", got.OCI.String())
	assert.Equal(t, "800", got.TotalEquity.String())
}

func TestAggregate_ContraItems(t *testing.T) {
	contraLiab := acct("Discount on Bonds", model.CategoryLiability, model.SubContraLiability, model.StatementBalanceSheet)
	got := Aggregate([]model.JournalEntry{
		entry(equipment, cash, "1000"),
		entry(depExpense, accumDep, "200"),
		entry(contraLiab, cash, "50"),
	})

	assert.Equal(t, "800", got.NonCurrentAssets.String(), "contra asset credit reduces non-current assets")
	assert.Equal(t, "-50", got.NonCurrentLiabilities.String(), "contra liability debit reduces non-current liabilities")
	assert.Equal(t, "1000", got.NetFixedAssets.String(), "accumulated depreciation is not a fixed asset")
}

func TestAggregate_OperatingCashFlowTag(t *testing.T) {
	opCash := model.Account{
		Name: "Operating Cash Receipts", Category: model.CategoryAsset, SubCategory: model.SubCurrentAsset,
		FinancialStatement: model.StatementCashFlow, CashFlowSection: model.SectionOperating,
	}
	got := Aggregate([]model.JournalEntry{entry(opCash, revenue, "300")})
	assert.Equal(t, "300", got.OperatingCashFlow.String())
}

func TestAggregate_NonOperatingExpenseExcludedFromOperating(t *testing.T) {
	loss := acct("Loss on Disposal", model.CategoryExpense, model.SubNonOperatingExpense, model.StatementIncome)
	got := Aggregate([]model.JournalEntry{
		entry(cash, revenue, "10000"),
		entry(loss, cash, "3000"),
	})

	assert.True(t, got.OperatingExpenses.IsZero())
	assert.Equal(t, "10000", got.OperatingProfit.String())
	assert.Equal(t, "3000", got.Expenses.String())
	assert.Equal(t, "7000", got.NetIncome.String())
}
