package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryLegs(t *testing.T) {
	cash := Account{ID: 1, Name: "Cash", Category: CategoryAsset}
	sales := Account{ID: 2, Name: "Sales", Category: CategoryRevenue}
	e := JournalEntry{DebitAccount: cash, CreditAccount: sales, Amount: decimal.NewFromInt(250)}

	legs := e.Legs()
	assert.True(t, legs[0].Debit)
	assert.Equal(t, "Cash", legs[0].Account.Name)
	assert.Equal(t, "250", legs[0].Signed().String())
	assert.False(t, legs[1].Debit)
	assert.Equal(t, "-250", legs[1].Signed().String())
}

func TestAccountSign(t *testing.T) {
	tests := []struct {
		category Category
		debit    bool
		want     int
	}{
		{CategoryAsset, true, 1},
		{CategoryAsset, false, -1},
		{CategoryLiability, true, -1},
		{CategoryLiability, false, 1},
		{CategoryEquity, true, -1},
		{CategoryEquity, false, 1},
		{CategoryRevenue, false, 0},
		{CategoryExpense, true, 0},
	}
	for _, tt := range tests {
		a := Account{Category: tt.category}
		assert.Equal(t, tt.want, a.Sign(tt.debit), "%s debit=%v", tt.category, tt.debit)
	}
}

func TestAccountNameMatching(t *testing.T) {
	a := Account{Name: "Petty Cash", Category: CategoryAsset, SubCategory: "Current Asset"}
	assert.True(t, a.NameContains("cash"))
	assert.False(t, a.NameContains("bank", "loan"))
	assert.True(t, a.SubCategoryContains("asset"))
	assert.True(t, a.IsCashOrBank())

	loan := Account{Name: "Bank Loan", Category: CategoryLiability}
	assert.False(t, loan.IsCashOrBank(), "liabilities are never cash")
}

func TestFilterYear(t *testing.T) {
	entries := []JournalEntry{
		{ID: "FY2024-0001", FinancialYear: "FY2024"},
		{ID: "FY2025-0001", FinancialYear: "FY2025"},
		{ID: "FY2025-0002", FinancialYear: "FY2025"},
	}
	assert.Len(t, FilterYear(entries, "FY2025"), 2)
	assert.Len(t, FilterYear(entries, ""), 3)
	assert.Empty(t, FilterYear(entries, "FY2030"))
}
