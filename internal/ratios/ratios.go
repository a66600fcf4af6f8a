// Package ratios maps Totals to the five fixed ratio families.
package ratios

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/totals"
)

// Profitability ratios, in percent of net sales.
type Profitability struct {
	GrossProfitMargin     Ratio
	OperatingProfitMargin Ratio
	PretaxMargin          Ratio
	NetProfitMargin       Ratio
	CashFlowMargin        Ratio
}

// Return ratios, in percent.
type Return struct {
	ROA  Ratio
	ROE  Ratio
	ROCE Ratio
	ROI  Ratio
}

// Solvency ratios, as plain fractions.
type Solvency struct {
	DebtToEquity     Ratio
	DebtRatio        Ratio
	InterestCoverage Ratio
	EquityRatio      Ratio
}

// Liquidity ratios.
type Liquidity struct {
	CurrentRatio Ratio
	QuickRatio   Ratio
	CashRatio    Ratio
}

// Efficiency ratios: turnovers in times, operating cycle in days.
type Efficiency struct {
	InventoryTurnover      Ratio
	ReceivablesTurnover    Ratio
	PayablesTurnover       Ratio
	AssetTurnover          Ratio
	FixedAssetTurnover     Ratio
	WorkingCapitalTurnover Ratio
	OperatingCycle         Ratio
}

// Ratios groups every family.
type Ratios struct {
	Profitability Profitability
	Return        Return
	Solvency      Solvency
	Liquidity     Liquidity
	Efficiency    Efficiency
}

// Calculate derives all ratios from t. No ratio is NaN; a zero denominator
// gives Null, except debt to equity which is +Inf when equity is zero and
// debt is not.
func Calculate(t totals.Totals) Ratios {
	eff := Efficiency{
		InventoryTurnover:      divide(t.COGS, t.Inventory),
		ReceivablesTurnover:    divide(t.NetCreditSales, t.AccountsReceivable),
		PayablesTurnover:       divide(t.NetCreditPurchases, t.AccountsPayable),
		AssetTurnover:          divide(t.NetSales, t.Assets),
		FixedAssetTurnover:     divide(t.NetSales, t.NetFixedAssets),
		WorkingCapitalTurnover: divide(t.NetSales, t.WorkingCapital),
	}
	eff.OperatingCycle = operatingCycle(eff.InventoryTurnover, eff.ReceivablesTurnover)

	return Ratios{
		Profitability: Profitability{
			GrossProfitMargin:     percent(t.GrossProfit, t.NetSales),
			OperatingProfitMargin: percent(t.OperatingProfit, t.NetSales),
			PretaxMargin:          percent(t.ProfitBeforeTax, t.NetSales),
			NetProfitMargin:       percent(t.NetProfitAfterTax, t.NetSales),
			CashFlowMargin:        percent(t.OperatingCashFlow, t.NetSales),
		},
		Return: Return{
			ROA:  percent(t.NetProfitAfterTax, t.Assets),
			ROE:  percent(t.NetProfitAfterTax, t.ShareholdersEquity),
			ROCE: percent(t.OperatingProfit, t.CapitalEmployed),
			ROI:  percent(t.NetProfitAfterTax, t.TotalInvestment),
		},
		Solvency: Solvency{
			DebtToEquity:     debtToEquity(t.TotalDebt, t.ShareholdersEquity),
			DebtRatio:        divide(t.TotalDebt, t.Assets),
			InterestCoverage: divide(t.OperatingProfit, t.InterestExpense),
			EquityRatio:      divide(t.ShareholdersEquity, t.Assets),
		},
		Liquidity: Liquidity{
			CurrentRatio: divide(t.CurrentAssets, t.CurrentLiabilities),
			QuickRatio:   divide(t.CurrentAssets.Sub(t.Inventory), t.CurrentLiabilities),
			CashRatio:    divide(t.CashAndCashEquivalents, t.CurrentLiabilities),
		},
		Efficiency: eff,
	}
}

func debtToEquity(debt, equity decimal.Decimal) Ratio {
	if equity.IsZero() {
		if debt.IsZero() {
			return Null
		}
		return Of(math.Inf(1))
	}
	return divide(debt, equity)
}

func operatingCycle(inventoryTurnover, receivablesTurnover Ratio) Ratio {
	if !inventoryTurnover.Valid || !receivablesTurnover.Valid ||
		inventoryTurnover.Value == 0 || receivablesTurnover.Value == 0 {
		return Null
	}
	return Of(365/inventoryTurnover.Value + 365/receivablesTurnover.Value)
}
