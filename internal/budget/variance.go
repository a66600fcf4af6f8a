package budget

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/totals"
)

// DefaultInflationRate is the yearly inflation, in percent, used when none
// is configured.
var DefaultInflationRate = decimal.NewFromInt(6)

// Row labels, in display order.
const (
	RowRevenue           = "Revenue"
	RowCOGS              = "COGS"
	RowOperatingExpenses = "Operating Expenses"
	RowNetIncome         = "Net Income"
	RowCapex             = "Capex"
	RowCashInflows       = "Cash Inflows"
	RowCashOutflows      = "Cash Outflows"
)

// Options controls the inflation adjustment. A rate of zero or less leaves
// budgets untouched even when AdjustForInflation is set.
type Options struct {
	AdjustForInflation bool
	InflationRate      decimal.Decimal
}

// Row is one budget line against its actual.
type Row struct {
	Label string
	// Original is the budget as stored; Budgeted is after inflation.
	Original       decimal.Decimal
	Budgeted       decimal.Decimal
	Actual         decimal.Decimal
	Variance       decimal.Decimal
	HigherIsBetter bool
	Inflated       bool
	Favourable     bool
}

// Report is the full budget-vs-actual comparison.
type Report struct {
	Rows       []Row
	Favourable int
	Options    Options
}

type line struct {
	label    string
	budgeted decimal.Decimal
	actual   decimal.Decimal
	higher   bool
	inflate  bool
}

// Compare builds the variance report of b against t. Variance is actual
// minus budget; a row is favourable when the variance has the right sign
// for its direction, with a zero variance favourable either way.
func Compare(b Budget, t totals.Totals, opts Options) Report {
	lines := []line{
		{RowRevenue, b.Revenue, t.Revenue, true, true},
		{RowCOGS, b.COGS, t.COGS, false, true},
		{RowOperatingExpenses, b.OperatingExpenses, t.OperatingExpenses, false, true},
		{RowNetIncome, b.NetIncome, t.NetIncome, true, false},
		{RowCapex, b.Capex, t.NetFixedAssets.Abs(), false, true},
		{RowCashInflows, b.CashInflows, t.CashInflows, true, false},
		{RowCashOutflows, b.CashOutflows, t.CashOutflows, false, false},
	}

	adjust := opts.AdjustForInflation && opts.InflationRate.IsPositive()
	factor := decimal.NewFromInt(1).Add(opts.InflationRate.Div(decimal.NewFromInt(100)))

	rep := Report{Options: opts, Rows: make([]Row, 0, len(lines))}
	for _, l := range lines {
		row := Row{
			Label:          l.label,
			Original:       l.budgeted,
			Budgeted:       l.budgeted,
			Actual:         l.actual,
			HigherIsBetter: l.higher,
		}
		if adjust && l.inflate {
			row.Budgeted = l.budgeted.Mul(factor).Round(0)
			row.Inflated = true
		}
		row.Variance = row.Actual.Sub(row.Budgeted)
		if l.higher {
			row.Favourable = !row.Variance.IsNegative()
		} else {
			row.Favourable = !row.Variance.IsPositive()
		}
		if row.Favourable {
			rep.Favourable++
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}
