// Package health computes the 0 to 100 financial health score.
package health

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/ratios"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

// Breakdown holds the points awarded by each part of the rubric.
type Breakdown struct {
	Profitability int
	Liquidity     int
	Solvency      int
	Efficiency    int
	Growth        int
	Stability     int
	Cash          int
}

// Total is the capped sum of every part.
func (b Breakdown) Total() int {
	sum := b.Profitability + b.Liquidity + b.Solvency + b.Efficiency + b.Growth + b.Stability + b.Cash
	return min(100, sum)
}

// Part is one scored dimension of the rubric.
type Part struct {
	Name   string
	Points int
	Max    int
}

// Parts lists every dimension in rubric order with its maximum.
func (b Breakdown) Parts() []Part {
	return []Part{
		{"Profitability", b.Profitability, 25},
		{"Liquidity", b.Liquidity, 20},
		{"Solvency", b.Solvency, 15},
		{"Efficiency", b.Efficiency, 15},
		{"Growth", b.Growth, 10},
		{"Stability", b.Stability, 10},
		{"Cash", b.Cash, 5},
	}
}

var lossFloor = decimal.NewFromInt(-50000)

// Evaluate scores every part of the rubric. Null ratios count as zero.
func Evaluate(t totals.Totals, r ratios.Ratios) Breakdown {
	return Breakdown{
		Profitability: profitability(t.NetIncome, r.Profitability.NetProfitMargin.Or(0)),
		Liquidity:     liquidity(r.Liquidity.CurrentRatio.Or(0)),
		Solvency:      solvency(r.Solvency.DebtToEquity),
		Efficiency:    efficiency(r.Efficiency.AssetTurnover.Or(0)),
		Growth:        growth(t.Revenue, r.Return.ROA.Or(0)),
		Stability:     stability(r.Solvency.EquityRatio.Or(0)),
		Cash:          cash(r.Liquidity.CashRatio.Or(0), r.Solvency.InterestCoverage.Or(0)),
	}
}

// Score returns the health score in [0, 100].
func Score(t totals.Totals, r ratios.Ratios) int {
	return Evaluate(t, r).Total()
}

func profitability(netIncome decimal.Decimal, margin float64) int {
	switch {
	case netIncome.IsPositive() && margin > 10:
		return 25
	case netIncome.IsPositive() && margin > 0:
		return 15
	case netIncome.GreaterThan(lossFloor) && !netIncome.IsPositive():
		return 6
	default:
		return 0
	}
}

func liquidity(currentRatio float64) int {
	switch {
	case currentRatio >= 2:
		return 20
	case currentRatio >= 1.5:
		return 16
	case currentRatio >= 1:
		return 12
	case currentRatio >= 0.5:
		return 6
	default:
		return 0
	}
}

func solvency(debtToEquity ratios.Ratio) int {
	if debtToEquity.IsInf() {
		return 0
	}
	de := debtToEquity.Or(0)
	switch {
	case de <= 0.3:
		return 15
	case de <= 0.5:
		return 12
	case de <= 1:
		return 8
	case de <= 2:
		return 4
	default:
		return 0
	}
}

func efficiency(assetTurnover float64) int {
	switch {
	case assetTurnover >= 1.5:
		return 15
	case assetTurnover >= 1:
		return 12
	case assetTurnover >= 0.5:
		return 8
	case assetTurnover >= 0.2:
		return 4
	default:
		return 0
	}
}

var (
	revenueHigh = decimal.NewFromInt(500000)
	revenueMid  = decimal.NewFromInt(200000)
	revenueLow  = decimal.NewFromInt(100000)
)

func growth(revenue decimal.Decimal, roa float64) int {
	switch {
	case revenue.GreaterThan(revenueHigh) || roa > 10:
		return 10
	case revenue.GreaterThan(revenueMid) || roa > 5:
		return 7
	case revenue.GreaterThan(revenueLow) || roa > 2:
		return 4
	case revenue.IsPositive():
		return 2
	default:
		return 0
	}
}

// stability compares the equity ratio fraction against percentage-style
// thresholds, so only very large ratios score.
func stability(equityRatio float64) int {
	switch {
	case equityRatio >= 60:
		return 10
	case equityRatio >= 40:
		return 8
	case equityRatio >= 30:
		return 5
	case equityRatio >= 20:
		return 2
	default:
		return 0
	}
}

func cash(cashRatio, interestCoverage float64) int {
	points := 0
	switch {
	case cashRatio >= 0.2:
		points += 3
	case cashRatio >= 0.1:
		points += 2
	}
	switch {
	case interestCoverage > 6:
		points += 2
	case interestCoverage > 3:
		points++
	}
	return points
}

// Status bands.
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusFair      = "Fair"
	StatusPoor      = "Poor"
)

// Status names the band a score falls in.
func Status(score int) string {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusFair
	default:
		return StatusPoor
	}
}

