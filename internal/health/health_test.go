package health

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/ratios"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

func TestScore_AllZero(t *testing.T) {
	tt := totals.Totals{}
	got := Evaluate(tt, ratios.Calculate(tt))

	assert.Equal(t, 6, got.Profitability, "zero net income is a small loss band")
	assert.Equal(t, 15, got.Solvency, "null debt to equity counts as zero")
	assert.Equal(t, 21, got.Total())
	assert.Equal(t, StatusPoor, Status(got.Total()))
}

func TestLiquidity_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{2.0, 20},
		{1.9999, 16},
		{1.5, 16},
		{1.4999, 12},
		{1.0, 12},
		{0.9999, 6},
		{0.5, 6},
		{0.4999, 0},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, liquidity(tt.ratio), "current ratio %v", tt.ratio)
	}
}

func TestSolvency_Boundaries(t *testing.T) {
	tests := []struct {
		ratio ratios.Ratio
		want  int
	}{
		{ratios.Of(math.Inf(1)), 0},
		{ratios.Null, 15},
		{ratios.Of(0.3), 15},
		{ratios.Of(0.31), 12},
		{ratios.Of(0.5), 12},
		{ratios.Of(1), 8},
		{ratios.Of(2), 4},
		{ratios.Of(2.01), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, solvency(tt.ratio), "debt to equity %v", tt.ratio)
	}
}

func TestSolvency_InfiniteDebtToEquity(t *testing.T) {
	tt := totals.Totals{TotalDebt: decimal.NewFromInt(500)}
	got := Evaluate(tt, ratios.Calculate(tt))
	assert.Equal(t, 0, got.Solvency)
}

func TestProfitability(t *testing.T) {
	tests := []struct {
		name      string
		netIncome int64
		margin    float64
		want      int
	}{
		{"strong margin", 1000, 10.5, 25},
		{"margin at ten", 1000, 10, 15},
		{"thin margin", 1000, 0.1, 15},
		{"profit without margin", 1000, 0, 0},
		{"break even", 0, 0, 6},
		{"small loss", -49999, -5, 6},
		{"loss at floor", -50000, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profitability(decimal.NewFromInt(tt.netIncome), tt.margin))
		})
	}
}

func TestEfficiency_Thresholds(t *testing.T) {
	tests := []struct {
		turnover float64
		want     int
	}{
		{1.5, 15},
		{1.4999, 12},
		{1, 12},
		{0.9999, 8},
		{0.5, 8},
		{0.4999, 4},
		{0.2, 4},
		{0.19, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, efficiency(tt.turnover), "asset turnover %v", tt.turnover)
	}
}

func TestGrowth_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		revenue int64
		roa     float64
		want    int
	}{
		{"revenue above 500k", 500001, 0, 10},
		{"revenue exactly 500k", 500000, 0, 7},
		{"revenue above 200k", 200001, 0, 7},
		{"revenue exactly 200k", 200000, 0, 4},
		{"revenue above 100k", 100001, 0, 4},
		{"revenue exactly 100k", 100000, 0, 2},
		{"any revenue", 1, 0, 2},
		{"roa above 10", 0, 10.1, 10},
		{"roa exactly 10", 0, 10, 7},
		{"roa above 5", 0, 5.1, 7},
		{"roa exactly 5", 0, 5, 4},
		{"roa above 2", 0, 2.1, 4},
		{"roa exactly 2", 0, 2, 0},
		{"roa exactly 2 with revenue", 1, 2, 2},
		{"nothing", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, growth(decimal.NewFromInt(tt.revenue), tt.roa))
		})
	}
}

func TestStability_Thresholds(t *testing.T) {
	tests := []struct {
		equityRatio float64
		want        int
	}{
		{60, 10},
		{59.99, 8},
		{40, 8},
		{39.99, 5},
		{30, 5},
		{29.99, 2},
		{20, 2},
		{19.99, 0},
		{0.9, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stability(tt.equityRatio), "equity ratio %v", tt.equityRatio)
	}
}

func TestCash_Additive(t *testing.T) {
	tests := []struct {
		cashRatio, coverage float64
		want                int
	}{
		{0.2, 6.1, 5},
		{0.2, 3.5, 4},
		{0.2, 6, 3},
		{0.1999, 0, 2},
		{0.1, 0, 2},
		{0.0999, 0, 0},
		{0, 7, 2},
		{0, 3.0001, 1},
		{0, 3, 0},
		{0.09, 3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cash(tt.cashRatio, tt.coverage), "cash ratio %v, coverage %v", tt.cashRatio, tt.coverage)
	}
}

func TestScore_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		n := func() decimal.Decimal { return decimal.NewFromInt(rng.Int63n(2_000_000) - 1_000_000) }
		tt := totals.Totals{
			Assets: n(), CurrentAssets: n(), CurrentLiabilities: n(), NetSales: n(), Revenue: n(),
			NetIncome: n(), NetProfitAfterTax: n(), TotalDebt: n(), ShareholdersEquity: n(),
			OperatingProfit: n(), InterestExpense: n(), CashAndCashEquivalents: n(),
		}
		s := Score(tt, ratios.Calculate(tt))
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestScore_CapsAtHundred(t *testing.T) {
	b := Breakdown{25, 20, 15, 15, 10, 10, 5}
	assert.Equal(t, 100, b.Total())
	b.Cash = 50
	assert.Equal(t, 100, b.Total())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusExcellent, Status(80))
	assert.Equal(t, StatusGood, Status(79))
	assert.Equal(t, StatusGood, Status(60))
	assert.Equal(t, StatusFair, Status(40))
	assert.Equal(t, StatusPoor, Status(39))
}

func TestBreakdown_Parts(t *testing.T) {
	b := Breakdown{Profitability: 15, Liquidity: 12, Cash: 3}
	parts := b.Parts()
	require.Len(t, parts, 7)

	maxSum, points := 0, 0
	for _, p := range parts {
		assert.LessOrEqual(t, p.Points, p.Max, p.Name)
		maxSum += p.Max
		points += p.Points
	}
	assert.Equal(t, 100, maxSum)
	assert.Equal(t, b.Total(), points)
	assert.Equal(t, "Profitability", parts[0].Name)
	assert.Equal(t, 15, parts[0].Points)
}

func TestEvaluate_CashPartUsesCashRatio(t *testing.T) {
	tt := totals.Totals{CurrentAssets: decimal.NewFromInt(1000), CurrentLiabilities: decimal.NewFromInt(1000)}
	r := ratios.Calculate(tt)
	require.InDelta(t, 1, r.Liquidity.QuickRatio.Value, 1e-9)
	require.True(t, r.Liquidity.CashRatio.Valid)

	assert.Equal(t, 0, Evaluate(tt, r).Cash, "no cash scores nothing however high the quick ratio")

	tt.CashAndCashEquivalents = decimal.NewFromInt(200)
	assert.Equal(t, 3, Evaluate(tt, ratios.Calculate(tt)).Cash)
}
