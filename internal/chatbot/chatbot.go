// Package chatbot answers questions about a ledger snapshot with fixed,
// keyword-routed templates.
package chatbot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cleared-dev/ledgerview/internal/analysis"
	"github.com/cleared-dev/ledgerview/internal/ratios"
	"github.com/cleared-dev/ledgerview/internal/render"
)

// HelpText is the reply when no keyword group matches.
const HelpText = `I can help with health score, profitability, liquidity, leverage, efficiency, sector analysis, or recommendations. Try asking "What is my health score?" or "How to improve liquidity?"`

// BalancedText is the reply to a recommendation request with nothing to
// recommend.
const BalancedText = "Your financial metrics look balanced. Continue monitoring performance."

// Bot formats replies in one currency.
type Bot struct {
	format render.Formatter
}

// New returns a Bot quoting amounts in currency.
func New(currency string) *Bot {
	return &Bot{format: render.NewFormatter(currency)}
}

type route struct {
	keywords []string
	reply    func(b *Bot, s analysis.Snapshot) string
}

// routes are tried in order; the first group with a matching keyword wins.
var routes = []route{
	{[]string{"health score", "overall"}, (*Bot).healthReply},
	{[]string{"profit", "margin"}, (*Bot).profitReply},
	{[]string{"liquidity", "cash"}, (*Bot).liquidityReply},
	{[]string{"debt", "leverage"}, (*Bot).debtReply},
	{[]string{"efficiency", "turnover"}, (*Bot).efficiencyReply},
	{[]string{"interest", "coverage"}, (*Bot).interestReply},
	{[]string{"recommend", "improve"}, (*Bot).recommendReply},
}

// Reply answers text from the snapshot. It is deterministic and keeps no
// state between calls.
func (b *Bot) Reply(text string, s analysis.Snapshot) string {
	lower := strings.ToLower(text)
	for _, r := range routes {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.reply(b, s)
			}
		}
	}
	return HelpText
}

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func debtToEquity(r ratios.Ratio) string {
	if r.IsInf() {
		return "∞"
	}
	return fixed(r.Or(0), 2)
}

func (b *Bot) healthReply(s analysis.Snapshot) string {
	period := "the selected period"
	if s.FinancialYear != "" {
		period = s.FinancialYear
	}
	direction := "positive"
	if s.Totals.NetProfitAfterTax.IsNegative() {
		direction = "negative"
	}
	return fmt.Sprintf("Your financial health score for %s is %d/100: %s. Key drivers: net income %s, current ratio %s, debt-to-equity %s, asset turnover %s.",
		period, s.HealthScore, s.Status, direction,
		fixed(s.Ratios.Liquidity.CurrentRatio.Or(0), 2),
		debtToEquity(s.Ratios.Solvency.DebtToEquity),
		fixed(s.Ratios.Efficiency.AssetTurnover.Or(0), 2))
}

func (b *Bot) profitReply(s analysis.Snapshot) string {
	margin := s.Ratios.Profitability.NetProfitMargin.Or(0)
	verdict := "Concerning. Work on revenue or cost structure."
	switch {
	case margin > 10:
		verdict = "Excellent."
	case margin > 0:
		verdict = "Positive but consider improvement."
	}
	return fmt.Sprintf("Operating margin: %s%%. Net profit margin: %s%%. %s",
		fixed(s.Ratios.Profitability.OperatingProfitMargin.Or(0), 1), fixed(margin, 1), verdict)
}

func (b *Bot) liquidityReply(s analysis.Snapshot) string {
	l := s.Ratios.Liquidity
	verdict := "Consider improving liquidity position."
	if l.CurrentRatio.Or(0) >= 1.5 {
		verdict = "Strong liquidity."
	}
	wc := s.Totals.CurrentAssets.Sub(s.Totals.CurrentLiabilities)
	return fmt.Sprintf("Current ratio: %s. Quick ratio: %s. Cash ratio (approx): %s. %s Working capital approx: %s %s.",
		fixed(l.CurrentRatio.Or(0), 2), fixed(l.QuickRatio.Or(0), 2), fixed(l.CashRatio.Or(0), 2),
		verdict, b.format.Currency, b.format.Whole(wc))
}

func (b *Bot) debtReply(s analysis.Snapshot) string {
	de := s.Ratios.Solvency.DebtToEquity
	verdict := "Monitor leverage and consider reduction if needed."
	if !de.IsInf() && de.Or(0) < 0.5 {
		verdict = "Conservative leverage."
	}
	return fmt.Sprintf("Debt-to-equity: %s. Debt ratio: %s%%. %s",
		debtToEquity(de), fixed(s.Ratios.Solvency.DebtRatio.Or(0)*100, 1), verdict)
}

func (b *Bot) efficiencyReply(s analysis.Snapshot) string {
	at := s.Ratios.Efficiency.AssetTurnover.Or(0)
	verdict := "Room for improvement."
	if at > 1 {
		verdict = "Efficient asset utilization."
	}
	return fmt.Sprintf("Asset turnover: %sx. %s", fixed(at, 2), verdict)
}

func (b *Bot) interestReply(s analysis.Snapshot) string {
	ic := s.Ratios.Solvency.InterestCoverage
	if !ic.Valid {
		return "Interest coverage: No interest expense recorded or insufficient data."
	}
	verdict := "Potential risk. Consider reducing interest-bearing debt."
	switch {
	case ic.Value > 6:
		verdict = "Very comfortable."
	case ic.Value > 3:
		verdict = "Comfortable."
	}
	return fmt.Sprintf("Interest coverage (EBIT / Interest): %sx. %s", fixed(ic.Value, 2), verdict)
}

func (b *Bot) recommendReply(s analysis.Snapshot) string {
	return FormatRecommendations(Recommendations(s.Ratios))
}

// Recommendations lists the improvement advice the ratios call for.
func Recommendations(r ratios.Ratios) []string {
	var recs []string
	if r.Profitability.NetProfitMargin.Or(0) < 10 {
		recs = append(recs, "Improve profit margins through cost controls or pricing")
	}
	if r.Liquidity.CurrentRatio.Or(0) < 1.5 {
		recs = append(recs, "Strengthen liquidity (accelerate receivables, manage payables)")
	}
	if r.Solvency.DebtRatio.Or(0)*100 > 50 {
		recs = append(recs, "Consider debt reduction or refinancing")
	}
	if r.Efficiency.AssetTurnover.Or(0) < 1 {
		recs = append(recs, "Improve asset utilization (sell unused assets or increase sales)")
	}
	if inv := r.Efficiency.InventoryTurnover; inv.Valid && inv.Value < 4 {
		recs = append(recs, "Review inventory management to improve turnover")
	}
	if rec := r.Efficiency.ReceivablesTurnover; rec.Valid && rec.Value < 6 {
		recs = append(recs, "Tighten credit terms and strengthen collections")
	}
	return recs
}

// FormatRecommendations joins recs into one reply.
func FormatRecommendations(recs []string) string {
	if len(recs) == 0 {
		return BalancedText
	}
	return "Recommendations: " + strings.Join(recs, "; ") + "."
}
