package shariah

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/totals"
)

// Standard keys.
const (
	KeyMeezan      = "meezan"
	KeySECMalaysia = "secMalaysia"
	KeyDowJones    = "dowJones"
	KeyMSCI        = "msci"
	KeyFTSE        = "ftse"

	DefaultStandard = KeyMeezan
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s).Div(decimal.NewFromInt(100))
}

func debt(t totals.Totals) decimal.Decimal { return t.TotalDebt }
func cash(t totals.Totals) decimal.Decimal { return t.CashAndCashEquivalents }
func receivables(t totals.Totals) decimal.Decimal { return t.AccountsReceivable }

func illiquid(t totals.Totals) decimal.Decimal {
	return t.NetFixedAssets.Add(t.Inventory)
}

func receivablesAndCash(t totals.Totals) decimal.Decimal {
	return t.AccountsReceivable.Add(t.CashAndCashEquivalents)
}

var standards = []Standard{
	{
		Key:           KeyMeezan,
		Name:          "Meezan Bank",
		ReferenceName: "Meezan Bank Shariah Screening Criteria",
		ReferenceURL:  "https://www.meezanbank.com/shariah-screening-criteria/",
		BusinessActivityRules: []string{
			"Core business must be Shariah-compliant",
			"Non-compliant income < 5% of total revenue",
		},
		Criteria: []Criterion{
			{
				Name: "Interest-Bearing Debt to Total Assets", Formula: "Interest-Bearing Debt ÷ Total Assets",
				Threshold: "< 37%", numerator: debt, cmp: below, limit: pct("37"),
			},
			{
				Name: "Non-Compliant Investments to Total Assets", Formula: "Non-Compliant Investments ÷ Total Assets",
				Threshold: "< 33%", Description: "Requires manual input (e.g., interest-bearing securities)",
			},
			{
				Name: "Non-Compliant Income to Total Revenue", Formula: "Non-Compliant Income ÷ Total Revenue",
				Threshold: "< 5%", Description: "Requires manual input of impure income",
			},
			{
				Name: "Illiquid Assets to Total Assets", Formula: "(Fixed Assets + Inventory) ÷ Total Assets",
				Threshold: "≥ 25%", numerator: illiquid, cmp: atLeast, limit: pct("25"),
			},
		},
		Notes: "Market Price > Net Liquid Assets per Share check requires share data.",
	},
	{
		Key:           KeySECMalaysia,
		Name:          "Securities Commission Malaysia",
		ReferenceName: "Shariah-Compliant Securities (SAC Malaysia)",
		ReferenceURL:  "https://www.sc.com.my/regulation/guidelines/islamic-capital-market/shariah-compliant-securities",
		BusinessActivityRules: []string{
			"5% benchmark: Conventional banking, insurance, gambling, liquor, pork, tobacco, interest income, non-halal entertainment",
			"20% benchmark: Share trading, stockbroking, cinema, rental from non-compliant activities",
		},
		Criteria: []Criterion{
			{
				Name: "Total Debt to Total Assets", Formula: "Total Debt ÷ Total Assets",
				Threshold: "≤ 33%", numerator: debt, cmp: atMost, limit: pct("33"),
			},
			{
				Name: "Cash + Interest-Bearing Securities to Total Assets", Formula: "(Cash + Interest Securities) ÷ Total Assets",
				Threshold: "≤ 33%", Description: "Using Cash as proxy (interest-bearing securities not tracked)",
				numerator: cash, cmp: atMost, limit: pct("33"),
			},
		},
	},
	{
		Key:                   KeyDowJones,
		Name:                  "S&P Dow Jones Shariah",
		ReferenceName:         "S&P Dow Jones Islamic Market Indices",
		BusinessActivityRules: []string{"≤5% revenue from alcohol, pork, gambling, tobacco, conventional finance, etc."},
		Criteria: []Criterion{
			{
				Name: "Total Debt to Market Cap", Formula: "Total Debt ÷ Market Capitalization",
				Threshold: "≤ 33%", Description: "Requires Market Cap (not available from ledger)",
			},
			{
				Name: "(Cash + Interest Securities) to Market Cap", Formula: "(Cash + Interest Securities) ÷ Market Cap",
				Threshold: "≤ 33%",
			},
			{
				Name: "Accounts Receivable to Market Cap", Formula: "Accounts Receivable ÷ Market Cap",
				Threshold: "≤ 49%",
			},
		},
	},
	{
		Key:           KeyMSCI,
		Name:          "MSCI Islamic Index",
		ReferenceName: "MSCI Islamic Index Series Methodology",
		Criteria: []Criterion{
			{
				Name: "Total Debt to Total Assets", Formula: "Total Debt ÷ Total Assets",
				Threshold: "≤ 33.33%", numerator: debt, cmp: atMost, limit: pct("33.33"),
			},
			{
				Name: "(Cash + Interest Securities) to Total Assets", Formula: "(Cash + Interest Securities) ÷ Total Assets",
				Threshold: "≤ 33.33%", numerator: cash, cmp: atMost, limit: pct("33.33"),
			},
			{
				Name: "Accounts Receivable to Total Assets", Formula: "Accounts Receivable ÷ Total Assets",
				Threshold: "≤ 33.33%", numerator: receivables, cmp: atMost, limit: pct("33.33"),
			},
		},
	},
	{
		Key:                   KeyFTSE,
		Name:                  "FTSE Shariah Global Equity",
		ReferenceName:         "FTSE Yasaar Global Equity Shariah Index Series",
		ReferenceURL:          "https://www.lseg.com/content/dam/ftse-russell/en_us/documents/ground-rules/ftse-yasaar-global-equity-shariah-index-series-ground-rules.pdf",
		BusinessActivityRules: []string{"≤5% revenue from prohibited activities"},
		Criteria: []Criterion{
			{
				Name: "Total Debt to Total Assets", Formula: "Total Debt ÷ Total Assets",
				Threshold: "< 33%", numerator: debt, cmp: below, limit: pct("33"),
			},
			{
				Name: "(Cash + Interest Securities) to Total Assets", Formula: "(Cash + Interest Securities) ÷ Total Assets",
				Threshold: "< 33%", numerator: cash, cmp: below, limit: pct("33"),
			},
			{
				Name: "(Receivables + Cash) to Total Assets", Formula: "(Receivables + Cash) ÷ Total Assets",
				Threshold: "< 50%", numerator: receivablesAndCash, cmp: below, limit: pct("50"),
			},
		},
		Notes: "Minor interest income must be purified.",
	},
}
