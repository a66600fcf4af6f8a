package ratios

// Family names a ratio group.
type Family string

const (
	FamilyProfitability Family = "Profitability"
	FamilyReturn        Family = "Return"
	FamilySolvency      Family = "Solvency"
	FamilyLiquidity     Family = "Liquidity"
	FamilyEfficiency    Family = "Efficiency"
)

// Definition documents one ratio for display.
type Definition struct {
	Key         string
	Family      Family
	Title       string
	Formula     string
	Description string
	Percent     bool
}

// Entry pairs a definition with its computed value.
type Entry struct {
	Definition
	Value Ratio
}

var definitions = []Definition{
	{"grossProfitMargin", FamilyProfitability, "Gross Profit Margin", "Gross Profit / Net Sales * 100",
		"Share of sales left after cost of goods sold; reflects pricing and production efficiency.", true},
	{"operatingProfitMargin", FamilyProfitability, "Operating Profit Margin", "Operating Profit / Net Sales * 100",
		"Profit from core operations before interest and tax, per unit of sales.", true},
	{"pretaxMargin", FamilyProfitability, "Pre-Tax Margin", "Profit Before Tax / Net Sales * 100",
		"Share of sales remaining as profit before income tax.", true},
	{"netProfitMargin", FamilyProfitability, "Net Profit Margin", "Net Profit after Tax / Net Sales * 100",
		"Share of sales that ends up as profit for owners after every expense.", true},
	{"cashFlowMargin", FamilyProfitability, "Cash Flow Margin", "Operating Cash Flow / Net Sales * 100",
		"Share of sales realised as operating cash.", true},

	{"roa", FamilyReturn, "Return on Assets (ROA)", "Net Profit After Tax / Total Assets * 100",
		"Profit generated per unit of assets employed.", true},
	{"roe", FamilyReturn, "Return on Equity (ROE)", "Net Profit After Tax / Shareholders Equity * 100",
		"Return earned on the owners' investment.", true},
	{"roce", FamilyReturn, "Return on Capital Employed (ROCE)", "Operating Profit / Capital Employed * 100",
		"Operating return on long-term funds, equity plus debt.", true},
	{"roi", FamilyReturn, "Return on Investment (ROI)", "Net Profit / Total Investment * 100",
		"Overall return on the total investment in the business.", true},

	{"debtToEquity", FamilySolvency, "Debt to Equity Ratio", "Total Debt / Shareholders Equity",
		"Debt financing relative to owners' equity.", false},
	{"debtRatio", FamilySolvency, "Debt Ratio", "Total Debt / Total Assets",
		"Portion of assets financed by debt.", false},
	{"interestCoverage", FamilySolvency, "Interest Coverage Ratio", "EBIT / Interest Expense",
		"How many times operating profit covers interest.", false},
	{"equityRatio", FamilySolvency, "Equity Ratio", "Shareholders Equity / Total Assets",
		"Portion of assets financed by owners.", false},

	{"currentRatio", FamilyLiquidity, "Current Ratio", "Current Assets / Current Liabilities",
		"Ability to meet short-term obligations from current assets. Ideal around 2:1.", false},
	{"quickRatio", FamilyLiquidity, "Quick Ratio", "(Current Assets - Inventory) / Current Liabilities",
		"Short-term cover excluding inventory. Ideal around 1:1.", false},
	{"cashRatio", FamilyLiquidity, "Cash Ratio", "(Cash + Cash Equivalents) / Current Liabilities",
		"Short-term cover from cash alone.", false},

	{"inventoryTurnover", FamilyEfficiency, "Inventory Turnover", "COGS / Inventory",
		"Times inventory is sold and replaced in the period.", false},
	{"receivablesTurnover", FamilyEfficiency, "Receivables Turnover", "Net Credit Sales / Accounts Receivable",
		"How quickly customers pay.", false},
	{"payablesTurnover", FamilyEfficiency, "Payables Turnover", "Net Credit Purchases / Accounts Payable",
		"How promptly suppliers are paid.", false},
	{"assetTurnover", FamilyEfficiency, "Asset Turnover", "Net Sales / Total Assets",
		"Sales generated per unit of assets.", false},
	{"fixedAssetTurnover", FamilyEfficiency, "Fixed Asset Turnover", "Net Sales / Net Fixed Assets",
		"Sales generated per unit of fixed assets.", false},
	{"workingCapitalTurnover", FamilyEfficiency, "Working Capital Turnover", "Net Sales / Working Capital",
		"Sales generated per unit of working capital.", false},
	{"operatingCycle", FamilyEfficiency, "Operating Cycle", "365 / Inventory Turnover + 365 / Receivables Turnover",
		"Days from buying stock to collecting cash from its sale.", false},
}

// Definitions returns every ratio definition in display order.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// Lookup returns the definition for key.
func Lookup(key string) (Definition, bool) {
	for _, d := range definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Entries lists every ratio with its definition, in display order.
func (r Ratios) Entries() []Entry {
	values := map[string]Ratio{
		"grossProfitMargin":      r.Profitability.GrossProfitMargin,
		"operatingProfitMargin":  r.Profitability.OperatingProfitMargin,
		"pretaxMargin":           r.Profitability.PretaxMargin,
		"netProfitMargin":        r.Profitability.NetProfitMargin,
		"cashFlowMargin":         r.Profitability.CashFlowMargin,
		"roa":                    r.Return.ROA,
		"roe":                    r.Return.ROE,
		"roce":                   r.Return.ROCE,
		"roi":                    r.Return.ROI,
		"debtToEquity":           r.Solvency.DebtToEquity,
		"debtRatio":              r.Solvency.DebtRatio,
		"interestCoverage":       r.Solvency.InterestCoverage,
		"equityRatio":            r.Solvency.EquityRatio,
		"currentRatio":           r.Liquidity.CurrentRatio,
		"quickRatio":             r.Liquidity.QuickRatio,
		"cashRatio":              r.Liquidity.CashRatio,
		"inventoryTurnover":      r.Efficiency.InventoryTurnover,
		"receivablesTurnover":    r.Efficiency.ReceivablesTurnover,
		"payablesTurnover":       r.Efficiency.PayablesTurnover,
		"assetTurnover":          r.Efficiency.AssetTurnover,
		"fixedAssetTurnover":     r.Efficiency.FixedAssetTurnover,
		"workingCapitalTurnover": r.Efficiency.WorkingCapitalTurnover,
		"operatingCycle":         r.Efficiency.OperatingCycle,
	}

	out := make([]Entry, len(definitions))
	for i, d := range definitions {
		out[i] = Entry{Definition: d, Value: values[d.Key]}
	}
	return out
}
