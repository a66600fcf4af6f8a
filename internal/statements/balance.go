package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

// Synthetic equity lines appended from the income totals.
const (
	LineRetainedEarnings = "Retained Earnings"
	LineAccumulatedOCI   = "Accumulated OCI"
)

// BalanceSheet is the statement of financial position. Contra groups hold
// negative amounts and are netted into their parent sections.
type BalanceSheet struct {
	CurrentAssets         Group
	NonCurrentAssets      Group
	ContraAssets          Group
	CurrentLiabilities    Group
	NonCurrentLiabilities Group
	ContraLiabilities     Group
	Equity                Group
	// Other holds asset and liability groups whose sub-category is not one
	// of the standard sections.
	Other []Group

	TotalAssets               decimal.Decimal
	TotalLiabilities          decimal.Decimal
	TotalEquity               decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
	Balanced                  bool
}

// NewBalanceSheet groups balance-sheet legs by sub-category. Section totals
// come from the aggregated totals, so retained earnings and accumulated OCI
// are part of equity.
func NewBalanceSheet(entries []model.JournalEntry) BalanceSheet {
	t := totals.Aggregate(entries)

	g := make(grouper)
	for _, e := range entries {
		for _, leg := range e.Legs() {
			a := leg.Account
			sign := a.Sign(leg.Debit)
			if sign == 0 {
				continue
			}
			key := a.SubCategory
			if a.Category == model.CategoryEquity {
				key = model.SubEquity
			} else if key == "" {
				key = string(a.Category)
			}
			g.add(key, a.Name, leg.Amount.Mul(decimal.NewFromInt(int64(sign))))
		}
	}
	g.add(model.SubEquity, LineRetainedEarnings, t.NetIncome)
	g.add(model.SubEquity, LineAccumulatedOCI, t.OCI)

	standard := []string{
		model.SubCurrentAsset, model.SubNonCurrentAsset, model.SubContraAsset,
		model.SubCurrentLiability, model.SubNonCurrentLiability, model.SubContraLiability,
		model.SubEquity,
	}
	bs := BalanceSheet{
		CurrentAssets:         g.group(model.SubCurrentAsset),
		NonCurrentAssets:      g.group(model.SubNonCurrentAsset),
		ContraAssets:          g.group(model.SubContraAsset),
		CurrentLiabilities:    g.group(model.SubCurrentLiability),
		NonCurrentLiabilities: g.group(model.SubNonCurrentLiability),
		ContraLiabilities:     g.group(model.SubContraLiability),
		Equity:                g.group(model.SubEquity),
		TotalAssets:           t.Assets,
		TotalLiabilities:      t.Liabilities,
		TotalEquity:           t.TotalEquity,
	}
	for _, name := range g.names(standard...) {
		bs.Other = append(bs.Other, g.group(name))
	}
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)
	bs.Balanced = bs.TotalLiabilitiesAndEquity.Sub(bs.TotalAssets).Abs().LessThan(one)
	return bs
}
