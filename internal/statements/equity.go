package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

// EquityStatement is the statement of changes in equity.
type EquityStatement struct {
	Lines []Line
	Total decimal.Decimal
}

// NewEquityStatement sums equity legs per account, credits positive, and
// appends retained earnings and accumulated OCI. Total matches
// totals.Aggregate(entries).TotalEquity.
func NewEquityStatement(entries []model.JournalEntry) EquityStatement {
	t := totals.Aggregate(entries)

	var byName lineSet
	for _, e := range entries {
		for _, leg := range e.Legs() {
			if leg.Account.Category != model.CategoryEquity {
				continue
			}
			byName.add(leg.Account.Name, leg.Signed().Neg())
		}
	}

	var es EquityStatement
	for _, name := range byName.order {
		if name == LineRetainedEarnings || name == LineAccumulatedOCI {
			continue
		}
		es.Lines = append(es.Lines, Line{Name: name, Amount: byName.amounts[name]})
	}
	es.Lines = append(es.Lines,
		Line{Name: LineRetainedEarnings, Amount: byName.amounts[LineRetainedEarnings].Add(t.NetIncome)},
		Line{Name: LineAccumulatedOCI, Amount: byName.amounts[LineAccumulatedOCI].Add(t.OCI)},
	)

	for _, l := range es.Lines {
		es.Total = es.Total.Add(l.Amount)
	}
	return es
}
