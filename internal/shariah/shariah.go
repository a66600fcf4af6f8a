// Package shariah screens derived totals against published Shariah
// compliance standards.
package shariah

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/totals"
)

// ErrUnknownStandard is returned for a key not in Keys().
var ErrUnknownStandard = errors.New("unknown shariah standard")

type comparison int

const (
	below comparison = iota + 1
	atMost
	atLeast
)

// Criterion is one financial ratio test, always over total assets. A
// criterion without a numerator needs data the ledger does not hold and
// always fails.
type Criterion struct {
	Name        string
	Formula     string
	Threshold   string
	Description string

	numerator func(totals.Totals) decimal.Decimal
	cmp       comparison
	limit     decimal.Decimal
}

// Manual reports whether the criterion needs data from outside the ledger.
func (c Criterion) Manual() bool {
	return c.numerator == nil
}

// Evaluate returns the criterion's value in percent, null when it cannot be
// computed, and whether it passes.
func (c Criterion) Evaluate(t totals.Totals) Result {
	res := Result{Name: c.Name, Formula: c.Formula, Threshold: c.Threshold, Description: c.Description}
	if c.Manual() || t.Assets.IsZero() {
		return res
	}

	ratio := c.numerator(t).Div(t.Assets)
	res.Value = decimal.NewNullDecimal(ratio.Mul(decimal.NewFromInt(100)))
	switch c.cmp {
	case below:
		res.Pass = ratio.LessThan(c.limit)
	case atMost:
		res.Pass = ratio.LessThanOrEqual(c.limit)
	case atLeast:
		res.Pass = ratio.GreaterThanOrEqual(c.limit)
	}
	return res
}

// Result is an evaluated criterion.
type Result struct {
	Name        string
	Formula     string
	Threshold   string
	Description string
	Value       decimal.NullDecimal
	Pass        bool
}

// Standard is one screening methodology.
type Standard struct {
	Key                   string
	Name                  string
	ReferenceName         string
	ReferenceURL          string
	BusinessActivityRules []string
	Criteria              []Criterion
	Notes                 string
}

// Screening is the outcome of screening totals against a standard.
type Screening struct {
	Standard   Standard
	Results    []Result
	Passed     int
	Compliance int // rounded percent of criteria passed
}

// Compliant reports whether every criterion passed.
func (s Screening) Compliant() bool {
	return len(s.Results) > 0 && s.Passed == len(s.Results)
}

// Standards returns every standard in display order.
func Standards() []Standard {
	return append([]Standard(nil), standards...)
}

// Keys returns every standard key in display order.
func Keys() []string {
	keys := make([]string, len(standards))
	for i, s := range standards {
		keys[i] = s.Key
	}
	return keys
}

// Lookup returns the standard for key.
func Lookup(key string) (Standard, error) {
	for _, s := range standards {
		if s.Key == key {
			return s, nil
		}
	}
	return Standard{}, fmt.Errorf("%w: %q", ErrUnknownStandard, key)
}

// Screen evaluates every criterion of the standard named by key.
func Screen(key string, t totals.Totals) (Screening, error) {
	std, err := Lookup(key)
	if err != nil {
		return Screening{}, err
	}

	s := Screening{Standard: std}
	for _, c := range std.Criteria {
		res := c.Evaluate(t)
		if res.Pass {
			s.Passed++
		}
		s.Results = append(s.Results, res)
	}
	s.Compliance = int(decimal.NewFromInt(int64(s.Passed * 100)).
		Div(decimal.NewFromInt(int64(len(s.Results)))).
		Round(0).IntPart())
	return s, nil
}
