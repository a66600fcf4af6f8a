package ratios

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Ratio is a nullable ratio value. The zero Ratio is null.
type Ratio struct {
	Value float64
	Valid bool
}

// Null is the ratio of a zero denominator.
var Null = Ratio{}

// Of wraps a known value.
func Of(v float64) Ratio {
	return Ratio{Value: v, Valid: true}
}

// Or returns the value, or def when null.
func (r Ratio) Or(def float64) float64 {
	if !r.Valid {
		return def
	}
	return r.Value
}

// IsInf reports whether the ratio is positive infinity.
func (r Ratio) IsInf() bool {
	return r.Valid && math.IsInf(r.Value, 1)
}

// String renders the value with two decimals, "n/a" when null and "∞" when
// infinite.
func (r Ratio) String() string {
	switch {
	case !r.Valid:
		return "n/a"
	case r.IsInf():
		return "∞"
	default:
		return strconv.FormatFloat(r.Value, 'f', 2, 64)
	}
}

var hundred = decimal.NewFromInt(100)

// divide returns num/den, or Null when den is exactly zero. The division is
// done in decimal and only the quotient is converted to float.
func divide(num, den decimal.Decimal) Ratio {
	if den.IsZero() {
		return Null
	}
	return Of(num.Div(den).InexactFloat64())
}

// percent is divide scaled by 100.
func percent(num, den decimal.Decimal) Ratio {
	if den.IsZero() {
		return Null
	}
	return Of(num.Mul(hundred).Div(den).InexactFloat64())
}
