// Package render formats derived values for terminal output.
package render

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cleared-dev/ledgerview/internal/ratios"
)

// DefaultCurrency is used when the books configure none.
const DefaultCurrency = "PKR"

// Formatter renders amounts with thousands separators and a currency code.
type Formatter struct {
	Currency string
	printer  *message.Printer
}

// NewFormatter returns a Formatter for currency. An empty currency uses
// DefaultCurrency.
func NewFormatter(currency string) Formatter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Formatter{Currency: currency, printer: message.NewPrinter(language.English)}
}

// Number renders d with two decimals and grouped thousands, e.g. 1,234.50.
func (f Formatter) Number(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if d.IsNegative() && fixed != "0.00" {
		sign = "-"
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + fixed
	}
	return sign + f.printer.Sprintf("%d", n) + "." + frac
}

// Whole renders d rounded to an integer with grouped thousands.
func (f Formatter) Whole(d decimal.Decimal) string {
	return f.printer.Sprintf("%d", d.Round(0).IntPart())
}

// Money renders d with the currency code. Negative amounts are shown in
// parentheses.
func (f Formatter) Money(d decimal.Decimal) string {
	if d.IsNegative() && !d.Round(2).IsZero() {
		return f.Currency + " (" + f.Number(d.Abs()) + ")"
	}
	return f.Currency + " " + f.Number(d.Abs())
}

// Ratio renders r with the given decimals, "n/a" when null and "∞" when
// infinite.
func (f Formatter) Ratio(r ratios.Ratio, decimals int) string {
	switch {
	case !r.Valid:
		return "n/a"
	case r.IsInf():
		return "∞"
	default:
		return strconv.FormatFloat(r.Value, 'f', decimals, 64)
	}
}

// Percent is Ratio with a trailing percent sign.
func (f Formatter) Percent(r ratios.Ratio, decimals int) string {
	s := f.Ratio(r, decimals)
	if !r.Valid || r.IsInf() {
		return s
	}
	return s + "%"
}

var titleCaser = cases.Title(language.English)

// Title upper-cases the first letter of every word, e.g. "current asset"
// becomes "Current Asset".
func Title(s string) string {
	return titleCaser.String(strings.ToLower(s))
}
