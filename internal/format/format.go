// Package format renders numeric results for presentation. It is applied
// only at the output boundary: every sort, rank and growth computation
// upstream operates on the numeric values, and formatted strings are never
// parsed back into numbers.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency renders a decimal amount as a dollar string with thousands
// separators and two decimals, e.g. "$1,234,567.89".
func Currency(v decimal.Decimal) string {
	return "$" + printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// Percent renders a rate as a percentage string with two decimals,
// e.g. "12.34%".
func Percent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

// PercentPtr renders an optional rate, passing nil through so undefined
// growth stays null in responses rather than becoming "0.00%".
func PercentPtr(v *float64) *string {
	if v == nil {
		return nil
	}
	s := Percent(*v)
	return &s
}
