// Package money formats the figures shown in tables and reports: totals in
// whole currency units with thousands separators, rates and percentages
// with two decimals. Rounding is half-to-even.
package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencyCode prefixes every monetary figure.
const CurrencyCode = "SEK"

// Currency formats a total, e.g. "SEK 1,234,568".
func Currency(x float64) string {
	return CurrencyCode + " " + group(x, 0)
}

// Rate formats a per-hour or per-unit price, e.g. "SEK 345.60".
func Rate(x float64) string {
	return CurrencyCode + " " + group(x, 2)
}

// Percent formats a percentage, e.g. "45.00%".
func Percent(x float64) string {
	return group(x, 2) + "%"
}

// Hours formats an hour figure with thousands separators and no decimals.
func Hours(x float64) string {
	return group(x, 0)
}

// Round rounds x half-to-even to the given number of decimal places.
func Round(x float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(x).RoundBank(places).Float64()
	return f
}

func group(x float64, places int32) string {
	d := decimal.NewFromFloat(x).RoundBank(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole := d.Truncate(0)
	out := sign + humanize.Comma(whole.IntPart())
	if places > 0 {
		frac := d.Sub(whole).StringFixed(places)
		out += frac[1:]
	}
	return out
}
