// Package pricing is the calculation engine: closed-form arithmetic that
// turns an entity.Parameters snapshot into cost, capacity, margin and
// scenario figures.
//
// Every function is pure and total. Ratios whose denominator can be zero
// return 0 instead of failing, and percentages are assumed to be already
// constrained to [0,100] by the parameter store.
//
// Rounding mirrors the spreadsheet-era model the figures were agreed on:
// "round" is half-to-even and "int" truncates toward zero.
package pricing

import "math"

const monthsPerYear = 12

// roundHalfEven rounds to the nearest integer, ties to even.
func roundHalfEven(x float64) float64 {
	return math.RoundToEven(x)
}

// truncate drops the fractional part toward zero.
func truncate(x float64) float64 {
	return math.Trunc(x)
}

// safeDiv returns num/den, or 0 when den <= 0.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// ceilDiv returns ceil(num/den) as an int, or 0 when den <= 0.
func ceilDiv(num, den float64) int {
	if den <= 0 {
		return 0
	}
	return int(math.Ceil(num / den))
}
