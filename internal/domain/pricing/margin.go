package pricing

import "math"

// GOPPct is gross operating profit: contribution margin less Trio.
func GOPPct(cmPct, trioPct float64) float64 {
	return cmPct - trioPct
}

// BlendedPriceMonth marks a monthly base cost up by CM% less Trio%.
func BlendedPriceMonth(monthlyBaseCost, cmPct, trioPct float64) float64 {
	return roundHalfEven(monthlyBaseCost * (1 + GOPPct(cmPct, trioPct)/100.0))
}

// PricePerHour spreads a monthly price over productive hours, truncated.
func PricePerHour(priceMonth, prodHrsPerMonth float64) float64 {
	if prodHrsPerMonth <= 0 {
		return 0
	}
	return truncate(priceMonth / prodHrsPerMonth)
}

// HumanPricePerHour marks up an hourly cost. The markup is clamped at
// zero so a Trio above CM never prices below cost.
func HumanPricePerHour(costPerHour, cmPct, trioPct float64) float64 {
	return costPerHour * (1 + math.Max(0, GOPPct(cmPct, trioPct))/100.0)
}

// Weighted is one category's contribution to a blended percentage.
type Weighted struct {
	Revenue float64
	Hours   float64
	CMPct   float64
	TrioPct float64
}

// BlendPercentages combines CM% and Trio% across categories.
//
// With revenue the average is revenue-weighted over the categories that
// earned any. Without revenue it falls back to an hours-weighted average,
// and with neither both percentages are 0.
func BlendPercentages(parts []Weighted) (cmPct, trioPct float64) {
	var revenue, hours float64
	for _, p := range parts {
		revenue += p.Revenue
		hours += p.Hours
	}

	if revenue > 0 {
		var cm, trio float64
		for _, p := range parts {
			if p.Revenue <= 0 {
				continue
			}
			cm += p.Revenue * p.CMPct / 100.0
			trio += p.Revenue * p.TrioPct / 100.0
		}
		return cm / revenue * 100.0, trio / revenue * 100.0
	}

	if hours > 0 {
		var cm, trio float64
		for _, p := range parts {
			cm += p.Hours * p.CMPct
			trio += p.Hours * p.TrioPct
		}
		return cm / hours, trio / hours
	}

	return 0, 0
}
