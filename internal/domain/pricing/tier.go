package pricing

import (
	"math"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

// BuildCost is the one-time build cost of a single agent of the tier.
func BuildCost(p entity.TierParameters) float64 {
	return p.BuildHours * p.HourlyRate
}

// MaintenanceMonthPctBased derives monthly maintenance from the yearly
// percentage of build cost.
func MaintenanceMonthPctBased(p entity.TierParameters) float64 {
	return BuildCost(p) * p.MaintenancePctYear / 100.0 / monthsPerYear
}

// EnhancementMonth derives monthly enhancement from the yearly
// percentage of build cost.
func EnhancementMonth(p entity.TierParameters) float64 {
	return BuildCost(p) * p.EnhancementPctYear / 100.0 / monthsPerYear
}

// EnhancementYearTotal is the annual enhancement spend over all deployed
// agents. Equal to EnhancementMonth * 12 * Count.
func EnhancementYearTotal(p entity.TierParameters) float64 {
	return BuildCost(p) * p.EnhancementPctYear / 100.0 * float64(p.Count)
}

// SlabMaintenanceMonth charges maintPerSlab for every started slab of
// slabSize agents. Zero agents cost nothing, whatever the slab size.
func SlabMaintenanceMonth(count, slabSize int, maintPerSlab float64) float64 {
	if count <= 0 {
		return 0
	}
	if slabSize < 1 {
		slabSize = 1
	}
	slabs := math.Ceil(float64(count) / float64(slabSize))
	return slabs * maintPerSlab
}

// HumanInLoopHoursMonth is the oversight effort for one deployed agent.
func HumanInLoopHoursMonth(p entity.TierParameters) float64 {
	return p.AgentHoursPerMonth * p.HumanInLoopPct / 100.0
}

// HumanInLoopCostMonth prices HumanInLoopHoursMonth. It is a per-instance
// figure; callers multiply by count when aggregating.
func HumanInLoopCostMonth(p entity.TierParameters) float64 {
	return HumanInLoopHoursMonth(p) * p.HumanHourlyRate
}

// CapacityAnnual is the productive hours a tier delivers per year.
func CapacityAnnual(count int, prodHrsPerMonth float64) float64 {
	if count <= 0 {
		return 0
	}
	return prodHrsPerMonth * monthsPerYear * float64(count)
}

// Economics computes every per-tier figure.
func Economics(tier entity.Tier, p entity.TierParameters) entity.TierEconomics {
	return entity.TierEconomics{
		Tier:                 tier,
		BuildCost:            BuildCost(p),
		MaintMonthPctBased:   MaintenanceMonthPctBased(p),
		MaintMonthSlabBased:  SlabMaintenanceMonth(p.Count, p.MaintSlabSize, p.MaintPerSlab),
		EnhancementMonth:     EnhancementMonth(p),
		EnhancementYearTotal: EnhancementYearTotal(p),
		HumanHoursMonth:      HumanInLoopHoursMonth(p),
		HumanCostMonth:       HumanInLoopCostMonth(p),
		CapacityAnnual:       CapacityAnnual(p.Count, p.ProdHrsPerMonth),
	}
}

// TCO computes the platform totals and the economics of every tier.
func TCO(params entity.Parameters) entity.TCOSummary {
	summary := entity.TCOSummary{
		Costs: AggregateCosts(params.Cost),
		Tiers: make([]entity.TierEconomics, 0, len(entity.Tiers)),
	}
	for _, t := range entity.Tiers {
		summary.Tiers = append(summary.Tiers, Economics(t, params.Tiers[t]))
	}
	return summary
}
