package pricing

import "github.com/diillson/agent-pricing-factory/internal/domain/entity"

// amortizationMonths is the build amortization horizon used by the
// scenario calculators.
const amortizationMonths = 36

// ApproxAgentMonthlyCost is the heuristic monthly cost of one agent that
// every scenario calculator prices from: average build cost amortized over
// 36 months, plus the maintenance implied by the average yearly rate, plus
// the recurring license share of one agent in the minimum bundle.
func ApproxAgentMonthlyCost(tiers map[entity.Tier]entity.TierParameters, cost entity.CostProfile) entity.AgentCostEstimate {
	var avgBuild, avgMaintPct float64
	for _, t := range entity.Tiers {
		p := tiers[t]
		avgBuild += BuildCost(p)
		avgMaintPct += p.MaintenancePctYear
	}
	n := float64(len(entity.Tiers))
	avgBuild /= n
	avgMaintPct /= n

	amort := avgBuild / amortizationMonths
	maint := avgMaintPct / 100.0 * avgBuild / monthsPerYear
	infra := cost.RecurringLicenseMonthly / float64(max(1, cost.MinAgents))

	return entity.AgentCostEstimate{
		AvgBuildCost:       avgBuild,
		AvgMaintPct:        avgMaintPct,
		AmortMonth:         amort,
		MaintMonth:         maint,
		InfraMonthPerAgent: infra,
		MonthlyCost:        amort + maint + infra,
	}
}

// markup applies a plain margin percentage to a cost.
func markup(cost, marginPct float64) float64 {
	return cost * (1 + marginPct/100.0)
}

// Efficiency compares operating modes against the manual baseline.
func Efficiency(params entity.Parameters) entity.EfficiencyResult {
	in := params.Efficiency
	agentCost := ApproxAgentMonthlyCost(params.Tiers, params.Cost)
	price := truncate(markup(agentCost.MonthlyCost, in.MarginPct))

	manualHours := in.ModeMinutes[entity.ModeManual] / 60.0 * in.Cases

	modes := make([]entity.ModeEfficiency, 0, len(entity.Modes))
	for _, m := range entity.Modes {
		minutes := in.ModeMinutes[m]
		hoursPerCase := minutes / 60.0
		total := hoursPerCase * in.Cases
		modes = append(modes, entity.ModeEfficiency{
			Mode:               m,
			Label:              m.Label(),
			MinutesPerCase:     minutes,
			HoursPerCase:       hoursPerCase,
			TotalHours:         total,
			FTERequired:        ceilDiv(total, in.FTEHoursYear),
			CostAnnual:         total * in.HumanCostHr,
			SavingsVsManualPct: safeDiv(manualHours-total, manualHours) * 100.0,
			PricePerAgentMonth: price,
		})
	}

	return entity.EfficiencyResult{
		Modes:     modes,
		AgentCost: agentCost,
		MarginPct: in.MarginPct,
	}
}

// ReplaceFTEs is Model 1: how many agents replace the current FTEs and
// what the monthly difference is.
func ReplaceFTEs(params entity.Parameters) entity.Model1Result {
	in := params.Model1
	agentCost := ApproxAgentMonthlyCost(params.Tiers, params.Cost)
	price := markup(agentCost.MonthlyCost, in.AgentMarginPct)

	humanHours := in.CurrentFTEs * in.HumanProdHrsMonth
	agents := ceilDiv(humanHours, in.AgentProdHrsMonth)
	agentTotal := float64(agents) * price
	humanCost := humanHours * in.HumanCostHr
	savings := humanCost - agentTotal

	return entity.Model1Result{
		AgentCost:            agentCost,
		AgentPriceMonth:      price,
		HumanHoursMonth:      humanHours,
		AgentsNeeded:         agents,
		TotalAgentPriceMonth: agentTotal,
		HumanCostMonth:       humanCost,
		SavingsMonth:         savings,
		NegativeSavings:      savings < 0,
	}
}

// Uplift is Model 2: the hours and labour cost freed by a faster case time.
func Uplift(params entity.Parameters) entity.Model2Result {
	in := params.Model2
	saved := (in.BaseMinutesCase - in.NewMinutesCase) / 60.0 * in.CasesPerYear

	return entity.Model2Result{
		HoursSavedAnnual: saved,
		FTEEquivalent:    safeDiv(saved, in.FTEHoursYear),
		AnnualSaving:     saved * in.HumanCostHr,
	}
}

// HybridElastic is Model 4: agents cover part of the workload and humans
// carry the rest, split into steady and burst hours.
func HybridElastic(params entity.Parameters) entity.Model4Result {
	in := params.Model4
	agentHours := in.TotalHours * in.AgentCoveragePct / 100.0
	humanHours := in.TotalHours - agentHours
	steady := humanHours * (1 - in.BurstPct/100.0)

	agentCost := ApproxAgentMonthlyCost(params.Tiers, params.Cost)
	price := agentCost.MonthlyCost
	overridden := in.AgentPriceOverride > 0
	if overridden {
		price = in.AgentPriceOverride
	}

	agents := ceilDiv(agentHours, in.AgentProdHrsMonth*monthsPerYear)
	agentAnnual := float64(agents) * price * monthsPerYear
	humanAnnual := humanHours * in.HumanCostHr

	return entity.Model4Result{
		AgentHours:         agentHours,
		HumanHours:         humanHours,
		SteadyHumanHours:   steady,
		BurstHours:         humanHours - steady,
		AgentCost:          agentCost,
		AgentPriceMonth:    price,
		PriceOverridden:    overridden,
		AgentsNeeded:       agents,
		AgentCostAnnual:    agentAnnual,
		HumanCostAnnual:    humanAnnual,
		CombinedCostAnnual: agentAnnual + humanAnnual,
	}
}

// Models runs the three commercial models.
func Models(params entity.Parameters) entity.ModelsResult {
	return entity.ModelsResult{
		Model1: ReplaceFTEs(params),
		Model2: Uplift(params),
		Model4: HybridElastic(params),
	}
}
