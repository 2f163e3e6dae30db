package pricing

import "github.com/diillson/agent-pricing-factory/internal/domain/entity"

// AgentRowFor prices one tier for the simulation using the slab-based
// maintenance of its deployed count. A tier with no agents is inactive:
// its price, hourly price and percentages are all zero.
func AgentRowFor(tier entity.Tier, p entity.TierParameters, cmPct, trioPct float64) entity.AgentRow {
	count := float64(p.Count)
	build := truncate(BuildCost(p))
	enhYearly := truncate(p.EnhancementPctYear / 100.0 * build * count)
	devAmort := build / monthsPerYear
	maint := truncate(SlabMaintenanceMonth(p.Count, p.MaintSlabSize, p.MaintPerSlab))

	row := entity.AgentRow{
		Tier:            tier,
		Count:           p.Count,
		ProdHrsPerMonth: p.ProdHrsPerMonth,
		CapacityAnnual:  truncate(CapacityAnnual(p.Count, p.ProdHrsPerMonth)),
		BuildOneTime:    build,
		MaintMonthly:    maint,
		EnhYearlyTotal:  enhYearly,
		DevAmortMonth:   devAmort,
	}
	if p.Count <= 0 {
		return row
	}

	monthlyBase := devAmort + maint + enhYearly/monthsPerYear
	row.BlendedPriceMonth = BlendedPriceMonth(monthlyBase, cmPct, trioPct)
	row.PricePerHour = PricePerHour(row.BlendedPriceMonth, p.ProdHrsPerMonth)
	row.CMPct = cmPct
	row.TrioPct = trioPct
	return row
}

// Simulate runs the agent vs human simulation on a parameter snapshot.
func Simulate(params entity.Parameters) entity.SimulationResult {
	sim := params.Simulation

	rows := make([]entity.AgentRow, 0, len(entity.Tiers))
	capacities := make([]TierCapacity, 0, len(entity.Tiers))
	for _, t := range entity.Tiers {
		tp := params.Tiers[t]
		rows = append(rows, AgentRowFor(t, tp, sim.AgentCMPct, sim.AgentTrioPct))
		capacities = append(capacities, TierCapacity{Count: tp.Count, ProdHrsPerMonth: tp.ProdHrsPerMonth})
	}

	alloc := Allocate(AllocationInput{
		TotalHours:           sim.TotalHours,
		AgentRatioPct:        sim.AgentRatioPct,
		HumanInLoopFraction:  sim.HumanInLoopFraction,
		HumanProdHrsPerMonth: sim.HumanProdHrsPerMonth,
		Tiers:                capacities,
	})

	return entity.SimulationResult{
		Agents:     rows,
		Allocation: alloc,
		Pricing:    Financials(rows, alloc, sim),
	}
}

// Financials builds the Agent, Human and Combined pricing views and the
// true financial CM/GOP from priced agent rows and an allocation.
func Financials(rows []entity.AgentRow, alloc entity.AllocationResult, sim entity.SimulationParameters) entity.PricingResult {
	var (
		agentCount    int
		agentRevenue  float64
		agentDevAmort float64
		agentMaint    float64
		agentEnh      float64
	)
	for _, r := range rows {
		count := float64(r.Count)
		agentCount += r.Count
		agentRevenue += r.BlendedPriceMonth * monthsPerYear * count
		agentDevAmort += truncate(r.DevAmortMonth*monthsPerYear) * count
		agentMaint += truncate(r.MaintMonthly * monthsPerYear)
		agentEnh += r.EnhYearlyTotal
	}
	agentDirect := agentDevAmort + agentMaint + agentEnh
	agentHours := alloc.TotalAgentCapacity

	humanHours := alloc.HumanHoursTotal
	humanDirect := sim.HumanBlendCostHr * humanHours
	var humanPriceHr, humanRevenue float64
	if humanHours > 0 {
		humanPriceHr = HumanPricePerHour(sim.HumanBlendCostHr, sim.HumanCMPct, sim.HumanTrioPct)
		humanRevenue = humanPriceHr * humanHours
	}

	agent := entity.CategoryFinancials{
		Category:         entity.CategoryAgent,
		Headcount:        agentCount,
		TotalHours:       agentHours,
		RevenueAnnual:    agentRevenue,
		DirectCostAnnual: agentDirect,
		CostPerHour:      safeDiv(agentDirect, agentHours),
		CostPerMonth:     agentDirect / monthsPerYear,
	}
	if agentCount > 0 {
		agent.CMPct = sim.AgentCMPct
		agent.TrioPct = sim.AgentTrioPct
		agent.GOPPct = GOPPct(agent.CMPct, agent.TrioPct)
	}

	human := entity.CategoryFinancials{
		Category:         entity.CategoryHuman,
		Headcount:        alloc.HumanHeadcount,
		TotalHours:       humanHours,
		RevenueAnnual:    humanRevenue,
		DirectCostAnnual: humanDirect,
		CostPerHour:      sim.HumanBlendCostHr,
		CostPerMonth:     humanDirect / monthsPerYear,
	}
	if humanHours > 0 {
		human.CMPct = sim.HumanCMPct
		human.TrioPct = sim.HumanTrioPct
		human.GOPPct = GOPPct(human.CMPct, human.TrioPct)
	}

	totalRevenue := agentRevenue + humanRevenue
	totalDirect := agentDirect + humanDirect
	totalHours := agentHours + humanHours

	combinedCM, combinedTrio := BlendPercentages([]Weighted{
		{Revenue: agentRevenue, Hours: agentHours, CMPct: agent.CMPct, TrioPct: agent.TrioPct},
		{Revenue: humanRevenue, Hours: humanHours, CMPct: human.CMPct, TrioPct: human.TrioPct},
	})
	combined := entity.CategoryFinancials{
		Category:         entity.CategoryCombined,
		Headcount:        agentCount + alloc.HumanHeadcount,
		TotalHours:       totalHours,
		RevenueAnnual:    totalRevenue,
		DirectCostAnnual: totalDirect,
		CostPerHour:      safeDiv(totalDirect, totalHours),
		CostPerMonth:     totalDirect / monthsPerYear,
		CMPct:            combinedCM,
		TrioPct:          combinedTrio,
		GOPPct:           GOPPct(combinedCM, combinedTrio),
	}

	return entity.PricingResult{
		Agent:             agent,
		Human:             human,
		Combined:          combined,
		True:              TrueFinancialsFor(agentRevenue, humanRevenue, totalDirect, sim),
		HumanPricePerHour: humanPriceHr,
	}
}

// TrueFinancialsFor is the accounting view: contribution and GOP taken
// straight from revenue and direct cost, with Trio charged on revenue.
func TrueFinancialsFor(agentRevenue, humanRevenue, directCost float64, sim entity.SimulationParameters) entity.TrueFinancials {
	revenue := agentRevenue + humanRevenue
	contribution := revenue - directCost
	trio := agentRevenue*sim.AgentTrioPct/100.0 + humanRevenue*sim.HumanTrioPct/100.0
	gop := contribution - trio

	return entity.TrueFinancials{
		RevenueAnnual:    revenue,
		DirectCostAnnual: directCost,
		Contribution:     contribution,
		Trio:             trio,
		GOP:              gop,
		CMPct:            safeDiv(contribution, revenue) * 100.0,
		GOPPct:           safeDiv(gop, revenue) * 100.0,
	}
}
