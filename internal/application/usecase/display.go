package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
	"github.com/diillson/agent-pricing-factory/pkg/money"
)

func (uc *PricingUseCase) displayTCO(s entity.TCOSummary) {
	c := s.Costs
	var b strings.Builder
	fmt.Fprintf(&b, "Foundation (one-time):        %s\n", money.Currency(c.FoundationOneTime))
	fmt.Fprintf(&b, "Token cost / month:           %s  (%d agents)\n", money.Currency(c.TokenCostMonth), c.AgentsForInfra)
	fmt.Fprintf(&b, "Runtime cost / month:         %s\n", money.Currency(c.RuntimeCostMonth))
	fmt.Fprintf(&b, "Infra total / month:          %s\n", money.Currency(c.InfraTotalMonth))
	fmt.Fprintf(&b, "One-time licenses (CapEx):    %s", money.Currency(c.LicenseTotalOneTime))
	uc.console.Panel("Platform Costs", b.String())

	table := uc.console.CreateTable()
	for _, col := range []string{
		"Agent Type", "Build (one-time)", "Maint/mo (% based)", "Maint/mo (slab)", "Enh/mo",
		"Enh/yr (all agents)", "Human hrs/mo/agent", "Human cost/mo/agent", "Capacity (ann)",
	} {
		table.AddColumn(col)
	}
	for _, t := range s.Tiers {
		table.AddRow(
			string(t.Tier),
			money.Currency(t.BuildCost),
			money.Currency(t.MaintMonthPctBased),
			money.Currency(t.MaintMonthSlabBased),
			money.Currency(t.EnhancementMonth),
			money.Currency(t.EnhancementYearTotal),
			money.Round(t.HumanHoursMonth, 2),
			money.Rate(t.HumanCostMonth),
			money.Hours(t.CapacityAnnual),
		)
	}
	uc.console.Print(table.Render())
}

func (uc *PricingUseCase) displaySimulation(r entity.SimulationResult) {
	a := r.Allocation
	var b strings.Builder
	fmt.Fprintf(&b, "Total work-hours (annual): %s   Agent ratio: %s\n", money.Hours(a.TotalHours), money.Percent(a.AgentRatioPct))
	fmt.Fprintf(&b, "Agent hr target: %s   Human hr target: %s\n", money.Hours(a.AgentHourTarget), money.Hours(a.HumanHourTarget))
	fmt.Fprintf(&b, "Agent capacity: %s   Agent hours delivered: %s\n", money.Hours(a.TotalAgentCapacity), money.Hours(a.AgentHoursDelivered))
	fmt.Fprintf(&b, "Human total hrs: %s (residual %s + in-loop %s)\n", money.Hours(a.HumanHoursTotal), money.Hours(a.ResidualHumanHours), money.Hours(a.HumanInLoopHours))
	fmt.Fprintf(&b, "Human headcount required: %d", a.HumanHeadcount)
	uc.console.Panel("Capacity & Allocation", b.String())

	team := uc.console.CreateTable()
	for _, col := range []string{
		"Agent Type", "Count", "Prod hrs/mo", "Capacity (ann)", "Build (one-time)", "Maint/mo",
		"Enh/yr", "Dev amort/mo", "Price/mo", "Price/hr", "CM %", "Trio %",
	} {
		team.AddColumn(col)
	}
	for _, row := range r.Agents {
		team.AddRow(
			string(row.Tier),
			row.Count,
			money.Hours(row.ProdHrsPerMonth),
			money.Hours(row.CapacityAnnual),
			money.Currency(row.BuildOneTime),
			money.Currency(row.MaintMonthly),
			money.Currency(row.EnhYearlyTotal),
			money.Currency(row.DevAmortMonth),
			money.Currency(row.BlendedPriceMonth),
			money.Currency(row.PricePerHour),
			money.Percent(row.CMPct),
			money.Percent(row.TrioPct),
		)
	}
	uc.console.Print(team.Render())

	fin := uc.console.CreateTable()
	for _, col := range []string{"Category", "FTE/FTA Count", "Total Hr (ann)", "Cost/hr", "Cost/mo", "CM % (pricing)", "Trio %", "GOP % (pricing)"} {
		fin.AddColumn(col)
	}
	for _, c := range r.Pricing.Categories() {
		fin.AddRow(
			string(c.Category),
			c.Headcount,
			money.Hours(c.TotalHours),
			money.Rate(c.CostPerHour),
			money.Rate(c.CostPerMonth),
			money.Percent(c.CMPct),
			money.Percent(c.TrioPct),
			money.Percent(c.GOPPct),
		)
	}
	uc.console.Print(fin.Render())

	tf := r.Pricing.True
	uc.console.Panel("True Combined Financials", fmt.Sprintf(
		"CM %s  (contribution %s / revenue %s)\nGOP %s  (GOP %s / revenue %s)",
		money.Percent(tf.CMPct), money.Currency(tf.Contribution), money.Currency(tf.RevenueAnnual),
		money.Percent(tf.GOPPct), money.Currency(tf.GOP), money.Currency(tf.RevenueAnnual),
	))
}

func (uc *PricingUseCase) displayEfficiency(r entity.EfficiencyResult) {
	table := uc.console.CreateTable()
	for _, col := range []string{"Mode", "Min/case", "Hrs/case", "Total hrs (ann)", "FTE required", "Cost (ann)", "Savings vs manual"} {
		table.AddColumn(col)
	}

	bars := make([]types.Bar, 0, len(r.Modes))
	for _, m := range r.Modes {
		table.AddRow(
			m.Label,
			money.Round(m.MinutesPerCase, 2),
			money.Round(m.HoursPerCase, 2),
			money.Hours(m.TotalHours),
			m.FTERequired,
			money.Currency(m.CostAnnual),
			money.Percent(m.SavingsVsManualPct),
		)
		bars = append(bars, types.Bar{Label: m.Label, Value: m.TotalHours})
	}
	uc.console.Print(table.Render())
	uc.console.DisplayBars("Total Hours by Mode", bars)

	ac := r.AgentCost
	price := 0.0
	if len(r.Modes) > 0 {
		price = r.Modes[0].PricePerAgentMonth
	}
	uc.console.Panel("Quick Pricing View", fmt.Sprintf(
		"Approx agent monthly cost: %s  (amortization %s + maintenance %s + infra %s)\nPrice per agent / month at %s margin: %s",
		money.Currency(ac.MonthlyCost), money.Currency(ac.AmortMonth), money.Currency(ac.MaintMonth), money.Currency(ac.InfraMonthPerAgent),
		money.Percent(r.MarginPct), money.Currency(price),
	))
}

func (uc *PricingUseCase) displayModels(r entity.ModelsResult) {
	m1 := r.Model1
	uc.console.Panel("Model 1 - Replace FTEs", fmt.Sprintf(
		"Human hours / month: %s\nAgents needed: %d at %s / month\nTotal agent price / month: %s\nHuman cost / month: %s\nNet monthly savings (Human - Agent): %s",
		money.Hours(m1.HumanHoursMonth), m1.AgentsNeeded, money.Currency(m1.AgentPriceMonth),
		money.Currency(m1.TotalAgentPriceMonth), money.Currency(m1.HumanCostMonth), money.Currency(m1.SavingsMonth),
	))

	m2 := r.Model2
	uc.console.Panel("Model 2 - Productivity Uplift", fmt.Sprintf(
		"Hours saved / year: %s\nFTE equivalent: %s\nAnnual saving: %s",
		money.Hours(m2.HoursSavedAnnual), fmt.Sprint(money.Round(m2.FTEEquivalent, 2)), money.Currency(m2.AnnualSaving),
	))

	m4 := r.Model4
	priceSource := "TCO heuristic"
	if m4.PriceOverridden {
		priceSource = "override"
	}
	uc.console.Panel("Model 4 - Hybrid Elastic", fmt.Sprintf(
		"Agent hours (ann): %s   Human hours (ann): %s\nHuman steady hours: %s   Burst hours: %s\nAgents needed: %d at %s / month (%s)\nAgent cost (ann): %s\nHuman cost (ann): %s\nCombined cost (ann): %s",
		money.Hours(m4.AgentHours), money.Hours(m4.HumanHours),
		money.Hours(m4.SteadyHumanHours), money.Hours(m4.BurstHours),
		m4.AgentsNeeded, money.Currency(m4.AgentPriceMonth), priceSource,
		money.Currency(m4.AgentCostAnnual), money.Currency(m4.HumanCostAnnual), money.Currency(m4.CombinedCostAnnual),
	))
}
