package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

func scenarioParams() entity.Parameters {
	build := map[entity.Tier][2]float64{
		entity.TierUtility:      {120, 1200},
		entity.TierStandard:     {240, 1200},
		entity.TierProfessional: {480, 1400},
		entity.TierEnterprise:   {960, 1600},
	}
	tiers := make(map[entity.Tier]entity.TierParameters, len(build))
	for t, b := range build {
		tiers[t] = entity.TierParameters{BuildHours: b[0], HourlyRate: b[1], MaintenancePctYear: 20, MaintSlabSize: 10}
	}

	return entity.Parameters{
		Tiers: tiers,
		Cost:  entity.CostProfile{MinAgents: 10, RecurringLicenseMonthly: 5000},
		Efficiency: entity.EfficiencyParameters{
			Cases:        1000,
			FTEHoursYear: 1920,
			HumanCostHr:  320,
			MarginPct:    40,
			ModeMinutes: map[entity.Mode]float64{
				entity.ModeManual:         55,
				entity.ModeAssistive:      25,
				entity.ModeSemiAutonomous: 12.5,
				entity.ModeAutonomous:     4,
			},
		},
		Model1: entity.Model1Parameters{CurrentFTEs: 10, HumanCostHr: 320, HumanProdHrsMonth: 160, AgentMarginPct: 30, AgentProdHrsMonth: 180},
		Model2: entity.Model2Parameters{CasesPerYear: 10000, BaseMinutesCase: 55, NewMinutesCase: 25, HumanCostHr: 320, FTEHoursYear: 1920},
		Model4: entity.Model4Parameters{TotalHours: 10000, AgentCoveragePct: 40, BurstPct: 20, HumanCostHr: 320, AgentProdHrsMonth: 180},
	}
}

func TestApproxAgentMonthlyCost(t *testing.T) {
	p := scenarioParams()
	est := ApproxAgentMonthlyCost(p.Tiers, p.Cost)

	// (144000 + 288000 + 672000 + 1536000) / 4
	assert.Equal(t, 660000.0, est.AvgBuildCost)
	assert.InDelta(t, 660000.0/36, est.AmortMonth, 1e-9)
	assert.InDelta(t, 11000.0, est.MaintMonth, 1e-9)
	assert.InDelta(t, 500.0, est.InfraMonthPerAgent, 1e-9)
	assert.InDelta(t, 660000.0/36+11500, est.MonthlyCost, 1e-9)
}

func TestApproxAgentMonthlyCostGuardsMinAgents(t *testing.T) {
	p := scenarioParams()
	p.Cost.MinAgents = 0
	est := ApproxAgentMonthlyCost(p.Tiers, p.Cost)
	assert.InDelta(t, 5000.0, est.InfraMonthPerAgent, 1e-9)
}

func TestScenarioCalculatorsShareAgentCost(t *testing.T) {
	p := scenarioParams()
	want := ApproxAgentMonthlyCost(p.Tiers, p.Cost)

	assert.Equal(t, want, Efficiency(p).AgentCost)
	assert.Equal(t, want, ReplaceFTEs(p).AgentCost)
	assert.Equal(t, want, HybridElastic(p).AgentCost)
}

func TestEfficiency(t *testing.T) {
	res := Efficiency(scenarioParams())
	assert.Len(t, res.Modes, 4)

	manual := res.Modes[0]
	assert.Equal(t, entity.ModeManual, manual.Mode)
	assert.Zero(t, manual.SavingsVsManualPct)
	assert.InDelta(t, 916.666, manual.TotalHours, 1e-3)
	assert.Equal(t, 1, manual.FTERequired)

	assistive := res.Modes[1]
	assert.InDelta(t, 30.0/55.0*100, assistive.SavingsVsManualPct, 1e-9)
	assert.InDelta(t, 25.0/60*1000*320, assistive.CostAnnual, 1e-6)

	for _, m := range res.Modes {
		assert.Equal(t, manual.PricePerAgentMonth, m.PricePerAgentMonth)
	}
}

func TestEfficiencyWithoutManualTime(t *testing.T) {
	p := scenarioParams()
	p.Efficiency.ModeMinutes[entity.ModeManual] = 0
	for _, m := range Efficiency(p).Modes {
		assert.Zero(t, m.SavingsVsManualPct)
	}
}

func TestReplaceFTEs(t *testing.T) {
	p := scenarioParams()
	res := ReplaceFTEs(p)

	assert.Equal(t, 1600.0, res.HumanHoursMonth)
	assert.Equal(t, 9, res.AgentsNeeded)
	assert.InDelta(t, res.AgentCost.MonthlyCost*1.3, res.AgentPriceMonth, 1e-9)
	assert.Equal(t, 512000.0, res.HumanCostMonth)
	assert.InDelta(t, 512000-9*res.AgentPriceMonth, res.SavingsMonth, 1e-6)
	assert.Equal(t, res.SavingsMonth < 0, res.NegativeSavings)
}

func TestUplift(t *testing.T) {
	res := Uplift(scenarioParams())
	assert.InDelta(t, 5000.0, res.HoursSavedAnnual, 1e-9)
	assert.InDelta(t, 5000.0/1920, res.FTEEquivalent, 1e-9)
	assert.InDelta(t, 1600000.0, res.AnnualSaving, 1e-6)
}

func TestHybridElastic(t *testing.T) {
	p := scenarioParams()
	res := HybridElastic(p)

	assert.Equal(t, 4000.0, res.AgentHours)
	assert.Equal(t, 6000.0, res.HumanHours)
	assert.InDelta(t, 4800.0, res.SteadyHumanHours, 1e-9)
	assert.InDelta(t, 1200.0, res.BurstHours, 1e-9)
	assert.Equal(t, 2, res.AgentsNeeded)
	assert.False(t, res.PriceOverridden)
	assert.InDelta(t, res.AgentCost.MonthlyCost, res.AgentPriceMonth, 1e-9)
	assert.Equal(t, 1920000.0, res.HumanCostAnnual)

	p.Model4.AgentPriceOverride = 25000
	res = HybridElastic(p)
	assert.True(t, res.PriceOverridden)
	assert.Equal(t, 25000.0*12*2, res.AgentCostAnnual)
	assert.Equal(t, 600000.0+1920000.0, res.CombinedCostAnnual)
}
