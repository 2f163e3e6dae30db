package store

import (
	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

// kind is the validation rule applied to a key when a snapshot is taken.
type kind int

const (
	kindAmount   kind = iota // >= 0
	kindPercent              // [0,100]
	kindFraction             // [0,1]
	kindPositive             // > 0
	kindCount                // whole number >= 0
	kindSlab                 // whole number >= 1
)

// definition is one key of the catalogue. A key with a fallback takes the
// value of the fallback key until it is set explicitly.
type definition struct {
	key         string
	value       float64
	fallback    string
	kind        kind
	description string
}

var tierBuild = map[entity.Tier][2]float64{
	entity.TierUtility:      {120, 1200},
	entity.TierStandard:     {240, 1200},
	entity.TierProfessional: {480, 1400},
	entity.TierEnterprise:   {960, 1600},
}

var modeMinutes = map[entity.Mode]float64{
	entity.ModeManual:         55,
	entity.ModeAssistive:      25,
	entity.ModeSemiAutonomous: 12.5,
	entity.ModeAutonomous:     4,
}

func catalogue() []definition {
	defs := []definition{
		{key: "tco_one_time_identity", value: 150000, description: "One-time identity & access setup"},
		{key: "tco_one_time_vpc", value: 200000, description: "One-time networking (VPC) setup"},
		{key: "tco_one_time_observability", value: 120000, description: "One-time observability setup"},
		{key: "tco_one_time_security", value: 100000, description: "One-time security setup"},
		{key: "tco_min_agents", value: 10, kind: kindCount, description: "Agents in the minimum bundle used for infra usage"},
		{key: "tco_avg_tokens_interaction", value: 500, description: "Average tokens per interaction"},
		{key: "tco_interactions_per_agent_month", value: 1000, description: "Interactions per agent per month"},
		{key: "tco_token_price_per_1k", value: 0.046, description: "Token price per 1k tokens"},
		{key: "tco_agent_runtime_cost_per_call", value: 0.001, description: "Runtime cost per call"},
		{key: "tco_recurring_license_monthly", value: 0, description: "Recurring license cost per month"},
		{key: "tco_vector_db_monthly", value: 20000, description: "Vector DB per month"},
		{key: "tco_embedding_monthly", value: 15000, description: "Embedding service per month"},
		{key: "tco_logging_monthly", value: 12000, description: "Logging & monitoring per month"},
		{key: "tco_api_gateway_monthly", value: 8000, description: "API gateway per month"},
		{key: "tco_cicd_monthly", value: 15000, description: "CI/CD pipeline per month"},
		{key: "tco_one_time_rpa_license", value: 0, description: "One-time RPA license"},
		{key: "tco_one_time_orch_license", value: 0, description: "One-time orchestration license"},
		{key: "tco_one_time_analytics_license", value: 0, description: "One-time analytics license"},
		{key: "tco_one_time_other_license", value: 0, description: "One-time other license"},

		// tier templates
		{key: "tco_maintenance_pct_year", value: 20, kind: kindPercent, description: "Default maintenance % of build per year"},
		{key: "tco_enhancement_pct_year", value: 10, kind: kindPercent, description: "Default enhancement % of build per year"},
		{key: "tco_agent_hours_per_month", value: 180, kind: kindPositive, description: "Default agent productive hours per month"},
		{key: "tco_human_inloop_pct", value: 10, kind: kindPercent, description: "Default human-in-loop % of agent hours"},
		{key: "tco_human_hourly_rate", value: 600, description: "Default human-in-loop hourly rate"},
		{key: "tco_maint_slab_default", value: 10, kind: kindSlab, description: "Default agents per maintenance slab"},
	}

	for _, t := range entity.Tiers {
		k := t.Key()
		name := string(t)
		defs = append(defs,
			definition{key: "tco_build_hours_" + k, value: tierBuild[t][0], description: name + " build hours"},
			definition{key: "tco_hourly_" + k, value: tierBuild[t][1], description: name + " build hourly rate"},
			definition{key: "tco_maint_pct_" + k, fallback: "tco_maintenance_pct_year", kind: kindPercent, description: name + " maintenance % per year"},
			definition{key: "tco_enh_pct_" + k, fallback: "tco_enhancement_pct_year", kind: kindPercent, description: name + " enhancement % per year"},
			definition{key: "tco_maint_per_slab_" + k, description: name + " maintenance per slab per month"},
			definition{key: "tco_maint_slab_" + k, fallback: "tco_maint_slab_default", kind: kindSlab, description: name + " agents per maintenance slab"},
			definition{key: "tco_agent_hours_" + k, fallback: "tco_agent_hours_per_month", kind: kindPositive, description: name + " agent hours per month"},
			definition{key: "tco_human_pct_" + k, fallback: "tco_human_inloop_pct", kind: kindPercent, description: name + " human-in-loop %"},
			definition{key: "tco_human_rate_" + k, fallback: "tco_human_hourly_rate", description: name + " human-in-loop hourly rate"},
		)
	}

	defs = append(defs,
		definition{key: "sim_hours", value: 10000, description: "Total work-hours to model (annual)"},
		definition{key: "sim_agent_ratio_pct", value: 0, kind: kindPercent, description: "Target % of work handled by agents"},
		definition{key: "sim_agent_cm_pct", value: 45, kind: kindPercent, description: "Agent CM %"},
		definition{key: "sim_agent_trio_pct", value: 5, kind: kindPercent, description: "Agent Trio %"},
		definition{key: "sim_prod_human", value: 160, kind: kindPositive, description: "Human productive hours per month"},
		definition{key: "sim_human_blend_cost_hr", value: 320, description: "Blended human cost per hour"},
		definition{key: "sim_human_cm_pct", value: 30, kind: kindPercent, description: "Human CM %"},
		definition{key: "sim_human_trio_pct", value: 22, kind: kindPercent, description: "Human Trio %"},
		definition{key: "sim_human_inloop_pct_global", value: 0, kind: kindFraction, description: "Human-in-loop fraction of agent hours (0..1)"},
	)
	for _, t := range entity.Tiers {
		k := t.Key()
		defs = append(defs,
			definition{key: "sim_agent_prodhrs_" + k, fallback: "tco_agent_hours_" + k, kind: kindPositive, description: string(t) + " productive hours per month"},
			definition{key: "sim_count_" + k, kind: kindCount, description: string(t) + " agent count"},
		)
	}

	defs = append(defs,
		definition{key: "ae_cases", value: 1000, description: "Cases to model (annual)"},
		definition{key: "ae_fte_hours", value: 1920, kind: kindPositive, description: "FTE productive hours per year"},
		definition{key: "ae_human_cost_hr", fallback: "sim_human_blend_cost_hr", description: "Human cost per hour"},
	)
	for _, m := range entity.Modes {
		defs = append(defs, definition{key: "ae_time_" + string(m), value: modeMinutes[m], description: m.Label() + " minutes per case"})
	}
	defs = append(defs,
		definition{key: "ae_margin_pct", value: 40, kind: kindPercent, description: "Margin % applied on agent cost"},

		definition{key: "m1_cur_ftes", value: 10, description: "Current FTEs"},
		definition{key: "m1_human_cost_hr", fallback: "sim_human_blend_cost_hr", description: "Human cost per hour"},
		definition{key: "m1_human_prod_hrs", value: 160, kind: kindPositive, description: "Human productive hours per month"},
		definition{key: "m1_agent_margin", value: 30, kind: kindPercent, description: "Agent margin %"},
		definition{key: "m1_agent_prod_hrs", value: 180, kind: kindPositive, description: "Agent productive hours per month"},

		definition{key: "m2_cases", value: 10000, description: "Base cases per year"},
		definition{key: "m2_base_time", value: 55, description: "Current minutes per case"},
		definition{key: "m2_new_time", value: 25, description: "Minutes per case with agent"},
		definition{key: "m2_human_cost_hr", fallback: "sim_human_blend_cost_hr", description: "Human cost per hour"},
		definition{key: "m2_fte_hours", value: 1920, kind: kindPositive, description: "FTE productive hours per year"},

		definition{key: "m4_total_hours", value: 10000, description: "Total work-hours (annual)"},
		definition{key: "m4_agent_cov", value: 40, kind: kindPercent, description: "Agent coverage % of workload"},
		definition{key: "m4_burst_pct", value: 20, kind: kindPercent, description: "Burst capacity % carried by humans"},
		definition{key: "m4_human_cost_hr", value: 320, description: "Human cost per hour"},
		definition{key: "m4_agent_price_override", value: 0, description: "Agent price per month override, 0 uses the TCO heuristic"},
		definition{key: "m4_agent_prod_hrs", value: 180, kind: kindPositive, description: "Agent productive hours per month"},
	)

	return defs
}

var (
	definitions = catalogue()
	index       = indexDefinitions(definitions)
)

func indexDefinitions(defs []definition) map[string]definition {
	idx := make(map[string]definition, len(defs))
	for _, d := range defs {
		idx[d.key] = d
	}
	return idx
}

// namespaceOf returns the prefix of a key up to and including the first
// underscore.
func namespaceOf(key string) string {
	for i, r := range key {
		if r == '_' {
			return key[:i+1]
		}
	}
	return key
}
