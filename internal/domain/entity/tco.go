package entity

// CostSummary contains the platform-level totals derived from a CostProfile.
type CostSummary struct {
	FoundationOneTime   float64 `json:"foundation_one_time"`
	TokenCostMonth      float64 `json:"token_cost_month"`
	RuntimeCostMonth    float64 `json:"runtime_cost_month"`
	InfraTotalMonth     float64 `json:"infra_total_month"`
	LicenseTotalOneTime float64 `json:"license_total_one_time"`
	AgentsForInfra      int     `json:"agents_for_infra"`
}

// TierEconomics contains the derived per-tier cost figures.
//
// Two maintenance figures are exposed on purpose: the TCO view uses the
// percentage-based one, the simulation uses the slab-based one.
type TierEconomics struct {
	Tier                 Tier    `json:"tier"`
	BuildCost            float64 `json:"build_cost"`
	MaintMonthPctBased   float64 `json:"maint_month_pct_based"`
	MaintMonthSlabBased  float64 `json:"maint_month_slab_based"`
	EnhancementMonth     float64 `json:"enhancement_month"`
	EnhancementYearTotal float64 `json:"enhancement_year_total"`
	HumanHoursMonth      float64 `json:"human_hours_month"`
	HumanCostMonth       float64 `json:"human_cost_month"`
	CapacityAnnual       float64 `json:"capacity_annual"`
}

// TCOSummary is the full TCO view.
type TCOSummary struct {
	Costs CostSummary     `json:"costs"`
	Tiers []TierEconomics `json:"tiers"`
}
