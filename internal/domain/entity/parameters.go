package entity

// CostProfile holds the one-time and recurring platform cost inputs.
type CostProfile struct {
	IdentitySetup      float64 `json:"identity_setup"`
	NetworkingSetup    float64 `json:"networking_setup"`
	ObservabilitySetup float64 `json:"observability_setup"`
	SecuritySetup      float64 `json:"security_setup"`

	MinAgents                 int     `json:"min_agents"`
	AvgTokensPerInteraction   float64 `json:"avg_tokens_per_interaction"`
	InteractionsPerAgentMonth float64 `json:"interactions_per_agent_month"`
	TokenPricePer1K           float64 `json:"token_price_per_1k"`
	RuntimeCostPerCall        float64 `json:"runtime_cost_per_call"`

	RecurringLicenseMonthly float64 `json:"recurring_license_monthly"`
	VectorDBMonthly         float64 `json:"vector_db_monthly"`
	EmbeddingMonthly        float64 `json:"embedding_monthly"`
	LoggingMonthly          float64 `json:"logging_monthly"`
	APIGatewayMonthly       float64 `json:"api_gateway_monthly"`
	CICDMonthly             float64 `json:"cicd_monthly"`

	RPALicense           float64 `json:"rpa_license"`
	OrchestrationLicense float64 `json:"orchestration_license"`
	AnalyticsLicense     float64 `json:"analytics_license"`
	OtherLicense         float64 `json:"other_license"`
}

// TierParameters holds the cost and deployment inputs of one agent tier.
// Percentages are expected in [0,100] and MaintSlabSize >= 1; the
// parameter store validates this before a snapshot reaches the engine.
type TierParameters struct {
	BuildHours         float64 `json:"build_hours"`
	HourlyRate         float64 `json:"hourly_rate"`
	MaintenancePctYear float64 `json:"maintenance_pct_year"`
	EnhancementPctYear float64 `json:"enhancement_pct_year"`
	MaintPerSlab       float64 `json:"maint_per_slab"`
	MaintSlabSize      int     `json:"maint_slab_size"`
	AgentHoursPerMonth float64 `json:"agent_hours_per_month"`
	HumanInLoopPct     float64 `json:"human_inloop_pct"`
	HumanHourlyRate    float64 `json:"human_hourly_rate"`
	Count              int     `json:"count"`
	ProdHrsPerMonth    float64 `json:"prod_hrs_per_month"`
}

// SimulationParameters holds the agent vs human simulation inputs.
type SimulationParameters struct {
	TotalHours           float64 `json:"total_hours"`
	AgentRatioPct        float64 `json:"agent_ratio_pct"`
	AgentCMPct           float64 `json:"agent_cm_pct"`
	AgentTrioPct         float64 `json:"agent_trio_pct"`
	HumanProdHrsPerMonth float64 `json:"human_prod_hrs_per_month"`
	HumanBlendCostHr     float64 `json:"human_blend_cost_hr"`
	HumanCMPct           float64 `json:"human_cm_pct"`
	HumanTrioPct         float64 `json:"human_trio_pct"`
	// HumanInLoopFraction is a fraction in [0,1], not a percentage.
	HumanInLoopFraction float64 `json:"human_inloop_fraction"`
}

// EfficiencyParameters holds the agent efficiency simulator inputs.
type EfficiencyParameters struct {
	Cases        float64          `json:"cases"`
	FTEHoursYear float64          `json:"fte_hours_year"`
	HumanCostHr  float64          `json:"human_cost_hr"`
	ModeMinutes  map[Mode]float64 `json:"mode_minutes"`
	MarginPct    float64          `json:"margin_pct"`
}

// Model1Parameters holds the FTE replacement inputs.
type Model1Parameters struct {
	CurrentFTEs       float64 `json:"current_ftes"`
	HumanCostHr       float64 `json:"human_cost_hr"`
	HumanProdHrsMonth float64 `json:"human_prod_hrs_month"`
	AgentMarginPct    float64 `json:"agent_margin_pct"`
	AgentProdHrsMonth float64 `json:"agent_prod_hrs_month"`
}

// Model2Parameters holds the productivity uplift inputs.
type Model2Parameters struct {
	CasesPerYear    float64 `json:"cases_per_year"`
	BaseMinutesCase float64 `json:"base_minutes_case"`
	NewMinutesCase  float64 `json:"new_minutes_case"`
	HumanCostHr     float64 `json:"human_cost_hr"`
	FTEHoursYear    float64 `json:"fte_hours_year"`
}

// Model4Parameters holds the hybrid elastic coverage inputs.
type Model4Parameters struct {
	TotalHours         float64 `json:"total_hours"`
	AgentCoveragePct   float64 `json:"agent_coverage_pct"`
	BurstPct           float64 `json:"burst_pct"`
	HumanCostHr        float64 `json:"human_cost_hr"`
	AgentPriceOverride float64 `json:"agent_price_override"`
	AgentProdHrsMonth  float64 `json:"agent_prod_hrs_month"`
}

// Parameters is an immutable, fully-populated input snapshot. Every
// calculation reads from one of these; none of them apply defaults.
type Parameters struct {
	Cost       CostProfile             `json:"cost"`
	Tiers      map[Tier]TierParameters `json:"tiers"`
	Simulation SimulationParameters    `json:"simulation"`
	Efficiency EfficiencyParameters    `json:"efficiency"`
	Model1     Model1Parameters        `json:"model1"`
	Model2     Model2Parameters        `json:"model2"`
	Model4     Model4Parameters        `json:"model4"`
}
