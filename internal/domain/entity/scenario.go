package entity

// AgentCostEstimate is the heuristic monthly cost of one agent shared by
// the scenario calculators.
type AgentCostEstimate struct {
	AvgBuildCost       float64 `json:"avg_build_cost"`
	AvgMaintPct        float64 `json:"avg_maint_pct"`
	AmortMonth         float64 `json:"amort_month"`
	MaintMonth         float64 `json:"maint_month"`
	InfraMonthPerAgent float64 `json:"infra_month_per_agent"`
	MonthlyCost        float64 `json:"monthly_cost"`
}

// ModeEfficiency is one row of the agent efficiency comparison.
type ModeEfficiency struct {
	Mode               Mode    `json:"mode"`
	Label              string  `json:"label"`
	MinutesPerCase     float64 `json:"minutes_per_case"`
	HoursPerCase       float64 `json:"hours_per_case"`
	TotalHours         float64 `json:"total_hours"`
	FTERequired        int     `json:"fte_required"`
	CostAnnual         float64 `json:"cost_annual"`
	SavingsVsManualPct float64 `json:"savings_vs_manual_pct"`
	PricePerAgentMonth float64 `json:"price_per_agent_month"`
}

// EfficiencyResult is the agent efficiency simulator output.
type EfficiencyResult struct {
	Modes     []ModeEfficiency  `json:"modes"`
	AgentCost AgentCostEstimate `json:"agent_cost"`
	MarginPct float64           `json:"margin_pct"`
}

// Model1Result is the FTE replacement calculation.
type Model1Result struct {
	AgentCost            AgentCostEstimate `json:"agent_cost"`
	AgentPriceMonth      float64           `json:"agent_price_month"`
	HumanHoursMonth      float64           `json:"human_hours_month"`
	AgentsNeeded         int               `json:"agents_needed"`
	TotalAgentPriceMonth float64           `json:"total_agent_price_month"`
	HumanCostMonth       float64           `json:"human_cost_month"`
	SavingsMonth         float64           `json:"savings_month"`
	NegativeSavings      bool              `json:"negative_savings"`
}

// Model2Result is the productivity uplift calculation.
type Model2Result struct {
	HoursSavedAnnual float64 `json:"hours_saved_annual"`
	FTEEquivalent    float64 `json:"fte_equivalent"`
	AnnualSaving     float64 `json:"annual_saving"`
}

// Model4Result is the hybrid elastic coverage calculation.
type Model4Result struct {
	AgentHours         float64           `json:"agent_hours"`
	HumanHours         float64           `json:"human_hours"`
	SteadyHumanHours   float64           `json:"steady_human_hours"`
	BurstHours         float64           `json:"burst_hours"`
	AgentCost          AgentCostEstimate `json:"agent_cost"`
	AgentPriceMonth    float64           `json:"agent_price_month"`
	PriceOverridden    bool              `json:"price_overridden"`
	AgentsNeeded       int               `json:"agents_needed"`
	AgentCostAnnual    float64           `json:"agent_cost_annual"`
	HumanCostAnnual    float64           `json:"human_cost_annual"`
	CombinedCostAnnual float64           `json:"combined_cost_annual"`
}

// ModelsResult groups the commercial model calculations.
type ModelsResult struct {
	Model1 Model1Result `json:"model1"`
	Model2 Model2Result `json:"model2"`
	Model4 Model4Result `json:"model4"`
}
