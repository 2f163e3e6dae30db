package entity

// AgentRow is the team structure line of one tier in a simulation.
type AgentRow struct {
	Tier              Tier    `json:"type"`
	Count             int     `json:"count"`
	ProdHrsPerMonth   float64 `json:"prod_hrs_per_month"`
	CapacityAnnual    float64 `json:"capacity_ann"`
	BuildOneTime      float64 `json:"build_one_time"`
	MaintMonthly      float64 `json:"maint_monthly"`
	EnhYearlyTotal    float64 `json:"enh_yearly_total"`
	DevAmortMonth     float64 `json:"dev_amort_month"`
	BlendedPriceMonth float64 `json:"blended_price_month"`
	PricePerHour      float64 `json:"price_per_hr"`
	CMPct             float64 `json:"cm_pct"`
	TrioPct           float64 `json:"trio_pct"`
}

// AllocationResult is the split of work between agents and humans.
type AllocationResult struct {
	TotalHours          float64 `json:"total_hours"`
	AgentRatioPct       float64 `json:"agent_ratio_pct"`
	AgentHourTarget     float64 `json:"agent_hr_target"`
	HumanHourTarget     float64 `json:"human_hr_target"`
	TotalAgentCapacity  float64 `json:"total_agent_capacity"`
	AgentHoursDelivered float64 `json:"agent_hours_delivered"`
	HumanInLoopHours    float64 `json:"human_inloop_hours"`
	ResidualHumanHours  float64 `json:"residual_human_hours"`
	HumanHoursTotal     float64 `json:"human_hours_total"`
	HumanHeadcount      int     `json:"human_headcount"`
	CapacityShortfall   bool    `json:"capacity_shortfall"`
	SpareCapacity       bool    `json:"spare_capacity"`
}

// Category identifies a resource pool in the financial summary.
type Category string

const (
	CategoryAgent    Category = "Agent"
	CategoryHuman    Category = "Human"
	CategoryCombined Category = "Combined"
)

// CategoryFinancials is the pricing view of one resource pool.
type CategoryFinancials struct {
	Category         Category `json:"category"`
	Headcount        int      `json:"headcount"`
	TotalHours       float64  `json:"total_hours"`
	RevenueAnnual    float64  `json:"revenue_annual"`
	DirectCostAnnual float64  `json:"direct_cost_annual"`
	CostPerHour      float64  `json:"cost_per_hr"`
	CostPerMonth     float64  `json:"cost_per_month"`
	CMPct            float64  `json:"cm_pct"`
	TrioPct          float64  `json:"trio_pct"`
	GOPPct           float64  `json:"gop_pct"`
}

// TrueFinancials is the accounting view computed from aggregate revenue
// and cost. It can legitimately diverge from the weighted pricing view.
type TrueFinancials struct {
	RevenueAnnual    float64 `json:"revenue_annual"`
	DirectCostAnnual float64 `json:"direct_cost_annual"`
	Contribution     float64 `json:"contribution"`
	Trio             float64 `json:"trio"`
	GOP              float64 `json:"gop"`
	CMPct            float64 `json:"cm_pct"`
	GOPPct           float64 `json:"gop_pct"`
}

// PricingResult groups the category views with the accounting view.
type PricingResult struct {
	Agent    CategoryFinancials `json:"agent"`
	Human    CategoryFinancials `json:"human"`
	Combined CategoryFinancials `json:"combined"`
	True     TrueFinancials     `json:"true"`
	// HumanPricePerHour is the marked-up human rate (0 without human hours).
	HumanPricePerHour float64 `json:"human_price_per_hr"`
}

// Categories returns the category rows in display order.
func (p PricingResult) Categories() []CategoryFinancials {
	return []CategoryFinancials{p.Agent, p.Human, p.Combined}
}

// SimulationResult is the complete output of one simulation run.
type SimulationResult struct {
	Agents     []AgentRow       `json:"agents"`
	Allocation AllocationResult `json:"allocation"`
	Pricing    PricingResult    `json:"pricing"`
}
