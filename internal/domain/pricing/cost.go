package pricing

import "github.com/diillson/agent-pricing-factory/internal/domain/entity"

// FoundationOneTime sums the one-time platform setup costs.
func FoundationOneTime(c entity.CostProfile) float64 {
	return c.IdentitySetup + c.NetworkingSetup + c.ObservabilitySetup + c.SecuritySetup
}

// TokenCostMonth is the monthly LLM token spend of the minimum agent bundle.
func TokenCostMonth(c entity.CostProfile) float64 {
	return float64(c.MinAgents) * c.InteractionsPerAgentMonth * c.AvgTokensPerInteraction * c.TokenPricePer1K / 1000.0
}

// RuntimeCostMonth is the monthly per-call runtime spend of the minimum agent bundle.
func RuntimeCostMonth(c entity.CostProfile) float64 {
	return float64(c.MinAgents) * c.InteractionsPerAgentMonth * c.RuntimeCostPerCall
}

// InfraTotalMonth adds usage-driven costs to the fixed monthly infra fields.
func InfraTotalMonth(c entity.CostProfile) float64 {
	fixed := c.VectorDBMonthly + c.EmbeddingMonthly + c.LoggingMonthly +
		c.APIGatewayMonthly + c.CICDMonthly + c.RecurringLicenseMonthly
	return TokenCostMonth(c) + RuntimeCostMonth(c) + fixed
}

// LicenseTotalOneTime sums the one-time license fields.
func LicenseTotalOneTime(c entity.CostProfile) float64 {
	return c.RPALicense + c.OrchestrationLicense + c.AnalyticsLicense + c.OtherLicense
}

// AggregateCosts computes every platform-level total at once.
func AggregateCosts(c entity.CostProfile) entity.CostSummary {
	return entity.CostSummary{
		FoundationOneTime:   FoundationOneTime(c),
		TokenCostMonth:      TokenCostMonth(c),
		RuntimeCostMonth:    RuntimeCostMonth(c),
		InfraTotalMonth:     InfraTotalMonth(c),
		LicenseTotalOneTime: LicenseTotalOneTime(c),
		AgentsForInfra:      c.MinAgents,
	}
}
