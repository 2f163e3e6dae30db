package pricing

import (
	"math"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

// TierCapacity is the deployed size of one tier.
type TierCapacity struct {
	Count           int
	ProdHrsPerMonth float64
}

// AllocationInput carries everything the capacity model needs.
type AllocationInput struct {
	TotalHours           float64
	AgentRatioPct        float64
	HumanInLoopFraction  float64
	HumanProdHrsPerMonth float64
	Tiers                []TierCapacity
}

// AgentHourTargets splits totalHours by the agent ratio. The agent share
// is floored and the human share is the exact remainder, so the two always
// sum to totalHours.
func AgentHourTargets(totalHours, agentRatioPct float64) (agent, human float64) {
	agent = math.Floor(totalHours * agentRatioPct / 100.0)
	human = totalHours - agent
	return agent, human
}

// HumanHeadcount is the number of people needed for humanHours a year.
func HumanHeadcount(humanHours, humanProdHrsPerMonth float64) int {
	annualPerPerson := truncate(humanProdHrsPerMonth * monthsPerYear)
	return ceilDiv(humanHours, annualPerPerson)
}

// Allocate runs the capacity and allocation model.
func Allocate(in AllocationInput) entity.AllocationResult {
	agentTarget, humanTarget := AgentHourTargets(in.TotalHours, in.AgentRatioPct)

	var capacity float64
	for _, t := range in.Tiers {
		capacity += truncate(CapacityAnnual(t.Count, t.ProdHrsPerMonth))
	}

	delivered := math.Min(capacity, agentTarget)
	inLoop := roundHalfEven(delivered * in.HumanInLoopFraction)
	residual := math.Max(0, in.TotalHours-delivered)
	humanTotal := residual + inLoop

	return entity.AllocationResult{
		TotalHours:          in.TotalHours,
		AgentRatioPct:       in.AgentRatioPct,
		AgentHourTarget:     agentTarget,
		HumanHourTarget:     humanTarget,
		TotalAgentCapacity:  capacity,
		AgentHoursDelivered: delivered,
		HumanInLoopHours:    inLoop,
		ResidualHumanHours:  residual,
		HumanHoursTotal:     humanTotal,
		HumanHeadcount:      HumanHeadcount(humanTotal, in.HumanProdHrsPerMonth),
		CapacityShortfall:   capacity < agentTarget,
		SpareCapacity:       capacity > agentTarget,
	}
}
