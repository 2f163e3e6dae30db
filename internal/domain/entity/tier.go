package entity

import (
	"fmt"
	"strings"
)

// Tier is one of the predefined agent categories.
type Tier string

const (
	TierUtility      Tier = "Utility"
	TierStandard     Tier = "Standard"
	TierProfessional Tier = "Professional"
	TierEnterprise   Tier = "Enterprise"
)

// Tiers lists every tier in display order.
var Tiers = []Tier{TierUtility, TierStandard, TierProfessional, TierEnterprise}

// Key returns the lower-case suffix used in parameter keys, e.g. "utility".
func (t Tier) Key() string {
	return strings.ToLower(string(t))
}

// ParseTier resolves a tier from its name or key, case-insensitively.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown agent tier %q", s)
}

// TierReference is the quick reference entry shown for a tier.
type TierReference struct {
	Tier             Tier   `json:"type"`
	Description      string `json:"description"`
	ProductivityGain string `json:"productivity_gain"`
}

// TierReferences returns the quick reference table in tier order.
func TierReferences() []TierReference {
	return []TierReference{
		{TierUtility, "Small, simple automations. Low build cost, low savings", "2-5%"},
		{TierStandard, "Standard agent for common tasks. Moderate build cost", "5-7%"},
		{TierProfessional, "Complex agents with integrations. Higher costs, higher gains", "7-10%"},
		{TierEnterprise, "Mission-critical agents, strong ROI over time", "10-15%"},
	}
}
