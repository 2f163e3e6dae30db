package entity

import "time"

// SimulationReport wraps a simulation result with the metadata of the run
// that produced it.
type SimulationReport struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Result      SimulationResult `json:"result"`
}

// ParameterInfo describes one parameter store key.
type ParameterInfo struct {
	Key         string      `json:"key"`
	Namespace   string      `json:"namespace"`
	Default     interface{} `json:"default"`
	Value       interface{} `json:"value"`
	Description string      `json:"description"`
}
