package repository

import (
	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

// Namespaces of the parameter store, identified by key prefix.
const (
	NamespaceCostProfile = "tco_"
	NamespaceSimulation  = "sim_"
	NamespaceEfficiency  = "ae_"
	NamespaceModel1      = "m1_"
	NamespaceModel2      = "m2_"
	NamespaceModel4      = "m4_"
)

// ParameterStore is the flat key/value session every calculation reads
// from. An empty namespace selects every key.
type ParameterStore interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}) error
	Keys() []string
	Describe(namespace string) []entity.ParameterInfo

	Export(namespace string) map[string]interface{}
	// Import applies every key of the namespace found in data, or nothing
	// at all when data is malformed or holds an unknown key.
	Import(data []byte, namespace string) (int, error)

	// Snapshot validates the current values and returns them as a fully
	// populated parameter set.
	Snapshot() (entity.Parameters, error)
	Clone() ParameterStore
}
