package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

func TestDefaults(t *testing.T) {
	s := NewParameterStore()

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"tco_one_time_identity", 150000.0},
		{"tco_token_price_per_1k", 0.046},
		{"tco_build_hours_enterprise", 960.0},
		{"tco_hourly_professional", 1400.0},
		{"tco_maint_pct_standard", 20.0},
		{"tco_maint_slab_utility", 10.0},
		{"sim_agent_prodhrs_standard", 180.0},
		{"sim_count_enterprise", 0.0},
		{"ae_time_semi_autonomous", 12.5},
		{"ae_human_cost_hr", 320.0},
		{"m4_human_cost_hr", 320.0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := s.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}

	_, ok := s.Get("tco_does_not_exist")
	assert.False(t, ok)
}

func TestFallbackFollowsExplicitValues(t *testing.T) {
	s := NewParameterStore()

	require.NoError(t, s.Set("tco_agent_hours_per_month", 170))
	v, _ := s.Get("sim_agent_prodhrs_utility")
	assert.Equal(t, 170.0, v)

	require.NoError(t, s.Set("tco_agent_hours_standard", 200))
	v, _ = s.Get("sim_agent_prodhrs_standard")
	assert.Equal(t, 200.0, v)

	require.NoError(t, s.Set("sim_agent_prodhrs_standard", 150))
	v, _ = s.Get("sim_agent_prodhrs_standard")
	assert.Equal(t, 150.0, v)

	require.NoError(t, s.Set("sim_agent_prodhrs_standard", nil))
	v, _ = s.Get("sim_agent_prodhrs_standard")
	assert.Equal(t, 200.0, v, "nil restores the fallback")
}

func TestSetNormalisesValues(t *testing.T) {
	s := NewParameterStore()

	require.NoError(t, s.Set("sim_count_standard", 5))
	require.NoError(t, s.Set("sim_hours", int64(12000)))
	require.NoError(t, s.Set("sim_agent_cm_pct", " 47.5 "))
	require.NoError(t, s.Set("m2_base_time", json.Number("60")))
	require.NoError(t, s.Set("m1_cur_ftes", "ten"))

	for key, expected := range map[string]interface{}{
		"sim_count_standard": 5.0,
		"sim_hours":          12000.0,
		"sim_agent_cm_pct":   47.5,
		"m2_base_time":       60.0,
		"m1_cur_ftes":        "ten",
	} {
		v, _ := s.Get(key)
		assert.Equal(t, expected, v, key)
	}

	err := s.Set("sim_hours", true)
	assert.ErrorIs(t, err, types.ErrInvalidParameters)

	err = s.Set("sim_unknown", 1)
	assert.ErrorIs(t, err, types.ErrUnknownParameter)
}

func TestKeysAreSortedAndComplete(t *testing.T) {
	keys := NewParameterStore().Keys()
	assert.IsIncreasing(t, keys)
	assert.Len(t, keys, len(definitions))
	assert.Contains(t, keys, "m4_agent_price_override")
}

func TestExportFiltersByNamespace(t *testing.T) {
	s := NewParameterStore()
	exported := s.Export(repository.NamespaceCostProfile)

	assert.NotEmpty(t, exported)
	for key := range exported {
		assert.Equal(t, repository.NamespaceCostProfile, namespaceOf(key))
	}
	assert.Equal(t, 600.0, exported["tco_human_rate_enterprise"])

	all := s.Export("")
	assert.Len(t, all, len(definitions))
}

func TestImportIgnoresOtherNamespaces(t *testing.T) {
	s := NewParameterStore()

	n, err := s.Import([]byte(`{"tco_hourly_utility": 1500, "sim_hours": 1, "foo": "bar"}`), repository.NamespaceCostProfile)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, _ := s.Get("tco_hourly_utility")
	assert.Equal(t, 1500.0, v)
	v, _ = s.Get("sim_hours")
	assert.Equal(t, 10000.0, v)
}

func TestImportFailureLeavesStoreUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
	}{
		{"truncated json", `{"tco_hourly_utility": 1500,`, types.ErrMalformedProfile},
		{"not an object", `[1, 2, 3]`, types.ErrMalformedProfile},
		{"null document", `null`, types.ErrMalformedProfile},
		{"nested value", `{"tco_hourly_utility": 1500, "tco_hourly_standard": {"a": 1}}`, types.ErrMalformedProfile},
		{"unknown key in namespace", `{"tco_hourly_utility": 1500, "tco_nope": 1}`, types.ErrUnknownParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewParameterStore()
			require.NoError(t, s.Set("tco_hourly_utility", 1300))
			before := s.Export("")

			n, err := s.Import([]byte(tt.payload), repository.NamespaceCostProfile)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, n)
			assert.Equal(t, before, s.Export(""))
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewParameterStore()
	require.NoError(t, src.Set("tco_build_hours_standard", 300))
	require.NoError(t, src.Set("tco_maint_per_slab_enterprise", 4500))
	require.NoError(t, src.Set("tco_maintenance_pct_year", 18))

	data, err := json.Marshal(src.Export(repository.NamespaceCostProfile))
	require.NoError(t, err)

	dst := NewParameterStore()
	_, err = dst.Import(data, repository.NamespaceCostProfile)
	require.NoError(t, err)

	assert.Equal(t, src.Export(repository.NamespaceCostProfile), dst.Export(repository.NamespaceCostProfile))

	srcParams, err := src.Snapshot()
	require.NoError(t, err)
	dstParams, err := dst.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, srcParams, dstParams)
}

func TestSnapshotOfDefaults(t *testing.T) {
	p, err := NewParameterStore().Snapshot()
	require.NoError(t, err)

	assert.Equal(t, 10, p.Cost.MinAgents)
	assert.Equal(t, 570000.0, p.Cost.IdentitySetup+p.Cost.NetworkingSetup+p.Cost.ObservabilitySetup+p.Cost.SecuritySetup)

	require.Len(t, p.Tiers, 4)
	std := p.Tiers[entity.TierStandard]
	assert.Equal(t, 240.0, std.BuildHours)
	assert.Equal(t, 10, std.MaintSlabSize)
	assert.Equal(t, 0, std.Count)
	assert.Equal(t, 180.0, std.ProdHrsPerMonth)

	assert.Equal(t, 0.0, p.Simulation.HumanInLoopFraction)
	assert.Equal(t, 12.5, p.Efficiency.ModeMinutes[entity.ModeSemiAutonomous])
	assert.Equal(t, 320.0, p.Model1.HumanCostHr)
	assert.Equal(t, 1920.0, p.Model2.FTEHoursYear)
}

func TestSnapshotCollectsEveryViolation(t *testing.T) {
	s := NewParameterStore()
	require.NoError(t, s.Set("sim_agent_ratio_pct", 120))
	require.NoError(t, s.Set("tco_maint_slab_utility", 0))
	require.NoError(t, s.Set("sim_human_inloop_pct_global", 1.5))
	require.NoError(t, s.Set("sim_count_standard", -1))
	require.NoError(t, s.Set("sim_prod_human", 0))
	require.NoError(t, s.Set("m1_cur_ftes", "ten"))
	require.NoError(t, s.Set("sim_count_professional", 2.7))
	require.NoError(t, s.Set("sim_count_enterprise", 1e19))
	require.NoError(t, s.Set("tco_maint_slab_standard", 2.5))

	_, err := s.Snapshot()
	require.ErrorIs(t, err, types.ErrInvalidParameters)

	for _, key := range []string{
		"sim_agent_ratio_pct",
		"tco_maint_slab_utility",
		"sim_human_inloop_pct_global",
		"sim_count_standard",
		"sim_prod_human",
		"m1_cur_ftes",
		"sim_count_professional",
		"sim_count_enterprise",
		"tco_maint_slab_standard",
	} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestSnapshotCountBounds(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"fractional", 2.7, "whole number"},
		{"beyond int range", 1e19, "must not exceed"},
		{"negative", -3, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewParameterStore()
			require.NoError(t, s.Set("sim_count_standard", tt.value))

			params, err := s.Snapshot()
			require.ErrorIs(t, err, types.ErrInvalidParameters)
			assert.ErrorContains(t, err, tt.want)
			assert.Empty(t, params.Tiers)
		})
	}

	s := NewParameterStore()
	require.NoError(t, s.Set("sim_count_standard", "12"))
	require.NoError(t, s.Set("tco_maint_slab_standard", 4.0))
	_, err := s.Snapshot()
	assert.NoError(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewParameterStore()
	require.NoError(t, s.Set("sim_hours", 5000))

	c := s.Clone()
	require.NoError(t, c.Set("sim_hours", 7000))

	v, _ := s.Get("sim_hours")
	assert.Equal(t, 5000.0, v)
	v, _ = c.Get("sim_hours")
	assert.Equal(t, 7000.0, v)
}

func TestDescribe(t *testing.T) {
	s := NewParameterStore()
	require.NoError(t, s.Set("m4_burst_pct", 35))

	infos := s.Describe(repository.NamespaceModel4)
	require.NotEmpty(t, infos)

	var burst entity.ParameterInfo
	for _, info := range infos {
		assert.Equal(t, repository.NamespaceModel4, info.Namespace)
		if info.Key == "m4_burst_pct" {
			burst = info
		}
	}
	assert.Equal(t, 20.0, burst.Default)
	assert.Equal(t, 35.0, burst.Value)
	assert.NotEmpty(t, burst.Description)
}
