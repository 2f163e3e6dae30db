package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/agent-pricing-factory/internal/adapter/driven/store"
	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

func newTestUseCase(cfg stubConfig) (*PricingUseCase, *recordingConsole, *stubExport) {
	console := &recordingConsole{}
	exp := &stubExport{}
	uc := NewPricingUseCase(store.NewParameterStore(), exp, cfg, console)
	uc.newID = func() string { return "run-1" }
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc, console, exp
}

func get(t *testing.T, s repository.ParameterStore, key string) interface{} {
	t.Helper()
	v, ok := s.Get(key)
	require.True(t, ok, key)
	return v
}

func TestPrepareStorePrecedence(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "tco_profile.json")
	require.NoError(t, os.WriteFile(profile, []byte(`{"tco_hourly_utility": 1300, "tco_hourly_standard": 1250}`), 0o644))

	cfg := &types.Config{
		Profile:    profile,
		ReportName: "from-config",
		ReportType: []string{"csv"},
		Parameters: map[string]interface{}{"tco_hourly_standard": 1275, "sim_count_standard": 3},
	}
	uc, console, _ := newTestUseCase(stubConfig{cfg: cfg})

	args := &types.CLIArgs{
		ConfigFile: "pricing.yaml",
		ReportName: "from-flag",
		Set:        []string{"sim_count_standard=5", "sim_agent_ratio_pct = 40"},
	}
	require.NoError(t, uc.PrepareStore(args))

	assert.Equal(t, 1300.0, get(t, uc.Store(), "tco_hourly_utility"), "profile over defaults")
	assert.Equal(t, 1275.0, get(t, uc.Store(), "tco_hourly_standard"), "config over profile")
	assert.Equal(t, 5.0, get(t, uc.Store(), "sim_count_standard"), "--set over config")
	assert.Equal(t, 40.0, get(t, uc.Store(), "sim_agent_ratio_pct"))

	assert.Equal(t, "from-flag", args.ReportName)
	assert.Equal(t, []string{"csv"}, args.ReportType)
	assert.Equal(t, profile, args.Profile)
	assert.NotEmpty(t, console.infos)
}

func TestPrepareStoreErrors(t *testing.T) {
	uc, _, _ := newTestUseCase(stubConfig{})

	err := uc.PrepareStore(&types.CLIArgs{Set: []string{"sim_hours"}})
	assert.ErrorContains(t, err, "expected key=value")

	err = uc.PrepareStore(&types.CLIArgs{Set: []string{"sim_nope=1"}})
	assert.ErrorIs(t, err, types.ErrUnknownParameter)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"tco_hourly_utility": `), 0o644))
	err = uc.PrepareStore(&types.CLIArgs{Profile: bad})
	assert.ErrorIs(t, err, types.ErrMalformedProfile)
	assert.Equal(t, 1200.0, get(t, uc.Store(), "tco_hourly_utility"))
}

func TestRunSimulationExportsEveryRequestedType(t *testing.T) {
	uc, console, exp := newTestUseCase(stubConfig{})
	exp.failXLS = true

	require.NoError(t, uc.Store().Set("sim_count_standard", 5))
	require.NoError(t, uc.Store().Set("sim_agent_ratio_pct", 100))
	require.NoError(t, uc.Store().Set("sim_hours", 20000))

	report, err := uc.RunSimulation(&types.CLIArgs{
		ReportName: "team",
		ReportType: []string{"csv", "xlsx", "docx", "json", "pdf"},
		Dir:        "out",
	})
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.ID)
	assert.Equal(t, 10800.0, report.Result.Allocation.TotalAgentCapacity)
	assert.Equal(t, []string{"csv", "xlsx", "json", "pdf"}, exp.calls)
	assert.Len(t, console.success, 3)
	require.Len(t, console.errors, 2)
	assert.Contains(t, console.errors[0], "disk full")
	assert.Contains(t, console.errors[1], "docx")

	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "below the agent hour target")
}

func TestRunSimulationWithoutReportNameSkipsExport(t *testing.T) {
	uc, _, exp := newTestUseCase(stubConfig{})
	_, err := uc.RunSimulation(&types.CLIArgs{ReportType: []string{"csv"}})
	require.NoError(t, err)
	assert.Empty(t, exp.calls)
}

func TestRunSimulationReportsSpareCapacityAtZeroRatio(t *testing.T) {
	uc, console, _ := newTestUseCase(stubConfig{})
	require.NoError(t, uc.Store().Set("sim_count_standard", 1))

	report, err := uc.RunSimulation(&types.CLIArgs{})
	require.NoError(t, err)

	alloc := report.Result.Allocation
	assert.Zero(t, alloc.AgentHourTarget)
	assert.True(t, alloc.SpareCapacity)
	assert.Empty(t, console.warnings)
	require.NotEmpty(t, console.infos)
	assert.Contains(t, console.infos[len(console.infos)-1], "2160 h of spare capacity")
}

func TestRunSimulationRejectsInvalidParameters(t *testing.T) {
	uc, _, _ := newTestUseCase(stubConfig{})
	require.NoError(t, uc.Store().Set("sim_agent_cm_pct", 140))

	_, err := uc.RunSimulation(&types.CLIArgs{})
	assert.ErrorIs(t, err, types.ErrInvalidParameters)
}

func TestRunModelsWarnsOnNegativeSavings(t *testing.T) {
	uc, console, _ := newTestUseCase(stubConfig{})
	require.NoError(t, uc.Store().Set("m1_human_cost_hr", 1))

	result, err := uc.RunModels()
	require.NoError(t, err)
	assert.True(t, result.Model1.NegativeSavings)
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "Model 1")
	assert.Len(t, console.panels, 3)
}

func TestRunTCOAndEfficiencyRenderTables(t *testing.T) {
	uc, console, _ := newTestUseCase(stubConfig{})

	summary, err := uc.RunTCO()
	require.NoError(t, err)
	assert.Len(t, summary.Tiers, 4)
	require.Len(t, console.tables, 1)
	assert.Len(t, console.tables[0].rows, 4)

	eff, err := uc.RunEfficiency()
	require.NoError(t, err)
	assert.Len(t, eff.Modes, 4)
	assert.Len(t, console.tables[1].rows, 4)
}

func TestRunTiersAndDefaults(t *testing.T) {
	uc, console, _ := newTestUseCase(stubConfig{})

	uc.RunTiers()
	require.Len(t, console.tables, 1)
	assert.Len(t, console.tables[0].rows, len(entity.Tiers))

	uc.RunDefaults(repository.NamespaceModel2)
	require.Len(t, console.tables, 2)
	assert.Len(t, console.tables[1].rows, 5)
}

func TestExportProfile(t *testing.T) {
	uc, _, exp := newTestUseCase(stubConfig{})
	require.NoError(t, uc.Store().Set("tco_hourly_utility", 1333))

	path, err := uc.ExportProfile(&types.CLIArgs{Dir: "out"})
	require.NoError(t, err)
	assert.Equal(t, "out/"+DefaultProfileName+".profile", path)
	assert.Equal(t, 1333.0, exp.profile["tco_hourly_utility"])
	assert.NotContains(t, exp.profile, "sim_hours")
}

func TestImportProfile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"tco_hourly_utility": 1400, "sim_hours": 1}`), 0o644))
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"tco_maint_pct_utility": 250}`), 0o644))

	uc, console, _ := newTestUseCase(stubConfig{})

	n, err := uc.ImportProfile(good, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, console.out.String(), `"tco_hourly_utility": 1400`)

	_, err = uc.ImportProfile(invalid, "")
	assert.ErrorIs(t, err, types.ErrInvalidParameters)
	assert.Equal(t, 20.0, get(t, uc.Store(), "tco_maint_pct_utility"), "failed validation leaves the store unchanged")
}
