package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestRepository() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time { return fixedNow }}
}

func sampleReport() entity.SimulationReport {
	agents := make([]entity.AgentRow, 0, len(entity.Tiers))
	for _, t := range entity.Tiers {
		agents = append(agents, entity.AgentRow{Tier: t, ProdHrsPerMonth: 180})
	}
	agents[1] = entity.AgentRow{
		Tier:              entity.TierStandard,
		Count:             5,
		ProdHrsPerMonth:   180,
		CapacityAnnual:    10800,
		BuildOneTime:      288000,
		MaintMonthly:      1000,
		EnhYearlyTotal:    144000,
		DevAmortMonth:     8333.416666666667,
		BlendedPriceMonth: 51800,
		PricePerHour:      287,
		CMPct:             45,
		TrioPct:           5,
	}

	return entity.SimulationReport{
		ID:          "7f1c8f5e-0000-4000-8000-000000000001",
		GeneratedAt: fixedNow,
		Result: entity.SimulationResult{
			Agents: agents,
			Allocation: entity.AllocationResult{
				TotalHours:          20000,
				AgentRatioPct:       50,
				AgentHourTarget:     10000,
				HumanHourTarget:     10000,
				TotalAgentCapacity:  10800,
				AgentHoursDelivered: 10000,
				HumanInLoopHours:    1000,
				ResidualHumanHours:  10000,
				HumanHoursTotal:     11000,
				HumanHeadcount:      6,
				SpareCapacity:       true,
			},
			Pricing: entity.PricingResult{
				Agent:    entity.CategoryFinancials{Category: entity.CategoryAgent, Headcount: 5, TotalHours: 10800, CMPct: 45, TrioPct: 5, GOPPct: 40},
				Human:    entity.CategoryFinancials{Category: entity.CategoryHuman, Headcount: 6, TotalHours: 11000, CostPerHour: 320, CMPct: 30, TrioPct: 22, GOPPct: 8},
				Combined: entity.CategoryFinancials{Category: entity.CategoryCombined, Headcount: 11, TotalHours: 21800, CMPct: 38.123456, TrioPct: 12.5, GOPPct: 25.623456},
			},
		},
	}
}

func TestGenerateFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	name, err := newTestRepository().generateFilename("simulation", dir, "csv")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "simulation_20260314_093000.csv"), name)
	assert.DirExists(t, dir)
}

func TestExportSimulationToCSV(t *testing.T) {
	path, err := newTestRepository().ExportSimulationToCSV(sampleReport(), "team_structure", t.TempDir())
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, teamHeader, records[0])
	assert.Equal(t, []string{"Standard", "5", "180", "10800", "288000", "1000", "144000", "8333", "51800", "287", "45", "5"}, records[2])
	assert.Equal(t, "Utility", records[1][0])
	assert.Equal(t, "0", records[1][1])
	assert.Equal(t, []string{"Human", "6", "", "11000", "", "", "", "", "", "", "", ""}, records[5])
}

func TestExportSimulationToJSON(t *testing.T) {
	report := sampleReport()
	path, err := newTestRepository().ExportSimulationToJSON(report, "simulation", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		ID          string                  `json:"id"`
		GeneratedAt time.Time               `json:"generated_at"`
		Result      entity.SimulationResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.ID, decoded.ID)
	assert.True(t, report.GeneratedAt.Equal(decoded.GeneratedAt))
	assert.Equal(t, 6, decoded.Result.Allocation.HumanHeadcount)
	assert.Equal(t, entity.TierStandard, decoded.Result.Agents[1].Tier)
}

func TestExportSimulationToXLSX(t *testing.T) {
	path, err := newTestRepository().ExportSimulationToXLSX(sampleReport(), "simulation_results", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{agentsSheet, financialsSheet}, f.GetSheetList())

	agents, err := f.GetRows(agentsSheet)
	require.NoError(t, err)
	require.Len(t, agents, 5)
	assert.Equal(t, teamHeader, agents[0])
	assert.Equal(t, "Standard", agents[2][0])
	assert.Equal(t, "5", agents[2][1])
	assert.Equal(t, "8333", agents[2][7])
	assert.Equal(t, "51800", agents[2][8])

	financials, err := f.GetRows(financialsSheet)
	require.NoError(t, err)
	require.Len(t, financials, 4)
	assert.Equal(t, financialsHeader, financials[0])
	assert.Equal(t, []string{"Agent", "Human", "Combined"}, []string{financials[1][0], financials[2][0], financials[3][0]})
	assert.Equal(t, "38.12", financials[3][5])
}

func TestExportSimulationToPDF(t *testing.T) {
	path, err := newTestRepository().ExportSimulationToPDF(sampleReport(), "simulation", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestExportProfileToJSONSortsKeys(t *testing.T) {
	profile := map[string]interface{}{
		"tco_hourly_utility":      1200.0,
		"tco_build_hours_utility": 120.0,
		"tco_cicd_monthly":        15000.0,
	}
	path, err := newTestRepository().ExportProfileToJSON(profile, "tco_profile", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "tco_profile_20260314_093000.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"tco_build_hours_utility\": 120,\n  \"tco_cicd_monthly\": 15000,\n  \"tco_hourly_utility\": 1200\n}\n", string(data))
}
