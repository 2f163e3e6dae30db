package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/domain/pricing"
	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

// DefaultProfileName is the base file name of exported cost profiles.
const DefaultProfileName = "tco_profile"

// PricingUseCase orchestrates the parameter store, the calculation engine,
// the console and the exporters.
type PricingUseCase struct {
	store      repository.ParameterStore
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface

	newID func() string
	now   func() time.Time
}

// NewPricingUseCase creates a new pricing use case.
func NewPricingUseCase(
	store repository.ParameterStore,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *PricingUseCase {
	return &PricingUseCase{
		store:      store,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// Store returns the session parameter store.
func (uc *PricingUseCase) Store() repository.ParameterStore {
	return uc.store
}

// PrepareStore aplica as camadas de configuração sobre os padrões, nesta
// ordem: arquivo de perfil, parâmetros do arquivo de configuração e flags
// --set. Campos de relatório vazios em args são completados pelo config.
func (uc *PricingUseCase) PrepareStore(args *types.CLIArgs) error {
	var cfg *types.Config
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
		mergeConfig(args, cfg)
	}

	if args.Profile != "" {
		data, err := os.ReadFile(args.Profile)
		if err != nil {
			return fmt.Errorf("error reading profile: %w", err)
		}
		n, err := uc.store.Import(data, repository.NamespaceCostProfile)
		if err != nil {
			return fmt.Errorf("error importing profile %s: %w", args.Profile, err)
		}
		uc.console.LogInfo("Loaded %d cost profile values from %s", n, args.Profile)
	}

	if cfg != nil {
		for key, value := range cfg.Parameters {
			if err := uc.store.Set(key, value); err != nil {
				return fmt.Errorf("config parameter: %w", err)
			}
		}
	}

	for _, assignment := range args.Set {
		key, value, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid --set %q: expected key=value", assignment)
		}
		if err := uc.store.Set(key, value); err != nil {
			return err
		}
	}

	return nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.Profile == "" {
		args.Profile = cfg.Profile
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.Addr == "" {
		args.Addr = cfg.Addr
	}
}

// --- Cálculos sem saída no console (usados também pela API HTTP) ---

// ComputeTCO validates the store and computes the TCO summary.
func ComputeTCO(store repository.ParameterStore) (entity.TCOSummary, error) {
	params, err := store.Snapshot()
	if err != nil {
		return entity.TCOSummary{}, err
	}
	return pricing.TCO(params), nil
}

// ComputeSimulation validates the store and runs the simulation.
func ComputeSimulation(store repository.ParameterStore) (entity.SimulationResult, error) {
	params, err := store.Snapshot()
	if err != nil {
		return entity.SimulationResult{}, err
	}
	return pricing.Simulate(params), nil
}

// ComputeEfficiency validates the store and compares the operating modes.
func ComputeEfficiency(store repository.ParameterStore) (entity.EfficiencyResult, error) {
	params, err := store.Snapshot()
	if err != nil {
		return entity.EfficiencyResult{}, err
	}
	return pricing.Efficiency(params), nil
}

// ComputeModels validates the store and runs the commercial models.
func ComputeModels(store repository.ParameterStore) (entity.ModelsResult, error) {
	params, err := store.Snapshot()
	if err != nil {
		return entity.ModelsResult{}, err
	}
	return pricing.Models(params), nil
}

// --- Comandos ---

// RunTiers exibe a referência rápida dos tiers.
func (uc *PricingUseCase) RunTiers() {
	table := uc.console.CreateTable()
	table.AddColumn("Agent Type")
	table.AddColumn("Description")
	table.AddColumn("Productivity Gain")
	for _, ref := range entity.TierReferences() {
		table.AddRow(string(ref.Tier), ref.Description, ref.ProductivityGain)
	}
	uc.console.Print(table.Render())
}

// RunTCO calcula e exibe o TCO.
func (uc *PricingUseCase) RunTCO() (entity.TCOSummary, error) {
	summary, err := ComputeTCO(uc.store)
	if err != nil {
		return summary, err
	}
	uc.displayTCO(summary)
	return summary, nil
}

// RunSimulation executa a simulação, exibe os resultados e exporta os
// relatórios pedidos. Falha em um formato não interrompe os demais.
func (uc *PricingUseCase) RunSimulation(args *types.CLIArgs) (entity.SimulationReport, error) {
	status := uc.console.Status("Running simulation...")
	result, err := ComputeSimulation(uc.store)
	status.Stop()
	if err != nil {
		return entity.SimulationReport{}, err
	}

	report := entity.SimulationReport{
		ID:          uc.newID(),
		GeneratedAt: uc.now(),
		Result:      result,
	}

	uc.displaySimulation(result)
	uc.simulationAdvisories(result.Allocation)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportSimulation(report, args)
	}
	return report, nil
}

func (uc *PricingUseCase) exportSimulation(report entity.SimulationReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)

		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportSimulationToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportSimulationToJSON(report, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportSimulationToXLSX(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportSimulationToPDF(report, args.ReportName, args.Dir)
		default:
			uc.console.LogError("%s: %s", types.ErrUnsupportedReportType, reportType)
			continue
		}

		name := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export simulation to %s: %s", name, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported simulation to %s: %s", name, path)
	}
}

func (uc *PricingUseCase) simulationAdvisories(alloc entity.AllocationResult) {
	switch {
	case alloc.CapacityShortfall:
		uc.console.LogWarning("Agent capacity (%.0f h) is below the agent hour target (%.0f h). Add agents or raise productive hours.",
			alloc.TotalAgentCapacity, alloc.AgentHourTarget)
	case alloc.SpareCapacity:
		uc.console.LogInfo("Agents have %.0f h of spare capacity over the target.", alloc.TotalAgentCapacity-alloc.AgentHourTarget)
	}
}

// RunEfficiency compara os modos de operação.
func (uc *PricingUseCase) RunEfficiency() (entity.EfficiencyResult, error) {
	result, err := ComputeEfficiency(uc.store)
	if err != nil {
		return result, err
	}
	uc.displayEfficiency(result)
	return result, nil
}

// RunModels executa os modelos comerciais 1, 2 e 4.
func (uc *PricingUseCase) RunModels() (entity.ModelsResult, error) {
	result, err := ComputeModels(uc.store)
	if err != nil {
		return result, err
	}
	uc.displayModels(result)
	if result.Model1.NegativeSavings {
		uc.console.LogWarning("Model 1: replacing FTEs with agents costs more than the current team. Consider adjusting price or productivity.")
	}
	return result, nil
}

// RunDefaults lista as chaves do namespace com padrão e valor atual.
func (uc *PricingUseCase) RunDefaults(namespace string) {
	table := uc.console.CreateTable()
	table.AddColumn("Key")
	table.AddColumn("Default")
	table.AddColumn("Value")
	table.AddColumn("Description")
	for _, info := range uc.store.Describe(namespace) {
		table.AddRow(info.Key, info.Default, info.Value, info.Description)
	}
	uc.console.Print(table.Render())
}

// ExportProfile grava o namespace em JSON e retorna o caminho do arquivo.
func (uc *PricingUseCase) ExportProfile(args *types.CLIArgs) (string, error) {
	namespace := args.Namespace
	if namespace == "" {
		namespace = repository.NamespaceCostProfile
	}
	name := args.ReportName
	if name == "" {
		name = DefaultProfileName
	}

	path, err := uc.exportRepo.ExportProfileToJSON(uc.store.Export(namespace), name, args.Dir)
	if err != nil {
		return "", fmt.Errorf("error exporting profile: %w", err)
	}
	uc.console.LogSuccess("Successfully exported profile to JSON: %s", path)
	return path, nil
}

// ImportProfile aplica um arquivo de perfil, valida o resultado e imprime o
// namespace mesclado em JSON.
func (uc *PricingUseCase) ImportProfile(path, namespace string) (int, error) {
	if namespace == "" {
		namespace = repository.NamespaceCostProfile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading profile: %w", err)
	}

	// Valida numa cópia para não deixar o store com valores inválidos.
	staged := uc.store.Clone()
	if _, err := staged.Import(data, namespace); err != nil {
		return 0, err
	}
	if _, err := staged.Snapshot(); err != nil {
		return 0, err
	}

	n, err := uc.store.Import(data, namespace)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(uc.store.Export(namespace)); err != nil {
		return n, fmt.Errorf("error encoding profile: %w", err)
	}

	uc.console.LogSuccess("Imported %d values from %s", n, path)
	uc.console.Print(buf.String())
	return n, nil
}
