package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// teamHeader é o cabeçalho da estrutura de time, usado no CSV e na aba
// "agents" do XLSX.
var teamHeader = []string{
	"AgentType", "Count", "Prod_Hrs/Mo", "CapacityAnn", "BuildOneTime", "Maint/mo",
	"EnhYearly", "DevAmort/mo", "Price/mo", "Price/hr", "CM%", "Trio%",
}

// financialsHeader é o cabeçalho da aba "financials" do XLSX.
var financialsHeader = []string{
	"Category", "FTE/FTA Count", "Total Hr (ann)", "Cost/hr (SEK)", "Cost/mo (SEK)",
	"CM % (pricing)", "Trio %", "GOP % (pricing)",
}

// --- Estrutura de time (CSV) ---

func (r *ExportRepositoryImpl) ExportSimulationToCSV(report entity.SimulationReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(teamHeader); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range report.Result.Agents {
		record := make([]string, 0, len(teamHeader))
		for _, cell := range agentCells(row) {
			record = append(record, formatCell(cell))
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	// Linha humana: apenas headcount e horas totais
	alloc := report.Result.Allocation
	human := make([]string, len(teamHeader))
	human[0] = string(entity.CategoryHuman)
	human[1] = strconv.Itoa(alloc.HumanHeadcount)
	human[3] = formatCell(truncate(alloc.HumanHoursTotal))
	if err := writer.Write(human); err != nil {
		return "", fmt.Errorf("error writing CSV row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// --- JSON ---

func (r *ExportRepositoryImpl) ExportSimulationToJSON(report entity.SimulationReport, filename, outputDir string) (string, error) {
	return r.writeJSON(report, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportProfileToJSON(profile map[string]interface{}, filename, outputDir string) (string, error) {
	return r.writeJSON(profile, filename, outputDir)
}

func (r *ExportRepositoryImpl) writeJSON(data interface{}, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename monta "<base>_<timestamp>.<ext>" dentro de dir, criando o
// diretório se necessário. Sem dir, usa o diretório corrente.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// agentCells retorna os valores de uma linha de agente na ordem de teamHeader.
func agentCells(row entity.AgentRow) []interface{} {
	return []interface{}{
		string(row.Tier),
		row.Count,
		row.ProdHrsPerMonth,
		row.CapacityAnnual,
		row.BuildOneTime,
		row.MaintMonthly,
		row.EnhYearlyTotal,
		truncate(row.DevAmortMonth),
		row.BlendedPriceMonth,
		row.PricePerHour,
		row.CMPct,
		row.TrioPct,
	}
}

func formatCell(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

// truncate descarta a parte fracionária, como as colunas inteiras da planilha.
func truncate(x float64) float64 {
	return math.Trunc(x)
}
