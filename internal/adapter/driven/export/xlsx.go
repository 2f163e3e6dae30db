package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/pkg/money"
)

const (
	agentsSheet     = "agents"
	financialsSheet = "financials"
)

// ExportSimulationToXLSX grava a pasta de trabalho com as abas "agents"
// (estrutura de time) e "financials" (visão por categoria).
func (r *ExportRepositoryImpl) ExportSimulationToXLSX(report entity.SimulationReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", agentsSheet); err != nil {
		return "", fmt.Errorf("error creating XLSX sheet: %w", err)
	}
	if _, err := f.NewSheet(financialsSheet); err != nil {
		return "", fmt.Errorf("error creating XLSX sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0066CC"}},
	})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}

	agentRows := make([][]interface{}, 0, len(report.Result.Agents))
	for _, row := range report.Result.Agents {
		agentRows = append(agentRows, agentCells(row))
	}
	if err := writeSheet(f, agentsSheet, teamHeader, agentRows, headerStyle); err != nil {
		return "", err
	}

	finRows := make([][]interface{}, 0, 3)
	for _, c := range report.Result.Pricing.Categories() {
		finRows = append(finRows, []interface{}{
			string(c.Category),
			c.Headcount,
			c.TotalHours,
			money.Round(c.CostPerHour, 2),
			money.Round(c.CostPerMonth, 2),
			money.Round(c.CMPct, 2),
			money.Round(c.TrioPct, 2),
			money.Round(c.GOPPct, 2),
		})
	}
	if err := writeSheet(f, financialsSheet, financialsHeader, finRows, headerStyle); err != nil {
		return "", err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int) error {
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}

	all := append([][]interface{}{headerCells}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing XLSX row %d of %s: %w", i+1, sheet, err)
		}
	}

	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("error styling XLSX header of %s: %w", sheet, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
