package repository

import (
	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
)

// ExportRepository writes simulation and profile reports to disk. Every
// method returns the absolute path of the file it wrote.
type ExportRepository interface {
	ExportSimulationToCSV(report entity.SimulationReport, filename, outputDir string) (string, error)
	ExportSimulationToJSON(report entity.SimulationReport, filename, outputDir string) (string, error)
	ExportSimulationToXLSX(report entity.SimulationReport, filename, outputDir string) (string, error)
	ExportSimulationToPDF(report entity.SimulationReport, filename, outputDir string) (string, error)

	// Profiles
	ExportProfileToJSON(profile map[string]interface{}, filename, outputDir string) (string, error)
}
