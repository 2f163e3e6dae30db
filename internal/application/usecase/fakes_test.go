package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

type recordingConsole struct {
	out      strings.Builder
	infos    []string
	warnings []string
	errors   []string
	success  []string
	panels   []string
	tables   []*recordingTable
}

func (c *recordingConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *recordingConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *recordingConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) Status(string) types.StatusHandle { return noopStatus{} }

func (c *recordingConsole) CreateTable() types.TableInterface {
	t := &recordingTable{}
	c.tables = append(c.tables, t)
	return t
}

func (c *recordingConsole) Panel(title, body string) {
	c.panels = append(c.panels, title+"\n"+body)
}

func (c *recordingConsole) DisplayBars(title string, bars []types.Bar) {
	c.panels = append(c.panels, title)
}

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type recordingTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *recordingTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *recordingTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *recordingTable) Render() string                          { return strings.Join(t.columns, "|") }

type stubExport struct {
	calls   []string
	failXLS bool
	profile map[string]interface{}
}

func (s *stubExport) record(kind, name, dir string) (string, error) {
	s.calls = append(s.calls, kind)
	return dir + "/" + name + "." + kind, nil
}

func (s *stubExport) ExportSimulationToCSV(_ entity.SimulationReport, name, dir string) (string, error) {
	return s.record("csv", name, dir)
}

func (s *stubExport) ExportSimulationToJSON(_ entity.SimulationReport, name, dir string) (string, error) {
	return s.record("json", name, dir)
}

func (s *stubExport) ExportSimulationToXLSX(_ entity.SimulationReport, name, dir string) (string, error) {
	if s.failXLS {
		s.calls = append(s.calls, "xlsx")
		return "", errors.New("disk full")
	}
	return s.record("xlsx", name, dir)
}

func (s *stubExport) ExportSimulationToPDF(_ entity.SimulationReport, name, dir string) (string, error) {
	return s.record("pdf", name, dir)
}

func (s *stubExport) ExportProfileToJSON(profile map[string]interface{}, name, dir string) (string, error) {
	s.profile = profile
	return s.record("profile", name, dir)
}

type stubConfig struct {
	cfg *types.Config
	err error
}

func (s stubConfig) LoadConfigFile(string) (*types.Config, error) { return s.cfg, s.err }
