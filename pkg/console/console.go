package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/agent-pricing-factory/internal/shared/types"
	"github.com/diillson/agent-pricing-factory/pkg/money"
)

const barWidth = 40

// Console implementa types.ConsoleInterface sobre o pterm, escrevendo em out.
type Console struct {
	out io.Writer
}

// NewConsole cria um Console que escreve na saída padrão.
func NewConsole() *Console {
	return NewConsoleWriter(os.Stdout)
}

// NewConsoleWriter cria um Console que escreve em w.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.WithWriter(c.out).Printfln(format, a...)
}

// LogWarning registra um aviso, usado também para os alertas de capacidade.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.WithWriter(c.out).Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.WithWriter(c.out).Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.WithWriter(c.out).Printfln(format, a...)
}

type spinnerStatus struct {
	spinner *pterm.SpinnerPrinter
}

// Status inicia um spinner que some ao parar.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.
		WithWriter(c.out).
		WithRemoveWhenDone(true).
		Start(message)
	return &spinnerStatus{spinner: spinner}
}

func (h *spinnerStatus) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

func (h *spinnerStatus) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Table acumula colunas e linhas e só formata no Render.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma tabela vazia.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{}
}

func (t *Table) AddColumn(name string, _ ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow converte cada célula com fmt.Sprint. Linhas menores que o
// cabeçalho são completadas com células vazias.
func (t *Table) AddRow(cells ...interface{}) {
	row := make([]string, max(len(cells), len(t.columns)))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

// Render devolve a tabela com borda e cabeçalho destacado.
func (t *Table) Render() string {
	data := make(pterm.TableData, 0, len(t.rows)+1)
	data = append(data, t.columns)
	data = append(data, t.rows...)

	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
	if err != nil {
		return err.Error()
	}
	return rendered + "\n"
}

// Panel exibe body dentro de uma caixa com título.
func (c *Console) Panel(title, body string) {
	box := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(body)
	fmt.Fprintln(c.out, "\n"+box)
}

// DisplayBars desenha barras horizontais proporcionais à maior. A primeira
// barra é a referência e as demais mostram a variação contra ela: verde
// quando menor, vermelho quando maior.
func (c *Console) DisplayBars(title string, bars []types.Bar) {
	var peak float64
	for _, b := range bars {
		peak = max(peak, b.Value)
	}
	if peak == 0 {
		pterm.Warning.WithWriter(c.out).Printfln("%s: all values are zero", title)
		return
	}

	data := pterm.TableData{{"", "Hours", "", "vs " + bars[0].Label}}
	base := bars[0].Value
	for i, b := range bars {
		bar := strings.Repeat("█", int(b.Value/peak*barWidth))
		style, change := pterm.FgBlue, ""
		if i > 0 && base > 0 {
			delta := (b.Value - base) / base * 100
			switch {
			case delta < 0:
				style, change = pterm.FgGreen, money.Percent(delta)
			case delta > 0:
				style, change = pterm.FgRed, "+"+money.Percent(delta)
			default:
				style, change = pterm.FgYellow, money.Percent(0)
			}
		}
		data = append(data, []string{b.Label, money.Hours(b.Value), style.Sprint(bar), style.Sprint(change)})
	}

	rendered, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	c.Panel(title, rendered)
}
