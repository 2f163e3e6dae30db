package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/pkg/money"
)

// ExportSimulationToPDF gera um resumo de uma página: alocação, estrutura de
// time, visão financeira por categoria e CM/GOP financeiro real.
func (r *ExportRepositoryImpl) ExportSimulationToPDF(report entity.SimulationReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	headerColor := [3]int{0, 102, 204}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	pageWidth := 277.0

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pageWidth, pdf.GetY())
		pdf.Ln(3)
	}

	drawTable := func(header []string, rows [][]string) {
		width := pageWidth / float64(len(header))
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, h := range header {
			pdf.CellFormat(width, 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			for i, cell := range row {
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(width, 6, tr(cell), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Simulation - Agent vs Human"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("  Run %s | %s", report.ID, report.GeneratedAt.Format("2006-01-02 15:04:05"))), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	// Alocação
	alloc := report.Result.Allocation
	sectionTitle("Capacity & Allocation")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(pageWidth, 5, tr(allocationSummary(alloc)), "", "L", false)
	pdf.Ln(5)

	// Estrutura de time
	sectionTitle("Team Structure")
	teamRows := make([][]string, 0, len(report.Result.Agents)+1)
	for _, a := range report.Result.Agents {
		teamRows = append(teamRows, []string{
			string(a.Tier),
			fmt.Sprint(a.Count),
			money.Hours(a.ProdHrsPerMonth),
			money.Hours(a.CapacityAnnual),
			money.Currency(a.BuildOneTime),
			money.Currency(a.MaintMonthly),
			money.Currency(a.EnhYearlyTotal),
			money.Currency(a.DevAmortMonth),
			money.Currency(a.BlendedPriceMonth),
			money.Currency(a.PricePerHour),
			money.Percent(a.CMPct),
			money.Percent(a.TrioPct),
		})
	}
	human := make([]string, len(teamHeader))
	human[0] = string(entity.CategoryHuman)
	human[1] = fmt.Sprint(alloc.HumanHeadcount)
	human[3] = money.Hours(alloc.HumanHoursTotal)
	teamRows = append(teamRows, human)
	drawTable(teamHeader, teamRows)

	// Financeiro
	sectionTitle("Financials")
	finRows := make([][]string, 0, 3)
	for _, c := range report.Result.Pricing.Categories() {
		finRows = append(finRows, []string{
			string(c.Category),
			fmt.Sprint(c.Headcount),
			money.Hours(c.TotalHours),
			money.Rate(c.CostPerHour),
			money.Rate(c.CostPerMonth),
			money.Percent(c.CMPct),
			money.Percent(c.TrioPct),
			money.Percent(c.GOPPct),
		})
	}
	drawTable(financialsHeader, finRows)

	tf := report.Result.Pricing.True
	sectionTitle("True Combined Financials")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(pageWidth, 5, tr(fmt.Sprintf(
		"Revenue: %s\nDirect cost: %s\nContribution: %s (CM %s)\nGOP: %s (GOP %s)",
		money.Currency(tf.RevenueAnnual), money.Currency(tf.DirectCostAnnual),
		money.Currency(tf.Contribution), money.Percent(tf.CMPct),
		money.Currency(tf.GOP), money.Percent(tf.GOPPct),
	)), "", "L", false)

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Agent Pricing Factory | %s", report.GeneratedAt.Format("2006-01-02"))), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func allocationSummary(a entity.AllocationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total work-hours (annual): %s at %s agent ratio\n", money.Hours(a.TotalHours), money.Percent(a.AgentRatioPct))
	fmt.Fprintf(&b, "Agent hr target: %s | Human hr target: %s\n", money.Hours(a.AgentHourTarget), money.Hours(a.HumanHourTarget))
	fmt.Fprintf(&b, "Agent capacity: %s | Agent hours delivered: %s\n", money.Hours(a.TotalAgentCapacity), money.Hours(a.AgentHoursDelivered))
	fmt.Fprintf(&b, "Human total hrs: %s (residual %s + in-loop %s) | Human headcount: %d",
		money.Hours(a.HumanHoursTotal), money.Hours(a.ResidualHumanHours), money.Hours(a.HumanInLoopHours), a.HumanHeadcount)
	if a.CapacityShortfall {
		b.WriteString("\nAgent capacity is below the agent hour target.")
	}
	return b.String()
}
