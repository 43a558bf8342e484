package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/investment-calculator/internal/domain"
)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

// PDFFormatter renders an A4 report: a scenario summary table followed by inputs,
// totals, a balance chart and the yearly table for every scenario.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.CalculationSet) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetCreationDate(nowFunc())
	r.pdf.SetTitle("Investment Growth Report", true)

	r.addOverview(results)
	for i := range results.Results {
		r.addScenario(&results.Results[i])
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *pdfReport) addOverview(results *domain.CalculationSet) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(44, 62, 80)
	r.pdf.CellFormat(contentWidth, 12, "Investment Growth Report", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", nowFunc().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	for _, a := range assumptionsFor(results) {
		r.pdf.MultiCell(contentWidth, 5, r.tr("- "+a), "", "L", false)
	}
	r.pdf.Ln(4)

	r.drawSectionHeader("Scenario Summary")
	widths := []float64{60, 30, 30, 30, 30}
	r.drawTableHeader([]string{"Scenario", "Future Value", "Real Value", "Contributed", "Interest"}, widths)
	for i, res := range results.Results {
		r.drawTableRow([]string{
			res.Scenario.Name,
			FormatCurrency(res.FutureValue),
			FormatCurrency(res.RealValue),
			FormatCurrency(res.TotalContributions),
			FormatCurrency(res.TotalInterest),
		}, widths, i%2 == 1)
	}

	if len(results.Results) > 1 {
		rec := AnalyzeScenarios(results)
		r.pdf.Ln(3)
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.MultiCell(contentWidth, 5, r.tr(fmt.Sprintf("Highest real value: %s (%s)", rec.ScenarioName, FormatCurrency(rec.RealValue))), "", "L", false)
	}
}

func (r *pdfReport) addScenario(res *domain.CalculationResult) {
	r.pdf.AddPage()
	r.drawSectionHeader(res.Scenario.Name)

	in := res.Input
	contribution := "none"
	if in.ContributionsPerYear > 0 {
		contribution = fmt.Sprintf("%s %s at period %s, growing %s per year",
			FormatCurrency(in.PeriodicContribution), domain.Frequency(in.ContributionsPerYear), in.PaymentTiming, FormatRate(in.ContributionGrowthRate))
	}
	rows := [][2]string{
		{"Initial Investment", FormatCurrency(in.InitialInvestment)},
		{"Periodic Contribution", contribution},
		{"Annual Interest Rate", fmt.Sprintf("%s compounded %s", FormatRate(in.AnnualInterestRate), domain.Frequency(in.CompoundingPerYear))},
		{"Inflation Rate", FormatRate(res.Scenario.InflationRate)},
		{"Years", intToString(in.Years)},
		{"Future Value", FormatCurrency(res.FutureValue)},
		{"Real Value", FormatCurrency(res.RealValue)},
		{"Total Contributions", FormatCurrency(res.TotalContributions)},
		{"Total Interest", FormatCurrency(res.TotalInterest)},
	}
	for _, row := range rows {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.CellFormat(45, 5, row[0]+":", "", 0, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.CellFormat(contentWidth-45, 5, r.tr(row[1]), "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)

	if chart, err := BuildChart(res.Schedule, ChartWidth, ChartHeight); err == nil {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(contentWidth, 6, "Investment Growth Over Time", "", 1, "L", false, 0, "")
		r.drawChart(chart)
	}

	widths := []float64{20, 55, 55, 50}
	header := []string{"Year", "Balance", "Total Contributions", "Interest Earned"}
	r.drawTableHeader(header, widths)
	for i, yr := range res.Schedule {
		if r.pdf.GetY()+rowHeight > pageHeight-marginBottom {
			r.pdf.AddPage()
			r.drawTableHeader(header, widths)
		}
		r.drawTableRow([]string{
			intToString(yr.Year),
			FormatCurrency(yr.Balance),
			FormatCurrency(yr.TotalContributions),
			FormatCurrency(yr.Interest()),
		}, widths, i%2 == 1)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(contentWidth, 8, r.tr(title), "", 1, "L", true, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Ln(2)
}

func (r *pdfReport) drawTableHeader(cols []string, widths []float64) {
	r.pdf.SetFillColor(44, 62, 80)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, c := range cols {
		r.pdf.CellFormat(widths[i], rowHeight+1, c, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *pdfReport) drawTableRow(values []string, widths []float64, shaded bool) {
	r.pdf.SetFont("Arial", "", 9)
	if shaded {
		r.pdf.SetFillColor(245, 247, 250)
	} else {
		r.pdf.SetFillColor(255, 255, 255)
	}
	for i, v := range values {
		align := "R"
		if i == 0 {
			align = "L"
		}
		r.pdf.CellFormat(widths[i], rowHeight, r.tr(v), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

// drawChart draws the chart scaled to the content width at the current position.
func (r *pdfReport) drawChart(c *Chart) {
	scale := contentWidth / c.Width
	height := c.Height * scale
	if r.pdf.GetY()+height > pageHeight-marginBottom {
		r.pdf.AddPage()
	}
	x0, y0 := marginLeft, r.pdf.GetY()
	px := func(x float64) float64 { return x0 + x*scale }
	py := func(y float64) float64 { return y0 + y*scale }

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetLineWidth(0.2)
	r.pdf.SetDrawColor(233, 236, 239)
	for _, t := range c.YTicks {
		r.pdf.Line(px(c.Left), py(t.Pos), px(c.Right), py(t.Pos))
		w := r.pdf.GetStringWidth(t.Label)
		r.pdf.Text(px(c.Left)-w-1.5, py(t.Pos)+1, t.Label)
	}
	for _, t := range c.XTicks {
		w := r.pdf.GetStringWidth(t.Label)
		r.pdf.Text(px(t.Pos)-w/2, py(c.Bottom)+4, t.Label)
	}

	r.pdf.SetDrawColor(108, 117, 125)
	r.pdf.Line(px(c.Left), py(c.Top), px(c.Left), py(c.Bottom))
	r.pdf.Line(px(c.Left), py(c.Bottom), px(c.Right), py(c.Bottom))

	r.pdf.SetDrawColor(0, 123, 255)
	r.pdf.SetFillColor(0, 123, 255)
	r.pdf.SetLineWidth(0.6)
	for i := 1; i < len(c.Points); i++ {
		a, b := c.Points[i-1], c.Points[i]
		r.pdf.Line(px(a.X), py(a.Y), px(b.X), py(b.Y))
	}
	if len(c.Points) == 1 {
		r.pdf.Circle(px(c.Points[0].X), py(c.Points[0].Y), 0.8, "F")
	}

	r.pdf.SetLineWidth(0.2)
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetY(y0 + height + 2)
}
