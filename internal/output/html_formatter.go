package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"strconv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// Default chart size used by the HTML pages.
const (
	ChartWidth  = 720.0
	ChartHeight = 320.0
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateFuncs returns the helpers available to every report template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"curr": FormatCurrency,
		"pct":  FormatPercentage,
		"rate": FormatRate,
		"num":  func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
		"freq": func(perYear int) string { return domain.Frequency(perYear).String() },
		"json": func(v interface{}) template.JS {
			b, _ := json.Marshal(v)
			return template.JS(b)
		},
	}
}

// NewTemplate returns a template named name holding the shared partials
// ("scenario", "summary", "inputs", "schedule", "chart", "styles").
func NewTemplate(name string) (*template.Template, error) {
	return template.New(name).Funcs(TemplateFuncs()).ParseFS(templateFS, "templates/partials.html.tmpl")
}

var htmlTemplate = template.Must(template.Must(NewTemplate("report")).ParseFS(templateFS, "templates/report.html.tmpl"))

// ScenarioView pairs a result with its chart for the "scenario" partial.
type ScenarioView struct {
	Result *domain.CalculationResult
	Chart  *Chart
}

// NewScenarioView builds the chart for a result. On chart failure the view is still
// usable and renders without the chart.
func NewScenarioView(r *domain.CalculationResult) (ScenarioView, error) {
	chart, err := BuildChart(r.Schedule, ChartWidth, ChartHeight)
	return ScenarioView{Result: r, Chart: chart}, err
}

// HTMLFormatter produces a standalone HTML report with an inline SVG chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) Format(results *domain.CalculationSet) ([]byte, error) {
	views := make([]ScenarioView, len(results.Results))
	for i := range results.Results {
		views[i], _ = NewScenarioView(&results.Results[i])
	}

	data := struct {
		Scenarios      []ScenarioView
		Assumptions    []string
		Ranking        []RankedScenario
		Recommendation Recommendation
	}{views, assumptionsFor(results), RankScenarios(results), AnalyzeScenarios(results)}

	var buf bytes.Buffer
	if err := htmlTemplate.ExecuteTemplate(&buf, "report.html.tmpl", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
