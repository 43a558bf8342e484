package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.CalculationSet) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, r := range results.Results {
		fmt.Fprintf(&buf, "%s: FV=%s Real=%s Contributed=%s Interest=%s Years=%d\n",
			r.Scenario.Name,
			FormatCurrency(r.FutureValue),
			FormatCurrency(r.RealValue),
			FormatCurrency(r.TotalContributions),
			FormatCurrency(r.TotalInterest),
			r.Input.Years,
		)
	}
	if len(results.Results) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest real value: %s (%s, +%s / %s over next best)\n",
			rec.ScenarioName, FormatCurrency(rec.RealValue), FormatCurrency(rec.Lead), FormatPercentage(rec.LeadPercentage))
	}
	return buf.Bytes(), nil
}
