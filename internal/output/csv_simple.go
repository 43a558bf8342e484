package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.CalculationSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Years", "InitialInvestment", "FutureValue", "RealValue", "TotalContributions", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range sortedByName(results) {
		row := []string{
			r.Scenario.Name,
			intToString(r.Input.Years),
			r.Input.InitialInvestment.StringFixed(2),
			r.FutureValue.StringFixed(2),
			r.RealValue.StringFixed(2),
			r.TotalContributions.StringFixed(2),
			r.TotalInterest.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func sortedByName(results *domain.CalculationSet) []domain.CalculationResult {
	out := append([]domain.CalculationResult(nil), results.Results...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Scenario.Name < out[j].Scenario.Name })
	return out
}
