package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw yearly schedule per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.CalculationSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Balance", "TotalContributions", "Interest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range sortedByName(results) {
		for _, yr := range r.Schedule {
			row := []string{
				r.Scenario.Name,
				intToString(yr.Year),
				yr.Balance.StringFixed(2),
				yr.TotalContributions.StringFixed(2),
				yr.Interest().StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
