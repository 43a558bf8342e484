package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyRecord is the year-end snapshot of a schedule
type YearlyRecord struct {
	Year               int             `json:"year"`
	Balance            decimal.Decimal `json:"balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
}

// Interest returns the interest earned up to the end of the year
func (yr YearlyRecord) Interest() decimal.Decimal {
	return yr.Balance.Sub(yr.TotalContributions)
}

// CalculationResult holds the schedule and derived values for one scenario
type CalculationResult struct {
	ID                 string          `json:"id"`
	Scenario           Scenario        `json:"scenario"`
	Input              ScheduleInput   `json:"input"`
	FutureValue        decimal.Decimal `json:"future_value"`
	RealValue          decimal.Decimal `json:"real_value"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
	Schedule           []YearlyRecord  `json:"schedule"`
}

// CalculationSet collects the results of every scenario in a configuration
type CalculationSet struct {
	Results     []CalculationResult `json:"results"`
	Assumptions []string            `json:"assumptions,omitempty"`
}

// Names returns the scenario names in result order
func (cs *CalculationSet) Names() []string {
	names := make([]string, len(cs.Results))
	for i, r := range cs.Results {
		names[i] = r.Scenario.Name
	}
	return names
}
