package output

import (
	"sort"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RankedScenario is one entry of a scenario ranking.
type RankedScenario struct {
	Rank        int
	Name        string
	FutureValue decimal.Decimal
	RealValue   decimal.Decimal
	// RealGain is the real value minus everything contributed.
	RealGain decimal.Decimal
}

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	FutureValue  decimal.Decimal
	RealValue    decimal.Decimal
	// Lead is the real value advantage over the runner-up, zero with a single scenario.
	Lead decimal.Decimal
	// LeadPercentage is Lead relative to the runner-up's real value, in percent.
	LeadPercentage decimal.Decimal
}

// RankScenarios orders the results by real value, highest first. Ties keep name order.
func RankScenarios(results *domain.CalculationSet) []RankedScenario {
	ranks := make([]RankedScenario, 0, len(results.Results))
	for _, r := range results.Results {
		ranks = append(ranks, RankedScenario{
			Name:        r.Scenario.Name,
			FutureValue: r.FutureValue,
			RealValue:   r.RealValue,
			RealGain:    r.RealValue.Sub(r.TotalContributions),
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if !ranks[i].RealValue.Equal(ranks[j].RealValue) {
			return ranks[i].RealValue.GreaterThan(ranks[j].RealValue)
		}
		return ranks[i].Name < ranks[j].Name
	})
	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks
}

// AnalyzeScenarios determines the scenario with the highest real value.
func AnalyzeScenarios(results *domain.CalculationSet) Recommendation {
	ranks := RankScenarios(results)
	if len(ranks) == 0 {
		return Recommendation{}
	}
	best := ranks[0]
	rec := Recommendation{ScenarioName: best.Name, FutureValue: best.FutureValue, RealValue: best.RealValue}
	if len(ranks) > 1 {
		runnerUp := ranks[1].RealValue
		rec.Lead = best.RealValue.Sub(runnerUp)
		if !runnerUp.IsZero() {
			rec.LeadPercentage = rec.Lead.Div(runnerUp).Mul(decimalHundred)
		}
	}
	return rec
}
