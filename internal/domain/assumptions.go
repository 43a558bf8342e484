package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

// Describe summarises the scenario's modeling assumptions in one line.
func (s Scenario) Describe() string {
	in := s.ScheduleInput()
	compounding := Frequency(in.CompoundingPerYear).String()

	contributions := "no periodic contributions"
	if in.ContributionsPerYear > 0 && !in.PeriodicContribution.IsZero() {
		contributions = fmt.Sprintf("$%s contributed %s at period %s",
			in.PeriodicContribution.StringFixed(2), Frequency(in.ContributionsPerYear), in.PaymentTiming)
		if !in.ContributionGrowthRate.IsZero() {
			contributions += fmt.Sprintf(", growing %s annually", percent(in.ContributionGrowthRate))
		}
	}

	return fmt.Sprintf("%s: %s annual interest compounded %s; %s; %s inflation over %d years",
		s.Name, percent(in.AnnualInterestRate), compounding, contributions, percent(s.InflationRate), in.Years)
}

// GenerateAssumptions creates the assumptions list from the configured scenarios
func (c *Configuration) GenerateAssumptions() []string {
	out := make([]string, 0, len(c.Scenarios)+1)
	for _, s := range c.Scenarios {
		out = append(out, s.Describe())
	}
	out = append(out, "Interest is credited every compounding period at the nominal annual rate divided by the periods per year")
	return out
}
