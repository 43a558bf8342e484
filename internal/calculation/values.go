package calculation

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// FutureValue is the balance of the last schedule record, or the initial investment when
// the schedule is empty.
func FutureValue(schedule []domain.YearlyRecord, initial decimal.Decimal) decimal.Decimal {
	if len(schedule) == 0 {
		return initial
	}
	return schedule[len(schedule)-1].Balance
}

// TotalContributions is the contribution total of the last schedule record, or the initial
// investment when the schedule is empty.
func TotalContributions(schedule []domain.YearlyRecord, initial decimal.Decimal) decimal.Decimal {
	if len(schedule) == 0 {
		return initial
	}
	return schedule[len(schedule)-1].TotalContributions
}

// TotalInterest is the part of the future value that was not contributed.
func TotalInterest(futureValue, totalContributions decimal.Decimal) decimal.Decimal {
	return futureValue.Sub(totalContributions)
}

// RealValue discounts a future value by cumulative inflation over the given years,
// expressing it in today's purchasing power. It returns the future value unchanged when
// years is not positive or the discount factor collapses to zero.
func RealValue(futureValue, inflationRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return futureValue
	}
	factor := decimalOne.Add(inflationRate).Pow(decimal.NewFromInt(int64(years)))
	if factor.IsZero() {
		return futureValue
	}
	return futureValue.Div(factor)
}

// Calculate validates a scenario, runs the schedule engine and derives the summary values.
func Calculate(scenario domain.Scenario) (*domain.CalculationResult, error) {
	if err := config.ValidateScenario(&scenario); err != nil {
		return nil, err
	}

	in := scenario.ScheduleInput()
	schedule := GenerateSchedule(in)

	fv := FutureValue(schedule, in.InitialInvestment)
	contributed := TotalContributions(schedule, in.InitialInvestment)

	return &domain.CalculationResult{
		ID:                 idFunc(),
		Scenario:           scenario,
		Input:              in,
		FutureValue:        fv,
		RealValue:          RealValue(fv, scenario.InflationRate.RoundCeil(domain.RateScale), in.Years),
		TotalContributions: contributed,
		TotalInterest:      TotalInterest(fv, contributed),
		Schedule:           schedule,
	}, nil
}

// describeInput renders the engine parameters for debug logging.
func describeInput(in domain.ScheduleInput) string {
	return fmt.Sprintf("initial=%s contribution=%s rate=%s years=%d compounding=%d contributions=%d timing=%s growth=%s",
		in.InitialInvestment, in.PeriodicContribution, in.AnnualInterestRate, in.Years,
		in.CompoundingPerYear, in.ContributionsPerYear, in.PaymentTiming, in.ContributionGrowthRate)
}
