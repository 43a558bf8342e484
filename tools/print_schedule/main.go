package main

import (
	"fmt"
	"math"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func main() {
	base := domain.ScheduleInput{
		PeriodicContribution: decimal.NewFromInt(200),
		AnnualInterestRate:   decimal.NewFromFloat(0.06),
		Years:                3,
		CompoundingPerYear:   12,
		ContributionsPerYear: 12,
	}

	for _, timing := range []domain.PaymentTiming{domain.TimingEnd, domain.TimingBeginning} {
		in := base
		in.PaymentTiming = timing
		fmt.Printf("Timing %s:\n", timing)
		for _, yr := range calculation.GenerateSchedule(in) {
			fmt.Printf("  year %d balance=%s contributions=%s interest=%s\n",
				yr.Year, yr.Balance.String(), yr.TotalContributions.String(), yr.Interest().String())
		}
	}

	// Closed form for the ordinary annuity.
	i := 0.06 / 12
	n := float64(base.Years * 12)
	fmt.Printf("Closed form (end): %.6f\n", 200/i*(math.Pow(1+i, n)-1))

	// Quarterly compounding with monthly deposits is coerced to one deposit per quarter.
	coerced := base
	coerced.CompoundingPerYear = 4
	effective, interval := calculation.PaymentInterval(coerced.CompoundingPerYear, coerced.ContributionsPerYear)
	schedule := calculation.GenerateSchedule(coerced)
	fmt.Printf("Coerced: %d/year every %d period(s), final balance=%s\n",
		effective, interval, schedule[len(schedule)-1].Balance.StringFixed(2))
}
