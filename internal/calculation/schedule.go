package calculation

import (
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ScheduleScale is the number of decimal places kept on running balances and deposits.
// Exact decimal multiplication would otherwise grow the digit count every period.
const ScheduleScale int32 = 12

var decimalOne = decimal.NewFromInt(1)

// GenerateSchedule simulates the investment period by period and returns one record per
// elapsed year. It never fails: when years or the compounding frequency are not positive
// the schedule is empty.
//
// Each compounding period first deposits the contribution if payments are due at the
// beginning, then accrues interest on the current balance, then deposits the contribution
// if payments are due at the end. Contributions grow geometrically with every payment so
// that the payments made within one year compound to the annual growth rate.
func GenerateSchedule(in domain.ScheduleInput) []domain.YearlyRecord {
	if in.Years <= 0 || in.CompoundingPerYear <= 0 {
		return []domain.YearlyRecord{}
	}

	timing := in.PaymentTiming
	if timing != domain.TimingBeginning {
		timing = domain.TimingEnd
	}

	periodRate := in.AnnualInterestRate.Div(decimal.NewFromInt(int64(in.CompoundingPerYear)))
	totalPeriods := in.Years * in.CompoundingPerYear

	contributionsPerYear, interval := PaymentInterval(in.CompoundingPerYear, in.ContributionsPerYear)
	growth := ContributionGrowthFactor(in.ContributionGrowthRate, contributionsPerYear)
	contributing := interval > 0 && !in.PeriodicContribution.IsZero()

	balance := in.InitialInvestment
	totalContributions := in.InitialInvestment
	// multiplier tracks (1 + growth per payment)^payments made so far
	multiplier := decimalOne

	deposit := func() {
		amount := in.PeriodicContribution.Mul(multiplier).Round(ScheduleScale)
		balance = balance.Add(amount)
		totalContributions = totalContributions.Add(amount)
		multiplier = multiplier.Mul(growth).Round(ScheduleScale)
	}

	schedule := make([]domain.YearlyRecord, 0, in.Years)
	for period := 1; period <= totalPeriods; period++ {
		due := contributing && IsContributionPeriod(period, interval, timing)

		if due && timing == domain.TimingBeginning {
			deposit()
		}

		balance = balance.Add(balance.Mul(periodRate)).Round(ScheduleScale)

		if due && timing == domain.TimingEnd {
			deposit()
		}

		if period%in.CompoundingPerYear == 0 {
			schedule = append(schedule, domain.YearlyRecord{
				Year:               period / in.CompoundingPerYear,
				Balance:            balance,
				TotalContributions: totalContributions,
			})
		}
	}

	return schedule
}

// PaymentInterval returns the effective number of contributions per year and the number of
// compounding periods between contributions. Contributions cannot be more frequent than
// compounding: when they are, the interval is clamped to one period and the effective
// contribution count becomes the compounding count. An interval of zero means contributions
// are disabled.
func PaymentInterval(compoundingPerYear, contributionsPerYear int) (effective int, interval int) {
	if contributionsPerYear <= 0 || compoundingPerYear <= 0 {
		return 0, 0
	}
	interval = compoundingPerYear / contributionsPerYear
	if interval == 0 {
		return compoundingPerYear, 1
	}
	return contributionsPerYear, interval
}

// IsContributionPeriod reports whether a payment is due in the given 1-based period.
// Under beginning timing the test is shifted by one so that the first period always pays.
func IsContributionPeriod(period, interval int, timing domain.PaymentTiming) bool {
	if interval <= 0 {
		return false
	}
	n := period
	if timing == domain.TimingBeginning {
		n = period - 1
	}
	return n%interval == 0
}

// ContributionGrowthFactor converts an annual contribution growth rate into the factor
// applied between consecutive payments: (1 + annual)^(1/contributionsPerYear).
// A non-positive base yields zero, so only the first payment is non-zero.
func ContributionGrowthFactor(annual decimal.Decimal, contributionsPerYear int) decimal.Decimal {
	if contributionsPerYear <= 0 || annual.IsZero() {
		return decimalOne
	}
	base := decimalOne.Add(annual).InexactFloat64()
	if base <= 0 {
		return decimal.Zero
	}
	root := math.Pow(base, 1/float64(contributionsPerYear))
	return decimal.NewFromFloat(root).Round(ScheduleScale)
}
