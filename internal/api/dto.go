package api

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculateRequest is the JSON body of POST /api/calculate. Rates are percentages
// (5 means 5%), matching the HTML form.
type CalculateRequest struct {
	Name                   string          `json:"name,omitempty"`
	InitialInvestment      decimal.Decimal `json:"initial_investment"`
	PeriodicContribution   decimal.Decimal `json:"periodic_contribution"`
	ContributionFrequency  string          `json:"contribution_frequency,omitempty"`
	CompoundingFrequency   string          `json:"compounding_frequency,omitempty"`
	AnnualInterestRate     decimal.Decimal `json:"annual_interest_rate"`
	Years                  int             `json:"years"`
	InflationRate          decimal.Decimal `json:"inflation_rate"`
	PaymentTiming          string          `json:"payment_timing,omitempty"`
	ContributionGrowthRate decimal.Decimal `json:"contribution_growth_rate"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// YearlyRecordDTO is one row of the schedule.
type YearlyRecordDTO struct {
	Year               int     `json:"year"`
	Balance            float64 `json:"balance"`
	TotalContributions float64 `json:"total_contributions"`
	Interest           float64 `json:"interest"`
}

// CalculationResultDTO is the response of POST /api/calculate.
type CalculationResultDTO struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Years                int               `json:"years"`
	CompoundingPerYear   int               `json:"compounding_per_year"`
	ContributionsPerYear int               `json:"contributions_per_year"`
	PaymentTiming        string            `json:"payment_timing"`
	FutureValue          float64           `json:"future_value"`
	RealValue            float64           `json:"real_value"`
	TotalContributions   float64           `json:"total_contributions"`
	TotalInterest        float64           `json:"total_interest"`
	Schedule             []YearlyRecordDTO `json:"schedule"`
}

// HealthResponse is the response of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// fromPercent converts a percentage to a fraction. The shift is exact.
func fromPercent(d decimal.Decimal) decimal.Decimal {
	return d.Shift(-2)
}

func (req CalculateRequest) toScenario() domain.Scenario {
	name := req.Name
	if name == "" {
		name = "Scenario"
	}
	contribution := req.ContributionFrequency
	if contribution == "" {
		contribution = domain.DefaultFrequency.String()
	}
	compounding := req.CompoundingFrequency
	if compounding == "" {
		compounding = contribution
	}
	timing := req.PaymentTiming
	if timing == "" {
		timing = string(domain.DefaultPaymentTiming)
	}
	return domain.Scenario{
		Name:                   name,
		InitialInvestment:      req.InitialInvestment,
		PeriodicContribution:   req.PeriodicContribution,
		ContributionFrequency:  contribution,
		CompoundingFrequency:   compounding,
		AnnualInterestRate:     fromPercent(req.AnnualInterestRate),
		Years:                  req.Years,
		InflationRate:          fromPercent(req.InflationRate),
		PaymentTiming:          timing,
		ContributionGrowthRate: fromPercent(req.ContributionGrowthRate),
	}
}

func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func toResultDTO(r *domain.CalculationResult) CalculationResultDTO {
	schedule := make([]YearlyRecordDTO, len(r.Schedule))
	for i, yr := range r.Schedule {
		schedule[i] = YearlyRecordDTO{
			Year:               yr.Year,
			Balance:            money(yr.Balance),
			TotalContributions: money(yr.TotalContributions),
			Interest:           money(yr.Interest()),
		}
	}
	return CalculationResultDTO{
		ID:                   r.ID,
		Name:                 r.Scenario.Name,
		Years:                r.Input.Years,
		CompoundingPerYear:   r.Input.CompoundingPerYear,
		ContributionsPerYear: r.Input.ContributionsPerYear,
		PaymentTiming:        string(r.Input.PaymentTiming),
		FutureValue:          money(r.FutureValue),
		RealValue:            money(r.RealValue),
		TotalContributions:   money(r.TotalContributions),
		TotalInterest:        money(r.TotalInterest),
		Schedule:             schedule,
	}
}
