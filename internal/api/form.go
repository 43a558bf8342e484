package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Form field names shared by the HTML form, the PDF download and the templates.
const (
	fieldInitialInvestment      = "initial_investment"
	fieldPeriodicContribution   = "periodic_contribution"
	fieldContributionFrequency  = "contribution_frequency"
	fieldCompoundingFrequency   = "compounding_frequency"
	fieldAnnualInterestRate     = "annual_interest_rate"
	fieldYears                  = "years"
	fieldInflationRate          = "inflation_rate"
	fieldPaymentTiming          = "payment_timing"
	fieldContributionGrowthRate = "contribution_growth_rate"
)

var formFields = []string{
	fieldInitialInvestment, fieldPeriodicContribution, fieldContributionFrequency,
	fieldCompoundingFrequency, fieldAnnualInterestRate, fieldYears, fieldInflationRate,
	fieldPaymentTiming, fieldContributionGrowthRate,
}

// FormValues holds the raw submitted values, used to refill the form.
type FormValues map[string]string

func defaultFormValues() FormValues {
	return FormValues{
		fieldInitialInvestment:      "10000",
		fieldPeriodicContribution:   "500",
		fieldContributionFrequency:  "monthly",
		fieldCompoundingFrequency:   "monthly",
		fieldAnnualInterestRate:     "6",
		fieldYears:                  "30",
		fieldInflationRate:          "2.5",
		fieldPaymentTiming:          "end",
		fieldContributionGrowthRate: "0",
	}
}

// parseScenarioForm reads the calculator form. Missing or blank numeric fields are zero;
// rates are percentages. Non-numeric values yield a *config.ParseError.
func parseScenarioForm(r *http.Request) (domain.Scenario, FormValues, error) {
	if err := r.ParseForm(); err != nil {
		return domain.Scenario{}, nil, err
	}

	values := make(FormValues, len(formFields))
	for _, f := range formFields {
		values[f] = strings.TrimSpace(r.PostForm.Get(f))
	}

	contribution := values[fieldContributionFrequency]
	if contribution == "" {
		contribution = domain.DefaultFrequency.String()
	}
	compounding := values[fieldCompoundingFrequency]
	if compounding == "" {
		compounding = contribution
	}
	timing := values[fieldPaymentTiming]
	if timing == "" {
		timing = string(domain.DefaultPaymentTiming)
	}

	s := domain.Scenario{
		Name:                  "Scenario",
		ContributionFrequency: contribution,
		CompoundingFrequency:  compounding,
		PaymentTiming:         timing,
	}

	var err error
	if s.InitialInvestment, err = formDecimal(values, fieldInitialInvestment); err != nil {
		return s, values, err
	}
	if s.PeriodicContribution, err = formDecimal(values, fieldPeriodicContribution); err != nil {
		return s, values, err
	}
	if s.AnnualInterestRate, err = formPercent(values, fieldAnnualInterestRate); err != nil {
		return s, values, err
	}
	if s.Years, err = formInt(values, fieldYears); err != nil {
		return s, values, err
	}
	if s.InflationRate, err = formPercent(values, fieldInflationRate); err != nil {
		return s, values, err
	}
	if s.ContributionGrowthRate, err = formPercent(values, fieldContributionGrowthRate); err != nil {
		return s, values, err
	}
	return s, values, nil
}

func formDecimal(values FormValues, field string) (decimal.Decimal, error) {
	raw := values[field]
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &config.ParseError{Field: field, Value: raw, Err: err}
	}
	return d, nil
}

func formPercent(values FormValues, field string) (decimal.Decimal, error) {
	d, err := formDecimal(values, field)
	if err != nil {
		return d, err
	}
	return fromPercent(d), nil
}

func formInt(values FormValues, field string) (int, error) {
	raw := values[field]
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &config.ParseError{Field: field, Value: raw, Err: err}
	}
	return n, nil
}
