package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency is the number of periods per year for compounding or contributions.
type Frequency int

const (
	Yearly    Frequency = 1
	Quarterly Frequency = 4
	Monthly   Frequency = 12
)

// DefaultFrequency is used whenever a frequency label is not recognised.
const DefaultFrequency = Monthly

// RateScale is the number of decimal places kept on rates handed to the engine.
const RateScale int32 = 12

// NoContributionsLabel disables periodic contributions when used as the contribution frequency.
const NoContributionsLabel = "none"

var frequencyLabels = map[Frequency]string{
	Yearly:    "yearly",
	Quarterly: "quarterly",
	Monthly:   "monthly",
}

// PerYear returns the number of periods per year.
func (f Frequency) PerYear() int { return int(f) }

// String returns the form label of the frequency.
func (f Frequency) String() string {
	if l, ok := frequencyLabels[f]; ok {
		return l
	}
	return "unknown"
}

// ParseFrequency maps a label (monthly, quarterly, yearly) to its Frequency.
// Matching ignores case and surrounding whitespace.
func ParseFrequency(label string) (Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "monthly":
		return Monthly, true
	case "quarterly":
		return Quarterly, true
	case "yearly":
		return Yearly, true
	default:
		return 0, false
	}
}

// FrequencyOrDefault is ParseFrequency with the explicit fallback to DefaultFrequency.
func FrequencyOrDefault(label string) Frequency {
	if f, ok := ParseFrequency(label); ok {
		return f
	}
	return DefaultFrequency
}

// Frequencies lists the selectable frequencies, most frequent first.
func Frequencies() []Frequency {
	return []Frequency{Monthly, Quarterly, Yearly}
}

// PaymentTiming decides whether a contribution lands before or after the period's interest.
type PaymentTiming string

const (
	// TimingBeginning deposits before interest accrues (annuity due).
	TimingBeginning PaymentTiming = "beginning"
	// TimingEnd deposits after interest accrues (ordinary annuity).
	TimingEnd PaymentTiming = "end"
)

// DefaultPaymentTiming is used whenever a timing label is not recognised.
const DefaultPaymentTiming = TimingEnd

// ParsePaymentTiming maps "beginning" or "end" to a PaymentTiming.
func ParsePaymentTiming(label string) (PaymentTiming, bool) {
	switch PaymentTiming(strings.ToLower(strings.TrimSpace(label))) {
	case TimingBeginning:
		return TimingBeginning, true
	case TimingEnd:
		return TimingEnd, true
	default:
		return "", false
	}
}

// PaymentTimingOrDefault is ParsePaymentTiming falling back to DefaultPaymentTiming.
func PaymentTimingOrDefault(label string) PaymentTiming {
	if t, ok := ParsePaymentTiming(label); ok {
		return t
	}
	return DefaultPaymentTiming
}

// ScheduleInput holds the resolved numeric parameters of one schedule simulation.
type ScheduleInput struct {
	InitialInvestment      decimal.Decimal `json:"initial_investment"`
	PeriodicContribution   decimal.Decimal `json:"periodic_contribution"`
	AnnualInterestRate     decimal.Decimal `json:"annual_interest_rate"`
	Years                  int             `json:"years"`
	CompoundingPerYear     int             `json:"compounding_per_year"`
	ContributionsPerYear   int             `json:"contributions_per_year"`
	PaymentTiming          PaymentTiming   `json:"payment_timing"`
	ContributionGrowthRate decimal.Decimal `json:"contribution_growth_rate"`
}

// Scenario is one named calculation request as written in a configuration file or
// submitted through the web form. Rates are decimal fractions (0.05 for 5%).
type Scenario struct {
	Name                   string          `yaml:"name" json:"name"`
	InitialInvestment      decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	PeriodicContribution   decimal.Decimal `yaml:"periodic_contribution" json:"periodic_contribution"`
	ContributionFrequency  string          `yaml:"contribution_frequency,omitempty" json:"contribution_frequency,omitempty"`
	CompoundingFrequency   string          `yaml:"compounding_frequency,omitempty" json:"compounding_frequency,omitempty"`
	AnnualInterestRate     decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"`
	Years                  int             `yaml:"years" json:"years"`
	InflationRate          decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	PaymentTiming          string          `yaml:"payment_timing,omitempty" json:"payment_timing,omitempty"`
	ContributionGrowthRate decimal.Decimal `yaml:"contribution_growth_rate" json:"contribution_growth_rate"`
}

// ContributionsPerYear resolves the contribution frequency label. An empty label means
// monthly, "none" disables contributions and anything unrecognised falls back to monthly.
func (s Scenario) ContributionsPerYear() int {
	if strings.EqualFold(strings.TrimSpace(s.ContributionFrequency), NoContributionsLabel) {
		return 0
	}
	return FrequencyOrDefault(s.ContributionFrequency).PerYear()
}

// CompoundingPerYear resolves the compounding frequency label. When it is empty the
// contribution frequency label is used instead.
func (s Scenario) CompoundingPerYear() int {
	label := s.CompoundingFrequency
	if strings.TrimSpace(label) == "" {
		label = s.ContributionFrequency
	}
	return FrequencyOrDefault(label).PerYear()
}

// ScheduleInput resolves the scenario's labels into engine parameters. Contributions more
// frequent than compounding are reduced to the compounding frequency, and rates are rounded
// to RateScale places.
func (s Scenario) ScheduleInput() ScheduleInput {
	compounding := s.CompoundingPerYear()
	contributions := s.ContributionsPerYear()
	if contributions > compounding {
		contributions = compounding
	}
	return ScheduleInput{
		InitialInvestment:      s.InitialInvestment,
		PeriodicContribution:   s.PeriodicContribution,
		AnnualInterestRate:     s.AnnualInterestRate.Round(RateScale),
		Years:                  s.Years,
		CompoundingPerYear:     compounding,
		ContributionsPerYear:   contributions,
		PaymentTiming:          PaymentTimingOrDefault(s.PaymentTiming),
		ContributionGrowthRate: s.ContributionGrowthRate.Round(RateScale),
	}
}

// Configuration is the top-level scenario file read by the CLI.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
