package config

import (
	"errors"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is wrapped by every parse and range failure.
var ErrInvalidInput = errors.New("invalid input")

// Limits enforced before a scenario reaches the schedule engine.
const (
	MinYears = 1
	MaxYears = 100
	// MaxExponent bounds the decimal exponent of every numeric input in either direction.
	MaxExponent = 40
)

var (
	rateFloor   = decimal.NewFromInt(-1)
	rateCeiling = decimal.NewFromInt(1)
	// MaxAmount is the largest accepted initial investment or periodic contribution.
	MaxAmount = decimal.New(1, 15)
)

// User-facing messages, one per violated constraint.
const (
	MsgInvalidNumber       = "Invalid input. Please enter numeric values."
	MsgNegativeAmounts     = "Investment amounts cannot be negative."
	MsgAmountTooLarge      = "Investment amounts cannot exceed $1,000,000,000,000,000."
	MsgTooManyDigits       = "Numbers must have at most 40 digits before or after the decimal point."
	MsgYearsOutOfRange     = "Years must be between 1 and 100."
	MsgRateOutOfRange      = "Interest rate must be between -100% and 100%."
	MsgInflationOutOfRange = "Inflation rate must be greater than -100% and at most 100%."
	MsgGrowthOutOfRange    = "Contribution growth rate must be between -100% and 100%."
)

// ValidationError reports a scenario value outside its allowed range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ParseError reports a value that could not be read as a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrInvalidInput, e.Err} }

// UserMessage returns the message to show an end user for a parse or validation error.
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return MsgInvalidNumber
}

// ValidateScenario checks a scenario's amounts and rates. Frequency and timing labels are
// never rejected; unrecognised labels fall back to their defaults.
func ValidateScenario(s *domain.Scenario) error {
	// Exponents are checked first so no comparison below has to rescale a huge value.
	for _, f := range []struct {
		field string
		value decimal.Decimal
	}{
		{"initial_investment", s.InitialInvestment},
		{"periodic_contribution", s.PeriodicContribution},
		{"annual_interest_rate", s.AnnualInterestRate},
		{"inflation_rate", s.InflationRate},
		{"contribution_growth_rate", s.ContributionGrowthRate},
	} {
		if exp := f.value.Exponent(); exp < -MaxExponent || exp > MaxExponent {
			return &ValidationError{Field: f.field, Message: MsgTooManyDigits}
		}
	}

	if s.InitialInvestment.IsNegative() {
		return &ValidationError{Field: "initial_investment", Message: MsgNegativeAmounts}
	}
	if s.PeriodicContribution.IsNegative() {
		return &ValidationError{Field: "periodic_contribution", Message: MsgNegativeAmounts}
	}
	if s.InitialInvestment.GreaterThan(MaxAmount) {
		return &ValidationError{Field: "initial_investment", Message: MsgAmountTooLarge}
	}
	if s.PeriodicContribution.GreaterThan(MaxAmount) {
		return &ValidationError{Field: "periodic_contribution", Message: MsgAmountTooLarge}
	}
	if s.Years < MinYears || s.Years > MaxYears {
		return &ValidationError{Field: "years", Message: MsgYearsOutOfRange}
	}
	if s.AnnualInterestRate.LessThan(rateFloor) || s.AnnualInterestRate.GreaterThan(rateCeiling) {
		return &ValidationError{Field: "annual_interest_rate", Message: MsgRateOutOfRange}
	}
	if s.InflationRate.LessThanOrEqual(rateFloor) || s.InflationRate.GreaterThan(rateCeiling) {
		return &ValidationError{Field: "inflation_rate", Message: MsgInflationOutOfRange}
	}
	if s.ContributionGrowthRate.LessThan(rateFloor) || s.ContributionGrowthRate.GreaterThan(rateCeiling) {
		return &ValidationError{Field: "contribution_growth_rate", Message: MsgGrowthOutOfRange}
	}
	return nil
}
