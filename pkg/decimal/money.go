// Package decimal formats monetary amounts held as shopspring decimals.
package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxExactWhole bounds the whole-dollar part that is grouped from an exact int64.
// Larger amounts are grouped from their float64 approximation.
var maxExactWhole = decimal.New(1, 15)

var hundred = decimal.NewFromInt(100)

var usd = message.NewPrinter(language.AmericanEnglish)

// Money is a dollar amount at full precision; rounding happens only for display.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal wraps a decimal amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses an amount such as "1234.5".
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Money{d}, nil
}

// Round rounds half away from zero to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the amount with two decimal places and no grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US currency with thousands separators, e.g. "$1,234.57"
// or "-$12.50". Amounts that round to zero never carry a sign.
func (m Money) Format() string {
	cents := m.Round().Decimal
	abs := cents.Abs()
	whole := abs.Truncate(0)
	frac := abs.Sub(whole).Mul(hundred).IntPart()

	var grouped string
	if whole.LessThan(maxExactWhole) {
		grouped = usd.Sprintf("%d", whole.IntPart())
	} else {
		grouped = usd.Sprintf("%.0f", whole.InexactFloat64())
	}

	sign := ""
	if cents.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped, frac)
}
