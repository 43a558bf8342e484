package output

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrEmptySchedule is returned when there is nothing to plot.
var ErrEmptySchedule = errors.New("chart: empty schedule")

// ErrUnplottable is returned when balances fall outside the float64 range used for drawing.
var ErrUnplottable = errors.New("chart: balances outside plottable range")

// Plot area padding, in chart units.
const (
	chartPadLeft   = 70.0
	chartPadRight  = 15.0
	chartPadTop    = 15.0
	chartPadBottom = 30.0
	chartYTicks    = 4
)

// ChartPoint is one year-end balance mapped into chart coordinates.
type ChartPoint struct {
	Year    int
	Balance decimal.Decimal
	X, Y    float64
}

// ChartTick is an axis label at a chart coordinate.
type ChartTick struct {
	Pos   float64
	Label string
}

// Chart is the geometry of a balance-over-time line chart: year on x, balance on y.
// Coordinates grow rightwards and downwards from the top-left corner.
type Chart struct {
	Width, Height float64
	// Plot area bounds.
	Left, Right, Top, Bottom float64
	Points                   []ChartPoint
	XTicks, YTicks           []ChartTick
	MaxBalance               decimal.Decimal
}

// BuildChart maps a schedule into a width x height chart. The y axis starts at zero, or at
// the lowest balance when that is negative.
func BuildChart(schedule []domain.YearlyRecord, width, height float64) (*Chart, error) {
	if len(schedule) == 0 {
		return nil, ErrEmptySchedule
	}
	if width <= chartPadLeft+chartPadRight || height <= chartPadTop+chartPadBottom {
		return nil, fmt.Errorf("chart: %gx%g is too small", width, height)
	}

	c := &Chart{
		Width: width, Height: height,
		Left: chartPadLeft, Right: width - chartPadRight,
		Top: chartPadTop, Bottom: height - chartPadBottom,
	}

	minBal, maxBal := decimal.Zero, schedule[0].Balance
	for _, yr := range schedule {
		maxBal = decimal.Max(maxBal, yr.Balance)
		minBal = decimal.Min(minBal, yr.Balance)
	}
	c.MaxBalance = maxBal

	lo, hi := minBal.InexactFloat64(), maxBal.InexactFloat64()
	if !finite(lo) || !finite(hi) || !finite(hi-lo) {
		return nil, ErrUnplottable
	}
	if hi <= lo {
		hi = lo + 1
	}
	plotW, plotH := c.Right-c.Left, c.Bottom-c.Top

	firstYear, lastYear := schedule[0].Year, schedule[len(schedule)-1].Year
	xFor := func(year int) float64 {
		if lastYear == firstYear {
			return c.Left + plotW/2
		}
		return c.Left + plotW*float64(year-firstYear)/float64(lastYear-firstYear)
	}
	yFor := func(v float64) float64 {
		return c.Bottom - plotH*(v-lo)/(hi-lo)
	}

	c.Points = make([]ChartPoint, len(schedule))
	for i, yr := range schedule {
		c.Points[i] = ChartPoint{
			Year:    yr.Year,
			Balance: yr.Balance,
			X:       xFor(yr.Year),
			Y:       yFor(yr.Balance.InexactFloat64()),
		}
	}

	for i := 0; i <= chartYTicks; i++ {
		v := lo + (hi-lo)*float64(i)/chartYTicks
		c.YTicks = append(c.YTicks, ChartTick{Pos: yFor(v), Label: axisAmount(v)})
	}
	for _, year := range xTickYears(firstYear, lastYear) {
		c.XTicks = append(c.XTicks, ChartTick{Pos: xFor(year), Label: intToString(year)})
	}
	return c, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Path renders the points as an SVG path ("M x y L x y ...").
func (c *Chart) Path() string {
	var b strings.Builder
	for i, p := range c.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%.1f %.1f", cmd, p.X, p.Y)
	}
	return b.String()
}

// xTickYears picks at most about ten evenly spaced years, always including the last.
func xTickYears(first, last int) []int {
	step := (last - first + 9) / 10
	if step < 1 {
		step = 1
	}
	var years []int
	for y := first; y < last; y += step {
		years = append(years, y)
	}
	return append(years, last)
}

// axisAmount renders an axis value in whole dollars.
func axisAmount(v float64) string {
	s := FormatCurrency(decimal.NewFromFloat(v).Round(0))
	return strings.TrimSuffix(s, ".00")
}
