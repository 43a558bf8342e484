package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions, a summary
// per scenario and the year-by-year table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.CalculationSet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "INVESTMENT GROWTH PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, r := range results.Results {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, r.Scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeScenarioInputs(&buf, &r)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "  Future Value:         %s\n", FormatCurrency(r.FutureValue))
		fmt.Fprintf(&buf, "  Real Value:           %s\n", FormatCurrency(r.RealValue))
		fmt.Fprintf(&buf, "  Total Contributions:  %s\n", FormatCurrency(r.TotalContributions))
		fmt.Fprintf(&buf, "  Total Interest:       %s\n", FormatCurrency(r.TotalInterest))
		fmt.Fprintln(&buf)
		writeScheduleTable(&buf, r.Schedule)
		fmt.Fprintln(&buf)
	}

	if len(results.Results) > 1 {
		fmt.Fprintln(&buf, "RANKING BY REAL VALUE")
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		for _, rs := range RankScenarios(results) {
			fmt.Fprintf(&buf, "%d. %-30s %s\n", rs.Rank, rs.Name, FormatCurrency(rs.RealValue))
		}
	}
	return buf.Bytes(), nil
}

func writeScenarioInputs(buf *bytes.Buffer, r *domain.CalculationResult) {
	in := r.Input
	fmt.Fprintf(buf, "  Initial Investment:   %s\n", FormatCurrency(in.InitialInvestment))
	if in.ContributionsPerYear > 0 {
		fmt.Fprintf(buf, "  Contribution:         %s %s at period %s\n",
			FormatCurrency(in.PeriodicContribution), domain.Frequency(in.ContributionsPerYear), in.PaymentTiming)
		fmt.Fprintf(buf, "  Contribution Growth:  %s per year\n", FormatRate(in.ContributionGrowthRate))
	} else {
		fmt.Fprintln(buf, "  Contribution:         none")
	}
	fmt.Fprintf(buf, "  Interest Rate:        %s compounded %s\n", FormatRate(in.AnnualInterestRate), domain.Frequency(in.CompoundingPerYear))
	fmt.Fprintf(buf, "  Inflation Rate:       %s\n", FormatRate(r.Scenario.InflationRate))
	fmt.Fprintf(buf, "  Years:                %d\n", in.Years)
}

func writeScheduleTable(buf *bytes.Buffer, schedule []domain.YearlyRecord) {
	fmt.Fprintf(buf, "  %4s  %18s  %18s  %18s\n", "Year", "Balance", "Contributions", "Interest")
	fmt.Fprintf(buf, "  %s\n", strings.Repeat("-", 62))
	for _, yr := range schedule {
		fmt.Fprintf(buf, "  %4d  %18s  %18s  %18s\n", yr.Year,
			FormatCurrency(yr.Balance), FormatCurrency(yr.TotalContributions), FormatCurrency(yr.Interest()))
	}
}
