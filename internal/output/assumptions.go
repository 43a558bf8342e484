package output

import "github.com/rpgo/investment-calculator/internal/domain"

// DefaultAssumptions lists the modeling assumptions rendered when a result set carries none.
var DefaultAssumptions = []string{
	"Interest is credited every compounding period at the nominal annual rate divided by the periods per year",
	"Contributions are never more frequent than compounding",
	"Real values discount the future value by compound annual inflation",
}

func assumptionsFor(results *domain.CalculationSet) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
