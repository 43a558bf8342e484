package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CalculationEngine runs scenarios through the schedule engine and reports on them.
// The schedule engine itself is stateless; the CalculationEngine only carries the
// logger and observer used around it.
type CalculationEngine struct {
	Logger   Logger
	Observer Observer
}

// NewCalculationEngine creates a new calculation engine with no-op logging and observation.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger:   NopLogger{},
		Observer: nopObserver{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetObserver sets the outcome observer. If nil is provided, outcomes are discarded.
func (ce *CalculationEngine) SetObserver(o Observer) {
	if o == nil {
		ce.Observer = nopObserver{}
		return
	}
	ce.Observer = o
}

// RunScenario validates and calculates a single scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := nowFunc()

	in := scenario.ScheduleInput()
	if requested := scenario.ContributionsPerYear(); requested != in.ContributionsPerYear {
		ce.Logger.Debugf("Contribution frequency %d/year exceeds compounding frequency; coerced to %d/year",
			requested, in.ContributionsPerYear)
	}
	ce.Logger.Debugf("Running scenario %q: %s", scenario.Name, describeInput(in))

	result, err := Calculate(*scenario)
	elapsed := nowFunc().Sub(start).Seconds()
	if err != nil {
		ce.Logger.Warnf("Scenario %q rejected: %v", scenario.Name, err)
		ce.Observer.ObserveCalculation(OutcomeInvalid, scenario.Years, elapsed)
		return nil, err
	}

	ce.Logger.Infof("Calculation completed: FV=%s, Years=%d", result.FutureValue.StringFixed(2), in.Years)
	ce.Observer.ObserveCalculation(OutcomeSuccess, in.Years, elapsed)
	return result, nil
}

// RunScenarios calculates every scenario of a configuration in order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.CalculationSet, error) {
	results := make([]domain.CalculationResult, len(config.Scenarios))

	for i := range config.Scenarios {
		scenario := config.Scenarios[i]
		result, err := ce.RunScenario(ctx, &scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s) failed: %w", i, scenario.Name, err)
		}
		results[i] = *result
	}

	return &domain.CalculationSet{
		Results:     results,
		Assumptions: config.GenerateAssumptions(),
	}, nil
}
