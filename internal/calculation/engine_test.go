package calculation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.add("DEBUG", format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.add("INFO", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.add("WARN", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.add("ERROR", format, args...) }

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

type observation struct {
	outcome string
	years   int
	seconds float64
}

type recordingObserver struct {
	observations []observation
}

func (o *recordingObserver) ObserveCalculation(outcome string, years int, seconds float64) {
	o.observations = append(o.observations, observation{outcome, years, seconds})
}

func fixedClock(t *testing.T) {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	SetNowFunc(func() time.Time {
		calls++
		return start.Add(time.Duration(calls) * 250 * time.Millisecond)
	})
	t.Cleanup(func() { SetNowFunc(time.Now) })
}

func TestNewCalculationEngine_Defaults(t *testing.T) {
	ce := NewCalculationEngine()
	assert.IsType(t, NopLogger{}, ce.Logger)
	assert.IsType(t, nopObserver{}, ce.Observer)

	ce.SetLogger(nil)
	ce.SetObserver(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
	assert.IsType(t, nopObserver{}, ce.Observer)
}

func TestRunScenario_LogsAndObserves(t *testing.T) {
	fixedClock(t)
	logger := &recordingLogger{}
	observer := &recordingObserver{}

	ce := NewCalculationEngine()
	ce.SetLogger(logger)
	ce.SetObserver(observer)

	scenario := createTestScenario()
	result, err := ce.RunScenario(context.Background(), &scenario)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, logger.contains(`DEBUG Running scenario "Monthly saver"`))
	assert.True(t, logger.contains("INFO Calculation completed: FV="+result.FutureValue.StringFixed(2)+", Years=30"))
	require.Len(t, observer.observations, 1)
	assert.Equal(t, observation{OutcomeSuccess, 30, 0.25}, observer.observations[0])
}

func TestRunScenario_LogsContributionCoercion(t *testing.T) {
	logger := &recordingLogger{}
	ce := NewCalculationEngine()
	ce.SetLogger(logger)

	scenario := createTestScenario()
	scenario.CompoundingFrequency = "yearly"
	_, err := ce.RunScenario(context.Background(), &scenario)
	require.NoError(t, err)

	assert.True(t, logger.contains("coerced to 1/year"))
}

func TestRunScenario_Invalid(t *testing.T) {
	logger := &recordingLogger{}
	observer := &recordingObserver{}
	ce := NewCalculationEngine()
	ce.SetLogger(logger)
	ce.SetObserver(observer)

	scenario := createTestScenario()
	scenario.AnnualInterestRate = decimal.NewFromInt(2)
	result, err := ce.RunScenario(context.Background(), &scenario)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, config.MsgRateOutOfRange, config.UserMessage(err))
	assert.True(t, logger.contains("WARN Scenario \"Monthly saver\" rejected"))
	require.Len(t, observer.observations, 1)
	assert.Equal(t, OutcomeInvalid, observer.observations[0].outcome)
}

func TestRunScenario_CancelledContext(t *testing.T) {
	observer := &recordingObserver{}
	ce := NewCalculationEngine()
	ce.SetObserver(observer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenario := createTestScenario()
	_, err := ce.RunScenario(ctx, &scenario)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, observer.observations)
}

func TestRunScenarios(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	ce := NewCalculationEngine()
	set, err := ce.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, set.Results, len(cfg.Scenarios))
	assert.Equal(t, cfg.GenerateAssumptions(), set.Assumptions)
	for i, r := range set.Results {
		assert.Equal(t, cfg.Scenarios[i].Name, r.Scenario.Name)
		assert.Len(t, r.Schedule, cfg.Scenarios[i].Years)
	}

	// Growing contributions paid at the beginning beat flat end-of-period ones.
	assert.True(t, set.Results[1].FutureValue.GreaterThan(set.Results[0].FutureValue))
	// The lump sum scenario never contributes.
	assert.True(t, set.Results[2].TotalContributions.Equal(cfg.Scenarios[2].InitialInvestment))
}

func TestRunScenarios_StopsAtFirstFailure(t *testing.T) {
	bad := createTestScenario()
	bad.Name = "broken"
	bad.InitialInvestment = decimal.NewFromInt(-1)

	cfg := &domain.Configuration{Scenarios: []domain.Scenario{createTestScenario(), bad}}
	set, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)

	assert.Nil(t, set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario 1 (broken) failed")
	assert.True(t, errors.Is(err, config.ErrInvalidInput))
	assert.Equal(t, config.MsgNegativeAmounts, config.UserMessage(err))
}
