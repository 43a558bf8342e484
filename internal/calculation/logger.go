package calculation

// Logger is a minimal logging interface for the calculation engine.
// *zap.SugaredLogger satisfies it; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Observer receives the outcome of every scenario run, e.g. to export metrics.
type Observer interface {
	ObserveCalculation(outcome string, years int, seconds float64)
}

// Calculation outcomes reported to an Observer.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
)

type nopObserver struct{}

func (nopObserver) ObserveCalculation(string, int, float64) {}
