package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNew_SeparateRegistries(t *testing.T) {
	a := New()
	b := New()
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestObserveCalculation(t *testing.T) {
	m := New()
	var _ calculation.Observer = m

	m.ObserveCalculation(calculation.OutcomeSuccess, 30, 0.002)
	m.ObserveCalculation(calculation.OutcomeSuccess, 10, 0.001)
	m.ObserveCalculation(calculation.OutcomeInvalid, 0, 0.0001)

	body := scrape(t, m)
	assert.Contains(t, body, `investcalc_calculations_total{outcome="success"} 2`)
	assert.Contains(t, body, `investcalc_calculations_total{outcome="invalid"} 1`)
	assert.Contains(t, body, "investcalc_schedule_years_count 2")
	assert.Contains(t, body, "investcalc_calculation_duration_seconds_count 3")
}

func TestObserveCalculation_FromEngine(t *testing.T) {
	m := New()
	engine := calculation.NewCalculationEngine()
	engine.SetObserver(m)

	_, err := engine.RunScenarios(context.Background(), config.NewInputParser().CreateExampleConfiguration())
	require.NoError(t, err)

	assert.Contains(t, scrape(t, m), `investcalc_calculations_total{outcome="success"} 3`)
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New()
	m.ObserveHTTPRequest("POST", "/api/calculate", 400, 20*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `investcalc_http_requests_total{method="POST",route="/api/calculate",status="400"} 1`)
	assert.Contains(t, body, `investcalc_http_request_duration_seconds_count{method="GET",route="/health"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
