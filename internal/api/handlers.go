package api

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/metrics"
	"github.com/rpgo/investment-calculator/internal/output"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var pageFS embed.FS

// Handler contains HTTP handlers for the calculator pages and API.
type Handler struct {
	engine  *calculation.CalculationEngine
	logger  *zap.SugaredLogger
	metrics *metrics.Metrics
	version string
	pages   *template.Template
}

// NewHandler creates a new Handler. metrics may be nil, in which case /metrics is not served.
func NewHandler(engine *calculation.CalculationEngine, logger *zap.SugaredLogger, m *metrics.Metrics, version string) (*Handler, error) {
	pages, err := output.NewTemplate("pages")
	if err != nil {
		return nil, fmt.Errorf("parse shared templates: %w", err)
	}
	if pages, err = pages.ParseFS(pageFS, "templates/*.tmpl"); err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{engine: engine, logger: logger, metrics: m, version: version, pages: pages}, nil
}

// =============================================================================
// HTML PAGES
// =============================================================================

type indexPage struct {
	Values              FormValues
	Error               string
	ContributionOptions []string
	CompoundingOptions  []string
	TimingOptions       []string
}

type resultsPage struct {
	View   output.ScenarioView
	Values FormValues
}

func newIndexPage(values FormValues, message string) indexPage {
	compounding := make([]string, 0, len(domain.Frequencies()))
	for _, f := range domain.Frequencies() {
		compounding = append(compounding, f.String())
	}
	contribution := append(append([]string{}, compounding...), domain.NoContributionsLabel)
	return indexPage{
		Values:              values,
		Error:               message,
		ContributionOptions: contribution,
		CompoundingOptions:  compounding,
		TimingOptions:       []string{string(domain.TimingEnd), string(domain.TimingBeginning)},
	}
}

// Index renders the empty calculator form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "index.html.tmpl", newIndexPage(defaultFormValues(), ""))
}

// Calculate handles the form submission. Invalid input re-renders the form with a message.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	result, values, err := h.calculateForm(r)
	if err != nil {
		if isTooLarge(err) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		if values == nil {
			values = defaultFormValues()
		}
		h.renderPage(w, http.StatusOK, "index.html.tmpl", newIndexPage(values, h.userMessage(err)))
		return
	}

	view, err := output.NewScenarioView(result)
	if err != nil {
		h.logger.Errorf("Error generating chart: %v", err)
	}
	h.renderPage(w, http.StatusOK, "results.html.tmpl", resultsPage{View: view, Values: values})
}

// ReportPDF renders the submitted scenario as a PDF attachment.
func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	result, _, err := h.calculateForm(r)
	if err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		writeError(w, http.StatusBadRequest, h.userMessage(err), nil)
		return
	}

	set := &domain.CalculationSet{Results: []domain.CalculationResult{*result}}
	data, err := output.PDFFormatter{}.Format(set)
	if err != nil {
		h.logger.Errorf("Error generating PDF: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate report", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="investment_report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) calculateForm(r *http.Request) (*domain.CalculationResult, FormValues, error) {
	scenario, values, err := parseScenarioForm(r)
	if err != nil {
		return nil, values, err
	}
	result, err := h.engine.RunScenario(r.Context(), &scenario)
	return result, values, err
}

// userMessage logs the failure and maps it to the text shown to the user.
func (h *Handler) userMessage(err error) string {
	var pe *config.ParseError
	switch {
	case errors.As(err, &pe):
		h.logger.Errorf("Invalid input: %v", err)
	case errors.Is(err, config.ErrInvalidInput):
		// Already logged by the engine.
	case errors.Is(err, context.Canceled):
		return "Request cancelled."
	default:
		h.logger.Errorf("Calculation error: %v", err)
		return "An error occurred during calculation. Please try again."
	}
	return config.UserMessage(err)
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Errorf("Error rendering %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// =============================================================================
// JSON API
// =============================================================================

// CalculateAPI handles POST /api/calculate.
func (h *Handler) CalculateAPI(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	scenario := req.toScenario()
	result, err := h.engine.RunScenario(r.Context(), &scenario)
	if err != nil {
		if errors.Is(err, config.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, config.UserMessage(err), err)
			return
		}
		h.logger.Errorf("Calculation error: %v", err)
		writeError(w, http.StatusInternalServerError, "Calculation failed", nil)
		return
	}

	writeJSON(w, http.StatusOK, toResultDTO(result))
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Version: h.version})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
