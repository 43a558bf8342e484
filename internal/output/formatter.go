package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names that resolve to no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter renders a calculation set. Implementations are pure; writing the bytes
// somewhere is the caller's job.
type Formatter interface {
	Format(results *domain.CalculationSet) ([]byte, error)
	// Name is the canonical format name used on the command line.
	Name() string
}

// nowFunc stamps report filenames (override in tests).
var nowFunc = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file with extension in dir.
func WriteFormatted(f Formatter, results *domain.CalculationSet, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s report: %w", f.Name(), err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("investment_report_%s.%s", nowFunc().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}

// formatters is keyed by canonical name.
var formatters = func() map[string]Formatter {
	m := make(map[string]Formatter)
	for _, f := range []Formatter{
		ConsoleVerboseFormatter{},
		ConsoleFormatter{},
		CSVSummarizer{},
		CSVDetailedExporter{},
		HTMLFormatter{},
		JSONFormatter{},
		PDFFormatter{},
	} {
		m[f.Name()] = f
	}
	return m
}()

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"pdf-report":      "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, resolving aliases. It returns nil
// for unknown names.
func GetFormatterByName(name string) Formatter {
	return formatters[NormalizeFormatName(name)]
}

// LookupFormatter is GetFormatterByName with an error listing the known names.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	return sortedKeys(formatters, func(Formatter) bool { return true })
}

// AvailableFormatAliases returns every alias, sorted.
func AvailableFormatAliases() []string {
	return sortedKeys(aliasMap, func(string) bool { return true })
}

// FormatAliases returns the aliases that resolve to the given canonical name.
func FormatAliases(name string) []string {
	return sortedKeys(aliasMap, func(target string) bool { return target == name })
}

func sortedKeys[V any](m map[string]V, keep func(V) bool) []string {
	var keys []string
	for k, v := range m {
		if keep(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
