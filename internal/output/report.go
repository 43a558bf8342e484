package output

import (
	"github.com/rpgo/investment-calculator/internal/domain"
)

// FileExtension returns the file extension used when a format is written to disk.
func FileExtension(format string) string {
	switch n := NormalizeFormatName(format); n {
	case "console", "console-lite":
		return "txt"
	case "csv", "detailed-csv":
		return "csv"
	default:
		return n
	}
}

// GenerateReport writes the named format to a timestamped file in dir and returns its path.
// The special format "all" writes the verbose console report and the detailed CSV.
func GenerateReport(results *domain.CalculationSet, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range []string{"console", "detailed-csv"} {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir, FileExtension(name))
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
		return written, nil
	}

	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
