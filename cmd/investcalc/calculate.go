package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/spf13/cobra"
)

type calculateOptions struct {
	ConfigPath string
	Format     string
	Output     string
	OutputDir  string
}

func newCalculateCmd(root *rootOptions) *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate every scenario in a configuration file",
		Long: "Calculate reads a YAML scenario file, projects each scenario and writes a report.\n" +
			"Text formats go to stdout unless --output or --output-dir is given; pdf and all\n" +
			"are written to a timestamped file in --output-dir (default: current directory).",
		Example: "  investcalc calculate --config scenarios.yaml\n" +
			"  investcalc calculate --config scenarios.yaml --format html --output report.html\n" +
			"  investcalc calculate --config scenarios.yaml --format all --output-dir reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "scenario configuration file (YAML)")
	f.StringVarP(&opts.Format, "format", "f", "console", "report format (see 'investcalc formats')")
	f.StringVarP(&opts.Output, "output", "o", "", "write the report to this file")
	f.StringVar(&opts.OutputDir, "output-dir", "", "write a timestamped report into this directory")
	_ = cmd.MarkFlagRequired("config")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")

	return cmd
}

func runCalculate(cmd *cobra.Command, root *rootOptions, opts *calculateOptions) error {
	logger, err := root.logger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	results, err := newEngine(logger, nil).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	format := output.NormalizeFormatName(opts.Format)
	if opts.OutputDir != "" || (opts.Output == "" && (format == "pdf" || format == "all")) {
		dir := opts.OutputDir
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		paths, err := output.GenerateReport(results, format, dir)
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
		}
		return err
	}

	f, err := output.LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s report: %w", f.Name(), err)
	}

	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Infof("Report written to %s", opts.Output)
	return nil
}
