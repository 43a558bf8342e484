package main

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is injected at build time via ldflags.
var Version = "1.0.0"

// rootOptions holds the global flags.
type rootOptions struct {
	LogLevel  string
	LogFormat string
}

// NewRootCommand creates the investcalc command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "investcalc",
		Short:         "Investment growth calculator",
		Long:          "investcalc projects the growth of an investment with periodic contributions,\ncompound interest and inflation, and renders the results as reports or a web page.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", logging.FormatConsole, "log format (console, json)")

	cmd.AddCommand(
		newCalculateCmd(opts),
		newServeCmd(opts),
		newInitCmd(),
		newFormatsCmd(),
	)
	return cmd
}

func (o *rootOptions) logger() (*zap.SugaredLogger, error) {
	logger, err := logging.New(o.LogLevel, o.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger initialization failed: %w", err)
	}
	return logger, nil
}

func newEngine(logger *zap.SugaredLogger, observer calculation.Observer) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.SetObserver(observer)
	return engine
}
