package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example scenario configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(cfg, path); err != nil {
				return fmt.Errorf("write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "example_config.yaml", "file to write")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, name := range output.AvailableFormatterNames() {
				if aliases := output.FormatAliases(name); len(aliases) > 0 {
					fmt.Fprintf(w, "%-14s (aliases: %s)\n", name, strings.Join(aliases, ", "))
					continue
				}
				fmt.Fprintln(w, name)
			}
			fmt.Fprintf(w, "%-14s (console and detailed-csv files)\n", "all")
		},
	}
}
