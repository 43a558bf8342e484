package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpgo/investment-calculator/internal/api"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/metrics"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web calculator and JSON API",
		Long: "Serve starts the HTTP server. Settings are read from INVESTCALC_* environment\n" +
			"variables; --addr and the global log flags override them when given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = root.LogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = root.LogFormat
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":5000", "listen address")
	return cmd
}

func runServe(ctx context.Context, cfg config.ServerConfig) error {
	opts := &rootOptions{LogLevel: cfg.LogLevel, LogFormat: cfg.LogFormat}
	logger, err := opts.logger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	m := metrics.New()
	handler, err := api.NewHandler(newEngine(logger, m), logger, m, cfg.Version)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewRouter(handler, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("Server listening", "addr", cfg.Addr, "version", cfg.Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}
