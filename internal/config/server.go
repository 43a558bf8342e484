package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP server. It is read once at startup and passed to the
// constructors that need it.
type ServerConfig struct {
	Addr            string        `env:"INVESTCALC_ADDR"             envDefault:":5000"`
	LogLevel        string        `env:"INVESTCALC_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"INVESTCALC_LOG_FORMAT"       envDefault:"json"`
	MaxBodyBytes    int64         `env:"INVESTCALC_MAX_BODY_BYTES"   envDefault:"16777216"`
	ReadTimeout     time.Duration `env:"INVESTCALC_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"INVESTCALC_WRITE_TIMEOUT"    envDefault:"15s"`
	IdleTimeout     time.Duration `env:"INVESTCALC_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"INVESTCALC_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"INVESTCALC_ALLOWED_ORIGINS"  envDefault:"http://localhost:5000" envSeparator:","`
	Version         string        `env:"INVESTCALC_VERSION"          envDefault:"1.0.0"`
}

// LoadServerConfig reads the server configuration from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return ServerConfig{}, fmt.Errorf("INVESTCALC_MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

// DefaultServerConfig returns the configuration used when no environment overrides are set.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":5000",
		LogLevel:        "info",
		LogFormat:       "json",
		MaxBodyBytes:    16 << 20,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		AllowedOrigins:  []string{"http://localhost:5000"},
		Version:         "1.0.0",
	}
}
