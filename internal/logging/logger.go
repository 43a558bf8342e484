// Package logging builds the zap loggers used by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel converts a level name to a zapcore.Level. Unknown values default to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a sugared zap logger writing to stderr. format is "json" (default) or
// "console". The result satisfies calculation.Logger.
func New(level, format string) (*zap.SugaredLogger, error) {
	return NewWithPaths(level, format, []string{"stderr"})
}

// NewWithPaths is New with explicit zap output paths.
func NewWithPaths(level, format string, outputPaths []string) (*zap.SugaredLogger, error) {
	var encCfg zapcore.EncoderConfig
	encoding := FormatJSON
	if format == FormatConsole {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = FormatConsole
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      encoding == FormatConsole,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return z.Sugar(), nil
}

// NewFromCore wraps an existing core, e.g. an observer core in tests.
func NewFromCore(core zapcore.Core) *zap.SugaredLogger {
	return zap.New(core).Sugar()
}
