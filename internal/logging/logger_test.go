package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestNew_SatisfiesCalculationLogger(t *testing.T) {
	l, err := New("info", FormatConsole)
	require.NoError(t, err)

	var _ calculation.Logger = l
}

func TestNewWithPaths_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := NewWithPaths("warn", FormatJSON, []string{path})
	require.NoError(t, err)

	l.Infof("dropped %d", 1)
	l.Warnf("Scenario %q rejected", "A")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, `Scenario "A" rejected`, entry["msg"])
	assert.Contains(t, entry, "ts")
}

func TestNewFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(core)

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(l)
	engine.Logger.Debugf("Running scenario %q", "B")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, `Running scenario "B"`, logs.All()[0].Message)
}
