package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func writeExampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	out, err := run(t, "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to "+path)
	return path
}

func TestFormats(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console-lite   (aliases: summary)\n")
	assert.Contains(t, out, "console        (aliases: console-verbose, verbose)\n")
	assert.Contains(t, out, "pdf            (aliases: pdf-report)\n")
	assert.Contains(t, out, "all            (console and detailed-csv files)\n")
}

func TestCalculate_CSVToStdout(t *testing.T) {
	cfg := writeExampleConfig(t)
	out, err := run(t, "calculate", "--config", cfg, "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Scenario,Years,InitialInvestment,FutureValue,RealValue,TotalContributions,TotalInterest", lines[0])
}

func TestCalculate_JSONToFile(t *testing.T) {
	cfg := writeExampleConfig(t)
	path := filepath.Join(t.TempDir(), "nested", "report.json")
	out, err := run(t, "calculate", "-c", cfg, "-f", "json-pretty", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Results []struct {
			Schedule []json.RawMessage `json:"schedule"`
		} `json:"results"`
		Assumptions []string `json:"assumptions"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Results, 3)
	assert.NotEmpty(t, decoded.Assumptions)
}

func TestCalculate_AllToDirectory(t *testing.T) {
	cfg := writeExampleConfig(t)
	dir := filepath.Join(t.TempDir(), "reports")
	out, err := run(t, "calculate", "--config", cfg, "--format", "all", "--output-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Report written to "))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var exts []string
	for _, e := range entries {
		exts = append(exts, filepath.Ext(e.Name()))
	}
	assert.ElementsMatch(t, []string{".txt", ".csv"}, exts)
}

func TestCalculate_Errors(t *testing.T) {
	cfg := writeExampleConfig(t)

	_, err := run(t, "calculate", "--config", cfg, "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))

	_, err = run(t, "calculate", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"config" not set`)

	_, err = run(t, "calculate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "calculate", "--config", cfg, "--output", "a.txt", "--output-dir", "b")
	assert.Error(t, err)
}
