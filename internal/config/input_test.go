package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidScenario(name string) domain.Scenario {
	return domain.Scenario{
		Name:                   name,
		InitialInvestment:      decimal.NewFromInt(1000),
		PeriodicContribution:   decimal.NewFromInt(100),
		ContributionFrequency:  "monthly",
		CompoundingFrequency:   "monthly",
		AnnualInterestRate:     decimal.NewFromFloat(0.05),
		Years:                  10,
		InflationRate:          decimal.NewFromFloat(0.02),
		PaymentTiming:          "end",
		ContributionGrowthRate: decimal.Zero,
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"Monthly saver\"\n" +
		"    initial_investment: 1000\n" +
		"    periodic_contribution: 100\n" +
		"    contribution_frequency: monthly\n" +
		"    compounding_frequency: monthly\n" +
		"    annual_interest_rate: 0.05\n" +
		"    years: 10\n" +
		"    inflation_rate: 0.02\n" +
		"    payment_timing: end\n" +
		"  - initial_investment: 5000\n" +
		"    contribution_frequency: none\n" +
		"    annual_interest_rate: 0.04\n" +
		"    years: 5\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, "Monthly saver", config.Scenarios[0].Name)
	assert.True(t, config.Scenarios[0].AnnualInterestRate.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, 10, config.Scenarios[0].Years)
	assert.Equal(t, "Scenario 2", config.Scenarios[1].Name)
	assert.Equal(t, 0, config.Scenarios[1].ContributionsPerYear())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
scenarios:
	- name: "tabs are not allowed"
		years: ten
`
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: too long\n" +
		"    initial_investment: 1000\n" +
		"    annual_interest_rate: 0.05\n" +
		"    years: 150\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "scenario 0 validation failed")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, MsgYearsOutOfRange, UserMessage(err))
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateConfiguration(&domain.Configuration{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")
}

func TestValidateConfiguration_DuplicateNames(t *testing.T) {
	parser := NewInputParser()
	config := &domain.Configuration{Scenarios: []domain.Scenario{
		createValidScenario("same"),
		createValidScenario("same"),
	}}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `name "same" already used by scenario 0`)
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateConfiguration(parser.CreateExampleConfiguration())
	assert.NoError(t, err)
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, SaveConfiguration(original, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, len(original.Scenarios))
	for i := range original.Scenarios {
		assert.Equal(t, original.Scenarios[i].Name, loaded.Scenarios[i].Name)
		assert.Equal(t, original.Scenarios[i].Years, loaded.Scenarios[i].Years)
		assert.True(t, original.Scenarios[i].InitialInvestment.Equal(loaded.Scenarios[i].InitialInvestment))
		assert.True(t, original.Scenarios[i].AnnualInterestRate.Equal(loaded.Scenarios[i].AnnualInterestRate))
	}
}
