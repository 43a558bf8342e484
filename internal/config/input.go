package config

import (
	"fmt"
	"os"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML (or JSON) configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range config.Scenarios {
		if config.Scenarios[i].Name == "" {
			config.Scenarios[i].Name = fmt.Sprintf("Scenario %d", i+1)
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if prev, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		seen[scenario.Name] = i

		if err := ValidateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:                   "Monthly saver",
				InitialInvestment:      decimal.NewFromInt(10000),
				PeriodicContribution:   decimal.NewFromInt(500),
				ContributionFrequency:  "monthly",
				CompoundingFrequency:   "monthly",
				AnnualInterestRate:     decimal.NewFromFloat(0.06),
				Years:                  30,
				InflationRate:          decimal.NewFromFloat(0.025),
				PaymentTiming:          string(domain.TimingEnd),
				ContributionGrowthRate: decimal.Zero,
			},
			{
				Name:                   "Growing quarterly deposits",
				InitialInvestment:      decimal.NewFromInt(10000),
				PeriodicContribution:   decimal.NewFromInt(1500),
				ContributionFrequency:  "quarterly",
				CompoundingFrequency:   "monthly",
				AnnualInterestRate:     decimal.NewFromFloat(0.06),
				Years:                  30,
				InflationRate:          decimal.NewFromFloat(0.025),
				PaymentTiming:          string(domain.TimingBeginning),
				ContributionGrowthRate: decimal.NewFromFloat(0.03),
			},
			{
				Name:                  "Lump sum only",
				InitialInvestment:     decimal.NewFromInt(50000),
				ContributionFrequency: domain.NoContributionsLabel,
				CompoundingFrequency:  "yearly",
				AnnualInterestRate:    decimal.NewFromFloat(0.05),
				Years:                 30,
				InflationRate:         decimal.NewFromFloat(0.025),
			},
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
