package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// BracketConfig represents one tax bracket from YAML. Threshold accepts the
// YAML infinity literal (.inf) for the unbounded top bracket.
type BracketConfig struct {
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Rate      float64 `yaml:"rate" json:"rate"`
}

// HSAConfig holds the cost parameters of the Health Spending Account
type HSAConfig struct {
	FeeRate  float64 `yaml:"fee_rate" json:"fee_rate"`   // admin fee as fraction of each claim (e.g. 0.08)
	FixedFee float64 `yaml:"fixed_fee" json:"fixed_fee"` // flat annual fee regardless of claims
}

// ScenarioConfig holds the default income/expense scenario to evaluate
type ScenarioConfig struct {
	Income       float64 `yaml:"income" json:"income"`
	Expense      float64 `yaml:"expense" json:"expense"`
	Jurisdiction string  `yaml:"jurisdiction" json:"jurisdiction"`
}

// ScheduleConfig controls the rate-schedule and break-even sweep outputs
type ScheduleConfig struct {
	IncomeMin  float64 `yaml:"income_min" json:"income_min"`
	IncomeMax  float64 `yaml:"income_max" json:"income_max"`
	IncomeStep float64 `yaml:"income_step" json:"income_step"`
	ExpenseMax float64 `yaml:"expense_max" json:"expense_max"`
}

// Config is the complete YAML configuration
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario" json:"scenario"`
	HSA      HSAConfig      `yaml:"hsa" json:"hsa"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule"`

	// Optional overrides for the compiled-in 2025 tables. When set, they
	// replace the federal table / the selected jurisdiction's table.
	FederalBrackets    []BracketConfig `yaml:"federal_brackets,omitempty" json:"federal_brackets,omitempty"`
	ProvincialBrackets []BracketConfig `yaml:"provincial_brackets,omitempty" json:"provincial_brackets,omitempty"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return defaultConfig(), err
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return config, nil
}

// LoadDefaultConfig parses the embedded default configuration
func LoadDefaultConfig() (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), config); err != nil {
		return nil, fmt.Errorf("parsing embedded default config: %w", err)
	}
	return config, nil
}

// defaultConfig returns the embedded defaults, or hardcoded fallbacks if the
// embedded YAML somehow fails to parse
func defaultConfig() *Config {
	config, err := LoadDefaultConfig()
	if err != nil {
		return &Config{
			Scenario: ScenarioConfig{Jurisdiction: "ON"},
			HSA:      HSAConfig{FeeRate: 0.08, FixedFee: 120},
			Schedule: ScheduleConfig{IncomeMin: 20000, IncomeMax: 300000, IncomeStep: 10000, ExpenseMax: 10000},
		}
	}
	return config
}

// SaveConfig writes the configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// toBracketTable converts YAML bracket entries to a runtime table
func toBracketTable(brackets []BracketConfig) BracketTable {
	table := make(BracketTable, len(brackets))
	for i, b := range brackets {
		table[i] = TaxBracket{Threshold: b.Threshold, Rate: b.Rate}
	}
	return table
}

// FederalTable returns the federal table to use: the config override when
// present, otherwise the compiled-in 2025 schedule
func (c *Config) FederalTable() (BracketTable, error) {
	if len(c.FederalBrackets) == 0 {
		return FederalBrackets, nil
	}
	table := toBracketTable(c.FederalBrackets)
	if err := ValidateTable(table); err != nil {
		return nil, fmt.Errorf("federal_brackets: %w", err)
	}
	return table, nil
}

// BuildRegistry returns the provincial registry, applying any override for
// the configured jurisdiction
func (c *Config) BuildRegistry() (*Registry, error) {
	if len(c.ProvincialBrackets) == 0 {
		return DefaultRegistry(), nil
	}
	table := toBracketTable(c.ProvincialBrackets)
	if err := ValidateTable(table); err != nil {
		return nil, fmt.Errorf("provincial_brackets: %w", err)
	}

	entries := make([]Jurisdiction, len(ProvincialJurisdictions))
	copy(entries, ProvincialJurisdictions)
	overridden := false
	for i, j := range entries {
		if j.Code == c.Scenario.Jurisdiction {
			entries[i].Brackets = table
			overridden = true
		}
	}
	if !overridden {
		// Override for a code outside the compiled-in set: register it
		entries = append(entries, Jurisdiction{
			Code:     c.Scenario.Jurisdiction,
			Name:     c.Scenario.Jurisdiction + " (custom)",
			Brackets: table,
		})
	}
	return NewRegistry(entries), nil
}

// Input assembles the CalculationInput from the configured scenario
func (c *Config) Input() CalculationInput {
	return CalculationInput{
		Income:       c.Scenario.Income,
		Expense:      c.Scenario.Expense,
		Jurisdiction: c.Scenario.Jurisdiction,
		FeeRate:      c.HSA.FeeRate,
		FixedFee:     c.HSA.FixedFee,
	}
}

// ValidateScenario returns the list of scenario fields that are missing or
// invalid, for interactive prompting
func (c *Config) ValidateScenario() []string {
	var missing []string
	if c.Scenario.Income <= 0 {
		missing = append(missing, "scenario.income")
	}
	if c.Scenario.Expense < 0 {
		missing = append(missing, "scenario.expense")
	}
	if c.Scenario.Jurisdiction == "" {
		missing = append(missing, "scenario.jurisdiction")
	}
	return missing
}
