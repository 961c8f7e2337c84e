package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Configuration Tests

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded default config must parse: %v", err)
	}

	assertFloatEquals(t, 0.08, config.HSA.FeeRate, rateTolerance, "default fee rate")
	assertFloatEquals(t, 120, config.HSA.FixedFee, moneyTolerance, "default fixed fee")
	if config.Scenario.Jurisdiction != "ON" {
		t.Errorf("default jurisdiction should be ON, got %q", config.Scenario.Jurisdiction)
	}
	if config.Schedule.IncomeStep <= 0 {
		t.Error("default schedule step must be positive")
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
	if config == nil || config.HSA.FeeRate != 0.08 {
		t.Error("missing file should still yield usable defaults")
	}
}

func TestLoadConfig_OverridesWithInfinity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
scenario:
  income: 100000
  expense: 3000
  jurisdiction: "ON"
hsa:
  fee_rate: 0.05
  fixed_fee: 60
federal_brackets:
  - { threshold: 57375, rate: 0.15 }
  - { threshold: 114750, rate: 0.205 }
  - { threshold: .inf, rate: 0.33 }
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertFloatEquals(t, 100000, config.Scenario.Income, moneyTolerance, "income from file")
	assertFloatEquals(t, 0.05, config.HSA.FeeRate, rateTolerance, "fee rate from file")

	table, err := config.FederalTable()
	if err != nil {
		t.Fatalf("override table should validate: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 brackets, got %d", len(table))
	}
	if !math.IsInf(table[2].Threshold, 1) {
		t.Errorf("YAML .inf should parse to +Inf, got %v", table[2].Threshold)
	}
	assertFloatEquals(t, 0.33, MarginalRate(200000, table), rateTolerance, "override top rate")
}

func TestFederalTable_InvalidOverride(t *testing.T) {
	config := defaultConfig()
	config.FederalBrackets = []BracketConfig{
		{Threshold: 50000, Rate: 0.1},
		{Threshold: 40000, Rate: 0.2},
	}

	if _, err := config.FederalTable(); err == nil {
		t.Fatal("expected a validation error for a bad override")
	}
}

func TestBuildRegistry_OverridesSelectedJurisdiction(t *testing.T) {
	config := defaultConfig()
	config.Scenario.Jurisdiction = "ON"
	config.ProvincialBrackets = []BracketConfig{
		{Threshold: 50000, Rate: 0.05},
		{Threshold: math.Inf(1), Rate: 0.10},
	}

	registry, err := config.BuildRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	on, err := registry.Lookup("ON")
	if err != nil {
		t.Fatal(err)
	}
	if len(on.Brackets) != 2 {
		t.Errorf("ON table should be replaced by the override, got %d brackets", len(on.Brackets))
	}

	// Other provinces keep their compiled-in tables
	bc, err := registry.Lookup("BC")
	if err != nil {
		t.Fatal(err)
	}
	if len(bc.Brackets) != 7 {
		t.Errorf("BC table should be untouched, got %d brackets", len(bc.Brackets))
	}
}

func TestBuildRegistry_CustomCodeRegistersNewJurisdiction(t *testing.T) {
	config := defaultConfig()
	config.Scenario.Jurisdiction = "XX"
	config.ProvincialBrackets = []BracketConfig{
		{Threshold: math.Inf(1), Rate: 0.10},
	}

	registry, err := config.BuildRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := registry.Lookup("XX"); err != nil {
		t.Errorf("custom code should resolve: %v", err)
	}
}

func TestValidateScenario(t *testing.T) {
	config := defaultConfig()
	missing := config.ValidateScenario()
	if len(missing) != 1 || missing[0] != "scenario.income" {
		t.Errorf("defaults should only be missing income, got %v", missing)
	}

	config.Scenario.Income = 75000
	if missing := config.ValidateScenario(); len(missing) != 0 {
		t.Errorf("complete scenario should validate, got %v", missing)
	}

	config.Scenario.Expense = -5
	config.Scenario.Jurisdiction = ""
	missing = config.ValidateScenario()
	if len(missing) != 2 {
		t.Errorf("expected expense and jurisdiction flagged, got %v", missing)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	config := defaultConfig()
	config.Scenario.Income = 85000
	config.Scenario.Expense = 2500
	config.Scenario.Jurisdiction = "BC"

	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	assertFloatEquals(t, 85000, loaded.Scenario.Income, moneyTolerance, "income survives round trip")
	if loaded.Scenario.Jurisdiction != "BC" {
		t.Errorf("jurisdiction should survive round trip, got %q", loaded.Scenario.Jurisdiction)
	}
}
