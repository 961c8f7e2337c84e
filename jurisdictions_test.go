package main

import (
	"testing"
)

// Static Table Validation Tests
//
// These guard the compiled-in 2025 schedules: every table must satisfy the
// structural invariants the rate engine assumes, and a couple of spot checks
// pin the tables to published CRA / Ontario figures.

func TestFederalBrackets_Valid(t *testing.T) {
	if err := ValidateTable(FederalBrackets); err != nil {
		t.Errorf("federal table invalid: %v", err)
	}
}

func TestProvincialTables_Valid(t *testing.T) {
	seen := map[string]bool{}
	for _, j := range ProvincialJurisdictions {
		if j.Code == "" || j.Name == "" {
			t.Errorf("jurisdiction %+v missing code or name", j)
		}
		if seen[j.Code] {
			t.Errorf("duplicate jurisdiction code %s", j.Code)
		}
		seen[j.Code] = true

		if err := ValidateTable(j.Brackets); err != nil {
			t.Errorf("%s table invalid: %v", j.Code, err)
		}

		// Progressive schedules: rates never step down
		for i := 1; i < len(j.Brackets); i++ {
			if j.Brackets[i].Rate < j.Brackets[i-1].Rate {
				t.Errorf("%s: rate decreases at bracket %d", j.Code, i)
			}
		}
	}
}

func TestDefaultRegistry_CoversAllProvincesAndTerritories(t *testing.T) {
	registry := DefaultRegistry()
	if got := len(registry.All()); got != 13 {
		t.Errorf("expected 13 jurisdictions, got %d", got)
	}

	for _, code := range []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"} {
		if _, err := registry.Lookup(code); err != nil {
			t.Errorf("lookup %s: %v", code, err)
		}
	}
}

func TestRegistryLookup_Unknown(t *testing.T) {
	_, err := DefaultRegistry().Lookup("XX")
	if err == nil {
		t.Fatal("expected an error for unknown code")
	}
}

func TestPublishedRateSpotChecks(t *testing.T) {
	// CRA 2025: $100,000 falls in the 20.5% federal bracket
	assertFloatEquals(t, 0.205, MarginalRate(100000, FederalBrackets), rateTolerance,
		"federal marginal at 100k")

	// Ontario 2025: $100,000 falls in the 9.15% bracket
	on, err := DefaultRegistry().Lookup("ON")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEquals(t, 0.0915, MarginalRate(100000, on.Brackets), rateTolerance,
		"Ontario marginal at 100k")
	if on.Name != "Ontario" {
		t.Errorf("expected display name Ontario, got %q", on.Name)
	}
}

func TestValidateTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table BracketTable
	}{
		{"empty table", BracketTable{}},
		{"thresholds not increasing", BracketTable{
			{Threshold: 50000, Rate: 0.1},
			{Threshold: 40000, Rate: 0.2},
			{Threshold: unbounded, Rate: 0.3},
		}},
		{"unbounded bracket before end", BracketTable{
			{Threshold: unbounded, Rate: 0.1},
			{Threshold: unbounded, Rate: 0.2},
		}},
		{"missing unbounded top", BracketTable{
			{Threshold: 50000, Rate: 0.1},
			{Threshold: 100000, Rate: 0.2},
		}},
		{"rate above one", BracketTable{
			{Threshold: 50000, Rate: 1.5},
			{Threshold: unbounded, Rate: 0.2},
		}},
		{"negative rate", BracketTable{
			{Threshold: 50000, Rate: -0.1},
			{Threshold: unbounded, Rate: 0.2},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateTable(tc.table); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
