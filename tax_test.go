package main

import (
	"math"
	"testing"
)

// Bracket Rate Engine Tests
//
// The synthetic tables below mirror the 2025 federal and Ontario schedules
// truncated to three brackets, which keeps the hand-worked expected values
// short while still crossing two boundaries.

var testFederalTable = BracketTable{
	{Threshold: 57375, Rate: 0.15},
	{Threshold: 114750, Rate: 0.205},
	{Threshold: math.Inf(1), Rate: 0.33},
}

var testProvincialTable = BracketTable{
	{Threshold: 52886, Rate: 0.0505},
	{Threshold: 105775, Rate: 0.0915},
	{Threshold: math.Inf(1), Rate: 0.1316},
}

// tolerance for floating point comparisons
const rateTolerance = 1e-9

func assertFloatEquals(t *testing.T, expected, actual, tolerance float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %v, got %v (diff: %v)",
			description, expected, actual, actual-expected)
	}
}

// =============================================================================
// Marginal Rate Tests
// =============================================================================

func TestMarginalRate_BracketSelection(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expected float64
	}{
		{"zero income takes first bracket", 0, 0.15},
		{"inside first bracket", 40000, 0.15},
		{"exactly at first threshold stays in first bracket", 57375, 0.15},
		{"just above first threshold", 57375.01, 0.205},
		{"inside second bracket", 100000, 0.205},
		{"exactly at second threshold stays in second bracket", 114750, 0.205},
		{"just above second threshold", 114751, 0.33},
		{"deep into top bracket", 1000000, 0.33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate := MarginalRate(tc.income, testFederalTable)
			assertFloatEquals(t, tc.expected, rate, rateTolerance, tc.name)
		})
	}
}

func TestMarginalRate_BoundaryTieBreak(t *testing.T) {
	// Income exactly at a threshold belongs to the lower bracket;
	// one epsilon above tips into the next
	table := BracketTable{
		{Threshold: 50000, Rate: 0.10},
		{Threshold: math.Inf(1), Rate: 0.30},
	}

	assertFloatEquals(t, 0.10, MarginalRate(50000, table), rateTolerance,
		"income exactly at threshold")
	assertFloatEquals(t, 0.30, MarginalRate(50000.000001, table), rateTolerance,
		"income just above threshold")
}

func TestMarginalRate_TableWithoutUnboundedTop(t *testing.T) {
	// Misconfigured table with no .inf sentinel: fall back to the last rate
	table := BracketTable{
		{Threshold: 50000, Rate: 0.10},
		{Threshold: 100000, Rate: 0.20},
	}

	assertFloatEquals(t, 0.20, MarginalRate(250000, table), rateTolerance,
		"income above all thresholds uses last bracket's rate")
}

func TestMarginalRate_EmptyTable(t *testing.T) {
	assertFloatEquals(t, 0, MarginalRate(50000, BracketTable{}), rateTolerance,
		"empty table yields zero rate")
}

func TestMarginalRate_NonDecreasingStepFunction(t *testing.T) {
	prev := -1.0
	for income := 0.0; income <= 400000; income += 500 {
		rate := MarginalRate(income, testFederalTable)
		if rate < prev {
			t.Fatalf("marginal rate decreased from %v to %v at income %v", prev, rate, income)
		}
		prev = rate
	}
}

// =============================================================================
// Effective Rate and Tax Liability Tests
// =============================================================================

func TestTaxOnIncome(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expected float64
	}{
		{"zero income", 0, 0},
		{"negative income", -5000, 0},
		// 40000 * 0.15
		{"fully inside first bracket", 40000, 6000},
		// 57375 * 0.15
		{"exactly at first threshold", 57375, 8606.25},
		// 8606.25 + (100000 - 57375) * 0.205
		{"into second bracket", 100000, 17344.375},
		// 8606.25 + (114750 - 57375) * 0.205 + (150000 - 114750) * 0.33
		{"into top bracket", 150000, 8606.25 + 11761.875 + 11632.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tax := TaxOnIncome(tc.income, testFederalTable)
			assertFloatEquals(t, tc.expected, tax, 0.01, tc.name)
		})
	}
}

func TestEffectiveRate_ZeroAndNegativeIncome(t *testing.T) {
	assertFloatEquals(t, 0, EffectiveRate(0, testFederalTable), rateTolerance,
		"zero income has zero effective rate")
	assertFloatEquals(t, 0, EffectiveRate(-100, testFederalTable), rateTolerance,
		"negative income has zero effective rate")
}

func TestEffectiveRate_FirstBracketEqualsMarginal(t *testing.T) {
	// Fully inside the first bracket the blended rate IS the bracket rate
	effective := EffectiveRate(40000, testFederalTable)
	marginal := MarginalRate(40000, testFederalTable)

	assertFloatEquals(t, 0.15, effective, rateTolerance, "effective rate at 40k")
	assertFloatEquals(t, 0.15, marginal, rateTolerance, "marginal rate at 40k")
}

func TestEffectiveRate_Blended(t *testing.T) {
	// 17344.375 / 100000
	assertFloatEquals(t, 0.17344375, EffectiveRate(100000, testFederalTable), rateTolerance,
		"blended effective rate at 100k")
}

func TestEffectiveRate_NeverExceedsMarginal(t *testing.T) {
	// Progressive taxation: the average rate can never beat the top slice
	for income := 1000.0; income <= 500000; income += 1000 {
		effective := EffectiveRate(income, testFederalTable)
		marginal := MarginalRate(income, testFederalTable)
		if effective > marginal+rateTolerance {
			t.Fatalf("effective rate %v exceeds marginal %v at income %v", effective, marginal, income)
		}
	}
}
