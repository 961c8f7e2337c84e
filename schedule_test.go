package main

import (
	"testing"
)

// Sweep Tests

func TestRateSchedule_PointsAndMonotonicity(t *testing.T) {
	points := RateSchedule(20000, 200000, 10000, testFederalTable, testProvincialTable)

	if len(points) != 19 {
		t.Fatalf("expected 19 points, got %d", len(points))
	}
	assertFloatEquals(t, 20000, points[0].Income, rateTolerance, "first point income")
	assertFloatEquals(t, 200000, points[len(points)-1].Income, rateTolerance, "last point income")

	prev := -1.0
	for _, p := range points {
		if p.CombinedMarginal < prev {
			t.Fatalf("combined marginal decreased at income %v", p.Income)
		}
		prev = p.CombinedMarginal

		if p.CombinedEffective > p.CombinedMarginal+rateTolerance {
			t.Errorf("combined effective %v exceeds marginal %v at income %v",
				p.CombinedEffective, p.CombinedMarginal, p.Income)
		}
	}
}

func TestRateSchedule_BadRange(t *testing.T) {
	if points := RateSchedule(100000, 50000, 10000, testFederalTable, testProvincialTable); points != nil {
		t.Errorf("inverted range should yield no points, got %d", len(points))
	}
	if points := RateSchedule(0, 100000, 0, testFederalTable, testProvincialTable); points != nil {
		t.Errorf("zero step should yield no points, got %d", len(points))
	}
}

func TestBreakEvenSweep_SavingsIncreaseWithExpense(t *testing.T) {
	// At a fixed marginal rate the savings are linear in the expense, so the
	// sweep must be strictly increasing and start at -fixedFee
	points, err := BreakEvenSweep(testInput(), testFederalTable, testRegistry(), 10000, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 21 {
		t.Fatalf("expected 21 points, got %d", len(points))
	}

	assertFloatEquals(t, 0, points[0].Expense, rateTolerance, "sweep starts at zero expense")
	assertFloatEquals(t, -120, points[0].Savings, moneyTolerance, "zero-expense savings is minus the flat fee")
	assertFloatEquals(t, 10000, points[len(points)-1].Expense, moneyTolerance, "sweep ends at expenseMax")

	for i := 1; i < len(points); i++ {
		if points[i].Savings <= points[i-1].Savings {
			t.Fatalf("savings not increasing between %v and %v", points[i-1].Expense, points[i].Expense)
		}
	}
}

func TestBreakEvenSweep_PropagatesValidation(t *testing.T) {
	input := testInput()
	input.Income = 0

	if _, err := BreakEvenSweep(input, testFederalTable, testRegistry(), 10000, 10); err == nil {
		t.Fatal("expected validation error for zero income")
	}
}

func TestCompareAllProvinces(t *testing.T) {
	input := testInput()
	input.Jurisdiction = "ON"

	results, err := CompareAllProvinces(input, FederalBrackets, DefaultRegistry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 13 {
		t.Fatalf("expected 13 results, got %d", len(results))
	}

	// Each row must reflect its own province, not the input's
	for _, pr := range results {
		expected := MarginalRate(input.Income, pr.Jurisdiction.Brackets)
		assertFloatEquals(t, expected, pr.Result.ProvincialMarginalRate, rateTolerance,
			pr.Code+" provincial marginal")
	}
}
