package main

import "fmt"

// Comparison engine: given the marginal rates implied by the federal and
// provincial bracket tables, derive what an expense really costs when paid
// through an HSA versus from after-tax personal income.

// Compare runs the full comparison for one input against a federal table and
// a provincial registry. It validates inputs and resolves the jurisdiction;
// the arithmetic itself is pure and deterministic.
//
// A combined marginal rate at or above 100% is passed through: the pre-tax
// income and savings figures come out non-finite or negative rather than
// raising a distinct error.
func Compare(input CalculationInput, federal BracketTable, registry *Registry) (CalculationResult, error) {
	if input.Income <= 0 {
		return CalculationResult{}, fmt.Errorf("income %.2f: %w", input.Income, ErrInvalidIncome)
	}
	if input.Expense < 0 {
		return CalculationResult{}, fmt.Errorf("expense %.2f: %w", input.Expense, ErrInvalidExpense)
	}

	jurisdiction, err := registry.Lookup(input.Jurisdiction)
	if err != nil {
		return CalculationResult{}, err
	}

	federalRate := MarginalRate(input.Income, federal)
	provincialRate := MarginalRate(input.Income, jurisdiction.Brackets)
	combinedRate := federalRate + provincialRate

	feeAmount := input.Expense * input.FeeRate
	totalCostThroughHSA := input.Expense + feeAmount + input.FixedFee

	// Pre-tax income needed so the after-tax remainder covers the expense
	requiredPretaxIncome := input.Expense / (1 - combinedRate)

	savings := requiredPretaxIncome - totalCostThroughHSA

	// Expense level at which the tax shield exactly amortizes the fixed fee
	breakEvenExpense := input.FixedFee * (1 - combinedRate) / combinedRate

	return CalculationResult{
		FederalMarginalRate:    federalRate,
		ProvincialMarginalRate: provincialRate,
		CombinedMarginalRate:   combinedRate,
		FeeAmount:              feeAmount,
		TotalCostThroughHSA:    totalCostThroughHSA,
		RequiredPretaxIncome:   requiredPretaxIncome,
		Savings:                savings,
		BreakEvenExpense:       breakEvenExpense,
	}, nil
}
