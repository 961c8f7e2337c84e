package main

// Sweep outputs: rate schedules across an income range, break-even curves
// across an expense range, and a cross-province comparison at one income.

// RatePoint holds the rates at one income level
type RatePoint struct {
	Income              float64 `json:"income"`
	FederalMarginal     float64 `json:"federal_marginal"`
	ProvincialMarginal  float64 `json:"provincial_marginal"`
	CombinedMarginal    float64 `json:"combined_marginal"`
	FederalEffective    float64 `json:"federal_effective"`
	ProvincialEffective float64 `json:"provincial_effective"`
	CombinedEffective   float64 `json:"combined_effective"`
}

// RateSchedule evaluates marginal and effective rates across an income range.
// Step must be positive; the range is inclusive of both ends.
func RateSchedule(incomeMin, incomeMax, step float64, federal, provincial BracketTable) []RatePoint {
	if step <= 0 || incomeMax < incomeMin {
		return nil
	}

	var points []RatePoint
	for income := incomeMin; income <= incomeMax+step/2; income += step {
		points = append(points, RatePoint{
			Income:              income,
			FederalMarginal:     MarginalRate(income, federal),
			ProvincialMarginal:  MarginalRate(income, provincial),
			CombinedMarginal:    MarginalRate(income, federal) + MarginalRate(income, provincial),
			FederalEffective:    EffectiveRate(income, federal),
			ProvincialEffective: EffectiveRate(income, provincial),
			CombinedEffective:   EffectiveRate(income, federal) + EffectiveRate(income, provincial),
		})
	}
	return points
}

// SweepPoint holds the comparison outcome at one expense level
type SweepPoint struct {
	Expense              float64 `json:"expense"`
	TotalCostThroughHSA  float64 `json:"total_cost_through_hsa"`
	RequiredPretaxIncome float64 `json:"required_pretax_income"`
	Savings              float64 `json:"savings"`
}

// BreakEvenSweep evaluates the comparison across expense levels from 0 to
// expenseMax in the given number of steps, holding income and fees fixed.
// Useful for seeing where the HSA starts paying for its fixed fee.
func BreakEvenSweep(input CalculationInput, federal BracketTable, registry *Registry, expenseMax float64, steps int) ([]SweepPoint, error) {
	if steps < 1 {
		steps = 1
	}

	var points []SweepPoint
	for i := 0; i <= steps; i++ {
		probe := input
		probe.Expense = expenseMax * float64(i) / float64(steps)
		result, err := Compare(probe, federal, registry)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{
			Expense:              probe.Expense,
			TotalCostThroughHSA:  result.TotalCostThroughHSA,
			RequiredPretaxIncome: result.RequiredPretaxIncome,
			Savings:              result.Savings,
		})
	}
	return points, nil
}

// ProvinceResult pairs a jurisdiction with its comparison outcome
type ProvinceResult struct {
	Jurisdiction Jurisdiction      `json:"-"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Result       CalculationResult `json:"result"`
}

// CompareAllProvinces runs the same scenario against every jurisdiction in
// the registry, for the cross-province comparison table.
func CompareAllProvinces(input CalculationInput, federal BracketTable, registry *Registry) ([]ProvinceResult, error) {
	var results []ProvinceResult
	for _, j := range registry.All() {
		probe := input
		probe.Jurisdiction = j.Code
		result, err := Compare(probe, federal, registry)
		if err != nil {
			return nil, err
		}
		results = append(results, ProvinceResult{
			Jurisdiction: j,
			Code:         j.Code,
			Name:         j.Name,
			Result:       result,
		})
	}
	return results, nil
}
