package main

// Bracket rate engine. Rates and thresholds come from the static tables in
// jurisdictions.go or from config overrides; this file only walks them.

// TaxOnIncome calculates the total tax owed on a given income under a
// progressive bracket table.
func TaxOnIncome(income float64, table BracketTable) float64 {
	if income <= 0 {
		return 0
	}

	var totalTax float64
	prevThreshold := 0.0

	for _, bracket := range table {
		if income <= bracket.Threshold {
			// Income tops out inside this bracket
			totalTax += (income - prevThreshold) * bracket.Rate
			return totalTax
		}
		totalTax += (bracket.Threshold - prevThreshold) * bracket.Rate
		prevThreshold = bracket.Threshold
	}

	return totalTax
}

// EffectiveRate returns total tax liability divided by income: the blended
// average rate across every bracket the income passes through.
func EffectiveRate(income float64, table BracketTable) float64 {
	if income <= 0 {
		return 0
	}
	return TaxOnIncome(income, table) / income
}

// MarginalRate returns the rate applied to the next dollar earned: the rate
// of the first bracket whose threshold covers the income. Income exactly at
// a threshold belongs to the lower bracket (the <= comparison), which keeps
// results stable at bracket edges.
func MarginalRate(income float64, table BracketTable) float64 {
	for _, bracket := range table {
		if income <= bracket.Threshold {
			return bracket.Rate
		}
	}
	// Table without an unbounded top bracket; treat the highest rate as open-ended
	if len(table) > 0 {
		return table[len(table)-1].Rate
	}
	return 0
}
