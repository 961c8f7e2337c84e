package main

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats a float as a currency string
func FormatMoney(amount float64) string {
	if math.IsInf(amount, 1) {
		return "∞"
	}
	if math.IsInf(amount, -1) {
		return "-∞"
	}
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPercent formats a fraction as a percentage string
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// PrintHeader prints the calculator header with the scenario being evaluated
func PrintHeader(input CalculationInput, jurisdiction Jurisdiction) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║              HSA vs PERSONAL PAYMENT COST COMPARISON                         ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Scenario:")
	fmt.Println("─────────")
	fmt.Printf("  Tax year:      %d\n", TaxYear)
	fmt.Printf("  Jurisdiction:  %s (%s)\n", jurisdiction.Name, jurisdiction.Code)
	fmt.Printf("  Income:        %s\n", FormatMoney(input.Income))
	fmt.Printf("  Expenses:      %s/year\n", FormatMoney(input.Expense))
	fmt.Printf("  HSA fees:      %s on claims + %s/year flat\n",
		FormatPercent(input.FeeRate), FormatMoney(input.FixedFee))
	fmt.Println()
}

// PrintResult prints the comparison outcome
func PrintResult(input CalculationInput, result CalculationResult) {
	fmt.Println("Marginal Tax Rates:")
	fmt.Println("───────────────────")
	fmt.Printf("  Federal:       %s\n", FormatPercent(result.FederalMarginalRate))
	fmt.Printf("  Provincial:    %s\n", FormatPercent(result.ProvincialMarginalRate))
	fmt.Printf("  Combined:      %s\n", FormatPercent(result.CombinedMarginalRate))
	fmt.Println()

	fmt.Println("Cost of Paying Through the HSA:")
	fmt.Println("───────────────────────────────")
	fmt.Printf("  Expenses:      %12s\n", FormatMoney(input.Expense))
	fmt.Printf("  Admin fee:     %12s\n", FormatMoney(result.FeeAmount))
	fmt.Printf("  Annual fee:    %12s\n", FormatMoney(input.FixedFee))
	fmt.Printf("  Total:         %12s\n", FormatMoney(result.TotalCostThroughHSA))
	fmt.Println()

	fmt.Println("Cost of Paying Personally:")
	fmt.Println("──────────────────────────")
	fmt.Printf("  Pre-tax income needed: %s\n", FormatMoney(result.RequiredPretaxIncome))
	fmt.Println()

	fmt.Println(strings.Repeat("═", 50))
	if result.Savings >= 0 {
		fmt.Printf("  HSA SAVES YOU: %s/year\n", FormatMoney(result.Savings))
	} else {
		fmt.Printf("  HSA COSTS YOU: %s/year MORE\n", FormatMoney(-result.Savings))
	}
	fmt.Println(strings.Repeat("═", 50))
	fmt.Println()
	fmt.Printf("  Break-even expenses: %s/year (below this, the flat fee\n", FormatMoney(result.BreakEvenExpense))
	fmt.Println("  outweighs the tax shield)")
	fmt.Println()
}

// PrintRateSchedule prints marginal/effective rates across an income range
func PrintRateSchedule(points []RatePoint, jurisdiction Jurisdiction) {
	fmt.Printf("Rate schedule: federal + %s (%d)\n", jurisdiction.Name, TaxYear)
	fmt.Println()
	fmt.Printf("%12s │ %9s %9s %9s │ %9s %9s %9s\n",
		"Income", "Fed Marg", "Prov Marg", "Combined", "Fed Eff", "Prov Eff", "Combined")
	fmt.Println(strings.Repeat("─", 78))
	for _, p := range points {
		fmt.Printf("%12s │ %8.2f%% %8.2f%% %8.2f%% │ %8.2f%% %8.2f%% %8.2f%%\n",
			FormatMoney(p.Income),
			p.FederalMarginal*100, p.ProvincialMarginal*100, p.CombinedMarginal*100,
			p.FederalEffective*100, p.ProvincialEffective*100, p.CombinedEffective*100)
	}
	fmt.Println()
}

// PrintBreakEvenSweep prints the savings curve across expense levels
func PrintBreakEvenSweep(points []SweepPoint, breakEven float64) {
	fmt.Println("Break-even sweep (income and fees held fixed)")
	fmt.Println()
	fmt.Printf("%12s │ %14s %14s │ %12s\n",
		"Expenses", "HSA Cost", "Personal Cost", "Savings")
	fmt.Println(strings.Repeat("─", 62))
	for _, p := range points {
		marker := " "
		if p.Savings >= 0 {
			marker = "+"
		}
		fmt.Printf("%12s │ %14s %14s │ %11s %s\n",
			FormatMoney(p.Expense),
			FormatMoney(p.TotalCostThroughHSA),
			FormatMoney(p.RequiredPretaxIncome),
			FormatMoney(p.Savings), marker)
	}
	fmt.Println()
	fmt.Printf("Break-even at %s of annual expenses\n", FormatMoney(breakEven))
	fmt.Println()
}

// PrintProvinceComparison prints the same scenario across all jurisdictions
func PrintProvinceComparison(results []ProvinceResult) {
	fmt.Printf("Cross-province comparison (%d)\n", TaxYear)
	fmt.Println()
	fmt.Printf("%-28s │ %9s %9s │ %12s %14s\n",
		"Jurisdiction", "Prov Marg", "Combined", "Savings", "Break-even")
	fmt.Println(strings.Repeat("─", 80))
	for _, pr := range results {
		fmt.Printf("%-28s │ %8.2f%% %8.2f%% │ %12s %14s\n",
			fmt.Sprintf("%s (%s)", pr.Name, pr.Code),
			pr.Result.ProvincialMarginalRate*100,
			pr.Result.CombinedMarginalRate*100,
			FormatMoney(pr.Result.Savings),
			FormatMoney(pr.Result.BreakEvenExpense))
	}
	fmt.Println()
}
