package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `HSA Cost Comparison Calculator (%d tax year)

Compares the cost of paying eligible medical expenses through a Health
Spending Account (pre-tax, with admin fees) against paying them from
after-tax personal income, using federal and provincial marginal tax rates.

The comparison:
  - Through the HSA, an expense costs: expense + admin fee + flat annual fee
  - Paid personally, it costs the pre-tax income needed to be left with the
    expense amount after tax: expense / (1 - combined marginal rate)
  - The break-even figure is the expense level at which the tax shield
    exactly covers the flat annual fee

Usage:
  %s [options]

Options:
`, TaxYear, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s -income 100000 -expense 3000 -province ON
  %s -income 100000 -expense 3000 -province ON -json
  %s -income 100000 -schedule            Marginal/effective rates by income
  %s -income 100000 -expense 3000 -sweep Savings curve across expense levels
  %s -income 100000 -expense 3000 -provinces
                                         Same scenario across all provinces
  %s -income 100000 -expense 3000 -pdf report.pdf
  %s -web                                Web server mode (external browser)
  %s -ui                                 Embedded browser window

Configuration:
  Defaults (fees, sweep ranges, bracket overrides) come from config.yaml;
  flags override the file. Run without flags to be prompted interactively.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	income := flag.Float64("income", 0, "Annual taxable income")
	expense := flag.Float64("expense", -1, "Annual eligible medical expenses")
	province := flag.String("province", "", "Province/territory code (e.g. ON, BC, AB)")
	feeRate := flag.Float64("fee-rate", -1, "HSA admin fee as a fraction of claims (e.g. 0.08)")
	fixedFee := flag.Float64("fixed-fee", -1, "Flat annual HSA fee")
	jsonOutput := flag.Bool("json", false, "Print the result as JSON instead of formatted text")
	showSchedule := flag.Bool("schedule", false, "Print marginal/effective rates across an income range")
	showSweep := flag.Bool("sweep", false, "Print the savings curve across expense levels")
	showProvinces := flag.Bool("provinces", false, "Compare the scenario across all provinces")
	pdfFile := flag.String("pdf", "", "Write a PDF comparison report to the given file")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "localhost:0", "Web server address (for -web mode, use :0 for auto port)")
	flag.Parse()

	// Embedded browser mode
	if *uiMode {
		if err := runEmbeddedUI(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser)
	if *webMode {
		config, err := LoadConfig(*configFile)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		server := NewWebServer(config, *webAddr)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Determine if we should run in console mode:
	// - Explicit -console flag, OR
	// - Any scenario/output flags set (for automation/scripting)
	useConsole := *consoleMode || *income > 0 || *expense >= 0 || *province != "" ||
		*feeRate >= 0 || *fixedFee >= 0 || *jsonOutput || *showSchedule || *showSweep ||
		*showProvinces || *pdfFile != ""

	if !useConsole {
		// Default: GUI mode, falling back to console if it fails
		if err := runEmbeddedUI(*configFile); err == nil {
			return
		}
		fmt.Println("GUI unavailable, falling back to console mode...")
	}

	config, err := LoadConfig(*configFile)
	configMissing := os.IsNotExist(err)
	if err != nil && !configMissing {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	if *income > 0 {
		config.Scenario.Income = *income
	}
	if *expense >= 0 {
		config.Scenario.Expense = *expense
	}
	if *province != "" {
		config.Scenario.Jurisdiction = strings.ToUpper(*province)
	}
	if *feeRate >= 0 {
		config.HSA.FeeRate = *feeRate
	}
	if *fixedFee >= 0 {
		config.HSA.FixedFee = *fixedFee
	}

	config.Scenario.Jurisdiction = strings.ToUpper(config.Scenario.Jurisdiction)

	// Prompt for anything still missing
	if missing := config.ValidateScenario(); len(missing) > 0 {
		promptForMissingFields(config, missing, *configFile, configMissing)
	}

	federal, err := config.FederalTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registry, err := config.BuildRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := config.Input()
	result, err := Compare(input, federal, registry)
	if err != nil {
		printCompareError(err)
		os.Exit(1)
	}

	if *jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	jurisdiction, _ := registry.Lookup(input.Jurisdiction)
	PrintHeader(input, jurisdiction)
	PrintResult(input, result)

	if *showSchedule {
		points := RateSchedule(config.Schedule.IncomeMin, config.Schedule.IncomeMax,
			config.Schedule.IncomeStep, federal, jurisdiction.Brackets)
		PrintRateSchedule(points, jurisdiction)
	}

	if *showSweep {
		expenseMax := config.Schedule.ExpenseMax
		if input.Expense*2 > expenseMax {
			expenseMax = input.Expense * 2
		}
		points, err := BreakEvenSweep(input, federal, registry, expenseMax, 20)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running sweep: %v\n", err)
		} else {
			PrintBreakEvenSweep(points, result.BreakEvenExpense)
		}
	}

	if *showProvinces {
		results, err := CompareAllProvinces(input, federal, registry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error comparing provinces: %v\n", err)
		} else {
			PrintProvinceComparison(results)
		}
	}

	if *pdfFile != "" {
		if err := WritePDFReport(*pdfFile, input, jurisdiction, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote PDF report to %s\n", *pdfFile)
	}
}

// printCompareError turns validation errors into user-facing messages
func printCompareError(err error) {
	var unknownJurisdiction *UnknownJurisdictionError
	switch {
	case errors.Is(err, ErrInvalidIncome):
		fmt.Fprintf(os.Stderr, "Error: %v (use -income)\n", err)
	case errors.Is(err, ErrInvalidExpense):
		fmt.Fprintf(os.Stderr, "Error: %v (use -expense)\n", err)
	case errors.As(err, &unknownJurisdiction):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Known codes:")
		for _, j := range DefaultRegistry().All() {
			fmt.Fprintf(os.Stderr, " %s", j.Code)
		}
		fmt.Fprintln(os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// promptForMissingFields prompts for missing scenario fields and offers to
// save them back to the config file
func promptForMissingFields(config *Config, missing []string, configFile string, configMissing bool) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  HSA COST COMPARISON CALCULATOR                              ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	if configMissing {
		fmt.Printf("No configuration file found at %s. Enter your scenario:\n", configFile)
	} else {
		fmt.Println("Some scenario values are missing. Enter them below:")
	}
	fmt.Println("For money, enter '100k' or '100000'. Press Enter for defaults.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for _, field := range missing {
		switch field {
		case "scenario.income":
			config.Scenario.Income = promptMoneySimple(reader, "  Annual taxable income", 75000)
		case "scenario.expense":
			config.Scenario.Expense = promptMoneySimple(reader, "  Annual eligible medical expenses", 2000)
		case "scenario.jurisdiction":
			config.Scenario.Jurisdiction = strings.ToUpper(
				promptStringSimple(reader, "  Province/territory code", "ON"))
		}
	}

	save := promptStringSimple(reader, "  Save these to "+configFile+"? (y/n)", "y")
	if strings.HasPrefix(strings.ToLower(save), "y") {
		if err := SaveConfig(config, configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not save config: %v\n", err)
		} else {
			fmt.Printf("\nConfiguration saved to %s\n", configFile)
		}
	}
	fmt.Println()
}

// Simple prompt helpers for the missing fields prompts
func promptStringSimple(reader *bufio.Reader, prompt, defaultVal string) string {
	fmt.Printf("%s [%s]: ", prompt, defaultVal)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

func promptMoneySimple(reader *bufio.Reader, prompt string, defaultVal float64) float64 {
	defaultStr := fmt.Sprintf("$%.0fk", defaultVal/1000)
	if defaultVal < 1000 {
		defaultStr = fmt.Sprintf("$%.0f", defaultVal)
	}
	fmt.Printf("%s [%s]: ", prompt, defaultStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultVal
	}
	// Handle k/m suffix
	multiplier := 1.0
	if strings.HasSuffix(input, "k") {
		multiplier = 1000
		input = strings.TrimSuffix(input, "k")
	} else if strings.HasSuffix(input, "m") {
		multiplier = 1000000
		input = strings.TrimSuffix(input, "m")
	}
	input = strings.TrimPrefix(input, "$")
	val, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return defaultVal
	}
	return val * multiplier
}

// openBrowser opens a URL or file in the default browser
func openBrowser(target string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
