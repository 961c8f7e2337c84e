package main

import (
	"errors"
	"fmt"
	"math"
)

// TaxBracket is one step of a progressive tax schedule. Threshold is the
// exclusive upper bound of the income range the bracket covers; the top
// bracket uses math.Inf(1) as its threshold.
type TaxBracket struct {
	Threshold float64
	Rate      float64
}

// BracketTable is an ordered sequence of brackets, lowest threshold first.
// Thresholds must be strictly increasing and the last entry unbounded.
// The rate engine does not enforce this; ValidateTable reports violations.
type BracketTable []TaxBracket

// Unbounded returns true if b covers all income above the previous bracket.
func (b TaxBracket) Unbounded() bool {
	return math.IsInf(b.Threshold, 1)
}

// ValidateTable checks the structural invariants a bracket table must hold
// for the rate engine to produce meaningful results.
func ValidateTable(table BracketTable) error {
	if len(table) == 0 {
		return errors.New("bracket table is empty")
	}
	prev := 0.0
	for i, b := range table {
		if !b.Unbounded() && b.Threshold <= prev {
			return fmt.Errorf("bracket %d: threshold %.2f not above previous %.2f", i, b.Threshold, prev)
		}
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("bracket %d: rate %.4f outside [0,1]", i, b.Rate)
		}
		if i < len(table)-1 && b.Unbounded() {
			return fmt.Errorf("bracket %d: unbounded bracket before end of table", i)
		}
		prev = b.Threshold
	}
	if !table[len(table)-1].Unbounded() {
		return errors.New("last bracket must be unbounded (threshold .inf)")
	}
	return nil
}

// Jurisdiction is one provincial/territorial tax schedule in the registry.
type Jurisdiction struct {
	Code     string
	Name     string
	Brackets BracketTable
}

// Registry maps jurisdiction codes to their tax schedules. It is built once
// at startup and never mutated; Compare takes it as a parameter so tests can
// substitute synthetic tables.
type Registry struct {
	entries []Jurisdiction
}

// NewRegistry builds a registry from a list of jurisdictions, preserving order.
func NewRegistry(jurisdictions []Jurisdiction) *Registry {
	return &Registry{entries: jurisdictions}
}

// Lookup returns the jurisdiction for a code, or an UnknownJurisdictionError.
func (r *Registry) Lookup(code string) (Jurisdiction, error) {
	for _, j := range r.entries {
		if j.Code == code {
			return j, nil
		}
	}
	return Jurisdiction{}, &UnknownJurisdictionError{Code: code}
}

// All returns the jurisdictions in registry order.
func (r *Registry) All() []Jurisdiction {
	return r.entries
}

// CalculationInput holds the inputs for one HSA-versus-personal comparison.
type CalculationInput struct {
	Income       float64 // annual taxable income, must be > 0
	Expense      float64 // annual eligible expense, must be >= 0
	Jurisdiction string  // registry code, e.g. "ON"
	FeeRate      float64 // HSA admin fee as a fraction of the expense
	FixedFee     float64 // flat annual HSA fee, independent of the expense
}

// CalculationResult is the derived comparison. All fields are plain
// floating-point values; rounding is the presentation layer's job.
type CalculationResult struct {
	FederalMarginalRate    float64 `json:"federal_marginal_rate"`
	ProvincialMarginalRate float64 `json:"provincial_marginal_rate"`
	CombinedMarginalRate   float64 `json:"combined_marginal_rate"`
	FeeAmount              float64 `json:"fee_amount"`
	TotalCostThroughHSA    float64 `json:"total_cost_through_hsa"`
	RequiredPretaxIncome   float64 `json:"required_pretax_income"`
	Savings                float64 `json:"savings"`
	BreakEvenExpense       float64 `json:"break_even_expense"`
}

// Validation errors returned by Compare. The CLI maps these to user-facing
// messages and a non-zero exit code.
var (
	ErrInvalidIncome  = errors.New("income must be greater than zero")
	ErrInvalidExpense = errors.New("expense must not be negative")
)

// UnknownJurisdictionError reports a jurisdiction code with no registry entry.
type UnknownJurisdictionError struct {
	Code string
}

func (e *UnknownJurisdictionError) Error() string {
	return fmt.Sprintf("unknown jurisdiction code %q", e.Code)
}
