// Package amortize implements the lease repayment computation engine. It
// produces monthly repayment schedules under two amortization policies: a
// fixed-rate policy with a constant annuity payment, and a declining-balance
// policy with constant principal repayment and a per-lakh monthly charge that
// shrinks with the outstanding balance.
//
// The engine is pure; it performs no I/O and no input validation. Callers are
// expected to validate terms with pkg/validation before invoking it.
package amortize

import (
	"fmt"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/mathutil"
)

// Model selects the amortization policy for a calculation.
type Model string

const (
	// FixedRate amortizes with a constant monthly payment derived from the
	// standard annuity formula.
	FixedRate Model = "fixed-rate"

	// DecliningBalance amortizes with constant principal repayment plus a
	// charge proportional to the outstanding balance.
	DecliningBalance Model = "declining-balance"
)

// ParseModel converts a string into a Model.
func ParseModel(s string) (Model, error) {
	switch Model(s) {
	case FixedRate:
		return FixedRate, nil
	case DecliningBalance:
		return DecliningBalance, nil
	}
	return "", fmt.Errorf("unknown amortization model %q", s)
}

// LeaseTerms holds the validated inputs for a single calculation. Exactly one
// rate field is meaningful, selected by Model.
type LeaseTerms struct {
	Model             Model
	Principal         float64
	Years             int
	AnnualRatePercent float64 // fixed-rate only, e.g. 11.0 for 11%
	RatePerLakh       float64 // declining-balance only, charge per lakh per month
}

// ScheduleEntry holds the values for one month of a repayment schedule.
type ScheduleEntry struct {
	Month            int
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// Result is the aggregate outcome of a calculation: summary totals plus the
// full ordered month-by-month schedule.
type Result struct {
	MonthlyPayment float64 // fixed-rate: the constant payment; declining-balance: the first month's payment
	TotalPaid      float64
	TotalInterest  float64
	MonthsToPayoff int
	Schedule       []ScheduleEntry
}

// InterestShareOfPrincipal returns total interest as a percentage of the
// original principal.
func (r Result) InterestShareOfPrincipal(principal float64) float64 {
	return mathutil.CalculatePercentage(r.TotalInterest, principal)
}
