package amortize

import (
	"fmt"
	"math"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// ComputeMonthlyPayment calculates the constant monthly payment for a fully
// amortizing lease using the standard annuity formula. annualRate is a
// fraction (0.11 for 11%).
func ComputeMonthlyPayment(principal, annualRate float64, years int) float64 {
	totalMonths := years * constants.MonthsPerYear

	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(totalMonths)
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+monthlyRate, float64(totalMonths))
	discountFactor := (power - 1.00) / power
	return principal * monthlyRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of one fixed-rate
// payment given the outstanding balance.
func CalculateInterestPayment(remainingBalance, annualRate float64) float64 {
	return remainingBalance * annualRate / constants.MonthsPerYear
}

// Calculator generates repayment schedules under either amortization policy.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new Calculator instance.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Compute dispatches on the model carried by terms.
func (c *Calculator) Compute(terms LeaseTerms) (Result, error) {
	switch terms.Model {
	case FixedRate:
		return c.FixedRateSchedule(terms.Principal, terms.AnnualRatePercent/constants.PercentageMultiplier, terms.Years), nil
	case DecliningBalance:
		return c.DecliningBalanceSchedule(terms.Principal, terms.RatePerLakh, terms.Years), nil
	}
	return Result{}, fmt.Errorf("unknown amortization model %q", terms.Model)
}

// FixedRateSchedule expands the constant annuity payment into the full-term
// month-by-month schedule. annualRate is a fraction. The schedule always
// covers the full term; truncating to a preview window is a display concern.
func (c *Calculator) FixedRateSchedule(principal, annualRate float64, years int) Result {
	totalMonths := years * constants.MonthsPerYear
	monthlyRate := annualRate / constants.MonthsPerYear
	payment := ComputeMonthlyPayment(principal, annualRate, years)

	c.logger.Debug(fmt.Sprintf("fixed-rate lease: %.2f over %d months at payment %.2f",
		principal, totalMonths, payment),
		zap.String("op", "amortize.FixedRateSchedule"),
	)

	result := Result{
		MonthlyPayment: payment,
		Schedule:       make([]ScheduleEntry, 0, totalMonths),
	}

	remainingBalance := principal
	for month := 1; month <= totalMonths; month++ {
		var entry ScheduleEntry
		entry.Month = month
		entry.Payment = payment
		entry.Interest = remainingBalance * monthlyRate
		entry.Principal = payment - entry.Interest
		remainingBalance -= entry.Principal

		if month == totalMonths && mathutil.Round(remainingBalance) == 0 {
			// We will get machine error otherwise so just set to 0.
			remainingBalance = 0.00
		}
		entry.RemainingBalance = remainingBalance

		result.Schedule = append(result.Schedule, entry)
		result.TotalPaid += entry.Payment
		result.TotalInterest += entry.Interest
	}
	result.MonthsToPayoff = len(result.Schedule)

	return result
}
