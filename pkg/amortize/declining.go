package amortize

import (
	"fmt"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"go.uber.org/zap"
)

// DecliningBalanceSchedule generates the schedule for the equal-principal
// policy: principal repayment is constant for the whole term while the
// monthly charge is ratePerLakh per 100,000 units of outstanding principal,
// so each payment is no larger than the one before it.
func (c *Calculator) DecliningBalanceSchedule(principal, ratePerLakh float64, years int) Result {
	totalMonths := years * constants.MonthsPerYear
	monthlyPrincipal := principal / float64(totalMonths)

	c.logger.Debug(fmt.Sprintf("declining-balance lease: %.2f over %d months at %.2f per lakh",
		principal, totalMonths, ratePerLakh),
		zap.String("op", "amortize.DecliningBalanceSchedule"),
	)

	result := Result{
		Schedule: make([]ScheduleEntry, 0, totalMonths),
	}

	remainingBalance := principal
	for month := 1; month <= totalMonths; month++ {
		var entry ScheduleEntry
		entry.Month = month
		entry.Interest = remainingBalance / constants.LakhUnits * ratePerLakh
		entry.Principal = monthlyPrincipal
		entry.Payment = monthlyPrincipal + entry.Interest
		remainingBalance -= monthlyPrincipal
		entry.RemainingBalance = remainingBalance

		result.Schedule = append(result.Schedule, entry)
		result.TotalPaid += entry.Payment
		result.TotalInterest += entry.Interest

		// The balance reaches exactly zero after totalMonths iterations by
		// construction; this bound guards floating-point edge cases.
		if remainingBalance <= 0 {
			break
		}
	}
	result.MonthsToPayoff = len(result.Schedule)
	if result.MonthsToPayoff > 0 {
		result.MonthlyPayment = result.Schedule[0].Payment
	}

	return result
}

// ComputeDecliningBalanceSchedule is a convenience wrapper around a Calculator
// with no logging.
func ComputeDecliningBalanceSchedule(principal, ratePerLakh float64, years int) Result {
	return NewCalculator(nil).DecliningBalanceSchedule(principal, ratePerLakh, years)
}
