package amortize

import (
	"math"
	"testing"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"go.uber.org/zap"
)

func TestComputeMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		years         int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 20 lakh lease at 11%",
			principal:     2000000,
			annualRate:    0.11,
			years:         5,
			expectedRange: []float64{43400, 43500}, // Around LKR 43,485
		},
		{
			name:          "Small lease at moderate rate",
			principal:     500000,
			annualRate:    0.08,
			years:         3,
			expectedRange: []float64{15600, 15700}, // Around LKR 15,668
		},
		{
			name:          "Long-term lease",
			principal:     5000000,
			annualRate:    0.12,
			years:         30,
			expectedRange: []float64{51400, 51500}, // Around LKR 51,430
		},
		{
			name:          "High rate short lease",
			principal:     1000000,
			annualRate:    0.25,
			years:         2,
			expectedRange: []float64{53000, 54000}, // Around LKR 53,370
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeMonthlyPayment(tt.principal, tt.annualRate, tt.years)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("ComputeMonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestComputeMonthlyPaymentZeroRate(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		years     int
		expected  float64
	}{
		{
			name:      "Even split over 5 years",
			principal: 1200000,
			years:     5,
			expected:  20000, // 1200000 / 60 exactly
		},
		{
			name:      "Even split over 1 year",
			principal: 120000,
			years:     1,
			expected:  10000,
		},
		{
			name:      "Non-round split",
			principal: 2000000,
			years:     3,
			expected:  2000000.0 / 36.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeMonthlyPayment(tt.principal, 0, tt.years)

			if result != tt.expected {
				t.Errorf("ComputeMonthlyPayment() = %v, expected exactly %v", result, tt.expected)
			}
		})
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name             string
		remainingBalance float64
		annualRate       float64
		expected         float64
	}{
		{
			name:             "Full balance at 11%",
			remainingBalance: 2000000,
			annualRate:       0.11,
			expected:         18333.33, // 2000000 * 0.11 / 12
		},
		{
			name:             "Partial balance at 6%",
			remainingBalance: 500000,
			annualRate:       0.06,
			expected:         2500.0,
		},
		{
			name:             "Zero rate",
			remainingBalance: 1000000,
			annualRate:       0.0,
			expected:         0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(tt.remainingBalance, tt.annualRate)

			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateInterestPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestFixedRateSchedule(t *testing.T) {
	calc := NewCalculator(zap.NewNop())

	principal := 2000000.0
	years := 5
	result := calc.FixedRateSchedule(principal, 0.11, years)

	totalMonths := years * constants.MonthsPerYear
	if len(result.Schedule) != totalMonths {
		t.Fatalf("FixedRateSchedule() produced %d entries, expected %d", len(result.Schedule), totalMonths)
	}
	if result.MonthsToPayoff != totalMonths {
		t.Errorf("MonthsToPayoff = %d, expected %d", result.MonthsToPayoff, totalMonths)
	}

	// Payment is constant across all months and each payment splits cleanly
	// into principal and interest.
	for _, entry := range result.Schedule {
		if math.Abs(entry.Payment-result.MonthlyPayment) > constants.CurrencyTolerance {
			t.Errorf("month %d payment = %.2f, expected constant %.2f",
				entry.Month, entry.Payment, result.MonthlyPayment)
		}
		if math.Abs(entry.Payment-(entry.Principal+entry.Interest)) > constants.CurrencyTolerance {
			t.Errorf("month %d payment %.2f != principal %.2f + interest %.2f",
				entry.Month, entry.Payment, entry.Principal, entry.Interest)
		}
	}

	// Balance declines monotonically and reaches zero within one cent.
	lastBalance := principal
	for _, entry := range result.Schedule {
		if entry.RemainingBalance > lastBalance {
			t.Errorf("month %d balance %.2f exceeds previous %.2f",
				entry.Month, entry.RemainingBalance, lastBalance)
		}
		lastBalance = entry.RemainingBalance
	}
	final := result.Schedule[len(result.Schedule)-1].RemainingBalance
	if math.Abs(final) > constants.CurrencyTolerance {
		t.Errorf("final balance = %.4f, expected 0 within %.2f", final, constants.CurrencyTolerance)
	}
}

func TestFixedRateScheduleTotals(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		years      int
	}{
		{"20 lakh at 11% over 5 years", 2000000, 0.11, 5},
		{"10 lakh at 18% over 3 years", 1000000, 0.18, 3},
		{"Zero rate", 1200000, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.FixedRateSchedule(tt.principal, tt.annualRate, tt.years)

			var sumPayments, sumInterest float64
			for _, entry := range result.Schedule {
				sumPayments += entry.Payment
				sumInterest += entry.Interest
			}

			if math.Abs(result.TotalPaid-sumPayments) > constants.CurrencyTolerance {
				t.Errorf("TotalPaid = %.2f, sum of payments = %.2f", result.TotalPaid, sumPayments)
			}
			if math.Abs(result.TotalInterest-sumInterest) > constants.CurrencyTolerance {
				t.Errorf("TotalInterest = %.2f, sum of interest = %.2f", result.TotalInterest, sumInterest)
			}

			// Everything paid beyond interest is the principal.
			if math.Abs((result.TotalPaid-result.TotalInterest)-tt.principal) > 1.0 {
				t.Errorf("TotalPaid - TotalInterest = %.2f, expected principal %.2f",
					result.TotalPaid-result.TotalInterest, tt.principal)
			}
		})
	}
}
