package amortize

import (
	"math"
	"testing"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Model
		expectErr bool
	}{
		{"Fixed rate", "fixed-rate", FixedRate, false},
		{"Declining balance", "declining-balance", DecliningBalance, false},
		{"Unknown model", "balloon", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := ParseModel(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseModel(%q) expected error, got %q", tt.input, model)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseModel(%q) error = %v", tt.input, err)
				return
			}
			if model != tt.expected {
				t.Errorf("ParseModel(%q) = %q, expected %q", tt.input, model, tt.expected)
			}
		})
	}
}

func TestCalculatorCompute(t *testing.T) {
	calc := NewCalculator(nil)

	fixed, err := calc.Compute(LeaseTerms{
		Model:             FixedRate,
		Principal:         2000000,
		Years:             5,
		AnnualRatePercent: 11,
	})
	if err != nil {
		t.Fatalf("Compute(fixed-rate) error = %v", err)
	}
	if fixed.MonthsToPayoff != 60 {
		t.Errorf("fixed-rate MonthsToPayoff = %d, expected 60", fixed.MonthsToPayoff)
	}

	declining, err := calc.Compute(LeaseTerms{
		Model:       DecliningBalance,
		Principal:   2000000,
		Years:       5,
		RatePerLakh: 1080,
	})
	if err != nil {
		t.Fatalf("Compute(declining-balance) error = %v", err)
	}
	if declining.MonthsToPayoff != 60 {
		t.Errorf("declining-balance MonthsToPayoff = %d, expected 60", declining.MonthsToPayoff)
	}

	if _, err := calc.Compute(LeaseTerms{Model: "balloon"}); err == nil {
		t.Error("Compute() with unknown model expected error")
	}
}

func TestInterestShareOfPrincipal(t *testing.T) {
	result := Result{TotalInterest: 500000}

	share := result.InterestShareOfPrincipal(2000000)
	if math.Abs(share-25.0) > 0.001 {
		t.Errorf("InterestShareOfPrincipal() = %.3f, expected 25.000", share)
	}

	if got := result.InterestShareOfPrincipal(0); got != 0 {
		t.Errorf("InterestShareOfPrincipal(0) = %.3f, expected 0", got)
	}
}
