package validation

import (
	"errors"
	"fmt"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/amortize"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
)

// ErrInvalidInput marks lease terms rejected by range checks. The computation
// engine performs no validation of its own, so every caller must pass terms
// through ValidateTerms first.
var ErrInvalidInput = errors.New("invalid input")

// ValidateTerms checks lease terms against the supported ranges: principal
// strictly positive, duration between 1 and 30 years, and the model's rate
// field within its bounds. A zero principal is rejected rather than producing
// a silent zero payment.
func ValidateTerms(terms amortize.LeaseTerms) error {
	if terms.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidInput, terms.Principal)
	}
	if terms.Years < constants.MinDurationYears || terms.Years > constants.MaxDurationYears {
		return fmt.Errorf("%w: duration must be between %d and %d years, got %d",
			ErrInvalidInput, constants.MinDurationYears, constants.MaxDurationYears, terms.Years)
	}

	switch terms.Model {
	case amortize.FixedRate:
		if terms.AnnualRatePercent < 0 || terms.AnnualRatePercent > constants.MaxAnnualRatePercent {
			return fmt.Errorf("%w: annual rate must be between 0 and %.1f percent, got %.2f",
				ErrInvalidInput, constants.MaxAnnualRatePercent, terms.AnnualRatePercent)
		}
	case amortize.DecliningBalance:
		if terms.RatePerLakh < 0 {
			return fmt.Errorf("%w: rate per lakh must not be negative, got %.2f",
				ErrInvalidInput, terms.RatePerLakh)
		}
	default:
		return fmt.Errorf("%w: unknown amortization model %q", ErrInvalidInput, terms.Model)
	}

	return nil
}
