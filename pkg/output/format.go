// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/amortize"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
// previewMonths limits how many schedule rows are displayed; zero or negative
// shows the full schedule. Truncation is display-only, the totals always
// cover the full term.
func PrettyFormat(terms amortize.LeaseTerms, result amortize.Result, previewMonths int) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Results for %s lease ---\n", terms.Model)
	_, _ = p.Printf("Monthly Payment: %s %.2f\n", constants.CurrencyLabel, result.MonthlyPayment)
	_, _ = p.Printf("Total Amount Paid: %s %.2f\n", constants.CurrencyLabel, result.TotalPaid)
	_, _ = p.Printf("Total Interest: %s %.2f\n", constants.CurrencyLabel, result.TotalInterest)
	_, _ = p.Printf("Interest as %% of Principal: %.2f%%\n", result.InterestShareOfPrincipal(terms.Principal))
	fmt.Printf("Months to Payoff: %d\n", result.MonthsToPayoff)

	rows := result.Schedule
	if previewMonths > 0 && previewMonths < len(rows) {
		rows = rows[:previewMonths]
		fmt.Printf("\nPayment Schedule (first %d months of %d):\n", previewMonths, len(result.Schedule))
	} else {
		fmt.Printf("\nPayment Schedule:\n")
	}
	fmt.Printf("Month | Payment       | Principal     | Interest      | Balance\n")
	fmt.Printf("_____ | _____________ | _____________ | _____________ | _____________\n")
	for _, entry := range rows {
		_, _ = p.Printf("%5d | %13.2f | %13.2f | %13.2f | %13.2f\n",
			entry.Month, entry.Payment, entry.Principal, entry.Interest, entry.RemainingBalance)
	}
}

// CsvFormat outputs in comma-separated value format. The full schedule is
// always emitted.
func CsvFormat(result amortize.Result) {
	fmt.Printf("\"month\",\"payment\",\"principal\",\"interest\",\"balance\"\n")
	for _, entry := range result.Schedule {
		fmt.Printf("\"%d\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			entry.Month, entry.Payment, entry.Principal, entry.Interest, entry.RemainingBalance)
	}
}
