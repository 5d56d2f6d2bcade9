// Package output provides utilities for formatting and displaying computed
// mortgages.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
// Mortgages that have not been processed yet are skipped.
func PrettyFormat(w io.Writer, currency string, mortgages []config.Mortgage) {
	p := message.NewPrinter(language.English)

	nameWidth := len("Mortgage")
	for _, m := range mortgages {
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
	}

	fmt.Fprintf(w, "%-*s | %-13s | %-16s | %s\n", nameWidth, "Mortgage", "Type", "Monthly Payment", "Total Repayment")
	fmt.Fprintf(w, "%-*s | %-13s | %-16s | %s\n", nameWidth, "________", "____", "_______________", "_______________")
	for _, m := range mortgages {
		if m.Result == nil {
			continue
		}
		_, _ = p.Fprintf(w, "%-*s | %-13s | %s%.2f | %s%.2f\n",
			nameWidth, m.Name, m.ParsedType.Label(),
			currency, m.Result.MonthlyPayment,
			currency, m.Result.TotalPayment)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, mortgages []config.Mortgage) {
	fmt.Fprintf(w, `"name","type","principal","termYears","annualInterestRate","monthlyPayment","totalRepayment"`)
	fmt.Fprintf(w, "\n")
	for _, m := range mortgages {
		if m.Result == nil {
			continue
		}
		fmt.Fprintf(w, `"%s","%s","%.2f","%d","%.2f","%.2f","%.2f"`,
			m.Name, m.ParsedType, m.Principal, m.TermYears, m.AnnualInterestRate,
			m.Result.MonthlyPayment, m.Result.TotalPayment)
		fmt.Fprintf(w, "\n")
	}
}
