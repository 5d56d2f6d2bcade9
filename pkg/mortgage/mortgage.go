// Package mortgage provides the repayment calculations for the two supported
// mortgage types.
package mortgage

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Type identifies how a mortgage is repaid.
type Type string

const (
	// TypeRepayment is an amortizing mortgage; each payment covers interest
	// and part of the principal.
	TypeRepayment Type = "repayment"

	// TypeInterestOnly covers only accrued interest each month; the principal
	// is repaid in full at the end of the term.
	TypeInterestOnly Type = "interestOnly"
)

// ParseType maps a raw spelling to a mortgage Type. Matching is
// case-insensitive and ignores "-", "_", and space separators, so
// "Interest-Only" and "interest_only" both resolve to TypeInterestOnly.
func ParseType(raw string) (Type, error) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer("-", "", "_", "", " ", "").Replace(cleaned)
	switch cleaned {
	case "repayment":
		return TypeRepayment, nil
	case "interestonly":
		return TypeInterestOnly, nil
	}
	return "", fmt.Errorf("unknown mortgage type %q", raw)
}

// Label returns the human-readable name of the mortgage type.
func (t Type) Label() string {
	if t == TypeInterestOnly {
		return "Interest-only"
	}
	return "Repayment"
}

// Input holds the parameters for one calculation. Values are transient;
// callers construct a fresh Input per request and guarantee positive inputs
// upstream (see pkg/validation and internal/config).
type Input struct {
	Principal         float64
	TermYears         int
	AnnualRatePercent float64
	Type              Type
}

// Result holds the computed payment figures. Amounts are unrounded; rounding
// to two decimals happens only at display time.
type Result struct {
	MonthlyPayment float64
	TotalPayment   float64
}

// NumberOfPayments returns the number of monthly payments over the term.
func NumberOfPayments(termYears int) int {
	return termYears * constants.MonthsPerYear
}

// MonthlyRate converts an annual percentage rate to a monthly fractional rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Calculate computes the monthly and total payment for the given mortgage.
func Calculate(input Input) Result {
	n := float64(NumberOfPayments(input.TermYears))
	periodicInterestRate := MonthlyRate(input.AnnualRatePercent)

	if input.Type == TypeInterestOnly {
		monthlyPayment := input.Principal * periodicInterestRate
		return Result{
			MonthlyPayment: monthlyPayment,
			TotalPayment:   monthlyPayment*n + input.Principal,
		}
	}

	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		monthlyPayment := input.Principal / n
		return Result{
			MonthlyPayment: monthlyPayment,
			TotalPayment:   monthlyPayment * n,
		}
	}

	power := math.Pow(1.00+periodicInterestRate, n)
	discountFactor := (power - 1.00) / power
	monthlyPayment := input.Principal * periodicInterestRate / discountFactor
	return Result{
		MonthlyPayment: monthlyPayment,
		TotalPayment:   monthlyPayment * n,
	}
}
