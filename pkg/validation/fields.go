// Package validation provides form field validation for mortgage inputs.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

// Field names shared by the HTTP API, the web form, and the CLI one-shot mode.
const (
	FieldPrincipal          = "principal"
	FieldTermYears          = "termYears"
	FieldAnnualInterestRate = "annualInterestRate"
	FieldMortgageType       = "mortgageType"
)

// FieldError flags one invalid form field. There is a single error category;
// the message only distinguishes blank from non-positive input for display.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormInput carries the raw text of a calculation request exactly as
// submitted. All values are strings so that group separators ("200,000")
// survive until ParseAmount strips them.
type FormInput struct {
	Principal          string `json:"principal"`
	TermYears          string `json:"termYears"`
	AnnualInterestRate string `json:"annualInterestRate"`
	MortgageType       string `json:"mortgageType"`
}

// ParseAmount parses raw numeric text, tolerating group separators.
// Non-numeric input parses to 0, which then fails the positivity checks;
// missing and malformed values deliberately share one error category.
func ParseAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// ValidateFields checks the three numeric fields of a calculation request.
// A field fails when its trimmed text is empty or its parsed value is not
// positive; the term must additionally be a whole number of years. Returns
// the per-field failures and the overall validity.
func ValidateFields(principal, term, rate string) ([]FieldError, bool) {
	var fieldErrors []FieldError
	fieldErrors = appendAmountError(fieldErrors, FieldPrincipal, principal)
	fieldErrors = appendTermError(fieldErrors, term)
	fieldErrors = appendAmountError(fieldErrors, FieldAnnualInterestRate, rate)
	return fieldErrors, len(fieldErrors) == 0
}

// ParseForm validates a raw form submission and converts it into a
// calculation input. On failure the returned input is the zero value and the
// slice holds one entry per failing field; presentation is the caller's
// concern.
func ParseForm(form FormInput) (mortgage.Input, []FieldError) {
	fieldErrors, _ := ValidateFields(form.Principal, form.TermYears, form.AnnualInterestRate)

	mortgageType, err := mortgage.ParseType(form.MortgageType)
	if err != nil {
		message := "This field is required"
		if strings.TrimSpace(form.MortgageType) != "" {
			message = "Unknown mortgage type"
		}
		fieldErrors = append(fieldErrors, FieldError{Field: FieldMortgageType, Message: message})
	}

	if len(fieldErrors) > 0 {
		return mortgage.Input{}, fieldErrors
	}

	return mortgage.Input{
		Principal:         ParseAmount(form.Principal),
		TermYears:         int(ParseAmount(form.TermYears)),
		AnnualRatePercent: ParseAmount(form.AnnualInterestRate),
		Type:              mortgageType,
	}, nil
}

func appendAmountError(fieldErrors []FieldError, field, raw string) []FieldError {
	if strings.TrimSpace(raw) == "" {
		return append(fieldErrors, FieldError{Field: field, Message: "This field is required"})
	}
	if ParseAmount(raw) <= 0 {
		return append(fieldErrors, FieldError{Field: field, Message: "Must be greater than zero"})
	}
	return fieldErrors
}

func appendTermError(fieldErrors []FieldError, raw string) []FieldError {
	if strings.TrimSpace(raw) == "" {
		return append(fieldErrors, FieldError{Field: FieldTermYears, Message: "This field is required"})
	}
	value := ParseAmount(raw)
	if value <= 0 {
		return append(fieldErrors, FieldError{Field: FieldTermYears, Message: "Must be greater than zero"})
	}
	if value != math.Trunc(value) {
		return append(fieldErrors, FieldError{Field: FieldTermYears, Message: "Must be a whole number of years"})
	}
	return fieldErrors
}
