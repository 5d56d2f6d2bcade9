// Package format provides currency rendering and input masking helpers.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Currency returns a currency string with the given symbol prefix and
// thousands separators (e.g., "£1,234.56", "-£1,234.56").
func Currency(symbol string, amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with
// separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	return groupDigits(intPart) + "." + decPart
}

// groupDigits inserts a comma every three digits of a digits-only string,
// counting from the right. Non-digit handling is the caller's concern.
func groupDigits(digits string) string {
	if len(digits) <= constants.DigitGroupSize {
		return digits
	}

	var builder strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%constants.DigitGroupSize == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
