package format

import "strings"

// NormalizeAmount reshapes a raw text fragment into display form as the user
// types: everything except digits and decimal points is removed, any extra
// decimal points collapse into the first one, and the integer portion gains a
// group separator every three digits. It is cosmetic masking, not validation;
// no input is ever rejected.
//
//	"1234567" -> "1,234,567"
//	"12.3.4"  -> "12.34"
//	"£2,000x" -> "2,000"
func NormalizeAmount(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if cleaned == "" {
		return ""
	}

	intPart, decPart, hasPoint := strings.Cut(cleaned, ".")
	if !hasPoint {
		return groupDigits(intPart)
	}

	// Later fragments join the first decimal portion: "12.3.4" keeps a single
	// point and becomes "12.34".
	decPart = strings.ReplaceAll(decPart, ".", "")
	return groupDigits(intPart) + "." + decPart
}
