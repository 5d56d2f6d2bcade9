// Package constants provides shared constants for the mortgage-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Formatting constants
const (
	// DefaultCurrencySymbol is the symbol prefixed to formatted amounts unless
	// the configuration overrides it
	DefaultCurrencySymbol = "£"

	// DigitGroupSize is the number of integer digits between group separators
	DigitGroupSize = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size for the
	// calculation API (64 KB)
	DefaultMaxBodyBytes int64 = 64 * 1024
)

// Validation constants
const (
	// LongTermWarningYears is the term length beyond which configuration
	// validation emits a warning
	LongTermWarningYears = 40
)
