// Package constants provides shared constants for the leasing-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// LakhUnits is the denomination basis for the declining-balance charge;
	// the charge is quoted per 100,000 units of outstanding principal
	LakhUnits = 100000.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyLabel is the display label for monetary amounts
	CurrencyLabel = "LKR"
)

// Input bounds enforced before a calculation is invoked
const (
	// MinDurationYears is the shortest supported lease duration
	MinDurationYears = 1

	// MaxDurationYears is the longest supported lease duration
	MaxDurationYears = 30

	// MaxAnnualRatePercent is the highest supported fixed annual rate
	MaxAnnualRatePercent = 50.0
)

// Calculation defaults mirroring the original input form
const (
	// DefaultPrincipal is the default lease amount (20 lakhs)
	DefaultPrincipal = 2000000.0

	// DefaultDurationYears is the default lease duration
	DefaultDurationYears = 5

	// DefaultAnnualRatePercent is the default fixed annual rate
	DefaultAnnualRatePercent = 11.0
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

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultRateLimitCapacity is the default request budget per client per window
	DefaultRateLimitCapacity = 30

	// DefaultRateLimitWindowSeconds is the refill window for the rate limiter
	DefaultRateLimitWindowSeconds = 60
)
