// Package constants provides shared constants for the homeplan application.
package constants

// DateLayout is the format expected for dates in config and scenario files
// and is also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DefaultLoanTermYears is the repayment term assumed for every mortgage
	// product when computing monthly payments
	DefaultLoanTermYears = 30

	// VATRate is the value-added tax rate applied to brokerage fees
	VATRate = 0.10

	// ManWon is 10,000 won, the unit commonly used for income display
	ManWon int64 = 10_000

	// EokWon is 100,000,000 won, the unit commonly used for price display
	EokWon int64 = 100_000_000
)

// Acquisition tax defaults (2026 tables)
const (
	// AcquisitionSingleHomeLowRate applies to single-home purchases at or
	// below AcquisitionTier1Price
	AcquisitionSingleHomeLowRate = 0.01

	// AcquisitionSingleHomeHighRate applies to single-home purchases above
	// AcquisitionTier2Price
	AcquisitionSingleHomeHighRate = 0.03

	// AcquisitionTier1Price is the upper bound of the 1% single-home bracket
	AcquisitionTier1Price int64 = 600_000_000

	// AcquisitionTier2Price is the upper bound of the interpolated bracket
	AcquisitionTier2Price int64 = 900_000_000

	// AcquisitionTwoHomeRate applies when the purchase makes two owned homes
	AcquisitionTwoHomeRate = 0.08

	// AcquisitionThreePlusHomeRate applies from the third owned home onward
	AcquisitionThreePlusHomeRate = 0.12

	// RuralSpecialTaxRate is charged on the base tax for large units
	RuralSpecialTaxRate = 0.10

	// RuralSpecialTaxAreaOver is the exclusive floor-area threshold in square
	// meters above which rural special tax applies
	RuralSpecialTaxAreaOver = 85.0

	// LocalEducationTaxRate is always charged on the base tax
	LocalEducationTaxRate = 0.10
)

// First-time buyer acquisition tax relief defaults
const (
	FirstTimeBuyerMaxReduction int64 = 2_000_000
	FirstTimeBuyerIncomeLimit  int64 = 70_000_000
	FirstTimeBuyerPriceLimit   int64 = 1_200_000_000
)

// Brokerage fee defaults
const (
	// BrokerageFallbackRate is used if no bracket matches; the unbounded final
	// bracket makes this unreachable, it exists as an explicit default branch
	BrokerageFallbackRate = 0.009
)

// Capital gains tax defaults
const (
	// CapitalGainsExpenseRate estimates deductible acquisition expenses
	CapitalGainsExpenseRate = 0.02

	// CapitalGainsBasicDeduction is the flat per-sale deduction
	CapitalGainsBasicDeduction int64 = 2_500_000

	// ExemptionPriceLimit is the maximum sale price for full exemption
	ExemptionPriceLimit int64 = 1_200_000_000

	// ExemptionMinHoldingMonths is the minimum holding period for exemption
	ExemptionMinHoldingMonths = 24

	// ExemptionMinResidenceMonths is the minimum residence period for exemption
	ExemptionMinResidenceMonths = 24
)

// Long-term holding deduction defaults (single-household owners)
const (
	LongTermHoldingRatePerYear   = 0.08
	LongTermHoldingMax           = 0.40
	LongTermResidenceRatePerYear = 0.08
	LongTermResidenceMax         = 0.40
	LongTermMinHoldingYears      = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default rate-table configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// History constants
const (
	// MaxHistoryEntries caps the calculation history at the most recent entries
	MaxHistoryEntries = 50
)
