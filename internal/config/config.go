// Package config defines the rate and policy tables that drive every
// calculator and includes functions for loading and validating them.
//
// The compiled-in defaults reflect the 2026 tax-year tables; a YAML config
// file may override any individual threshold so that future tax-year updates
// are a data change, not a logic change.
package config

import (
	"fmt"
	"math"

	"github.com/jwpark-dev/homeplan/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for homeplan.
type Configuration struct {
	Tables  Tables
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json
}

// Tables aggregates every rate and policy table.
type Tables struct {
	AcquisitionTax    AcquisitionTaxTable
	FirstTimeBuyer    FirstTimeBuyerTable
	BrokerageFee      []BrokerageBracket
	CapitalGains      CapitalGainsTable
	LongTermDeduction LongTermDeductionTable
	Didimdol          DidimdolTable
	Newborn           NewbornTable
	BankMortgage      BankMortgageTable
	OtherCosts        OtherCostsTable
	LoanTermYears     int
}

// AcquisitionTaxTable holds the purchase-time tax rates. Between Tier1Price
// and Tier2Price the single-home rate rises linearly from LowRate to HighRate.
type AcquisitionTaxTable struct {
	SingleHomeLowRate          float64
	SingleHomeHighRate         float64
	Tier1Price                 int64
	Tier2Price                 int64
	TwoHomeRate                float64
	TwoHomeRegulatedRate       float64
	ThreePlusHomeRate          float64
	ThreePlusHomeRegulatedRate float64
	RuralSpecialTaxRate        float64
	RuralSpecialTaxAreaOver    float64
	LocalEducationTaxRate      float64
}

// FirstTimeBuyerTable holds the first-time buyer acquisition tax relief terms.
type FirstTimeBuyerTable struct {
	MaxReduction int64
	IncomeLimit  int64
	PriceLimit   int64
}

// BrokerageBracket is one row of the brokerage fee rate table. UpperBound 0
// means the bracket is unbounded; Cap 0 means the fee is uncapped.
type BrokerageBracket struct {
	UpperBound int64
	Rate       float64
	Cap        int64
}

// TaxBracket is one row of the progressive capital gains rate table.
// UpperBound 0 means the bracket is unbounded.
type TaxBracket struct {
	UpperBound int64
	Rate       float64
	Deduction  int64
}

// CapitalGainsTable holds the sale-time tax parameters.
type CapitalGainsTable struct {
	Brackets            []TaxBracket
	ExpenseRate         float64
	BasicDeduction      int64
	ExemptionPriceLimit int64
	MinHoldingMonths    int
	MinResidenceMonths  int
}

// LongTermDeductionTable holds the long-term holding deduction schedule for
// single-household owners.
type LongTermDeductionTable struct {
	HoldingRatePerYear   float64
	HoldingMax           float64
	ResidenceRatePerYear float64
	ResidenceMax         float64
	MinHoldingYears      int
}

// DidimdolTable holds the Didimdol subsidized loan terms.
type DidimdolTable struct {
	IncomeLimitSingle   int64
	IncomeLimitMarried  int64
	IncomeLimitNewlywed int64
	PriceLimitGeneral   int64
	PriceLimitNewlywed  int64
	LoanLimitGeneral    int64
	LoanLimitNewlywed   int64
	BaseRate            float64
	NewlywedRate        float64
	LTV                 float64
}

// NewbornTable holds the newborn-special subsidized loan terms.
type NewbornTable struct {
	IncomeLimit int64
	PriceLimit  int64
	LoanLimit   int64
	MinRate     float64
	MaxRate     float64
	LTV         float64
}

// BankMortgageTable holds the conventional bank mortgage terms.
type BankMortgageTable struct {
	RegulatedLTV   float64
	UnregulatedLTV float64
	DSR            float64
	MinRate        float64
	MaxRate        float64
}

// BondTier is one price tier of the national housing bond purchase schedule.
// UpperBound 0 means the tier is unbounded.
type BondTier struct {
	UpperBound int64
	Rate       float64
}

// OtherCostsTable holds the flat ancillary purchase costs.
type OtherCostsTable struct {
	LegalFeeBase     int64
	LegalFeePer100M  int64
	LegalFeeMax      int64
	BondTiers        []BondTier
	BondDiscountRate float64
	// The mid and large stamp duty tiers currently carry the same amount but
	// are kept distinct so they can diverge in a future tax year.
	StampDutySmallLimit int64
	StampDutySmall      int64
	StampDutyMidLimit   int64
	StampDutyMid        int64
	StampDutyLarge      int64
	MovingCost          int64
}

// DefaultTables returns the compiled-in 2026 tables.
func DefaultTables() Tables {
	return Tables{
		AcquisitionTax: AcquisitionTaxTable{
			SingleHomeLowRate:          constants.AcquisitionSingleHomeLowRate,
			SingleHomeHighRate:         constants.AcquisitionSingleHomeHighRate,
			Tier1Price:                 constants.AcquisitionTier1Price,
			Tier2Price:                 constants.AcquisitionTier2Price,
			TwoHomeRate:                constants.AcquisitionTwoHomeRate,
			TwoHomeRegulatedRate:       constants.AcquisitionTwoHomeRate,
			ThreePlusHomeRate:          constants.AcquisitionThreePlusHomeRate,
			ThreePlusHomeRegulatedRate: constants.AcquisitionThreePlusHomeRate,
			RuralSpecialTaxRate:        constants.RuralSpecialTaxRate,
			RuralSpecialTaxAreaOver:    constants.RuralSpecialTaxAreaOver,
			LocalEducationTaxRate:      constants.LocalEducationTaxRate,
		},
		FirstTimeBuyer: FirstTimeBuyerTable{
			MaxReduction: constants.FirstTimeBuyerMaxReduction,
			IncomeLimit:  constants.FirstTimeBuyerIncomeLimit,
			PriceLimit:   constants.FirstTimeBuyerPriceLimit,
		},
		BrokerageFee: []BrokerageBracket{
			{UpperBound: 50_000_000, Rate: 0.006, Cap: 250_000},
			{UpperBound: 200_000_000, Rate: 0.005, Cap: 800_000},
			{UpperBound: 600_000_000, Rate: 0.004},
			{UpperBound: 900_000_000, Rate: 0.005},
			{Rate: 0.009},
		},
		CapitalGains: CapitalGainsTable{
			Brackets: []TaxBracket{
				{UpperBound: 14_000_000, Rate: 0.06},
				{UpperBound: 50_000_000, Rate: 0.15, Deduction: 1_260_000},
				{UpperBound: 88_000_000, Rate: 0.24, Deduction: 5_760_000},
				{UpperBound: 150_000_000, Rate: 0.35, Deduction: 15_440_000},
				{UpperBound: 300_000_000, Rate: 0.38, Deduction: 19_940_000},
				{UpperBound: 500_000_000, Rate: 0.40, Deduction: 25_940_000},
				{UpperBound: 1_000_000_000, Rate: 0.42, Deduction: 35_940_000},
				{Rate: 0.45, Deduction: 65_940_000},
			},
			ExpenseRate:         constants.CapitalGainsExpenseRate,
			BasicDeduction:      constants.CapitalGainsBasicDeduction,
			ExemptionPriceLimit: constants.ExemptionPriceLimit,
			MinHoldingMonths:    constants.ExemptionMinHoldingMonths,
			MinResidenceMonths:  constants.ExemptionMinResidenceMonths,
		},
		LongTermDeduction: LongTermDeductionTable{
			HoldingRatePerYear:   constants.LongTermHoldingRatePerYear,
			HoldingMax:           constants.LongTermHoldingMax,
			ResidenceRatePerYear: constants.LongTermResidenceRatePerYear,
			ResidenceMax:         constants.LongTermResidenceMax,
			MinHoldingYears:      constants.LongTermMinHoldingYears,
		},
		Didimdol: DidimdolTable{
			IncomeLimitSingle:   60_000_000,
			IncomeLimitMarried:  70_000_000,
			IncomeLimitNewlywed: 85_000_000,
			PriceLimitGeneral:   500_000_000,
			PriceLimitNewlywed:  600_000_000,
			LoanLimitGeneral:    250_000_000,
			LoanLimitNewlywed:   400_000_000,
			BaseRate:            0.027,
			NewlywedRate:        0.021,
			LTV:                 0.70,
		},
		Newborn: NewbornTable{
			IncomeLimit: 130_000_000,
			PriceLimit:  900_000_000,
			LoanLimit:   500_000_000,
			MinRate:     0.016,
			MaxRate:     0.033,
			LTV:         0.80,
		},
		BankMortgage: BankMortgageTable{
			RegulatedLTV:   0.40,
			UnregulatedLTV: 0.50,
			DSR:            0.40,
			MinRate:        0.040,
			MaxRate:        0.050,
		},
		OtherCosts: OtherCostsTable{
			LegalFeeBase:    500_000,
			LegalFeePer100M: 100_000,
			LegalFeeMax:     1_500_000,
			BondTiers: []BondTier{
				{UpperBound: 200_000_000, Rate: 0.01},
				{UpperBound: 500_000_000, Rate: 0.015},
				{Rate: 0.02},
			},
			BondDiscountRate:    0.05,
			StampDutySmallLimit: 100_000_000,
			StampDutySmall:      150_000,
			StampDutyMidLimit:   1_000_000_000,
			StampDutyMid:        350_000,
			StampDutyLarge:      350_000,
			MovingCost:          1_000_000,
		},
		LoanTermYears: constants.DefaultLoanTermYears,
	}
}

// DefaultConfiguration returns a Configuration carrying the compiled-in
// tables and empty logging/output sections.
func DefaultConfiguration() *Configuration {
	return &Configuration{Tables: DefaultTables()}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, overlaying it onto the compiled-in defaults. An empty
// path returns the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := DefaultConfiguration()
	if configPath == "" {
		return configuration, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	// Absent keys leave the defaults untouched.
	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return configuration, nil
}

// ValidateTables performs general validation of the rate tables and returns
// warnings for anything that looks inconsistent.
func (c *Configuration) ValidateTables() []string {
	var warnings []string
	t := c.Tables

	if t.AcquisitionTax.Tier1Price >= t.AcquisitionTax.Tier2Price {
		warnings = append(warnings, "acquisition tax tier 1 price is not below tier 2 price")
	}
	if t.AcquisitionTax.SingleHomeLowRate > t.AcquisitionTax.SingleHomeHighRate {
		warnings = append(warnings, "acquisition tax single-home low rate exceeds high rate")
	}

	if len(t.BrokerageFee) == 0 {
		warnings = append(warnings, "brokerage fee table is empty")
	} else {
		if t.BrokerageFee[len(t.BrokerageFee)-1].UpperBound != 0 {
			warnings = append(warnings, "brokerage fee table has no unbounded final bracket")
		}
		if !bracketsAscend(t.BrokerageFee, func(b BrokerageBracket) int64 { return b.UpperBound }) {
			warnings = append(warnings, "brokerage fee brackets are not in ascending order")
		}
	}

	if len(t.CapitalGains.Brackets) == 0 {
		warnings = append(warnings, "capital gains bracket table is empty")
	} else {
		if t.CapitalGains.Brackets[len(t.CapitalGains.Brackets)-1].UpperBound != 0 {
			warnings = append(warnings, "capital gains bracket table has no unbounded final bracket")
		}
		if !bracketsAscend(t.CapitalGains.Brackets, func(b TaxBracket) int64 { return b.UpperBound }) {
			warnings = append(warnings, "capital gains brackets are not in ascending order")
		}
	}

	for _, ltv := range []float64{t.Didimdol.LTV, t.Newborn.LTV, t.BankMortgage.RegulatedLTV, t.BankMortgage.UnregulatedLTV} {
		if ltv <= 0 || ltv > 1 || math.IsNaN(ltv) {
			warnings = append(warnings, "loan LTV ratios must be fractions in (0, 1]")
			break
		}
	}

	if t.LoanTermYears <= 0 {
		warnings = append(warnings, "loan term years must be positive")
	}

	return warnings
}

// bracketsAscend checks that bounded bracket upper bounds strictly increase,
// ignoring a trailing unbounded bracket.
func bracketsAscend[T any](brackets []T, bound func(T) int64) bool {
	var previous int64
	for i, bracket := range brackets {
		b := bound(bracket)
		if b == 0 {
			// Unbounded brackets are only valid in the final position.
			return i == len(brackets)-1
		}
		if b <= previous {
			return false
		}
		previous = b
	}
	return true
}
