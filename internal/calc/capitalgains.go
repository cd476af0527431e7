package calc

import (
	"time"

	"github.com/jwpark-dev/homeplan/pkg/datetime"
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
	"go.uber.org/zap"
)

// CheckExemption evaluates the four capital gains exemption conditions for a
// sale at the given price, as of now.
func (c *Calculator) CheckExemption(property PropertyForSale, salePrice int64) (bool, ExemptionConditions) {
	return c.CheckExemptionAt(property, salePrice, time.Now())
}

// CheckExemptionAt is CheckExemption with an injectable evaluation time.
func (c *Calculator) CheckExemptionAt(property PropertyForSale, salePrice int64, asOf time.Time) (bool, ExemptionConditions) {
	t := c.tables.CapitalGains
	holdingMonths := datetime.MonthsBetween(property.PurchaseDate, asOf)

	conditions := ExemptionConditions{
		SingleHousehold:     property.SingleHousehold,
		HoldingOver2Years:   holdingMonths >= t.MinHoldingMonths,
		ResidenceOver2Years: property.ResidenceTotalMonths() >= t.MinResidenceMonths,
		PriceUnderLimit:     salePrice <= t.ExemptionPriceLimit,
	}

	return conditions.All(), conditions
}

// LongTermDeductionRate returns the long-term holding deduction rate. The
// deduction is reserved for single-household owners past the minimum holding
// period; each leg accrues per year up to its cap.
func (c *Calculator) LongTermDeductionRate(holdingYears, residenceYears int, singleHousehold bool) float64 {
	t := c.tables.LongTermDeduction

	if !singleHousehold || holdingYears < t.MinHoldingYears {
		return 0
	}

	holdingRate := min(float64(holdingYears)*t.HoldingRatePerYear, t.HoldingMax)
	residenceRate := min(float64(residenceYears)*t.ResidenceRatePerYear, t.ResidenceMax)

	return holdingRate + residenceRate
}

// ProgressiveTax applies the progressive capital gains brackets to a tax base.
func (c *Calculator) ProgressiveTax(taxBase int64) int64 {
	if taxBase <= 0 {
		return 0
	}

	brackets := c.tables.CapitalGains.Brackets
	for _, bracket := range brackets {
		if bracket.UpperBound == 0 || taxBase <= bracket.UpperBound {
			return moneyutil.Floor(float64(taxBase)*bracket.Rate) - bracket.Deduction
		}
	}

	// Unreachable while the final bracket is unbounded; fall through to the
	// highest bracket rather than silently returning zero.
	last := brackets[len(brackets)-1]
	return moneyutil.Floor(float64(taxBase)*last.Rate) - last.Deduction
}

// CapitalGainsTax computes the tax on a sale from its raw parameters.
// Deductible expenses are estimated as a flat fraction of the purchase price.
func (c *Calculator) CapitalGainsTax(purchasePrice, salePrice int64, holdingYears, residenceYears int, singleHousehold bool) int64 {
	gain := salePrice - purchasePrice
	if gain <= 0 {
		return 0
	}

	t := c.tables.CapitalGains
	expenses := moneyutil.Share(purchasePrice, t.ExpenseRate)

	deductionRate := c.LongTermDeductionRate(holdingYears, residenceYears, singleHousehold)
	deduction := moneyutil.Floor(float64(gain-expenses) * deductionRate)

	taxableIncome := gain - expenses - deduction
	taxBase := max(int64(0), taxableIncome-t.BasicDeduction)

	return c.ProgressiveTax(taxBase)
}

// SaleResult computes the composite outcome of selling a property as of now:
// exemption verdict, capital gains tax, brokerage fee, and net proceeds.
func (c *Calculator) SaleResult(property PropertyForSale) SaleResult {
	return c.SaleResultAt(property, time.Now())
}

// SaleResultAt is SaleResult with an injectable evaluation time.
func (c *Calculator) SaleResultAt(property PropertyForSale, asOf time.Time) SaleResult {
	salePrice := property.CurrentValue
	holdingMonths := datetime.MonthsBetween(property.PurchaseDate, asOf)
	holdingYears := holdingMonths / 12

	gain := salePrice - property.PurchasePrice

	isExempt, conditions := c.CheckExemptionAt(property, salePrice, asOf)

	deductionRate := c.LongTermDeductionRate(holdingYears, property.ResidenceYears, property.SingleHousehold)

	var tax, longTermDeduction int64
	if !isExempt && gain > 0 {
		tax = c.CapitalGainsTax(property.PurchasePrice, salePrice, holdingYears, property.ResidenceYears, property.SingleHousehold)

		// Recomputed here for display; the tax path above folds it in.
		expenses := moneyutil.Share(property.PurchasePrice, c.tables.CapitalGains.ExpenseRate)
		longTermDeduction = moneyutil.Floor(float64(gain-expenses) * deductionRate)
	}

	brokerageFee := c.BrokerageFee(salePrice)

	result := SaleResult{
		CapitalGain:           gain,
		HoldingYears:          holdingYears,
		HoldingMonths:         holdingMonths % 12,
		CapitalGainsTax:       tax,
		LongTermDeduction:     longTermDeduction,
		LongTermDeductionRate: deductionRate,
		BrokerageFee:          brokerageFee,
		NetProceeds:           salePrice - tax - brokerageFee.Total,
		TaxExempt:             isExempt,
		ExemptionConditions:   conditions,
	}

	c.logger.Debug("computed sale result",
		zap.String("op", "calc.SaleResult"),
		zap.Int64("salePrice", salePrice),
		zap.Int64("capitalGainsTax", tax),
		zap.Bool("taxExempt", isExempt),
	)

	return result
}
