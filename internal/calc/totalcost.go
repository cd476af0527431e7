package calc

import (
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
	"go.uber.org/zap"
)

// TotalCost aggregates acquisition tax, brokerage fee, and the flat ancillary
// costs of a purchase into a grand total.
func (c *Calculator) TotalCost(housing Housing, buyer Buyer) TotalCost {
	price := housing.Price

	acquisitionTax := c.AcquisitionTax(housing, buyer)
	brokerageFee := c.BrokerageFee(price)
	legalFee := c.legalFee(price)
	housingBond := c.housingBondDiscount(price)
	stampDuty := c.stampDuty(price)
	movingCost := c.tables.OtherCosts.MovingCost

	totalAdditional := acquisitionTax.Total + brokerageFee.Total + legalFee + housingBond + stampDuty + movingCost

	result := TotalCost{
		AcquisitionTax:  acquisitionTax,
		BrokerageFee:    brokerageFee,
		LegalFee:        legalFee,
		HousingBond:     housingBond,
		StampDuty:       stampDuty,
		MovingCost:      movingCost,
		TotalAdditional: totalAdditional,
		Total:           price + totalAdditional,
	}

	c.logger.Debug("computed total purchase cost",
		zap.String("op", "calc.TotalCost"),
		zap.Int64("price", price),
		zap.Int64("totalAdditional", totalAdditional),
	)

	return result
}

// legalFee grows with the price in 100M steps and is capped.
func (c *Calculator) legalFee(price int64) int64 {
	t := c.tables.OtherCosts
	fee := t.LegalFeeBase + (price/100_000_000)*t.LegalFeePer100M
	return min(fee, t.LegalFeeMax)
}

// housingBondDiscount estimates the cost of buying the mandatory national
// housing bond and immediately selling it at a discount.
func (c *Calculator) housingBondDiscount(price int64) int64 {
	t := c.tables.OtherCosts

	var bondRate float64
	for _, tier := range t.BondTiers {
		if tier.UpperBound == 0 || price <= tier.UpperBound {
			bondRate = tier.Rate
			break
		}
	}

	bondAmount := moneyutil.Share(price, bondRate)
	return moneyutil.Share(bondAmount, t.BondDiscountRate)
}

// stampDuty is a flat amount per price tier.
func (c *Calculator) stampDuty(price int64) int64 {
	t := c.tables.OtherCosts
	switch {
	case price <= t.StampDutySmallLimit:
		return t.StampDutySmall
	case price <= t.StampDutyMidLimit:
		return t.StampDutyMid
	default:
		return t.StampDutyLarge
	}
}
