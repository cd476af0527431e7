package calc

import (
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
	"go.uber.org/zap"
)

// AcquisitionTax computes the purchase-time tax for a housing purchase,
// including rural special tax, local education tax, and the first-time buyer
// reduction where it applies.
func (c *Calculator) AcquisitionTax(housing Housing, buyer Buyer) AcquisitionTax {
	t := c.tables.AcquisitionTax

	baseRate := c.AcquisitionTaxRate(housing.Price, buyer.HouseCount, housing.RegulatedArea)
	baseTax := moneyutil.Share(housing.Price, baseRate)

	// Rural special tax is charged only on units above the area threshold.
	var ruralTax int64
	if housing.Area > t.RuralSpecialTaxAreaOver {
		ruralTax = moneyutil.Share(baseTax, t.RuralSpecialTaxRate)
	}

	educationTax := moneyutil.Share(baseTax, t.LocalEducationTaxRate)
	totalBeforeReduction := baseTax + ruralTax + educationTax

	var reduction int64
	var reductionReason string
	relief := c.tables.FirstTimeBuyer
	if buyer.FirstTimeBuyer &&
		buyer.HouseCount+1 == 1 &&
		buyer.CombinedIncome() <= relief.IncomeLimit &&
		housing.Price <= relief.PriceLimit {
		reduction = min(totalBeforeReduction, relief.MaxReduction)
		reductionReason = "생애최초 주택 구입 감면"
	}

	result := AcquisitionTax{
		BaseRate:             baseRate,
		BaseTax:              baseTax,
		RuralSpecialTax:      ruralTax,
		EducationTax:         educationTax,
		TotalBeforeReduction: totalBeforeReduction,
		Reduction:            reduction,
		ReductionReason:      reductionReason,
		Total:                totalBeforeReduction - reduction,
	}

	c.logger.Debug("computed acquisition tax",
		zap.String("op", "calc.AcquisitionTax"),
		zap.Int64("price", housing.Price),
		zap.Float64("baseRate", baseRate),
		zap.Int64("total", result.Total),
	)

	return result
}

// AcquisitionTaxRate returns only the applicable rate, for previews. The
// bracket logic is shared with AcquisitionTax so boundary cases always agree.
func (c *Calculator) AcquisitionTaxRate(price int64, houseCount int, regulatedArea bool) float64 {
	t := c.tables.AcquisitionTax
	ownedAfterPurchase := houseCount + 1

	switch {
	case ownedAfterPurchase == 1:
		if price <= t.Tier1Price {
			return t.SingleHomeLowRate
		}
		if price < t.Tier2Price {
			// Linear progression between the two tier boundaries. The tier 2
			// boundary itself takes the flat high rate, which the
			// interpolation meets there by construction.
			ratio := float64(price-t.Tier1Price) / float64(t.Tier2Price-t.Tier1Price)
			return t.SingleHomeLowRate + ratio*(t.SingleHomeHighRate-t.SingleHomeLowRate)
		}
		return t.SingleHomeHighRate
	case ownedAfterPurchase == 2:
		if regulatedArea {
			return t.TwoHomeRegulatedRate
		}
		return t.TwoHomeRate
	default:
		if regulatedArea {
			return t.ThreePlusHomeRegulatedRate
		}
		return t.ThreePlusHomeRate
	}
}
