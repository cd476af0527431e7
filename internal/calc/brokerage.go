package calc

import (
	"github.com/jwpark-dev/homeplan/pkg/constants"
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
)

// BrokerageFee computes the transaction commission for a sale or purchase at
// the given price. The first matching bracket wins; capped brackets clamp the
// base fee before VAT.
func (c *Calculator) BrokerageFee(price int64) BrokerageFee {
	var rate float64
	var baseFee int64

	for _, bracket := range c.tables.BrokerageFee {
		if bracket.UpperBound != 0 && price > bracket.UpperBound {
			continue
		}
		rate = bracket.Rate
		baseFee = moneyutil.Share(price, rate)
		if bracket.Cap != 0 && baseFee > bracket.Cap {
			baseFee = bracket.Cap
		}
		break
	}

	vat := moneyutil.Share(baseFee, constants.VATRate)

	return BrokerageFee{
		Rate:    rate,
		BaseFee: baseFee,
		VAT:     vat,
		Total:   baseFee + vat,
	}
}

// BrokerageRate returns only the applicable commission rate. The fallback
// rate is unreachable while the table keeps an unbounded final bracket; it is
// kept as an explicit default.
func (c *Calculator) BrokerageRate(price int64) float64 {
	for _, bracket := range c.tables.BrokerageFee {
		if bracket.UpperBound == 0 || price <= bracket.UpperBound {
			return bracket.Rate
		}
	}
	return constants.BrokerageFallbackRate
}
