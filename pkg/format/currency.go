// Package format provides display formatting for Korean won amounts, rates,
// and floor areas.
package format

import (
	"fmt"

	"github.com/jwpark-dev/homeplan/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Price formats a won amount using the customary 억/만 units, e.g.
// 830,000,000 becomes "8억 3,000만".
func Price(amount int64) string {
	if amount >= constants.EokWon {
		eok := amount / constants.EokWon
		man := (amount % constants.EokWon) / constants.ManWon
		if man > 0 {
			return printer.Sprintf("%d억 %d만", eok, man)
		}
		return fmt.Sprintf("%d억", eok)
	}
	if amount >= constants.ManWon {
		return printer.Sprintf("%d만", amount/constants.ManWon)
	}
	return printer.Sprintf("%d", amount)
}

// PriceWon formats a won amount with the 원 suffix.
func PriceWon(amount int64) string {
	return Price(amount) + "원"
}

// Won formats a won amount with thousands separators and the 원 suffix,
// without 억/만 abbreviation.
func Won(amount int64) string {
	return printer.Sprintf("%d원", amount)
}

// Percent formats a fractional rate as a percentage with two decimals.
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// Area formats a floor area in square meters with the approximate pyeong.
func Area(area float64) string {
	pyeong := area / 3.3058
	return fmt.Sprintf("%g㎡ (약 %.0f평)", area, pyeong)
}
