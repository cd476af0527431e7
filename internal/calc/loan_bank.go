package calc

import (
	"fmt"

	"github.com/jwpark-dev/homeplan/pkg/constants"
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
)

// BankMortgage evaluates a conventional bank mortgage. Banks impose no
// qualifying criteria, so the offer is always eligible; the credit limit is
// the smaller of the collateral (LTV) limit and the income (DSR) limit.
func (c *Calculator) BankMortgage(housing Housing, buyer Buyer) LoanOffer {
	t := c.tables.BankMortgage
	totalIncome := buyer.CombinedIncome()

	var reasons []string

	ltvRate := t.UnregulatedLTV
	areaLabel := "비조정지역"
	if housing.RegulatedArea {
		ltvRate = t.RegulatedLTV
		areaLabel = "조정대상지역"
	}
	ltvLimit := moneyutil.Share(housing.Price, ltvRate)

	reasons = append(reasons, fmt.Sprintf("LTV %.0f%% 적용 (%s)", ltvRate*100, areaLabel))

	// The DSR limit inverts the amortization formula: the largest principal
	// whose payment fits within the income-capped monthly budget.
	annualPaymentLimit := float64(totalIncome) * t.DSR
	avgRate := moneyutil.Midpoint(t.MinRate, t.MaxRate)
	dsrLimit := MaxPrincipalFromPayment(annualPaymentLimit/constants.MonthsPerYear, avgRate, c.tables.LoanTermYears)

	reasons = append(reasons, fmt.Sprintf("DSR %.0f%% 적용", t.DSR*100))

	limit := min(ltvLimit, dsrLimit)

	// A tie favors the LTV note.
	if limit == ltvLimit {
		reasons = append(reasons, "LTV 기준으로 한도 제한")
	} else {
		reasons = append(reasons, "DSR 기준으로 한도 제한")
	}

	return LoanOffer{
		Type:           LoanBank,
		Name:           "시중은행 주택담보대출",
		Limit:          limit,
		Rate:           avgRate,
		MonthlyPayment: MonthlyPayment(limit, avgRate, c.tables.LoanTermYears),
		Eligible:       true,
		Reasons:        reasons,
	}
}

// AllLoans evaluates every mortgage product for the given purchase.
func (c *Calculator) AllLoans(housing Housing, buyer Buyer) []LoanOffer {
	return []LoanOffer{
		c.DidimdolLoan(housing, buyer),
		c.NewbornLoan(housing, buyer),
		c.BankMortgage(housing, buyer),
	}
}
