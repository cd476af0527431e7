package calc

import (
	"fmt"

	"github.com/jwpark-dev/homeplan/pkg/format"
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
)

// DidimdolLoan evaluates the Didimdol subsidized loan. Every criterion is
// checked and noted regardless of earlier failures; eligibility is the
// conjunction of all of them.
func (c *Calculator) DidimdolLoan(housing Housing, buyer Buyer) LoanOffer {
	t := c.tables.Didimdol
	totalIncome := buyer.CombinedIncome()

	var reasons []string
	eligible := true

	// Only households that own no home qualify.
	if buyer.HouseCount > 0 {
		eligible = false
		reasons = append(reasons, "무주택자만 신청 가능")
	} else {
		reasons = append(reasons, "무주택 요건 충족")
	}

	// The income ceiling depends on household status: newlywed couples get
	// the highest ceiling, then dual-income households, then singles.
	incomeLimit := t.IncomeLimitSingle
	switch {
	case buyer.Newlywed:
		incomeLimit = t.IncomeLimitNewlywed
	case buyer.SpouseIncome > 0:
		incomeLimit = t.IncomeLimitMarried
	}

	if totalIncome > incomeLimit {
		eligible = false
		reasons = append(reasons, fmt.Sprintf("소득 초과 (한도: %s)", format.PriceWon(incomeLimit)))
	} else {
		reasons = append(reasons, fmt.Sprintf("소득 요건 충족 (%s)", format.PriceWon(totalIncome)))
	}

	priceLimit := t.PriceLimitGeneral
	if buyer.Newlywed {
		priceLimit = t.PriceLimitNewlywed
	}

	if housing.Price > priceLimit {
		eligible = false
		reasons = append(reasons, fmt.Sprintf("주택 가격 초과 (한도: %s)", format.PriceWon(priceLimit)))
	} else {
		reasons = append(reasons, "주택 가격 요건 충족")
	}

	maxLimit := t.LoanLimitGeneral
	if buyer.Newlywed {
		maxLimit = t.LoanLimitNewlywed
	}

	ltvLimit := moneyutil.Share(housing.Price, t.LTV)
	var limit int64
	if eligible {
		limit = min(maxLimit, ltvLimit)
	}

	rate := t.BaseRate
	if buyer.Newlywed {
		rate = t.NewlywedRate
	}

	return LoanOffer{
		Type:           LoanDidimdol,
		Name:           "디딤돌 대출",
		Limit:          limit,
		Rate:           rate,
		MonthlyPayment: MonthlyPayment(limit, rate, c.tables.LoanTermYears),
		Eligible:       eligible,
		Reasons:        reasons,
	}
}
