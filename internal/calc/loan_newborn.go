package calc

import (
	"fmt"

	"github.com/jwpark-dev/homeplan/pkg/format"
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
)

// NewbornLoan evaluates the newborn-special subsidized loan, which trades
// stricter family-status criteria for higher limits and ceilings.
func (c *Calculator) NewbornLoan(housing Housing, buyer Buyer) LoanOffer {
	t := c.tables.Newborn
	totalIncome := buyer.CombinedIncome()

	var reasons []string
	eligible := true

	// At most one existing home (sell-to-move arrangements are allowed).
	if buyer.HouseCount > 1 {
		eligible = false
		reasons = append(reasons, "2주택 이상 보유 시 신청 불가")
	} else {
		reasons = append(reasons, "주택 수 요건 충족")
	}

	// Requires a child or a birth expected within two years.
	if !buyer.ExpectingChild && buyer.ChildCount == 0 {
		eligible = false
		reasons = append(reasons, "2년 내 출산 예정 또는 미성년 자녀 필요")
	} else if buyer.ChildCount > 0 {
		reasons = append(reasons, fmt.Sprintf("자녀 %d명 보유", buyer.ChildCount))
	} else {
		reasons = append(reasons, "2년 내 출산 예정")
	}

	if totalIncome > t.IncomeLimit {
		eligible = false
		reasons = append(reasons, fmt.Sprintf("소득 초과 (한도: %s)", format.PriceWon(t.IncomeLimit)))
	} else {
		reasons = append(reasons, "소득 요건 충족")
	}

	if housing.Price > t.PriceLimit {
		eligible = false
		reasons = append(reasons, fmt.Sprintf("주택 가격 초과 (한도: %s)", format.PriceWon(t.PriceLimit)))
	} else {
		reasons = append(reasons, "주택 가격 요건 충족")
	}

	ltvLimit := moneyutil.Share(housing.Price, t.LTV)
	var limit int64
	if eligible {
		limit = min(t.LoanLimit, ltvLimit)
	}

	// The posted rate varies with income; the midpoint of the band stands in.
	rate := moneyutil.Midpoint(t.MinRate, t.MaxRate)

	return LoanOffer{
		Type:           LoanNewborn,
		Name:           "신생아 특례 대출",
		Limit:          limit,
		Rate:           rate,
		MonthlyPayment: MonthlyPayment(limit, rate, c.tables.LoanTermYears),
		Eligible:       eligible,
		Reasons:        reasons,
	}
}
