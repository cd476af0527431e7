package calc

import (
	"sort"

	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Recommend composes a funding plan from the given offers: subsidized
// products are drawn down first, cheapest rate first, and any shortfall goes
// to the bank mortgage. Each selected offer carries its drawn amount in
// Limit, and the blended monthly payment is pro-rated by the drawn share.
func (c *Calculator) Recommend(offers []LoanOffer, targetAmount int64) Recommendation {
	var selected []LoanOffer
	remaining := targetAmount
	var totalMonthly float64

	policyLoans := lo.Filter(offers, func(o LoanOffer, _ int) bool {
		return o.Eligible && (o.Type == LoanDidimdol || o.Type == LoanNewborn)
	})
	sort.SliceStable(policyLoans, func(i, j int) bool {
		return policyLoans[i].Rate < policyLoans[j].Rate
	})

	for _, loan := range policyLoans {
		if remaining <= 0 {
			break
		}
		// An eligible offer can carry a zero limit (e.g. a zero-price
		// listing); skip it so the pro-ration below never divides by zero.
		drawn := min(loan.Limit, remaining)
		if drawn <= 0 {
			continue
		}
		withdrawn := loan
		withdrawn.Limit = drawn
		selected = append(selected, withdrawn)
		remaining -= drawn
		totalMonthly += float64(loan.MonthlyPayment) * float64(drawn) / float64(loan.Limit)
	}

	if remaining > 0 {
		if bankLoan, found := lo.Find(offers, func(o LoanOffer) bool {
			return o.Type == LoanBank && o.Eligible
		}); found {
			drawn := min(bankLoan.Limit, remaining)
			if drawn > 0 {
				withdrawn := bankLoan
				withdrawn.Limit = drawn
				selected = append(selected, withdrawn)
				remaining -= drawn
				totalMonthly += float64(bankLoan.MonthlyPayment) * float64(drawn) / float64(bankLoan.Limit)
			}
		}
	}

	c.logger.Debug("composed loan recommendation",
		zap.String("op", "calc.Recommend"),
		zap.Int64("targetAmount", targetAmount),
		zap.Int64("allocated", targetAmount-remaining),
		zap.Int("loans", len(selected)),
	)

	return Recommendation{
		Loans:          selected,
		TotalAmount:    targetAmount - remaining,
		MonthlyPayment: moneyutil.Floor(totalMonthly),
	}
}
