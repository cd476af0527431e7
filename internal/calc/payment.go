package calc

import (
	"math"

	"github.com/jwpark-dev/homeplan/pkg/constants"
	"github.com/jwpark-dev/homeplan/pkg/moneyutil"
)

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard amortization formula, rounded down to a whole won.
func MonthlyPayment(principal int64, annualRate float64, years int) int64 {
	if principal <= 0 || annualRate <= 0 {
		return 0
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	months := years * constants.MonthsPerYear

	power := math.Pow(1+monthlyRate, float64(months))
	payment := float64(principal) * monthlyRate * power / (power - 1)

	return moneyutil.Floor(payment)
}

// MaxPrincipalFromPayment inverts the amortization formula: the largest
// principal serviceable by a fixed monthly payment at the given rate and term.
func MaxPrincipalFromPayment(monthlyPayment float64, annualRate float64, years int) int64 {
	if monthlyPayment <= 0 || annualRate <= 0 {
		return 0
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	months := years * constants.MonthsPerYear

	power := math.Pow(1+monthlyRate, float64(months))
	principal := monthlyPayment * (power - 1) / (monthlyRate * power)

	return moneyutil.Floor(principal)
}
