// Package moneyutil provides common monetary utility functions.
//
// All currency amounts in this module are whole Korean won held in int64;
// rates are float64 fractions. Every rate application rounds down to a whole
// won, matching the downward rounding used by the tax authorities.
package moneyutil

import "math"

// Floor rounds a monetary value down to a whole won.
func Floor(val float64) int64 {
	return int64(math.Floor(val))
}

// Share applies a fractional rate to an amount and rounds down to a whole won.
func Share(amount int64, rate float64) int64 {
	return Floor(float64(amount) * rate)
}

// Midpoint returns the midpoint of a posted min/max rate band.
func Midpoint(minRate, maxRate float64) float64 {
	return (minRate + maxRate) / 2
}
