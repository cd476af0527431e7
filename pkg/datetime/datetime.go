// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/jwpark-dev/homeplan/pkg/constants"
)

// DateLayout is the format expected for dates in config and scenario files
// and is also the output date format.
const DateLayout = constants.DateLayout

// MustParseDate parses a date string using DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a date string using DateLayout.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// MonthsBetween returns the number of whole calendar months elapsed from one
// date to a later date. A month only counts once the same day-of-month is
// reached, so 2020-01-15 to 2020-02-14 is zero months and to 2020-02-15 is
// one month.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*constants.MonthsPerYear + int(to.Month()) - int(from.Month())
	if from.AddDate(0, months, 0).After(to) {
		months--
	}
	return months
}
