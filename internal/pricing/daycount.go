package pricing

import (
	"fmt"
	"math"
	"time"
)

// DayCountBasis is the fixed year length of the Actual/365 convention.
const DayCountBasis = 365.0

// DateOnly truncates t to its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from start to end.
// The result is negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(math.Round(DateOnly(end).Sub(DateOnly(start)).Hours() / 24))
}

// DaysToMaturity returns the whole calendar days between settlement and
// maturity. A settlement after maturity is an invalid range.
func DaysToMaturity(settlement, maturity time.Time) (int, error) {
	days := DaysBetween(settlement, maturity)
	if days < 0 {
		return 0, fmt.Errorf("%w: settlement %s is after maturity %s",
			ErrInvalidDateRange, settlement.Format(time.DateOnly), maturity.Format(time.DateOnly))
	}
	return days, nil
}

// YearFraction converts a day count to years under Actual/365 fixed.
func YearFraction(days int) float64 {
	return float64(days) / DayCountBasis
}

// AddMonths behaves like Excel's EDATE: the day of month is kept when it
// exists in the target month and clamped to the month end otherwise.
func AddMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
