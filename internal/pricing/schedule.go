package pricing

import "time"

// maxPeriods bounds schedule generation (100 years of monthly coupons).
const maxPeriods = 1200

// CouponPeriod is one accrual period of a coupon bond.
//
// NotionalEnd equals End for regular periods. For an irregular final period it
// is the date the period would have ended on cycle, so that a short stub pays
// a prorated coupon.
type CouponPeriod struct {
	Start       time.Time
	End         time.Time
	NotionalEnd time.Time
}

// Fraction is the share of a full coupon paid at the end of the period.
func (p CouponPeriod) Fraction() float64 {
	full := DaysBetween(p.Start, p.NotionalEnd)
	if full <= 0 {
		return 1
	}
	return float64(DaysBetween(p.Start, p.End)) / float64(full)
}

// Accrued returns the coupon accrued at settlement, given one full period's
// coupon. Settlement before the period start accrues nothing.
func (p CouponPeriod) Accrued(settlement time.Time, coupon float64) float64 {
	full := DaysBetween(p.Start, p.NotionalEnd)
	if full <= 0 {
		return 0
	}
	elapsed := DaysBetween(p.Start, settlement)
	if elapsed <= 0 {
		return 0
	}
	if span := DaysBetween(p.Start, p.End); elapsed > span {
		elapsed = span
	}
	return coupon * float64(elapsed) / float64(full)
}

// Schedule is the ordered list of coupon periods of a bond, the last one
// ending on maturity.
type Schedule struct {
	Periods []CouponPeriod
}

// BuildSchedule derives the coupon calendar from the issue date and the
// payment frequency. Coupon dates are issue + k periods (EDATE from the issue
// date, so month-end dates do not drift) and maturity closes the last period.
//
// When the issue date is unknown the calendar is rolled back from maturity
// until it covers settlement.
func BuildSchedule(issue, maturity, settlement time.Time, frequency int) Schedule {
	if frequency <= 0 {
		frequency = 1
	}
	months := 12 / frequency
	maturity = DateOnly(maturity)

	if issue.IsZero() {
		return rollBack(maturity, DateOnly(settlement), months)
	}

	issue = DateOnly(issue)
	var periods []CouponPeriod
	for k := 1; k <= maxPeriods; k++ {
		start := AddMonths(issue, (k-1)*months)
		end := AddMonths(issue, k*months)
		if !end.Before(maturity) {
			periods = append(periods, CouponPeriod{Start: start, End: maturity, NotionalEnd: end})
			break
		}
		periods = append(periods, CouponPeriod{Start: start, End: end, NotionalEnd: end})
	}
	return Schedule{Periods: periods}
}

func rollBack(maturity, settlement time.Time, months int) Schedule {
	var periods []CouponPeriod
	for k := 0; k < maxPeriods; k++ {
		end := AddMonths(maturity, -k*months)
		start := AddMonths(maturity, -(k+1)*months)
		periods = append(periods, CouponPeriod{Start: start, End: end, NotionalEnd: end})
		if !start.After(settlement) {
			break
		}
	}
	for i, j := 0, len(periods)-1; i < j; i, j = i+1, j-1 {
		periods[i], periods[j] = periods[j], periods[i]
	}
	return Schedule{Periods: periods}
}

// Current returns the period whose end is the first coupon date strictly
// after settlement.
func (s Schedule) Current(settlement time.Time) (CouponPeriod, bool) {
	settlement = DateOnly(settlement)
	for _, p := range s.Periods {
		if p.End.After(settlement) {
			return p, true
		}
	}
	return CouponPeriod{}, false
}

// Cashflows lists the payments received by a buyer settling on settlement:
// every coupon paid strictly after settlement plus par at maturity (bullet
// redemption). coupon is one full period's coupon per 100 nominal.
func (s Schedule) Cashflows(settlement time.Time, coupon float64) []Cashflow {
	settlement = DateOnly(settlement)
	var cfs []Cashflow
	for _, p := range s.Periods {
		if !p.End.After(settlement) {
			continue
		}
		cfs = append(cfs, Cashflow{
			Date:   p.End,
			Time:   YearFraction(DaysBetween(settlement, p.End)),
			Amount: coupon * p.Fraction(),
		})
	}
	if n := len(cfs); n > 0 {
		cfs[n-1].Amount += Par
	}
	return cfs
}
