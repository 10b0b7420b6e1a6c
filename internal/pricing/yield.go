package pricing

import (
	"fmt"
	"math"
	"time"
)

// MaxPrice is the highest accepted clean price, in percent of par.
const MaxPrice = 200.0

// Engine prices securities and rates them against a reference curve. It only
// holds an immutable rating policy and is safe for concurrent use.
type Engine struct {
	policy RatingPolicy
}

// NewEngine returns an Engine using policy for market comparisons.
func NewEngine(policy RatingPolicy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the rating policy of the engine.
func (e *Engine) Policy() RatingPolicy {
	return e.policy
}

// Price computes the yield of sec at req and, when curve holds usable points,
// the market comparison block. An empty curve is not an error.
func (e *Engine) Price(sec Security, req Request, curve []CurvePoint) (*Result, error) {
	res, err := CalculateYield(sec, req.Price, req.SettlementDate)
	if err != nil {
		return nil, err
	}
	res.Market = Compare(res.Yield, res.YearsToMaturity, sec.Type, curve, e.policy)
	return res, nil
}

// CalculateYield dispatches on the security type and returns the yield of sec
// bought at the clean price on settlement.
func CalculateYield(sec Security, price float64, settlement time.Time) (*Result, error) {
	if math.IsNaN(price) || price <= 0 || price > MaxPrice {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidPrice, price)
	}
	if settlement.IsZero() {
		return nil, fmt.Errorf("%w: settlement date is required", ErrInvalidDateRange)
	}
	if !sec.IssueDate.IsZero() && DateOnly(sec.MaturityDate).Before(DateOnly(sec.IssueDate)) {
		return nil, fmt.Errorf("%w: maturity %s precedes issue %s", ErrInvalidDateRange,
			sec.MaturityDate.Format(time.DateOnly), sec.IssueDate.Format(time.DateOnly))
	}

	days, err := DaysToMaturity(settlement, sec.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMaturedSecurity, err)
	}
	if days == 0 {
		return nil, fmt.Errorf("%w: settlement on maturity date %s",
			ErrMaturedSecurity, sec.MaturityDate.Format(time.DateOnly))
	}

	res := &Result{
		ISIN:            sec.ISIN,
		SecurityType:    sec.Type,
		CleanPrice:      price,
		SettlementDate:  DateOnly(settlement),
		MaturityDate:    DateOnly(sec.MaturityDate),
		DaysToMaturity:  days,
		YearsToMaturity: YearFraction(days),
	}

	switch sec.Type {
	case DiscountBill:
		res.YieldType = DiscountYield
		res.Yield = DiscountBillYield(price, days)
		res.DirtyPrice = price
		return res, nil
	case CouponBond:
		if err := couponBondYield(sec, res); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSecurityType, sec.Type)
	}
}

// DiscountBillYield is the closed-form discount yield, in percent:
//
//	((100 − price) / price) × (365 / days) × 100
func DiscountBillYield(price float64, days int) float64 {
	return ((Par - price) / price) * (DayCountBasis / float64(days)) * 100
}

func couponBondYield(sec Security, res *Result) error {
	freq := sec.Periodicity.Frequency()
	rate := sec.couponRate()
	coupon := rate * Par / float64(freq)

	sched := BuildSchedule(sec.IssueDate, sec.MaturityDate, res.SettlementDate, freq)
	if period, ok := sched.Current(res.SettlementDate); ok {
		res.AccruedInterest = period.Accrued(res.SettlementDate, coupon)
		prev, next := period.Start, period.End
		res.PreviousCouponDate = &prev
		res.NextCouponDate = &next
	}

	cfs := sched.Cashflows(res.SettlementDate, coupon)
	res.DirtyPrice = res.CleanPrice + res.AccruedInterest

	y, iters, err := SolveYield(cfs, res.DirtyPrice)
	if err != nil {
		return err
	}

	res.YieldType = YieldToMaturity
	res.Yield = y * 100
	res.CouponRate = rate
	res.Iterations = iters
	return nil
}
