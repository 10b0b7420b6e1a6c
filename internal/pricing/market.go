package pricing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/interp"
)

// CurvePoint is one maturity bucket of a country's reference yield curve.
// Rates are annual fractions (0.0625 = 6.25%).
type CurvePoint struct {
	MaturityYears  float64
	ZeroCouponRate *float64
	OATRate        *float64
	UploadDate     time.Time
}

// rateFor picks the reference rate matching the instrument family, falling
// back to the other rate when the preferred one is missing.
func (p CurvePoint) rateFor(t SecurityType) (float64, bool) {
	first, second := p.OATRate, p.ZeroCouponRate
	if t == DiscountBill {
		first, second = second, first
	}
	for _, r := range []*float64{first, second} {
		if r != nil && !math.IsNaN(*r) {
			return *r, true
		}
	}
	return 0, false
}

// Rating is the qualitative verdict of a market comparison.
type Rating string

const (
	RatingAttractive Rating = "attractive"
	RatingFair       Rating = "fair"
	RatingExpensive  Rating = "expensive"
)

// Action is the trading suggestion attached to a rating.
func (r Rating) Action() string {
	switch r {
	case RatingAttractive:
		return "buy"
	case RatingExpensive:
		return "avoid"
	default:
		return "hold"
	}
}

// Recommendation is a human-readable sentence for the rating.
func (r Rating) Recommendation() string {
	switch r {
	case RatingAttractive:
		return "Yield above market curve - potentially attractive"
	case RatingExpensive:
		return "Yield below market curve - expensive, review carefully"
	default:
		return "Fair market pricing"
	}
}

// RatingPolicy partitions spreads (percentage points) into three ratings:
// spread > Upper is attractive, spread < Lower is expensive, anything in
// [Lower, Upper] is fair.
type RatingPolicy struct {
	Upper float64
	Lower float64
}

// DefaultRatingPolicy rates spreads beyond ±0.5 percentage points.
func DefaultRatingPolicy() RatingPolicy {
	return RatingPolicy{Upper: 0.5, Lower: -0.5}
}

// Validate reports whether the thresholds form a valid partition.
func (p RatingPolicy) Validate() error {
	if math.IsNaN(p.Upper) || math.IsNaN(p.Lower) || p.Lower > p.Upper {
		return fmt.Errorf("invalid rating policy: lower %g must not exceed upper %g", p.Lower, p.Upper)
	}
	return nil
}

// Rate classifies spread.
func (p RatingPolicy) Rate(spread float64) Rating {
	switch {
	case spread > p.Upper:
		return RatingAttractive
	case spread < p.Lower:
		return RatingExpensive
	default:
		return RatingFair
	}
}

// MarketComparison positions a computed yield against the reference curve.
// MarketRate and Spread are in percent.
type MarketComparison struct {
	MarketRate     float64
	Spread         float64
	SpreadText     string
	Rating         Rating
	Action         string
	Recommendation string
	MaturityYears  float64
	LowerMaturity  float64
	UpperMaturity  float64
	CurveDate      time.Time
}

// Compare interpolates the reference rate at years and rates the spread of
// yield over it. It returns nil when the curve has no usable point.
func Compare(yield, years float64, t SecurityType, curve []CurvePoint, policy RatingPolicy) *MarketComparison {
	xs, ys, curveDate := curveSeries(curve, t)
	if len(xs) == 0 {
		return nil
	}

	rate, err := InterpolateRate(xs, ys, years)
	if err != nil {
		return nil
	}
	lower, upper := BracketMaturities(xs, years)

	spread := yield - rate
	rating := policy.Rate(spread)
	return &MarketComparison{
		MarketRate:     rate,
		Spread:         spread,
		SpreadText:     spreadText(spread),
		Rating:         rating,
		Action:         rating.Action(),
		Recommendation: rating.Recommendation(),
		MaturityYears:  years,
		LowerMaturity:  lower,
		UpperMaturity:  upper,
		CurveDate:      curveDate,
	}
}

// curveSeries returns strictly increasing maturities with their rates in
// percent. Duplicate maturities keep the first point seen.
func curveSeries(curve []CurvePoint, t SecurityType) ([]float64, []float64, time.Time) {
	points := make([]CurvePoint, len(curve))
	copy(points, curve)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].MaturityYears < points[j].MaturityYears
	})

	var xs, ys []float64
	var curveDate time.Time
	for _, p := range points {
		r, ok := p.rateFor(t)
		if !ok || math.IsNaN(p.MaturityYears) {
			continue
		}
		if n := len(xs); n > 0 && p.MaturityYears <= xs[n-1] {
			continue
		}
		xs = append(xs, p.MaturityYears)
		ys = append(ys, r*100)
		if p.UploadDate.After(curveDate) {
			curveDate = p.UploadDate
		}
	}
	return xs, ys, curveDate
}

// InterpolateRate linearly interpolates ys at x. Outside the curve the
// nearest end point is returned. xs must be strictly increasing.
func InterpolateRate(xs, ys []float64, x float64) (float64, error) {
	switch len(xs) {
	case 0:
		return 0, fmt.Errorf("interpolate: empty curve")
	case 1:
		return ys[0], nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, fmt.Errorf("interpolate: %w", err)
	}
	return pl.Predict(x), nil
}

// BracketMaturities returns the curve maturities surrounding x. At or beyond
// the curve ends both values are the nearest end point.
func BracketMaturities(xs []float64, x float64) (float64, float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0
	}
	i := sort.SearchFloat64s(xs, x)
	switch {
	case i >= n:
		return xs[n-1], xs[n-1]
	case xs[i] == x || i == 0:
		return xs[i], xs[i]
	default:
		return xs[i-1], xs[i]
	}
}

func spreadText(spread float64) string {
	abs := math.Abs(spread)
	switch {
	case abs < 0.005:
		return "At market rate"
	case spread < 0:
		return fmt.Sprintf("%.2f%% below market", abs)
	default:
		return fmt.Sprintf("%.2f%% above market", abs)
	}
}
