package pricing

import "github.com/shopspring/decimal"

// Display precision of published figures.
const (
	YieldPlaces   = 4
	AccruedPlaces = 4
	PricePlaces   = 4
	YearsPlaces   = 2
	SpreadPlaces  = 2
)

// Round rounds v half away from zero to places decimals.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Rounded returns a copy of r with figures rounded to display precision.
// The engine itself never rounds; callers apply this at the presentation edge.
func (r Result) Rounded() Result {
	out := r
	out.Yield = Round(r.Yield, YieldPlaces)
	out.AccruedInterest = Round(r.AccruedInterest, AccruedPlaces)
	out.DirtyPrice = Round(r.DirtyPrice, PricePlaces)
	out.YearsToMaturity = Round(r.YearsToMaturity, YearsPlaces)
	if r.Market != nil {
		m := *r.Market
		m.MarketRate = Round(m.MarketRate, SpreadPlaces)
		m.Spread = Round(m.Spread, SpreadPlaces)
		out.Market = &m
	}
	return out
}
