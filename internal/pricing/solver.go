package pricing

import (
	"fmt"
	"math"
	"time"
)

// Par is the redemption amount per 100 nominal.
const Par = 100.0

// Solver bounds. Yields are annual decimals (0.05 = 5%).
const (
	SolverTolerance = 1e-6
	SolverMaxIter   = 100
	YieldFloor      = -0.50
	YieldCeiling    = 1.00
)

// Cashflow is a single dated payment per 100 nominal. Time is the Actual/365
// year fraction from settlement to Date.
type Cashflow struct {
	Date   time.Time
	Time   float64
	Amount float64
}

// PresentValue discounts cfs at the annually compounded yield y and returns
// the price together with dPrice/dy.
//
//	price = Σ CF_k / (1+y)^t_k
//	dP/dy = Σ −t_k · CF_k / (1+y)^(t_k+1)
func PresentValue(cfs []Cashflow, y float64) (float64, float64) {
	var price, deriv float64
	for _, cf := range cfs {
		df := math.Pow(1+y, -cf.Time)
		price += cf.Amount * df
		deriv -= cf.Time * cf.Amount * df / (1 + y)
	}
	return price, deriv
}

// SolveYield finds y in [YieldFloor, YieldCeiling] such that
// PresentValue(cfs, y) equals target within SolverTolerance. It takes Newton
// steps and falls back to bisection whenever a step leaves the bracket.
// It returns the yield and the number of iterations used.
func SolveYield(cfs []Cashflow, target float64) (float64, int, error) {
	if len(cfs) == 0 {
		return 0, 0, fmt.Errorf("%w: no cash flows after settlement", ErrYieldNotConvergent)
	}

	lo, hi := YieldFloor, YieldCeiling
	pLo, _ := PresentValue(cfs, lo)
	pHi, _ := PresentValue(cfs, hi)
	fLo, fHi := pLo-target, pHi-target

	switch {
	case math.Abs(fLo) < SolverTolerance:
		return lo, 0, nil
	case math.Abs(fHi) < SolverTolerance:
		return hi, 0, nil
	case math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0:
		return 0, 0, fmt.Errorf("%w: price %.6f is not bracketed by yields [%.0f%%, %.0f%%]",
			ErrYieldNotConvergent, target, YieldFloor*100, YieldCeiling*100)
	}

	y := clamp(0.05, lo, hi)
	for iter := 1; iter <= SolverMaxIter; iter++ {
		price, deriv := PresentValue(cfs, y)
		f := price - target
		if math.Abs(f) < SolverTolerance {
			return y, iter, nil
		}

		if (f < 0) == (fLo < 0) {
			lo, fLo = y, f
		} else {
			hi = y
		}

		next := y - f/deriv
		if deriv == 0 || math.IsNaN(next) || next <= lo || next >= hi {
			next = (lo + hi) / 2
		}
		y = next
	}

	return y, SolverMaxIter, fmt.Errorf("%w: no convergence after %d iterations", ErrYieldNotConvergent, SolverMaxIter)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
