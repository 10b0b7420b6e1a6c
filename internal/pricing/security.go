// Package pricing computes yields of UMOA government securities.
//
// Coupon bonds (OAT) are priced to a yield-to-maturity solved on the dirty
// price over an explicit cash-flow schedule. Discount bills (BAT) use the
// closed-form discount yield. Both use the Actual/365 fixed day count. The
// package is pure: it performs no I/O, holds no mutable state and never logs.
package pricing

import (
	"strings"
	"time"
)

// SecurityType is the instrument family of a security.
type SecurityType string

const (
	// CouponBond is an Obligation Assimilable du Trésor.
	CouponBond SecurityType = "OAT"
	// DiscountBill is a Bon Assimilable du Trésor (zero coupon).
	DiscountBill SecurityType = "BAT"
)

// YieldType tags the convention of a computed yield.
type YieldType string

const (
	YieldToMaturity YieldType = "YTM"
	DiscountYield   YieldType = "Discount Yield"
)

// Periodicity is the coupon payment frequency code used by the publications.
type Periodicity string

const (
	Annual     Periodicity = "A"
	SemiAnnual Periodicity = "S"
	Quarterly  Periodicity = "T"
	Monthly    Periodicity = "M"
)

// Frequency returns coupons per year. Unknown or empty codes are annual.
func (p Periodicity) Frequency() int {
	switch Periodicity(strings.ToUpper(strings.TrimSpace(string(p)))) {
	case SemiAnnual:
		return 2
	case Quarterly, "Q":
		return 4
	case Monthly:
		return 12
	default:
		return 1
	}
}

// Security is the engine's view of a catalog record.
type Security struct {
	ISIN             string
	Type             SecurityType
	CountryCode      string
	IssueDate        time.Time
	MaturityDate     time.Time
	CouponRate       *float64 // annual, as a fraction; nil for bills
	Periodicity      Periodicity
	AmortizationMode string
}

func (s Security) couponRate() float64 {
	if s.CouponRate == nil {
		return 0
	}
	return *s.CouponRate
}

// Request is a single pricing query. Price is a clean price in percent of par.
type Request struct {
	Price          float64
	SettlementDate time.Time
}

// Result is the outcome of a pricing call. Yield, accrued interest and
// prices are expressed in percent (of par for prices).
type Result struct {
	ISIN               string
	SecurityType       SecurityType
	YieldType          YieldType
	Yield              float64
	CleanPrice         float64
	AccruedInterest    float64
	DirtyPrice         float64
	CouponRate         float64
	SettlementDate     time.Time
	MaturityDate       time.Time
	DaysToMaturity     int
	YearsToMaturity    float64
	PreviousCouponDate *time.Time
	NextCouponDate     *time.Time
	Iterations         int
	Market             *MarketComparison
}
