package handlers

import (
	"time"

	"umoabonds/internal/models"
	"umoabonds/internal/pricing"
	"umoabonds/internal/services"
)

const dateLayout = time.DateOnly

// SecurityResponse is the public view of a catalog security.
type SecurityResponse struct {
	ISIN              string   `json:"isin" example:"SN0000002171"`
	ShortCode         string   `json:"short_code" example:"SN2171"`
	CountryCode       string   `json:"country_code" example:"SN"`
	CountryName       string   `json:"country_name" example:"Sénégal"`
	SecurityType      string   `json:"security_type" example:"OAT"`
	OriginalMaturity  string   `json:"original_maturity,omitempty" example:"7 ans"`
	IssueDate         string   `json:"issue_date,omitempty" example:"2019-01-09"`
	MaturityDate      string   `json:"maturity_date" example:"2026-01-09"`
	CouponRate        *float64 `json:"coupon_rate,omitempty" example:"0.051"`
	OutstandingAmount *float64 `json:"outstanding_amount,omitempty"`
	Periodicity       string   `json:"periodicity" example:"A"`
	AmortizationMode  string   `json:"amortization_mode" example:"IF"`
	DeferredYears     int      `json:"deferred_years"`
	Status            string   `json:"status" example:"active"`
}

func newSecurityResponse(s models.Security) SecurityResponse {
	resp := SecurityResponse{
		ISIN:              s.ISIN,
		ShortCode:         s.ShortCode,
		CountryCode:       s.CountryCode,
		CountryName:       s.CountryName,
		SecurityType:      string(s.SecurityType),
		OriginalMaturity:  s.OriginalMaturity,
		MaturityDate:      s.MaturityDate.Format(dateLayout),
		CouponRate:        s.CouponRate,
		OutstandingAmount: s.OutstandingAmount,
		Periodicity:       s.Periodicity,
		AmortizationMode:  s.AmortizationMode,
		DeferredYears:     s.DeferredYears,
		Status:            string(s.Status),
	}
	if s.IssueDate != nil {
		resp.IssueDate = s.IssueDate.Format(dateLayout)
	}
	return resp
}

func newSecurityResponses(securities []models.Security) []SecurityResponse {
	out := make([]SecurityResponse, len(securities))
	for i, s := range securities {
		out[i] = newSecurityResponse(s)
	}
	return out
}

// MarketResponse compares a yield with the country's reference curve.
// Rates and spread are in percent.
type MarketResponse struct {
	MarketRate     float64 `json:"market_rate" example:"5.9"`
	Spread         float64 `json:"spread" example:"0.61"`
	SpreadText     string  `json:"spread_text" example:"0.61% above market"`
	Rating         string  `json:"rating" example:"attractive"`
	Action         string  `json:"action" example:"buy"`
	Recommendation string  `json:"recommendation"`
	MaturityYears  float64 `json:"maturity_years" example:"2.5"`
	LowerMaturity  float64 `json:"lower_maturity" example:"2"`
	UpperMaturity  float64 `json:"upper_maturity" example:"3"`
	CurveDate      string  `json:"curve_date,omitempty" example:"2026-02-02"`
}

// YieldResponse is a priced security.
type YieldResponse struct {
	ISIN               string          `json:"isin" example:"SN0000002171"`
	ShortCode          string          `json:"short_code" example:"SN2171"`
	CountryCode        string          `json:"country_code" example:"SN"`
	CountryName        string          `json:"country_name" example:"Sénégal"`
	SecurityType       string          `json:"security_type" example:"OAT"`
	YieldType          string          `json:"yield_type" example:"YTM"`
	Yield              float64         `json:"yield" example:"6.0132"`
	CleanPrice         float64         `json:"clean_price" example:"99.5"`
	AccruedInterest    float64         `json:"accrued_interest" example:"2.9836"`
	DirtyPrice         float64         `json:"dirty_price" example:"102.4836"`
	CouponRate         float64         `json:"coupon_rate" example:"0.06"`
	SettlementDate     string          `json:"settlement_date" example:"2026-02-02"`
	MaturityDate       string          `json:"maturity_date" example:"2030-03-03"`
	DaysToMaturity     int             `json:"days_to_maturity" example:"1490"`
	YearsToMaturity    float64         `json:"years_to_maturity" example:"4.08"`
	PreviousCouponDate string          `json:"previous_coupon_date,omitempty"`
	NextCouponDate     string          `json:"next_coupon_date,omitempty"`
	Market             *MarketResponse `json:"market,omitempty"`
}

func newYieldResponse(q *services.Quote) YieldResponse {
	r := q.Result
	resp := YieldResponse{
		ISIN:            r.ISIN,
		SecurityType:    string(r.SecurityType),
		YieldType:       string(r.YieldType),
		Yield:           r.Yield,
		CleanPrice:      r.CleanPrice,
		AccruedInterest: r.AccruedInterest,
		DirtyPrice:      r.DirtyPrice,
		CouponRate:      r.CouponRate,
		SettlementDate:  r.SettlementDate.Format(dateLayout),
		MaturityDate:    r.MaturityDate.Format(dateLayout),
		DaysToMaturity:  r.DaysToMaturity,
		YearsToMaturity: r.YearsToMaturity,
	}
	if q.Security != nil {
		resp.ShortCode = q.Security.ShortCode
		resp.CountryCode = q.Security.CountryCode
		resp.CountryName = q.Security.CountryName
	}
	if r.PreviousCouponDate != nil {
		resp.PreviousCouponDate = r.PreviousCouponDate.Format(dateLayout)
	}
	if r.NextCouponDate != nil {
		resp.NextCouponDate = r.NextCouponDate.Format(dateLayout)
	}
	if r.Market != nil {
		resp.Market = newMarketResponse(r.Market)
	}
	return resp
}

func newMarketResponse(m *pricing.MarketComparison) *MarketResponse {
	resp := &MarketResponse{
		MarketRate:     m.MarketRate,
		Spread:         m.Spread,
		SpreadText:     m.SpreadText,
		Rating:         string(m.Rating),
		Action:         m.Action,
		Recommendation: m.Recommendation,
		MaturityYears:  m.MaturityYears,
		LowerMaturity:  m.LowerMaturity,
		UpperMaturity:  m.UpperMaturity,
	}
	if !m.CurveDate.IsZero() {
		resp.CurveDate = m.CurveDate.Format(dateLayout)
	}
	return resp
}

// CurvePointResponse is one point of a yield curve. Rates are fractions.
type CurvePointResponse struct {
	MaturityYears  float64  `json:"maturity_years" example:"5"`
	ZeroCouponRate *float64 `json:"zero_coupon_rate,omitempty" example:"0.0612"`
	OATRate        *float64 `json:"oat_rate,omitempty" example:"0.0635"`
}

// CurveResponse is a country's latest yield curve.
type CurveResponse struct {
	CountryCode string               `json:"country_code" example:"SN"`
	UploadDate  time.Time            `json:"upload_date"`
	BatchID     string               `json:"batch_id"`
	Points      []CurvePointResponse `json:"points"`
}

func newCurveResponse(country string, points []models.YieldCurvePoint) CurveResponse {
	resp := CurveResponse{CountryCode: country, Points: make([]CurvePointResponse, len(points))}
	for i, p := range points {
		resp.Points[i] = CurvePointResponse{
			MaturityYears:  p.MaturityYears,
			ZeroCouponRate: p.ZeroCouponRate,
			OATRate:        p.OATRate,
		}
		if p.UploadDate.After(resp.UploadDate) {
			resp.UploadDate = p.UploadDate
			resp.BatchID = p.BatchID
		}
	}
	return resp
}
