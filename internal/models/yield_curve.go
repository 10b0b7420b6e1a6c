package models

import (
	"time"

	"umoabonds/internal/pricing"
)

// YieldCurvePoint is one maturity bucket of a country's reference curve.
// Every upload batch shares a single BatchID and UploadDate; the most recent
// batch of a country is its current curve.
type YieldCurvePoint struct {
	Base
	CountryCode    string    `gorm:"size:2;not null;index:idx_curve_country_upload" json:"country_code"`
	MaturityYears  float64   `gorm:"not null" json:"maturity_years"`
	ZeroCouponRate *float64  `json:"zero_coupon_rate,omitempty"`
	OATRate        *float64  `gorm:"column:oat_rate" json:"oat_rate,omitempty"`
	BatchID        string    `gorm:"type:uuid;not null;index" json:"batch_id"`
	SourceFile     string    `json:"source_file,omitempty"`
	UploadDate     time.Time `gorm:"not null;index:idx_curve_country_upload" json:"upload_date"`
}

// ToPricing converts the point into the pricing engine's view.
func (p *YieldCurvePoint) ToPricing() pricing.CurvePoint {
	return pricing.CurvePoint{
		MaturityYears:  p.MaturityYears,
		ZeroCouponRate: p.ZeroCouponRate,
		OATRate:        p.OATRate,
		UploadDate:     p.UploadDate,
	}
}

// CurveToPricing converts a stored curve.
func CurveToPricing(points []YieldCurvePoint) []pricing.CurvePoint {
	out := make([]pricing.CurvePoint, len(points))
	for i := range points {
		out[i] = points[i].ToPricing()
	}
	return out
}
