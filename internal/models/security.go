package models

import (
	"time"

	"umoabonds/internal/pricing"
)

// SecurityStatus is the catalog lifecycle of a security.
type SecurityStatus string

const (
	SecurityStatusActive   SecurityStatus = "active"
	SecurityStatusMatured  SecurityStatus = "matured"
	SecurityStatusRedeemed SecurityStatus = "redeemed"
)

// Security is a UMOA government security (OAT bond or BAT bill) as published
// by the regional market authority.
type Security struct {
	Base
	ISIN              string               `gorm:"size:12;not null;uniqueIndex" json:"isin"`
	ShortCode         string               `gorm:"size:6;not null;index" json:"short_code"`
	CountryCode       string               `gorm:"size:2;not null;index" json:"country_code"`
	CountryName       string               `json:"country_name"`
	SecurityType      pricing.SecurityType `gorm:"size:3;not null;index" json:"security_type"`
	OriginalMaturity  string               `json:"original_maturity,omitempty"`
	IssueDate         *time.Time           `json:"issue_date,omitempty"`
	MaturityDate      time.Time            `gorm:"not null;index" json:"maturity_date"`
	CouponRate        *float64             `json:"coupon_rate,omitempty"`
	OutstandingAmount *float64             `json:"outstanding_amount,omitempty"`
	Periodicity       string               `gorm:"size:1;not null;default:'A'" json:"periodicity"`
	AmortizationMode  string               `gorm:"not null;default:'IF'" json:"amortization_mode"`
	DeferredYears     int                  `gorm:"not null;default:0" json:"deferred_years"`
	Status            SecurityStatus       `gorm:"size:16;not null;default:'active';index" json:"status"`
	SourceFile        string               `json:"source_file,omitempty"`
	DeprecatedAt      *time.Time           `json:"deprecated_at,omitempty"`
}

// ShortCodeFor derives the shorthand identifier (country code and the last
// four digits) of a full ISIN.
func ShortCodeFor(isin string) string {
	if len(isin) != 12 {
		return ""
	}
	return isin[:2] + isin[8:]
}

// IsActive reports whether the security can still be priced.
func (s *Security) IsActive() bool {
	return s.Status == "" || s.Status == SecurityStatusActive
}

// ToPricing converts the record into the pricing engine's view.
func (s *Security) ToPricing() pricing.Security {
	sec := pricing.Security{
		ISIN:             s.ISIN,
		Type:             s.SecurityType,
		CountryCode:      s.CountryCode,
		MaturityDate:     s.MaturityDate,
		CouponRate:       s.CouponRate,
		Periodicity:      pricing.Periodicity(s.Periodicity),
		AmortizationMode: s.AmortizationMode,
	}
	if s.IssueDate != nil {
		sec.IssueDate = *s.IssueDate
	}
	return sec
}
