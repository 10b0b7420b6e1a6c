package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"umoabonds/internal/models"
	"umoabonds/internal/pricing"
	"umoabonds/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given calendar day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// NextISIN returns a unique, well-formed ISIN for country.
func NextISIN(country string) string {
	return fmt.Sprintf("%s%010d", country, nextID())
}

// NewOAT returns an unsaved active coupon bond with a unique ISIN.
func NewOAT(country string, coupon float64, issue, maturity time.Time) *models.Security {
	isin := NextISIN(country)
	return &models.Security{
		ISIN:             isin,
		ShortCode:        models.ShortCodeFor(isin),
		CountryCode:      country,
		CountryName:      models.CountryName(country),
		SecurityType:     pricing.CouponBond,
		IssueDate:        &issue,
		MaturityDate:     maturity,
		CouponRate:       Float(coupon),
		Periodicity:      string(pricing.Annual),
		AmortizationMode: "IF",
		Status:           models.SecurityStatusActive,
	}
}

// NewBAT returns an unsaved active discount bill with a unique ISIN.
func NewBAT(country string, issue, maturity time.Time) *models.Security {
	isin := NextISIN(country)
	return &models.Security{
		ISIN:             isin,
		ShortCode:        models.ShortCodeFor(isin),
		CountryCode:      country,
		CountryName:      models.CountryName(country),
		SecurityType:     pricing.DiscountBill,
		IssueDate:        &issue,
		MaturityDate:     maturity,
		Periodicity:      string(pricing.Annual),
		AmortizationMode: "IF",
		Status:           models.SecurityStatusActive,
	}
}

// CreateTestSecurity persists sec.
func CreateTestSecurity(t *testing.T, db *gorm.DB, sec *models.Security) *models.Security {
	t.Helper()

	if err := db.Create(sec).Error; err != nil {
		t.Fatalf("failed to create test security: %v", err)
	}
	return sec
}

// CreateTestOAT creates a 6% annual coupon bond maturing in five years.
func CreateTestOAT(t *testing.T, db *gorm.DB, country string) *models.Security {
	t.Helper()
	return CreateTestSecurity(t, db, NewOAT(country, 0.06, Date(2025, 3, 3), Date(2030, 3, 3)))
}

// CreateTestBAT creates a one-year discount bill.
func CreateTestBAT(t *testing.T, db *gorm.DB, country string) *models.Security {
	t.Helper()
	return CreateTestSecurity(t, db, NewBAT(country, Date(2025, 6, 2), Date(2026, 6, 1)))
}

// CreateTestCurve stores a curve batch for country uploaded at uploadDate.
// points are (maturity years, zero coupon rate, oat rate) triples.
func CreateTestCurve(t *testing.T, db *gorm.DB, country string, uploadDate time.Time, points ...[3]float64) []models.YieldCurvePoint {
	t.Helper()

	batch := uuid.New()
	rows := make([]models.YieldCurvePoint, len(points))
	for i, p := range points {
		rows[i] = models.YieldCurvePoint{
			CountryCode:    country,
			MaturityYears:  p[0],
			ZeroCouponRate: Float(p[1]),
			OATRate:        Float(p[2]),
			BatchID:        batch,
			SourceFile:     "test_curve.csv",
			UploadDate:     uploadDate,
		}
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("failed to create test curve: %v", err)
	}
	return rows
}
