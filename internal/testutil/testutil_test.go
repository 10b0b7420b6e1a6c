package testutil_test

import (
	"testing"

	"umoabonds/internal/errors"
	"umoabonds/internal/models"
	"umoabonds/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"securities", "yield_curve_points", "upload_histories"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestOAT(t, first, "SN")

	var count int64
	second.Model(&models.Security{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated databases, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	oat := testutil.CreateTestOAT(t, db, "SN")
	if oat.ID == "" {
		t.Fatal("security should have an ID")
	}
	if len(oat.ISIN) != 12 || oat.ISIN[:2] != "SN" {
		t.Errorf("unexpected ISIN %q", oat.ISIN)
	}
	if oat.ShortCode != "SN"+oat.ISIN[8:] {
		t.Errorf("unexpected short code %q", oat.ShortCode)
	}

	bat := testutil.CreateTestBAT(t, db, "CI")
	if bat.CouponRate != nil {
		t.Errorf("bill should have no coupon, got %v", *bat.CouponRate)
	}

	curve := testutil.CreateTestCurve(t, db, "SN", testutil.Date(2025, 6, 1), [3]float64{1, 0.05, 0.055}, [3]float64{5, 0.06, 0.065})
	if len(curve) != 2 || curve[0].ID == "" {
		t.Errorf("unexpected curve fixture %+v", curve)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.Wrap(errors.ErrSecurityNotFound, nil), "SECURITY_NOT_FOUND")
}
