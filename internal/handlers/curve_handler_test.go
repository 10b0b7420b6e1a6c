package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/models"
	"umoabonds/internal/services"
)

func setupCurveRouter(handler *CurveHandler) *gin.Engine {
	r := gin.New()
	r.POST("/yield-curves", handler.SaveCurve)
	r.POST("/yield-curves/upload", handler.UploadCurve)
	r.GET("/yield-curves/:country", handler.GetCurve)
	return r
}

func TestCurveHandler_SaveCurve(t *testing.T) {
	t.Run("returns_201_on_success", func(t *testing.T) {
		svc := &mockCurveService{
			saveFn: func(sourceFile string, points []services.CurvePointInput) (*services.CurveUploadResult, error) {
				if sourceFile != "api" {
					t.Errorf("expected default source file, got %q", sourceFile)
				}
				if len(points) != 2 || points[1].OATRate == nil || *points[1].OATRate != 0.064 {
					t.Errorf("unexpected points %+v", points)
				}
				return &services.CurveUploadResult{Saved: 2, Countries: []string{"SN"}}, nil
			},
		}
		r := setupCurveRouter(NewCurveHandler(svc, &mockHistoryService{}, 0))

		rec := doRequest(r, "POST", "/yield-curves",
			`{"points":[{"country_code":"SN","maturity_years":1,"zero_coupon_rate":0.055},{"country_code":"sn","maturity_years":5,"oat_rate":0.064}]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["points_saved"] != float64(2) {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("returns_400_without_points", func(t *testing.T) {
		r := setupCurveRouter(NewCurveHandler(&mockCurveService{}, &mockHistoryService{}, 0))

		rec := doRequest(r, "POST", "/yield-curves", `{"points":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_400_for_foreign_country", func(t *testing.T) {
		r := setupCurveRouter(NewCurveHandler(&mockCurveService{}, &mockHistoryService{}, 0))

		rec := doRequest(r, "POST", "/yield-curves", `{"points":[{"country_code":"FR","maturity_years":2}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns_400_for_non_positive_maturity", func(t *testing.T) {
		r := setupCurveRouter(NewCurveHandler(&mockCurveService{}, &mockHistoryService{}, 0))

		rec := doRequest(r, "POST", "/yield-curves", `{"points":[{"country_code":"SN","maturity_years":-1}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCurveHandler_UploadCurve(t *testing.T) {
	t.Run("parses_csv", func(t *testing.T) {
		svc := &mockCurveService{
			saveFn: func(sourceFile string, points []services.CurvePointInput) (*services.CurveUploadResult, error) {
				if sourceFile != "courbe.csv" || len(points) != 2 {
					t.Errorf("unexpected upload %q %+v", sourceFile, points)
				}
				return &services.CurveUploadResult{Saved: len(points)}, nil
			},
		}
		r := setupCurveRouter(NewCurveHandler(svc, &mockHistoryService{}, 1<<20))

		rec := doUpload(r, "/yield-curves/upload", "courbe.csv",
			"country_code;maturity_years;zero_coupon_rate;oat_rate\nCI;1;5,2;\nCI;3;5,9;6,1\n")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("propagates_empty_curve", func(t *testing.T) {
		svc := &mockCurveService{
			saveFn: func(string, []services.CurvePointInput) (*services.CurveUploadResult, error) {
				return nil, apperrors.ErrEmptyCurve
			},
		}
		r := setupCurveRouter(NewCurveHandler(svc, &mockHistoryService{}, 1<<20))

		rec := doUpload(r, "/yield-curves/upload", "courbe.csv", "country_code,maturity_years\n")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EMPTY_CURVE")
	})
}

func TestCurveHandler_GetCurve(t *testing.T) {
	t.Run("returns_latest_curve", func(t *testing.T) {
		uploaded := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
		svc := &mockCurveService{
			getLatestFn: func(country string) ([]models.YieldCurvePoint, error) {
				if country != "SN" {
					t.Errorf("expected normalised country, got %q", country)
				}
				return []models.YieldCurvePoint{
					{CountryCode: "SN", MaturityYears: 1, ZeroCouponRate: floatPtr(0.055), BatchID: "b1", UploadDate: uploaded},
					{CountryCode: "SN", MaturityYears: 5, OATRate: floatPtr(0.064), BatchID: "b1", UploadDate: uploaded},
				}, nil
			},
		}
		r := setupCurveRouter(NewCurveHandler(svc, &mockHistoryService{}, 0))

		rec := doRequest(r, "GET", "/yield-curves/sn", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["batch_id"] != "b1" || len(result["points"].([]interface{})) != 2 {
			t.Errorf("unexpected body %v", result)
		}
	})

	t.Run("returns_404_without_curve", func(t *testing.T) {
		r := setupCurveRouter(NewCurveHandler(&mockCurveService{}, &mockHistoryService{}, 0))

		rec := doRequest(r, "GET", "/yield-curves/TG", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CURVE_NOT_FOUND")
	})

	t.Run("returns_400_for_unknown_country", func(t *testing.T) {
		r := setupCurveRouter(NewCurveHandler(&mockCurveService{}, &mockHistoryService{}, 0))

		rec := doRequest(r, "GET", "/yield-curves/US", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_COUNTRY_CODE")
	})
}
