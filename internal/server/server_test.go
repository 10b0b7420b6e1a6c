package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"umoabonds/internal/config"
	"umoabonds/internal/database"
	"umoabonds/internal/logger"
	"umoabonds/internal/testutil"
	"umoabonds/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
	validator.Register()
}

// testApp holds the full application stack backed by an in-memory SQLite.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping(ctx context.Context) error { return database.Ping(ctx, p.db) }

func testConfig() *config.Config {
	return &config.Config{
		Env:               "test",
		CurveCacheTTL:     time.Minute,
		RatingUpperSpread: 0.5,
		RatingLowerSpread: -0.5,
		MaxUploadBytes:    1 << 20,
	}
}

func setupApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	svc, err := NewServices(db, cfg)
	if err != nil {
		t.Fatalf("failed to build services: %v", err)
	}
	return &testApp{DB: db, Router: NewRouter(cfg, gormPinger{db}, svc)}
}

func (a *testApp) request(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec.Code, decode(t, rec)
}

func (a *testApp) upload(t *testing.T, path, filename, content string) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	_, _ = part.Write([]byte(content))
	_ = w.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec.Code, decode(t, rec)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

const catalogCSV = "isin;security_type;original_maturity;issue_date;maturity_date;coupon_rate;periodicity\n" +
	"SN0000003001;OAT;5 ans;03/03/2025;03/03/2030;6,00;A\n" +
	"SN0000003002;BAT;12 mois;01/06/2026;01/06/2035;;\n" +
	"CI0000004001;OAT;7 ans;15/01/2024;15/01/2031;5,75;S\n"

const curveCSV = "country_code,maturity_years,zero_coupon_rate,oat_rate\n" +
	"SN,1,4.8,5.0\n" +
	"SN,5,6.2,6.5\n" +
	"SN,5,9.9,9.9\n"

func TestCatalogAndPricingFlow(t *testing.T) {
	app := setupApp(t, testConfig())

	code, body := app.upload(t, "/api/v1/securities/import", "titres.csv", catalogCSV)
	if code != http.StatusOK {
		t.Fatalf("import: expected 200, got %d: %v", code, body)
	}
	if body["securities_added"] != float64(3) {
		t.Fatalf("import: expected 3 added, got %v", body)
	}

	t.Run("search_by_short_code", func(t *testing.T) {
		code, body := app.request(t, "POST", "/api/v1/search", `{"query":"sn3001"}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		results := body["results"].([]interface{})
		if len(results) != 1 || results[0].(map[string]interface{})["isin"] != "SN0000003001" {
			t.Errorf("unexpected results %v", results)
		}
	})

	t.Run("reimport_updates", func(t *testing.T) {
		code, body := app.upload(t, "/api/v1/securities/import", "titres.csv", catalogCSV)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		if body["securities_added"] != float64(0) || body["securities_updated"] != float64(3) {
			t.Errorf("expected 3 updates, got %v", body)
		}
	})

	t.Run("price_without_curve", func(t *testing.T) {
		code, body := app.request(t, "POST", "/api/v1/calculate-yield",
			`{"isin":"SN0000003001","price":100,"settlement_date":"2025-09-02"}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		testutil.AssertClose(t, "yield", body["yield"].(float64), 6.0, 0.05)
		if _, ok := body["market"]; ok {
			t.Error("expected no market block before a curve is uploaded")
		}
	})

	t.Run("curve_upload_deduplicates", func(t *testing.T) {
		code, body := app.upload(t, "/api/v1/yield-curves/upload", "courbe.csv", curveCSV)
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %v", code, body)
		}
		if body["points_saved"] != float64(2) || body["duplicates_skipped"] != float64(1) {
			t.Errorf("unexpected summary %v", body)
		}

		code, body = app.request(t, "GET", "/api/v1/yield-curves/SN", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		points := body["points"].([]interface{})
		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		testutil.AssertClose(t, "5y oat rate", points[1].(map[string]interface{})["oat_rate"].(float64), 0.065, 1e-9)
	})

	t.Run("price_with_market_comparison", func(t *testing.T) {
		code, body := app.request(t, "GET", "/api/v1/securities/SN3001/yield?price=100&settlement_date=2025-09-02", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		market, ok := body["market"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected market block, got %v", body)
		}
		testutil.AssertClose(t, "market rate", market["market_rate"].(float64), 6.313, 0.01)
		if market["rating"] != "fair" || market["lower_maturity"] != float64(1) || market["upper_maturity"] != float64(5) {
			t.Errorf("unexpected market block %v", market)
		}
	})

	t.Run("discount_bill", func(t *testing.T) {
		code, body := app.request(t, "POST", "/api/v1/calculate-yield",
			`{"isin":"SN0000003002","price":97.5,"settlement_date":"2034-06-01"}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		if body["yield_type"] != "Discount Yield" {
			t.Errorf("unexpected yield type %v", body["yield_type"])
		}
		testutil.AssertClose(t, "bill yield", body["yield"].(float64), 2.5641, 1e-4)
	})

	t.Run("settlement_after_maturity", func(t *testing.T) {
		code, body := app.request(t, "POST", "/api/v1/calculate-yield",
			`{"isin":"SN0000003001","price":100,"settlement_date":"2030-03-04"}`)
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %v", code, body)
		}
		if body["error"].(map[string]interface{})["code"] != "SECURITY_MATURED" {
			t.Errorf("unexpected error %v", body)
		}
	})

	t.Run("invalid_price", func(t *testing.T) {
		code, body := app.request(t, "POST", "/api/v1/calculate-yield", `{"isin":"SN0000003001","price":250}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %v", code, body)
		}
		if body["error"].(map[string]interface{})["code"] != "INVALID_PRICE" {
			t.Errorf("unexpected error %v", body)
		}
	})

	t.Run("unknown_security", func(t *testing.T) {
		code, _ := app.request(t, "GET", "/api/v1/securities/TG0000000001", "")
		if code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}
	})

	t.Run("catalog_views", func(t *testing.T) {
		code, body := app.request(t, "GET", "/api/v1/countries/SN/securities?page_size=1", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", code, body)
		}
		if body["total_items"] != float64(2) || body["has_next"] != true {
			t.Errorf("unexpected page %v", body)
		}

		code, body = app.request(t, "GET", "/api/v1/stats", "")
		if code != http.StatusOK || body["active_securities"] != float64(3) {
			t.Errorf("unexpected stats %d %v", code, body)
		}

		code, body = app.request(t, "GET", "/api/v1/uploads", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if uploads := body["uploads"].([]interface{}); len(uploads) != 3 {
			t.Errorf("expected 3 uploads, got %d", len(uploads))
		}
	})

	t.Run("analytics_and_health", func(t *testing.T) {
		code, body := app.request(t, "GET", "/api/v1/analytics", "")
		if code != http.StatusOK || body["total_searches"] != float64(1) {
			t.Errorf("unexpected analytics %d %v", code, body)
		}

		code, body = app.request(t, "GET", "/api/health", "")
		if code != http.StatusOK || body["status"] != "ok" || body["active_securities"] != float64(3) {
			t.Errorf("unexpected health %d %v", code, body)
		}
	})
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 2
	app := setupApp(t, cfg)

	for i := 0; i < 2; i++ {
		if code, _ := app.request(t, "GET", "/api/v1/analytics", ""); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	code, body := app.request(t, "GET", "/api/v1/analytics", "")
	if code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if body["error"].(map[string]interface{})["code"] != "RATE_LIMITED" {
		t.Errorf("unexpected body %v", body)
	}

	if code, _ := app.request(t, "GET", "/api/health", ""); code != http.StatusOK {
		t.Errorf("health must not be rate limited, got %d", code)
	}
}

func TestNewServices_RejectsInvertedThresholds(t *testing.T) {
	cfg := testConfig()
	cfg.RatingUpperSpread, cfg.RatingLowerSpread = -1, 1

	if _, err := NewServices(testutil.SetupTestDB(t), cfg); err == nil {
		t.Error("expected error for inverted rating thresholds")
	}
}
