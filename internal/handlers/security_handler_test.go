package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/models"
	"umoabonds/internal/pagination"
	"umoabonds/internal/pricing"
	"umoabonds/internal/services"
)

func setupSecurityRouter(handler *SecurityHandler) *gin.Engine {
	r := gin.New()
	r.POST("/search", handler.Search)
	r.GET("/securities/:isin", handler.GetSecurity)
	r.POST("/securities/fix-classifications", handler.FixClassifications)
	r.GET("/countries", handler.Countries)
	r.GET("/countries/:code/securities", handler.ListByCountry)
	r.GET("/stats", handler.Stats)
	return r
}

func sampleSecurity() models.Security {
	issue := time.Date(2019, 1, 9, 0, 0, 0, 0, time.UTC)
	coupon := 0.051
	return models.Security{
		ISIN:         "SN0000002171",
		ShortCode:    "SN2171",
		CountryCode:  "SN",
		CountryName:  "Sénégal",
		SecurityType: pricing.CouponBond,
		IssueDate:    &issue,
		MaturityDate: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		CouponRate:   &coupon,
		Periodicity:  "A",
		Status:       models.SecurityStatusActive,
	}
}

func TestSecurityHandler_Search(t *testing.T) {
	t.Run("returns_matches_and_records_search", func(t *testing.T) {
		analytics := &mockAnalyticsService{}
		svc := &mockSecurityService{
			searchFn: func(query string) ([]models.Security, error) {
				if query != "sn2171" {
					t.Errorf("expected raw query to reach the service, got %q", query)
				}
				return []models.Security{sampleSecurity()}, nil
			},
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, analytics))

		rec := doRequest(r, "POST", "/search", `{"query":"sn2171"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"] != float64(1) {
			t.Errorf("expected count=1, got %v", result["count"])
		}
		first := result["results"].([]interface{})[0].(map[string]interface{})
		if first["isin"] != "SN0000002171" || first["maturity_date"] != "2026-01-09" {
			t.Errorf("unexpected result %v", first)
		}
		if len(analytics.searches) != 1 {
			t.Errorf("expected search to be recorded, got %v", analytics.searches)
		}
	})

	t.Run("empty_result_is_an_empty_list", func(t *testing.T) {
		r := setupSecurityRouter(NewSecurityHandler(&mockSecurityService{}, &mockAnalyticsService{}))

		rec := doRequest(r, "POST", "/search", `{"query":"CI0000009999"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if results, ok := result["results"].([]interface{}); !ok || len(results) != 0 {
			t.Errorf("expected empty results array, got %v", result["results"])
		}
	})

	t.Run("returns_400_for_malformed_identifier", func(t *testing.T) {
		analytics := &mockAnalyticsService{}
		r := setupSecurityRouter(NewSecurityHandler(&mockSecurityService{}, analytics))

		rec := doRequest(r, "POST", "/search", `{"query":"FR12"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if len(analytics.searches) != 0 {
			t.Error("rejected query must not be recorded")
		}
	})
}

func TestSecurityHandler_GetSecurity(t *testing.T) {
	t.Run("returns_security", func(t *testing.T) {
		svc := &mockSecurityService{
			resolveFn: func(identifier string) (*models.Security, error) {
				sec := sampleSecurity()
				return &sec, nil
			},
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/securities/SN2171", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["short_code"] != "SN2171" || result["issue_date"] != "2019-01-09" {
			t.Errorf("unexpected body %v", result)
		}
	})

	t.Run("returns_404_when_unknown", func(t *testing.T) {
		svc := &mockSecurityService{
			resolveFn: func(string) (*models.Security, error) { return nil, apperrors.ErrSecurityNotFound },
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/securities/SN0000000000", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SECURITY_NOT_FOUND")
	})
}

func TestSecurityHandler_ListByCountry(t *testing.T) {
	t.Run("passes_pagination", func(t *testing.T) {
		svc := &mockSecurityService{
			listByCountryFn: func(country string, page pagination.PageRequest) (*pagination.PageResponse[models.Security], error) {
				if country != "SN" || page.Page != 2 || page.PageSize != 1 {
					t.Errorf("unexpected arguments %q %+v", country, page)
				}
				resp := pagination.NewPageResponse([]models.Security{sampleSecurity()}, 2, 1, 3)
				return &resp, nil
			},
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/countries/SN/securities?page=2&page_size=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(3) || result["has_next"] != true {
			t.Errorf("unexpected metadata %v", result)
		}
		data := result["data"].([]interface{})
		if data[0].(map[string]interface{})["isin"] != "SN0000002171" {
			t.Errorf("unexpected data %v", data)
		}
	})

	t.Run("returns_400_for_oversized_page", func(t *testing.T) {
		r := setupSecurityRouter(NewSecurityHandler(&mockSecurityService{}, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/countries/SN/securities?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns_400_for_unknown_country", func(t *testing.T) {
		svc := &mockSecurityService{
			listByCountryFn: func(string, pagination.PageRequest) (*pagination.PageResponse[models.Security], error) {
				return nil, apperrors.ErrInvalidCountryCode
			},
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/countries/FR/securities", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_COUNTRY_CODE")
	})
}

func TestSecurityHandler_Countries(t *testing.T) {
	svc := &mockSecurityService{
		countriesFn: func() ([]services.CountrySummary, error) {
			return []services.CountrySummary{{Code: "CI", Name: "Côte d'Ivoire", Total: 4, OAT: 3, BAT: 1}}, nil
		},
	}
	r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

	rec := doRequest(r, "GET", "/countries", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	countries := parseJSON(t, rec)["countries"].([]interface{})
	if len(countries) != 1 || countries[0].(map[string]interface{})["oat"] != float64(3) {
		t.Errorf("unexpected countries %v", countries)
	}
}

func TestSecurityHandler_Stats(t *testing.T) {
	t.Run("returns_stats", func(t *testing.T) {
		svc := &mockSecurityService{
			statsFn: func() (*services.CatalogStats, error) {
				return &services.CatalogStats{TotalSecurities: 10, ActiveSecurities: 8, OATCount: 5, BATCount: 3}, nil
			},
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["active_securities"] != float64(8) {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("returns_500_on_service_error", func(t *testing.T) {
		svc := &mockSecurityService{
			statsFn: func() (*services.CatalogStats, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, http.ErrHandlerTimeout)
			},
		}
		r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/stats", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}

func TestSecurityHandler_FixClassifications(t *testing.T) {
	svc := &mockSecurityService{
		fixFn: func() (*services.ClassificationFix, error) {
			return &services.ClassificationFix{ToOAT: 2, ToBAT: 1}, nil
		},
	}
	r := setupSecurityRouter(NewSecurityHandler(svc, &mockAnalyticsService{}))

	rec := doRequest(r, "POST", "/securities/fix-classifications", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["reclassified_to_oat"] != float64(2) || result["reclassified_to_bat"] != float64(1) {
		t.Errorf("unexpected body %v", result)
	}
}
