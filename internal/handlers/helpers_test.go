package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"umoabonds/internal/logger"
	"umoabonds/internal/models"
	"umoabonds/internal/pagination"
	"umoabonds/internal/services"
	"umoabonds/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	logger.Silence()
}

// --- mock services ---

type mockSecurityService struct {
	resolveFn       func(identifier string) (*models.Security, error)
	searchFn        func(query string) ([]models.Security, error)
	listByCountryFn func(country string, page pagination.PageRequest) (*pagination.PageResponse[models.Security], error)
	countriesFn     func() ([]services.CountrySummary, error)
	statsFn         func() (*services.CatalogStats, error)
	importFn        func(filename string, rows []services.SecurityInput) (*services.ImportResult, error)
	fixFn           func() (*services.ClassificationFix, error)
}

var _ services.SecurityServicer = (*mockSecurityService)(nil)

func (m *mockSecurityService) ResolveSecurity(_ context.Context, identifier string) (*models.Security, error) {
	if m.resolveFn != nil {
		return m.resolveFn(identifier)
	}
	return &models.Security{}, nil
}

func (m *mockSecurityService) Search(_ context.Context, query string) ([]models.Security, error) {
	if m.searchFn != nil {
		return m.searchFn(query)
	}
	return nil, nil
}

func (m *mockSecurityService) ListByCountry(_ context.Context, country string, page pagination.PageRequest) (*pagination.PageResponse[models.Security], error) {
	if m.listByCountryFn != nil {
		return m.listByCountryFn(country, page)
	}
	resp := pagination.NewPageResponse([]models.Security{}, 1, pagination.DefaultPageSize, 0)
	return &resp, nil
}

func (m *mockSecurityService) Countries(_ context.Context) ([]services.CountrySummary, error) {
	if m.countriesFn != nil {
		return m.countriesFn()
	}
	return nil, nil
}

func (m *mockSecurityService) Stats(_ context.Context) (*services.CatalogStats, error) {
	if m.statsFn != nil {
		return m.statsFn()
	}
	return &services.CatalogStats{}, nil
}

func (m *mockSecurityService) ImportSecurities(_ context.Context, filename string, rows []services.SecurityInput) (*services.ImportResult, error) {
	if m.importFn != nil {
		return m.importFn(filename, rows)
	}
	return &services.ImportResult{}, nil
}

func (m *mockSecurityService) FixClassifications(_ context.Context) (*services.ClassificationFix, error) {
	if m.fixFn != nil {
		return m.fixFn()
	}
	return &services.ClassificationFix{}, nil
}

type mockCurveService struct {
	saveFn      func(sourceFile string, points []services.CurvePointInput) (*services.CurveUploadResult, error)
	getLatestFn func(country string) ([]models.YieldCurvePoint, error)
}

var _ services.CurveServicer = (*mockCurveService)(nil)

func (m *mockCurveService) SaveCurves(_ context.Context, sourceFile string, points []services.CurvePointInput) (*services.CurveUploadResult, error) {
	if m.saveFn != nil {
		return m.saveFn(sourceFile, points)
	}
	return &services.CurveUploadResult{Saved: len(points)}, nil
}

func (m *mockCurveService) GetLatestCurve(_ context.Context, country string) ([]models.YieldCurvePoint, error) {
	if m.getLatestFn != nil {
		return m.getLatestFn(country)
	}
	return []models.YieldCurvePoint{}, nil
}

type mockHistoryService struct {
	recorded []*models.UploadHistory
	listFn   func(limit int) ([]models.UploadHistory, error)
}

var _ services.UploadHistoryServicer = (*mockHistoryService)(nil)

func (m *mockHistoryService) Record(_ context.Context, entry *models.UploadHistory) {
	m.recorded = append(m.recorded, entry)
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]models.UploadHistory, error) {
	if m.listFn != nil {
		return m.listFn(limit)
	}
	return nil, nil
}

type mockPricingService struct {
	priceFn func(req services.PricingRequest) (*services.Quote, error)
}

var _ services.PricingServicer = (*mockPricingService)(nil)

func (m *mockPricingService) Price(_ context.Context, req services.PricingRequest) (*services.Quote, error) {
	if m.priceFn != nil {
		return m.priceFn(req)
	}
	return &services.Quote{}, nil
}

type mockAnalyticsService struct {
	searches []string
	resets   int
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

func (m *mockAnalyticsService) RecordSearch(query string, _ []models.Security) {
	m.searches = append(m.searches, query)
}

func (m *mockAnalyticsService) Snapshot() services.AnalyticsSnapshot {
	return services.AnalyticsSnapshot{TotalSearches: int64(len(m.searches))}
}

func (m *mockAnalyticsService) Reset() {
	m.resets++
	m.searches = nil
}

// --- request helpers ---

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doUpload(r *gin.Engine, path, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile("file", filename)
	_, _ = part.Write([]byte(content))
	_ = w.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func floatPtr(v float64) *float64 { return &v }
