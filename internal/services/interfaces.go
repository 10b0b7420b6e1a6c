package services

import (
	"context"
	"time"

	"umoabonds/internal/models"
	"umoabonds/internal/pagination"
	"umoabonds/internal/pricing"
)

// SecurityServicer defines the contract for the security catalog.
type SecurityServicer interface {
	ResolveSecurity(ctx context.Context, identifier string) (*models.Security, error)
	Search(ctx context.Context, query string) ([]models.Security, error)
	ListByCountry(ctx context.Context, country string, page pagination.PageRequest) (*pagination.PageResponse[models.Security], error)
	Countries(ctx context.Context) ([]CountrySummary, error)
	Stats(ctx context.Context) (*CatalogStats, error)
	ImportSecurities(ctx context.Context, filename string, rows []SecurityInput) (*ImportResult, error)
	FixClassifications(ctx context.Context) (*ClassificationFix, error)
}

// CurveServicer defines the contract for the yield curve store.
type CurveServicer interface {
	SaveCurves(ctx context.Context, sourceFile string, points []CurvePointInput) (*CurveUploadResult, error)
	GetLatestCurve(ctx context.Context, country string) ([]models.YieldCurvePoint, error)
}

// UploadHistoryServicer records and lists imports.
type UploadHistoryServicer interface {
	Record(ctx context.Context, entry *models.UploadHistory)
	List(ctx context.Context, limit int) ([]models.UploadHistory, error)
}

// PricingServicer prices catalog securities.
type PricingServicer interface {
	Price(ctx context.Context, req PricingRequest) (*Quote, error)
}

// AnalyticsServicer keeps in-memory search statistics.
type AnalyticsServicer interface {
	RecordSearch(query string, results []models.Security)
	Snapshot() AnalyticsSnapshot
	Reset()
}

// SecurityInput is one catalog row to import. CountryCode defaults to the
// ISIN prefix.
type SecurityInput struct {
	ISIN              string
	CountryCode       string
	SecurityType      pricing.SecurityType
	OriginalMaturity  string
	IssueDate         *time.Time
	MaturityDate      time.Time
	CouponRate        *float64
	OutstandingAmount *float64
	Periodicity       string
	AmortizationMode  string
	DeferredYears     int
}

// RowError describes a rejected input row. Row is 1-based.
type RowError struct {
	Row     int    `json:"row"`
	ISIN    string `json:"isin,omitempty"`
	Message string `json:"message"`
}

// ImportResult summarises a catalog import.
type ImportResult struct {
	UploadID   string              `json:"upload_id"`
	Added      int                 `json:"securities_added"`
	Updated    int                 `json:"securities_updated"`
	Deprecated int                 `json:"securities_deprecated"`
	Total      int                 `json:"total_records"`
	Status     models.UploadStatus `json:"status"`
	Errors     []RowError          `json:"errors,omitempty"`
	Duration   time.Duration       `json:"-"`
}

// ClassificationFix reports how many securities changed type.
type ClassificationFix struct {
	ToOAT int64 `json:"reclassified_to_oat"`
	ToBAT int64 `json:"reclassified_to_bat"`
}

// CountrySummary counts active securities of a member state.
type CountrySummary struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
	OAT   int64  `json:"oat"`
	BAT   int64  `json:"bat"`
}

// CatalogStats describes the catalog as a whole.
type CatalogStats struct {
	TotalSecurities  int64                 `json:"total_securities"`
	ActiveSecurities int64                 `json:"active_securities"`
	OATCount         int64                 `json:"oat_count"`
	BATCount         int64                 `json:"bat_count"`
	MaturedCount     int64                 `json:"matured_count"`
	CountryCount     int                   `json:"country_count"`
	LastUpdate       *time.Time            `json:"last_update,omitempty"`
	LastUpload       *models.UploadHistory `json:"last_upload,omitempty"`
}

// CurvePointInput is one uploaded curve point. Rates are fractions.
type CurvePointInput struct {
	CountryCode    string
	MaturityYears  float64
	ZeroCouponRate *float64
	OATRate        *float64
}

// CurveUploadResult summarises a curve upload.
type CurveUploadResult struct {
	UploadID   string     `json:"upload_id"`
	BatchID    string     `json:"batch_id"`
	UploadDate time.Time  `json:"upload_date"`
	Saved      int        `json:"points_saved"`
	Duplicates int        `json:"duplicates_skipped"`
	Countries  []string   `json:"countries"`
	Errors     []RowError `json:"errors,omitempty"`
}

// PricingRequest asks for the yield of a security at a clean price.
// A nil SettlementDate means today.
type PricingRequest struct {
	Identifier     string
	Price          float64
	SettlementDate *time.Time
}

// Quote is a priced security. Result figures are rounded for display.
type Quote struct {
	Security *models.Security
	Result   pricing.Result
}

// AnalyticsSnapshot is a point-in-time copy of the search statistics.
type AnalyticsSnapshot struct {
	TotalSearches      int64          `json:"total_searches"`
	SuccessfulSearches int64          `json:"successful_searches"`
	FailedSearches     int64          `json:"failed_searches"`
	SuccessRate        float64        `json:"success_rate"`
	TopSearches        []SearchCount  `json:"top_searches"`
	ByCountry          map[string]int `json:"by_country"`
	ByType             map[string]int `json:"by_type"`
	Recent             []SearchEvent  `json:"recent"`
	Since              time.Time      `json:"since"`
}

// SearchCount is how often a query was issued.
type SearchCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// SearchEvent is one recorded search.
type SearchEvent struct {
	Query   string    `json:"query"`
	Results int       `json:"results"`
	At      time.Time `json:"at"`
}
