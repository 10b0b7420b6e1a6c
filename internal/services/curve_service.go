package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/logger"
	"umoabonds/internal/models"
	"umoabonds/internal/uuid"
)

// curveService stores reference yield curves and caches the latest curve of
// each country.
type curveService struct {
	db      *gorm.DB
	history UploadHistoryServicer
	cache   *cache.Cache
	now     func() time.Time
}

// NewCurveService creates a new CurveServicer. Latest curves are cached for
// ttl; a non-positive ttl disables caching.
func NewCurveService(db *gorm.DB, history UploadHistoryServicer, ttl time.Duration) CurveServicer {
	s := &curveService{db: db, history: history, now: time.Now}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

type curveKey struct {
	country  string
	maturity float64
}

// SaveCurves stores one upload batch. Points sharing a country and maturity
// are deduplicated keeping the first; every saved point gets the same upload
// date. Earlier batches are kept as history.
func (s *curveService) SaveCurves(ctx context.Context, sourceFile string, points []CurvePointInput) (*CurveUploadResult, error) {
	if len(points) == 0 {
		return nil, apperrors.ErrEmptyCurve
	}
	start := s.now()
	result := &CurveUploadResult{
		BatchID:    uuid.New(),
		UploadDate: start.UTC(),
	}

	seen := make(map[curveKey]bool)
	countries := make(map[string]bool)
	rows := make([]models.YieldCurvePoint, 0, len(points))
	for i, p := range points {
		country := strings.ToUpper(strings.TrimSpace(p.CountryCode))
		if err := validateCurvePoint(country, p); err != nil {
			result.Errors = append(result.Errors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}
		key := curveKey{country: country, maturity: p.MaturityYears}
		if seen[key] {
			result.Duplicates++
			continue
		}
		seen[key] = true
		countries[country] = true

		rows = append(rows, models.YieldCurvePoint{
			CountryCode:    country,
			MaturityYears:  p.MaturityYears,
			ZeroCouponRate: p.ZeroCouponRate,
			OATRate:        p.OATRate,
			BatchID:        result.BatchID,
			SourceFile:     sourceFile,
			UploadDate:     result.UploadDate,
		})
	}
	if len(rows) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrEmptyCurve, "Yield curve contains no valid points")
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		logger.Get().Errorw("failed to save yield curve", "file", sourceFile, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for country := range countries {
		result.Countries = append(result.Countries, country)
		s.invalidate(country)
	}
	sort.Strings(result.Countries)
	result.Saved = len(rows)

	status := models.UploadStatusSuccess
	if len(result.Errors) > 0 {
		status = models.UploadStatusPartial
	}
	entry := &models.UploadHistory{
		Kind:          models.UploadKindYieldCurve,
		Filename:      sourceFile,
		TotalRecords:  len(points),
		FailedRecords: len(result.Errors),
		Status:        status,
		DurationMS:    s.now().Sub(start).Milliseconds(),
	}
	if len(result.Errors) > 0 {
		entry.ErrorMessage = fmt.Sprintf("%d of %d points rejected", len(result.Errors), len(points))
	}
	s.history.Record(ctx, entry)
	result.UploadID = entry.ID

	logger.Get().Infow("yield curve saved",
		"file", sourceFile,
		"batch_id", result.BatchID,
		"points", result.Saved,
		"duplicates", result.Duplicates,
		"countries", result.Countries,
	)
	return result, nil
}

func validateCurvePoint(country string, p CurvePointInput) error {
	if !models.IsCountryCode(country) {
		return fmt.Errorf("unknown country code %q", p.CountryCode)
	}
	if math.IsNaN(p.MaturityYears) || p.MaturityYears <= 0 {
		return fmt.Errorf("maturity %g must be positive", p.MaturityYears)
	}
	if p.ZeroCouponRate == nil && p.OATRate == nil {
		return errors.New("point has neither a zero coupon nor an OAT rate")
	}
	for _, r := range []*float64{p.ZeroCouponRate, p.OATRate} {
		if r != nil && (math.IsNaN(*r) || math.Abs(*r) >= 1) {
			return fmt.Errorf("rate %g must be a fraction", *r)
		}
	}
	return nil
}

// GetLatestCurve returns the most recent batch of country's curve in
// ascending maturity. A country without a curve yields an empty slice.
func (s *curveService) GetLatestCurve(ctx context.Context, country string) ([]models.YieldCurvePoint, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if s.cache != nil {
		if v, ok := s.cache.Get(country); ok {
			return clonePoints(v.([]models.YieldCurvePoint)), nil
		}
	}

	db := s.db.WithContext(ctx)
	var latest models.YieldCurvePoint
	err := db.Where("country_code = ?", country).
		Order("upload_date DESC").Order("batch_id DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.YieldCurvePoint{}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var points []models.YieldCurvePoint
	err = db.Where("country_code = ? AND batch_id = ?", country, latest.BatchID).
		Order("maturity_years ASC").
		Find(&points).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if s.cache != nil {
		s.cache.SetDefault(country, clonePoints(points))
	}
	return points, nil
}

func (s *curveService) invalidate(country string) {
	if s.cache != nil {
		s.cache.Delete(country)
	}
}

func clonePoints(points []models.YieldCurvePoint) []models.YieldCurvePoint {
	out := make([]models.YieldCurvePoint, len(points))
	copy(out, points)
	return out
}
