package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/logger"
	"umoabonds/internal/models"
	"umoabonds/internal/pagination"
	"umoabonds/internal/pricing"
	"umoabonds/internal/validator"
)

// suspiciousCoupon is the coupon fraction above which an imported rate was
// probably stated in percent.
const suspiciousCoupon = 0.5

// securityService handles the security catalog.
type securityService struct {
	db      *gorm.DB
	history UploadHistoryServicer
	now     func() time.Time
}

// NewSecurityService creates a new SecurityServicer.
func NewSecurityService(db *gorm.DB, history UploadHistoryServicer) SecurityServicer {
	return &securityService{db: db, history: history, now: time.Now}
}

func (s *securityService) today() time.Time {
	return pricing.DateOnly(s.now())
}

// identifierScope matches a full ISIN or a short code (country + last four
// digits). Anything else is rejected.
func identifierScope(identifier string) (func(*gorm.DB) *gorm.DB, error) {
	id := validator.NormalizeIdentifier(identifier)
	switch {
	case validator.IsISIN(id):
		return func(db *gorm.DB) *gorm.DB { return db.Where("isin = ?", id) }, nil
	case validator.IsShortCode(id):
		return func(db *gorm.DB) *gorm.DB { return db.Where("short_code = ?", id) }, nil
	default:
		return nil, apperrors.ErrInvalidIdentifier
	}
}

// ResolveSecurity returns the security named by a full ISIN or a short code.
// When a short code is ambiguous the active security maturing first wins.
func (s *securityService) ResolveSecurity(ctx context.Context, identifier string) (*models.Security, error) {
	scope, err := identifierScope(identifier)
	if err != nil {
		return nil, err
	}

	var security models.Security
	err = s.db.WithContext(ctx).Scopes(scope).
		Order(fmt.Sprintf("CASE WHEN status = '%s' THEN 0 ELSE 1 END", models.SecurityStatusActive)).
		Order("maturity_date ASC").
		First(&security).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSecurityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &security, nil
}

// Search returns the active securities matching a full ISIN or short code,
// ordered by maturity. No match is an empty result, not an error.
func (s *securityService) Search(ctx context.Context, query string) ([]models.Security, error) {
	scope, err := identifierScope(query)
	if err != nil {
		return nil, err
	}

	var securities []models.Security
	err = s.db.WithContext(ctx).Scopes(scope).
		Where("status = ?", models.SecurityStatusActive).
		Order("maturity_date ASC").
		Find(&securities).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return securities, nil
}

// ListByCountry returns a page of a country's active securities ordered by
// maturity.
func (s *securityService) ListByCountry(ctx context.Context, country string, page pagination.PageRequest) (*pagination.PageResponse[models.Security], error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if !models.IsCountryCode(country) {
		return nil, apperrors.ErrInvalidCountryCode
	}
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.Security{}).
		Where("country_code = ? AND status = ?", country, models.SecurityStatusActive)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var securities []models.Security
	if err := base.Order("maturity_date ASC").Scopes(pagination.Paginate(page)).Find(&securities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(securities, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Countries lists the member states that have active securities.
func (s *securityService) Countries(ctx context.Context) ([]CountrySummary, error) {
	var rows []struct {
		CountryCode  string
		SecurityType string
		Count        int64
	}
	err := s.db.WithContext(ctx).Model(&models.Security{}).
		Select("country_code, security_type, COUNT(*) AS count").
		Where("status = ?", models.SecurityStatusActive).
		Group("country_code, security_type").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byCode := make(map[string]*CountrySummary)
	for _, r := range rows {
		sum, ok := byCode[r.CountryCode]
		if !ok {
			sum = &CountrySummary{Code: r.CountryCode, Name: models.CountryName(r.CountryCode)}
			byCode[r.CountryCode] = sum
		}
		sum.Total += r.Count
		switch pricing.SecurityType(r.SecurityType) {
		case pricing.CouponBond:
			sum.OAT += r.Count
		case pricing.DiscountBill:
			sum.BAT += r.Count
		}
	}

	out := make([]CountrySummary, 0, len(byCode))
	for _, code := range models.CountryCodes() {
		if sum, ok := byCode[code]; ok {
			out = append(out, *sum)
			delete(byCode, code)
		}
	}
	for _, sum := range byCode {
		out = append(out, *sum)
	}
	return out, nil
}

// Stats summarises the catalog.
func (s *securityService) Stats(ctx context.Context) (*CatalogStats, error) {
	db := s.db.WithContext(ctx)
	stats := &CatalogStats{}

	counts := []struct {
		dst   *int64
		where string
		args  []interface{}
	}{
		{&stats.TotalSecurities, "", nil},
		{&stats.ActiveSecurities, "status = ?", []interface{}{models.SecurityStatusActive}},
		{&stats.OATCount, "status = ? AND security_type = ?", []interface{}{models.SecurityStatusActive, pricing.CouponBond}},
		{&stats.BATCount, "status = ? AND security_type = ?", []interface{}{models.SecurityStatusActive, pricing.DiscountBill}},
		{&stats.MaturedCount, "status = ?", []interface{}{models.SecurityStatusMatured}},
	}
	for _, c := range counts {
		q := db.Model(&models.Security{})
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var countries []string
	if err := db.Model(&models.Security{}).Where("status = ?", models.SecurityStatusActive).
		Distinct().Pluck("country_code", &countries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	stats.CountryCount = len(countries)

	var latest models.Security
	err := db.Order("updated_at DESC").First(&latest).Error
	switch {
	case err == nil:
		stats.LastUpdate = &latest.UpdatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	uploads, err := s.history.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(uploads) > 0 {
		stats.LastUpload = &uploads[0]
	}
	return stats, nil
}

// ImportSecurities marks securities past maturity as matured, then upserts
// rows by ISIN, all in one transaction. Invalid rows are reported and skipped;
// a row failing in storage is rolled back to its savepoint. The import itself
// only fails when the transaction does.
func (s *securityService) ImportSecurities(ctx context.Context, filename string, rows []SecurityInput) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyImport
	}
	start := s.now()
	log := logger.Get()
	result := &ImportResult{Total: len(rows)}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deprecated, err := s.deprecateMatured(tx)
		if err != nil {
			return err
		}
		result.Deprecated = int(deprecated)

		for i, row := range rows {
			sec, err := s.normalize(row, filename)
			if err != nil {
				result.Errors = append(result.Errors, RowError{Row: i + 1, ISIN: row.ISIN, Message: err.Error()})
				continue
			}

			var created bool
			err = tx.Transaction(func(rowTx *gorm.DB) error {
				var err error
				created, err = s.upsert(rowTx, sec)
				return err
			})
			if err != nil {
				log.Errorw("failed to upsert security", "isin", sec.ISIN, "error", err)
				result.Errors = append(result.Errors, RowError{Row: i + 1, ISIN: sec.ISIN, Message: "storage error"})
				continue
			}
			if created {
				result.Added++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		log.Errorw("securities import rolled back", "file", filename, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result.Status = models.UploadStatusSuccess
	switch {
	case len(result.Errors) == result.Total:
		result.Status = models.UploadStatusFailed
	case len(result.Errors) > 0:
		result.Status = models.UploadStatusPartial
	}
	result.Duration = s.now().Sub(start)

	entry := &models.UploadHistory{
		Kind:                 models.UploadKindSecurities,
		Filename:             filename,
		SecuritiesAdded:      result.Added,
		SecuritiesUpdated:    result.Updated,
		SecuritiesDeprecated: result.Deprecated,
		TotalRecords:         result.Total,
		FailedRecords:        len(result.Errors),
		Status:               result.Status,
		DurationMS:           result.Duration.Milliseconds(),
	}
	if len(result.Errors) > 0 {
		entry.ErrorMessage = fmt.Sprintf("%d of %d rows rejected, first: %s", len(result.Errors), result.Total, result.Errors[0].Message)
	}
	s.history.Record(ctx, entry)
	result.UploadID = entry.ID

	log.Infow("securities imported",
		"file", filename,
		"added", result.Added,
		"updated", result.Updated,
		"deprecated", result.Deprecated,
		"rejected", len(result.Errors),
		"status", result.Status,
	)
	return result, nil
}

func (s *securityService) deprecateMatured(db *gorm.DB) (int64, error) {
	now := s.now()
	res := db.Model(&models.Security{}).
		Where("status = ? AND maturity_date < ?", models.SecurityStatusActive, s.today()).
		Updates(map[string]interface{}{"status": models.SecurityStatusMatured, "deprecated_at": now})
	return res.RowsAffected, res.Error
}

func (s *securityService) normalize(row SecurityInput, filename string) (*models.Security, error) {
	isin := validator.NormalizeIdentifier(row.ISIN)
	if !validator.IsISIN(isin) {
		return nil, fmt.Errorf("invalid ISIN %q", row.ISIN)
	}

	country := strings.ToUpper(strings.TrimSpace(row.CountryCode))
	if country == "" {
		country = isin[:2]
	}
	if !models.IsCountryCode(country) {
		return nil, fmt.Errorf("unknown country code %q", country)
	}

	secType := pricing.SecurityType(strings.ToUpper(strings.TrimSpace(string(row.SecurityType))))
	if secType != pricing.CouponBond && secType != pricing.DiscountBill {
		return nil, fmt.Errorf("unknown security type %q", row.SecurityType)
	}
	if row.MaturityDate.IsZero() {
		return nil, errors.New("maturity date is required")
	}
	maturity := pricing.DateOnly(row.MaturityDate)

	var issue *time.Time
	if row.IssueDate != nil && !row.IssueDate.IsZero() {
		d := pricing.DateOnly(*row.IssueDate)
		if maturity.Before(d) {
			return nil, errors.New("maturity date precedes issue date")
		}
		issue = &d
	}
	if row.CouponRate != nil && (*row.CouponRate < 0 || *row.CouponRate >= 1) {
		return nil, fmt.Errorf("coupon rate %g must be a fraction in [0, 1)", *row.CouponRate)
	}
	if row.CouponRate != nil && *row.CouponRate >= suspiciousCoupon {
		logger.Get().Warnw("coupon rate looks like a percentage, check the file's rate unit",
			"isin", isin,
			"coupon_rate", *row.CouponRate,
			"file", filename,
		)
	}

	periodicity := strings.ToUpper(strings.TrimSpace(row.Periodicity))
	if periodicity == "" {
		periodicity = string(pricing.Annual)
	}
	amortization := strings.TrimSpace(row.AmortizationMode)
	if amortization == "" {
		amortization = "IF"
	}

	status := models.SecurityStatusActive
	var deprecatedAt *time.Time
	if maturity.Before(s.today()) {
		status = models.SecurityStatusMatured
		now := s.now()
		deprecatedAt = &now
	}

	return &models.Security{
		ISIN:              isin,
		ShortCode:         models.ShortCodeFor(isin),
		CountryCode:       country,
		CountryName:       models.CountryName(country),
		SecurityType:      secType,
		OriginalMaturity:  strings.TrimSpace(row.OriginalMaturity),
		IssueDate:         issue,
		MaturityDate:      maturity,
		CouponRate:        row.CouponRate,
		OutstandingAmount: row.OutstandingAmount,
		Periodicity:       periodicity,
		AmortizationMode:  amortization,
		DeferredYears:     row.DeferredYears,
		Status:            status,
		SourceFile:        filename,
		DeprecatedAt:      deprecatedAt,
	}, nil
}

// upsert inserts sec or overwrites the record with the same ISIN. It reports
// whether a new row was created.
func (s *securityService) upsert(db *gorm.DB, sec *models.Security) (bool, error) {
	var existing models.Security
	err := db.Where("isin = ?", sec.ISIN).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(sec).Error
	}
	if err != nil {
		return false, err
	}

	sec.ID = existing.ID
	sec.CreatedAt = existing.CreatedAt
	return false, db.Model(&existing).Select("*").Omit("id", "created_at").Updates(sec).Error
}

// FixClassifications aligns security types with coupons: a coupon makes an
// OAT, no coupon makes a BAT.
func (s *securityService) FixClassifications(ctx context.Context) (*ClassificationFix, error) {
	fix := &ClassificationFix{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Security{}).
			Where("coupon_rate IS NOT NULL AND coupon_rate > 0 AND security_type <> ?", pricing.CouponBond).
			Update("security_type", pricing.CouponBond)
		if res.Error != nil {
			return res.Error
		}
		fix.ToOAT = res.RowsAffected

		res = tx.Model(&models.Security{}).
			Where("(coupon_rate IS NULL OR coupon_rate = 0) AND security_type <> ?", pricing.DiscountBill).
			Update("security_type", pricing.DiscountBill)
		if res.Error != nil {
			return res.Error
		}
		fix.ToBAT = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if fix.ToOAT+fix.ToBAT > 0 {
		logger.Get().Infow("security classifications fixed", "to_oat", fix.ToOAT, "to_bat", fix.ToBAT)
	}
	return fix, nil
}
