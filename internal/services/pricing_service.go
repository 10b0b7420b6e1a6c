package services

import (
	"context"
	"errors"
	"time"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/logger"
	"umoabonds/internal/models"
	"umoabonds/internal/pricing"
)

// pricingService resolves securities and curves and runs the pricing engine.
type pricingService struct {
	securities SecurityServicer
	curves     CurveServicer
	engine     *pricing.Engine
	now        func() time.Time
}

// NewPricingService creates a new PricingServicer.
func NewPricingService(securities SecurityServicer, curves CurveServicer, engine *pricing.Engine) PricingServicer {
	return &pricingService{securities: securities, curves: curves, engine: engine, now: time.Now}
}

// Price computes the yield of the requested security. The settlement date
// defaults to today. A curve store failure only drops the market comparison.
func (s *pricingService) Price(ctx context.Context, req PricingRequest) (*Quote, error) {
	sec, err := s.securities.ResolveSecurity(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}

	switch sec.Status {
	case models.SecurityStatusMatured:
		return nil, apperrors.WithMessage(apperrors.ErrSecurityMatured, "Security "+sec.ISIN+" has matured")
	case models.SecurityStatusRedeemed:
		return nil, apperrors.WithMessage(apperrors.ErrSecurityInactive, "Security "+sec.ISIN+" has been redeemed")
	}

	settlement := pricing.DateOnly(s.now())
	if req.SettlementDate != nil && !req.SettlementDate.IsZero() {
		settlement = pricing.DateOnly(*req.SettlementDate)
	}

	curve, err := s.curves.GetLatestCurve(ctx, sec.CountryCode)
	if err != nil {
		logger.Get().Warnw("yield curve unavailable, pricing without market comparison",
			"country", sec.CountryCode,
			"isin", sec.ISIN,
			"error", err,
		)
		curve = nil
	}

	res, err := s.engine.Price(sec.ToPricing(), pricing.Request{
		Price:          req.Price,
		SettlementDate: settlement,
	}, models.CurveToPricing(curve))
	if err != nil {
		return nil, mapPricingError(err)
	}

	return &Quote{Security: sec, Result: res.Rounded()}, nil
}

// mapPricingError translates engine errors. A settlement after maturity
// matches both the matured and the date range sentinels and is reported as
// matured.
func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrMaturedSecurity):
		return apperrors.Wrap(apperrors.ErrSecurityMatured, err)
	case errors.Is(err, pricing.ErrInvalidPrice):
		return apperrors.Wrap(apperrors.ErrInvalidPrice, err)
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return apperrors.Wrap(apperrors.ErrInvalidDateRange, err)
	case errors.Is(err, pricing.ErrYieldNotConvergent):
		return apperrors.Wrap(apperrors.ErrYieldNotConvergent, err)
	case errors.Is(err, pricing.ErrUnsupportedSecurityType):
		return apperrors.Wrap(apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported security type"), err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
