package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/ingest"
	"umoabonds/internal/models"
	"umoabonds/internal/services"
)

// CurveHandler handles the yield curve store.
type CurveHandler struct {
	curveService   services.CurveServicer
	historyService services.UploadHistoryServicer
	maxUploadBytes int64
}

// NewCurveHandler creates a new CurveHandler.
func NewCurveHandler(curveService services.CurveServicer, historyService services.UploadHistoryServicer, maxUploadBytes int64) *CurveHandler {
	return &CurveHandler{
		curveService:   curveService,
		historyService: historyService,
		maxUploadBytes: maxUploadBytes,
	}
}

// CurvePointRequest is one curve point. Rates are fractions (0.0625 for 6.25%).
type CurvePointRequest struct {
	CountryCode    string   `json:"country_code" binding:"required,country_code" example:"SN"`
	MaturityYears  float64  `json:"maturity_years" binding:"required,gt=0" example:"5"`
	ZeroCouponRate *float64 `json:"zero_coupon_rate" example:"0.0612"`
	OATRate        *float64 `json:"oat_rate" example:"0.0635"`
}

// SaveCurveRequest represents the request payload for a curve upload.
type SaveCurveRequest struct {
	SourceFile string              `json:"source_file" example:"courbe-2026-02.csv"`
	Points     []CurvePointRequest `json:"points" binding:"required,min=1,dive"`
}

// SaveCurve handles a JSON curve upload.
// @Summary     Save yield curve
// @Description Store a batch of yield curve points. Earlier batches are kept; the latest batch wins.
// @Tags        yield-curves
// @Accept      json
// @Produce     json
// @Param       request body SaveCurveRequest true "Curve points"
// @Success     201 {object} services.CurveUploadResult "Upload summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /yield-curves [post]
func (h *CurveHandler) SaveCurve(c *gin.Context) {
	var req SaveCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	points := make([]services.CurvePointInput, len(req.Points))
	for i, p := range req.Points {
		points[i] = services.CurvePointInput{
			CountryCode:    p.CountryCode,
			MaturityYears:  p.MaturityYears,
			ZeroCouponRate: p.ZeroCouponRate,
			OATRate:        p.OATRate,
		}
	}

	sourceFile := req.SourceFile
	if sourceFile == "" {
		sourceFile = "api"
	}
	result, err := h.curveService.SaveCurves(c.Request.Context(), sourceFile, points)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UploadCurve handles a yield curve CSV upload.
// @Summary     Upload yield curve CSV
// @Description Store the points of a CSV with columns country_code, maturity_years, zero_coupon_rate, oat_rate
// @Tags        yield-curves
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Yield curve CSV"
// @Success     201 {object} services.CurveUploadResult "Upload summary"
// @Failure     400 {object} ErrorResponse "Invalid or empty file"
// @Failure     413 {object} ErrorResponse "File too large"
// @Router      /yield-curves/upload [post]
func (h *CurveHandler) UploadCurve(c *gin.Context) {
	filename, body, err := readCSVUpload(c, h.maxUploadBytes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := ingest.ParseCurve(body)
	if err != nil {
		h.historyService.Record(c.Request.Context(), &models.UploadHistory{
			Kind:         models.UploadKindYieldCurve,
			Filename:     filename,
			Status:       models.UploadStatusFailed,
			ErrorMessage: err.Error(),
		})
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidImportFile, err.Error()))
		return
	}

	result, err := h.curveService.SaveCurves(c.Request.Context(), filename, points)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetCurve handles retrieving a country's latest yield curve.
// @Summary     Get yield curve
// @Description Get the latest yield curve of a country in ascending maturity
// @Tags        yield-curves
// @Produce     json
// @Param       country path string true "Country code"
// @Success     200 {object} CurveResponse "Latest curve"
// @Failure     400 {object} ErrorResponse "Invalid country code"
// @Failure     404 {object} ErrorResponse "No curve for the country"
// @Router      /yield-curves/{country} [get]
func (h *CurveHandler) GetCurve(c *gin.Context) {
	country := strings.ToUpper(strings.TrimSpace(c.Param("country")))
	if !models.IsCountryCode(country) {
		respondWithError(c, apperrors.ErrInvalidCountryCode)
		return
	}

	points, err := h.curveService.GetLatestCurve(c.Request.Context(), country)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if len(points) == 0 {
		respondWithError(c, apperrors.ErrCurveNotFound)
		return
	}

	c.JSON(http.StatusOK, newCurveResponse(country, points))
}
