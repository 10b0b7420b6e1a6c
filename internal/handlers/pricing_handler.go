package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/services"
)

// PricingHandler serves yield calculations.
type PricingHandler struct {
	pricingService services.PricingServicer
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(pricingService services.PricingServicer) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// CalculateYieldRequest represents the request payload for a yield calculation.
type CalculateYieldRequest struct {
	ISIN           string   `json:"isin" binding:"required,security_identifier" example:"SN0000002171"`
	Price          *float64 `json:"price" binding:"required" example:"99.5"`
	SettlementDate string   `json:"settlement_date,omitempty" example:"2026-02-02"`
}

// CalculateYield handles a yield calculation.
// @Summary     Calculate yield
// @Description Compute the yield of a security at a clean price (percent of par), with accrued interest and a comparison to the country's yield curve when one is available
// @Tags        pricing
// @Accept      json
// @Produce     json
// @Param       request body CalculateYieldRequest true "Pricing request"
// @Success     200 {object} YieldResponse "Yield"
// @Failure     400 {object} ErrorResponse "Invalid input or price"
// @Failure     404 {object} ErrorResponse "Security not found"
// @Failure     422 {object} ErrorResponse "Security matured or yield not convergent"
// @Router      /calculate-yield [post]
func (h *PricingHandler) CalculateYield(c *gin.Context) {
	var req CalculateYieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	settlement, err := parseOptionalDate(req.SettlementDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.price(c, req.ISIN, *req.Price, settlement)
}

// GetYield handles a yield calculation addressed by path.
// @Summary     Get yield
// @Description Compute the yield of a security at a clean price given as query parameter
// @Tags        pricing
// @Produce     json
// @Param       isin            path  string true  "ISIN or short code"
// @Param       price           query number true  "Clean price, percent of par"
// @Param       settlement_date query string false "Settlement date (YYYY-MM-DD, default today)"
// @Success     200 {object} YieldResponse "Yield"
// @Failure     400 {object} ErrorResponse "Invalid input or price"
// @Failure     404 {object} ErrorResponse "Security not found"
// @Failure     422 {object} ErrorResponse "Security matured or yield not convergent"
// @Router      /securities/{isin}/yield [get]
func (h *PricingHandler) GetYield(c *gin.Context) {
	raw := c.Query("price")
	if raw == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "price is required"))
		return
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be a number"))
		return
	}

	settlement, err := parseOptionalDate(c.Query("settlement_date"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.price(c, c.Param("isin"), price, settlement)
}

func (h *PricingHandler) price(c *gin.Context, identifier string, price float64, settlement *time.Time) {
	quote, err := h.pricingService.Price(c.Request.Context(), services.PricingRequest{
		Identifier:     identifier,
		Price:          price,
		SettlementDate: settlement,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newYieldResponse(quote))
}
