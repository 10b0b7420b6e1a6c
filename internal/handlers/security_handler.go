package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"umoabonds/internal/pagination"
	"umoabonds/internal/services"
)

// SecurityHandler serves catalog lookups.
type SecurityHandler struct {
	securityService  services.SecurityServicer
	analyticsService services.AnalyticsServicer
}

// NewSecurityHandler creates a new SecurityHandler.
func NewSecurityHandler(securityService services.SecurityServicer, analyticsService services.AnalyticsServicer) *SecurityHandler {
	return &SecurityHandler{securityService: securityService, analyticsService: analyticsService}
}

// SearchRequest represents the request payload for a catalog search.
type SearchRequest struct {
	Query string `json:"query" binding:"required,security_identifier" example:"SN2171"`
}

// SearchResponse lists the active securities matching a query.
type SearchResponse struct {
	Query   string             `json:"query"`
	Count   int                `json:"count"`
	Results []SecurityResponse `json:"results"`
}

// Search handles catalog searches by ISIN or short code.
// @Summary     Search securities
// @Description Find active securities by full ISIN (CC##########) or short code (CC####)
// @Tags        securities
// @Accept      json
// @Produce     json
// @Param       request body SearchRequest true "Search query"
// @Success     200 {object} SearchResponse "Matching securities"
// @Failure     400 {object} ErrorResponse "Invalid identifier"
// @Failure     429 {object} ErrorResponse "Too many requests"
// @Router      /search [post]
func (h *SecurityHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	securities, err := h.securityService.Search(c.Request.Context(), req.Query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.analyticsService.RecordSearch(req.Query, securities)

	c.JSON(http.StatusOK, SearchResponse{
		Query:   req.Query,
		Count:   len(securities),
		Results: newSecurityResponses(securities),
	})
}

// GetSecurity handles retrieving a single security.
// @Summary     Get security
// @Description Get a security by full ISIN or short code
// @Tags        securities
// @Produce     json
// @Param       isin path string true "ISIN or short code"
// @Success     200 {object} SecurityResponse "Security details"
// @Failure     400 {object} ErrorResponse "Invalid identifier"
// @Failure     404 {object} ErrorResponse "Security not found"
// @Router      /securities/{isin} [get]
func (h *SecurityHandler) GetSecurity(c *gin.Context) {
	security, err := h.securityService.ResolveSecurity(c.Request.Context(), c.Param("isin"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSecurityResponse(*security))
}

// ListByCountry handles listing a member state's active securities.
// @Summary     List securities by country
// @Description Get a paginated list of a country's active securities ordered by maturity
// @Tags        countries
// @Produce     json
// @Param       code      path  string true  "Country code (BF, BJ, CI, GW, ML, NE, SN, TG)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 200)"
// @Success     200 {object} pagination.PageResponse[SecurityResponse] "Paginated securities"
// @Failure     400 {object} ErrorResponse "Invalid country code"
// @Router      /countries/{code}/securities [get]
func (h *SecurityHandler) ListByCountry(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.securityService.ListByCountry(c.Request.Context(), c.Param("code"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.MapPage(*result, newSecurityResponse))
}

// Countries handles listing member states with active securities.
// @Summary     List countries
// @Description Get the UMOA member states with their active OAT and BAT counts
// @Tags        countries
// @Produce     json
// @Success     200 {object} map[string][]services.CountrySummary "Countries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /countries [get]
func (h *SecurityHandler) Countries(c *gin.Context) {
	countries, err := h.securityService.Countries(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if countries == nil {
		countries = []services.CountrySummary{}
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// Stats handles catalog statistics.
// @Summary     Catalog statistics
// @Description Get totals, OAT/BAT counts and the last catalog update
// @Tags        securities
// @Produce     json
// @Success     200 {object} services.CatalogStats "Statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats [get]
func (h *SecurityHandler) Stats(c *gin.Context) {
	stats, err := h.securityService.Stats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// FixClassifications handles re-deriving OAT/BAT types from coupons.
// @Summary     Fix classifications
// @Description Reclassify securities whose type contradicts their coupon
// @Tags        admin
// @Produce     json
// @Success     200 {object} services.ClassificationFix "Reclassified counts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /securities/fix-classifications [post]
func (h *SecurityHandler) FixClassifications(c *gin.Context) {
	fix, err := h.securityService.FixClassifications(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, fix)
}
