package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"umoabonds/internal/logger"
	"umoabonds/internal/services"
)

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db              Pinger
	securityService services.SecurityServicer
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, securityService services.SecurityServicer) *HealthHandler {
	return &HealthHandler{db: db, securityService: securityService}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status           string `json:"status" example:"ok"`
	Database         string `json:"database" example:"connected"`
	ActiveSecurities int64  `json:"active_securities"`
}

// Health handles the health check.
// @Summary     Health check
// @Description Report database connectivity and the number of active securities
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse "Healthy"
// @Failure     503 {object} HealthResponse "Database unreachable"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.Get().Warnw("health check: database unreachable", "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	resp := HealthResponse{Status: "ok", Database: "connected"}
	if stats, err := h.securityService.Stats(ctx); err == nil {
		resp.ActiveSecurities = stats.ActiveSecurities
	}
	c.JSON(http.StatusOK, resp)
}
