// Package server wires services and handlers into the HTTP API.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"umoabonds/internal/config"
	_ "umoabonds/internal/docs" // swagger docs
	"umoabonds/internal/handlers"
	"umoabonds/internal/middleware"
	"umoabonds/internal/pricing"
	"umoabonds/internal/services"
)

// Services groups the application services behind the API.
type Services struct {
	Securities services.SecurityServicer
	Curves     services.CurveServicer
	History    services.UploadHistoryServicer
	Pricing    services.PricingServicer
	Analytics  services.AnalyticsServicer
}

// NewServices builds the services on db. The rating thresholds come from cfg.
func NewServices(db *gorm.DB, cfg *config.Config) (*Services, error) {
	policy := pricing.RatingPolicy{Upper: cfg.RatingUpperSpread, Lower: cfg.RatingLowerSpread}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rating thresholds: %w", err)
	}

	history := services.NewUploadHistoryService(db)
	securities := services.NewSecurityService(db, history)
	curves := services.NewCurveService(db, history, cfg.CurveCacheTTL)

	return &Services{
		Securities: securities,
		Curves:     curves,
		History:    history,
		Pricing:    services.NewPricingService(securities, curves, pricing.NewEngine(policy)),
		Analytics:  services.NewAnalyticsService(),
	}, nil
}

// NewRouter builds the gin engine serving the API. A non-positive
// cfg.RateLimitRPS disables rate limiting.
func NewRouter(cfg *config.Config, db handlers.Pinger, svc *Services) *gin.Engine {
	securityHandler := handlers.NewSecurityHandler(svc.Securities, svc.Analytics)
	importHandler := handlers.NewImportHandler(svc.Securities, svc.History, cfg.MaxUploadBytes)
	curveHandler := handlers.NewCurveHandler(svc.Curves, svc.History, cfg.MaxUploadBytes)
	pricingHandler := handlers.NewPricingHandler(svc.Pricing)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics)
	healthHandler := handlers.NewHealthHandler(db, svc.Securities)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	if cfg.RateLimitRPS > 0 {
		v1.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))
	}

	// Catalog
	v1.POST("/search", securityHandler.Search)
	v1.GET("/stats", securityHandler.Stats)
	v1.GET("/countries", securityHandler.Countries)
	v1.GET("/countries/:code/securities", securityHandler.ListByCountry)

	securities := v1.Group("/securities")
	securities.POST("/import", importHandler.ImportSecurities)
	securities.POST("/fix-classifications", securityHandler.FixClassifications)
	securities.GET("/:isin", securityHandler.GetSecurity)
	securities.GET("/:isin/yield", pricingHandler.GetYield)

	v1.GET("/uploads", importHandler.ListUploads)

	// Pricing
	v1.POST("/calculate-yield", pricingHandler.CalculateYield)

	// Yield curves
	curves := v1.Group("/yield-curves")
	curves.POST("", curveHandler.SaveCurve)
	curves.POST("/upload", curveHandler.UploadCurve)
	curves.GET("/:country", curveHandler.GetCurve)

	// Analytics
	v1.GET("/analytics", analyticsHandler.GetAnalytics)
	v1.POST("/analytics/reset", analyticsHandler.ResetAnalytics)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
