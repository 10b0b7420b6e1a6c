package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	apperrors "umoabonds/internal/errors"
)

// limiterIdleTTL is how long an idle client's token bucket is remembered.
const limiterIdleTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	clients *cache.Cache
}

// NewRateLimiter allows rps requests per second per client with the given
// burst. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		clients: cache.New(limiterIdleTTL, 2*limiterIdleTTL),
	}
}

// Allow consumes a token for client.
func (l *RateLimiter) Allow(client string) bool {
	if l.limit <= 0 {
		return true
	}
	if v, ok := l.clients.Get(client); ok {
		lim := v.(*rate.Limiter)
		l.clients.SetDefault(client, lim)
		return lim.Allow()
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	if err := l.clients.Add(client, lim, cache.DefaultExpiration); err != nil {
		// Another request created the bucket first.
		if v, ok := l.clients.Get(client); ok {
			lim = v.(*rate.Limiter)
		}
	}
	return lim.Allow()
}

// RateLimit returns a Gin middleware rejecting clients that exceed l with
// 429 Too Many Requests.
func RateLimit(l *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorBody(apperrors.ErrRateLimited))
			return
		}
		c.Next()
	}
}
