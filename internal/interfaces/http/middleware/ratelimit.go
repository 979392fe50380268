package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/ratelimit"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

// RateLimiter throttles anonymous endpoints per client IP. All instances share
// the Redis sliding windows.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limits  ratelimit.Limits
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, limits ratelimit.Limits, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limits:  limits,
		scope:   scope,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.scope + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limits)
		if err != nil {
			// Redis unavailable: let the request through.
			rl.logger.Warnw("rate limiter unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
