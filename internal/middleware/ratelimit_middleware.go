// internal/middleware/ratelimit_middleware.go
package middleware

import (
	"net/http"

	"gameads-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginRateLimit throttles login attempts per client IP, in front of the
// account-level lockout. Fails open if Redis is unreachable; the lockout
// still applies.
func LoginRateLimit(limiter *session.RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.CheckLoginAttempt(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("login rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many login attempts. Please try again in 15 minutes.",
			})
			return
		}
		c.Next()
	}
}
