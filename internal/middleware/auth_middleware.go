// internal/middleware/auth_middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	xerrors "gameads-service/internal/pkg/errors"
	"gameads-service/internal/pkg/jwt"
	"gameads-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "admin"

type AuthMiddleware struct {
	authService *auth.AuthService
}

func NewAuthMiddleware(authService *auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Protect gates a route behind a valid bearer access token. Missing token,
// expired token and identity/kind mismatch are distinct outcomes so the
// dashboard can react to each.
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		info, err := m.authService.ValidateAccess(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(adminContextKey, info)
			c.Next()
		case errors.Is(err, jwt.ErrTokenExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired", "expired": true})
		case errors.Is(err, jwt.ErrTokenInvalid):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
		case errors.Is(err, xerrors.ErrForbidden):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		}
	}
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
