// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"gameads-service/internal/domain/admin"
	"gameads-service/internal/middleware"
	xerrors "gameads-service/internal/pkg/errors"
	"gameads-service/internal/pkg/jwt"
	"gameads-service/internal/pkg/session"
	authUsecase "gameads-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	rateLimiter *session.RateLimiter // optional; nil in tests
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, rateLimiter *session.RateLimiter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Login handles POST /login. The response shapes carry everything the
// dashboard renders: attempts remaining, lock state and remaining seconds.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var denied *authUsecase.LoginDenied
		if errors.As(err, &denied) {
			if errors.Is(denied.Reason, xerrors.ErrAccountLocked) {
				c.JSON(http.StatusLocked, gin.H{
					"error":             fmt.Sprintf("Account locked. Try again in %d seconds.", denied.LockTimeRemaining),
					"locked":            true,
					"lockTimeRemaining": denied.LockTimeRemaining,
				})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":             "Invalid credentials",
				"attemptsRemaining": denied.AttemptsRemaining,
				"locked":            denied.Locked,
				"lockTimeRemaining": denied.LockTimeRemaining,
			})
			return
		}

		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	// Successful logins don't count against the per-IP window.
	if h.rateLimiter != nil {
		if err := h.rateLimiter.ResetLoginAttempts(c.Request.Context(), c.ClientIP()); err != nil {
			h.logger.Warn("failed to reset login rate limit", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// Refresh handles POST /refresh, rotating the token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req admin.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrRefreshRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		case errors.Is(err, xerrors.ErrSessionInvalidated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token. Please login again."})
		case errors.Is(err, xerrors.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired due to inactivity"})
		case errors.Is(err, jwt.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please login again."})
		case errors.Is(err, jwt.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		default:
			h.logger.Error("refresh failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Logout handles POST /logout. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Verify handles GET /verify behind the route guard.
func (h *AuthHandler) Verify(c *gin.Context) {
	info := middleware.MustGetAdmin(c)
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": info})
}

// Me handles GET /me behind the route guard.
func (h *AuthHandler) Me(c *gin.Context) {
	info := middleware.MustGetAdmin(c)
	c.JSON(http.StatusOK, gin.H{"user": info})
}

// Status handles GET /status: lockout and session state for the dashboard.
func (h *AuthHandler) Status(c *gin.Context) {
	st, err := h.authService.Status(c.Request.Context())
	if err != nil {
		h.logger.Error("status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// UpdateSuperAdmin handles POST /update-super-admin behind the route guard.
func (h *AuthHandler) UpdateSuperAdmin(c *gin.Context) {
	var req admin.UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	info, err := h.authService.UpdateCredentials(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("credential update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Super admin credentials updated successfully",
		"username": info.Username,
		"email":    info.Email,
	})
}
