// internal/app/router.go
package app

import (
	authHandler "gameads-service/internal/handlers/auth"
	gameHandler "gameads-service/internal/handlers/game"
	linksHandler "gameads-service/internal/handlers/links"
	"gameads-service/internal/middleware"
	"gameads-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	GameHandler    *gameHandler.GameHandler
	LinksHandler   *linksHandler.LinksHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *session.RateLimiter // nil when Redis is down
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, frontendURL string, h *Handlers) {
	// ==================== Health Check & Sitemap ====================
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Game Ads API Server", "version": "1.0.0"})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})
	r.GET("/sitemap.xml", h.GameHandler.Sitemap(frontendURL))

	api := r.Group("/api")

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		login := authPublic.Group("")
		if h.RateLimiter != nil {
			login.Use(middleware.LoginRateLimit(h.RateLimiter, logger))
		}
		login.POST("/login", h.AuthHandler.Login)

		authPublic.POST("/refresh", h.AuthHandler.Refresh)
		authPublic.POST("/logout", h.AuthHandler.Logout)
		authPublic.GET("/status", h.AuthHandler.Status)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Protect())
	{
		authProtected.GET("/verify", h.AuthHandler.Verify)
		authProtected.GET("/me", h.AuthHandler.Me)
		authProtected.POST("/update-super-admin", h.AuthHandler.UpdateSuperAdmin)
	}

	// ==================== Games ====================
	games := api.Group("/games")
	{
		// Public catalog
		games.GET("", h.GameHandler.List)
		games.GET("/featured", h.GameHandler.Featured)
		games.GET("/new", h.GameHandler.NewReleases)
		games.GET("/:id", h.GameHandler.Get)

		// Admin catalog management
		gamesAdmin := games.Group("")
		gamesAdmin.Use(h.AuthMiddleware.Protect())
		{
			gamesAdmin.GET("/admin/all", h.GameHandler.ListAll)
			gamesAdmin.POST("", h.GameHandler.Create)
			gamesAdmin.PATCH("/reorder", h.GameHandler.Reorder)
			gamesAdmin.PUT("/:id", h.GameHandler.Update)
			gamesAdmin.DELETE("/:id", h.GameHandler.Delete)
		}
	}

	// ==================== Platform Links ====================
	platformLinks := api.Group("/platform-links")
	{
		platformLinks.GET("", h.LinksHandler.Get)

		linksAdmin := platformLinks.Group("")
		linksAdmin.Use(h.AuthMiddleware.Protect())
		{
			linksAdmin.POST("/update", h.LinksHandler.Update)
		}
	}
}
