// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"gameads-service/internal/config"
	"gameads-service/internal/db"
	authHandler "gameads-service/internal/handlers/auth"
	gameHandler "gameads-service/internal/handlers/game"
	linksHandler "gameads-service/internal/handlers/links"
	"gameads-service/internal/middleware"
	"gameads-service/internal/pkg/jwt"
	"gameads-service/internal/pkg/session"
	"gameads-service/internal/repository/postgres"
	authUsecase "gameads-service/internal/service/auth"
	gameUsecase "gameads-service/internal/service/game"
	linksUsecase "gameads-service/internal/service/links"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisCfg := db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	}

	var rateLimiter *session.RateLimiter
	redisClient, err := db.NewRedisClient(redisCfg)
	if err != nil {
		// Login throttling degrades to the account lockout alone.
		logger.Warn("redis unavailable, login rate limiting disabled", zap.Error(err))
	} else {
		rateLimiter = session.NewRateLimiter(redisClient)
	}

	// ----- JWT Manager -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Repositories -----
	adminRepo := postgres.NewAdminRepository(pool)
	gameRepo := postgres.NewGameRepository(pool)
	linksRepo := postgres.NewLinksRepository(pool)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(adminRepo, jwtManager, authUsecase.Config{
		MaxLoginAttempts: s.cfg.MaxLoginAttempts,
		SessionTimeout:   s.cfg.SessionTimeout,
	}, logger)
	gameService := gameUsecase.NewGameService(gameRepo, logger)
	linksService := linksUsecase.NewLinksService(linksRepo, logger)

	// ----- Initialize Super Admin -----
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := authService.EnsureSuperAdminExists(seedCtx, s.cfg.AdminUsername, s.cfg.AdminEmail, s.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to ensure super admin exists: %w", err)
	}

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, rateLimiter, logger)
	gameHandlerInst := gameHandler.NewGameHandler(gameService, logger)
	linksHandlerInst := linksHandler.NewLinksHandler(linksService, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.FrontendURL),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		GameHandler:    gameHandlerInst,
		LinksHandler:   linksHandlerInst,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
	}
	SetupRouter(s.engine, logger, s.cfg.FrontendURL, handlers)

	// ----- Start HTTP -----
	log.Printf("Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
