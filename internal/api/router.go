package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/devpath/tutorial-platform/internal/api/handler"
	"github.com/devpath/tutorial-platform/internal/api/middleware"
	"github.com/devpath/tutorial-platform/internal/content"
	"github.com/devpath/tutorial-platform/internal/core/service"
	"github.com/devpath/tutorial-platform/internal/infrastructure/config"
	"github.com/devpath/tutorial-platform/internal/infrastructure/db/postgres"
	redisinfra "github.com/devpath/tutorial-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("tutorial_platform"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	progressRepo := postgres.NewProgressRepository(db)
	catalog := content.NewCatalog()
	summaryCache := redisinfra.NewSummaryCache(rdb, cfg.Redis.SummaryTTL)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, tokenService, log)
	profileService := service.NewProfileService(profileRepo, log)
	progressService := service.NewProgressService(progressRepo, catalog, summaryCache, log)

	authHandler := handler.NewAuthHandler(authService, authRepo)
	profileHandler := handler.NewProfileHandler(profileService)
	progressHandler := handler.NewProgressHandler(progressService)
	tutorialHandler := handler.NewTutorialHandler(catalog)

	guard := middleware.Auth(tokenService, authRepo)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.GET("/auth/me", authHandler.Me, guard)

	// --- Tutorial catalog (public, read-only) ---
	e.GET("/tutorials", tutorialHandler.List)
	e.GET("/tutorials/:id", tutorialHandler.Get)

	// --- Profiles (owner-only) ---
	e.GET("/profiles/:userId", profileHandler.Get, guard)
	e.PATCH("/profiles/:userId", profileHandler.Patch, guard)

	// --- Progress (owner-only) ---
	e.GET("/progress/:userId", progressHandler.List, guard)
	e.GET("/progress/:userId/summary", progressHandler.Summary, guard)
	e.GET("/progress/:userId/tutorials/:tutorialId", progressHandler.Get, guard)
	e.PUT("/progress/:userId/tutorials/:tutorialId", progressHandler.Upsert, guard)
	e.POST("/progress/:userId/tutorials/:tutorialId/quiz", progressHandler.SubmitQuiz, guard)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
