package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clipforge/clip-shortener/internal/api/handler"
	"github.com/clipforge/clip-shortener/internal/api/middleware"
	"github.com/clipforge/clip-shortener/internal/auth"
	"github.com/clipforge/clip-shortener/internal/core/service"
	mongodb "github.com/clipforge/clip-shortener/internal/infrastructure/db/mongo"
	redisdb "github.com/clipforge/clip-shortener/internal/infrastructure/db/redis"
	"github.com/clipforge/clip-shortener/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, uploads handler.UploadStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("shortener"))

	// --- Dependencies ---
	issuer := auth.NewIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, issuer, log)
	authHandler := handler.NewAuthHandler(authService)

	videoRepo := mongodb.NewVideoRepository(db)
	resultCache := redisdb.NewResultCache(rdb)
	shortenerService := service.NewShortenerService(videoRepo, resultCache, log)
	shortenerHandler := handler.NewShortenerHandler(shortenerService, uploads)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRateBurst)

	// --- Auth routes (rate limited, no token required) ---
	authGroup := e.Group("/api/auth", authLimiter.Middleware())
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Shortener routes (token required) ---
	shortenerGroup := e.Group("/api/shortener", middleware.Auth(issuer))
	shortenerGroup.POST("/process-youtube", shortenerHandler.ProcessYouTube)
	shortenerGroup.POST("/upload-video", shortenerHandler.UploadVideo)
	shortenerGroup.GET("/videos", shortenerHandler.ListVideos)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	// Front-end assets.
	e.Static("/", cfg.PublicDir)

	return e
}
