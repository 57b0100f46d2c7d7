package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/vidyasetu/scholartrack-backend/internal/config"
	"github.com/vidyasetu/scholartrack-backend/internal/handler"
	"github.com/vidyasetu/scholartrack-backend/internal/middleware"
	"github.com/vidyasetu/scholartrack-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Track    *handler.TrackHandler
	Verified *handler.VerifiedHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	handlers *Handlers,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowCredentials = true // verifiedData cookie
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response can be traced.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the public lookup route.
	trackLimiter := middleware.NewRateLimiter(rdb, cfg.RateLimit, cfg.RateLimitWindow, log)

	// ─── Public API ────────────────────────────────────────────────────
	api := router.Group("/api")
	{
		api.GET("/track", trackLimiter.Middleware(), handlers.Track.TrackApplication)
		api.GET("/verified-data", handlers.Verified.GetVerifiedData)
	}

	return router
}
