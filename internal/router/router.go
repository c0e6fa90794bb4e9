package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/calorie-craft/backend/config"
	"github.com/pageza/calorie-craft/backend/internal/api"
	"github.com/pageza/calorie-craft/backend/internal/middleware"
	"github.com/pageza/calorie-craft/backend/internal/service"
)

// SetupRouter configures the application routes. limiter may be nil to
// disable rate limiting.
func SetupRouter(
	cfg *config.Config,
	recommendations service.IRecommendationService,
	limiter middleware.Limiter,
	logger *slog.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorHandler(logger))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var rateLimit gin.HandlerFunc
	if limiter != nil {
		rateLimit = middleware.RateLimit(limiter, logger)
	}
	api.RegisterRoutes(router, recommendations, rateLimit)

	return router
}
