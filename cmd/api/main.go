package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-craft/backend/config"
	"github.com/pageza/calorie-craft/backend/internal/api"
	"github.com/pageza/calorie-craft/backend/internal/database"
	"github.com/pageza/calorie-craft/backend/internal/logging"
	"github.com/pageza/calorie-craft/backend/internal/middleware"
	"github.com/pageza/calorie-craft/backend/internal/router"
	"github.com/pageza/calorie-craft/backend/internal/server"
	"github.com/pageza/calorie-craft/backend/internal/service"
)

const serviceName = "calorie-craft-api"

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.SetDefaultStructuredLogger(serviceName, api.Version, "")
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.SetDefaultStructuredLogger(serviceName, api.Version, cfg.LogLevel)
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter, closeLimiter := newLimiter(cfg, logger)
	defer closeLimiter()

	catalog := service.NewCatalogService(cfg, service.WithLogger(logger))
	recommendations := service.NewRecommendationService(catalog)

	srv := server.New(cfg, router.SetupRouter(cfg, recommendations, limiter, logger), logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", "error", err)
			closeLimiter()
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("received signal", "signal", sig.String())
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", "error", err)
		closeLimiter()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// newLimiter prefers the shared Redis limiter and falls back to an
// in-process one when Redis is not configured or not reachable. The returned
// func releases the Redis connection and must run after the server stops.
func newLimiter(cfg *config.Config, logger *slog.Logger) (middleware.Limiter, func()) {
	limits := middleware.CatalogRateLimitConfig(cfg.RateLimitPerMinute)

	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(context.Background(), cfg)
		if err == nil {
			var once sync.Once
			closeClient := func() {
				once.Do(func() {
					if err := client.Close(); err != nil {
						logger.Warn("failed to close Redis client", "error", err)
					}
				})
			}
			return middleware.NewRedisLimiter(client, limits), closeClient
		}
		logger.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	return middleware.NewMemoryLimiter(limits), func() {}
}
