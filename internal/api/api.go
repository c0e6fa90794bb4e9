package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-craft/backend/internal/service"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, recommendations service.IRecommendationService, rateLimit gin.HandlerFunc) {
	// Health check endpoints are never rate limited
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	handler := NewRecommendationHandler(recommendations, rateLimit)
	handler.RegisterRoutes(router.Group("/api"))
}
