package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "v1.0.0"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Calorie Craft API is running",
		"version": Version,
	})
}
