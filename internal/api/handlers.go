package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-voice/backend/internal/middleware"
	"github.com/pageza/alchemorsel-voice/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe voice API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes. limiter may be nil, in which case
// speech routes are not rate limited.
func RegisterRoutes(router *gin.Engine, recipeService service.IRecipeService, speechService service.ISpeechService, limiter *middleware.RateLimiter) {
	// Health check endpoint
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	apiGroup := router.Group("/api")
	NewRecipeHandler(recipeService).RegisterRoutes(apiGroup)
	NewSpeechHandler(speechService, limiter).RegisterRoutes(apiGroup)

	if limiter != nil {
		RegisterRateLimitRoutes(apiGroup, limiter)
	}
}

// RegisterRateLimitRoutes registers an endpoint for checking the caller's
// remaining speech quota
func RegisterRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.GET("/rate-limits/speech", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      limiter.Limit(),
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     limiter.Window().String(),
		})
	})
}
