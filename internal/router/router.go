package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-voice/backend/internal/api"
	"github.com/pageza/alchemorsel-voice/backend/internal/middleware"
	"github.com/pageza/alchemorsel-voice/backend/internal/service"
)

// Options carries everything the router needs besides the services.
type Options struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	// Limiter throttles the speech routes; nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(recipeService service.IRecipeService, speechService service.ISpeechService, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))

	api.RegisterRoutes(router, recipeService, speechService, opts.Limiter)

	return router
}
