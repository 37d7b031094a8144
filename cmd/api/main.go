package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-voice/backend/config"
	"github.com/pageza/alchemorsel-voice/backend/internal/catalog"
	"github.com/pageza/alchemorsel-voice/backend/internal/database"
	"github.com/pageza/alchemorsel-voice/backend/internal/logging"
	"github.com/pageza/alchemorsel-voice/backend/internal/middleware"
	"github.com/pageza/alchemorsel-voice/backend/internal/router"
	"github.com/pageza/alchemorsel-voice/backend/internal/server"
	"github.com/pageza/alchemorsel-voice/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func run() error {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Environment.GinMode())

	recipes := catalog.Default()
	recipeService := service.NewRecipeService(recipes, logger)
	logger.Info("recipe catalog loaded", zap.Int("recipes", recipes.Len()))

	speechService, err := service.NewSpeechService(service.SpeechConfig{
		APIKey:           cfg.MurfAPIKey,
		BaseURL:          cfg.MurfBaseURL,
		VoicesTimeout:    cfg.MurfVoicesTimeout,
		SynthesisTimeout: cfg.MurfTTSTimeout,
		DefaultVoiceID:   cfg.DefaultVoiceID,
		DefaultFormat:    cfg.DefaultFormat,
	}, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create speech service: %w", err)
	}

	// Rate limiting is optional; without Redis the speech routes are open.
	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(context.Background(), cfg.RedisURL, logger)
		if err != nil {
			logger.Warn("continuing without rate limiting", zap.Error(err))
		} else {
			defer redisClient.Close()
			limiter = middleware.NewSpeechRateLimiter(redisClient, cfg.TTSRateLimit, cfg.TTSRateWindow, logger)
		}
	}

	engine := router.SetupRouter(recipeService, speechService, router.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Limiter:        limiter,
	})
	srv := server.New(cfg.Address(), engine, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
