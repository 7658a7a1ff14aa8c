// @title Quiz Brief API
// @version 1.0
// @description Summarizes texts and turns summaries into multiple-choice quizzes.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

//go:generate swag init -g main.go -o docs --parseInternal --dir ./,../../internal/handler,../../internal/dto,../../internal/domain,../../internal/middleware

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-brief/internal/adapter"
	"quiz-brief/internal/adapter/llm"
	"quiz-brief/internal/cache"
	"quiz-brief/internal/config"
	"quiz-brief/internal/domain"
	"quiz-brief/internal/handler"
	"quiz-brief/internal/logger"
	"quiz-brief/internal/middleware"
	"quiz-brief/internal/service"
	"quiz-brief/internal/validation"

	_ "quiz-brief/cmd/api/docs"

	"github.com/gofiber/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quiz-brief api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Completion client
	client, err := llm.NewGeminiCompletionClient(ctx, cfg.Gemini, appLogger)
	if err != nil {
		return err
	}
	appLogger.Info("Gemini completion client initialized", zap.String("model", cfg.Gemini.Model))

	// Study set store (optional)
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis is not configured. Study sets will not be stored.")
	}
	store := service.NewStudySetStore(cacheAdapter, cfg.Study.TTL)

	// Services
	summarizer := service.NewSummarizer(client)
	generator := service.NewQuizGenerator(client)
	studyService := service.NewStudyService(summarizer, generator, store, cfg.Study.MaxSourceChars)

	// Handlers
	validator := validation.NewValidator(cfg.Study.MaxSourceChars)
	studyHandler := handler.NewStudyHandler(summarizer, generator, studyService, validator)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, studyHandler, healthHandler, middleware.NewValidationMiddleware(validator))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server exited with error", zap.Error(err))
		return err
	}
	appLogger.Info("Server exited gracefully")
	return nil
}
