package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizflow/internal/adapter"
	"quizflow/internal/adapter/evaluator"
	"quizflow/internal/cache"
	"quizflow/internal/config"
	"quizflow/internal/database"
	"quizflow/internal/domain"
	"quizflow/internal/handler"
	"quizflow/internal/logger"
	"quizflow/internal/middleware"
	"quizflow/internal/repository"
	"quizflow/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	poolCache := service.NewPoolCacheService(cacheAdapter, questionRepository, cfg.Cache.PoolTTL)
	sessionStore := service.NewSessionStore(cacheAdapter, cfg.Session.TTL)

	// Optional LLM fallback grader for free-text answers
	var fallbackGrader domain.FallbackGrader
	if cfg.LLM.Enabled {
		fallbackGrader, err = evaluator.NewLLMGrader(cfg.LLM)
		if err != nil {
			appLogger.Fatal("Failed to create LLM fallback grader", zap.Error(err))
		}
		appLogger.Info("LLM fallback grader initialized",
			zap.String("server_url", cfg.LLM.ServerURL),
			zap.String("model", cfg.LLM.Model))
	}

	// Initialize services
	quizService := service.NewQuizService(questionRepository, attemptRepository, poolCache, sessionStore, fallbackGrader, cfg)
	transcriptService := service.NewTranscriptService()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(quizService)
	questionHandler := handler.NewQuestionHandler(quizService)
	transcriptHandler := handler.NewTranscriptHandler(transcriptService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	sessionGroup := apiGroup.Group("/sessions")
	sessionGroup.Post("/", sessionHandler.StartSession)
	sessionGroup.Get("/:id", sessionHandler.GetSession)
	sessionGroup.Get("/:id/next", sessionHandler.NextQuestion)
	sessionGroup.Post("/:id/answers", sessionHandler.SubmitAnswer)
	sessionGroup.Get("/:id/attempts", sessionHandler.ListAttempts)

	apiGroup.Get("/questions/:id", questionHandler.GetQuestion)
	apiGroup.Post("/transcripts/align", transcriptHandler.AlignHighlight)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
