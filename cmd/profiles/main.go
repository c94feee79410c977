package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/kelanaapp/kelana/internal/pkg/config"
	"github.com/kelanaapp/kelana/internal/pkg/database"
	"github.com/kelanaapp/kelana/internal/pkg/health"
	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/middleware"
	natspkg "github.com/kelanaapp/kelana/internal/pkg/nats"
	nrpkg "github.com/kelanaapp/kelana/internal/pkg/newrelic"
	"github.com/kelanaapp/kelana/services/profiles/gateway"
	"github.com/kelanaapp/kelana/services/profiles/handler"
	httpHandler "github.com/kelanaapp/kelana/services/profiles/handler/http"
	"github.com/kelanaapp/kelana/services/profiles/repository"
	"github.com/kelanaapp/kelana/services/profiles/usecase"
)

func main() {
	appName := "profiles-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Route package-level logging helpers through the configured logger
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(configs, postgresClient.GetDB())
	verificationRepo := repository.NewVerificationRepo(configs, postgresClient.GetDB())

	// Initialize Gateway
	profileGW := gateway.NewProfileGW(natsClient, configs.Media)

	// Initialize UseCase
	profileUC := usecase.NewProfileUC(profileRepo, verificationRepo, profileGW, configs)

	// Handlers for HTTP
	profileHandler := httpHandler.NewProfileHandler(profileUC)
	verificationHandler := httpHandler.NewVerificationHandler(profileUC)

	// Initialize handlers
	Handler := handler.NewHandler(profileHandler, verificationHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Rate limiter for mutation endpoints
	mutationLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "profiles:mutations",
		Limit:       30,
		Period:      time.Minute,
	})

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)
	health.RegisterReadinessEndpoint(e, map[string]health.Checker{
		"postgres": health.PostgresChecker(postgresClient),
		"redis":    health.RedisChecker(redisClient),
		"nats":     health.NATSChecker(natsClient),
	})

	// Register service routes
	Handler.RegisterRoutes(e, mutationLimiter)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
