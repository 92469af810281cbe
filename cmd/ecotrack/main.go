package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/ecotrack/internal/pkg/config"
	"github.com/piresc/ecotrack/internal/pkg/database"
	"github.com/piresc/ecotrack/internal/pkg/health"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/middleware"
	"github.com/piresc/ecotrack/internal/pkg/nats"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"github.com/piresc/ecotrack/internal/pkg/server"
	"github.com/piresc/ecotrack/internal/utils"
	"github.com/piresc/ecotrack/services/insights"

	communityHandler "github.com/piresc/ecotrack/services/community/handler"
	communityRepo "github.com/piresc/ecotrack/services/community/repository"
	communityUsecase "github.com/piresc/ecotrack/services/community/usecase"

	insightsGateway "github.com/piresc/ecotrack/services/insights/gateway"
	insightsHandler "github.com/piresc/ecotrack/services/insights/handler"
	insightsRepo "github.com/piresc/ecotrack/services/insights/repository"
	insightsUsecase "github.com/piresc/ecotrack/services/insights/usecase"

	transactionsGateway "github.com/piresc/ecotrack/services/transactions/gateway"
	transactionsHandler "github.com/piresc/ecotrack/services/transactions/handler"
	transactionsRepo "github.com/piresc/ecotrack/services/transactions/repository"
	transactionsUsecase "github.com/piresc/ecotrack/services/transactions/usecase"
)

func main() {
	appName := "ecotrack"
	configPath := "config/ecotrack.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	ctx := context.Background()
	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection and schema
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if err := database.Migrate(ctx, postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to apply database schema", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// NATS is optional, a nil client drops events
	var natsClient *nats.Client
	if configs.NATS.URL != "" {
		natsClient, err = nats.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdown.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
		logger.Info("NATS client initialized", logger.String("url", configs.NATS.URL))
	} else {
		logger.Warn("NATS_URL not set, transaction events will not be published")
	}

	// Transactions
	transactionUC := transactionsUsecase.NewTransactionUC(
		configs,
		transactionsRepo.NewTransactionRepo(configs, postgresClient.GetDB()),
		transactionsRepo.NewSyncLockRepo(configs, redisClient),
		transactionsGateway.NewKnotGW(configs),
		transactionsGateway.NewEventGW(natsClient),
	)

	// Community
	communityUC := communityUsecase.NewCommunityUC(
		configs,
		communityRepo.NewLeaderboardRepo(configs, postgresClient.GetDB()),
		communityRepo.NewPlacesRepo(configs, redisClient),
	)
	if err := communityUC.SeedPlaces(ctx); err != nil {
		zapLogger.Fatal("Failed to seed places", logger.Err(err))
	}

	// Insights
	var modelGW insights.ModelGW
	if configs.Gemini.APIKey != "" {
		geminiGW, err := insightsGateway.NewGeminiGW(ctx, configs)
		if err != nil {
			zapLogger.Fatal("Failed to initialize Gemini client", logger.Err(err))
		}
		modelGW = geminiGW
	} else {
		logger.Warn("GEMINI_API_KEY not set, the assistant will answer with a configuration hint")
	}
	insightsUC := insightsUsecase.NewInsightsUC(
		configs,
		insightsRepo.NewFixtureRepo(configs),
		modelGW,
		insightsGateway.NewFinanceGW(transactionUC),
	)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	}
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	transactionsHandler.NewHandler(transactionUC).RegisterRoutes(e)
	communityHandler.NewHandler(communityUC).RegisterRoutes(e)
	insightsHandler.NewHandler(insightsUC).RegisterRoutes(e)

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Run(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
