package routes

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "recurring_finance/docs" // This will be auto-generated
	"recurring_finance/internal/adapter/http/handlers"
	"recurring_finance/internal/adapter/http/middleware"
	"recurring_finance/internal/adapter/persistence/repository"
	"recurring_finance/internal/config"
	"recurring_finance/internal/infrastructure/cache"
	"recurring_finance/internal/infrastructure/clock"
	"recurring_finance/internal/infrastructure/database"
	"recurring_finance/internal/infrastructure/ledger"
	applogger "recurring_finance/internal/infrastructure/logger"
	"recurring_finance/internal/infrastructure/scheduler"
	"recurring_finance/internal/usecase"
	"recurring_finance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const (
	connectTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := applogger.New(os.Stdout, cfg.LogLevel)

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	recurringItems, cleanup, err := buildUseCase(cfg, logger)
	if err != nil {
		logger.Error("failed to wire dependencies", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	getRoutes(cfg, recurringItems, logger)

	dueScan := scheduler.NewScheduler(recurringItems, logger, cfg.DueScanSchedule, cfg.DueScanTimeout, cfg.Location())
	if err := dueScan.Start(); err != nil {
		logger.Error("failed to start due scan scheduler", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		logger.Info("http server listening", "port", cfg.Port, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to startup the application", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	<-dueScan.Stop().Done()
	logger.Info("stopped gracefully")
}

func getRoutes(cfg *config.Config, uc usecase.IRecurringItemUseCase, logger *slog.Logger) {
	recurringItemHandler := handlers.NewRecurringItemHandler(uc)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRecurringItemRoutes(v1, middleware.SpaceAuth(cfg.JWTSecret, logger), recurringItemHandler)
}

// buildUseCase connects the configured store and ledger broker. The returned
// cleanup releases both.
func buildUseCase(cfg *config.Config, logger *slog.Logger) (*usecase.RecurringItemUseCase, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	repo, closeStore, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	publisher, closeLedger := newLedgerPublisher(cfg, logger)

	uc := usecase.NewRecurringItemUseCase(
		repo,
		publisher,
		clock.NewSystemClock(cfg.Location()),
		cache.NewSummaryCache(cfg.SummaryCacheTTL),
		logger,
	).WithMaxAttempts(cfg.UpdateMaxAttempts)

	cleanup := func() {
		closeLedger()
		closeStore()
	}
	return uc, cleanup, nil
}

func newRepository(ctx context.Context, cfg *config.Config) (interfaces.IRecurringItemRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMongoDB:
		client, err := database.ConnectMongoDB(ctx, cfg.MongoDBURI)
		if err != nil {
			return nil, nil, err
		}
		collection := client.Database(cfg.MongoDBDatabase).Collection(repository.DefaultRecurringItemsCollection)
		repo := repository.NewRecurringItemMongoRepository(collection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRecurringItemDynamoRepository(ddb, cfg.RecurringItemsTable), func() {}, nil
	}
}

// newLedgerPublisher falls back to a logging publisher when no broker is
// configured or reachable, so the API stays usable without RabbitMQ.
func newLedgerPublisher(cfg *config.Config, logger *slog.Logger) (interfaces.ILedgerPublisher, func()) {
	if cfg.AMQPURL == "" {
		logger.Warn("AMQP_URL not set; ledger events will only be logged")
		return ledger.NewFallbackPublisher(logger), func() {}
	}

	publisher, err := ledger.NewPublisher(cfg.AMQPURL, cfg.LedgerExchange, logger)
	if err != nil {
		logger.Warn("failed to connect to ledger broker; ledger events will only be logged", "error", err)
		return ledger.NewFallbackPublisher(logger), func() {}
	}
	return publisher, publisher.Close
}

func setMiddlewares(logger *slog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
