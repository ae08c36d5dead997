package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/fundledger/fundledger/internal/adapter/http"
	"github.com/fundledger/fundledger/internal/adapter/http/handler"
	"github.com/fundledger/fundledger/internal/adapter/http/middleware"
	postgresRepo "github.com/fundledger/fundledger/internal/adapter/repository/postgres"
	redisRepo "github.com/fundledger/fundledger/internal/adapter/repository/redis"
	"github.com/fundledger/fundledger/internal/infrastructure/auth"
	"github.com/fundledger/fundledger/internal/infrastructure/config"
	"github.com/fundledger/fundledger/internal/infrastructure/eventpublisher"
	"github.com/fundledger/fundledger/internal/infrastructure/logger"
	"github.com/fundledger/fundledger/internal/infrastructure/metrics"
	"github.com/fundledger/fundledger/internal/infrastructure/postgres"
	"github.com/fundledger/fundledger/internal/infrastructure/redis"
	"github.com/fundledger/fundledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	detailRepo := postgresRepo.NewDetailRepository(pool)
	receiptRepo := postgresRepo.NewReceiptRepository(pool)
	documentRepo := postgresRepo.NewDocumentRepository(pool)
	agencyRepo := postgresRepo.NewAgencyRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	appMetrics := metrics.New()

	// Initialize use cases
	agencyUC := usecase.NewAgencyUseCase(agencyRepo, userRepo)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, detailRepo, agencyUC, idGen)
	transactionUC := usecase.NewTransactionUseCase(
		txManager, ledgerRepo, detailRepo, receiptRepo, documentRepo,
		outboxRepo, agencyUC, idGen, retrier, cache, appMetrics,
	)
	detailUC := usecase.NewDetailUseCase(detailRepo, receiptRepo, documentRepo, cache)
	evidenceUC := usecase.NewEvidenceUseCase(txManager, detailRepo, receiptRepo, documentRepo, idGen, cache)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Optional JWT authentication
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		log.Info().Msg("jwt authentication enabled")
	}

	// Initialize handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	detailHandler := handler.NewDetailHandler(detailUC)
	evidenceHandler := handler.NewEvidenceHandler(evidenceUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var authHandler *handler.AuthHandler
	if jwtManager != nil {
		authHandler = handler.NewAuthHandler(userUC, jwtManager)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:      ledgerHandler,
		TransactionHandler: transactionHandler,
		DetailHandler:      detailHandler,
		EvidenceHandler:    evidenceHandler,
		AuthHandler:        authHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		JWTManager:         jwtManager,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:             appLogger,
	})

	// Start the outbox publisher
	publisherCtx, publisherCancel := context.WithCancel(ctx)
	defer publisherCancel()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(nil),
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})

	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	publisherCancel()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
