package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/openbooks/openbooks/internal/adapter/http"
	"github.com/openbooks/openbooks/internal/adapter/http/handler"
	postgresRepo "github.com/openbooks/openbooks/internal/adapter/repository/postgres"
	redisRepo "github.com/openbooks/openbooks/internal/adapter/repository/redis"
	"github.com/openbooks/openbooks/internal/infrastructure/config"
	"github.com/openbooks/openbooks/internal/infrastructure/logger"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
	"github.com/openbooks/openbooks/internal/infrastructure/postgres"
	"github.com/openbooks/openbooks/internal/infrastructure/redis"
	"github.com/openbooks/openbooks/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	// Connect to PostgreSQL
	dbPool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer dbPool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Probe schema capabilities
	caps, err := postgresRepo.ProbeCapabilities(ctx, dbPool)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to probe schema capabilities")
	}
	if !caps.EntryKindTagging {
		log.Warn().Msg("entries table has no entry_kind column, running with legacy deduplication")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Register metrics
	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(dbPool)
	entryRepo := postgresRepo.NewEntryRepository(dbPool, caps)
	invoiceRepo := postgresRepo.NewInvoiceRepository(dbPool)
	poInvoiceRepo := postgresRepo.NewPOInvoiceRepository(dbPool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	statementUC := usecase.NewStatementUseCase(entryRepo, invoiceRepo, poInvoiceRepo, caps, log.Logger).
		WithMetrics(appMetrics)
	entryUC := usecase.NewEntryUseCase(txManager, entryRepo, idGen, caps, log.Logger).
		WithRetrier(postgresRepo.NewRetrier()).
		WithMetrics(appMetrics)

	// Initialize handlers
	statementHandler := handler.NewStatementHandler(statementUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo, poInvoiceRepo, idGen).
		WithMetrics(appMetrics)
	healthHandler := handler.NewHealthHandler(dbPool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		StatementHandler: statementHandler,
		EntryHandler:     entryHandler,
		InvoiceHandler:   invoiceHandler,
		HealthHandler:    healthHandler,
		Logger:           log.Logger,
		IdempotencyStore: idempotencyStore,
	})

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

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
