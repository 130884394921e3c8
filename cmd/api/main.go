package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upi-guard/config"
	httpHandler "upi-guard/internal/adapter/http/handler"
	"upi-guard/internal/adapter/scoring"
	pgStorage "upi-guard/internal/adapter/storage/postgres"
	redisStorage "upi-guard/internal/adapter/storage/redis"
	"upi-guard/internal/core/ports"
	"upi-guard/internal/service"
	"upi-guard/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting UPI Guard")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	payerRepo := pgStorage.NewPayerRepo(pool)
	payeeRepo := pgStorage.NewPayeeRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	fraudRepo := pgStorage.NewFraudLogRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	payeeCache := redisStorage.NewPayeeCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Publish the scoring oracle. A missing scaler or endpoint leaves the
	// handle empty and the pipeline falls back to the degraded probability;
	// it must never keep the service from starting.
	modelHandle := scoring.NewHandle(loadModelBundle(cfg.Scoring, log))

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	featureBuilder := service.NewFeatureBuilder()
	policy, err := service.NewDecisionPolicy(cfg.Fraud.Threshold)
	if err != nil {
		log.Fatal().Err(err).Float64("threshold", cfg.Fraud.Threshold).Msg("Invalid fraud threshold")
	}
	scoringSvc := service.NewScoringService(modelHandle, log)
	idGen := service.NewTxIDGenerator()

	// Initialize business services
	ledgerSvc := service.NewLedgerService(txRepo, fraudRepo, transactor, log)
	paymentSvc := service.NewPaymentService(
		payerRepo,
		payeeRepo,
		payeeCache,
		featureBuilder,
		scoringSvc,
		policy,
		ledgerSvc,
		idGen,
		log,
	)
	reportingSvc := service.NewReportingService(txRepo, fraudRepo, payerRepo, payeeRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// loadModelBundle assembles the scaler and remote model into a bundle, or
// returns nil when the oracle is not fully configured.
func loadModelBundle(cfg config.ScoringConfig, log zerolog.Logger) *ports.ModelBundle {
	if cfg.Endpoint == "" {
		log.Warn().Msg("Scoring endpoint not configured, running in degraded mode")
		return nil
	}
	scaler, err := scoring.LoadScaler(cfg.ScalerPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.ScalerPath).
			Msg("Scaler unavailable, running in degraded mode")
		return nil
	}
	log.Info().
		Str("endpoint", cfg.Endpoint).
		Str("scaler_version", scaler.Version()).
		Msg("Scoring oracle configured")
	return &ports.ModelBundle{
		Model:  scoring.NewHTTPModel(cfg.Endpoint, cfg.Timeout),
		Scaler: scaler,
	}
}
