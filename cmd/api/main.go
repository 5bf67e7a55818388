package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medicino/medicino/internal/adapters/cache"
	"github.com/medicino/medicino/internal/adapters/database"
	"github.com/medicino/medicino/internal/api/handlers"
	"github.com/medicino/medicino/internal/api/middleware"
	"github.com/medicino/medicino/internal/api/routes"
	"github.com/medicino/medicino/internal/application/services"
	"github.com/medicino/medicino/internal/domain/providers"
	"github.com/medicino/medicino/internal/domain/repositories"
	"github.com/medicino/medicino/internal/infrastructure/clients/postgres"
	"github.com/medicino/medicino/internal/infrastructure/clients/redis"
	"github.com/medicino/medicino/internal/infrastructure/observability"
	"github.com/medicino/medicino/internal/matcher"
	"github.com/medicino/medicino/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional; the service runs fine without an exporter
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Redis is optional; without it the service runs uncached
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Redis client, running without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Adapters
	baseConditionAdapter := database.NewConditionAdapter(pgClient)

	var conditionAdapter repositories.ConditionRepository
	if cacheProvider != nil {
		conditionAdapter = database.NewCachedConditionAdapter(baseConditionAdapter, cacheProvider)
		log.Info().Msg("condition adapter wrapped with caching layer")
	} else {
		conditionAdapter = baseConditionAdapter
		log.Warn().Msg("condition adapter running without cache")
	}

	medicineAdapter := database.NewMedicineAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)
	historyAdapter := database.NewHistoryAdapter(pgClient)

	// Services
	diagnosisService := services.NewDiagnosisService(
		conditionAdapter,
		historyAdapter,
		matcher.Options{
			Threshold:     cfg.Diagnosis.ConfidenceThreshold,
			MaxCandidates: cfg.Diagnosis.MaxResults,
		},
		cfg.Diagnosis.HistoryLimit,
	)
	authService := services.NewAuthService(
		userAdapter,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		cfg.Auth.BcryptCost,
	)
	conditionService := services.NewConditionService(conditionAdapter)
	medicineService := services.NewMedicineService(medicineAdapter)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService, metrics)
	conditionHandler := handlers.NewConditionHandler(conditionService)
	medicineHandler := handlers.NewMedicineHandler(medicineService)

	var cachePinger handlers.Pinger
	if redisClient != nil {
		cachePinger = redisClient
	}
	healthHandler := handlers.NewHealthHandler(pgClient, cachePinger)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Info().Msg("cache middleware initialized")
	}

	router := routes.NewRouter(
		authHandler,
		diagnosisHandler,
		conditionHandler,
		medicineHandler,
		healthHandler,
		authService,
		cacheMiddleware,
		metrics,
		cfg.Server.AllowedOrigins,
	)

	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
