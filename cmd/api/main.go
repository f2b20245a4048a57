package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/cpapmaskselector/internal/adapters/cache"
	catalogadapter "github.com/zatekoja/cpapmaskselector/internal/adapters/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/api/handlers"
	"github.com/zatekoja/cpapmaskselector/internal/api/routes"
	"github.com/zatekoja/cpapmaskselector/internal/application/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/application/engine"
	"github.com/zatekoja/cpapmaskselector/internal/application/services"
	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/redis"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/observability"
	"github.com/zatekoja/cpapmaskselector/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// The database is only needed when the catalog lives in Postgres
	var pgClient *postgres.Client
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		pgClient, err = postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		log.Info().Msg("PostgreSQL client initialized")
	}

	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			// Recommendations are recomputed on every request without a cache
			log.Warn().Err(err).Msg("Failed to initialize Redis client, running without cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis cache initialized")
		}
	}

	// Load the catalog once; it is read-only for the life of the process
	repo, err := catalogadapter.NewRepository(cfg.Catalog, pgClient, catalog.Builtin())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure catalog source")
	}
	maskCatalog, err := services.LoadCatalog(ctx, repo)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Catalog.Source).Msg("Failed to load mask catalog")
	}

	recommendationService := services.NewRecommendationService(
		engine.New(maskCatalog),
		cacheProvider,
		time.Duration(cfg.Recommendation.CacheTTLSeconds)*time.Second,
		metrics,
	)

	router := routes.NewRouter(
		handlers.NewHealthHandler(len(maskCatalog.Entries())),
		handlers.NewRecommendationHandler(recommendationService),
		handlers.NewCatalogHandler(maskCatalog),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Str("catalog", cfg.Catalog.Source).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
