package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tair/starwars-favorites/internal/config"
	"github.com/tair/starwars-favorites/internal/starwars"
	httpDelivery "github.com/tair/starwars-favorites/internal/starwars/delivery/http"
	_ "github.com/tair/starwars-favorites/internal/starwars/docs"
	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/internal/starwars/repository"
	"github.com/tair/starwars-favorites/internal/starwars/seed"
	"github.com/tair/starwars-favorites/kafka"
	"github.com/tair/starwars-favorites/pkg/database"
	"github.com/tair/starwars-favorites/pkg/logger"
	"github.com/tair/starwars-favorites/pkg/tracing"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, v.GetBool("memory_seed"))
		},
	}

	cmd.Flags().Int("port", 0, "HTTP port (default 3000)")
	cmd.Flags().Bool("memory-seed", true, "load the bundled catalog into the in-memory store")
	bindFlag("http_port", cmd.Flags().Lookup("port"))
	bindFlag("memory_seed", cmd.Flags().Lookup("memory-seed"))

	return cmd
}

// closer releases a resource on shutdown
type closer func() error

func serve(ctx context.Context, cfg *config.Config, memorySeed bool) error {
	var closers []closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Logger.Warn().Err(err).Msg("Shutdown step failed")
			}
		}
	}()

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			return err
		}
		closers = append(closers, func() error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return tracing.Shutdown(shutdownCtx, tp)
		})
	}

	events := newEventPublisher(cfg, &closers)
	metrics := httpDelivery.NewMetrics(prometheus.DefaultRegisterer)

	var (
		handler *httpDelivery.StarWarsHandler
		sqlDB   *sql.DB
	)

	switch cfg.StorageType {
	case config.StorageMemory:
		store := repository.NewMemoryStore()
		if memorySeed {
			data, err := seed.Default()
			if err != nil {
				return err
			}
			if err := seed.LoadIntoMemory(store, data, bcrypt.MinCost); err != nil {
				return err
			}
		}

		h, err := starwars.InitializeMemoryHTTPHandler(store, events, metrics)
		if err != nil {
			return fmt.Errorf("failed to initialize handler: %w", err)
		}
		handler = h

	default:
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			return err
		}
		if sqlDB, err = db.DB(); err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}
		closers = append(closers, sqlDB.Close)

		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Logger.Info().Msg("Database initialized successfully")

		rdb := newRedisClient(ctx, cfg, &closers)

		h, err := starwars.InitializeHTTPHandler(db, rdb, cfg.CacheConfig(), events, metrics)
		if err != nil {
			return fmt.Errorf("failed to initialize handler: %w", err)
		}
		handler = h
	}

	router := mux.NewRouter()

	mwConfig := httpDelivery.DefaultMiddlewareConfig()
	mwConfig.EnableTracing = cfg.TracingEnabled
	mwConfig.TimeoutDuration = cfg.RequestTimeout
	httpDelivery.RegisterMiddlewares(router, mwConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           httpDelivery.SetupCORS(mwConfig)(httpDelivery.StripTrailingSlash(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().
			Int("port", cfg.HTTPPort).
			Str("metrics", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Logger.Info().Msg("Server exited")
	return nil
}

// newRedisClient connects the catalog cache. The service runs uncached
// when Redis is not configured or unreachable.
func newRedisClient(ctx context.Context, cfg *config.Config, closers *[]closer) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, catalog cache disabled")
		_ = rdb.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("Catalog cache enabled")
	*closers = append(*closers, rdb.Close)
	return rdb
}

// newEventPublisher returns a Kafka publisher, or nil when Kafka is not
// configured or unreachable.
func newEventPublisher(cfg *config.Config, closers *[]closer) domain.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}

	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, favorite events disabled")
		return nil
	}

	*closers = append(*closers, publisher.Close)
	return publisher
}
