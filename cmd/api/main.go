// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize structured logger.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when configured.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jkamin61/wmm-sub000/internal/api"
	"github.com/jkamin61/wmm-sub000/internal/core/browse"
	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/core/search"
	"github.com/jkamin61/wmm-sub000/internal/core/tasting"
	"github.com/jkamin61/wmm-sub000/internal/platform/audit"
	"github.com/jkamin61/wmm-sub000/internal/platform/config"
	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/logging"
	"github.com/jkamin61/wmm-sub000/internal/platform/metrics"
	"github.com/jkamin61/wmm-sub000/internal/platform/migration"
	pgstore "github.com/jkamin61/wmm-sub000/internal/platform/postgres"
	redisstore "github.com/jkamin61/wmm-sub000/internal/platform/redis"
	"github.com/jkamin61/wmm-sub000/internal/platform/sec"
)

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	// Loaded before the logger so the log level and file come from config.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("startup_failure", slog.String("context", "load configuration"), slog.Any("error", err))
		os.Exit(1)
	}

	// ── 2. Logger ─────────────────────────────────────────────────────────
	log, logCloser := logging.New(logging.Options{Debug: cfg.Debug, LogFile: cfg.LogFile})
	slog.SetDefault(log)
	defer func() { _ = logCloser.Close() }()

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("redis_enabled", cfg.RedisURL != ""),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Shared collaborators ───────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt verifier")

	collectors := metrics.New()
	recorder := audit.NewLogRecorder(log)

	// ── 7. Health handlers ────────────────────────────────────────────────
	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}
	if rdb != nil {
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	var languageRepository language.Repository = language.NewPostgresRepository(pool)
	var sharedLanguages language.Invalidator
	if rdb != nil {
		redisLanguages := language.NewRedisRepository(languageRepository, rdb, cfg.LanguageCacheTTL)
		languageRepository, sharedLanguages = redisLanguages, redisLanguages
	}
	languages := language.NewRegistry(language.NewCache(languageRepository), sharedLanguages)

	catalogStore := catalog.NewPostgresStore(pool)
	lifecycle := content.NewLifecycle(catalogStore, recorder, collectors)
	catalogService := catalog.NewService(catalogStore, lifecycle, languages, recorder)

	tastingStore := tasting.NewPostgresStore(pool)
	tastingService := tasting.NewService(tastingStore, catalogStore, languages, recorder)
	editor := tasting.NewEditor(tastingStore, recorder)

	searchService := search.NewService(search.NewPostgresStore(pool), languages, collectors, cfg.SearchMaxPageSize)
	browseService := browse.NewService(browse.NewPostgresStore(pool), catalogStore, tastingStore, searchService, languages)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, collectors, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Languages: language.NewHandler(languages),
		Catalog:   catalog.NewHandler(catalogService),
		Tasting:   tasting.NewHandler(tastingService, editor),
		Search:    search.NewHandler(searchService),
		Browse:    browse.NewHandler(browseService),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
