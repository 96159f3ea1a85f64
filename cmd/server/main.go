// Package main is the entrypoint for the symptomdesk API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carebridge/symptomdesk/internal/ai"
	"github.com/carebridge/symptomdesk/internal/api"
	"github.com/carebridge/symptomdesk/internal/api/handler"
	mw "github.com/carebridge/symptomdesk/internal/api/middleware"
	"github.com/carebridge/symptomdesk/internal/api/response"
	"github.com/carebridge/symptomdesk/internal/cache"
	"github.com/carebridge/symptomdesk/internal/config"
	"github.com/carebridge/symptomdesk/internal/directory"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absent files are fine.
	_ = godotenv.Load()

	// 1. Load config. A missing backend key is fatal before any request
	// handling begins.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded",
		"ai_provider", cfg.AI.Provider,
		"directory_source", cfg.Directory.Source,
		"env", cfg.Server.Env,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Build the directory source. Load failures degrade to the built-in
	// fallback inside the provider, never to a startup error.
	source, pgSource, cleanup, err := newDirectorySource(ctx, cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}
	dir := directory.NewProvider(source)
	slog.Info("directory ready", "source", dir.Name(), "physicians", len(dir.Load(ctx)))

	// 3. Create the completion provider and analysis service.
	provider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		return fmt.Errorf("create completion provider: %w", err)
	}
	svc := ai.NewService(provider, cfg.AI.RequestTimeout, cfg.AI.Temperature, cfg.AI.MaxTokens)
	slog.Info("completion provider initialized", "provider", provider.Name(), "model", provider.Model())

	// 4. Optional Redis-backed rate limiting.
	var rateLimit *mw.RateLimit
	var redisCache *cache.RedisCache
	if cfg.Redis.URL != "" {
		redisCache, err = cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("create redis cache: %w", err)
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		rateLimit = mw.NewRateLimit(redisCache, cfg.Redis.RateLimitPerMin)
		slog.Info("redis connected")
	}

	// 5. Optional bearer auth.
	var auth *mw.Auth
	if cfg.Auth.APIKeyHash != "" {
		auth = mw.NewAuth(cfg.Auth.APIKeyHash)
	}

	// 6. Build router with dependencies.
	deps := api.Dependencies{
		Auth:      auth,
		RateLimit: rateLimit,

		HealthHandler:       healthHandler(pgSource, redisCache),
		AnalyzeHandler:      handler.NewAnalyzeHandler(svc, dir),
		ListPhysicians:      handler.NewListPhysiciansHandler(dir),
		ListSpecializations: handler.NewSpecializationsHandler(dir),
	}

	router := api.NewRouter(deps)

	// 7. Start HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newDirectorySource constructs the configured directory source. For
// postgres it connects, runs migrations, and returns a cleanup closing the
// pool; a connection failure is not fatal, the builtin fallback serves
// instead.
func newDirectorySource(ctx context.Context, cfg *config.Config) (directory.Source, *directory.PostgresSource, func(), error) {
	switch cfg.Directory.Source {
	case "csv":
		return directory.NewCSVSource(cfg.Directory.CSVPath), nil, nil, nil
	case "postgres":
		pool, err := directory.Connect(ctx, cfg.Database)
		if err != nil {
			slog.Warn("physician database unreachable, using builtin directory", "error", err)
			return directory.BuiltinSource{}, nil, nil, nil
		}
		if err := directory.RunMigrations(cfg.Database.URL, "migrations"); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		src := directory.NewPostgresSource(pool)
		return src, src, func() { pool.Close() }, nil
	default:
		return directory.BuiltinSource{}, nil, nil, nil
	}
}

// healthHandler reports liveness plus degraded checks for the optional
// database and cache.
func healthHandler(pg *directory.PostgresSource, c *cache.RedisCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{}

		degraded := false
		if pg != nil {
			checks["database"] = "ok"
			if err := pg.Ping(r.Context()); err != nil {
				checks["database"] = "degraded"
				degraded = true
			}
		}
		if c != nil {
			checks["cache"] = "ok"
			if err := c.Ping(r.Context()); err != nil {
				checks["cache"] = "degraded"
				degraded = true
			}
		}

		if degraded {
			response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
				"One or more services degraded", checks)
			return
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"services": checks,
		})
	}
}
