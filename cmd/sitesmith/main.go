// Package main is the entry point for the SiteSmith generation server.
// It loads configuration, connects to services, starts the generation
// worker pool, and serves the HTTP API with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitesmith/internal/cache"
	"sitesmith/internal/config"
	"sitesmith/internal/database"
	"sitesmith/internal/fetch"
	"sitesmith/internal/handlers"
	"sitesmith/internal/images"
	"sitesmith/internal/middleware"
	"sitesmith/internal/pipeline"
	"sitesmith/internal/router"
	"sitesmith/internal/sitegen"
	"sitesmith/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible queue + status store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize data stores.
	businessStore := store.NewBusinessStore(db)

	// Initialize the image search provider registry with all configured
	// providers.
	imageRegistry := images.NewRegistry(cfg.ImageProvider, map[string]images.ProviderConfig{
		"unsplash": {APIKey: cfg.UnsplashAPIKey},
		"pexels":   {APIKey: cfg.PexelsAPIKey},
	})

	slog.Info("image providers initialized",
		"active", cfg.ImageProvider,
		"configured", imageRegistry.HasProvider(cfg.ImageProvider),
	)

	// Assemble the generation pipeline: SSRF-safe fetcher, image
	// enrichment, deterministic config generator, Valkey-backed queue,
	// status store, and per-business locks.
	fetcher := fetch.New()
	enricher := images.NewEngine(imageRegistry, images.NewHeadChecker())
	generator := sitegen.New(nil)

	orchestrator := pipeline.New(
		pipeline.NewRedisQueue(valkeyClient),
		pipeline.NewRedisStatusStore(valkeyClient),
		pipeline.NewRedisLock(valkeyClient),
		businessStore,
		fetcher,
		enricher,
		generator,
		pipeline.Config{
			Workers:    cfg.Workers,
			JobTimeout: cfg.JobTimeout,
			Retry:      pipeline.DefaultRetryPolicy(),
		},
	)
	orchestrator.Start()

	// Create handler groups with their dependencies.
	generationHandlers := handlers.NewGeneration(orchestrator, businessStore)

	// Per-IP rate limiter guarding the enqueue endpoint.
	limiter := middleware.NewRateLimiter(10, time.Minute)
	defer limiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(generationHandlers, limiter)

	// Create the HTTP server with sensible timeouts. The API only
	// enqueues and polls, so handler latency stays low; the heavy work
	// happens in the worker pool.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain both the
	// HTTP server and the worker pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests and in-flight jobs up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	if err := orchestrator.Stop(ctx); err != nil {
		slog.Error("workers forced to shutdown", "error", err)
	}

	slog.Info("server stopped gracefully")
}
