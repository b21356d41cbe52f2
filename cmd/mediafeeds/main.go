package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nDmitry/mediafeeds/internal/api/rest"
	"github.com/nDmitry/mediafeeds/internal/app"
	"github.com/nDmitry/mediafeeds/internal/cache"
	"github.com/nDmitry/mediafeeds/internal/config"
	"github.com/nDmitry/mediafeeds/internal/entity"
	"github.com/nDmitry/mediafeeds/internal/media"
	"github.com/nDmitry/mediafeeds/internal/render"
	"github.com/nDmitry/mediafeeds/internal/settings"
	"github.com/nDmitry/mediafeeds/internal/sitemap"
)

func main() {
	flushCache := flag.Bool("flush-cache", false, "drop all cached responses and exit")
	flag.Parse()

	logger := app.Logger()
	slog.SetDefault(logger)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Received first shutdown signal, starting graceful shutdown...")
		cancel()

		// If we receive a second signal, exit immediately
		<-sigChan
		logger.Info("Received second shutdown signal, exiting immediately...")
		os.Exit(1)
	}()

	cfg, err := config.Load()

	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize Redis cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)

	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	defer redisClient.Close()

	if *flushCache {
		n, err := redisClient.Invalidate(ctx)

		if err != nil {
			logger.Error("Failed to flush cache", "error", err)
			os.Exit(1)
		}

		logger.Info("Cache flushed", "keys", n)

		return
	}

	pool, err := media.NewPostgresPool(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Error("Failed to connect to Postgres", "error", err)
		os.Exit(1)
	}

	defer pool.Close()

	store, closeStore, err := newSettingsStore(ctx, cfg, pool)

	if err != nil {
		logger.Error("Failed to open settings", "error", err)
		os.Exit(1)
	}

	defer closeStore()

	urls := sitemap.NewURLBuilder(cfg.SiteBaseURL)

	generator := sitemap.NewGenerator(media.NewPostgresRepository(pool), store, urls, cfg.FeedMaxItems)
	generator.Register(sitemap.NewLoggingHook(logger))

	// Initialize and run the HTTP server
	server := rest.NewServer(
		redisClient,
		generator,
		render.NewRenderer(urls),
		sitemap.NewCrossDomain(store, cfg.BaseDir),
		rest.ServerOptions{
			Port:            cfg.Port,
			AllowedOrigins:  cfg.AllowedOrigins,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
	)

	if err := server.Run(ctx); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited gracefully")
}

// newSettingsStore prefers the settings file, then a dedicated settings database,
// and falls back to the media pool
func newSettingsStore(ctx context.Context, cfg *entity.Config, pool *pgxpool.Pool) (settings.Store, func(), error) {
	if cfg.SettingsFile != "" {
		store, err := settings.FromFile(cfg.SettingsFile)
		return store, func() {}, err
	}

	if cfg.SettingsDatabaseURL == "" {
		store := settings.NewSQLStoreFromPool(pool)
		return store, func() { _ = store.Close() }, nil
	}

	store, err := settings.NewSQLStore(ctx, cfg.SettingsDatabaseURL)

	if err != nil {
		return nil, nil, err
	}

	return store, func() { _ = store.Close() }, nil
}
