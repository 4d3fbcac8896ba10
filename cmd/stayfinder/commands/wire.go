package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rawal21/stayfinder/internal/config"
	"github.com/rawal21/stayfinder/internal/destination"
	"github.com/rawal21/stayfinder/internal/hotelbeds"
	"github.com/rawal21/stayfinder/internal/search"
	"github.com/rawal21/stayfinder/internal/storage"
	"github.com/rawal21/stayfinder/internal/storage/jsonbackend"
	"github.com/rawal21/stayfinder/internal/storage/memory"
	"github.com/rawal21/stayfinder/internal/storage/postgres"
	"github.com/rawal21/stayfinder/internal/storage/sqlite"
	"github.com/rawal21/stayfinder/pkg/ratelimit"
)

// app bundles the wired pipeline for one command invocation.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    storage.Store
	limiter  *ratelimit.Limiter
	resolver *destination.Resolver
	searcher *search.Searcher
}

func buildApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel)

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.NewLimiter(cfg.VendorRPS)

	client, err := hotelbeds.NewClient(hotelbeds.Config{
		BaseURL: cfg.VendorBaseURL,
		Credentials: hotelbeds.Credentials{
			APIKey: cfg.VendorAPIKey,
			Secret: cfg.VendorSecret,
		},
		Timeout: cfg.VendorTimeout,
		Limiter: limiter,
	})
	if err != nil {
		limiter.Stop()
		_ = store.Close()
		return nil, err
	}

	resolver := destination.NewResolver(client, store, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		limiter:  limiter,
		resolver: resolver,
		searcher: search.NewSearcher(client, resolver, logger),
	}, nil
}

func (a *app) Close() {
	a.limiter.Stop()
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close cache store", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.CacheBackend {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.New(cfg.CacheDSN)
	case "json":
		return jsonbackend.New(cfg.CacheDSN)
	case "postgres":
		return postgres.New(ctx, cfg.CacheDSN)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
