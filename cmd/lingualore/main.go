// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Paguzzo/lingua-lore-sub000/internal/config"
	"github.com/Paguzzo/lingua-lore-sub000/internal/geoip"
	"github.com/Paguzzo/lingua-lore-sub000/internal/logging"
	"github.com/Paguzzo/lingua-lore-sub000/internal/service"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/memory"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/sqlite"
	"github.com/Paguzzo/lingua-lore-sub000/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Lingua Lore - Content Storage & Publishing Core\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_STORE_DRIVER    Storage backend: sqlite|memory (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_DB_PATH         SQLite database path (default: ./data/lingualore.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_LOG_LEVEL       Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_DEFAULT_AUTHOR  Author name for posts created without one\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_GEOIP_DB_PATH   GeoLite2-Country database for analytics country enrichment\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_DO_SEED         Seed default data on startup (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LINGUALORE_DEMO_MODE       Seed demo content when set to true\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("lingualore %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	logger = slog.New(logging.NewEventLogHandler(textHandler, backend))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, backend); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
		if err := store.SeedDemo(ctx, backend); err != nil {
			return fmt.Errorf("seeding demo content: %w", err)
		}
	}

	geo := geoip.NewResolver()
	if err := geo.Open(cfg.GeoIPDBPath); err != nil {
		slog.Warn("geoip lookups disabled", "error", err)
	}
	defer func() { _ = geo.Close() }()

	// Wire the workflow services. Route handlers (outside this core) consume
	// these through the composition below.
	posts := service.NewPostService(backend, logger, cfg.DefaultAuthor)
	categories := service.NewCategoryService(backend, logger)
	settings := service.NewSettingsService(backend, logger)
	analytics := service.NewAnalyticsService(backend, logger, geo)

	siteName, err := settings.Get(ctx, "site_name", "Lingua Lore")
	if err != nil {
		return fmt.Errorf("reading site name: %w", err)
	}
	postCount, err := posts.List(ctx, store.PostFilter{})
	if err != nil {
		return fmt.Errorf("listing posts: %w", err)
	}
	categoryList, err := categories.List(ctx)
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	recentEvents, err := analytics.List(ctx, store.AnalyticsFilter{Limit: 5})
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	slog.Info("content core ready",
		"site", siteName,
		"driver", cfg.StoreDriver,
		"env", cfg.Env,
		"posts", len(postCount),
		"categories", len(categoryList),
		"recent_events", len(recentEvents),
		"geoip", geo.Enabled(),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	return nil
}

// openStore constructs the configured backend. The sqlite path also creates
// the data directory and applies pending migrations.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		slog.Info("using in-memory store")
		return memory.New(), nil

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}

		slog.Info("initializing database", "path", cfg.DBPath)
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("initializing database: %w", err)
		}

		slog.Info("running database migrations")
		if err := sqlite.Migrate(db); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database ready")

		return sqlite.New(db), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
