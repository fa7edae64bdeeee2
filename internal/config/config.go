// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Store driver names accepted in LINGUALORE_STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	StoreDriver string `env:"LINGUALORE_STORE_DRIVER" envDefault:"sqlite"`
	DBPath      string `env:"LINGUALORE_DB_PATH" envDefault:"./data/lingualore.db"`
	Env         string `env:"LINGUALORE_ENV" envDefault:"development"`
	LogLevel    string `env:"LINGUALORE_LOG_LEVEL" envDefault:"info"`

	// DefaultAuthor is the author name stamped on posts created without one.
	DefaultAuthor string `env:"LINGUALORE_DEFAULT_AUTHOR" envDefault:"Administrator"`

	// GeoIPDBPath points at a GeoLite2-Country database. Empty disables
	// country enrichment of analytics events.
	GeoIPDBPath string `env:"LINGUALORE_GEOIP_DB_PATH"`

	// Seeding configuration
	DoSeed bool `env:"LINGUALORE_DO_SEED" envDefault:"true"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// SlogLevel maps the configured log level onto slog's scale.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverSQLite {
		return nil, fmt.Errorf("LINGUALORE_STORE_DRIVER must be %q or %q, got %q",
			DriverMemory, DriverSQLite, cfg.StoreDriver)
	}

	return cfg, nil
}
