// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geoip provides IP-to-country resolution using a MaxMind
// GeoLite2-Country database.
package geoip

import (
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/oschwald/maxminddb-golang"
)

// Resolver maps IP addresses to two-letter ISO country codes. A resolver
// without a loaded database still classifies private and loopback
// addresses; everything else resolves to an empty code.
type Resolver struct {
	mu      sync.RWMutex
	db      *maxminddb.Reader
	enabled bool
}

// countryRecord matches the GeoLite2-Country database layout.
type countryRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// NewResolver creates a resolver with no database attached.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Open attaches the GeoLite2 database at dbPath. An empty path leaves the
// resolver disabled without error, so deployments without the data file
// degrade to local-only resolution.
func (r *Resolver) Open(dbPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dbPath == "" {
		r.enabled = false
		return nil
	}

	if _, err := os.Stat(dbPath); err != nil {
		r.enabled = false
		return fmt.Errorf("geoip database %s: %w", dbPath, err)
	}

	db, err := maxminddb.Open(dbPath)
	if err != nil {
		r.enabled = false
		return fmt.Errorf("opening geoip database: %w", err)
	}

	r.db = db
	r.enabled = true
	return nil
}

// Country returns the ISO country code for ip, "LOCAL" for private and
// loopback addresses, or "" when the address is invalid, unknown, or no
// database is loaded.
func (r *Resolver) Country(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}

	if parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsLinkLocalUnicast() {
		return "LOCAL"
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.enabled || r.db == nil {
		return ""
	}

	var rec countryRecord
	if err := r.db.Lookup(parsed, &rec); err != nil {
		return ""
	}
	return rec.Country.ISOCode
}

// Enabled reports whether a database is loaded.
func (r *Resolver) Enabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled
}

// Close releases the database, if any.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db != nil {
		err := r.db.Close()
		r.db = nil
		r.enabled = false
		return err
	}
	return nil
}
