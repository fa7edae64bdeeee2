// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

import "testing"

func TestCountryWithoutDatabase(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		ip   string
		want string
	}{
		{"private v4", "192.168.1.5", "LOCAL"},
		{"private 10/8", "10.0.0.7", "LOCAL"},
		{"loopback", "127.0.0.1", "LOCAL"},
		{"loopback v6", "::1", "LOCAL"},
		{"public without db", "203.0.113.9", ""},
		{"invalid", "not-an-ip", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Country(tt.ip); got != tt.want {
				t.Errorf("Country(%q) = %q, want %q", tt.ip, got, tt.want)
			}
		})
	}
}

func TestOpenEmptyPathDisables(t *testing.T) {
	r := NewResolver()

	if err := r.Open(""); err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	if r.Enabled() {
		t.Error("resolver should be disabled with no database path")
	}
}

func TestOpenMissingFile(t *testing.T) {
	r := NewResolver()

	if err := r.Open("/no/such/GeoLite2-Country.mmdb"); err == nil {
		t.Fatal("Open should fail for a missing database file")
	}
	if r.Enabled() {
		t.Error("resolver should stay disabled after a failed Open")
	}

	// Local classification still works without the database.
	if got := r.Country("192.168.0.1"); got != "LOCAL" {
		t.Errorf("Country = %q, want LOCAL", got)
	}
}

func TestClose(t *testing.T) {
	r := NewResolver()
	if err := r.Close(); err != nil {
		t.Fatalf("Close on empty resolver: %v", err)
	}
}
