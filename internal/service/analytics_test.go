// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paguzzo/lingua-lore-sub000/internal/geoip"
	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/memory"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newAnalyticsService(t *testing.T) (*AnalyticsService, store.Store) {
	t.Helper()
	s := memory.New()
	return NewAnalyticsService(s, testLogger(), nil), s
}

func TestTrack_EnrichesUserAgent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsService(t)

	event, err := svc.Track(ctx, TrackInput{
		EventType: model.EventTypePageView,
		Data:      map[string]any{"slug": "hello-world"},
		PostID:    "post-1",
		UserAgent: chromeUA,
		IPAddress: "203.0.113.9",
	})
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(event.EventData), &data))
	assert.Equal(t, "hello-world", data["slug"])
	assert.Equal(t, "Chrome", data["browser"])
	assert.Equal(t, "Windows", data["os"])

	assert.Equal(t, chromeUA, event.UserAgent.String)
	assert.Equal(t, "203.0.113.9", event.IPAddress.String)
	assert.Equal(t, "post-1", event.PostID.String)
}

func TestTrack_EnrichesCountry(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(memory.New(), testLogger(), geoip.NewResolver())

	// Private addresses classify without a GeoLite2 database.
	event, err := svc.Track(ctx, TrackInput{
		EventType: model.EventTypePageView,
		IPAddress: "192.168.1.5",
	})
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(event.EventData), &data))
	assert.Equal(t, "LOCAL", data["country"])

	// Public addresses stay unenriched while no database is loaded.
	event, err = svc.Track(ctx, TrackInput{
		EventType: model.EventTypePageView,
		IPAddress: "203.0.113.9",
	})
	require.NoError(t, err)
	data = map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(event.EventData), &data))
	assert.NotContains(t, data, "country")
}

func TestTrack_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsService(t)

	_, err := svc.Track(ctx, TrackInput{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTrack_EmptyDataNormalizes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsService(t)

	event, err := svc.Track(ctx, TrackInput{EventType: "custom"})
	require.NoError(t, err)
	assert.Equal(t, "{}", event.EventData)
}

func TestCountViews(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsService(t)

	for n := 0; n < 3; n++ {
		_, err := svc.Track(ctx, TrackInput{EventType: model.EventTypePageView, PostID: "post-1"})
		require.NoError(t, err)
	}
	_, err := svc.Track(ctx, TrackInput{EventType: model.EventTypePageView, PostID: "post-2"})
	require.NoError(t, err)
	_, err = svc.Track(ctx, TrackInput{EventType: model.EventTypeClick, PostID: "post-1"})
	require.NoError(t, err)

	n, err := svc.CountViews(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
