// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mileusna/useragent"

	"github.com/Paguzzo/lingua-lore-sub000/internal/geoip"
	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// TrackInput carries a fire-and-forget analytics event.
type TrackInput struct {
	EventType string
	Data      map[string]any
	PostID    string
	UserAgent string
	IPAddress string
}

// AnalyticsService accepts events and serves the event log. Events are
// enriched with the parsed browser, OS and device family and, when a
// resolver is attached, the country of the client IP.
type AnalyticsService struct {
	store store.Store
	log   *slog.Logger
	geo   *geoip.Resolver
}

// NewAnalyticsService creates a new analytics service. geo may be nil to
// skip country enrichment.
func NewAnalyticsService(s store.Store, log *slog.Logger, geo *geoip.Resolver) *AnalyticsService {
	return &AnalyticsService{store: s, log: log, geo: geo}
}

// Track validates and stores an event.
func (s *AnalyticsService) Track(ctx context.Context, in TrackInput) (*model.AnalyticsEvent, error) {
	if in.EventType == "" {
		return nil, validationErrf("eventType is required")
	}

	data := in.Data
	if data == nil {
		data = map[string]any{}
	}
	if in.UserAgent != "" {
		ua := useragent.Parse(in.UserAgent)
		if ua.Name != "" {
			data["browser"] = ua.Name
		}
		if ua.OS != "" {
			data["os"] = ua.OS
		}
		if ua.Device != "" {
			data["device"] = ua.Device
		}
		if ua.Bot {
			data["bot"] = true
		}
	}
	if s.geo != nil && in.IPAddress != "" {
		if country := s.geo.Country(in.IPAddress); country != "" {
			data["country"] = country
		}
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding event data: %w", err)
	}

	return s.store.CreateAnalyticsEvent(ctx, &model.AnalyticsEvent{
		EventType: in.EventType,
		EventData: string(payload),
		PostID:    util.NullStringFromValue(in.PostID),
		UserAgent: util.NullStringFromValue(in.UserAgent),
		IPAddress: util.NullStringFromValue(in.IPAddress),
	})
}

// List returns events matching the filter, newest first.
func (s *AnalyticsService) List(ctx context.Context, filter store.AnalyticsFilter) ([]model.AnalyticsEvent, error) {
	return s.store.ListAnalyticsEvents(ctx, filter)
}

// CountViews returns the number of recorded page views for a post.
func (s *AnalyticsService) CountViews(ctx context.Context, postID string) (int64, error) {
	views := model.EventTypePageView
	events, err := s.store.ListAnalyticsEvents(ctx, store.AnalyticsFilter{
		EventType: &views,
		PostID:    &postID,
	})
	if err != nil {
		return 0, err
	}
	return int64(len(events)), nil
}
