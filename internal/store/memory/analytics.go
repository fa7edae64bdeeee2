// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// CreateAnalyticsEvent appends an event. Events are never updated or
// deleted.
func (s *Store) CreateAnalyticsEvent(_ context.Context, event *model.AnalyticsEvent) (*model.AnalyticsEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *event
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	if stored.EventData == "" {
		stored.EventData = "{}"
	}
	s.events = append(s.events, stored)

	out := stored
	return &out, nil
}

// ListAnalyticsEvents returns events matching the filter, newest first.
func (s *Store) ListAnalyticsEvents(_ context.Context, filter store.AnalyticsFilter) ([]model.AnalyticsEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.AnalyticsEvent, 0, len(s.events))
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.PostID != nil && (!e.PostID.Valid || e.PostID.String != *filter.PostID) {
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	return paginate(matched, filter.Limit, filter.Offset), nil
}
