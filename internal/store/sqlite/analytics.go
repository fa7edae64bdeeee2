// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package sqlite

import (
	"context"
	"time"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// CreateAnalyticsEvent appends an event to the log. Events are never
// updated or deleted.
func (s *Store) CreateAnalyticsEvent(ctx context.Context, event *model.AnalyticsEvent) (*model.AnalyticsEvent, error) {
	stored := *event
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	if stored.EventData == "" {
		stored.EventData = "{}"
	}

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListAnalyticsEvents returns events matching the filter, newest first.
func (s *Store) ListAnalyticsEvents(ctx context.Context, filter store.AnalyticsFilter) ([]model.AnalyticsEvent, error) {
	q := s.db.WithContext(ctx).Model(&model.AnalyticsEvent{}).Order("created_at DESC")

	if filter.EventType != nil {
		q = q.Where("event_type = ?", *filter.EventType)
	}
	if filter.PostID != nil {
		q = q.Where("post_id = ?", *filter.PostID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	events := make([]model.AnalyticsEvent, 0)
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
