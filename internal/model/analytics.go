// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Well-known analytics event types. EventType is a free-form tag; these are
// the values the platform itself emits.
const (
	EventTypePageView   = "page_view"
	EventTypeClick      = "click"
	EventTypeConversion = "conversion"
	EventTypeLog        = "log"
)

// AnalyticsEvent is an append-only event record. Events are never updated
// or deleted; the store only supports create and ordered-list-by-recency.
type AnalyticsEvent struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EventType string         `json:"event_type" gorm:"not null;index"`
	EventData string         `json:"event_data"` // JSON string
	PostID    sql.NullString `json:"post_id,omitempty" gorm:"type:varchar(36);index"`
	UserAgent sql.NullString `json:"user_agent,omitempty"`
	IPAddress sql.NullString `json:"ip_address,omitempty"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null;index"`
}

// TableName specifies the table name for AnalyticsEvent.
func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
