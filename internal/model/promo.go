// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// AffiliateLink is a monetized link block placed inside post content. The
// click counter is bumped by an external trigger through an atomic
// increment-by-update on the store.
type AffiliateLink struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID      sql.NullString `json:"post_id,omitempty" gorm:"type:varchar(36);index"`
	Title       string         `json:"title" gorm:"not null"`
	URL         string         `json:"url" gorm:"not null"`
	Description sql.NullString `json:"description,omitempty"`
	Position    sql.NullInt64  `json:"position,omitempty"`
	Clicks      int64          `json:"clicks" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for AffiliateLink.
func (AffiliateLink) TableName() string {
	return "affiliate_links"
}

// CallToAction is a promotional block placed inside post content, tracking
// conversions the same way affiliate links track clicks.
type CallToAction struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID      sql.NullString `json:"post_id,omitempty" gorm:"type:varchar(36);index"`
	Title       string         `json:"title" gorm:"not null"`
	Description sql.NullString `json:"description,omitempty"`
	ButtonText  string         `json:"button_text" gorm:"not null"`
	ButtonURL   string         `json:"button_url" gorm:"not null"`
	Position    sql.NullInt64  `json:"position,omitempty"`
	Conversions int64          `json:"conversions" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for CallToAction.
func (CallToAction) TableName() string {
	return "call_to_actions"
}
