// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Well-known setting keys.
const (
	SettingKeySiteName        = "site_name"
	SettingKeySiteDescription = "site_description"
	SettingKeyAdminEmail      = "admin_email"
	SettingKeyPostsPerPage    = "posts_per_page"
)

// SiteSetting is a key/value configuration item with upsert semantics:
// writing an existing key updates it in place and bumps UpdatedAt.
type SiteSetting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for SiteSetting.
func (SiteSetting) TableName() string {
	return "site_settings"
}
