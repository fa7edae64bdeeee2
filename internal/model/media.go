// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Supported MIME types
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
	MimeTypeMP4  = "video/mp4"
	MimeTypeWebM = "video/webm"
)

// Media represents an uploaded file in the media library. A media record may
// exist without a post, e.g. a featured image uploaded before attachment.
type Media struct {
	ID                string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FileName          string         `json:"file_name" gorm:"not null"`
	FileType          string         `json:"file_type" gorm:"not null"`
	FileURL           string         `json:"file_url" gorm:"not null"`
	FileSize          sql.NullInt64  `json:"file_size,omitempty"`
	AltText           sql.NullString `json:"alt_text,omitempty"`
	Caption           sql.NullString `json:"caption,omitempty"`
	PostID            sql.NullString `json:"post_id,omitempty" gorm:"type:varchar(36);index"`
	PositionInContent sql.NullInt64  `json:"position_in_content,omitempty"`
	CreatedAt         time.Time      `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Media.
func (Media) TableName() string {
	return "media"
}

// IsImage returns true if the media type is an image.
func (m *Media) IsImage() bool {
	switch m.FileType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// IsVideo returns true if the media type is a video.
func (m *Media) IsVideo() bool {
	switch m.FileType {
	case MimeTypeMP4, MimeTypeWebM:
		return true
	default:
		return false
	}
}
