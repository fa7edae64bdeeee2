// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including Post, Category, Media, and analytics structures.
package model

import (
	"database/sql"
	"time"
)

// Post positions used by the frontend to group listings.
const (
	PositionFeatured = "featured"
	PositionRecent   = "recent"
	PositionPopular  = "popular"
)

// Post represents a blog article.
type Post struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title           string         `json:"title" gorm:"not null"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;not null"`
	Content         string         `json:"content" gorm:"not null"`
	Excerpt         string         `json:"excerpt"`
	FeaturedImage   sql.NullString `json:"featured_image,omitempty"`
	CategoryID      sql.NullString `json:"category_id,omitempty" gorm:"type:varchar(36);index"`
	AuthorName      string         `json:"author_name"`
	IsPublished     bool           `json:"is_published" gorm:"not null;default:false"`
	IsFeatured      bool           `json:"is_featured" gorm:"not null;default:false"`
	Position        string         `json:"position"`
	PublishedAt     sql.NullTime   `json:"published_at,omitempty"`
	ReadTime        int64          `json:"read_time"`
	MetaTitle       sql.NullString `json:"meta_title,omitempty"`
	MetaDescription sql.NullString `json:"meta_description,omitempty"`
	OgTitle         sql.NullString `json:"og_title,omitempty"`
	OgDescription   sql.NullString `json:"og_description,omitempty"`
	OgImage         sql.NullString `json:"og_image,omitempty"`
	CreatedAt       time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Post.
func (Post) TableName() string {
	return "posts"
}

// IsDraft returns true if the post has not been published.
func (p *Post) IsDraft() bool {
	return !p.IsPublished
}

// HasCategory returns true if the post carries a category reference.
func (p *Post) HasCategory() bool {
	return p.CategoryID.Valid && p.CategoryID.String != ""
}
