// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store defines the storage capability contract implemented by every
// backend. Both the in-memory and the relational backend must produce
// observably identical results for the same operation sequence: same
// ordering, same uniqueness rejections, same absent-vs-found semantics.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
)

// ErrConflict is returned when a create or update would violate a uniqueness
// constraint (duplicate post/category slug, duplicate user email). The
// relational backend translates the engine's unique-constraint error into
// this value so callers see one error taxonomy regardless of backend.
var ErrConflict = errors.New("record conflicts with an existing record")

// PostFilter narrows ListPosts. Nil fields are ignored; conditions are
// combined with AND. Zero Limit means no limit.
type PostFilter struct {
	Published  *bool
	CategoryID *string
	Featured   *bool
	Limit      int
	Offset     int
}

// PostUpdate is a partial-field merge for UpdatePost. Nil fields are left
// untouched; non-nil sql.Null* pointers can set a column to NULL.
type PostUpdate struct {
	Title           *string
	Slug            *string
	Content         *string
	Excerpt         *string
	FeaturedImage   *sql.NullString
	CategoryID      *sql.NullString
	AuthorName      *string
	IsPublished     *bool
	IsFeatured      *bool
	Position        *string
	PublishedAt     *sql.NullTime
	ReadTime        *int64
	MetaTitle       *sql.NullString
	MetaDescription *sql.NullString
	OgTitle         *sql.NullString
	OgDescription   *sql.NullString
	OgImage         *sql.NullString
}

// CategoryUpdate is a partial-field merge for UpdateCategory.
type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *sql.NullString
	Color       *sql.NullString
}

// MediaFilter narrows ListMedia.
type MediaFilter struct {
	PostID *string
	Limit  int
	Offset int
}

// MediaUpdate is a partial-field merge for UpdateMedia.
type MediaUpdate struct {
	AltText           *sql.NullString
	Caption           *sql.NullString
	PostID            *sql.NullString
	PositionInContent *sql.NullInt64
}

// AffiliateLinkUpdate is a partial-field merge for UpdateAffiliateLink.
type AffiliateLinkUpdate struct {
	Title       *string
	URL         *string
	Description *sql.NullString
	PostID      *sql.NullString
	Position    *sql.NullInt64
}

// CallToActionUpdate is a partial-field merge for UpdateCallToAction.
type CallToActionUpdate struct {
	Title       *string
	Description *sql.NullString
	ButtonText  *string
	ButtonURL   *string
	PostID      *sql.NullString
	Position    *sql.NullInt64
}

// AnalyticsFilter narrows ListAnalyticsEvents.
type AnalyticsFilter struct {
	EventType *string
	PostID    *string
	Limit     int
	Offset    int
}

// Store is the capability contract every backend satisfies. Create
// operations assign the record id and server timestamps and return the
// stored record. Reads return (nil, nil) when no record matches. Updates
// merge partial fields, refresh UpdatedAt and return (nil, nil) for a
// missing id. Deletes report whether a matching record existed.
//
// Default ordering: posts, media and analytics events descend by creation
// time; categories ascend by name.
type Store interface {
	// Posts
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	PostByID(ctx context.Context, id string) (*model.Post, error)
	PostBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListPosts(ctx context.Context, filter PostFilter) ([]model.Post, error)
	UpdatePost(ctx context.Context, id string, upd PostUpdate) (*model.Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)
	CountPostsInCategory(ctx context.Context, categoryID string) (int64, error)

	// Categories
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	CategoryByID(ctx context.Context, id string) (*model.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	// Media
	CreateMedia(ctx context.Context, media *model.Media) (*model.Media, error)
	MediaByID(ctx context.Context, id string) (*model.Media, error)
	ListMedia(ctx context.Context, filter MediaFilter) ([]model.Media, error)
	UpdateMedia(ctx context.Context, id string, upd MediaUpdate) (*model.Media, error)
	DeleteMedia(ctx context.Context, id string) (bool, error)

	// Affiliate links
	CreateAffiliateLink(ctx context.Context, link *model.AffiliateLink) (*model.AffiliateLink, error)
	AffiliateLinkByID(ctx context.Context, id string) (*model.AffiliateLink, error)
	ListAffiliateLinks(ctx context.Context, postID *string) ([]model.AffiliateLink, error)
	UpdateAffiliateLink(ctx context.Context, id string, upd AffiliateLinkUpdate) (*model.AffiliateLink, error)
	DeleteAffiliateLink(ctx context.Context, id string) (bool, error)
	IncrementAffiliateClicks(ctx context.Context, id string) (*model.AffiliateLink, error)

	// Calls to action
	CreateCallToAction(ctx context.Context, cta *model.CallToAction) (*model.CallToAction, error)
	CallToActionByID(ctx context.Context, id string) (*model.CallToAction, error)
	ListCallToActions(ctx context.Context, postID *string) ([]model.CallToAction, error)
	UpdateCallToAction(ctx context.Context, id string, upd CallToActionUpdate) (*model.CallToAction, error)
	DeleteCallToAction(ctx context.Context, id string) (bool, error)
	IncrementCallToActionConversions(ctx context.Context, id string) (*model.CallToAction, error)

	// Analytics events (append-only)
	CreateAnalyticsEvent(ctx context.Context, event *model.AnalyticsEvent) (*model.AnalyticsEvent, error)
	ListAnalyticsEvents(ctx context.Context, filter AnalyticsFilter) ([]model.AnalyticsEvent, error)

	// Site settings
	SettingByKey(ctx context.Context, key string) (*model.SiteSetting, error)
	ListSettings(ctx context.Context) ([]model.SiteSetting, error)
	UpsertSetting(ctx context.Context, key, value string) (*model.SiteSetting, error)
	DeleteSetting(ctx context.Context, key string) (bool, error)

	// Users (author identities, created by seeding)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)

	// Close releases backend resources. A no-op for the in-memory backend.
	Close() error
}
