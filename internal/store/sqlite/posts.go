// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// CreatePost stores a new post, assigning id and timestamps. The unique
// index on slug is the source of truth for collision rejection under
// concurrent writers.
func (s *Store) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	stored := *post
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, translateErr(err)
	}
	return &stored, nil
}

// PostByID returns the post with the given id, or nil if absent.
func (s *Store) PostByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// PostBySlug returns the post with the given slug, or nil if absent.
func (s *Store) PostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts returns posts matching the filter, newest first. Filter
// conditions compose as predicate conjunctions.
func (s *Store) ListPosts(ctx context.Context, filter store.PostFilter) ([]model.Post, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{}).Order("created_at DESC")

	if filter.Published != nil {
		q = q.Where("is_published = ?", *filter.Published)
	}
	if filter.Featured != nil {
		q = q.Where("is_featured = ?", *filter.Featured)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	posts := make([]model.Post, 0)
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost merges partial fields into an existing post. Returns nil for a
// missing id; a slug collision surfaces as ErrConflict via the unique index.
func (s *Store) UpdatePost(ctx context.Context, id string, upd store.PostUpdate) (*model.Post, error) {
	cols := map[string]any{"updated_at": time.Now()}

	if upd.Title != nil {
		cols["title"] = *upd.Title
	}
	if upd.Slug != nil {
		cols["slug"] = *upd.Slug
	}
	if upd.Content != nil {
		cols["content"] = *upd.Content
	}
	if upd.Excerpt != nil {
		cols["excerpt"] = *upd.Excerpt
	}
	if upd.FeaturedImage != nil {
		cols["featured_image"] = *upd.FeaturedImage
	}
	if upd.CategoryID != nil {
		cols["category_id"] = *upd.CategoryID
	}
	if upd.AuthorName != nil {
		cols["author_name"] = *upd.AuthorName
	}
	if upd.IsPublished != nil {
		cols["is_published"] = *upd.IsPublished
	}
	if upd.IsFeatured != nil {
		cols["is_featured"] = *upd.IsFeatured
	}
	if upd.Position != nil {
		cols["position"] = *upd.Position
	}
	if upd.PublishedAt != nil {
		cols["published_at"] = *upd.PublishedAt
	}
	if upd.ReadTime != nil {
		cols["read_time"] = *upd.ReadTime
	}
	if upd.MetaTitle != nil {
		cols["meta_title"] = *upd.MetaTitle
	}
	if upd.MetaDescription != nil {
		cols["meta_description"] = *upd.MetaDescription
	}
	if upd.OgTitle != nil {
		cols["og_title"] = *upd.OgTitle
	}
	if upd.OgDescription != nil {
		cols["og_description"] = *upd.OgDescription
	}
	if upd.OgImage != nil {
		cols["og_image"] = *upd.OgImage
	}

	res := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.PostByID(ctx, id)
}

// DeletePost removes the post with the given id, reporting whether it existed.
func (s *Store) DeletePost(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountPostsInCategory returns the number of posts referencing categoryID.
func (s *Store) CountPostsInCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("category_id = ?", categoryID).Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
