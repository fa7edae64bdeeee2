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

// CreatePost stores a new post, assigning id and timestamps. The slug
// pre-check and the insert share the store mutex, so two concurrent creates
// with the same derived slug cannot both pass the check.
func (s *Store) CreatePost(_ context.Context, post *model.Post) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.postSlugs[post.Slug]; exists {
		return nil, store.ErrConflict
	}

	stored := *post
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.posts = append(s.posts, stored)
	s.postSlugs[stored.Slug] = stored.ID

	out := stored
	return &out, nil
}

// PostByID returns the post with the given id, or nil if absent.
func (s *Store) PostByID(_ context.Context, id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.postIndex(id); i >= 0 {
		out := s.posts[i]
		return &out, nil
	}
	return nil, nil
}

// PostBySlug returns the post with the given slug, or nil if absent.
func (s *Store) PostBySlug(_ context.Context, slug string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.postSlugs[slug]
	if !ok {
		return nil, nil
	}
	if i := s.postIndex(id); i >= 0 {
		out := s.posts[i]
		return &out, nil
	}
	return nil, nil
}

// ListPosts returns posts matching the filter, newest first.
func (s *Store) ListPosts(_ context.Context, filter store.PostFilter) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Collect in reverse insertion order so equal timestamps keep
	// most-recently-created first.
	matched := make([]model.Post, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		p := s.posts[i]
		if filter.Published != nil && p.IsPublished != *filter.Published {
			continue
		}
		if filter.Featured != nil && p.IsFeatured != *filter.Featured {
			continue
		}
		if filter.CategoryID != nil && (!p.CategoryID.Valid || p.CategoryID.String != *filter.CategoryID) {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	return paginate(matched, filter.Limit, filter.Offset), nil
}

// UpdatePost merges partial fields into an existing post. Returns nil for a
// missing id and ErrConflict when the new slug belongs to a different post.
func (s *Store) UpdatePost(_ context.Context, id string, upd store.PostUpdate) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return nil, nil
	}
	p := &s.posts[i]

	if upd.Slug != nil && *upd.Slug != p.Slug {
		if owner, exists := s.postSlugs[*upd.Slug]; exists && owner != id {
			return nil, store.ErrConflict
		}
		delete(s.postSlugs, p.Slug)
		p.Slug = *upd.Slug
		s.postSlugs[p.Slug] = id
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Excerpt != nil {
		p.Excerpt = *upd.Excerpt
	}
	if upd.FeaturedImage != nil {
		p.FeaturedImage = *upd.FeaturedImage
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.AuthorName != nil {
		p.AuthorName = *upd.AuthorName
	}
	if upd.IsPublished != nil {
		p.IsPublished = *upd.IsPublished
	}
	if upd.IsFeatured != nil {
		p.IsFeatured = *upd.IsFeatured
	}
	if upd.Position != nil {
		p.Position = *upd.Position
	}
	if upd.PublishedAt != nil {
		p.PublishedAt = *upd.PublishedAt
	}
	if upd.ReadTime != nil {
		p.ReadTime = *upd.ReadTime
	}
	if upd.MetaTitle != nil {
		p.MetaTitle = *upd.MetaTitle
	}
	if upd.MetaDescription != nil {
		p.MetaDescription = *upd.MetaDescription
	}
	if upd.OgTitle != nil {
		p.OgTitle = *upd.OgTitle
	}
	if upd.OgDescription != nil {
		p.OgDescription = *upd.OgDescription
	}
	if upd.OgImage != nil {
		p.OgImage = *upd.OgImage
	}
	p.UpdatedAt = time.Now()

	out := *p
	return &out, nil
}

// DeletePost removes the post with the given id, reporting whether it existed.
func (s *Store) DeletePost(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return false, nil
	}
	delete(s.postSlugs, s.posts[i].Slug)
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return true, nil
}

// CountPostsInCategory returns the number of posts referencing categoryID.
func (s *Store) CountPostsInCategory(_ context.Context, categoryID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for i := range s.posts {
		if s.posts[i].CategoryID.Valid && s.posts[i].CategoryID.String == categoryID {
			n++
		}
	}
	return n, nil
}

// postIndex returns the slice index of the post with id, or -1.
// Callers must hold the mutex.
func (s *Store) postIndex(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// paginate applies limit/offset to an already ordered slice.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
