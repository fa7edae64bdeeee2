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

// CreateCategory stores a new category, rejecting duplicate slugs.
func (s *Store) CreateCategory(_ context.Context, category *model.Category) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categorySlugs[category.Slug]; exists {
		return nil, store.ErrConflict
	}

	stored := *category
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.categories = append(s.categories, stored)
	s.categorySlugs[stored.Slug] = stored.ID

	out := stored
	return &out, nil
}

// CategoryByID returns the category with the given id, or nil if absent.
func (s *Store) CategoryByID(_ context.Context, id string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.categoryIndex(id); i >= 0 {
		out := s.categories[i]
		return &out, nil
	}
	return nil, nil
}

// CategoryBySlug returns the category with the given slug, or nil if absent.
func (s *Store) CategoryBySlug(_ context.Context, slug string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.categorySlugs[slug]
	if !ok {
		return nil, nil
	}
	if i := s.categoryIndex(id); i >= 0 {
		out := s.categories[i]
		return &out, nil
	}
	return nil, nil
}

// ListCategories returns all categories ordered by name ascending.
func (s *Store) ListCategories(_ context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Name < out[b].Name
	})
	return out, nil
}

// UpdateCategory merges partial fields into an existing category. Renaming
// to a slug owned by a different category yields ErrConflict.
func (s *Store) UpdateCategory(_ context.Context, id string, upd store.CategoryUpdate) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return nil, nil
	}
	c := &s.categories[i]

	if upd.Slug != nil && *upd.Slug != c.Slug {
		if owner, exists := s.categorySlugs[*upd.Slug]; exists && owner != id {
			return nil, store.ErrConflict
		}
		delete(s.categorySlugs, c.Slug)
		c.Slug = *upd.Slug
		s.categorySlugs[c.Slug] = id
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Color != nil {
		c.Color = *upd.Color
	}
	c.UpdatedAt = time.Now()

	out := *c
	return &out, nil
}

// DeleteCategory removes the category with the given id, reporting whether
// it existed. The referential guard against deleting a referenced category
// lives in the workflow layer, not here.
func (s *Store) DeleteCategory(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return false, nil
	}
	delete(s.categorySlugs, s.categories[i].Slug)
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	return true, nil
}

// categoryIndex returns the slice index of the category with id, or -1.
// Callers must hold the mutex.
func (s *Store) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}
