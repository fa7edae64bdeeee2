// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// CategoryInput carries the raw field values for creating a category.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	Color       string
}

// CategoryUpdateInput carries a partial update. Nil fields are untouched;
// an empty Description or Color clears the field.
type CategoryUpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
	Color       *string
}

// CategoryService handles category lifecycle including the referential
// guard on deletion.
type CategoryService struct {
	store store.Store
	log   *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(s store.Store, log *slog.Logger) *CategoryService {
	return &CategoryService{store: s, log: log}
}

// Create validates the name, derives the slug when absent and persists,
// rejecting duplicate slugs.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	if in.Name == "" {
		return nil, validationErrf("name is required")
	}

	slug := in.Slug
	if slug == "" {
		slug = util.Slugify(in.Name)
	} else {
		slug = normalizeSlug(slug)
	}
	if slug == "" {
		return nil, validationErrf("name %q yields an empty slug", in.Name)
	}

	created, err := s.store.CreateCategory(ctx, &model.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: util.NullStringFromValue(in.Description),
		Color:       util.NullStringFromValue(in.Color),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("category created", "id", created.ID, "slug", created.Slug)
	return created, nil
}

// Update merges partial fields. A slug rename is checked for collision the
// same way creation is.
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryUpdateInput) (*model.Category, error) {
	current, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	upd := store.CategoryUpdate{Name: in.Name}

	if in.Name != nil && *in.Name == "" {
		return nil, validationErrf("name cannot be empty")
	}

	if in.Slug != nil {
		slug := normalizeSlug(*in.Slug)
		if slug == "" {
			return nil, validationErrf("slug %q is invalid", *in.Slug)
		}
		if slug != current.Slug {
			if existing, err := s.store.CategoryBySlug(ctx, slug); err != nil {
				return nil, fmt.Errorf("checking slug: %w", err)
			} else if existing != nil {
				return nil, fmt.Errorf("slug %q: %w", slug, store.ErrConflict)
			}
		}
		upd.Slug = &slug
	}

	if in.Description != nil {
		v := util.NullStringFromValue(*in.Description)
		upd.Description = &v
	}
	if in.Color != nil {
		v := util.NullStringFromValue(*in.Color)
		upd.Color = &v
	}

	return s.store.UpdateCategory(ctx, id, upd)
}

// GetByID returns the category with the given id, or nil if absent.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*model.Category, error) {
	return s.store.CategoryByID(ctx, id)
}

// GetBySlug returns the category with the given slug, or nil if absent.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return s.store.CategoryBySlug(ctx, slug)
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// Delete removes a category. Deletion is blocked with ErrCategoryInUse
// while any post still references the category; callers must reassign or
// delete those posts first.
func (s *CategoryService) Delete(ctx context.Context, id string) (bool, error) {
	n, err := s.store.CountPostsInCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, fmt.Errorf("%d posts: %w", n, ErrCategoryInUse)
	}

	ok, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("category deleted", "id", id)
	}
	return ok, nil
}
