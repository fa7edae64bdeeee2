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

// CreateCategory stores a new category, rejecting duplicate slugs.
func (s *Store) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	stored := *category
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, translateErr(err)
	}
	return &stored, nil
}

// CategoryByID returns the category with the given id, or nil if absent.
func (s *Store) CategoryByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// CategoryBySlug returns the category with the given slug, or nil if absent.
func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories ordered by name ascending.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategory merges partial fields into an existing category. Renaming
// to a taken slug surfaces as ErrConflict via the unique index.
func (s *Store) UpdateCategory(ctx context.Context, id string, upd store.CategoryUpdate) (*model.Category, error) {
	cols := map[string]any{"updated_at": time.Now()}

	if upd.Name != nil {
		cols["name"] = *upd.Name
	}
	if upd.Slug != nil {
		cols["slug"] = *upd.Slug
	}
	if upd.Description != nil {
		cols["description"] = *upd.Description
	}
	if upd.Color != nil {
		cols["color"] = *upd.Color
	}

	res := s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.CategoryByID(ctx, id)
}

// DeleteCategory removes the category with the given id, reporting whether
// it existed. The referential guard lives in the workflow layer.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
