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

// CreateMedia stores a new media record, assigning id and creation time.
func (s *Store) CreateMedia(ctx context.Context, media *model.Media) (*model.Media, error) {
	stored := *media
	stored.ID = newID()
	stored.CreatedAt = time.Now()

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, translateErr(err)
	}
	return &stored, nil
}

// MediaByID returns the media record with the given id, or nil if absent.
func (s *Store) MediaByID(ctx context.Context, id string) (*model.Media, error) {
	var media model.Media
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

// ListMedia returns media matching the filter, newest first.
func (s *Store) ListMedia(ctx context.Context, filter store.MediaFilter) ([]model.Media, error) {
	q := s.db.WithContext(ctx).Model(&model.Media{}).Order("created_at DESC")

	if filter.PostID != nil {
		q = q.Where("post_id = ?", *filter.PostID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	media := make([]model.Media, 0)
	if err := q.Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// UpdateMedia merges partial fields into an existing media record.
func (s *Store) UpdateMedia(ctx context.Context, id string, upd store.MediaUpdate) (*model.Media, error) {
	cols := map[string]any{}

	if upd.AltText != nil {
		cols["alt_text"] = *upd.AltText
	}
	if upd.Caption != nil {
		cols["caption"] = *upd.Caption
	}
	if upd.PostID != nil {
		cols["post_id"] = *upd.PostID
	}
	if upd.PositionInContent != nil {
		cols["position_in_content"] = *upd.PositionInContent
	}
	if len(cols) == 0 {
		return s.MediaByID(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&model.Media{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.MediaByID(ctx, id)
}

// DeleteMedia removes the media record with the given id, reporting whether
// it existed.
func (s *Store) DeleteMedia(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Media{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
