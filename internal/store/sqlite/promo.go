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

// CreateAffiliateLink stores a new affiliate link.
func (s *Store) CreateAffiliateLink(ctx context.Context, link *model.AffiliateLink) (*model.AffiliateLink, error) {
	stored := *link
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// AffiliateLinkByID returns the link with the given id, or nil if absent.
func (s *Store) AffiliateLinkByID(ctx context.Context, id string) (*model.AffiliateLink, error) {
	var link model.AffiliateLink
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// ListAffiliateLinks returns links, optionally narrowed to one post, in
// insertion order.
func (s *Store) ListAffiliateLinks(ctx context.Context, postID *string) ([]model.AffiliateLink, error) {
	q := s.db.WithContext(ctx).Model(&model.AffiliateLink{}).Order("created_at ASC")
	if postID != nil {
		q = q.Where("post_id = ?", *postID)
	}

	links := make([]model.AffiliateLink, 0)
	if err := q.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// UpdateAffiliateLink merges partial fields into an existing link.
func (s *Store) UpdateAffiliateLink(ctx context.Context, id string, upd store.AffiliateLinkUpdate) (*model.AffiliateLink, error) {
	cols := map[string]any{"updated_at": time.Now()}

	if upd.Title != nil {
		cols["title"] = *upd.Title
	}
	if upd.URL != nil {
		cols["url"] = *upd.URL
	}
	if upd.Description != nil {
		cols["description"] = *upd.Description
	}
	if upd.PostID != nil {
		cols["post_id"] = *upd.PostID
	}
	if upd.Position != nil {
		cols["position"] = *upd.Position
	}

	res := s.db.WithContext(ctx).Model(&model.AffiliateLink{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.AffiliateLinkByID(ctx, id)
}

// DeleteAffiliateLink removes the link with the given id, reporting whether
// it existed.
func (s *Store) DeleteAffiliateLink(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AffiliateLink{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementAffiliateClicks bumps the click counter by one. The increment is
// a single SQL expression so concurrent bumps never lose counts.
func (s *Store) IncrementAffiliateClicks(ctx context.Context, id string) (*model.AffiliateLink, error) {
	res := s.db.WithContext(ctx).Model(&model.AffiliateLink{}).Where("id = ?", id).
		UpdateColumns(map[string]any{
			"clicks":     gorm.Expr("clicks + 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.AffiliateLinkByID(ctx, id)
}

// CreateCallToAction stores a new call-to-action block.
func (s *Store) CreateCallToAction(ctx context.Context, cta *model.CallToAction) (*model.CallToAction, error) {
	stored := *cta
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// CallToActionByID returns the call-to-action with the given id, or nil.
func (s *Store) CallToActionByID(ctx context.Context, id string) (*model.CallToAction, error) {
	var cta model.CallToAction
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&cta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cta, nil
}

// ListCallToActions returns CTAs, optionally narrowed to one post, in
// insertion order.
func (s *Store) ListCallToActions(ctx context.Context, postID *string) ([]model.CallToAction, error) {
	q := s.db.WithContext(ctx).Model(&model.CallToAction{}).Order("created_at ASC")
	if postID != nil {
		q = q.Where("post_id = ?", *postID)
	}

	ctas := make([]model.CallToAction, 0)
	if err := q.Find(&ctas).Error; err != nil {
		return nil, err
	}
	return ctas, nil
}

// UpdateCallToAction merges partial fields into an existing CTA.
func (s *Store) UpdateCallToAction(ctx context.Context, id string, upd store.CallToActionUpdate) (*model.CallToAction, error) {
	cols := map[string]any{"updated_at": time.Now()}

	if upd.Title != nil {
		cols["title"] = *upd.Title
	}
	if upd.Description != nil {
		cols["description"] = *upd.Description
	}
	if upd.ButtonText != nil {
		cols["button_text"] = *upd.ButtonText
	}
	if upd.ButtonURL != nil {
		cols["button_url"] = *upd.ButtonURL
	}
	if upd.PostID != nil {
		cols["post_id"] = *upd.PostID
	}
	if upd.Position != nil {
		cols["position"] = *upd.Position
	}

	res := s.db.WithContext(ctx).Model(&model.CallToAction{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.CallToActionByID(ctx, id)
}

// DeleteCallToAction removes the CTA with the given id, reporting whether
// it existed.
func (s *Store) DeleteCallToAction(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CallToAction{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementCallToActionConversions bumps the conversion counter by one.
func (s *Store) IncrementCallToActionConversions(ctx context.Context, id string) (*model.CallToAction, error) {
	res := s.db.WithContext(ctx).Model(&model.CallToAction{}).Where("id = ?", id).
		UpdateColumns(map[string]any{
			"conversions": gorm.Expr("conversions + 1"),
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.CallToActionByID(ctx, id)
}
