// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// AffiliateLinkInput carries the raw field values for an affiliate link.
type AffiliateLinkInput struct {
	PostID      string
	Title       string
	URL         string
	Description string
	Position    *int64
}

// CallToActionInput carries the raw field values for a call-to-action block.
type CallToActionInput struct {
	PostID      string
	Title       string
	Description string
	ButtonText  string
	ButtonURL   string
	Position    *int64
}

// PromoService handles the monetized content blocks attached to posts and
// their counters.
type PromoService struct {
	store store.Store
	log   *slog.Logger
}

// NewPromoService creates a new promo service.
func NewPromoService(s store.Store, log *slog.Logger) *PromoService {
	return &PromoService{store: s, log: log}
}

// CreateAffiliateLink validates and stores an affiliate link.
func (s *PromoService) CreateAffiliateLink(ctx context.Context, in AffiliateLinkInput) (*model.AffiliateLink, error) {
	if in.Title == "" {
		return nil, validationErrf("title is required")
	}
	if err := validateURL(in.URL); err != nil {
		return nil, err
	}

	return s.store.CreateAffiliateLink(ctx, &model.AffiliateLink{
		PostID:      util.NullStringFromValue(in.PostID),
		Title:       in.Title,
		URL:         in.URL,
		Description: util.NullStringFromValue(in.Description),
		Position:    util.NullInt64FromPtr(in.Position),
	})
}

// ListAffiliateLinks returns links, optionally narrowed to one post.
func (s *PromoService) ListAffiliateLinks(ctx context.Context, postID *string) ([]model.AffiliateLink, error) {
	return s.store.ListAffiliateLinks(ctx, postID)
}

// UpdateAffiliateLink merges partial fields into an existing link.
func (s *PromoService) UpdateAffiliateLink(ctx context.Context, id string, upd store.AffiliateLinkUpdate) (*model.AffiliateLink, error) {
	if upd.Title != nil && *upd.Title == "" {
		return nil, validationErrf("title cannot be empty")
	}
	if upd.URL != nil {
		if err := validateURL(*upd.URL); err != nil {
			return nil, err
		}
	}
	return s.store.UpdateAffiliateLink(ctx, id, upd)
}

// DeleteAffiliateLink removes a link, reporting whether it existed.
func (s *PromoService) DeleteAffiliateLink(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteAffiliateLink(ctx, id)
}

// RecordClick bumps a link's click counter and logs a click event. Returns
// nil for an unknown id.
func (s *PromoService) RecordClick(ctx context.Context, id, userAgent, ipAddress string) (*model.AffiliateLink, error) {
	link, err := s.store.IncrementAffiliateClicks(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}

	_, err = s.store.CreateAnalyticsEvent(ctx, &model.AnalyticsEvent{
		EventType: model.EventTypeClick,
		EventData: fmt.Sprintf(`{"affiliate_link_id":%q,"title":%q}`, link.ID, link.Title),
		PostID:    link.PostID,
		UserAgent: util.NullStringFromValue(userAgent),
		IPAddress: util.NullStringFromValue(ipAddress),
	})
	if err != nil {
		s.log.Warn("recording click event failed", "link_id", link.ID, "error", err)
	}
	return link, nil
}

// CreateCallToAction validates and stores a call-to-action block.
func (s *PromoService) CreateCallToAction(ctx context.Context, in CallToActionInput) (*model.CallToAction, error) {
	if in.Title == "" {
		return nil, validationErrf("title is required")
	}
	if in.ButtonText == "" {
		return nil, validationErrf("buttonText is required")
	}
	if err := validateURL(in.ButtonURL); err != nil {
		return nil, err
	}

	return s.store.CreateCallToAction(ctx, &model.CallToAction{
		PostID:      util.NullStringFromValue(in.PostID),
		Title:       in.Title,
		Description: util.NullStringFromValue(in.Description),
		ButtonText:  in.ButtonText,
		ButtonURL:   in.ButtonURL,
		Position:    util.NullInt64FromPtr(in.Position),
	})
}

// ListCallToActions returns CTAs, optionally narrowed to one post.
func (s *PromoService) ListCallToActions(ctx context.Context, postID *string) ([]model.CallToAction, error) {
	return s.store.ListCallToActions(ctx, postID)
}

// UpdateCallToAction merges partial fields into an existing CTA.
func (s *PromoService) UpdateCallToAction(ctx context.Context, id string, upd store.CallToActionUpdate) (*model.CallToAction, error) {
	if upd.Title != nil && *upd.Title == "" {
		return nil, validationErrf("title cannot be empty")
	}
	if upd.ButtonURL != nil {
		if err := validateURL(*upd.ButtonURL); err != nil {
			return nil, err
		}
	}
	return s.store.UpdateCallToAction(ctx, id, upd)
}

// DeleteCallToAction removes a CTA, reporting whether it existed.
func (s *PromoService) DeleteCallToAction(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteCallToAction(ctx, id)
}

// RecordConversion bumps a CTA's conversion counter and logs a conversion
// event. Returns nil for an unknown id.
func (s *PromoService) RecordConversion(ctx context.Context, id, userAgent, ipAddress string) (*model.CallToAction, error) {
	cta, err := s.store.IncrementCallToActionConversions(ctx, id)
	if err != nil {
		return nil, err
	}
	if cta == nil {
		return nil, nil
	}

	_, err = s.store.CreateAnalyticsEvent(ctx, &model.AnalyticsEvent{
		EventType: model.EventTypeConversion,
		EventData: fmt.Sprintf(`{"call_to_action_id":%q,"title":%q}`, cta.ID, cta.Title),
		PostID:    cta.PostID,
		UserAgent: util.NullStringFromValue(userAgent),
		IPAddress: util.NullStringFromValue(ipAddress),
	})
	if err != nil {
		s.log.Warn("recording conversion event failed", "cta_id", cta.ID, "error", err)
	}
	return cta, nil
}

// validateURL requires an absolute http(s) URL.
func validateURL(raw string) error {
	if raw == "" {
		return validationErrf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return validationErrf("url %q is not an absolute http(s) url", raw)
	}
	return nil
}
