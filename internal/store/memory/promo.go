// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"context"
	"time"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// CreateAffiliateLink stores a new affiliate link.
func (s *Store) CreateAffiliateLink(_ context.Context, link *model.AffiliateLink) (*model.AffiliateLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *link
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.links = append(s.links, stored)

	out := stored
	return &out, nil
}

// AffiliateLinkByID returns the link with the given id, or nil if absent.
func (s *Store) AffiliateLinkByID(_ context.Context, id string) (*model.AffiliateLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.linkIndex(id); i >= 0 {
		out := s.links[i]
		return &out, nil
	}
	return nil, nil
}

// ListAffiliateLinks returns links, optionally narrowed to one post, in
// insertion order.
func (s *Store) ListAffiliateLinks(_ context.Context, postID *string) ([]model.AffiliateLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AffiliateLink, 0, len(s.links))
	for i := range s.links {
		if postID != nil && (!s.links[i].PostID.Valid || s.links[i].PostID.String != *postID) {
			continue
		}
		out = append(out, s.links[i])
	}
	return out, nil
}

// UpdateAffiliateLink merges partial fields into an existing link.
func (s *Store) UpdateAffiliateLink(_ context.Context, id string, upd store.AffiliateLinkUpdate) (*model.AffiliateLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	l := &s.links[i]

	if upd.Title != nil {
		l.Title = *upd.Title
	}
	if upd.URL != nil {
		l.URL = *upd.URL
	}
	if upd.Description != nil {
		l.Description = *upd.Description
	}
	if upd.PostID != nil {
		l.PostID = *upd.PostID
	}
	if upd.Position != nil {
		l.Position = *upd.Position
	}
	l.UpdatedAt = time.Now()

	out := *l
	return &out, nil
}

// DeleteAffiliateLink removes the link with the given id.
func (s *Store) DeleteAffiliateLink(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return false, nil
	}
	s.links = append(s.links[:i], s.links[i+1:]...)
	return true, nil
}

// IncrementAffiliateClicks bumps the click counter by one. The whole
// read-modify-write happens under the store mutex.
func (s *Store) IncrementAffiliateClicks(_ context.Context, id string) (*model.AffiliateLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, nil
	}
	s.links[i].Clicks++
	s.links[i].UpdatedAt = time.Now()

	out := s.links[i]
	return &out, nil
}

// CreateCallToAction stores a new call-to-action block.
func (s *Store) CreateCallToAction(_ context.Context, cta *model.CallToAction) (*model.CallToAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *cta
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.ctas = append(s.ctas, stored)

	out := stored
	return &out, nil
}

// CallToActionByID returns the call-to-action with the given id, or nil.
func (s *Store) CallToActionByID(_ context.Context, id string) (*model.CallToAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.ctaIndex(id); i >= 0 {
		out := s.ctas[i]
		return &out, nil
	}
	return nil, nil
}

// ListCallToActions returns CTAs, optionally narrowed to one post, in
// insertion order.
func (s *Store) ListCallToActions(_ context.Context, postID *string) ([]model.CallToAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CallToAction, 0, len(s.ctas))
	for i := range s.ctas {
		if postID != nil && (!s.ctas[i].PostID.Valid || s.ctas[i].PostID.String != *postID) {
			continue
		}
		out = append(out, s.ctas[i])
	}
	return out, nil
}

// UpdateCallToAction merges partial fields into an existing CTA.
func (s *Store) UpdateCallToAction(_ context.Context, id string, upd store.CallToActionUpdate) (*model.CallToAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ctaIndex(id)
	if i < 0 {
		return nil, nil
	}
	c := &s.ctas[i]

	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.ButtonText != nil {
		c.ButtonText = *upd.ButtonText
	}
	if upd.ButtonURL != nil {
		c.ButtonURL = *upd.ButtonURL
	}
	if upd.PostID != nil {
		c.PostID = *upd.PostID
	}
	if upd.Position != nil {
		c.Position = *upd.Position
	}
	c.UpdatedAt = time.Now()

	out := *c
	return &out, nil
}

// DeleteCallToAction removes the CTA with the given id.
func (s *Store) DeleteCallToAction(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ctaIndex(id)
	if i < 0 {
		return false, nil
	}
	s.ctas = append(s.ctas[:i], s.ctas[i+1:]...)
	return true, nil
}

// IncrementCallToActionConversions bumps the conversion counter by one.
func (s *Store) IncrementCallToActionConversions(_ context.Context, id string) (*model.CallToAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ctaIndex(id)
	if i < 0 {
		return nil, nil
	}
	s.ctas[i].Conversions++
	s.ctas[i].UpdatedAt = time.Now()

	out := s.ctas[i]
	return &out, nil
}

// linkIndex returns the slice index of the affiliate link with id, or -1.
// Callers must hold the mutex.
func (s *Store) linkIndex(id string) int {
	for i := range s.links {
		if s.links[i].ID == id {
			return i
		}
	}
	return -1
}

// ctaIndex returns the slice index of the CTA with id, or -1.
// Callers must hold the mutex.
func (s *Store) ctaIndex(id string) int {
	for i := range s.ctas {
		if s.ctas[i].ID == id {
			return i
		}
	}
	return -1
}
