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

// CreateMedia stores a new media record, assigning id and creation time.
func (s *Store) CreateMedia(_ context.Context, media *model.Media) (*model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *media
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	s.media = append(s.media, stored)

	out := stored
	return &out, nil
}

// MediaByID returns the media record with the given id, or nil if absent.
func (s *Store) MediaByID(_ context.Context, id string) (*model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.mediaIndex(id); i >= 0 {
		out := s.media[i]
		return &out, nil
	}
	return nil, nil
}

// ListMedia returns media matching the filter, newest first.
func (s *Store) ListMedia(_ context.Context, filter store.MediaFilter) ([]model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.Media, 0, len(s.media))
	for i := len(s.media) - 1; i >= 0; i-- {
		m := s.media[i]
		if filter.PostID != nil && (!m.PostID.Valid || m.PostID.String != *filter.PostID) {
			continue
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	return paginate(matched, filter.Limit, filter.Offset), nil
}

// UpdateMedia merges partial fields into an existing media record.
func (s *Store) UpdateMedia(_ context.Context, id string, upd store.MediaUpdate) (*model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.mediaIndex(id)
	if i < 0 {
		return nil, nil
	}
	m := &s.media[i]

	if upd.AltText != nil {
		m.AltText = *upd.AltText
	}
	if upd.Caption != nil {
		m.Caption = *upd.Caption
	}
	if upd.PostID != nil {
		m.PostID = *upd.PostID
	}
	if upd.PositionInContent != nil {
		m.PositionInContent = *upd.PositionInContent
	}

	out := *m
	return &out, nil
}

// DeleteMedia removes the media record with the given id, reporting whether
// it existed.
func (s *Store) DeleteMedia(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.mediaIndex(id)
	if i < 0 {
		return false, nil
	}
	s.media = append(s.media[:i], s.media[i+1:]...)
	return true, nil
}

// mediaIndex returns the slice index of the media record with id, or -1.
// Callers must hold the mutex.
func (s *Store) mediaIndex(id string) int {
	for i := range s.media {
		if s.media[i].ID == id {
			return i
		}
	}
	return -1
}
