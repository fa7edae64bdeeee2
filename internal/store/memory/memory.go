// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package memory implements the storage contract with in-process slices.
// State is scoped to process lifetime; nothing survives a restart. A single
// mutex makes every uniqueness pre-check and the following insert one
// critical section, so the backend is safe under parallel mutation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// Store is the in-memory backend. Collections are small (dev/seed scale);
// slug lookups go through auxiliary maps, everything else is a linear scan.
type Store struct {
	mu sync.Mutex

	posts         []model.Post
	postSlugs     map[string]string // slug -> post id
	categories    []model.Category
	categorySlugs map[string]string // slug -> category id
	media         []model.Media
	links         []model.AffiliateLink
	ctas          []model.CallToAction
	events        []model.AnalyticsEvent
	settings      []model.SiteSetting
	users         []model.User
}

var _ store.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		postSlugs:     make(map[string]string),
		categorySlugs: make(map[string]string),
	}
}

// newID returns a random opaque identifier. Collision probability is
// negligible at this scale; uniqueness is not re-checked against existing
// records.
func newID() string {
	return uuid.New().String()
}

// Close implements store.Store. Nothing to release.
func (s *Store) Close() error {
	return nil
}

// CreateUser stores a new author identity, rejecting duplicate emails.
func (s *Store) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return nil, store.ErrConflict
		}
	}

	stored := *user
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.users = append(s.users, stored)

	out := stored
	return &out, nil
}

// UserByEmail returns the user with the given email, or nil if absent.
func (s *Store) UserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			out := s.users[i]
			return &out, nil
		}
	}
	return nil, nil
}

// SettingByKey returns the setting for key, or nil if absent.
func (s *Store) SettingByKey(_ context.Context, key string) (*model.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings {
		if s.settings[i].Key == key {
			out := s.settings[i]
			return &out, nil
		}
	}
	return nil, nil
}

// ListSettings returns all settings ordered by key.
func (s *Store) ListSettings(_ context.Context) ([]model.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.SiteSetting, len(s.settings))
	copy(out, s.settings)
	sort.Slice(out, func(a, b int) bool { return out[a].Key < out[b].Key })
	return out, nil
}

// UpsertSetting updates the value in place when key exists, bumping
// UpdatedAt, and inserts a new setting otherwise.
func (s *Store) UpsertSetting(_ context.Context, key, value string) (*model.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for i := range s.settings {
		if s.settings[i].Key == key {
			s.settings[i].Value = value
			s.settings[i].UpdatedAt = now
			out := s.settings[i]
			return &out, nil
		}
	}

	setting := model.SiteSetting{Key: key, Value: value, UpdatedAt: now}
	s.settings = append(s.settings, setting)
	out := setting
	return &out, nil
}

// DeleteSetting removes the setting for key, reporting whether it existed.
func (s *Store) DeleteSetting(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings {
		if s.settings[i].Key == key {
			s.settings = append(s.settings[:i], s.settings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
