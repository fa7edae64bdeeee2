// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"log/slog"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// SettingsService wraps the site settings key/value store.
type SettingsService struct {
	store store.Store
	log   *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(s store.Store, log *slog.Logger) *SettingsService {
	return &SettingsService{store: s, log: log}
}

// Get returns the value for key, or fallback when the key is absent.
func (s *SettingsService) Get(ctx context.Context, key, fallback string) (string, error) {
	setting, err := s.store.SettingByKey(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return fallback, nil
	}
	return setting.Value, nil
}

// Set writes a key, inserting or updating in place.
func (s *SettingsService) Set(ctx context.Context, key, value string) (*model.SiteSetting, error) {
	if key == "" {
		return nil, validationErrf("key is required")
	}
	setting, err := s.store.UpsertSetting(ctx, key, value)
	if err != nil {
		return nil, err
	}
	s.log.Info("setting written", "key", key)
	return setting, nil
}

// All returns every setting ordered by key.
func (s *SettingsService) All(ctx context.Context) ([]model.SiteSetting, error) {
	return s.store.ListSettings(ctx)
}

// Delete removes a key, reporting whether it existed.
func (s *SettingsService) Delete(ctx context.Context, key string) (bool, error) {
	return s.store.DeleteSetting(ctx, key)
}
