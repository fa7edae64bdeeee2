// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// Default admin identity
const (
	DefaultAdminEmail = "admin@example.com"
	DefaultAdminName  = "Administrator"
)

// Seed creates the initial data every installation needs: the admin user,
// the default categories and the baseline site settings. It is idempotent
// and safe to run on every startup, against either backend.
func Seed(ctx context.Context, s Store) error {
	// Admin user doubles as the seed marker.
	existing, err := s.UserByEmail(ctx, DefaultAdminEmail)
	if err != nil {
		return fmt.Errorf("checking for admin user: %w", err)
	}
	if existing != nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}

	user, err := s.CreateUser(ctx, &model.User{
		Email: DefaultAdminEmail,
		Name:  DefaultAdminName,
		Role:  model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	slog.Info("created default admin user", "id", user.ID, "email", user.Email)

	if err := seedCategories(ctx, s); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}
	if err := seedSettings(ctx, s); err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}
	return nil
}

func seedCategories(ctx context.Context, s Store) error {
	existing, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("categories already exist, skipping default categories")
		return nil
	}

	categories := []struct {
		Name        string
		Description string
		Color       string
	}{
		{"Grammar", "Grammar rules, explanations and common mistakes", "#2563eb"},
		{"Vocabulary", "Word lists, idioms and expressions", "#16a34a"},
		{"Pronunciation", "Sounds, stress and listening practice", "#d97706"},
		{"Culture", "Customs, travel and everyday life", "#9333ea"},
	}

	for _, cat := range categories {
		_, err := s.CreateCategory(ctx, &model.Category{
			Name:        cat.Name,
			Slug:        util.Slugify(cat.Name),
			Description: util.NullStringFromValue(cat.Description),
			Color:       util.NullStringFromValue(cat.Color),
		})
		if err != nil {
			return fmt.Errorf("creating category %s: %w", cat.Name, err)
		}
	}

	slog.Info("seeded default categories", "count", len(categories))
	return nil
}

func seedSettings(ctx context.Context, s Store) error {
	defaults := map[string]string{
		model.SettingKeySiteName:        "Lingua Lore",
		model.SettingKeySiteDescription: "Language learning articles and resources",
		model.SettingKeyAdminEmail:      DefaultAdminEmail,
		model.SettingKeyPostsPerPage:    "10",
	}

	for key, value := range defaults {
		if existing, err := s.SettingByKey(ctx, key); err != nil {
			return err
		} else if existing != nil {
			continue
		}
		if _, err := s.UpsertSetting(ctx, key, value); err != nil {
			return fmt.Errorf("seeding setting %s: %w", key, err)
		}
	}
	return nil
}
