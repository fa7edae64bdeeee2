// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// Store is the relational backend.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an opened gorm handle in a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// newID returns a random opaque identifier.
func newID() string {
	return uuid.New().String()
}

// translateErr maps the engine's unique-constraint violation onto the
// shared conflict error so both backends raise the same value.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrConflict
	}
	return err
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateUser stores a new author identity, rejecting duplicate emails.
func (s *Store) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	stored := *user
	stored.ID = newID()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, translateErr(err)
	}
	return &stored, nil
}

// UserByEmail returns the user with the given email, or nil if absent.
func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// SettingByKey returns the setting for key, or nil if absent.
func (s *Store) SettingByKey(ctx context.Context, key string) (*model.SiteSetting, error) {
	var setting model.SiteSetting
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// ListSettings returns all settings.
func (s *Store) ListSettings(ctx context.Context) ([]model.SiteSetting, error) {
	settings := make([]model.SiteSetting, 0)
	if err := s.db.WithContext(ctx).Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpsertSetting inserts the key or updates its value in place, bumping
// UpdatedAt either way.
func (s *Store) UpsertSetting(ctx context.Context, key, value string) (*model.SiteSetting, error) {
	setting := model.SiteSetting{Key: key, Value: value, UpdatedAt: time.Now()}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// DeleteSetting removes the setting for key, reporting whether it existed.
func (s *Store) DeleteSetting(ctx context.Context, key string) (bool, error) {
	res := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.SiteSetting{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
