// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/memory"
)

func newCategoryService(t *testing.T) (*CategoryService, store.Store) {
	t.Helper()
	s := memory.New()
	return NewCategoryService(s, testLogger()), s
}

func TestCategoryCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCategoryService(t)

	created, err := svc.Create(ctx, CategoryInput{Name: "Café Culture", Color: "#9333ea"})
	require.NoError(t, err)
	assert.Equal(t, "cafe-culture", created.Slug, "slug derives from the name with diacritics stripped")
	assert.Equal(t, "#9333ea", created.Color.String)

	_, err = svc.Create(ctx, CategoryInput{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CategoryInput{Name: "Cafe Culture"})
	assert.ErrorIs(t, err, store.ErrConflict, "same derived slug is a conflict")
}

func TestCategoryUpdate_SlugRename(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCategoryService(t)

	_, err := svc.Create(ctx, CategoryInput{Name: "Grammar"})
	require.NoError(t, err)
	vocab, err := svc.Create(ctx, CategoryInput{Name: "Vocabulary"})
	require.NoError(t, err)

	taken := "grammar"
	_, err = svc.Update(ctx, vocab.ID, CategoryUpdateInput{Slug: &taken})
	assert.ErrorIs(t, err, store.ErrConflict)

	fresh := "word-lists"
	updated, err := svc.Update(ctx, vocab.ID, CategoryUpdateInput{Slug: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "word-lists", updated.Slug)
}

func TestCategoryDelete_ReferentialGuard(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	categories := NewCategoryService(s, testLogger())
	posts := NewPostService(s, testLogger(), "Administrator")

	tools, err := categories.Create(ctx, CategoryInput{Name: "Tools"})
	require.NoError(t, err)

	post, err := posts.Create(ctx, PostInput{Title: "Uses Tools", Content: "body", CategoryID: tools.ID})
	require.NoError(t, err)

	// Deletion is blocked while the post references the category.
	ok, err := categories.Delete(ctx, tools.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.False(t, ok)

	// After the post goes away the same delete succeeds.
	removed, err := posts.Delete(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, removed)

	ok, err = categories.Delete(ctx, tools.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	gone, err := categories.GetByID(ctx, tools.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
