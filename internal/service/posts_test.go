// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPostService(t *testing.T) (*PostService, store.Store) {
	t.Helper()
	s := memory.New()
	return NewPostService(s, testLogger(), "Administrator"), s
}

func TestCreate_DerivesFields(t *testing.T) {
	ctx := context.Background()
	svc, s := newPostService(t)

	tools, err := s.CreateCategory(ctx, &model.Category{Name: "Tools", Slug: "tools"})
	require.NoError(t, err)

	content := strings.TrimSpace(strings.Repeat("word ", 250))
	post, err := svc.Create(ctx, PostInput{
		Title:      "Hello World",
		Content:    content,
		CategoryID: "tools",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, int64(2), post.ReadTime, "250 words at 200 wpm rounds up to 2")
	assert.False(t, post.IsPublished)
	assert.False(t, post.PublishedAt.Valid, "drafts carry no publish timestamp")
	assert.Equal(t, "Administrator", post.AuthorName)

	require.True(t, post.CategoryID.Valid)
	assert.Equal(t, tools.ID, post.CategoryID.String)
	require.NotNil(t, post.Category)
	assert.Equal(t, "Tools", post.Category.Name)

	// SEO mirrors default to their primary fields.
	assert.Equal(t, "Hello World", post.MetaTitle.String)
	assert.Equal(t, "Hello World", post.OgTitle.String)
}

func TestCreate_ExplicitSlug(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	// A well-formed explicit slug is stored untouched.
	post, err := svc.Create(ctx, PostInput{
		Title:   "Hello World",
		Slug:    "custom-slug-42",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug-42", post.Slug)

	// A malformed explicit slug is normalized, not rejected.
	post, err = svc.Create(ctx, PostInput{
		Title:   "Another Post",
		Slug:    "My Custom Slug!",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "my-custom-slug", post.Slug)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	_, err := svc.Create(ctx, PostInput{Content: "body"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, PostInput{Title: "No Body"})
	assert.ErrorIs(t, err, ErrValidation)

	// All-symbol titles slugify to nothing and must be rejected.
	_, err = svc.Create(ctx, PostInput{Title: "!!!", Content: "body"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_SlugConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	_, err := svc.Create(ctx, PostInput{Title: "Same Title", Content: "first"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, PostInput{Title: "Same Title", Content: "second"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// An explicit distinct slug resolves the collision.
	post, err := svc.Create(ctx, PostInput{Title: "Same Title", Slug: "same-title-2", Content: "second"})
	require.NoError(t, err)
	assert.Equal(t, "same-title-2", post.Slug)
}

func TestCreate_CategoryFallback(t *testing.T) {
	ctx := context.Background()
	svc, s := newPostService(t)

	tools, err := s.CreateCategory(ctx, &model.Category{Name: "Tools", Slug: "tools"})
	require.NoError(t, err)

	post, err := svc.Create(ctx, PostInput{
		Title:      "Stale Reference",
		Content:    "body",
		CategoryID: "does-not-exist",
	})
	require.NoError(t, err)
	require.True(t, post.CategoryID.Valid)
	assert.Equal(t, tools.ID, post.CategoryID.String, "stale reference falls back to first category")
}

func TestCreate_NoCategoriesLeavesNull(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	post, err := svc.Create(ctx, PostInput{
		Title:      "Uncategorized",
		Content:    "body",
		CategoryID: "anything",
	})
	require.NoError(t, err)
	assert.False(t, post.CategoryID.Valid)
	assert.Nil(t, post.Category)
}

func TestUpdate_PublishStampedOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	created, err := svc.Create(ctx, PostInput{Title: "Draft", Content: "body"})
	require.NoError(t, err)
	require.False(t, created.PublishedAt.Valid)

	published := true
	first, err := svc.Update(ctx, created.ID, PostUpdateInput{IsPublished: &published})
	require.NoError(t, err)
	require.True(t, first.IsPublished)
	require.True(t, first.PublishedAt.Valid, "first publish stamps publishedAt")
	stamp := first.PublishedAt.Time

	// Replaying the publish is a no-op for the timestamp.
	second, err := svc.Update(ctx, created.ID, PostUpdateInput{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, second.PublishedAt.Time.Equal(stamp))

	// Returning to draft keeps the first-published history.
	draft := false
	unpublished, err := svc.Update(ctx, created.ID, PostUpdateInput{IsPublished: &draft})
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
	require.True(t, unpublished.PublishedAt.Valid)
	assert.True(t, unpublished.PublishedAt.Time.Equal(stamp))

	// Republishing does not re-stamp either.
	republished, err := svc.Update(ctx, created.ID, PostUpdateInput{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, republished.PublishedAt.Time.Equal(stamp))
}

func TestUpdate_RecomputesReadTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	created, err := svc.Create(ctx, PostInput{Title: "Short", Content: "just a few words"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ReadTime)

	longer := strings.TrimSpace(strings.Repeat("word ", 450))
	updated, err := svc.Update(ctx, created.ID, PostUpdateInput{Content: &longer})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ReadTime)

	// An explicit readTime wins over recomputation.
	custom := int64(10)
	updated, err = svc.Update(ctx, created.ID, PostUpdateInput{Content: &longer, ReadTime: &custom})
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.ReadTime)
}

func TestUpdate_SlugConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	_, err := svc.Create(ctx, PostInput{Title: "First", Content: "body"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, PostInput{Title: "Second", Content: "body"})
	require.NoError(t, err)

	taken := "first"
	_, err = svc.Update(ctx, second.ID, PostUpdateInput{Slug: &taken})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Re-submitting a post's own slug is not a conflict.
	own := "second"
	updated, err := svc.Update(ctx, second.ID, PostUpdateInput{Slug: &own})
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Slug)
}

func TestUpdate_MissingPost(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	title := "whatever"
	updated, err := svc.Update(ctx, "missing", PostUpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestGetPublishedBySlug(t *testing.T) {
	ctx := context.Background()
	svc, s := newPostService(t)

	draft, err := svc.Create(ctx, PostInput{Title: "Hidden Draft", Content: "body"})
	require.NoError(t, err)

	published, err := svc.Create(ctx, PostInput{Title: "Live Post", Content: "body", IsPublished: true})
	require.NoError(t, err)

	// Drafts are invisible on the public read path.
	got, err := svc.GetPublishedBySlug(ctx, draft.Slug, "", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetPublishedBySlug(ctx, published.Slug, "Mozilla/5.0", "203.0.113.9")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Live Post", got.Title)

	// Each public read records a page view.
	views := model.EventTypePageView
	events, err := s.ListAnalyticsEvents(ctx, store.AnalyticsFilter{EventType: &views})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, published.ID, events[0].PostID.String)
	assert.Equal(t, "Mozilla/5.0", events[0].UserAgent.String)
}

func TestList_JoinsCategories(t *testing.T) {
	ctx := context.Background()
	svc, s := newPostService(t)

	cat, err := s.CreateCategory(ctx, &model.Category{Name: "Grammar", Slug: "grammar"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, PostInput{Title: "With Category", Content: "body", CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, PostInput{Title: "Without", Content: "body"})
	require.NoError(t, err)

	list, err := svc.List(ctx, store.PostFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Without", list[0].Title)
	assert.Nil(t, list[0].Category)
	require.NotNil(t, list[1].Category)
	assert.Equal(t, "Grammar", list[1].Category.Name)
}
