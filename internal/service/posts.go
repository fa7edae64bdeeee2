// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// PostInput carries the raw field values for creating a post. Slug,
// readTime, publishedAt and the SEO fields are derived when absent.
type PostInput struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	FeaturedImage string
	CategoryID    string
	AuthorName    string
	IsPublished   bool
	IsFeatured    bool
	Position      string
	PublishedAt   *time.Time
	ReadTime      *int64

	MetaTitle       string
	MetaDescription string
	OgTitle         string
	OgDescription   string
	OgImage         string
}

// PostUpdateInput carries a partial update. Nil fields are untouched.
// An empty string in CategoryID or FeaturedImage clears the field.
type PostUpdateInput struct {
	Title         *string
	Slug          *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	CategoryID    *string
	AuthorName    *string
	IsPublished   *bool
	IsFeatured    *bool
	Position      *string
	PublishedAt   *time.Time
	ReadTime      *int64

	MetaTitle       *string
	MetaDescription *string
	OgTitle         *string
	OgDescription   *string
	OgImage         *string
}

// PostWithCategory is a post joined with its resolved category for
// presentation. Category is nil when the post has none or the reference
// dangles.
type PostWithCategory struct {
	model.Post
	Category *model.Category `json:"category,omitempty"`
}

// PostService orchestrates the publishing workflow on top of a backend.
type PostService struct {
	store         store.Store
	log           *slog.Logger
	defaultAuthor string
}

// NewPostService creates a new post service.
func NewPostService(s store.Store, log *slog.Logger, defaultAuthor string) *PostService {
	return &PostService{store: s, log: log, defaultAuthor: defaultAuthor}
}

// Create runs the creation pipeline: validate, derive the slug, reject on
// collision, resolve the category, compute readTime, fill the SEO mirrors
// and persist.
func (s *PostService) Create(ctx context.Context, in PostInput) (*PostWithCategory, error) {
	if in.Title == "" {
		return nil, validationErrf("title is required")
	}
	if in.Content == "" {
		return nil, validationErrf("content is required")
	}

	slug := in.Slug
	if slug == "" {
		slug = util.Slugify(in.Title)
	} else {
		slug = normalizeSlug(slug)
	}
	if slug == "" {
		return nil, validationErrf("title %q yields an empty slug", in.Title)
	}

	if existing, err := s.store.PostBySlug(ctx, slug); err != nil {
		return nil, fmt.Errorf("checking slug: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("slug %q: %w", slug, store.ErrConflict)
	}

	categoryID, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	readTime := CalculateReadTime(in.Content)
	if in.ReadTime != nil {
		readTime = *in.ReadTime
	}

	author := in.AuthorName
	if author == "" {
		author = s.defaultAuthor
	}

	post := model.Post{
		Title:         in.Title,
		Slug:          slug,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		FeaturedImage: util.NullStringFromValue(in.FeaturedImage),
		CategoryID:    categoryID,
		AuthorName:    author,
		IsPublished:   in.IsPublished,
		IsFeatured:    in.IsFeatured,
		Position:      in.Position,
		ReadTime:      readTime,
	}

	if in.PublishedAt != nil {
		post.PublishedAt = sql.NullTime{Time: *in.PublishedAt, Valid: true}
	} else if in.IsPublished {
		post.PublishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	applySEODefaults(&post, in)

	created, err := s.store.CreatePost(ctx, &post)
	if err != nil {
		return nil, err
	}

	s.log.Info("post created", "id", created.ID, "slug", created.Slug, "published", created.IsPublished)
	return s.withCategory(ctx, created)
}

// Update runs the update pipeline: merge touched fields with the same
// derivations as creation, recompute readTime on content change, and stamp
// publishedAt exactly once on the first draft to published transition.
func (s *PostService) Update(ctx context.Context, id string, in PostUpdateInput) (*PostWithCategory, error) {
	current, err := s.store.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	upd := store.PostUpdate{
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		AuthorName: in.AuthorName,
		IsFeatured: in.IsFeatured,
		Position:   in.Position,
		ReadTime:   in.ReadTime,
	}

	if in.Title != nil && *in.Title == "" {
		return nil, validationErrf("title cannot be empty")
	}
	if in.Content != nil && *in.Content == "" {
		return nil, validationErrf("content cannot be empty")
	}

	if in.Slug != nil {
		slug := normalizeSlug(*in.Slug)
		if slug == "" {
			return nil, validationErrf("slug %q is invalid", *in.Slug)
		}
		if slug != current.Slug {
			if existing, err := s.store.PostBySlug(ctx, slug); err != nil {
				return nil, fmt.Errorf("checking slug: %w", err)
			} else if existing != nil {
				return nil, fmt.Errorf("slug %q: %w", slug, store.ErrConflict)
			}
		}
		upd.Slug = &slug
	}

	if in.FeaturedImage != nil {
		v := util.NullStringFromValue(*in.FeaturedImage)
		upd.FeaturedImage = &v
	}

	if in.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		upd.CategoryID = &categoryID
	}

	// Recompute readTime on content change unless supplied explicitly.
	if in.Content != nil && in.ReadTime == nil {
		readTime := CalculateReadTime(*in.Content)
		upd.ReadTime = &readTime
	}

	if in.IsPublished != nil {
		upd.IsPublished = in.IsPublished
		if in.PublishedAt != nil {
			v := sql.NullTime{Time: *in.PublishedAt, Valid: true}
			upd.PublishedAt = &v
		} else if *in.IsPublished && !current.IsPublished && !current.PublishedAt.Valid {
			// First transition to published. Never re-stamped, and never
			// cleared when the post returns to draft.
			v := sql.NullTime{Time: time.Now(), Valid: true}
			upd.PublishedAt = &v
		}
	} else if in.PublishedAt != nil {
		v := sql.NullTime{Time: *in.PublishedAt, Valid: true}
		upd.PublishedAt = &v
	}

	applySEOUpdate(current, &upd, in)

	updated, err := s.store.UpdatePost(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	s.log.Info("post updated", "id", updated.ID, "slug", updated.Slug, "published", updated.IsPublished)
	return s.withCategory(ctx, updated)
}

// GetByID returns the post joined with its category, or nil if absent.
func (s *PostService) GetByID(ctx context.Context, id string) (*PostWithCategory, error) {
	post, err := s.store.PostByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}
	return s.withCategory(ctx, post)
}

// GetBySlug returns the post joined with its category, or nil if absent.
// No side effects; use GetPublishedBySlug for public reads.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*PostWithCategory, error) {
	post, err := s.store.PostBySlug(ctx, slug)
	if err != nil || post == nil {
		return nil, err
	}
	return s.withCategory(ctx, post)
}

// GetPublishedBySlug serves the public read path. Drafts are invisible
// here, and each hit records a page view. The view counter is at least
// once, not exactly once.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug, userAgent, ipAddress string) (*PostWithCategory, error) {
	post, err := s.store.PostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsPublished {
		return nil, nil
	}

	_, err = s.store.CreateAnalyticsEvent(ctx, &model.AnalyticsEvent{
		EventType: model.EventTypePageView,
		EventData: fmt.Sprintf(`{"slug":%q}`, post.Slug),
		PostID:    util.NullStringFromValue(post.ID),
		UserAgent: util.NullStringFromValue(userAgent),
		IPAddress: util.NullStringFromValue(ipAddress),
	})
	if err != nil {
		// A lost view must not fail the read.
		s.log.Warn("recording page view failed", "slug", post.Slug, "error", err)
	}

	return s.withCategory(ctx, post)
}

// List returns posts matching the filter, newest first, each joined with
// its category.
func (s *PostService) List(ctx context.Context, filter store.PostFilter) ([]PostWithCategory, error) {
	posts, err := s.store.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Resolve each distinct category once.
	categories := make(map[string]*model.Category)
	out := make([]PostWithCategory, 0, len(posts))
	for i := range posts {
		entry := PostWithCategory{Post: posts[i]}
		if posts[i].CategoryID.Valid {
			catID := posts[i].CategoryID.String
			cat, ok := categories[catID]
			if !ok {
				cat, err = s.store.CategoryByID(ctx, catID)
				if err != nil {
					return nil, err
				}
				categories[catID] = cat
			}
			entry.Category = cat
		}
		out = append(out, entry)
	}
	return out, nil
}

// Delete removes a post, reporting whether it existed.
func (s *PostService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.store.DeletePost(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("post deleted", "id", id)
	}
	return ok, nil
}

// normalizeSlug passes an already valid slug through untouched and
// slugifies anything else.
func normalizeSlug(raw string) string {
	if util.IsValidSlug(raw) {
		return raw
	}
	return util.Slugify(raw)
}

// resolveCategory maps a submitted category reference to a stored category
// id. The reference may be an id or a slug. A stale reference falls back to
// the first available category instead of failing the whole operation; with
// no categories at all the post is left uncategorized. An empty reference
// clears the field.
func (s *PostService) resolveCategory(ctx context.Context, ref string) (sql.NullString, error) {
	if ref == "" {
		return sql.NullString{}, nil
	}

	if cat, err := s.store.CategoryByID(ctx, ref); err != nil {
		return sql.NullString{}, err
	} else if cat != nil {
		return util.NullStringFromValue(cat.ID), nil
	}

	if cat, err := s.store.CategoryBySlug(ctx, ref); err != nil {
		return sql.NullString{}, err
	} else if cat != nil {
		return util.NullStringFromValue(cat.ID), nil
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return sql.NullString{}, err
	}
	if len(categories) == 0 {
		return sql.NullString{}, nil
	}

	s.log.Warn("unknown category reference, falling back to first category",
		"ref", ref, "fallback", categories[0].Name)
	return util.NullStringFromValue(categories[0].ID), nil
}

// withCategory joins a post with its category. A dangling reference yields
// a nil category rather than an error.
func (s *PostService) withCategory(ctx context.Context, post *model.Post) (*PostWithCategory, error) {
	out := &PostWithCategory{Post: *post}
	if post.CategoryID.Valid {
		cat, err := s.store.CategoryByID(ctx, post.CategoryID.String)
		if err != nil {
			return nil, err
		}
		out.Category = cat
	}
	return out, nil
}

// applySEODefaults fills absent SEO fields from their primary equivalents
// at creation time.
func applySEODefaults(post *model.Post, in PostInput) {
	metaTitle := in.MetaTitle
	if metaTitle == "" {
		metaTitle = in.Title
	}
	metaDescription := in.MetaDescription
	if metaDescription == "" {
		metaDescription = in.Excerpt
	}
	ogTitle := in.OgTitle
	if ogTitle == "" {
		ogTitle = metaTitle
	}
	ogDescription := in.OgDescription
	if ogDescription == "" {
		ogDescription = metaDescription
	}
	ogImage := in.OgImage
	if ogImage == "" {
		ogImage = in.FeaturedImage
	}

	post.MetaTitle = util.NullStringFromValue(metaTitle)
	post.MetaDescription = util.NullStringFromValue(metaDescription)
	post.OgTitle = util.NullStringFromValue(ogTitle)
	post.OgDescription = util.NullStringFromValue(ogDescription)
	post.OgImage = util.NullStringFromValue(ogImage)
}

// applySEOUpdate carries explicit SEO values from the update and refills
// any mirror that is still empty from its effective primary field.
func applySEOUpdate(current *model.Post, upd *store.PostUpdate, in PostUpdateInput) {
	title := current.Title
	if in.Title != nil {
		title = *in.Title
	}
	excerpt := current.Excerpt
	if in.Excerpt != nil {
		excerpt = *in.Excerpt
	}
	featuredImage := current.FeaturedImage.String
	if in.FeaturedImage != nil {
		featuredImage = *in.FeaturedImage
	}

	setIf := func(dst **sql.NullString, explicit *string, currentVal sql.NullString, fallback string) {
		if explicit != nil {
			v := util.NullStringFromValue(*explicit)
			*dst = &v
			return
		}
		if !currentVal.Valid && fallback != "" {
			v := util.NullStringFromValue(fallback)
			*dst = &v
		}
	}

	setIf(&upd.MetaTitle, in.MetaTitle, current.MetaTitle, title)
	setIf(&upd.MetaDescription, in.MetaDescription, current.MetaDescription, excerpt)

	metaTitle := title
	if in.MetaTitle != nil {
		metaTitle = *in.MetaTitle
	} else if current.MetaTitle.Valid {
		metaTitle = current.MetaTitle.String
	}
	metaDescription := excerpt
	if in.MetaDescription != nil {
		metaDescription = *in.MetaDescription
	} else if current.MetaDescription.Valid {
		metaDescription = current.MetaDescription.String
	}

	setIf(&upd.OgTitle, in.OgTitle, current.OgTitle, metaTitle)
	setIf(&upd.OgDescription, in.OgDescription, current.OgDescription, metaDescription)
	setIf(&upd.OgImage, in.OgImage, current.OgImage, featuredImage)
}
