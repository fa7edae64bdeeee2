// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// MediaInput registers an already-uploaded file in the media library. The
// upload transport itself happens outside this core; the workflow only
// records the resulting location.
type MediaInput struct {
	FileName          string
	FileType          string
	FileURL           string
	FileSize          *int64
	AltText           string
	Caption           string
	PostID            string
	PositionInContent *int64
}

// MediaService handles media library records.
type MediaService struct {
	store store.Store
	log   *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(s store.Store, log *slog.Logger) *MediaService {
	return &MediaService{store: s, log: log}
}

// Register validates and stores a media record. The MIME type is inferred
// from the file extension when absent.
func (s *MediaService) Register(ctx context.Context, in MediaInput) (*model.Media, error) {
	if in.FileName == "" {
		return nil, validationErrf("fileName is required")
	}
	if in.FileURL == "" {
		return nil, validationErrf("fileUrl is required")
	}

	fileType := in.FileType
	if fileType == "" {
		fileType = mimeTypeFromExtension(in.FileName)
	}

	created, err := s.store.CreateMedia(ctx, &model.Media{
		FileName:          in.FileName,
		FileType:          fileType,
		FileURL:           in.FileURL,
		FileSize:          util.NullInt64FromPtr(in.FileSize),
		AltText:           util.NullStringFromValue(in.AltText),
		Caption:           util.NullStringFromValue(in.Caption),
		PostID:            util.NullStringFromValue(in.PostID),
		PositionInContent: util.NullInt64FromPtr(in.PositionInContent),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("media registered", "id", created.ID, "file", created.FileName, "type", created.FileType)
	return created, nil
}

// GetByID returns the media record with the given id, or nil if absent.
func (s *MediaService) GetByID(ctx context.Context, id string) (*model.Media, error) {
	return s.store.MediaByID(ctx, id)
}

// List returns media records, optionally narrowed to one post.
func (s *MediaService) List(ctx context.Context, filter store.MediaFilter) ([]model.Media, error) {
	return s.store.ListMedia(ctx, filter)
}

// AttachToPost links a media record to a post, optionally with a position
// inside the post body.
func (s *MediaService) AttachToPost(ctx context.Context, id, postID string, position *int64) (*model.Media, error) {
	if postID == "" {
		return nil, validationErrf("postId is required")
	}
	pid := util.NullStringFromValue(postID)
	upd := store.MediaUpdate{PostID: &pid}
	if position != nil {
		pos := util.NullInt64FromPtr(position)
		upd.PositionInContent = &pos
	}
	return s.store.UpdateMedia(ctx, id, upd)
}

// DetachFromPost clears a media record's post link and position.
func (s *MediaService) DetachFromPost(ctx context.Context, id string) (*model.Media, error) {
	pid := util.NullStringFromPtr(nil)
	pos := util.NullInt64FromPtr(nil)
	return s.store.UpdateMedia(ctx, id, store.MediaUpdate{PostID: &pid, PositionInContent: &pos})
}

// Update merges caption and alt text changes.
func (s *MediaService) Update(ctx context.Context, id string, altText, caption *string) (*model.Media, error) {
	upd := store.MediaUpdate{}
	if altText != nil {
		v := util.NullStringFromValue(*altText)
		upd.AltText = &v
	}
	if caption != nil {
		v := util.NullStringFromValue(*caption)
		upd.Caption = &v
	}
	return s.store.UpdateMedia(ctx, id, upd)
}

// Delete removes a media record, reporting whether it existed.
func (s *MediaService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.store.DeleteMedia(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("media deleted", "id", id)
	}
	return ok, nil
}

// mimeTypeFromExtension infers a MIME type from the file extension.
func mimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return model.MimeTypeJPEG
	case ".png":
		return model.MimeTypePNG
	case ".gif":
		return model.MimeTypeGIF
	case ".webp":
		return model.MimeTypeWebP
	case ".mp4":
		return model.MimeTypeMP4
	case ".webm":
		return model.MimeTypeWebM
	default:
		return "application/octet-stream"
	}
}
