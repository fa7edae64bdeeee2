// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/memory"
)

func newMediaService(t *testing.T) (*MediaService, store.Store) {
	t.Helper()
	s := memory.New()
	return NewMediaService(s, testLogger()), s
}

func TestMediaRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMediaService(t)

	created, err := svc.Register(ctx, MediaInput{
		FileName: "cover.jpg",
		FileURL:  "/uploads/cover.jpg",
		AltText:  "cover image",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MimeTypeJPEG, created.FileType, "type inferred from extension")
	assert.True(t, created.IsImage())
	assert.False(t, created.PostID.Valid, "media may exist before attachment")

	_, err = svc.Register(ctx, MediaInput{FileURL: "/uploads/x.png"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(ctx, MediaInput{FileName: "x.png"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMediaAttachDetach(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMediaService(t)

	created, err := svc.Register(ctx, MediaInput{
		FileName: "figure.png",
		FileURL:  "/uploads/figure.png",
	})
	require.NoError(t, err)

	pos := int64(3)
	attached, err := svc.AttachToPost(ctx, created.ID, "post-1", &pos)
	require.NoError(t, err)
	require.True(t, attached.PostID.Valid)
	assert.Equal(t, "post-1", attached.PostID.String)
	assert.Equal(t, int64(3), attached.PositionInContent.Int64)

	detached, err := svc.DetachFromPost(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, detached.PostID.Valid)
	assert.False(t, detached.PositionInContent.Valid)

	_, err = svc.AttachToPost(ctx, created.ID, "", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMimeTypeFromExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"image.jpg", model.MimeTypeJPEG},
		{"image.jpeg", model.MimeTypeJPEG},
		{"IMAGE.JPG", model.MimeTypeJPEG},
		{"photo.png", model.MimeTypePNG},
		{"animation.gif", model.MimeTypeGIF},
		{"modern.webp", model.MimeTypeWebP},
		{"video.mp4", model.MimeTypeMP4},
		{"video.webm", model.MimeTypeWebM},
		{"unknown.xyz", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := mimeTypeFromExtension(tt.filename); got != tt.want {
				t.Errorf("mimeTypeFromExtension(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
