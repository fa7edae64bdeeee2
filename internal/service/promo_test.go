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

func newPromoService(t *testing.T) (*PromoService, store.Store) {
	t.Helper()
	s := memory.New()
	return NewPromoService(s, testLogger()), s
}

func TestCreateAffiliateLink_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPromoService(t)

	_, err := svc.CreateAffiliateLink(ctx, AffiliateLinkInput{URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateAffiliateLink(ctx, AffiliateLinkInput{Title: "Workbook"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateAffiliateLink(ctx, AffiliateLinkInput{Title: "Workbook", URL: "not a url"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateAffiliateLink(ctx, AffiliateLinkInput{Title: "Workbook", URL: "ftp://example.com/x"})
	assert.ErrorIs(t, err, ErrValidation)

	link, err := svc.CreateAffiliateLink(ctx, AffiliateLinkInput{
		Title: "Workbook",
		URL:   "https://example.com/workbook",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), link.Clicks)
}

func TestRecordClick(t *testing.T) {
	ctx := context.Background()
	svc, s := newPromoService(t)

	link, err := svc.CreateAffiliateLink(ctx, AffiliateLinkInput{
		Title: "Workbook",
		URL:   "https://example.com/workbook",
	})
	require.NoError(t, err)

	bumped, err := svc.RecordClick(ctx, link.ID, "Mozilla/5.0", "203.0.113.9")
	require.NoError(t, err)
	require.NotNil(t, bumped)
	assert.Equal(t, int64(1), bumped.Clicks)

	// Clicks leave a trace in the event log.
	clicks := model.EventTypeClick
	events, err := s.ListAnalyticsEvents(ctx, store.AnalyticsFilter{EventType: &clicks})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].EventData, link.ID)

	// Unknown ids bump nothing and log nothing.
	missing, err := svc.RecordClick(ctx, "missing", "", "")
	require.NoError(t, err)
	assert.Nil(t, missing)

	events, err = s.ListAnalyticsEvents(ctx, store.AnalyticsFilter{EventType: &clicks})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRecordConversion(t *testing.T) {
	ctx := context.Background()
	svc, s := newPromoService(t)

	cta, err := svc.CreateCallToAction(ctx, CallToActionInput{
		Title:      "Join the newsletter",
		ButtonText: "Subscribe",
		ButtonURL:  "https://example.com/newsletter",
	})
	require.NoError(t, err)

	bumped, err := svc.RecordConversion(ctx, cta.ID, "", "")
	require.NoError(t, err)
	require.NotNil(t, bumped)
	assert.Equal(t, int64(1), bumped.Conversions)

	conversions := model.EventTypeConversion
	events, err := s.ListAnalyticsEvents(ctx, store.AnalyticsFilter{EventType: &conversions})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestCreateCallToAction_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPromoService(t)

	_, err := svc.CreateCallToAction(ctx, CallToActionInput{ButtonText: "Go", ButtonURL: "https://example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCallToAction(ctx, CallToActionInput{Title: "CTA", ButtonURL: "https://example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCallToAction(ctx, CallToActionInput{Title: "CTA", ButtonText: "Go", ButtonURL: "://bad"})
	assert.ErrorIs(t, err, ErrValidation)
}
