// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store/memory"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func listLogEvents(t *testing.T, s store.Store) []model.AnalyticsEvent {
	t.Helper()
	logType := model.EventTypeLog
	events, err := s.ListAnalyticsEvents(context.Background(), store.AnalyticsFilter{EventType: &logType})
	if err != nil {
		t.Fatalf("ListAnalyticsEvents: %v", err)
	}
	return events
}

func TestEventLogHandler_ErrorLevel(t *testing.T) {
	s := memory.New()
	logger := slog.New(NewEventLogHandler(discardHandler{}, s))

	logger.Error("database connection failed", "host", "localhost")

	events := listLogEvents(t, s)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(events[0].EventData), &payload); err != nil {
		t.Fatalf("unmarshal event data: %v", err)
	}
	if payload["message"] != "database connection failed" {
		t.Errorf("message = %v", payload["message"])
	}
	if payload["level"] != "ERROR" {
		t.Errorf("level = %v", payload["level"])
	}
	if payload["host"] != "localhost" {
		t.Errorf("host = %v", payload["host"])
	}
}

func TestEventLogHandler_InfoNotForwarded(t *testing.T) {
	s := memory.New()
	logger := slog.New(NewEventLogHandler(discardHandler{}, s))

	logger.Info("routine startup message")
	logger.Warn("something looks off")

	events := listLogEvents(t, s)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want only the warning", len(events))
	}
}

func TestEventLogHandler_CustomLevel(t *testing.T) {
	s := memory.New()
	logger := slog.New(NewEventLogHandlerWithLevel(discardHandler{}, s, slog.LevelError))

	logger.Warn("below the threshold")
	if events := listLogEvents(t, s); len(events) != 0 {
		t.Fatalf("len(events) = %d, want 0", len(events))
	}

	logger.Error("at the threshold")
	if events := listLogEvents(t, s); len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
}

func TestEventLogHandler_WithAttrs(t *testing.T) {
	s := memory.New()
	logger := slog.New(NewEventLogHandler(discardHandler{}, s)).With("component", "store")

	logger.Warn("slow query")

	events := listLogEvents(t, s)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
}
