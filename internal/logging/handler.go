// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a custom slog handler that integrates with the
// analytics event log. It forwards logs at WARN level and above to the
// store as "log" events for auditing.
package logging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/store"
)

// EventLogHandler is a slog.Handler that wraps another handler and also
// writes WARN and ERROR level logs to the analytics event log.
type EventLogHandler struct {
	inner slog.Handler
	store store.Store
	level slog.Level // Minimum level to forward to the event log (default: WARN)
}

// NewEventLogHandler creates a new EventLogHandler that wraps the given handler.
// Logs at WARN level and above are written to both the wrapped handler and the store.
func NewEventLogHandler(inner slog.Handler, s store.Store) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		store: s,
		level: slog.LevelWarn,
	}
}

// NewEventLogHandlerWithLevel creates a new EventLogHandler with a custom minimum level.
func NewEventLogHandlerWithLevel(inner slog.Handler, s store.Store, level slog.Level) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		store: s,
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.writeToEventLog(r)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		store: h.store,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		store: h.store,
		level: h.level,
	}
}

// writeToEventLog stores a log record as an analytics event. A background
// context is used so the event survives request-context cancellation; a
// storage failure here is dropped rather than recursing into the logger.
func (h *EventLogHandler) writeToEventLog(r slog.Record) {
	payload := map[string]any{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		payload[a.Key] = a.Value.String()
		return true
	})

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	_, _ = h.store.CreateAnalyticsEvent(context.Background(), &model.AnalyticsEvent{
		EventType: model.EventTypeLog,
		EventData: string(data),
	})
}
