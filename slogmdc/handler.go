// Package slogmdc connects a diagnostic context store to log/slog: a
// Handler that appends the store's current entries to every record it
// handles, so log lines carry the context as of the moment they are
// emitted.
package slogmdc

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/jsamuelsen/mdctx"
)

// Handler decorates an slog.Handler with diagnostic context attributes.
// The store is read at Handle time, not at construction time, so entries
// committed or restored after the logger was built still show up.
type Handler struct {
	inner slog.Handler
	store mdctx.Store
}

// NewHandler returns a Handler that enriches records handled by inner with
// the entries of store.
func NewHandler(inner slog.Handler, store mdctx.Store) *Handler {
	return &Handler{inner: inner, store: store}
}

// Enabled reports whether the inner handler handles records at the given
// level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle appends the store's current entries to the record and passes it
// on. String entries become string attrs; a stored null entry becomes a
// nil attr, keeping it distinguishable from both "" and an absent key.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	entries := h.store.Snapshot()
	if len(entries) == 0 {
		return h.inner.Handle(ctx, r)
	}

	r = r.Clone()
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if v := entries[key]; v != nil {
			r.AddAttrs(slog.String(key, *v))
		} else {
			r.AddAttrs(slog.Any(key, nil))
		}
	}

	return h.inner.Handle(ctx, r)
}

// WithAttrs returns a Handler whose inner handler carries the given
// attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHandler(h.inner.WithAttrs(attrs), h.store)
}

// WithGroup returns a Handler whose inner handler opens the given group.
// Context entries added in Handle land inside the open group.
func (h *Handler) WithGroup(name string) slog.Handler {
	return NewHandler(h.inner.WithGroup(name), h.store)
}
