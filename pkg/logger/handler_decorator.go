package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds attributes pulled from the record's context. A key the
// caller already set, on the record or through With, is not added again, so
// logging logger.RequestID explicitly never yields two "request_id" fields.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	// keys set through WithAttrs outside any group
	keys  map[string]struct{}
	group bool
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: extractors}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var own map[string]struct{}
	if rec.NumAttrs() > 0 {
		own = make(map[string]struct{}, rec.NumAttrs())
		rec.Attrs(func(a slog.Attr) bool {
			own[a.Key] = struct{}{}
			return true
		})
	}

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		if _, dup := own[attr.Key]; dup {
			continue
		}
		if _, dup := h.keys[attr.Key]; dup && !h.group {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.next = h.next.WithAttrs(attrs)
	if !h.group {
		out.keys = make(map[string]struct{}, len(h.keys)+len(attrs))
		for k := range h.keys {
			out.keys[k] = struct{}{}
		}
		for _, a := range attrs {
			out.keys[a.Key] = struct{}{}
		}
	}
	return &out
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := *h
	out.next = h.next.WithGroup(name)
	out.group = true
	return &out
}
