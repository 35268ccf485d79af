// Package logging carries request-scoped log fields through context.Context
// so code below the HTTP layer can log them without the echo context.
package logging

import (
	"context"
	"log/slog"
)

// FieldTraceID is the attribute name every trace ID is logged under
const FieldTraceID = "trace_id"

type contextKey string

const traceIDContextKey contextKey = "trace_id"

// WithTraceID returns a copy of ctx carrying the request trace ID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDContextKey, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDContextKey).(string)
	return traceID
}

// ContextHandler adds the trace ID of the logging context to each record
// that does not already carry one.
type ContextHandler struct {
	slog.Handler
}

func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: next}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID := TraceIDFromContext(ctx); traceID != "" && !hasAttr(r, FieldTraceID) {
		r.AddAttrs(slog.String(FieldTraceID, traceID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

func hasAttr(r slog.Record, key string) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = true
			return false
		}
		return true
	})
	return found
}
