package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the caller location only for the configured levels,
// so info chatter stays compact while warnings remain traceable.
type sourceHandler struct {
	next   slog.Handler
	levels map[slog.Level]bool
}

func withSourceFor(next slog.Handler, levels ...slog.Level) slog.Handler {
	set := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		set[l] = true
	}
	return &sourceHandler{next: next, levels: set}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), levels: h.levels}
}
