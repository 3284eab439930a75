package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler     slog.Handler
	withSource  map[slog.Level]bool
	callerDepth int
}

// NewConditionalSourceHandler wraps handler so that only records at the given
// levels carry a source attribute. The wrapped handler must be built with
// AddSource disabled.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	withSource := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		withSource[level] = true
	}
	return &conditionalSourceHandler{
		handler:     handler,
		withSource:  withSource,
		callerDepth: 3,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.withSource[r.Level] {
		if src := h.source(r); src != nil {
			r.AddAttrs(slog.Any(slog.SourceKey, src))
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) source(r slog.Record) *slog.Source {
	pc := r.PC
	if pc == 0 {
		var pcs [1]uintptr
		runtime.Callers(h.callerDepth, pcs[:])
		pc = pcs[0]
	}
	if pc == 0 {
		return nil
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return &slog.Source{
		Function: frame.Function,
		File:     frame.File,
		Line:     frame.Line,
	}
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.handler = h.handler.WithAttrs(attrs)
	return &clone
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.handler = h.handler.WithGroup(name)
	return &clone
}
