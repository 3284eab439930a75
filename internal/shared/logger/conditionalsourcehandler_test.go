package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTextLogger(buf *bytes.Buffer, levels ...slog.Level) *slog.Logger {
	base := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewConditionalSourceHandler(base, levels...))
}

func TestConditionalSourceHandler_SourceOnlyForConfiguredLevels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		wantSource bool
	}{
		{"debug", func(l *slog.Logger) { l.Debug("reminder skipped") }, false},
		{"info", func(l *slog.Logger) { l.Info("client renewed") }, false},
		{"warn", func(l *slog.Logger) { l.Warn("unknown plan filter") }, true},
		{"error", func(l *slog.Logger) { l.Error("failed to send reminder") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newTextLogger(&buf, slog.LevelWarn, slog.LevelError))
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, slog.LevelError).With("client_sid", "cl_abc").WithGroup("renewal")
	l.Info("renewed", "plan_type", "Monthly")

	out := buf.String()
	assert.Contains(t, out, "client_sid=cl_abc")
	assert.Contains(t, out, "renewal.plan_type=Monthly")
	assert.NotContains(t, out, "source=")
}

func TestConditionalSourceHandler_DelegatesEnabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
