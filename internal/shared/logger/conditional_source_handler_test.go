package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info skipped", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn annotated", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error annotated", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info annotated in debug mode", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), tt.levels...))

			log.Log(context.Background(), tt.level, "order approved", "invoice_id", "inv_abc")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
			assert.Contains(t, buf.String(), "invoice_id=inv_abc")
		})
	}
}

func TestConditionalSourceHandlerKeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelError)).
		With("component", "review").
		WithGroup("request")

	log.Info("review created", "tool", "image-resizer")

	out := buf.String()
	assert.NotContains(t, out, "source=")
	assert.Contains(t, out, "component=review")
	assert.Contains(t, out, "request.tool=image-resizer")
}

func TestConditionalSourceHandlerEnabledFollowsBase(t *testing.T) {
	h := NewConditionalSourceHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}))

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
