package logs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	logger := slog.New(h)
	logger.Info("fan out")

	if a.Len() == 0 {
		t.Error("info-level handler received nothing")
	}
	if b.Len() != 0 {
		t.Errorf("error-level handler received an info record: %s", b.String())
	}

	logger.Error("boom")
	if b.Len() == 0 {
		t.Error("error-level handler received nothing for an error record")
	}

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("multiHandler.Enabled(info) = false, want true while any handler accepts it")
	}
}
