package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"unknown level falls back to info", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  string
		logged    string
		wantShown bool
	}{
		{"debug shown at debug", "debug", "debug", true},
		{"info shown at debug", "debug", "info", true},
		{"debug hidden at info", "info", "debug", false},
		{"info shown at info", "info", "info", true},
		{"warn hidden at error", "error", "warn", false},
		{"error always shown", "debug", "error", true},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.minLevel)

			switch tt.logged {
			case "debug":
				log.Debug(ctx, "message")
			case "info":
				log.Info(ctx, "message")
			case "warn":
				log.Warn(ctx, "message")
			case "error":
				log.Error(ctx, "message")
			}

			if got := buf.Len() > 0; got != tt.wantShown {
				t.Errorf("output shown = %v, want %v (buf: %q)", got, tt.wantShown, buf.String())
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Info(context.Background(), "processed %d slides for %s", 7, "lecture.pptx")

	out := buf.String()
	if !strings.Contains(out, "[INFO] processed 7 slides for lecture.pptx") {
		t.Errorf("unexpected output: %q", out)
	}
}
