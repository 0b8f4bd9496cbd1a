// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" DEBUG ", zerolog.DebugLevel},
		{"disabled", zerolog.Disabled},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		want    []string
		notWant []string
	}{
		{
			name:    "json without timestamp",
			cfg:     Config{Format: "json"},
			want:    []string{`"message":"hello"`, `"level":"info"`},
			notWant: []string{`"time"`},
		},
		{
			name: "json with caller",
			cfg:  Config{Format: "json", Caller: true, Timestamp: true},
			want: []string{`"caller":`, `"time":`},
		},
		{
			name:    "console",
			cfg:     Config{Format: "console"},
			want:    []string{"hello"},
			notWant: []string{`"message"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.cfg.Output = &buf
			l := New(tt.cfg)
			l.Info().Msg("hello")

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %s", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output %q should not contain %s", out, w)
				}
			}
		})
	}
}

// The tests below replace the global logger and must not run in parallel.

func TestInitAndWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	componentLogger := WithComponent("recommend")
	componentLogger.Debug().Msg("engine ready")
	Error().Err(errors.New("upstream down")).Msg("fetch failed")

	out := buf.String()
	for _, want := range []string{`"component":"recommend"`, "engine ready", `"error":"upstream down"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestInitLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("dropped")
	Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info message written at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestCtx(t *testing.T) {
	var global, scoped bytes.Buffer
	Init(Config{Level: "debug", Output: &global})
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-123")
	Ctx(ctx).Info().Msg("from global")

	ctx = ContextWithLogger(ctx, NewTestLogger(&scoped))
	Ctx(ctx).Info().Msg("from context")

	if !strings.Contains(global.String(), `"request_id":"req-123"`) || !strings.Contains(global.String(), "from global") {
		t.Errorf("global output = %s", global.String())
	}
	if !strings.Contains(scoped.String(), `"request_id":"req-123"`) || !strings.Contains(scoped.String(), "from context") {
		t.Errorf("context output = %s", scoped.String())
	}
	if strings.Contains(global.String(), "from context") {
		t.Error("context logger message leaked to global logger")
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", got)
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer Init(DefaultConfig())

	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))
	logger.With("tree", "gamescout").
		WithGroup("supervisor").
		With("service", "http-server").
		Warn("service restarted", "attempt", 2, slog.Group("backoff", "failures", 5))

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"tree":"gamescout"`,
		`"supervisor.service":"http-server"`,
		`"supervisor.attempt":2`,
		`"supervisor.backoff.failures":5`,
		"service restarted",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer Init(DefaultConfig())

	h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelInfo + 2, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
