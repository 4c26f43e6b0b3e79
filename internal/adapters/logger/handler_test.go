package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/symcache/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{
			name:       "info level",
			level:      slog.LevelInfo,
			msg:        "information message",
			goldenName: "handler_info",
		},
		{
			name:       "warn level",
			level:      slog.LevelWarn,
			msg:        "warning message",
			goldenName: "handler_warn",
		},
		{
			name:       "error level",
			level:      slog.LevelError,
			msg:        "error message",
			goldenName: "handler_error",
		},
		{
			name:       "debug level filtered",
			level:      slog.LevelDebug,
			msg:        "debug message",
			goldenName: "handler_debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		build      func(h slog.Handler) slog.Handler
		attrs      []any
		goldenName string
	}{
		{
			name:       "record attributes",
			build:      func(h slog.Handler) slog.Handler { return h },
			attrs:      []any{"key", "k1", "hit", true},
			goldenName: "handler_attrs_record",
		},
		{
			name: "handler attributes first",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("cache", "symcache")})
			},
			attrs:      []any{"entries", 2},
			goldenName: "handler_attrs_handler",
		},
		{
			name: "group prefix",
			build: func(h slog.Handler) slog.Handler {
				return h.WithGroup("store")
			},
			attrs:      []any{"status", "disabled"},
			goldenName: "handler_attrs_group",
		},
		{
			name:       "quoted value",
			build:      func(h slog.Handler) slog.Handler { return h },
			attrs:      []any{"path", "/tmp/my data"},
			goldenName: "handler_attrs_quoted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := tt.build(logger.NewPrettyHandler(buf, nil))
			slog.New(handler).Info("lookup", tt.attrs...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
