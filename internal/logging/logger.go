// Package logging configures the structured logger used by venvapp.
package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	slogctx "github.com/veqryn/slog-context"

	"github.com/tmc/venvapp/internal/system"
)

// Options controls logger construction.
type Options struct {
	// Debug lowers the level from slog.LevelWarn to slog.LevelDebug.
	Debug bool
	// JSON selects slog's JSON handler instead of the colored text handler.
	JSON bool
	// NoColor disables ANSI colors in text output.
	NoColor bool
}

// FromEnv reads Options from VENVAPP_DEBUG, VENVAPP_LOG_JSON and
// VENVAPP_NO_COLOR.
func FromEnv() Options {
	return Options{
		Debug:   system.IsDebugEnabled(),
		JSON:    system.GetBool(system.EnvLogJSON),
		NoColor: system.GetBool(system.EnvNoColor),
	}
}

// NewLogger creates a logger writing to w. Attributes stored in a context
// with slogctx.Prepend or slogctx.Append are added to every record logged
// with that context.
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// Omit time outside debug output.
				if a.Key == slog.TimeKey && len(groups) == 0 && !opts.Debug {
					return slog.Attr{}
				}
				return a
			},
		})
	}

	return slog.New(slogctx.NewHandler(handler, nil)).With("component", "venvapp")
}

// Setup installs a logger built from opts as the slog default and returns
// ctx carrying it.
func Setup(ctx context.Context, w io.Writer, opts Options) context.Context {
	logger := NewLogger(w, opts)
	slog.SetDefault(logger)
	return slogctx.NewCtx(ctx, logger)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
