package shim

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers never
// format messages while logging is off.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var currentLogger atomic.Pointer[slog.Logger]

func init() {
	currentLogger.Store(slog.New(discardHandler{}))
}

// SetLogger sets the logger shared by shim and its native backends.
// Nothing is logged until SetLogger is called; passing nil turns logging
// off again.
//
// Levels:
//   - [slog.LevelDebug]: descriptor conversions and forwarded native calls
//   - [slog.LevelInfo]: device creation and reset transitions
//   - [slog.LevelWarn]: native creation failures and emulation limits
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	currentLogger.Store(l)
}

// Logger returns the logger set with SetLogger.
// Backend packages use it so that one call configures every layer.
func Logger() *slog.Logger {
	return currentLogger.Load()
}

// ParseLevel converts a configuration level name into a slog level.
// Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
