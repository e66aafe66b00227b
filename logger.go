package rtui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

const (
	levelDebug = slog.LevelDebug
	levelWarn  = slog.LevelWarn
	levelError = slog.LevelError
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by rtui and its backends.
// rtui is silent by default; pass nil to silence it again.
//
// Levels used:
//   - slog.LevelDebug: resizes, texture parameter fallbacks, framebuffer rebuilds
//   - slog.LevelWarn: shader compile and link diagnostics
//   - slog.LevelError: incomplete framebuffers, driver errors found in debug mode
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func dumpLog(level slog.Level, format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}
