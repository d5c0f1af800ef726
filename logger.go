package appicon

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled is false, so attributes such as
// layer boxes are never formatted while logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent = slog.New(discard{})
	logger atomic.Pointer[slog.Logger]
)

func init() { logger.Store(silent) }

// SetLogger routes appicon's diagnostics to l; nil silences them again.
// Render and RenderLevelIndicator log each filled shape at Debug, and
// the Write* helpers log every file they produce at Info.
//
//	appicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return logger.Load() }
