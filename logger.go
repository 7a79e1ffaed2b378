package rogue

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/rogue/internal/gpu"
	"github.com/gogpu/rogue/render"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message
// formatting entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any
// goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for rogue and all its subpackages.
// By default no log output is produced. Pass nil to restore the
// default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: internal diagnostics (buffer sizes, cadence)
//   - [slog.LevelInfo]: lifecycle events (adapter selected, surface ready)
//   - [slog.LevelWarn]: non-fatal issues (dropped frames, surface lost)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	render.SetLogger(l)
	gpu.SetLogger(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger { return loggerPtr.Load() }
