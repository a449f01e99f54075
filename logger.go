package uitxt

import "context"
import "log/slog"
import "sync/atomic"

// Discards all records. Enabled returns false, so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// Configures the logger used by uitxt. By default nothing is logged.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: font loads, missing glyphs, cache usage.
//   - [slog.LevelWarn]: truncated lines.
//
// Example:
//   uitxt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//       Level: slog.LevelDebug,
//   })))
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = newNopLogger() }
	loggerPtr.Store(logger)
}

// Returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
