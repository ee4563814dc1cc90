package internal

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards all records. Enabled returns false so callers
// skip formatting entirely while logging is disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})
var loggerPtr atomic.Pointer[slog.Logger]

// Sets the logger shared by btxt and its subpackages. Nil
// restores the default silent logger.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = nopLogger }
	loggerPtr.Store(logger)
}

// Returns the logger shared by btxt and its subpackages.
func Logger() *slog.Logger {
	logger := loggerPtr.Load()
	if logger == nil { return nopLogger } // not set yet
	return logger
}
