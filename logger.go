package btxt

import "log/slog"

import "github.com/tinne26/btxt/internal"

// Configures the logger for btxt and all its subpackages. By default,
// btxt produces no log output. Pass nil to go back to silence.
//
// Log levels used by btxt:
//  - [slog.LevelDebug]: atlas loads, texture uploads and cache evictions.
//  - [slog.LevelWarn]: non-fatal configuration issues (e.g. cache capacity clamping).
//
// Example:
//   btxt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//       Level: slog.LevelDebug,
//   })))
func SetLogger(logger *slog.Logger) {
	internal.SetLogger(logger)
}

// Returns the logger currently used by btxt. Safe for concurrent use.
func Logger() *slog.Logger {
	return internal.Logger()
}
