package fancyscroll

import (
	"log/slog"
	"os"
)

// scrollLogLevel controls the log level for engine diagnostics.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var scrollLogLevel = new(slog.LevelVar)

// scrollLogger reports configuration diagnostics (clamped layout values,
// degenerate lists). Position-changed handling never logs.
var scrollLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: scrollLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		scrollLogLevel.Set(slog.LevelDebug)
	} else {
		scrollLogLevel.Set(slog.LevelInfo)
	}
}
