package menu

import (
	"log/slog"
	"os"
)

// menuLogLevel controls the log level for menu debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var menuLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for menu components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		menuLogLevel.Set(slog.LevelDebug)
	} else {
		menuLogLevel.Set(slog.LevelInfo)
	}
}

// menuLogger is the package logger, used for navigation debugging and for
// warnings on contradictory widget transforms.
var menuLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: menuLogLevel}))
