package moment

import (
	"log/slog"
	"sync/atomic"
)

const (
	logKeyLocale = "locale"
	logKeyLayout = "layout"
	logKeyInput  = "input"
	logKeyScore  = "score"
	logKeyPath   = "path"
)

var packageLogger atomic.Pointer[slog.Logger]

func init() {
	packageLogger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger replaces the package logger. A nil logger discards records.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	packageLogger.Store(logger)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return packageLogger.Load()
}
