package popmenu

import (
	"log/slog"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
)

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func SetLogDir(dir string) {
	internal.SetLogDir(dir)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel controls the library's own logging, which defaults to warn.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

func CloseLogger() {
	internal.CloseLogger()
}
