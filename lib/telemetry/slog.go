package telemetry

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitSlog installs a console handler as the default logger. Logs go to
// stderr so stdout stays clean for command output.
func InitSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		AddSource:  verbose,
		TimeFormat: time.Kitchen,
	})))
}
