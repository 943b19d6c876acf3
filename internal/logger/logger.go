// Package logger provides the zerolog logger used for diagnostics on stderr.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Init creates a console zerolog.Logger writing to stderr at the given level.
// Supported levels: debug, info, warn, error. Defaults to warn so the banner
// on stdout stays the only visible output.
func Init(level string) zerolog.Logger {
	return New(os.Stderr, level)
}

// New is Init with an explicit writer.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(
		zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		},
	).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a config string to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
