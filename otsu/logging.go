package otsu

import (
	"os"

	"github.com/rs/zerolog"
)

// Package logger. Silent unless a caller wires one in; set it once during
// startup, before any threshold computation runs.
var logger = zerolog.Nop()

// SetLogger routes the library's debug and warning events to l.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// ConsoleLogger returns a human-readable stdout logger at the given level,
// ready to pass to SetLogger.
func ConsoleLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
