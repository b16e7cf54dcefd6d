// Package logger sets up the application-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the process logger. Local runs get a human-readable console
// writer; anything else logs JSON for log shippers.
func New(env string) zerolog.Logger {
	if env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
}
