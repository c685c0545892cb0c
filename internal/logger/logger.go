// SPDX-License-Identifier: Apache-2.0

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the crunchdao client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// library to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the library's default *Logger for the given role
// label (e.g. "client").
//
// The logger writes JSON to os.Stderr at Warn level, so a library consumer
// that never configures logging still sees upload rejections and other
// actionable warnings, and nothing else. The level is set on the instance
// rather than globally to avoid interfering with the host application's own
// zerolog usage.
func NewLogger(role string) *Logger {
	logger := zerolog.New(os.Stderr).
		Level(zerolog.WarnLevel).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// From wraps a caller-supplied zerolog.Logger, letting the host application
// route the library's log events through its own logging setup.
func From(l zerolog.Logger) *Logger {
	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
