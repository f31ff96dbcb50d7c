// Package log provides structured logging for geokrige solves.
//
// It defines a minimal, slog-compatible logging interface so the solver and
// estimators can emit structured records (variable names, variant, sample and
// location counts) without binding to one backend. The default setup routes
// through log/slog with a handler that extracts cockroachdb/errors stack
// traces; zerolog-aware error types marshal themselves when a zerolog backend
// is plugged in instead.
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog. Fields are alternating key/value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information, e.g. the resolved kriging
	// variant and shadowed configuration fields for a variable.
	Debug(msg string, fields ...any)

	// Info logs general operational information about the solve flow.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not abort the
	// solve, e.g. an ill-conditioned system that still produced a solution.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If an error value is attached via
	// ErrAttr, stack trace information is included by the handler.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on all
	// subsequent records.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive field construction for suppressed levels.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
