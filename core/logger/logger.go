// Package logger defines the logging contract used by the scheduling
// engine. Concrete adapters live in infra/logger.
package logger

// Logger exposes leveled logging. Engine components hold the interface
// so tests can swap in a no-op or capture implementation.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
