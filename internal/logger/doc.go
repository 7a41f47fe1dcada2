// Package logger wraps a global zap sugared logger with an atomic level.
// Loggers can be attached to a context, the package level functions use the context logger when present.
package logger
