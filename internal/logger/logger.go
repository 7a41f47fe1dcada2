package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	mux    sync.RWMutex
	global = New(level)
)

// New creates a console logger writing to stderr, a nil level enables info and above
func New(enabler zapcore.LevelEnabler) *zap.SugaredLogger {
	if enabler == nil {
		enabler = zapcore.InfoLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), enabler)
	return zap.New(core).Sugar()
}

// ParseLogLevel parses a zap level name in any case, info is returned with false for unknown names
func ParseLogLevel(name string) (zapcore.Level, bool) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || name == "" {
		return zapcore.InfoLevel, false
	}
	return parsed, true
}

// Level returns the level of the global logger
func Level() zapcore.Level {
	return level.Level()
}

// SetLevel changes the level of the global logger
func SetLevel(newLevel zapcore.Level) {
	level.SetLevel(newLevel)
}

// Logger returns the global logger
func Logger() *zap.SugaredLogger {
	mux.RLock()
	defer mux.RUnlock()
	return global
}

// SetLogger replaces the global logger
func SetLogger(logger *zap.SugaredLogger) {
	mux.Lock()
	defer mux.Unlock()
	global = logger
}

// ToContext attaches logger to ctx
func ToContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context logger or the global one
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && logger != nil {
			return logger
		}
	}
	return Logger()
}

// WithKV returns ctx with a logger carrying the key value pairs
func WithKV(ctx context.Context, keysAndValues ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(keysAndValues...))
}

func Debug(ctx context.Context, args ...any) { FromContext(ctx).Debug(args...) }
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}
func DebugKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Debugw(message, keysAndValues...)
}

func Info(ctx context.Context, args ...any) { FromContext(ctx).Info(args...) }
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}
func InfoKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Infow(message, keysAndValues...)
}

func Warn(ctx context.Context, args ...any) { FromContext(ctx).Warn(args...) }
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}
func WarnKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Warnw(message, keysAndValues...)
}

func Error(ctx context.Context, args ...any) { FromContext(ctx).Error(args...) }
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}
func ErrorKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Errorw(message, keysAndValues...)
}

// Fatalf logs and exits the process
func Fatalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Fatalf(format, args...)
}
