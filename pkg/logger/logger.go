package logger

import (
	"go.uber.org/zap"
)

// Logger keeps the printf-style API used across the services while writing
// structured JSON through zap.
type Logger struct {
	sugar *zap.SugaredLogger
}

func New() *Logger {
	base, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}
	return FromZap(base)
}

// FromZap wraps an existing zap logger, e.g. zaptest or zap.NewNop in tests.
func FromZap(base *zap.Logger) *Logger {
	return &Logger{sugar: base.Sugar()}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With returns a child logger carrying the given key/value pairs on every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
