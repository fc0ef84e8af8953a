package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides leveled logging tagged with the emitting component.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a logger at the given minimum level ("debug", "info", "warn",
// "error"); anything else falls back to info.
func New(level string) *Logger {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{sugar: z.Sugar()}
}

// Sync flushes buffered entries; call it on shutdown.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// Debug logs a debug message
func (l *Logger) Debug(component, message string, args ...interface{}) {
	l.sugar.With("component", component).Debugf(message, args...)
}

// Info logs an info message
func (l *Logger) Info(component, message string, args ...interface{}) {
	l.sugar.With("component", component).Infof(message, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(component, message string, args ...interface{}) {
	l.sugar.With("component", component).Warnf(message, args...)
}

// Error logs an error message
func (l *Logger) Error(component, message string, args ...interface{}) {
	l.sugar.With("component", component).Errorf(message, args...)
}

// Fatal logs an error message and exits
func (l *Logger) Fatal(component, message string, args ...interface{}) {
	l.sugar.With("component", component).Fatalf(message, args...)
}
