package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the process-wide logger. Called once during startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger, creating a production
// logger on first use if none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLogger, err := zap.NewProduction()
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: defaultLogger}
	}
	return globalLogger
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// InfoCtx logs with the trace correlation of the New Relic transaction in ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	l := GetGlobalLogger()
	l.WithNewRelicContext(newrelic.FromContext(ctx)).Info(msg, fields...)
}

// ErrorCtx logs with the trace correlation of the New Relic transaction in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	l := GetGlobalLogger()
	l.WithNewRelicContext(newrelic.FromContext(ctx)).Error(msg, fields...)
}

// WarnCtx logs with the trace correlation of the New Relic transaction in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	l := GetGlobalLogger()
	l.WithNewRelicContext(newrelic.FromContext(ctx)).Warn(msg, fields...)
}
