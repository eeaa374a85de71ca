package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var defaultLogger = New(false)

// New creates a console logger writing to stderr.
func New(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// SetDefault replaces the logger returned when the context carries none.
func SetDefault(l *zap.Logger) {
	defaultLogger = l
}

// Logger returns the logger attached to ctx, or the default logger.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return defaultLogger
}

// With returns a context whose logger carries the given key/value pairs.
func With(ctx context.Context, args ...interface{}) context.Context {
	l := Logger(ctx).Sugar().With(args...).Desugar()
	return context.WithValue(ctx, ctxKey{}, l)
}

// Fatal logs the message with the default logger and exits.
func Fatal(msg string, fields ...zap.Field) {
	defaultLogger.Fatal(msg, fields...)
}
