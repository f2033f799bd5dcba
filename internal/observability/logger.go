package observability

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "info"

type contextKey string

const loggerContextKey contextKey = "github.com/mpodlasin/mpodlasin-website/internal/observability/logger"

var noopLogger = zap.NewNop()

// NewLogger constructs a zap logger emitting structured JSON at the given level.
// Unknown or empty levels fall back to info.
func NewLogger(level string) (*zap.Logger, error) {
	atomic := zap.NewAtomicLevel()
	if err := atomic.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || strings.TrimSpace(level) == "" {
		_ = atomic.UnmarshalText([]byte(defaultLogLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeDuration: zapcore.MillisDurationEncoder,
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		StacktraceKey:  "stacktrace",
	}

	cfg := zap.Config{
		Level:             atomic,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	return cfg.Build()
}

// WithLogger stores the logger in context for downstream consumers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext retrieves the logger from context or returns a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return noopLogger
}

// NoopLogger exposes the shared no-op logger.
func NoopLogger() *zap.Logger { return noopLogger }
