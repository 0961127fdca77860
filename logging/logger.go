// logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName      = "stylino-storefront"
	logFileName      = "storefront.log"
	errorLogFileName = "storefront_error.log"
	levelEnvVar      = "LOG_LEVEL"
)

// Log discards everything until InitLogger replaces it, so packages and
// tests can log before (or without) startup wiring.
var Log = zap.NewNop()

// InitLogger writes JSON logs to stdout and to storefront.log under
// logDirPath; errors from zap itself go to storefront_error.log.
func InitLogger(logDirPath string) {
	if err := os.MkdirAll(logDirPath, 0o755); err != nil {
		panic(err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(levelFromEnv(zapcore.InfoLevel))
	cfg.OutputPaths = []string{"stdout", filepath.Join(logDirPath, logFileName)}
	cfg.ErrorOutputPaths = []string{"stderr", filepath.Join(logDirPath, errorLogFileName)}
	cfg.InitialFields = map[string]any{"service": serviceName}

	enc := &cfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.CallerKey = "caller"
	enc.StacktraceKey = "stacktrace"

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	Log = built
	zap.ReplaceGlobals(Log)
}

// levelFromEnv reads LOG_LEVEL; unset or unparsable values keep fallback.
func levelFromEnv(fallback zapcore.Level) zapcore.Level {
	raw := os.Getenv(levelEnvVar)
	if raw == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return fallback
	}
	return level
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

// WithContext returns a child logger carrying fields, e.g. a request's
// user id, on every entry.
func WithContext(fields ...zap.Field) *zap.Logger {
	return Log.With(fields...)
}

func Sync() error {
	return Log.Sync()
}
