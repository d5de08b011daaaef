package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured logging field.
type Field = zap.Field

// Logger is the logging interface used across the application.
// Services and controllers receive it via dependency injection.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Config holds logger configuration.
type Config struct {
	Environment string // "development" or "production"
	LogPath     string // directory for log files (production only)
	Level       string // debug, info, warn, error
}

type zapLogger struct {
	l *zap.Logger
}

// NewLogger creates a zap-backed logger. Development uses a human-readable
// console encoder; production writes JSON to a rotating-friendly file path
// alongside stderr.
func NewLogger(cfg Config) (Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var cores []zapcore.Core

	if cfg.Environment == "production" {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(os.Stderr),
			level,
		))

		if cfg.LogPath != "" {
			if err := os.MkdirAll(cfg.LogPath, 0o755); err == nil {
				file, err := os.OpenFile(
					filepath.Join(cfg.LogPath, "app.log"),
					os.O_CREATE|os.O_APPEND|os.O_WRONLY,
					0o644,
				)
				if err == nil {
					cores = append(cores, zapcore.NewCore(
						zapcore.NewJSONEncoder(encoderCfg),
						zapcore.AddSync(file),
						level,
					))
				}
			}
		}
	} else {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	return &zapLogger{l: zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))}, nil
}

// NewNopLogger returns a logger that discards all output. Used in tests.
func NewNopLogger() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, fields...) }

// Field constructors mirror the zap API so call sites never import zap directly.

func String(key, value string) Field            { return zap.String(key, value) }
func Int(key string, value int) Field           { return zap.Int(key, value) }
func Uint(key string, value uint) Field         { return zap.Uint(key, value) }
func Float64(key string, value float64) Field   { return zap.Float64(key, value) }
func Bool(key string, value bool) Field         { return zap.Bool(key, value) }
func Duration(key string, d time.Duration) Field { return zap.Duration(key, d) }
func Any(key string, value any) Field           { return zap.Any(key, value) }
