// Package logging provides the shared zap logger. Console output is tuned
// for an interactive CLI run, JSON for machine consumption.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Config selects the log level and output format.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console, json
}

// Init builds the global logger. An unknown level falls back to info. All
// output goes to stderr so stdout stays free for plan and summary output.
func Init(cfg Config) error {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level = zapcore.InfoLevel
		}
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.TimeKey = zapcore.OmitKey
		zc.EncoderConfig.CallerKey = zapcore.OmitKey
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	built, err := zc.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// L returns the global logger, initializing a default one when Init has not
// run yet.
func L() *zap.Logger {
	if logger == nil {
		_ = Init(Config{Level: "info", Format: "console"})
	}
	return logger
}

// Debug logs a message at debug level.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs a message at info level.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a message at warn level.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs a message at error level.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Sync flushes buffered log entries. Call before exit.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
