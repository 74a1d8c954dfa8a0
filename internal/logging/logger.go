package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PINVIEW_LOG_LEVEL"

// LogFileEnvVar names the file logs are written to. The terminal belongs to
// the pin panel while it runs, so stderr is only the fallback.
const LogFileEnvVar = "PINVIEW_LOG_FILE"

// InitializeWithOutput creates a new logger with the specified level and
// output path. Empty values fall back to PINVIEW_LOG_LEVEL and
// PINVIEW_LOG_FILE. If no level is set anywhere, logging is disabled.
func InitializeWithOutput(level string, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = "stderr"
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names give info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks into the TUI
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogVerify logs a verify activation. The code itself is only attached at
// debug level.
func LogVerify(panelID string, code string) {
	fields := []zap.Field{
		zap.String("panel_id", panelID),
		zap.Int("length", len(code)),
	}
	if GetLogger().Core().Enabled(zapcore.DebugLevel) {
		fields = append(fields, zap.String("code", maskedCode(code)))
	}
	Info("Pin verified", fields...)
}

// LogFocus logs a focus transition
func LogFocus(panelID string, from string, to string) {
	Debug("Focus changed",
		zap.String("panel_id", panelID),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogRejectedInput logs a keystroke edit that normalized to empty
func LogRejectedInput(panelID string, index int, candidateLength int) {
	Debug("Input rejected",
		zap.String("panel_id", panelID),
		zap.Int("index", index),
		zap.Int("candidate_length", candidateLength),
	)
}

// maskedCode joins the digits with dashes, the format the default verify
// stub has always printed
func maskedCode(code string) string {
	return strings.Join(strings.Split(code, ""), "-")
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
