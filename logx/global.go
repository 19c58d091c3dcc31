package logx

import (
	"io"
	"os"
	"strings"
)

var defaultLogger *Logger

func init() {
	defaultLogger = New()
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	// LOG_COLOR=false and LOG_CALLER=false switch those features off
	if colorEnv := os.Getenv("LOG_COLOR"); colorEnv != "" {
		defaultLogger.SetColored(strings.ToLower(colorEnv) != "false")
	}
	if callerEnv := os.Getenv("LOG_CALLER"); callerEnv != "" {
		defaultLogger.SetShowCaller(strings.ToLower(callerEnv) != "false")
	}
}

// Configure applies a level and format given as strings. Empty values are
// left untouched and an invalid level is ignored.
func Configure(level, format string) {
	if level != "" {
		if lvl, err := ParseLevel(level); err == nil {
			defaultLogger.SetLevel(lvl)
		}
	}
	if format != "" {
		defaultLogger.SetFormat(ParseFormat(format))
	}
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetPrefix sets the global log prefix
func SetPrefix(prefix string) {
	defaultLogger.SetPrefix(prefix)
}

// SetOutput sets the global output destination
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// SetFormat sets the global log format
func SetFormat(format OutputFormat) {
	defaultLogger.SetFormat(format)
}

// GetLogger returns the default logger instance
func GetLogger() *Logger {
	return defaultLogger
}

// With returns a child of the default logger carrying key=value
func With(key string, value any) *Logger {
	return defaultLogger.With(key, value)
}

func Trace(msg string, args ...any) {
	defaultLogger.Trace(msg, args...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	defaultLogger.Fatal(msg, args...)
}

// IsLevelEnabled checks if a level is enabled globally
func IsLevelEnabled(level Level) bool {
	return defaultLogger.IsLevelEnabled(level)
}
