package adapters

import "strings"

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelNone  LogLevel = "NONE"
)

// ParseLogLevel converts a case-insensitive level name. Unknown names map to
// LogLevelWarn.
func ParseLogLevel(s string) LogLevel {
	switch l := LogLevel(strings.ToUpper(strings.TrimSpace(s))); l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelNone:
		return l
	}
	return LogLevelWarn
}

// LoggerAdapter is an interface for logging.
// Implement this interface to use custom loggers. Arguments after the
// message are alternating key/value pairs, which makes any hclog.Logger
// a valid LoggerAdapter.
type LoggerAdapter interface {
	// Debug logs a debug message
	Debug(msg string, args ...interface{})
	// Info logs an info message
	Info(msg string, args ...interface{})
	// Warn logs a warning message
	Warn(msg string, args ...interface{})
	// Error logs an error message
	Error(msg string, args ...interface{})
}
