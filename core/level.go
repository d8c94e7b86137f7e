package core

import "strings"

// Level represents the severity level of a log emission
type Level int8

const (
	// TraceLevel for very fine-grained diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// OffLevel disables all named levels when used as a category minimum
	OffLevel
)

// DefaultLevel is the level applied by every level-less logging call.
const DefaultLevel = InfoLevel

// DefaultCategory is the process-wide category used by loggers that
// were built without an explicit category name.
const DefaultCategory = "app"

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. The second return value
// reports whether the name was recognized; unrecognized names return
// DefaultLevel so lenient callers can ignore it.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "OFF", "NONE":
		return OffLevel, true
	default:
		return DefaultLevel, false
	}
}
