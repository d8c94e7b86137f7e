package logger

import (
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	OffLevel   = core.OffLevel
)

// ParseLevel converts a string to a Level, falling back to
// core.DefaultLevel for unrecognized names.
func ParseLevel(s string) Level {
	level, _ := core.ParseLevel(s)
	return level
}
