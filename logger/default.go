package logger

import (
	"sync"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/sink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Bootstrap the process-wide backend with a console sink so
	// logging works before any explicit wiring. backend.SetDefault
	// replaces it for the whole process; SetDefault here replaces
	// only the package-level logger.
	backend.SetDefault(sink.NewStream(sink.StreamConfig{
		Async:      true,
		BufferSize: 1000,
	}))

	defaultLogger = New(core.DefaultCategory)
}

// Default returns the package-level logger, bound to
// core.DefaultCategory unless SetDefault changed it.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger. A nil logger is
// ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Tracef emits a trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().Tracef(format, args...)
}

// Debugf emits a debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof emits an info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf emits a warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf emits an error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Logf emits a message at core.DefaultLevel using the default logger
func Logf(format string, args ...interface{}) {
	Default().Logf(format, args...)
}

// Log emits a message at an explicit level using the default logger
func Log(level core.Level, format string, args ...interface{}) {
	Default().Log(level, format, args...)
}

// Printf emits direct text at core.DefaultLevel using the default logger
func Printf(format string, args ...interface{}) {
	Default().Printf(format, args...)
}

// PrintfAt emits direct text at an explicit level using the default logger
func PrintfAt(level core.Level, format string, args ...interface{}) {
	Default().PrintfAt(level, format, args...)
}

// Print emits a plain string on the raw write path using the default logger
func Print(s string) {
	Default().Print(s)
}

// PrintAt emits a plain string at an explicit level using the default logger
func PrintAt(level core.Level, s string) {
	Default().PrintAt(level, s)
}

// Write emits a byte payload verbatim using the default logger
func Write(data []byte) {
	Default().Write(data)
}

// WriteAt emits a byte payload at an explicit level using the default logger
func WriteAt(level core.Level, data []byte) {
	Default().WriteAt(level, data)
}

// Dump hex-encodes and emits a byte payload using the default logger
func Dump(data []byte) {
	Default().Dump(data)
}

// DumpAt hex-encodes and emits a byte payload at an explicit level
// using the default logger
func DumpAt(level core.Level, data []byte) {
	Default().DumpAt(level, data)
}

// Enabled reports whether the default logger's category emits at the
// given level
func Enabled(level core.Level) bool {
	return Default().Enabled(level)
}
