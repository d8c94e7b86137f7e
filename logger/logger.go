package logger

import (
	"fmt"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// noCopy flags Logger values for go vet's copylocks check. A copied
// Logger could silently be reseated to the wrong category.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Logger is a category-bound logging handle (immutable)
type Logger struct {
	noCopy  noCopy
	name    string
	backend backend.Backend
}

// New creates a Logger bound to the given category name, emitting
// through the process-wide default backend. An empty name binds the
// logger to core.DefaultCategory.
func New(name string) *Logger {
	if name == "" {
		name = core.DefaultCategory
	}
	return &Logger{name: name}
}

// NewWithBackend creates a Logger bound to the given category that
// emits through b instead of the process default. A nil b falls back
// to the default backend.
func NewWithBackend(b backend.Backend, name string) *Logger {
	if name == "" {
		name = core.DefaultCategory
	}
	return &Logger{name: name, backend: b}
}

// target resolves the backend for this call. Handles without a pinned
// backend follow the process default so they retarget when the process
// rewires its sink.
func (l *Logger) target() backend.Backend {
	if l.backend != nil {
		return l.backend
	}
	return backend.Default()
}

// Name returns the category name bound at construction.
func (l *Logger) Name() string {
	return l.name
}

// Enabled reports whether this logger's category emits at the given
// level.
func (l *Logger) Enabled(level core.Level) bool {
	return l.target().Enabled(level, l.name)
}

// TraceEnabled reports whether trace messages would be emitted.
func (l *Logger) TraceEnabled() bool { return l.Enabled(core.TraceLevel) }

// DebugEnabled reports whether debug messages would be emitted.
func (l *Logger) DebugEnabled() bool { return l.Enabled(core.DebugLevel) }

// InfoEnabled reports whether info messages would be emitted.
func (l *Logger) InfoEnabled() bool { return l.Enabled(core.InfoLevel) }

// WarnEnabled reports whether warning messages would be emitted.
func (l *Logger) WarnEnabled() bool { return l.Enabled(core.WarnLevel) }

// ErrorEnabled reports whether error messages would be emitted.
func (l *Logger) ErrorEnabled() bool { return l.Enabled(core.ErrorLevel) }

// Tracef emits a trace message on the structured path
func (l *Logger) Tracef(format string, args ...interface{}) {
	// Enablement check before any formatting work
	b := l.target()
	if !b.Enabled(core.TraceLevel, l.name) {
		return
	}
	b.EmitMessage(core.TraceLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Debugf emits a debug message on the structured path
func (l *Logger) Debugf(format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(core.DebugLevel, l.name) {
		return
	}
	b.EmitMessage(core.DebugLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Infof emits an info message on the structured path
func (l *Logger) Infof(format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(core.InfoLevel, l.name) {
		return
	}
	b.EmitMessage(core.InfoLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Warnf emits a warning message on the structured path
func (l *Logger) Warnf(format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(core.WarnLevel, l.name) {
		return
	}
	b.EmitMessage(core.WarnLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Errorf emits an error message on the structured path
func (l *Logger) Errorf(format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(core.ErrorLevel, l.name) {
		return
	}
	b.EmitMessage(core.ErrorLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Logf emits a message on the structured path at core.DefaultLevel.
func (l *Logger) Logf(format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(core.DefaultLevel, l.name) {
		return
	}
	b.EmitMessage(core.DefaultLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Log emits a message on the structured path at an explicit level.
func (l *Logger) Log(level core.Level, format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(level, l.name) {
		return
	}
	b.EmitMessage(level, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Printf emits formatted text on the direct path at core.DefaultLevel.
// The direct path bypasses the structured message path; backends may
// treat the two differently.
func (l *Logger) Printf(format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(core.DefaultLevel, l.name) {
		return
	}
	b.EmitPrintf(core.DefaultLevel, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// PrintfAt emits formatted text on the direct path at an explicit
// level.
func (l *Logger) PrintfAt(level core.Level, format string, args ...interface{}) {
	b := l.target()
	if !b.Enabled(level, l.name) {
		return
	}
	b.EmitPrintf(level, l.name, core.NewAttributes(), fmt.Sprintf(format, args...))
}

// Print emits a plain string on the raw write path at
// core.DefaultLevel.
func (l *Logger) Print(s string) {
	l.PrintAt(core.DefaultLevel, s)
}

// PrintAt emits a plain string on the raw write path at an explicit
// level. The byte conversion happens only after the enablement check.
func (l *Logger) PrintAt(level core.Level, s string) {
	b := l.target()
	if !b.Enabled(level, l.name) {
		return
	}
	b.EmitWrite(level, l.name, core.NewAttributes(), []byte(s))
}

// Write emits a byte payload verbatim at core.DefaultLevel. A nil
// payload is a silent no-op; an empty non-nil payload is emitted.
func (l *Logger) Write(data []byte) {
	l.WriteAt(core.DefaultLevel, data)
}

// WriteAt emits a byte payload verbatim at an explicit level. A nil
// payload is a silent no-op before the backend is consulted at all.
func (l *Logger) WriteAt(level core.Level, data []byte) {
	if data == nil {
		return
	}
	b := l.target()
	if !b.Enabled(level, l.name) {
		return
	}
	b.EmitWrite(level, l.name, core.NewAttributes(), data)
}

// Dump hex-encodes a byte payload and emits it at core.DefaultLevel.
// A nil payload is a silent no-op; an empty non-nil payload emits an
// empty string.
func (l *Logger) Dump(data []byte) {
	l.DumpAt(core.DefaultLevel, data)
}

// DumpAt hex-encodes a byte payload and emits it at an explicit
// level. Each byte becomes exactly two uppercase hex digits with no
// separators, in input order. Encoding happens only after the
// enablement check passes.
func (l *Logger) DumpAt(level core.Level, data []byte) {
	if data == nil {
		return
	}
	b := l.target()
	if !b.Enabled(level, l.name) {
		return
	}
	b.EmitDump(level, l.name, core.NewAttributes(), core.HexString(data), core.DumpFlags(0))
}
