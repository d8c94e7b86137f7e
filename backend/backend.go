package backend

import (
	"sync"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// Backend is the contract between the logging facade and a sink. The
// facade calls Enabled before any formatting or encoding work and
// invokes exactly one emission method per logging call, with the
// payload fully prepared: EmitMessage and EmitPrintf receive final
// formatted text, EmitDump receives the finished uppercase hex string.
//
// Emission methods return nothing. Transport failures, buffering and
// truncation policy are backend concerns invisible to the caller.
type Backend interface {
	// Enabled reports whether the category emits at the given level.
	// It must be cheap; it runs on every logging call including the
	// ones that are filtered out.
	Enabled(level core.Level, category string) bool

	// EmitMessage records a structured formatted message.
	EmitMessage(level core.Level, category string, attr core.Attributes, msg string)

	// EmitPrintf records direct formatted text. Backends may route
	// this differently from EmitMessage, e.g. without the metadata a
	// structured entry gets.
	EmitPrintf(level core.Level, category string, attr core.Attributes, text string)

	// EmitWrite records a verbatim byte payload.
	EmitWrite(level core.Level, category string, attr core.Attributes, data []byte)

	// EmitDump records a hex-encoded payload. The flags word is
	// opaque to the facade and carried through unchanged.
	EmitDump(level core.Level, category string, attr core.Attributes, hexed string, flags core.DumpFlags)
}

// Closer is implemented by backends that own resources. It is separate
// from Backend because the facade never closes what it does not own.
type Closer interface {
	Close() error
}

var (
	defaultMu      sync.RWMutex
	defaultBackend Backend = Nop{}
)

// Default returns the process-wide backend used by loggers built
// without an explicit one. Until SetDefault is called it is a Nop;
// importing the logger package replaces it with a console sink.
func Default() Backend {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBackend
}

// SetDefault replaces the process-wide backend. Loggers that resolve
// the default pick up the new backend on their next call. A nil
// backend resets the default to Nop.
func SetDefault(b Backend) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if b == nil {
		defaultBackend = Nop{}
		return
	}
	defaultBackend = b
}
