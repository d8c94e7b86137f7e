package sink

import (
	"go.uber.org/multierr"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// Multi fans out emissions to multiple child backends. Enablement is
// the union of the children: a level is enabled when any child enables
// it, and each emission is forwarded only to the children whose own
// policy admits it, so a child never records below its threshold.
type Multi struct {
	backends []backend.Backend
}

var _ backend.Backend = (*Multi)(nil)

// NewMulti creates a fan-out backend over the given children.
func NewMulti(backends ...backend.Backend) *Multi {
	return &Multi{backends: backends}
}

// Enabled reports whether any child emits at the given level.
func (m *Multi) Enabled(level core.Level, category string) bool {
	for _, b := range m.backends {
		if b.Enabled(level, category) {
			return true
		}
	}
	return false
}

// EmitMessage forwards a structured message to every willing child.
func (m *Multi) EmitMessage(level core.Level, category string, attr core.Attributes, msg string) {
	for _, b := range m.backends {
		if b.Enabled(level, category) {
			b.EmitMessage(level, category, attr, msg)
		}
	}
}

// EmitPrintf forwards direct text to every willing child.
func (m *Multi) EmitPrintf(level core.Level, category string, attr core.Attributes, text string) {
	for _, b := range m.backends {
		if b.Enabled(level, category) {
			b.EmitPrintf(level, category, attr, text)
		}
	}
}

// EmitWrite forwards a raw payload to every willing child.
func (m *Multi) EmitWrite(level core.Level, category string, attr core.Attributes, data []byte) {
	for _, b := range m.backends {
		if b.Enabled(level, category) {
			b.EmitWrite(level, category, attr, data)
		}
	}
}

// EmitDump forwards a hex dump to every willing child.
func (m *Multi) EmitDump(level core.Level, category string, attr core.Attributes, hexed string, flags core.DumpFlags) {
	for _, b := range m.backends {
		if b.Enabled(level, category) {
			b.EmitDump(level, category, attr, hexed, flags)
		}
	}
}

// Close closes every child that owns resources, combining their
// errors.
func (m *Multi) Close() error {
	var err error
	for _, b := range m.backends {
		if c, ok := b.(backend.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
