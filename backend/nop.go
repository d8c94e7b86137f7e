package backend

import (
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// Nop is a Backend that reports every level disabled and discards any
// emission it is handed anyway. It is the zero process default and
// useful for measuring facade overhead in benchmarks.
type Nop struct{}

// Enabled always reports false.
func (Nop) Enabled(core.Level, string) bool { return false }

// EmitMessage discards the message.
func (Nop) EmitMessage(core.Level, string, core.Attributes, string) {}

// EmitPrintf discards the text.
func (Nop) EmitPrintf(core.Level, string, core.Attributes, string) {}

// EmitWrite discards the payload.
func (Nop) EmitWrite(core.Level, string, core.Attributes, []byte) {}

// EmitDump discards the dump.
func (Nop) EmitDump(core.Level, string, core.Attributes, string, core.DumpFlags) {}
