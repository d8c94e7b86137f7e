package benchmark

import (
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// noopBackend accepts everything and writes nowhere, isolating facade
// overhead from sink cost.
type noopBackend struct{}

func newNoopBackend() backend.Backend {
	return &noopBackend{}
}

func (noopBackend) Enabled(core.Level, string) bool {
	return true
}

func (noopBackend) EmitMessage(_ core.Level, _ string, _ core.Attributes, msg string) {
	_ = len(msg)
}

func (noopBackend) EmitPrintf(_ core.Level, _ string, _ core.Attributes, text string) {
	_ = len(text)
}

func (noopBackend) EmitWrite(_ core.Level, _ string, _ core.Attributes, data []byte) {
	_ = len(data)
}

func (noopBackend) EmitDump(_ core.Level, _ string, _ core.Attributes, hexed string, _ core.DumpFlags) {
	_ = len(hexed)
}
