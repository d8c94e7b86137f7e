package backend

import (
	"sync"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// Emission is one captured backend call.
type Emission struct {
	Kind      core.Kind
	Level     core.Level
	Category  string
	Attr      core.Attributes
	Text      string
	Data      []byte
	DumpFlags core.DumpFlags
}

// Recorder is an in-memory Backend for tests. It answers Enabled from
// its own LevelMap, counts every enablement query, and captures every
// emission in order. Byte payloads are copied at capture time so
// callers may reuse their buffers.
type Recorder struct {
	mu           sync.Mutex
	levels       *LevelMap
	enabledCalls int
	emissions    []Emission
}

// NewRecorder returns a Recorder whose categories all start at the
// given minimum level.
func NewRecorder(level core.Level) *Recorder {
	return &Recorder{levels: NewLevelMap(level)}
}

// Levels exposes the recorder's policy store so tests can adjust
// per-category minimums.
func (r *Recorder) Levels() *LevelMap {
	return r.levels
}

// Enabled consults the recorder's LevelMap and counts the query.
func (r *Recorder) Enabled(level core.Level, category string) bool {
	r.mu.Lock()
	r.enabledCalls++
	r.mu.Unlock()
	return r.levels.Enabled(level, category)
}

// EmitMessage captures a structured message emission.
func (r *Recorder) EmitMessage(level core.Level, category string, attr core.Attributes, msg string) {
	r.capture(Emission{Kind: core.KindMessage, Level: level, Category: category, Attr: attr, Text: msg})
}

// EmitPrintf captures a direct text emission.
func (r *Recorder) EmitPrintf(level core.Level, category string, attr core.Attributes, text string) {
	r.capture(Emission{Kind: core.KindPrintf, Level: level, Category: category, Attr: attr, Text: text})
}

// EmitWrite captures a raw byte emission.
func (r *Recorder) EmitWrite(level core.Level, category string, attr core.Attributes, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	r.capture(Emission{Kind: core.KindWrite, Level: level, Category: category, Attr: attr, Data: cp})
}

// EmitDump captures a hex dump emission.
func (r *Recorder) EmitDump(level core.Level, category string, attr core.Attributes, hexed string, flags core.DumpFlags) {
	r.capture(Emission{Kind: core.KindDump, Level: level, Category: category, Attr: attr, Text: hexed, DumpFlags: flags})
}

func (r *Recorder) capture(e Emission) {
	r.mu.Lock()
	r.emissions = append(r.emissions, e)
	r.mu.Unlock()
}

// EnabledCalls returns how many times Enabled was queried.
func (r *Recorder) EnabledCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabledCalls
}

// Total returns the number of captured emissions across all kinds.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.emissions)
}

// Count returns the number of captured emissions of one kind.
func (r *Recorder) Count(kind core.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.emissions {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Emissions returns a copy of the captured emissions in order.
func (r *Recorder) Emissions() []Emission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Emission, len(r.emissions))
	copy(out, r.emissions)
	return out
}

// Last returns the most recent emission, if any.
func (r *Recorder) Last() (Emission, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.emissions) == 0 {
		return Emission{}, false
	}
	return r.emissions[len(r.emissions)-1], true
}

// Reset clears captured emissions and the enablement counter. The
// level map keeps its configuration.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabledCalls = 0
	r.emissions = nil
}
