package sink

import (
	"sync"
	"time"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// engine is the record pipeline shared by Stream and File. It owns the
// level policy, record construction, the async queue with per-level
// overflow handling, and the drain-on-close sequence. The owning sink
// supplies the write function.
type engine struct {
	levels       *backend.LevelMap
	async        bool
	queue        chan *core.Record
	wg           sync.WaitGroup
	closed       chan struct{}
	closeOnce    sync.Once
	overflow     map[core.Level]OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	stats        *Stats
	now          func() time.Time
	write        func(*core.Record) error
}

// engineConfig carries the normalized queue settings. Sink
// constructors apply their defaults before building the engine.
type engineConfig struct {
	levels       *backend.LevelMap
	async        bool
	bufferSize   int
	overflow     map[core.Level]OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	coarseClock  bool
}

func newEngine(cfg engineConfig, write func(*core.Record) error) *engine {
	e := &engine{
		levels:       cfg.levels,
		async:        cfg.async,
		closed:       make(chan struct{}),
		overflow:     cfg.overflow,
		blockTimeout: cfg.blockTimeout,
		drainTimeout: cfg.drainTimeout,
		stats:        NewStats(),
		now:          time.Now,
		write:        write,
	}
	if cfg.coarseClock {
		core.StartCoarseClock()
		e.now = core.CoarseNow
	}

	if e.async {
		e.queue = make(chan *core.Record, cfg.bufferSize)
		e.wg.Add(1)
		go e.process()
	}

	return e
}

// Enabled answers the facade's enablement query from the sink's level
// policy.
func (e *engine) Enabled(level core.Level, category string) bool {
	return e.levels.Enabled(level, category)
}

// Levels exposes the sink's policy store for runtime adjustment.
func (e *engine) Levels() *backend.LevelMap {
	return e.levels
}

// EmitMessage records a structured formatted message.
func (e *engine) EmitMessage(level core.Level, category string, attr core.Attributes, msg string) {
	rec := e.newRecord(level, category, attr, core.KindMessage)
	rec.Text = msg
	e.dispatch(rec)
}

// EmitPrintf records direct formatted text.
func (e *engine) EmitPrintf(level core.Level, category string, attr core.Attributes, text string) {
	rec := e.newRecord(level, category, attr, core.KindPrintf)
	rec.Text = text
	e.dispatch(rec)
}

// EmitWrite records a verbatim byte payload. The payload is copied;
// the caller keeps ownership of its buffer.
func (e *engine) EmitWrite(level core.Level, category string, attr core.Attributes, data []byte) {
	rec := e.newRecord(level, category, attr, core.KindWrite)
	rec.Data = append(rec.Data[:0], data...)
	e.dispatch(rec)
}

// EmitDump records a hex-encoded payload with its opaque flags.
func (e *engine) EmitDump(level core.Level, category string, attr core.Attributes, hexed string, flags core.DumpFlags) {
	rec := e.newRecord(level, category, attr, core.KindDump)
	rec.Text = hexed
	rec.DumpFlags = flags
	e.dispatch(rec)
}

func (e *engine) newRecord(level core.Level, category string, attr core.Attributes, kind core.Kind) *core.Record {
	rec := core.GetRecord()
	rec.Time = e.now()
	rec.Level = level
	rec.Category = category
	rec.Attr = attr
	rec.Kind = kind
	return rec
}

// dispatch hands a record to the writer, through the queue in async
// mode. The record is returned to the pool once written or dropped.
func (e *engine) dispatch(rec *core.Record) {
	if !e.async {
		e.writeOut(rec)
		return
	}

	// Get overflow policy for this level
	policy, ok := e.overflow[rec.Level]
	if !ok {
		policy = DropNewest // Default if not specified
	}

	switch policy {
	case Block:
		// Try to send with timeout
		select {
		case e.queue <- rec:
			return
		default:
		}
		timeout := time.NewTimer(e.blockTimeout)
		select {
		case e.queue <- rec:
			timeout.Stop()
		case <-timeout.C:
			// Timeout - fall back to synchronous write
			e.stats.IncrementBlocked()
			e.writeOut(rec)
		case <-e.closed:
			// Sink is closing, write synchronously
			timeout.Stop()
			e.writeOut(rec)
		}

	case DropOldest:
		// Try non-blocking send
		select {
		case e.queue <- rec:
			return
		default:
		}
		// Queue full - drop the oldest queued record
		select {
		case old := <-e.queue:
			e.stats.IncrementDropped(old.Level)
			core.PutRecord(old)
		default:
		}
		// Try again
		select {
		case e.queue <- rec:
		default:
			// Still full, drop this one
			e.stats.IncrementDropped(rec.Level)
			core.PutRecord(rec)
		}

	case DropNewest:
		fallthrough
	default:
		// Non-blocking send
		select {
		case e.queue <- rec:
		default:
			// Queue full - drop this record
			e.stats.IncrementDropped(rec.Level)
			core.PutRecord(rec)
		}
	}
}

// writeOut writes one record, updates counters, and recycles it. A
// failed write counts but never stops the pipeline.
func (e *engine) writeOut(rec *core.Record) {
	if err := e.write(rec); err != nil {
		e.stats.IncrementWriteErrors()
	} else {
		e.stats.IncrementProcessed()
	}
	core.PutRecord(rec)
}

// process handles async record processing
func (e *engine) process() {
	defer e.wg.Done()

	for {
		select {
		case rec := <-e.queue:
			e.writeOut(rec)
		case <-e.closed:
			// Drain remaining records with timeout
			deadline := time.After(e.drainTimeout)
		drainLoop:
			for {
				select {
				case rec := <-e.queue:
					e.writeOut(rec)
				case <-deadline:
					// Timeout reached, stop draining
					break drainLoop
				default:
					// Queue empty
					break drainLoop
				}
			}
			return
		}
	}
}

// Stats returns a snapshot of the current statistics
func (e *engine) Stats() Snapshot {
	return e.stats.GetSnapshot()
}

// close stops the async processor after draining pending records. Safe
// to call more than once; the queue channel itself is never closed so
// a straggling emission can never panic the process.
func (e *engine) close() {
	e.closeOnce.Do(func() {
		close(e.closed)
		if e.async {
			e.wg.Wait()
		}
	})
}
