package core

import (
	"sync"
	"time"
)

// Kind identifies which emission primitive produced a Record.
type Kind uint8

const (
	// KindMessage is a structured formatted message
	KindMessage Kind = iota
	// KindPrintf is direct formatted text
	KindPrintf
	// KindWrite is a verbatim byte payload
	KindWrite
	// KindDump is hex-encoded text produced by the facade
	KindDump
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindPrintf:
		return "printf"
	case KindWrite:
		return "write"
	case KindDump:
		return "dump"
	default:
		return "unknown"
	}
}

// Record is a single emission as it moves through a reference backend.
// Text carries message, printf and dump payloads; Data carries write
// payloads. Exactly one of the two is populated per record.
type Record struct {
	Time      time.Time
	Level     Level
	Category  string
	Attr      Attributes
	Kind      Kind
	Text      string
	Data      []byte
	DumpFlags DumpFlags
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Data: make([]byte, 0, 64),
		}
	},
}

// GetRecord retrieves a Record from the pool. The caller stamps Time;
// sinks choose between time.Now and the coarse clock.
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Time = time.Time{}
	r.Level = 0
	r.Category = ""
	r.Attr = Attributes{}
	r.Kind = 0
	r.Text = ""
	r.DumpFlags = 0
	if cap(r.Data) > 256 {
		// Don't let one large payload pin a big backing array
		r.Data = make([]byte, 0, 64)
	} else {
		r.Data = r.Data[:0]
	}
	recordPool.Put(r)
}
