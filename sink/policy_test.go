package sink

import (
	"testing"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

func TestOverflowPolicy_String(t *testing.T) {
	tests := []struct {
		policy OverflowPolicy
		want   string
	}{
		{DropNewest, "DropNewest"},
		{DropOldest, "DropOldest"},
		{Block, "Block"},
		{OverflowPolicy(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("OverflowPolicy(%d).String() = %v, want %v", tt.policy, got, tt.want)
		}
	}
}

func TestDefaultLevelPolicy(t *testing.T) {
	p := DefaultLevelPolicy()

	if p[core.ErrorLevel] != Block {
		t.Errorf("Expected Block for errors, got %v", p[core.ErrorLevel])
	}
	for _, level := range []core.Level{core.TraceLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel} {
		if p[level] != DropNewest {
			t.Errorf("Expected DropNewest for %v, got %v", level, p[level])
		}
	}
}

func TestStats_PerLevelCounters(t *testing.T) {
	s := NewStats()

	s.IncrementDropped(core.TraceLevel)
	s.IncrementDropped(core.InfoLevel)
	s.IncrementDropped(core.InfoLevel)
	s.IncrementDropped(core.ErrorLevel)
	s.IncrementDropped(core.OffLevel) // lands in the Other bucket

	if got := s.GetDropped(core.TraceLevel); got != 1 {
		t.Errorf("GetDropped(trace) = %d, want 1", got)
	}
	if got := s.GetDropped(core.InfoLevel); got != 2 {
		t.Errorf("GetDropped(info) = %d, want 2", got)
	}
	if got := s.GetDropped(core.OffLevel); got != 1 {
		t.Errorf("GetDropped(off) = %d, want 1", got)
	}
	if got := s.GetTotalDropped(); got != 5 {
		t.Errorf("GetTotalDropped() = %d, want 5", got)
	}
}

func TestStats_BlockedAndProcessed(t *testing.T) {
	s := NewStats()

	s.IncrementBlocked()
	s.IncrementProcessed()
	s.IncrementProcessed()
	s.IncrementWriteErrors()

	if got := s.GetBlocked(); got != 1 {
		t.Errorf("GetBlocked() = %d, want 1", got)
	}
	if got := s.GetProcessed(); got != 2 {
		t.Errorf("GetProcessed() = %d, want 2", got)
	}
	if got := s.GetWriteErrors(); got != 1 {
		t.Errorf("GetWriteErrors() = %d, want 1", got)
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementDropped(core.WarnLevel)
	s.IncrementBlocked()
	s.IncrementProcessed()

	s.Reset()

	if s.GetTotalDropped() != 0 || s.GetBlocked() != 0 || s.GetProcessed() != 0 {
		t.Error("Expected all counters zero after Reset")
	}
}

func TestStats_Snapshot(t *testing.T) {
	s := NewStats()
	s.IncrementDropped(core.DebugLevel)
	s.IncrementProcessed()

	snap := s.GetSnapshot()

	if snap.Dropped[core.DebugLevel] != 1 {
		t.Errorf("Snapshot dropped debug = %d, want 1", snap.Dropped[core.DebugLevel])
	}
	if snap.ProcessedTotal != 1 {
		t.Errorf("Snapshot processed = %d, want 1", snap.ProcessedTotal)
	}

	// Snapshot is a copy, not a view
	s.IncrementProcessed()
	if snap.ProcessedTotal != 1 {
		t.Error("Snapshot must not track later increments")
	}
}
