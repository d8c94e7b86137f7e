package core

import (
	"testing"
	"time"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMessage, "message"},
		{KindPrintf, "printf"},
		{KindWrite, "write"},
		{KindDump, "dump"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestGetRecord_Fresh(t *testing.T) {
	r := GetRecord()
	if r == nil {
		t.Fatal("GetRecord returned nil")
	}
	if r.Text != "" || r.Category != "" || len(r.Data) != 0 {
		t.Errorf("Expected clean record, got text=%q category=%q data=%v", r.Text, r.Category, r.Data)
	}
	PutRecord(r)
}

func TestPutRecord_Clears(t *testing.T) {
	r := GetRecord()
	r.Time = time.Now()
	r.Level = ErrorLevel
	r.Category = "net"
	r.Attr = NewAttributes()
	r.Kind = KindDump
	r.Text = "DEADBEEF"
	r.Data = append(r.Data, 0xDE, 0xAD, 0xBE, 0xEF)
	r.DumpFlags = DumpFlags(7)
	PutRecord(r)

	r2 := GetRecord()
	if r2.Text != "" {
		t.Errorf("Expected cleared text, got: %s", r2.Text)
	}
	if r2.Category != "" {
		t.Errorf("Expected cleared category, got: %s", r2.Category)
	}
	if len(r2.Data) != 0 {
		t.Errorf("Expected cleared data, got %d bytes", len(r2.Data))
	}
	if r2.DumpFlags != 0 {
		t.Errorf("Expected cleared dump flags, got: %d", r2.DumpFlags)
	}
	if r2.Level != 0 {
		t.Errorf("Expected cleared level, got: %v", r2.Level)
	}
	PutRecord(r2)
}

func TestPutRecord_Nil(t *testing.T) {
	PutRecord(nil)
}

func TestPutRecord_OversizedDataDropped(t *testing.T) {
	r := GetRecord()
	r.Data = make([]byte, 0, 4096)
	PutRecord(r)

	r2 := GetRecord()
	if cap(r2.Data) > 256 {
		t.Errorf("Expected oversized data buffer to be dropped, got cap %d", cap(r2.Data))
	}
	PutRecord(r2)
}

func TestRecordPool_Reuse(t *testing.T) {
	r := GetRecord()
	PutRecord(r)
	// Not guaranteed by sync.Pool, but must never corrupt state.
	r2 := GetRecord()
	if r2.Text != "" || r2.Kind != 0 {
		t.Errorf("Reused record not clean: text=%q kind=%v", r2.Text, r2.Kind)
	}
	PutRecord(r2)
}

func BenchmarkRecordPool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := GetRecord()
		r.Level = InfoLevel
		r.Category = "bench"
		r.Text = "pooled"
		PutRecord(r)
	}
}
