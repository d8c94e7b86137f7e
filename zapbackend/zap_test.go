package zapbackend

import (
	"bytes"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/logger"
)

func newObserved(t *testing.T, enab zapcore.LevelEnabler, levels *backend.LevelMap) (*Backend, *observer.ObservedLogs) {
	t.Helper()
	zc, logs := observer.New(enab)
	b, err := New(Config{Logger: zap.New(zc), Levels: levels})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b, logs
}

func TestNew_RequiresLogger(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("Expected error for nil zap logger")
	}
}

func TestBackend_EnabledCombinesPolicies(t *testing.T) {
	levels := backend.NewLevelMap(core.TraceLevel)
	levels.SetCategory("net", core.WarnLevel)
	b, _ := newObserved(t, zapcore.DebugLevel, levels)

	// The level map says yes but the zap core floor is debug
	if b.Enabled(core.TraceLevel, "app") {
		t.Error("Expected trace disabled by the zap core floor")
	}
	if !b.Enabled(core.DebugLevel, "app") {
		t.Error("Expected debug enabled")
	}
	// The zap core says yes but the category minimum is warn
	if b.Enabled(core.InfoLevel, "net") {
		t.Error("Expected info disabled by the category minimum")
	}
	if !b.Enabled(core.ErrorLevel, "net") {
		t.Error("Expected error enabled")
	}
}

func TestBackend_EmitMessage(t *testing.T) {
	b, logs := newObserved(t, zapcore.DebugLevel, nil)

	b.EmitMessage(core.WarnLevel, "net", core.NewAttributes(), "x=5")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "x=5" {
		t.Errorf("Message = %q, want %q", e.Message, "x=5")
	}
	if e.Level != zapcore.WarnLevel {
		t.Errorf("Level = %v, want %v", e.Level, zapcore.WarnLevel)
	}
	ctx := e.ContextMap()
	if ctx["category"] != "net" {
		t.Errorf("category field = %v, want net", ctx["category"])
	}
	if _, present := ctx["flags"]; present {
		t.Error("Expected no flags field for zero attribute flags")
	}
}

func TestBackend_EmitPrintfCarriesKind(t *testing.T) {
	b, logs := newObserved(t, zapcore.DebugLevel, nil)

	b.EmitPrintf(core.InfoLevel, "app", core.NewAttributes(), "raw text")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "raw text" {
		t.Errorf("Message = %q, want %q", entries[0].Message, "raw text")
	}
	if kind := entries[0].ContextMap()["kind"]; kind != "printf" {
		t.Errorf("kind field = %v, want printf", kind)
	}
}

func TestBackend_EmitWriteBinaryField(t *testing.T) {
	b, logs := newObserved(t, zapcore.DebugLevel, nil)

	payload := []byte{0x00, 0xFF, 0x7E}
	b.EmitWrite(core.InfoLevel, "proto", core.NewAttributes(), payload)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	data, ok := entries[0].ContextMap()["data"].([]byte)
	if !ok {
		t.Fatalf("data field = %T, want []byte", entries[0].ContextMap()["data"])
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("data = %v, want %v", data, payload)
	}
}

func TestBackend_EmitDump(t *testing.T) {
	b, logs := newObserved(t, zapcore.DebugLevel, nil)

	b.EmitDump(core.ErrorLevel, "proto", core.NewAttributes(), "0AFF", 0)
	b.EmitDump(core.ErrorLevel, "proto", core.NewAttributes(), "0AFF", 3)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	first := entries[0].ContextMap()
	if first["data"] != "0AFF" {
		t.Errorf("data field = %v, want 0AFF", first["data"])
	}
	if _, present := first["dump_flags"]; present {
		t.Error("Expected no dump_flags field when flags are zero")
	}
	second := entries[1].ContextMap()
	if second["dump_flags"] != uint32(3) {
		t.Errorf("dump_flags field = %v, want 3", second["dump_flags"])
	}
}

func TestBackend_TraceMapsBelowDebug(t *testing.T) {
	levels := backend.NewLevelMap(core.TraceLevel)
	b, logs := newObserved(t, TraceLevel, levels)

	if !b.Enabled(core.TraceLevel, "app") {
		t.Fatal("Expected trace enabled with a trace-level zap core")
	}
	b.EmitMessage(core.TraceLevel, "app", core.NewAttributes(), "fine detail")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != TraceLevel {
		t.Errorf("Level = %v, want %v", entries[0].Level, TraceLevel)
	}
}

func TestBackend_FacadeRoundTrip(t *testing.T) {
	levels := backend.NewLevelMap(core.InfoLevel)
	b, logs := newObserved(t, zapcore.DebugLevel, levels)

	log := logger.NewWithBackend(b, "net")
	log.Debugf("filtered out")
	log.Warnf("x=%d", 5)
	log.Dump([]byte{0x0A, 0xFF})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "x=5" {
		t.Errorf("Message = %q, want %q", entries[0].Message, "x=5")
	}
	if entries[1].ContextMap()["data"] != "0AFF" {
		t.Errorf("dump data = %v, want 0AFF", entries[1].ContextMap()["data"])
	}
}

func TestBackend_Close(t *testing.T) {
	b, _ := newObserved(t, zapcore.DebugLevel, nil)
	if err := b.Close(); err != nil {
		t.Errorf("Close returned %v", err)
	}
}
