package slogbridge

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

func TestHandler_EnabledDelegatesToBackend(t *testing.T) {
	rec := backend.NewRecorder(core.InfoLevel)
	rec.Levels().SetCategory("net", core.WarnLevel)

	h := NewHandler(rec, "net")
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Expected info disabled for category at warn minimum")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("Expected warn enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("Expected error enabled")
	}
}

func TestHandler_EmitsMessage(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, "net"))

	log.Info("connected", "addr", "10.0.0.7", "port", 8080)

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if e.Kind != core.KindMessage {
		t.Errorf("Kind = %v, want message", e.Kind)
	}
	if e.Level != core.InfoLevel {
		t.Errorf("Level = %v, want %v", e.Level, core.InfoLevel)
	}
	if e.Category != "net" {
		t.Errorf("Category = %q, want %q", e.Category, "net")
	}
	if want := "connected addr=10.0.0.7 port=8080"; e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
	if e.Attr.Version != core.AttributesVersion {
		t.Errorf("Attribute version = %d, want %d", e.Attr.Version, core.AttributesVersion)
	}
}

func TestHandler_DisabledLevelSkipsBackendEmit(t *testing.T) {
	rec := backend.NewRecorder(core.WarnLevel)
	log := slog.New(NewHandler(rec, "app"))

	log.Debug("invisible")
	log.Info("also invisible")

	if got := rec.Total(); got != 0 {
		t.Errorf("Expected zero emissions below warn, got %d", got)
	}
}

func TestHandler_LevelMapping(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{LevelTrace, core.TraceLevel},
		{slog.LevelDebug - 5, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelDebug + 1, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelWarn + 2, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogLevel(tt.in); got != tt.want {
			t.Errorf("slogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	base := NewHandler(rec, "app")
	log := slog.New(base.WithAttrs([]slog.Attr{slog.String("service", "ingest")}))

	log.Info("started", "workers", 4)

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if want := "started service=ingest workers=4"; e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, "app")).WithGroup("req").WithGroup("hdr")

	log.Info("seen", "host", "example.com")

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if want := "seen req.hdr.host=example.com"; e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
}

func TestHandler_GroupValueFlattens(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, "app"))

	log.Info("request",
		slog.Group("peer",
			slog.String("ip", "10.1.1.1"),
			slog.Int("port", 443),
		),
	)

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if want := "request peer.ip=10.1.1.1 peer.port=443"; e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
}

func TestHandler_EmptyGroupDropped(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, "app"))

	log.Info("bare", slog.Group("empty"))

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if e.Text != "bare" {
		t.Errorf("Text = %q, want %q", e.Text, "bare")
	}
}

func TestHandler_DefaultCategory(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, ""))

	log.Info("hello")

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if e.Category != core.DefaultCategory {
		t.Errorf("Category = %q, want default %q", e.Category, core.DefaultCategory)
	}
}

func TestHandler_NilBackendFollowsDefault(t *testing.T) {
	old := backend.Default()
	defer backend.SetDefault(old)

	rec := backend.NewRecorder(core.TraceLevel)
	backend.SetDefault(rec)

	log := slog.New(NewHandler(nil, "app"))
	log.Warn("routed")

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission through the process default")
	}
	if e.Level != core.WarnLevel {
		t.Errorf("Level = %v, want %v", e.Level, core.WarnLevel)
	}
}

func TestHandler_LogValuerResolved(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, "app"))

	log.Info("token", "secret", deferredValue{})

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if want := "token secret=resolved"; e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
}

type deferredValue struct{}

func (deferredValue) LogValue() slog.Value { return slog.StringValue("resolved") }

func TestHandler_DurationAndTimeRender(t *testing.T) {
	rec := backend.NewRecorder(core.TraceLevel)
	log := slog.New(NewHandler(rec, "app"))

	log.Info("timing", "elapsed", 1500*time.Millisecond)

	e, ok := rec.Last()
	if !ok {
		t.Fatal("Expected an emission")
	}
	if want := "timing elapsed=1.5s"; e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
}
