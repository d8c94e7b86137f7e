package zapbackend

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// TraceLevel is how trace emissions surface in zap, which has no
// trace constant of its own. Encoders render it as "Level(-2)" unless
// taught otherwise.
const TraceLevel = zapcore.DebugLevel - 1

var _ backend.Backend = (*Backend)(nil)
var _ backend.Closer = (*Backend)(nil)

// Backend adapts a zap logger to the emission interface. Enablement is
// answered by the level map first and the zap core second, so
// per-category minimums work while zap's own configuration stays the
// floor.
type Backend struct {
	base   *zap.Logger
	levels *backend.LevelMap
}

// Config configures a zap-backed emission sink.
type Config struct {
	// Logger is the destination. Required.
	Logger *zap.Logger
	// Levels is the category policy store (default: a fresh map at
	// core.DefaultLevel).
	Levels *backend.LevelMap
}

// New wraps a zap logger. The logger must not be nil.
func New(cfg Config) (*Backend, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Levels == nil {
		cfg.Levels = backend.NewLevelMap(core.DefaultLevel)
	}
	return &Backend{
		base:   cfg.Logger,
		levels: cfg.Levels,
	}, nil
}

// Levels returns the category policy store for runtime adjustment.
func (b *Backend) Levels() *backend.LevelMap {
	return b.levels
}

// Enabled reports whether an emission at level for category would be
// kept.
func (b *Backend) Enabled(level core.Level, category string) bool {
	if !b.levels.Enabled(level, category) {
		return false
	}
	return b.base.Core().Enabled(zapLevel(level))
}

// EmitMessage logs formatted message text with the category attached
// as a field.
func (b *Backend) EmitMessage(level core.Level, category string, attr core.Attributes, msg string) {
	if ce := b.base.Check(zapLevel(level), msg); ce != nil {
		ce.Write(fields(category, attr)...)
	}
}

// EmitPrintf logs direct text. zap decorates every entry, so on this
// backend printf text differs from a message only by its kind field.
func (b *Backend) EmitPrintf(level core.Level, category string, attr core.Attributes, text string) {
	if ce := b.base.Check(zapLevel(level), text); ce != nil {
		ce.Write(append(fields(category, attr), zap.String("kind", core.KindPrintf.String()))...)
	}
}

// EmitWrite logs a verbatim byte payload as a binary field.
func (b *Backend) EmitWrite(level core.Level, category string, attr core.Attributes, data []byte) {
	if ce := b.base.Check(zapLevel(level), core.KindWrite.String()); ce != nil {
		ce.Write(append(fields(category, attr), zap.Binary("data", data))...)
	}
}

// EmitDump logs hex-encoded payload text, carrying the opaque dump
// flags when set.
func (b *Backend) EmitDump(level core.Level, category string, attr core.Attributes, hexed string, flags core.DumpFlags) {
	if ce := b.base.Check(zapLevel(level), core.KindDump.String()); ce != nil {
		fs := append(fields(category, attr), zap.String("data", hexed))
		if flags != 0 {
			fs = append(fs, zap.Uint32("dump_flags", uint32(flags)))
		}
		ce.Write(fs...)
	}
}

// Close flushes the underlying zap logger.
func (b *Backend) Close() error {
	return b.base.Sync()
}

func fields(category string, attr core.Attributes) []zap.Field {
	fs := make([]zap.Field, 0, 3)
	fs = append(fs, zap.String("category", category))
	if attr.Flags != 0 {
		fs = append(fs, zap.Uint32("flags", uint32(attr.Flags)))
	}
	return fs
}

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel:
		return TraceLevel
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InvalidLevel
	}
}
