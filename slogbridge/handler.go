package slogbridge

import (
	"context"
	"log/slog"
	"strings"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// LevelTrace is the slog level that maps to core.TraceLevel. slog has
// no trace constant of its own; anything below this still maps to
// trace as well.
const LevelTrace = slog.LevelDebug - 4

var _ slog.Handler = (*Handler)(nil)

// Handler implements slog.Handler on top of a backend. The category is
// fixed at construction; enablement is delegated to the backend so
// per-category minimums keep working for slog call sites.
type Handler struct {
	backend  backend.Backend
	category string
	attrs    []string // preformatted key=value pairs from WithAttrs
	group    string
}

// NewHandler wraps a backend as a slog.Handler under the given
// category. A nil backend follows the process default; an empty
// category becomes core.DefaultCategory.
func NewHandler(b backend.Backend, category string) *Handler {
	if category == "" {
		category = core.DefaultCategory
	}
	return &Handler{
		backend:  b,
		category: category,
	}
}

func (h *Handler) target() backend.Backend {
	if h.backend != nil {
		return h.backend
	}
	return backend.Default()
}

// Enabled reports whether the backend would keep a record at this
// level for the handler's category.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.target().Enabled(slogLevel(level), h.category)
}

// Handle flattens the record into a single text line and emits it as
// a message. The record's own timestamp is dropped; sinks stamp their
// own.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	b := h.target()
	level := slogLevel(record.Level)
	if !b.Enabled(level, h.category) {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(record.Message)
	for _, pair := range h.attrs {
		sb.WriteByte(' ')
		sb.WriteString(pair)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	b.EmitMessage(level, h.category, core.NewAttributes(), sb.String())
	return nil
}

// WithAttrs returns a handler that prepends the given attributes to
// every record. Values are resolved and rendered once, up front.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	rendered := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(rendered, h.attrs)

	var sb strings.Builder
	for _, a := range attrs {
		sb.Reset()
		appendAttr(&sb, h.group, a)
		if sb.Len() > 0 {
			// appendAttr writes a leading space
			rendered = append(rendered, sb.String()[1:])
		}
	}
	return &Handler{
		backend:  h.backend,
		category: h.category,
		attrs:    rendered,
		group:    h.group,
	}
}

// WithGroup returns a handler that dot-prefixes subsequent attribute
// keys with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{
		backend:  h.backend,
		category: h.category,
		attrs:    h.attrs,
		group:    group,
	}
}

// slogLevel maps slog levels onto the five-level scale. Custom levels
// between the named constants round down.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes " key=value" to sb, flattening groups with a dot
// prefix. Empty attrs and empty-keyed groups follow the slog.Handler
// contract: the former are dropped, the latter inlined.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return
		}
		prefix := group
		if a.Key != "" {
			if prefix != "" {
				prefix = prefix + "." + a.Key
			} else {
				prefix = a.Key
			}
		}
		for _, member := range members {
			appendAttr(sb, prefix, member)
		}
		return
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	sb.WriteByte(' ')
	if group != "" {
		sb.WriteString(group)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
