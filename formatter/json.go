package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// JSONFormatter formats emission records as single-line JSON objects.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	f.formatJSONToBuffer(rec, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('{')

	// Time field
	buf.WriteString(`"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')

	// Level field
	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level.String())
	buf.WriteByte('"')

	// Category field
	buf.WriteString(`,"category":"`)
	appendJSONString(buf, rec.Category)
	buf.WriteByte('"')

	// Kind field
	buf.WriteString(`,"kind":"`)
	buf.WriteString(rec.Kind.String())
	buf.WriteByte('"')

	// Body: raw write payloads have no JSON representation, so they
	// are hex-encoded; everything else is already text.
	if rec.Kind == core.KindWrite {
		buf.WriteString(`,"data":"`)
		buf.Write(core.AppendHex(buf.AvailableBuffer(), rec.Data))
		buf.WriteByte('"')
	} else {
		buf.WriteString(`,"msg":"`)
		appendJSONString(buf, rec.Text)
		buf.WriteByte('"')
	}

	// Attribute flags only appear on structured messages
	if rec.Kind == core.KindMessage && rec.Attr.Flags != 0 {
		buf.WriteString(`,"flags":`)
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(rec.Attr.Flags), 10))
	}

	// Dump flags are opaque pass-through, rendered only when set
	if rec.Kind == core.KindDump && rec.DumpFlags != 0 {
		buf.WriteString(`,"dump_flags":`)
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(rec.DumpFlags), 10))
	}

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(jsonHexChars[c>>4])
			buf.WriteByte(jsonHexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var jsonHexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
