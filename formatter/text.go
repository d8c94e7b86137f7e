package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// TextFormatter formats emission records as human-readable text:
// timestamp, bracketed level, category, then the record body.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(rec, buf)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if int(rec.Level) >= 0 && int(rec.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Category
	buf.WriteString(rec.Category)
	buf.WriteString(": ")

	// Body: message, printf and dump carry text, write carries raw bytes
	if rec.Kind == core.KindWrite {
		buf.Write(rec.Data)
	} else {
		buf.WriteString(rec.Text)
	}

	// Structured messages render attribute flags; the direct printf
	// path carries no automatic metadata.
	if rec.Kind == core.KindMessage && rec.Attr.Flags != 0 {
		buf.WriteString(" flags=0x")
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(rec.Attr.Flags), 16))
	}

	buf.WriteByte('\n')
}
