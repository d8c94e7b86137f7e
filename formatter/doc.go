// Package formatter defines how emission records are serialized into
// bytes before a sink writes them.
//
// It exposes the Formatter interface, which returns a []byte, plus
// two optional capability interfaces sinks probe for at construction
// time: WriterFormatter writes directly to an io.Writer, and
// BufferFormatter renders into a caller-owned bytes.Buffer. The stream
// sink prefers WriterFormatter and the file sink prefers
// BufferFormatter, each eliminating the intermediate byte slice
// allocation on its write path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// all three. They use a pooled bytes.Buffer internally and rely
// on Go's Append-style functions (time.AppendFormat, strconv.AppendUint)
// to avoid per-call allocations. The TextFormatter additionally
// pre-computes level bracket strings (" [INFO] ", etc.) so that the
// most common path is a single WriteString call.
//
// The four record kinds render differently: message and printf carry
// their final text, dump carries the uppercase hex string produced by
// the facade, and write carries raw bytes (verbatim in text output,
// hex-encoded in JSON where raw bytes have no representation).
// Structured messages are the only kind that renders attribute flags,
// matching the contract that the direct printf path gets no automatic
// metadata.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
