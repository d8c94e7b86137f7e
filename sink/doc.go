// Package sink provides the built-in backend.Backend implementations
// that actually record emissions.
//
// All sinks support both synchronous and asynchronous operation. In
// async mode, records are sent to a bounded channel and processed by a
// background goroutine, which keeps the caller's hot path fast even
// under slow I/O.
//
// When the async queue is full, each sink applies a per-level
// OverflowPolicy: DropNewest (default for Trace through Warn),
// DropOldest, or Block with a configurable timeout (default for
// Error). This ensures that low-priority output never stalls the
// application while errors are never silently dropped.
//
// Built-in sinks:
//
//   - Stream writes formatted records to any io.Writer (default:
//     stderr) with optional ANSI level coloring, auto-detected when
//     the writer is a terminal.
//   - File writes to a file with automatic rotation by size, age, or
//     interval, and manages old backup cleanup.
//   - Multi fans out a single emission to multiple child backends.
//
// Every sink owns a backend.LevelMap that answers the facade's
// enablement query, and tracks dropped, blocked, processed and write
// error counts via the Stats type, which can be queried at runtime
// for monitoring.
package sink
