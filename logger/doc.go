// Package logger provides the category-bound logging handle.
//
// A Logger is a lightweight immutable value bound to one category name
// at construction. It owns no I/O and no buffering; every call funnels
// into a backend.Backend, which answers the enablement query and
// receives the finished emission. A Logger built with New resolves the
// process-wide default backend on every call, so rewiring the process
// sink retargets existing handles. NewWithBackend pins a specific
// backend instead, which is how tests inject a backend.Recorder.
//
// Every emitting method checks enablement before doing any formatting,
// encoding or allocation. A call at a disabled level returns
// immediately with no observable side effect. Emitting methods return
// nothing: a nil payload to Write or Dump is a silent no-op, malformed
// format arguments are a caller bug surfaced by go vet, and transport
// failures belong to the backend.
//
// Four emission paths exist. Tracef through Errorf, Logf and Log form
// the structured message path. Printf and PrintfAt form the direct
// text path, which backends may route without the metadata structured
// messages get. Write, WriteAt, Print and PrintAt carry verbatim
// bytes. Dump and DumpAt hex-encode their payload into uppercase
// digit pairs before dispatch.
//
// Loggers must not be copied; go vet's copylocks check enforces this.
// Hold and share a *Logger instead.
package logger
