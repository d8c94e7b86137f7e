// Package backend defines the boundary between the logging facade and
// whatever actually records log output.
//
// The Backend interface exposes the five primitives every sink must
// provide: one enablement query and four emission paths (structured
// message, direct printf text, verbatim bytes, hex dump). All emission
// methods are fire-and-forget; a backend surfaces its own failures
// through its own channels, never back through the facade.
//
// LevelMap is the injected category-to-minimum-level policy store that
// reference backends consult from Enabled. Holding it as an explicit
// value rather than a hidden singleton keeps enablement deterministic
// under test.
//
// Default and SetDefault manage the process-wide backend used by
// loggers that were built without an explicit one. The zero default is
// Nop; importing the logger package installs a console stream sink in
// its place.
//
// Recorder is a deterministic in-memory Backend for tests: it counts
// enablement queries, captures every emission, and carries its own
// LevelMap.
package backend
