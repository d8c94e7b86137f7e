// Package slogbridge adapts a backend to log/slog.Handler, allowing
// code written against the standard library's structured logging to
// feed the same sinks as the category loggers. Attributes are
// flattened into the message text since the wire format carries
// plain strings.
package slogbridge
