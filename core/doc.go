// Package core defines the shared vocabulary of the logging facade.
//
// It provides the ordered Level type used for category filtering, the
// versioned Attributes record attached to every emission, the uppercase
// hex encoding used by the dump path, and the pooled Record type that
// reference backends move through their queues.
//
// Level ordering is Trace < Debug < Info < Warn < Error < Off. A level
// is enabled for a category when the category's effective minimum level
// is less than or equal to it, so Off silences a category entirely.
//
// Attributes begins with a layout version tag and a flag bitset. The
// version tag lets a backend that only understands an older layout keep
// processing records safely; flags it does not recognize must be passed
// through untouched.
//
// Record objects are pooled via sync.Pool so that asynchronous sinks
// stay allocation-free on the hot path. Callers get a Record with
// GetRecord and must return it with PutRecord once the sink has
// consumed it. Byte payloads above 256 bytes are not retained across
// reuse to keep pooled records small.
package core
