// Package seqmux merges independently produced lazy sequences into a single
// consumable stream. It covers two jobs: wrapping one stream so that it can be
// externally cancelled, and fanning in any number of streams (optionally
// tagged with names) into one, with a choice of termination policy. All
// goroutine orchestration is hidden behind ordinary channels, so the result
// of every combinator is consumed like any other stream.
//
// # Streams and Try containers
//
// In this package, a stream is a channel of [Try] containers. A Try container
// is a simple struct that holds a value and an error. Producer failures
// travel in-stream as Try containers with a non-nil Error, delivered at the
// position where they occurred, so a failure inside a background goroutine is
// never silently lost. Use [FromChan], [FromSeq] or [FromSeq2] to turn plain
// channels and iterators into streams, and [Unwrap] or [ToSeq2] to consume
// them.
//
// # Cancellation
//
// [WithCancel] adapts a single stream so that it can be told to stop through
// a one-shot [Cancellation] event. The underlying producer is never
// interrupted: it keeps draining into an internal unbounded queue, and the
// wrapped stream simply stops delivering once the event has fired and the
// queue has been emptied. [WithContext] is the same contract driven by a
// [context.Context]. Cancellation latency is bounded but not instantaneous.
//
// # Multiplexing
//
// [Multiplex] and [MultiplexNamed] fan in several streams into one, spawning
// one goroutine per source plus one supervisor. Two termination policies are
// offered: stop as soon as any one source is exhausted, or drain every source
// in full. Items of a single source always keep their relative order; the
// interleaving across sources depends on goroutine scheduling and is
// unspecified, so consumers must not rely on it.
//
// # Buffering
//
// Internally all combinators use unbounded queues: a slow consumer never
// blocks the producers, at the price of unbounded memory growth. This is a
// deliberate trade-off of simplicity over backpressure. [Buffer] is available
// for the bounded case.
//
// # Abandoning a stream
//
// It is safe to stop reading a returned stream before it ends. To do so
// without leaking the goroutines feeding it, hand the stream to [DrainNB]:
//
//	out := seqmux.Multiplex(sources, false)
//	defer seqmux.DrainNB(out)
//
//	for x := range out {
//		if x.Error != nil {
//			return x.Error
//		}
//		// process x.Value
//	}
package seqmux
