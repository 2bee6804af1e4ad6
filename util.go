package seqmux

import "github.com/seqmux/seqmux/internal/core"

// Drain consumes and discards all items from an input channel, blocking until
// the channel is closed.
func Drain[A any](in <-chan A) {
	core.Drain(in)
}

// DrainNB is a non-blocking version of [Drain]. It does the draining in a
// separate goroutine. This is the way to abandon a stream returned by one of
// the combinators without leaking the goroutines that feed it.
func DrainNB[A any](in <-chan A) {
	core.Discard(in)
}

// Buffer takes a channel of items and returns a buffered channel of the exact
// same items in the same order. Buffering allows up to n items to be held in
// memory before backpressure is applied to the upstream producer.
func Buffer[A any](in <-chan A, n int) <-chan A {
	return core.Buffer(in, n)
}
