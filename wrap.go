package seqmux

import (
	"context"

	"github.com/seqmux/seqmux/internal/core"
)

// WithCancel wraps a single stream so that it can be externally told to stop
// through the cancel event.
//
// The returned stream yields every item of the input, in order. The input is
// drained by a background goroutine that never observes the event and is
// never blocked by the consumer: if the input is infinite and the event is
// never set, that goroutine runs for as long as the input does. Once the
// event has been set and all items produced up to that point have been
// delivered, the returned stream ends normally; ending this way is
// indistinguishable from the input closing on its own.
//
// Cancellation is cooperative and coarse-grained: the stream ends within a
// bounded delay after the event is set, not instantaneously.
func WithCancel[A any](in <-chan Try[A], cancel *Cancellation) <-chan Try[A] {
	if in == nil {
		return nil
	}
	return core.WithCancel(in, cancel.Done())
}

// WithContext is like [WithCancel], but uses ctx cancellation as the stop
// signal.
func WithContext[A any](ctx context.Context, in <-chan Try[A]) <-chan Try[A] {
	if in == nil {
		return nil
	}
	return core.WithCancel(in, ctx.Done())
}
