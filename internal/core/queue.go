package core

import (
	"github.com/seqmux/seqmux/internal/ringbuffer"
)

// UnboundedBuffer returns a channel that delivers the exact same items as in,
// in the same order, but decouples the two sides: writes to in are picked up
// as soon as they happen and parked in a growable FIFO, so the writer is
// never blocked by a slow reader. The output channel is closed after in is
// closed and the FIFO has been emptied.
//
// The FIFO grows without limit if the reader falls behind. That is the point:
// callers that need backpressure should not be here.
func UnboundedBuffer[A any](in <-chan A) <-chan A {
	out := make(chan A)

	go func() {
		defer close(out)

		// State machine with 4 states determined by 2 booleans:
		// - currentIn == nil (input closed)
		// - currentOut == nil (nothing buffered to offer)
		var buf ringbuffer.Buffer[A]
		inClosed := false

		for {
			currentIn := in
			currentOut := out

			if inClosed {
				currentIn = nil
			}

			peeked, ok := buf.Peek()
			if !ok {
				currentOut = nil
			}

			// Exit if there is nothing left to do
			if currentIn == nil && currentOut == nil {
				return
			}

			select {
			case v, ok := <-currentIn:
				if !ok {
					inClosed = true
					continue
				}
				buf.Write(v)

			case currentOut <- peeked:
				buf.Discard()
			}
		}
	}()

	return out
}
