package core

import (
	"github.com/seqmux/seqmux/internal/ringbuffer"
)

// WithCancel adapts in into a channel that can be externally told to stop.
//
// Items are read into a growable FIFO as soon as the producer sends them, so
// the producer is never blocked by a slow consumer and never observes the
// cancel signal. Until cancel fires, the output delivers every item of in, in
// order, and is closed right after in is closed and the FIFO is emptied. Once
// cancel fires, items already in the FIFO are still delivered; the output is
// closed at the first moment the FIFO is found empty. The producer is not
// interrupted: whatever it keeps sending after that point is drained in the
// background and discarded.
func WithCancel[A any](in <-chan A, cancel <-chan struct{}) <-chan A {
	out := make(chan A)

	go func() {
		defer close(out)

		var buf ringbuffer.Buffer[A]
		inClosed := false
		cancelled := false

		for {
			peeked, ok := buf.Peek()

			// termination is only ever decided on an empty FIFO
			if !ok && inClosed {
				return
			}
			if !ok && cancelled {
				Discard(in)
				return
			}

			currentIn := in
			currentOut := out
			currentCancel := cancel

			if inClosed {
				currentIn = nil
			}
			if !ok {
				currentOut = nil
			}
			if cancelled {
				currentCancel = nil
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

			case <-currentCancel:
				cancelled = true
			}
		}
	}()

	return out
}
