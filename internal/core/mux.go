package core

import (
	"sync"
)

type eventKind int8

const (
	itemEvent eventKind = iota
	sourceDoneEvent
)

// event is what pump goroutines put on the shared queue. End-of-source is a
// tagged variant rather than a reserved item value, so a real item can never
// be mistaken for a control signal.
type event[A any] struct {
	kind   eventKind
	source int
	value  A
}

// Multiplex fans in all input channels into a single output channel.
//
// One pump goroutine drains each input into a shared unbounded queue, then
// reports that input as exhausted. A supervising goroutine waits for every
// pump to return and closes the queue; the close is the signal that no more
// items will ever arrive. Because the queue is unbounded, pumps never block
// on a slow consumer.
//
// With stopAtFirst=true the output ends as soon as any single input reports
// exhaustion, even if other inputs still have items; the leftovers are
// discarded in the background so no goroutine is left behind. With
// stopAtFirst=false exhaustion reports are swallowed and the output ends only
// once every input has been drained in full.
//
// Items of a single input keep their relative order in the output. The
// interleaving across inputs depends on scheduling and is unspecified.
//
// Multiplex panics if ins is empty.
func Multiplex[A any](ins []<-chan A, stopAtFirst bool) <-chan A {
	switch len(ins) {
	case 0:
		panic("seqmux: at least one source is required")
	case 1:
		// both policies degenerate to the source itself
		return ins[0]
	}

	events := make(chan event[A])

	var wg sync.WaitGroup
	for i, in := range ins {
		i, in := i, in
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := range in {
				events <- event[A]{kind: itemEvent, source: i, value: x}
			}
			events <- event[A]{kind: sourceDoneEvent, source: i}
		}()
	}

	go func() {
		wg.Wait()
		close(events)
	}()

	queued := UnboundedBuffer(events)
	out := make(chan A)

	go func() {
		defer close(out)

		for e := range queued {
			if e.kind == sourceDoneEvent {
				if stopAtFirst {
					Discard(queued)
					return
				}
				continue
			}

			out <- e.value
		}
	}()

	return out
}
