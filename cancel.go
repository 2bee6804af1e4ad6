package seqmux

import (
	"sync"
	"sync/atomic"
)

// Cancellation is a one-shot event used to stop streams returned by
// [WithCancel]. It starts unset and is switched permanently by [Cancellation.Set];
// there is no way to clear it. The zero value is ready to use, and all
// methods are safe for concurrent use.
type Cancellation struct {
	setOnce  sync.Once
	fired    atomic.Bool
	done     chan struct{}
	initOnce sync.Once
}

func NewCancellation() *Cancellation {
	return &Cancellation{}
}

func (c *Cancellation) init() {
	c.initOnce.Do(func() {
		c.done = make(chan struct{})
	})
}

// Set fires the event. Only the first call has an effect;
// subsequent calls are no-ops.
func (c *Cancellation) Set() {
	c.setOnce.Do(func() {
		c.init()
		c.fired.Store(true)
		close(c.done)
	})
}

// IsSet reports whether the event has fired.
func (c *Cancellation) IsSet() bool {
	return c.fired.Load()
}

// Done returns a channel that is closed when the event fires.
func (c *Cancellation) Done() <-chan struct{} {
	c.init()
	return c.done
}
