package seqmux

import (
	"fmt"

	"github.com/seqmux/seqmux/internal/core"
)

// NamedSource attaches an identifying name to a stream fed into [MultiplexNamed].
type NamedSource[A any] struct {
	Name   string
	Stream <-chan Try[A]
}

// Tagged pairs an item with the name of the source it came from.
type Tagged[A any] struct {
	Name  string
	Value A
}

// SourceError is an error emitted by a named source, wrapped with that
// source's name by [MultiplexNamed].
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Multiplex performs a fan-in operation on the list of sources, returning a
// single stream with all their items. Each source is drained by its own
// goroutine; a supervising goroutine tracks when all of them are finished.
// Sources are consumed exactly once and are not restarted.
//
// The stopAtFirst argument selects the termination policy:
//   - true: the output ends as soon as any one source is exhausted. Every
//     item that surfaced before that point is still delivered; whatever the
//     other sources produce afterwards is drained in the background and
//     discarded.
//   - false: the output ends only after every source has been drained in
//     full, so it carries every item of every source.
//
// Items of a single source keep their relative order in the output; the
// interleaving across sources is unspecified. Errors in the input streams are
// ordinary items and flow through under either policy.
//
// Multiplex panics if sources is empty. The panic happens synchronously,
// before any goroutine is started.
func Multiplex[A any](sources []<-chan Try[A], stopAtFirst bool) <-chan Try[A] {
	return core.Multiplex(sources, stopAtFirst)
}

// MultiplexNamed is like [Multiplex], but for sources tagged with names.
// Each item of the output carries the name of the source it came from.
// Errors emitted by a source are wrapped in [SourceError] with that source's
// name, so the consumer can tell failing sources apart.
//
// MultiplexNamed panics if sources is empty.
func MultiplexNamed[A any](sources []NamedSource[A], stopAtFirst bool) <-chan Try[Tagged[A]] {
	tagged := make([]<-chan Try[Tagged[A]], len(sources))
	for i, src := range sources {
		tagged[i] = tagSource(src.Name, src.Stream)
	}

	return core.Multiplex(tagged, stopAtFirst)
}

// tagSource relabels every item of in with the source's name.
// Per-source ordering is preserved.
func tagSource[A any](name string, in <-chan Try[A]) <-chan Try[Tagged[A]] {
	out := make(chan Try[Tagged[A]])

	go func() {
		defer close(out)
		for x := range in {
			if x.Error != nil {
				out <- Try[Tagged[A]]{Error: &SourceError{Name: name, Err: x.Error}}
				continue
			}
			out <- Try[Tagged[A]]{Value: Tagged[A]{Name: name, Value: x.Value}}
		}
	}()

	return out
}
