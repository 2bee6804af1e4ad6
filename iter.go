//go:build go1.23

package seqmux

import (
	"iter"
)

// FromSeq converts an iterator into a stream.
// If err is not nil, the function returns a stream with a single error.
//
// Such a function signature allows concise wrapping of functions that return
// an iterator and an error:
//
//	stream := seqmux.FromSeq(someFunc())
func FromSeq[A any](seq iter.Seq[A], err error) <-chan Try[A] {
	if seq == nil && err == nil {
		return nil
	}
	if err != nil {
		out := make(chan Try[A], 1)
		out <- Try[A]{Error: err}
		close(out)
		return out
	}

	out := make(chan Try[A])
	go func() {
		defer close(out)
		for val := range seq {
			out <- Try[A]{Value: val}
		}
	}()
	return out
}

// FromSeq2 converts a value-error pairs sequence into a stream.
func FromSeq2[A any](seq iter.Seq2[A, error]) <-chan Try[A] {
	if seq == nil {
		return nil
	}

	out := make(chan Try[A])
	go func() {
		defer close(out)
		for val, err := range seq {
			out <- Wrap(val, err)
		}
	}()
	return out
}

// ToSeq2 converts a stream into a sequence of value-error pairs.
//
// Unlike [Unwrap], it does not split values and errors apart: the client
// iterates all value-error pairs and decides when to stop. Breaking out of
// the loop is safe; the remaining items are drained in the background.
func ToSeq2[A any](in <-chan Try[A]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		defer DrainNB(in)
		for x := range in {
			if !yield(x.Value, x.Error) {
				return
			}
		}
	}
}
