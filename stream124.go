//go:build go1.24

package seqmux

// Stream is a type alias for a channel of [Try] containers.
// This alias is optional, but it can make the code more readable.
//
// Before:
//
//	func StreamMetrics() <-chan seqmux.Try[Metric] {
//		...
//	}
//
// After:
//
//	func StreamMetrics() seqmux.Stream[Metric] {
//		...
//	}
type Stream[T any] = <-chan Try[T]
