package seqmux

// Try is a container for a value or an error
type Try[A any] struct {
	Value A
	Error error
}

// Wrap converts a value and/or an error into a [Try] container.
func Wrap[A any](value A, err error) Try[A] {
	return Try[A]{Value: value, Error: err}
}

// FromChan converts a regular channel of items into a stream.
// Additionally, this function can take an error, which will be added to the
// stream ahead of the values. Either the input channel or the error can be
// nil, but not both simultaneously.
func FromChan[A any](values <-chan A, err error) <-chan Try[A] {
	if values == nil && err == nil {
		return nil
	}

	out := make(chan Try[A])
	go func() {
		defer close(out)

		if err != nil {
			out <- Try[A]{Error: err} // error goes first
		}

		for x := range values {
			out <- Try[A]{Value: x}
		}
	}()

	return out
}

// Unwrap converts a stream back into a channel of values and a channel of errors.
func Unwrap[A any](in <-chan Try[A]) (<-chan A, <-chan error) {
	if in == nil {
		return nil, nil
	}

	out := make(chan A)
	errs := make(chan error)

	go func() {
		defer close(out)
		defer close(errs)

		for x := range in {
			if x.Error != nil {
				errs <- x.Error
			} else {
				out <- x.Value
			}
		}
	}()

	return out, errs
}
