package th

import (
	"testing"
	"time"
)

// ExpectClosedChan fails the test unless ch is closed within waitFor.
// Items still in flight are not an error; only a timeout is.
func ExpectClosedChan[A any](t *testing.T, ch <-chan A, waitFor time.Duration) {
	t.Helper()

	deadline := time.After(waitFor)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Errorf("channel was not closed after %v", waitFor)
			return
		}
	}
}

// ExpectNeverClosedChan fails the test if ch is closed within waitFor.
func ExpectNeverClosedChan[A any](t *testing.T, ch <-chan A, waitFor time.Duration) {
	t.Helper()

	deadline := time.After(waitFor)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				t.Errorf("channel was closed unexpectedly")
				return
			}
		case <-deadline:
			return
		}
	}
}

func ExpectNotHang(t *testing.T, waitFor time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})

	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Errorf("test hanged")
	}
}
