package seqmux

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seqmux/seqmux/internal/th"
)

func TestWithCancel(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		out := WithCancel[int](nil, NewCancellation())
		require.Nil(t, out)
	})

	t.Run("no cancellation", func(t *testing.T) {
		in := FromChan(th.FromRange(0, 20), nil)
		out := WithCancel(in, NewCancellation())

		var outSlice []int
		for x := range out {
			require.NoError(t, x.Error)
			outSlice = append(outSlice, x.Value)
		}

		expected := make([]int, 0, 20)
		for i := 0; i < 20; i++ {
			expected = append(expected, i)
		}
		require.Equal(t, expected, outSlice)
	})

	t.Run("single item ends immediately", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42
		close(ch)

		out := WithCancel(FromChan(ch, nil), NewCancellation())

		th.ExpectNotHang(t, 1*time.Second, func() {
			x := <-out
			require.Equal(t, 42, x.Value)

			_, ok := <-out
			require.False(t, ok)
		})
	})

	t.Run("cancel infinite source", func(t *testing.T) {
		stop := make(chan struct{})
		defer close(stop)

		in := FromChan(th.InfiniteChanEvery(time.Millisecond, stop), nil)

		c := NewCancellation()
		out := WithCancel(in, c)

		// take a few items first, they must arrive in order
		for i := 0; i < 10; i++ {
			x := <-out
			require.NoError(t, x.Error)
			require.Equal(t, i, x.Value)
		}

		c.Set()
		th.ExpectClosedChan(t, out, 1*time.Second)
	})

	t.Run("items queued before cancellation are delivered", func(t *testing.T) {
		ch := make(chan int)
		c := NewCancellation()
		out := WithCancel(FromChan(ch, nil), c)

		th.Send(ch, 1, 2, 3, 4, 5)
		// give the wrapper a moment to park all five items in the queue
		time.Sleep(50 * time.Millisecond)
		c.Set()

		var outSlice []int
		th.ExpectNotHang(t, 1*time.Second, func() {
			for x := range out {
				outSlice = append(outSlice, x.Value)
			}
		})

		require.Equal(t, []int{1, 2, 3, 4, 5}, outSlice)
		close(ch)
	})

	t.Run("ending via cancel looks like normal end of data", func(t *testing.T) {
		ch := make(chan int)
		c := NewCancellation()
		out := WithCancel(FromChan(ch, nil), c)

		c.Set()
		th.ExpectClosedChan(t, out, 1*time.Second)

		// an exhausted stream stays exhausted
		_, ok := <-out
		require.False(t, ok)
		close(ch)
	})
}

func TestWithContext(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		out := WithContext[int](context.Background(), nil)
		require.Nil(t, out)
	})

	t.Run("context cancellation stops the stream", func(t *testing.T) {
		stop := make(chan struct{})
		defer close(stop)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		in := FromChan(th.InfiniteChanEvery(time.Millisecond, stop), nil)
		out := WithContext(ctx, in)

		x := <-out
		require.Equal(t, 0, x.Value)

		cancel()
		th.ExpectClosedChan(t, out, 1*time.Second)
	})
}
