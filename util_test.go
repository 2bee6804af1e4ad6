package seqmux

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seqmux/seqmux/internal/th"
)

func TestDrain(t *testing.T) {
	in := th.FromRange(0, 100)

	th.ExpectNotHang(t, 1*time.Second, func() {
		Drain(in)
	})

	_, ok := <-in
	require.False(t, ok)
}

func TestDrainNB(t *testing.T) {
	in := make(chan int)
	DrainNB(in)

	// the writer must not block even though nobody visibly reads
	th.ExpectNotHang(t, 1*time.Second, func() {
		th.Send(in, 1, 2, 3, 4, 5)
		close(in)
	})
}

func TestBuffer(t *testing.T) {
	in := th.FromRange(0, 10)
	out := Buffer(in, 5)

	var outSlice []int
	for x := range out {
		outSlice = append(outSlice, x)
	}

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, outSlice)
}
