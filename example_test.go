package seqmux_test

import (
	"fmt"
	"sort"
	"time"

	"github.com/seqmux/seqmux"
)

func numbers(nums ...int) <-chan seqmux.Try[int] {
	ch := make(chan int, len(nums))
	for _, n := range nums {
		ch <- n
	}
	close(ch)
	return seqmux.FromChan(ch, nil)
}

// Fan in two finite sources and drain both of them in full.
// The interleaving is nondeterministic, so the example sorts before printing.
func ExampleMultiplex() {
	out := seqmux.Multiplex([]<-chan seqmux.Try[int]{
		numbers(1, 2, 3),
		numbers(10, 20),
	}, false)

	var values []int
	for x := range out {
		if x.Error != nil {
			fmt.Println("error:", x.Error)
			continue
		}
		values = append(values, x.Value)
	}

	sort.Ints(values)
	fmt.Println(values)
	// Output: [1 2 3 10 20]
}

// Wrap an endless stream so that it can be stopped from the outside.
func ExampleWithCancel() {
	ticks := make(chan int)
	go func() {
		defer close(ticks)
		for i := 0; ; i++ {
			ticks <- i
			time.Sleep(time.Millisecond)
		}
	}()

	cancel := seqmux.NewCancellation()
	out := seqmux.WithCancel(seqmux.FromChan(ticks, nil), cancel)

	var values []int
	for x := range out {
		values = append(values, x.Value)
		if len(values) == 3 {
			cancel.Set()
		}
	}

	fmt.Println(values[:3])
	// Output: [0 1 2]
}
