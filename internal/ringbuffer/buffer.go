package ringbuffer

const minCap = 16

// Buffer is a growable FIFO queue backed by a circular slice.
// The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	data         []T
	offset, size int
}

func (b *Buffer[T]) Len() int {
	return b.size
}

// Write appends v to the end of the buffer, growing it if needed.
func (b *Buffer[T]) Write(v T) {
	b.grow(1)

	pos := (b.offset + b.size) % len(b.data)
	b.data[pos] = v
	b.size++
}

// Read removes and returns the item at the start of the buffer.
func (b *Buffer[T]) Read() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}

	v := b.data[b.offset]
	b.Discard()
	return v, true
}

// Peek returns the item at the start of the buffer without removing it.
func (b *Buffer[T]) Peek() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}

	return b.data[b.offset], true
}

// Discard drops the item at the start of the buffer.
func (b *Buffer[T]) Discard() bool {
	if b.size == 0 {
		return false
	}

	var zero T
	b.data[b.offset] = zero // let GC do its work

	b.offset = (b.offset + 1) % len(b.data)
	b.size--
	return true
}

// change the capacity and defragment the buffer
func (b *Buffer[T]) setCap(newCap int) {
	newData := make([]T, newCap)

	end := b.offset + b.size
	if end <= len(b.data) {
		copy(newData, b.data[b.offset:end])
	} else {
		copied := copy(newData, b.data[b.offset:])
		copy(newData[copied:], b.data[:b.size-copied])
	}

	b.data = newData
	b.offset = 0
}

func (b *Buffer[T]) grow(n int) {
	targetSize := b.size + n
	targetCap := cap(b.data)

	if targetCap >= targetSize {
		return // enough
	}

	if targetCap < minCap {
		targetCap = minCap
	}
	for targetCap < targetSize {
		targetCap <<= 1 // double the capacity
	}

	b.setCap(targetCap)
}
