package ringbuffer

// EvictFunc receives a value pushed out of a full buffer.
type EvictFunc[T any] func(evicted T)

// Buffer keeps the most recently pushed values, newest first.
// A capacity of zero or less means the buffer grows without bound.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	data     []T
	next     int
	capacity int
	onEvict  EvictFunc[T]
}

func New[T any](capacity int, onEvict EvictFunc[T]) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{
		data:     make([]T, 0, capacity),
		capacity: capacity,
		onEvict:  onEvict,
	}
}

// Push inserts val at the front. When the buffer is bounded and full,
// the oldest value is evicted and returned with true.
func (b *Buffer[T]) Push(val T) (evicted T, ok bool) {
	if b.capacity == 0 || len(b.data) < b.capacity {
		b.data = append(b.data, val)
		b.next = len(b.data)
		if b.capacity > 0 {
			b.next %= b.capacity
		}
		return evicted, false
	}

	// the slot after the newest value holds the oldest one
	evicted = b.data[b.next]
	b.data[b.next] = val
	b.next = (b.next + 1) % b.capacity

	if b.onEvict != nil {
		b.onEvict(evicted)
	}
	return evicted, true
}

// Len returns the number of values held.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the configured capacity, 0 when unbounded.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// At returns the i-th value counting from the newest (i == 0).
func (b *Buffer[T]) At(i int) (val T, ok bool) {
	n := len(b.data)
	if i < 0 || i >= n {
		return val, false
	}
	newest := (b.next - 1 + n) % n
	return b.data[(newest-i+n)%n], true
}

// Items returns a copy of the held values, newest first.
func (b *Buffer[T]) Items() []T {
	n := len(b.data)
	out := make([]T, n)
	for i := range out {
		out[i], _ = b.At(i)
	}
	return out
}
