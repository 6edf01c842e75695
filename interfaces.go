package containers

// Queue is a FIFO hand-off structure with non-blocking consumption.
type Queue[T any] interface {

	// Push appends a value to the tail of the queue.
	Push(value T)

	// TryPop removes and returns the head of the queue.
	// The second result is false when the queue was empty.
	TryPop() (T, bool)

	// Empty reports whether the queue held no elements.
	Empty() bool

	// Size returns the number of queued elements.
	Size() int
}

// MemoryFootprintProvider is implemented by containers that can report an
// estimate of their own memory consumption.
type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}
