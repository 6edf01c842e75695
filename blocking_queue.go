package containers

import (
	"context"
	"sync"
	"unsafe"

	deque "github.com/eapache/queue/v2"
)

// BlockingQueue is an unbounded FIFO queue safe for concurrent use by any
// number of producer and consumer goroutines. Consumers may poll with TryPop
// or block with WaitAndPop until a producer delivers an element.
//
// All operations serialize on a single internal mutex. Elements are handed
// out in the order their Push calls acquired the mutex; two racing producers
// are ordered by whichever wins the mutex, there is no further tie-break.
//
// The queue does not bound its capacity and applies no backpressure; Push
// always succeeds. The zero value is not ready for use, construct instances
// with NewBlockingQueue.
type BlockingQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	data     *deque.Queue[T]
}

// NewBlockingQueue creates an empty queue.
func NewBlockingQueue[T any]() *BlockingQueue[T] {
	q := &BlockingQueue[T]{data: deque.New[T]()}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends value to the tail of the queue and wakes all consumers
// currently blocked in WaitAndPop or WaitAndPopContext. Every waiter
// re-checks for emptiness after waking, so waking more consumers than there
// are elements is safe.
func (q *BlockingQueue[T]) Push(value T) {
	q.mu.Lock()
	q.data.Add(value)
	q.notEmpty.Broadcast()
	q.mu.Unlock()
}

// TryPop removes and returns the head of the queue without blocking.
// The second result is false when the queue was empty.
func (q *BlockingQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.data.Length() == 0 {
		var zero T
		return zero, false
	}
	return q.data.Remove(), true
}

// WaitAndPop removes and returns the head of the queue, suspending the
// calling goroutine until an element is available. There is no deadline; if
// no Push ever happens the call never returns. Use WaitAndPopContext to
// bound the wait.
func (q *BlockingQueue[T]) WaitAndPop() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.data.Length() == 0 {
		q.notEmpty.Wait()
	}
	return q.data.Remove()
}

// WaitAndPopContext behaves like WaitAndPop until ctx is done, at which
// point it stops waiting and returns the zero value together with ctx.Err().
// The context check takes precedence: once ctx is done no further element is
// taken, even if one is available. An element is either returned or left in
// the queue, never dropped.
func (q *BlockingQueue[T]) WaitAndPopContext(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if q.data.Length() > 0 {
			return q.data.Remove(), nil
		}
		// Wait cannot observe the context, so a watcher wakes all waiters
		// when the context expires; the loop condition sorts them out.
		expired := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				q.mu.Lock()
				q.notEmpty.Broadcast()
				q.mu.Unlock()
			case <-expired:
			}
		}()
		q.notEmpty.Wait()
		close(expired)
	}
}

// Empty reports whether the queue held no elements at the time of the check.
// The answer can be stale as soon as the method returns; with concurrent
// producers or consumers it must not be used as a precondition for a
// subsequent pop.
func (q *BlockingQueue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data.Length() == 0
}

// Size returns the number of queued elements at the time of the call.
func (q *BlockingQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data.Length()
}

// GetMemoryFootprint provides an estimate of the memory used by this queue.
// The backing ring buffer is opaque, its share is estimated from the number
// of queued elements.
func (q *BlockingQueue[T]) GetMemoryFootprint() *MemoryFootprint {
	q.mu.Lock()
	defer q.mu.Unlock()
	var item T
	selfSize := unsafe.Sizeof(*q)
	return NewMemoryFootprint(selfSize + uintptr(q.data.Length())*unsafe.Sizeof(item))
}
