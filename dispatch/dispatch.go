// Package dispatch drains a BlockingQueue with a fixed pool of worker
// goroutines, handing each element to a caller-provided handler exactly once.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/deltabox/containers"
)

//go:generate mockgen -source dispatch.go -destination dispatch_mocks.go -package dispatch

// ErrInvalidWorkerCount is returned by New for worker counts below one.
const ErrInvalidWorkerCount = containers.ConstError("worker count must be positive")

// Handler consumes values drained from a queue.
type Handler[T any] interface {

	// Handle processes a single value. A non-nil error is collected and
	// reported by Dispatcher.Run; it does not stop the dispatcher.
	Handle(value T) error
}

// Dispatcher connects a BlockingQueue to a Handler through a fixed pool of
// workers. Every element pushed to the queue is delivered to the handler
// exactly once; which worker delivers it is unspecified.
type Dispatcher[T any] struct {
	queue   *containers.BlockingQueue[T]
	handler Handler[T]
	workers int
}

// New creates a dispatcher draining the given queue with the given number of
// workers. The queue may already contain elements and may keep receiving
// elements while the dispatcher runs.
func New[T any](queue *containers.BlockingQueue[T], handler Handler[T], workers int) (*Dispatcher[T], error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	return &Dispatcher[T]{
		queue:   queue,
		handler: handler,
		workers: workers,
	}, nil
}

// Run blocks draining the queue until ctx is cancelled, then joins all
// workers and returns the errors their handler calls produced, combined with
// errors.Join. A cancellation with no handler errors yields nil; elements
// still queued at cancellation time remain in the queue.
func (d *Dispatcher[T]) Run(ctx context.Context) error {
	errs := make([]error, d.workers)
	var wg sync.WaitGroup
	wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func(slot int) {
			defer wg.Done()
			var collected []error
			for {
				value, err := d.queue.WaitAndPopContext(ctx)
				if err != nil {
					break
				}
				if err := d.handler.Handle(value); err != nil {
					collected = append(collected, err)
				}
			}
			errs[slot] = errors.Join(collected...)
		}(i)
	}
	wg.Wait()
	return errors.Join(errs...)
}
