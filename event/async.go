package event

import (
	"context"
	"golang.org/x/sync/errgroup"
	"iter"
	"sync"
)

// AsyncEvent is a multicast event whose handlers run concurrently.
// It has the same subscription rules as [Event], but [AsyncEvent.Invoke] starts every handler in its own goroutine and waits for all of them.
type AsyncEvent[A any] struct {
	handlers Delegate[*AsyncHandler[A]]
	limit    int
	sentinel bool
}

// NewAsync creates an [AsyncEvent], optionally subscribing the given handlers in order.
func NewAsync[A any](handlers ...*AsyncHandler[A]) *AsyncEvent[A] {
	e := new(AsyncEvent[A])
	for _, h := range handlers {
		e.handlers.Add(h)
	}
	return e
}

// WithLimit sets the maximum number of handlers that may run at the same time during an invocation.
// A limit <= 0 removes the limit, which is the default.
// This should be set before the event is shared, and has no effect on the [EmptyAsync] sentinel.
func (e *AsyncEvent[A]) WithLimit(limit int) *AsyncEvent[A] {
	if e == nil || e.sentinel {
		return e
	}
	e.limit = limit
	return e
}

// Add subscribes h to the event and returns the event.
// If e is nil or the empty sentinel, then a new [AsyncEvent] with h subscribed is returned.
// A nil h is dropped.
func (e *AsyncEvent[A]) Add(h *AsyncHandler[A]) *AsyncEvent[A] {
	if e == nil || e.sentinel {
		return NewAsync(h)
	}
	e.handlers.Add(h)
	return e
}

// Remove unsubscribes the most recently subscribed occurrence of h and returns the event.
func (e *AsyncEvent[A]) Remove(h *AsyncHandler[A]) *AsyncEvent[A] {
	if e == nil || e.sentinel {
		return e
	}
	e.handlers.Remove(h)
	return e
}

// Contains reports whether h is subscribed to the event.
func (e *AsyncEvent[A]) Contains(h *AsyncHandler[A]) bool {
	if e == nil {
		return false
	}
	return e.handlers.Contains(h)
}

// All iterates the subscribed handlers in subscription order.
func (e *AsyncEvent[A]) All() iter.Seq[*AsyncHandler[A]] {
	if e == nil {
		return func(func(*AsyncHandler[A]) bool) {}
	}
	return e.handlers.All()
}

// Len returns the number of subscribed handlers.
func (e *AsyncEvent[A]) Len() int {
	if e == nil {
		return 0
	}
	return e.handlers.Len()
}

// InvocationList returns a copy of the subscribed handlers in invocation order.
func (e *AsyncEvent[A]) InvocationList() []*AsyncHandler[A] {
	if e == nil {
		return nil
	}
	return e.handlers.InvocationList()
}

// IsEmptySentinel reports whether e is the shared sentinel returned by [EmptyAsync].
func (e *AsyncEvent[A]) IsEmptySentinel() bool {
	return e != nil && e.sentinel
}

// Invoke raises the event and blocks until every handler has returned.
//
// Handlers are started in subscription order, each in its own goroutine, but may finish in any order.
// A failing handler doesn't cancel the others.
// Once all handlers are done, the first error that was recorded is returned.
//
// If a handler panics, the first panic value is raised again on the calling goroutine after all handlers are done.
func (e *AsyncEvent[A]) Invoke(ctx context.Context, args A) error {
	if e == nil {
		return nil
	}
	handlers := e.handlers.InvocationList()
	if len(handlers) == 0 {
		return nil
	}
	var (
		g         errgroup.Group
		panicOnce sync.Once
		panicked  bool
		panicVal  any
	)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for _, h := range handlers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() {
						panicked = true
						panicVal = r
					})
				}
			}()
			return h.Call(ctx, args)
		})
	}
	err := g.Wait()
	if panicked {
		panic(panicVal)
	}
	return err
}
