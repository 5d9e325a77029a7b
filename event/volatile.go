package event

import (
	"github.com/saylorsolutions/delegate/syncx"
	"iter"
	"sync"
)

// VolatileEvent is an [Event] that may be subscribed to, unsubscribed from, and invoked from multiple goroutines.
//
// [VolatileEvent.Add], [VolatileEvent.Remove], [VolatileEvent.Invoke], and [VolatileEvent.InvocationList] are synchronized.
// Invoke only holds the lock long enough to copy the invocation list, so a handler may subscribe or unsubscribe on the same event without deadlocking.
//
// Contains, All, and Len are NOT synchronized.
// Use [VolatileEvent.Locker] around those calls if a consistent view is required while other goroutines mutate the event.
// All methods are safe to call on a nil *VolatileEvent.
type VolatileEvent[A any] struct {
	mux      sync.Mutex
	handlers Delegate[*Handler[A]]
}

// NewVolatile creates a [VolatileEvent], optionally subscribing the given handlers in order.
func NewVolatile[A any](handlers ...*Handler[A]) *VolatileEvent[A] {
	e := new(VolatileEvent[A])
	for _, h := range handlers {
		e.handlers.Add(h)
	}
	return e
}

// Locker returns the lock that guards the invocation list.
// It must not be held while calling Add, Remove, Invoke, or InvocationList on the same event.
func (e *VolatileEvent[A]) Locker() sync.Locker {
	return &e.mux
}

// Add subscribes h to the event and returns the event.
// If e is nil, then a new [VolatileEvent] with h subscribed is returned.
// A nil h is ignored.
func (e *VolatileEvent[A]) Add(h *Handler[A]) *VolatileEvent[A] {
	if e == nil {
		return NewVolatile(h)
	}
	syncx.LockFunc(&e.mux, func() {
		e.handlers.Add(h)
	})
	return e
}

// Remove unsubscribes the most recently subscribed occurrence of h and returns the event.
func (e *VolatileEvent[A]) Remove(h *Handler[A]) *VolatileEvent[A] {
	if e == nil {
		return e
	}
	syncx.LockFunc(&e.mux, func() {
		e.handlers.Remove(h)
	})
	return e
}

func (e *VolatileEvent[A]) Contains(h *Handler[A]) bool {
	if e == nil {
		return false
	}
	return e.handlers.Contains(h)
}

func (e *VolatileEvent[A]) All() iter.Seq[*Handler[A]] {
	if e == nil {
		return func(func(*Handler[A]) bool) {}
	}
	return e.handlers.All()
}

func (e *VolatileEvent[A]) Len() int {
	if e == nil {
		return 0
	}
	return e.handlers.Len()
}

// InvocationList returns a copy of the subscribed handlers in invocation order.
func (e *VolatileEvent[A]) InvocationList() []*Handler[A] {
	if e == nil {
		return nil
	}
	return syncx.LockFuncT(&e.mux, e.handlers.InvocationList)
}

// Invoke copies the invocation list while holding the lock, then calls each handler in order without it.
// Error semantics are the same as [Event.Invoke].
func (e *VolatileEvent[A]) Invoke(args A) error {
	if e == nil {
		return nil
	}
	return invokeAll(e.InvocationList(), args)
}
