package event

import "iter"

// Event is a synchronous multicast event.
// Handlers subscribe with [Event.Add], unsubscribe with [Event.Remove], and are called in subscription order by [Event.Invoke].
//
// Add and Remove return the event they apply to, so the usual pattern to subscribe is:
//
//	changed = changed.Add(handler)
//
// This matters for a nil *Event and for the shared [Empty] sentinel, which are never mutated.
// Adding to either of them returns a new Event instead.
//
// An Event is not safe for concurrent mutation, use [VolatileEvent] where that's needed.
type Event[A any] struct {
	handlers Delegate[*Handler[A]]
	sentinel bool
}

// New creates an [Event], optionally subscribing the given handlers in order.
func New[A any](handlers ...*Handler[A]) *Event[A] {
	e := new(Event[A])
	for _, h := range handlers {
		e.handlers.Add(h)
	}
	return e
}

// Add subscribes h to the event and returns the event.
// If e is nil or the empty sentinel, then a new [Event] with h subscribed is returned and e is left as it was.
// A nil h is dropped, so it never occupies a place in the invocation list.
func (e *Event[A]) Add(h *Handler[A]) *Event[A] {
	if e == nil || e.sentinel {
		return New(h)
	}
	e.handlers.Add(h)
	return e
}

// Remove unsubscribes the most recently subscribed occurrence of h and returns the event.
// Removing a handler that isn't subscribed does nothing.
func (e *Event[A]) Remove(h *Handler[A]) *Event[A] {
	if e == nil || e.sentinel {
		return e
	}
	e.handlers.Remove(h)
	return e
}

// Contains reports whether h is subscribed to the event.
func (e *Event[A]) Contains(h *Handler[A]) bool {
	if e == nil {
		return false
	}
	return e.handlers.Contains(h)
}

// All iterates the subscribed handlers in subscription order.
func (e *Event[A]) All() iter.Seq[*Handler[A]] {
	if e == nil {
		return func(func(*Handler[A]) bool) {}
	}
	return e.handlers.All()
}

// Len returns the number of subscribed handlers.
func (e *Event[A]) Len() int {
	if e == nil {
		return 0
	}
	return e.handlers.Len()
}

// InvocationList returns a copy of the subscribed handlers in invocation order.
func (e *Event[A]) InvocationList() []*Handler[A] {
	if e == nil {
		return nil
	}
	return e.handlers.InvocationList()
}

// IsEmptySentinel reports whether e is the shared sentinel returned by [Empty].
// A real event that has no handlers is not the sentinel.
func (e *Event[A]) IsEmptySentinel() bool {
	return e != nil && e.sentinel
}

// Invoke raises the event, calling every subscribed handler with args on the calling goroutine.
//
// The invocation list is copied before the first call, so handlers that subscribe or unsubscribe during an invocation only affect later invocations.
// The first error returned by a handler is returned as-is, and the remaining handlers are not called.
func (e *Event[A]) Invoke(args A) error {
	if e == nil {
		return nil
	}
	return invokeAll(e.handlers.InvocationList(), args)
}

func invokeAll[A any](handlers []*Handler[A], args A) error {
	for _, h := range handlers {
		if err := h.Call(args); err != nil {
			return err
		}
	}
	return nil
}
