package event

import "iter"

// Container is the read and invoke surface shared by [Event] and [VolatileEvent].
type Container[A any] interface {
	Contains(h *Handler[A]) bool
	All() iter.Seq[*Handler[A]]
	Len() int
	Invoke(args A) error
}

var (
	_ Container[any] = (*Event[any])(nil)
	_ Container[any] = (*VolatileEvent[any])(nil)
)

// HandlerCollection maps keys to lazily created events.
// It's useful when a type exposes many events that are rarely subscribed to, and a field per event costs too much memory.
//
// An event is created the first time a handler is added for its key, and is never removed by the collection.
type HandlerCollection[K comparable, A any] interface {
	// Lookup returns the event for the key, if one has been created.
	Lookup(key K) (Container[A], bool)
	// AddHandler subscribes h to the event for the key, creating the event if needed.
	AddHandler(key K, h *Handler[A])
	// RemoveHandler unsubscribes the most recent occurrence of h from the event for the key.
	// Nothing happens if there is no event for the key.
	RemoveHandler(key K, h *Handler[A])
	// Invoke raises the event for the key.
	// If there is no event for the key, then nothing is called and nil is returned.
	Invoke(key K, args A) error
}

var (
	_ HandlerCollection[string, any] = (*HandlerList[string, any])(nil)
	_ HandlerCollection[string, any] = (*HandlerDict[string, any])(nil)
	_ HandlerCollection[string, any] = (*ConcurrentHandlerList[string, any])(nil)
	_ HandlerCollection[string, any] = (*ConcurrentHandlerDict[string, any])(nil)
)

type listEntry[K comparable, E any] struct {
	key   K
	event E
	next  *listEntry[K, E]
}

func findEntry[K comparable, E any](head *listEntry[K, E], key K) (E, bool) {
	for entry := head; entry != nil; entry = entry.next {
		if entry.key == key {
			return entry.event, true
		}
	}
	var zero E
	return zero, false
}

// HandlerList is a [HandlerCollection] backed by a singly linked list.
// Lookup is linear in the number of keys, but each key costs a single small allocation, so it's a good fit for types with few subscribed events.
//
// The zero value is ready to use. A HandlerList is not safe for concurrent use, see [ConcurrentHandlerList].
type HandlerList[K comparable, A any] struct {
	head *listEntry[K, *Event[A]]
}

// NewHandlerList creates an empty [HandlerList].
func NewHandlerList[K comparable, A any]() *HandlerList[K, A] {
	return new(HandlerList[K, A])
}

// Event returns the event for the key, or nil if none exists yet.
func (l *HandlerList[K, A]) Event(key K) *Event[A] {
	e, _ := findEntry(l.head, key)
	return e
}

func (l *HandlerList[K, A]) Lookup(key K) (Container[A], bool) {
	e, ok := findEntry(l.head, key)
	if !ok {
		return nil, false
	}
	return e, true
}

func (l *HandlerList[K, A]) AddHandler(key K, h *Handler[A]) {
	if e, ok := findEntry(l.head, key); ok {
		e.Add(h)
		return
	}
	l.head = &listEntry[K, *Event[A]]{key: key, event: New(h), next: l.head}
}

func (l *HandlerList[K, A]) RemoveHandler(key K, h *Handler[A]) {
	if e, ok := findEntry(l.head, key); ok {
		e.Remove(h)
	}
}

func (l *HandlerList[K, A]) Invoke(key K, args A) error {
	if e, ok := findEntry(l.head, key); ok {
		return e.Invoke(args)
	}
	return nil
}

// Keys iterates the keys that have an event, most recently created first.
func (l *HandlerList[K, A]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for entry := l.head; entry != nil; entry = entry.next {
			if !yield(entry.key) {
				return
			}
		}
	}
}

// HandlerDict is a [HandlerCollection] backed by a map.
// Lookup takes constant time on average, which suits types with many subscribed events.
//
// The zero value is ready to use. A HandlerDict is not safe for concurrent use, see [ConcurrentHandlerDict].
type HandlerDict[K comparable, A any] struct {
	events map[K]*Event[A]
}

// NewHandlerDict creates an empty [HandlerDict].
func NewHandlerDict[K comparable, A any]() *HandlerDict[K, A] {
	return &HandlerDict[K, A]{events: map[K]*Event[A]{}}
}

// Event returns the event for the key, or nil if none exists yet.
func (d *HandlerDict[K, A]) Event(key K) *Event[A] {
	return d.events[key]
}

func (d *HandlerDict[K, A]) Lookup(key K) (Container[A], bool) {
	e, ok := d.events[key]
	if !ok {
		return nil, false
	}
	return e, true
}

func (d *HandlerDict[K, A]) AddHandler(key K, h *Handler[A]) {
	if e, ok := d.events[key]; ok {
		e.Add(h)
		return
	}
	if d.events == nil {
		d.events = map[K]*Event[A]{}
	}
	d.events[key] = New(h)
}

func (d *HandlerDict[K, A]) RemoveHandler(key K, h *Handler[A]) {
	if e, ok := d.events[key]; ok {
		e.Remove(h)
	}
}

func (d *HandlerDict[K, A]) Invoke(key K, args A) error {
	if e, ok := d.events[key]; ok {
		return e.Invoke(args)
	}
	return nil
}

// Keys iterates the keys that have an event, in no particular order.
func (d *HandlerDict[K, A]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range d.events {
			if !yield(key) {
				return
			}
		}
	}
}
