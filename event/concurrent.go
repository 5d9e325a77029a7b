package event

import (
	"github.com/saylorsolutions/delegate/syncx"
	"iter"
	"sync"
	"sync/atomic"
)

// ConcurrentHandlerList is a [HandlerList] that is safe for concurrent use.
// Events are stored as [VolatileEvent].
//
// Adding the first handler for a key is serialized by the collection's lock so that racing subscribers can't create two events for the same key.
// Once the event exists, handlers are added with the event's own lock.
// Lookups read the list without locking, since list entries are never changed once published.
//
// The zero value is ready to use.
type ConcurrentHandlerList[K comparable, A any] struct {
	mux  sync.Mutex
	head atomic.Pointer[listEntry[K, *VolatileEvent[A]]]
}

// NewConcurrentHandlerList creates an empty [ConcurrentHandlerList].
func NewConcurrentHandlerList[K comparable, A any]() *ConcurrentHandlerList[K, A] {
	return new(ConcurrentHandlerList[K, A])
}

// Event returns the event for the key, or nil if none exists yet.
func (l *ConcurrentHandlerList[K, A]) Event(key K) *VolatileEvent[A] {
	e, _ := findEntry(l.head.Load(), key)
	return e
}

func (l *ConcurrentHandlerList[K, A]) Lookup(key K) (Container[A], bool) {
	e, ok := findEntry(l.head.Load(), key)
	if !ok {
		return nil, false
	}
	return e, true
}

func (l *ConcurrentHandlerList[K, A]) AddHandler(key K, h *Handler[A]) {
	existing := syncx.LockFuncT(&l.mux, func() *VolatileEvent[A] {
		head := l.head.Load()
		if e, ok := findEntry(head, key); ok {
			return e
		}
		l.head.Store(&listEntry[K, *VolatileEvent[A]]{key: key, event: NewVolatile(h), next: head})
		return nil
	})
	if existing != nil {
		existing.Add(h)
	}
}

func (l *ConcurrentHandlerList[K, A]) RemoveHandler(key K, h *Handler[A]) {
	if e, ok := findEntry(l.head.Load(), key); ok {
		e.Remove(h)
	}
}

func (l *ConcurrentHandlerList[K, A]) Invoke(key K, args A) error {
	if e, ok := findEntry(l.head.Load(), key); ok {
		return e.Invoke(args)
	}
	return nil
}

// Keys iterates the keys that have an event, most recently created first.
func (l *ConcurrentHandlerList[K, A]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for entry := l.head.Load(); entry != nil; entry = entry.next {
			if !yield(entry.key) {
				return
			}
		}
	}
}

// ConcurrentHandlerDict is a [HandlerDict] that is safe for concurrent use.
// Events are stored as [VolatileEvent], and the map itself is guarded by the collection's lock.
// The lock is never held while handlers run.
//
// The zero value is ready to use.
type ConcurrentHandlerDict[K comparable, A any] struct {
	mux    sync.Mutex
	events map[K]*VolatileEvent[A]
}

// NewConcurrentHandlerDict creates an empty [ConcurrentHandlerDict].
func NewConcurrentHandlerDict[K comparable, A any]() *ConcurrentHandlerDict[K, A] {
	return &ConcurrentHandlerDict[K, A]{events: map[K]*VolatileEvent[A]{}}
}

// Event returns the event for the key, or nil if none exists yet.
func (d *ConcurrentHandlerDict[K, A]) Event(key K) *VolatileEvent[A] {
	return syncx.LockFuncT(&d.mux, func() *VolatileEvent[A] {
		return d.events[key]
	})
}

func (d *ConcurrentHandlerDict[K, A]) Lookup(key K) (Container[A], bool) {
	e := d.Event(key)
	if e == nil {
		return nil, false
	}
	return e, true
}

func (d *ConcurrentHandlerDict[K, A]) AddHandler(key K, h *Handler[A]) {
	existing := syncx.LockFuncT(&d.mux, func() *VolatileEvent[A] {
		if e, ok := d.events[key]; ok {
			return e
		}
		if d.events == nil {
			d.events = map[K]*VolatileEvent[A]{}
		}
		d.events[key] = NewVolatile(h)
		return nil
	})
	if existing != nil {
		existing.Add(h)
	}
}

func (d *ConcurrentHandlerDict[K, A]) RemoveHandler(key K, h *Handler[A]) {
	if e := d.Event(key); e != nil {
		e.Remove(h)
	}
}

func (d *ConcurrentHandlerDict[K, A]) Invoke(key K, args A) error {
	if e := d.Event(key); e != nil {
		return e.Invoke(args)
	}
	return nil
}

// Keys returns a snapshot of the keys that have an event, in no particular order.
func (d *ConcurrentHandlerDict[K, A]) Keys() iter.Seq[K] {
	keys := syncx.LockFuncT(&d.mux, func() []K {
		keys := make([]K, 0, len(d.events))
		for key := range d.events {
			keys = append(keys, key)
		}
		return keys
	})
	return func(yield func(K) bool) {
		for _, key := range keys {
			if !yield(key) {
				return
			}
		}
	}
}
