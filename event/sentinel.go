package event

import (
	"reflect"
	"sync"
)

// Sentinels are immutable, so sharing them between goroutines is safe.
var sentinels sync.Map // map[reflect.Type]any

// Empty returns the shared empty [Event] for handlers of A.
// Every call for the same A returns the identical pointer, so it can be compared directly or checked with [Event.IsEmptySentinel].
//
// The sentinel always has no handlers: [Event.Add] returns a new Event rather than changing it, and [Event.Remove] and [Event.Invoke] do nothing.
func Empty[A any]() *Event[A] {
	key := reflect.TypeFor[*Event[A]]()
	if e, ok := sentinels.Load(key); ok {
		return e.(*Event[A])
	}
	e, _ := sentinels.LoadOrStore(key, &Event[A]{sentinel: true})
	return e.(*Event[A])
}

// EmptyAsync returns the shared empty [AsyncEvent] for handlers of A.
// It follows the same rules as [Empty].
func EmptyAsync[A any]() *AsyncEvent[A] {
	key := reflect.TypeFor[*AsyncEvent[A]]()
	if e, ok := sentinels.Load(key); ok {
		return e.(*AsyncEvent[A])
	}
	e, _ := sentinels.LoadOrStore(key, &AsyncEvent[A]{sentinel: true})
	return e.(*AsyncEvent[A])
}
