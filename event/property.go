package event

import (
	"context"
	"fmt"
)

// Properties stores the events of a publisher by name, creating them only when a handler is first added.
// A publisher that declares many events but only has a few of them subscribed pays for those few.
//
// Events are accessed through a [Property] or [AsyncProperty] declared once per event name:
//
//	var clicked = event.Declare[ClickArgs]("clicked")
//
//	type Button struct {
//		events event.Properties
//	}
//
//	func (b *Button) Clicked() event.Accessor[ClickArgs] {
//		return clicked.Accessor(&b.events)
//	}
//
// The zero value is ready to use. Properties is not safe for concurrent use.
type Properties struct {
	events      map[string]any
	deleteEmpty bool
}

// PropertiesOption configures [Properties] created with [NewProperties].
type PropertiesOption func(p *Properties)

// DeleteEmpty will remove an event from storage whenever it's set to an event with no handlers, including when its last handler is removed.
// Reads will return the empty sentinel again afterward.
func DeleteEmpty() PropertiesOption {
	return func(p *Properties) {
		p.deleteEmpty = true
	}
}

// NewProperties creates an empty [Properties] with the given options applied.
func NewProperties(opts ...PropertiesOption) *Properties {
	p := new(Properties)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len returns the number of events currently stored.
func (p *Properties) Len() int {
	return len(p.events)
}

func (p *Properties) store(name string, e any) {
	if p.events == nil {
		p.events = map[string]any{}
	}
	p.events[name] = e
}

func (p *Properties) remove(name string) {
	delete(p.events, name)
}

func loadProperty[E any](p *Properties, name string) (E, bool) {
	var zero E
	val, ok := p.events[name]
	if !ok {
		return zero, false
	}
	e, ok := val.(E)
	if !ok {
		panic(fmt.Sprintf("event property '%s' holds %T, but was accessed as %T", name, val, zero))
	}
	return e, true
}

func checkName(name string) {
	if len(name) == 0 {
		panic("empty event property name")
	}
}

// Property is the declaration of a synchronous event stored in [Properties].
// Declaring the same name with different handler argument types and using both on the same [Properties] will panic.
type Property[A any] struct {
	name string
}

// Declare declares a synchronous event property with the given name.
func Declare[A any](name string) Property[A] {
	checkName(name)
	return Property[A]{name: name}
}

// Name returns the name the event is stored under.
func (p Property[A]) Name() string {
	return p.name
}

// Get returns the event stored in props.
// If there is none, then the shared [Empty] sentinel is returned, which is the same value on every read.
func (p Property[A]) Get(props *Properties) *Event[A] {
	if e, ok := loadProperty[*Event[A]](props, p.name); ok {
		return e
	}
	return Empty[A]()
}

// Set stores e in props, replacing any stored event.
// Setting nil or the sentinel is the same as calling [Property.Delete].
func (p Property[A]) Set(props *Properties, e *Event[A]) {
	if e == nil || e.IsEmptySentinel() || (props.deleteEmpty && e.Len() == 0) {
		p.Delete(props)
		return
	}
	props.store(p.name, e)
}

// Delete removes the stored event, so that reads return the sentinel again.
func (p Property[A]) Delete(props *Properties) {
	props.remove(p.name)
}

// Add subscribes h, creating and storing the event if this is the first subscription.
func (p Property[A]) Add(props *Properties, h *Handler[A]) {
	p.Set(props, p.Get(props).Add(h))
}

// Remove unsubscribes the most recent occurrence of h.
// This does nothing if the event has never been created.
func (p Property[A]) Remove(props *Properties, h *Handler[A]) {
	e := p.Get(props)
	if e.IsEmptySentinel() {
		return
	}
	p.Set(props, e.Remove(h))
}

// Invoke raises the stored event, if any.
func (p Property[A]) Invoke(props *Properties, args A) error {
	return p.Get(props).Invoke(args)
}

// Accessor returns an [Accessor] bound to props.
func (p Property[A]) Accessor(props *Properties) Accessor[A] {
	return NewAccessor(
		func(h *Handler[A]) { p.Add(props, h) },
		func(h *Handler[A]) { p.Remove(props, h) },
	)
}

// AsyncProperty is the declaration of an asynchronous event stored in [Properties].
type AsyncProperty[A any] struct {
	name string
}

// DeclareAsync declares an asynchronous event property with the given name.
func DeclareAsync[A any](name string) AsyncProperty[A] {
	checkName(name)
	return AsyncProperty[A]{name: name}
}

// Name returns the name the event is stored under.
func (p AsyncProperty[A]) Name() string {
	return p.name
}

// Get returns the event stored in props, or the shared [EmptyAsync] sentinel.
func (p AsyncProperty[A]) Get(props *Properties) *AsyncEvent[A] {
	if e, ok := loadProperty[*AsyncEvent[A]](props, p.name); ok {
		return e
	}
	return EmptyAsync[A]()
}

// Set stores e in props, replacing any stored event.
// Setting nil or the sentinel is the same as calling [AsyncProperty.Delete].
func (p AsyncProperty[A]) Set(props *Properties, e *AsyncEvent[A]) {
	if e == nil || e.IsEmptySentinel() || (props.deleteEmpty && e.Len() == 0) {
		p.Delete(props)
		return
	}
	props.store(p.name, e)
}

// Delete removes the stored event, so that reads return the sentinel again.
func (p AsyncProperty[A]) Delete(props *Properties) {
	props.remove(p.name)
}

// Add subscribes h, creating and storing the event if this is the first subscription.
func (p AsyncProperty[A]) Add(props *Properties, h *AsyncHandler[A]) {
	p.Set(props, p.Get(props).Add(h))
}

// Remove unsubscribes the most recent occurrence of h.
func (p AsyncProperty[A]) Remove(props *Properties, h *AsyncHandler[A]) {
	e := p.Get(props)
	if e.IsEmptySentinel() {
		return
	}
	p.Set(props, e.Remove(h))
}

// Invoke raises the stored event, if any, and waits for its handlers.
func (p AsyncProperty[A]) Invoke(ctx context.Context, props *Properties, args A) error {
	return p.Get(props).Invoke(ctx, args)
}

// Accessor returns an [AsyncAccessor] bound to props.
func (p AsyncProperty[A]) Accessor(props *Properties) AsyncAccessor[A] {
	return NewAsyncAccessor(
		func(h *AsyncHandler[A]) { p.Add(props, h) },
		func(h *AsyncHandler[A]) { p.Remove(props, h) },
	)
}
