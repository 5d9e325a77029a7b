package event

// Accessor exposes subscription to an event whose storage is owned somewhere else, often a [HandlerCollection] or [Properties].
// Unlike an [Event], an Accessor can't be invoked, so a type can export it while keeping the ability to raise the event to itself.
//
//	type Window struct {
//		events *event.HandlerList[*event.Key, CloseArgs]
//	}
//
//	var closingKey = event.NewKey("closing")
//
//	func (w *Window) Closing() event.Accessor[CloseArgs] {
//		return event.Keyed(w.events, closingKey)
//	}
type Accessor[A any] struct {
	add, remove func(h *Handler[A])
}

// NewAccessor creates an [Accessor] from add and remove functions.
// Neither function may be nil.
func NewAccessor[A any](add, remove func(h *Handler[A])) Accessor[A] {
	if add == nil {
		panic("nil add accessor")
	}
	if remove == nil {
		panic("nil remove accessor")
	}
	return Accessor[A]{add: add, remove: remove}
}

// Keyed creates an [Accessor] that subscribes to the event for key in the collection.
func Keyed[K comparable, A any](collection HandlerCollection[K, A], key K) Accessor[A] {
	if collection == nil {
		panic("nil handler collection")
	}
	return NewAccessor(
		func(h *Handler[A]) { collection.AddHandler(key, h) },
		func(h *Handler[A]) { collection.RemoveHandler(key, h) },
	)
}

// Subscribe calls the add accessor with h.
func (a Accessor[A]) Subscribe(h *Handler[A]) {
	a.add(h)
}

// Unsubscribe calls the remove accessor with h.
func (a Accessor[A]) Unsubscribe(h *Handler[A]) {
	a.remove(h)
}

// AsyncAccessor is the [Accessor] counterpart for an [AsyncEvent].
type AsyncAccessor[A any] struct {
	add, remove func(h *AsyncHandler[A])
}

// NewAsyncAccessor creates an [AsyncAccessor] from add and remove functions.
// Neither function may be nil.
func NewAsyncAccessor[A any](add, remove func(h *AsyncHandler[A])) AsyncAccessor[A] {
	if add == nil {
		panic("nil add accessor")
	}
	if remove == nil {
		panic("nil remove accessor")
	}
	return AsyncAccessor[A]{add: add, remove: remove}
}

func (a AsyncAccessor[A]) Subscribe(h *AsyncHandler[A]) {
	a.add(h)
}

func (a AsyncAccessor[A]) Unsubscribe(h *AsyncHandler[A]) {
	a.remove(h)
}
