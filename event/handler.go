package event

import "context"

// Handler is a callback that may be subscribed to an [Event].
// Handlers are matched by pointer identity, so subscribing the same *Handler twice results in two independent entries,
// while two handlers created from the same function are still different entries.
type Handler[A any] struct {
	fn func(args A) error
}

// Func creates a [Handler] from a function that may fail.
// A returned error stops the current invocation and is passed back to the invoking code.
func Func[A any](fn func(args A) error) *Handler[A] {
	if fn == nil {
		panic("nil handler function")
	}
	return &Handler[A]{fn: fn}
}

// Action creates a [Handler] from a function that can't fail.
func Action[A any](fn func(args A)) *Handler[A] {
	if fn == nil {
		panic("nil handler function")
	}
	return &Handler[A]{fn: func(args A) error {
		fn(args)
		return nil
	}}
}

// Call calls the handler function directly.
func (h *Handler[A]) Call(args A) error {
	return h.fn(args)
}

// AsyncHandler is a callback that may be subscribed to an [AsyncEvent].
// It follows the same identity rules as [Handler].
type AsyncHandler[A any] struct {
	fn func(ctx context.Context, args A) error
}

// AsyncFunc creates an [AsyncHandler].
// The context passed to the function is the one given to [AsyncEvent.Invoke].
func AsyncFunc[A any](fn func(ctx context.Context, args A) error) *AsyncHandler[A] {
	if fn == nil {
		panic("nil handler function")
	}
	return &AsyncHandler[A]{fn: fn}
}

// Call calls the handler function directly on the calling goroutine.
func (h *AsyncHandler[A]) Call(ctx context.Context, args A) error {
	return h.fn(ctx, args)
}
