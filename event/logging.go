package event

import (
	"context"
	"log/slog"
)

// Logged wraps fn in a [Handler] that logs each call at debug level, and any returned error at warn level.
// The error is still returned to the invoking code, so logging doesn't change how the event behaves.
// A nil logger uses [slog.Default].
func Logged[A any](logger *slog.Logger, name string, fn func(args A) error) *Handler[A] {
	if fn == nil {
		panic("nil handler function")
	}
	return Func(func(args A) error {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Debug("Calling event handler", "handler", name)
		err := fn(args)
		if err != nil {
			l.Warn("Event handler returned an error", "handler", name, "error", err)
		}
		return err
	})
}

// LoggedAsync is the [AsyncHandler] version of [Logged].
// The invocation context is passed to the logger.
func LoggedAsync[A any](logger *slog.Logger, name string, fn func(ctx context.Context, args A) error) *AsyncHandler[A] {
	if fn == nil {
		panic("nil handler function")
	}
	return AsyncFunc(func(ctx context.Context, args A) error {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.DebugContext(ctx, "Calling async event handler", "handler", name)
		err := fn(ctx, args)
		if err != nil {
			l.WarnContext(ctx, "Async event handler returned an error", "handler", name, "error", err)
		}
		return err
	})
}
