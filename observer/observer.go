package observer

import (
	"context"
	"github.com/saylorsolutions/delegate/event"
	"github.com/saylorsolutions/delegate/syncx"
	"log/slog"
	"sync"
)

// Subject is a value that may be observed for changes.
type Subject[T any] interface {
	Get() T
	// Set submits a new value. Observers are notified asynchronously, in the order values were submitted.
	// Set never blocks, so observers may call it.
	Set(newVal T)
	// Observe subscribes obs to changes.
	// The returned handler may be passed to Unobserve.
	Observe(obs func(newVal T)) *event.Handler[T]
	// ObserveErr is like Observe, but obs may fail.
	// An error is logged, and observers subscribed after obs are not notified of that change.
	ObserveErr(obs func(newVal T) error) *event.Handler[T]
	// Unobserve removes the most recent subscription of the handler.
	Unobserve(h *event.Handler[T])
}

// Option configures a [Subject] created with [NewSubject].
type Option func(conf *subjectConf)

type subjectConf struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report observer errors.
// By default, [slog.Default] is used.
func WithLogger(logger *slog.Logger) Option {
	return func(conf *subjectConf) {
		if logger != nil {
			conf.logger = logger
		}
	}
}

// NewSubject creates a [Subject] implementation with a context for cancellation.
// Once the context is cancelled, the [Subject] will no longer propagate changes, and Set discards new values.
func NewSubject[T any](ctx context.Context, val T, opts ...Option) Subject[T] {
	conf := subjectConf{logger: slog.Default()}
	for _, opt := range opts {
		opt(&conf)
	}
	sub := &subject[T]{
		changes:   syncx.NewMailbox[T](),
		done:      ctx.Done(),
		value:     val,
		observers: event.NewVolatile[T](),
		logger:    conf.logger,
	}
	go sub.processChanges(ctx)
	return sub
}

type subject[T any] struct {
	changes *syncx.Mailbox[T]
	done    <-chan struct{}
	logger  *slog.Logger

	mux       sync.RWMutex
	value     T
	observers *event.VolatileEvent[T]
}

func (s *subject[T]) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.changes.Ready():
			for {
				val, ok := s.changes.Take()
				if !ok || ctx.Err() != nil {
					break
				}
				s.apply(val)
			}
		}
	}
}

func (s *subject[T]) apply(val T) {
	syncx.LockFunc(&s.mux, func() {
		s.value = val
	})
	// Observers run outside the value lock so they may call Get.
	if err := s.observers.Invoke(val); err != nil {
		s.logger.Error("Observer failed to handle change", "error", err)
	}
}

func (s *subject[T]) Get() T {
	return syncx.RLockFuncT(&s.mux, func() T {
		return s.value
	})
}

func (s *subject[T]) Set(newVal T) {
	select {
	case <-s.done:
	default:
		s.changes.Post(newVal)
	}
}

func (s *subject[T]) Observe(obs func(newVal T)) *event.Handler[T] {
	h := event.Action(obs)
	s.observers.Add(h)
	return h
}

func (s *subject[T]) ObserveErr(obs func(newVal T) error) *event.Handler[T] {
	h := event.Func(obs)
	s.observers.Add(h)
	return h
}

func (s *subject[T]) Unobserve(h *event.Handler[T]) {
	s.observers.Remove(h)
}
