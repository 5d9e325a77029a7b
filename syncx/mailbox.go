package syncx

import (
	"sync"
)

// Mailbox is an unbounded FIFO queue with a wake-up signal for a single consumer.
// Posting never blocks, so a consumer may post to its own Mailbox without deadlocking.
//
// A consumer waits on [Mailbox.Ready] and then calls [Mailbox.Take] until it reports false.
type Mailbox[T any] struct {
	mux    sync.Mutex
	values []T
	ready  chan struct{}
}

// NewMailbox creates an empty [Mailbox], optionally with an initial buffer capacity.
func NewMailbox[T any](initialBuffer ...int) *Mailbox[T] {
	m := &Mailbox[T]{ready: make(chan struct{}, 1)}
	if len(initialBuffer) > 0 && initialBuffer[0] > 0 {
		m.values = make([]T, 0, initialBuffer[0])
	}
	return m
}

// Post appends val to the tail of the Mailbox and signals [Mailbox.Ready].
func (m *Mailbox[T]) Post(val T) {
	LockFunc(&m.mux, func() {
		m.values = append(m.values, val)
	})
	select {
	case m.ready <- struct{}{}:
	default:
		// A wake-up is already pending.
	}
}

// Ready receives a value after one or more posts.
// Several posts may share a single signal.
func (m *Mailbox[T]) Ready() <-chan struct{} {
	return m.ready
}

// Take removes the value at the head of the Mailbox.
// False is returned if the Mailbox is empty.
func (m *Mailbox[T]) Take() (T, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	var mt T
	if len(m.values) == 0 {
		return mt, false
	}
	val := m.values[0]
	m.values[0] = mt
	m.values = m.values[1:]
	return val, true
}

// Len gets the number of values waiting in the Mailbox.
func (m *Mailbox[T]) Len() int {
	return LockFuncT(&m.mux, func() int {
		return len(m.values)
	})
}
