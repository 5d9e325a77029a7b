package event

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var (
	closingKey = NewKey("closing")
	closedKey  = NewKey("closed")
)

type window struct {
	events *HandlerList[*Key, string]
}

func (w *window) Closing() Accessor[string] {
	return Keyed[*Key, string](w.events, closingKey)
}

func (w *window) Closed() Accessor[string] {
	return Keyed[*Key, string](w.events, closedKey)
}

func (w *window) close(reason string) error {
	if err := w.events.Invoke(closingKey, reason); err != nil {
		return err
	}
	return w.events.Invoke(closedKey, reason)
}

func TestKeyed(t *testing.T) {
	var (
		w       = &window{events: NewHandlerList[*Key, string]()}
		closing recorder[string]
		closed  recorder[string]
		hClosed = closed.handler()
	)
	w.Closing().Subscribe(closing.handler())
	w.Closed().Subscribe(hClosed)
	require.NoError(t, w.close("user"))
	assert.Equal(t, []string{"user"}, closing.calls)
	assert.Equal(t, []string{"user"}, closed.calls)

	w.Closed().Unsubscribe(hClosed)
	require.NoError(t, w.close("timeout"))
	assert.Equal(t, []string{"user", "timeout"}, closing.calls)
	assert.Equal(t, []string{"user"}, closed.calls)

	impostor := NewKey("closing")
	_, ok := w.events.Lookup(impostor)
	assert.False(t, ok, "Keys with the same name are still different keys")
	assert.Equal(t, "closing", closingKey.String())
}

func TestNewAccessor(t *testing.T) {
	var added, removed []*Handler[int]
	a := NewAccessor(
		func(h *Handler[int]) { added = append(added, h) },
		func(h *Handler[int]) { removed = append(removed, h) },
	)
	h := Action(func(int) {})
	a.Subscribe(h)
	a.Unsubscribe(h)
	assert.Equal(t, []*Handler[int]{h}, added)
	assert.Equal(t, []*Handler[int]{h}, removed)

	assert.Panics(t, func() {
		NewAccessor[int](nil, func(*Handler[int]) {})
	})
	assert.Panics(t, func() {
		NewAccessor[int](func(*Handler[int]) {}, nil)
	})
	assert.Panics(t, func() {
		Keyed[string, int](nil, "key")
	})
}

func TestNewAsyncAccessor(t *testing.T) {
	var (
		loaded = NewAsync[string]()
		a      = NewAsyncAccessor(
			func(h *AsyncHandler[string]) { loaded.Add(h) },
			func(h *AsyncHandler[string]) { loaded.Remove(h) },
		)
		got = make(chan string, 1)
		h   = AsyncFunc(func(_ context.Context, s string) error {
			got <- s
			return nil
		})
	)
	a.Subscribe(h)
	require.NoError(t, loaded.Invoke(context.Background(), "page"))
	assert.Equal(t, "page", <-got)
	a.Unsubscribe(h)
	assert.Equal(t, 0, loaded.Len())

	assert.Panics(t, func() {
		NewAsyncAccessor[int](nil, func(*AsyncHandler[int]) {})
	})
	assert.Panics(t, func() {
		NewAsyncAccessor[int](func(*AsyncHandler[int]) {}, nil)
	})
}

func TestHandlerConstructors(t *testing.T) {
	assert.Panics(t, func() { Func[int](nil) })
	assert.Panics(t, func() { Action[int](nil) })
	assert.Panics(t, func() { AsyncFunc[int](nil) })
	var nilKey *Key
	assert.Equal(t, "<nil key>", nilKey.String())
}
