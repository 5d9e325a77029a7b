package event

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
)

var (
	testChanged = Declare[string]("changed")
	testInput   = Declare[int]("input")
	testLoaded  = DeclareAsync[string]("loaded")
)

type publisher struct {
	events Properties
}

func (p *publisher) Changed() Accessor[string] {
	return testChanged.Accessor(&p.events)
}

func TestProperty_Sentinel(t *testing.T) {
	var p publisher
	first := testChanged.Get(&p.events)
	second := testChanged.Get(&p.events)
	assert.Same(t, first, second, "Unset properties should read the same sentinel")
	assert.True(t, first.IsEmptySentinel())
	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 0, p.events.Len())

	h := Action(func(string) {})
	testChanged.Add(&p.events, h)
	testChanged.Remove(&p.events, h)
	e := testChanged.Get(&p.events)
	assert.False(t, e.IsEmptySentinel(), "A subscribe and unsubscribe cycle leaves a real event")
	assert.Equal(t, 0, e.Len())
	assert.Same(t, e, testChanged.Get(&p.events))

	testChanged.Delete(&p.events)
	assert.Same(t, first, testChanged.Get(&p.events), "Deleting should revert to the sentinel")
}

func TestProperty_Lazy(t *testing.T) {
	var (
		p     publisher
		r     recorder[string]
		h     = r.handler()
		input = Action(func(int) {})
	)
	testInput.Remove(&p.events, input)
	assert.Equal(t, 0, p.events.Len(), "Removing from an unset property should not create an event")

	p.Changed().Subscribe(h)
	assert.Equal(t, 1, p.events.Len())
	assert.True(t, testInput.Get(&p.events).IsEmptySentinel())
	require.NoError(t, testChanged.Invoke(&p.events, "value"))
	assert.Equal(t, []string{"value"}, r.calls)
	assert.NoError(t, testInput.Invoke(&p.events, 1), "Invoking an unset property is a no-op")

	p.Changed().Unsubscribe(h)
	require.NoError(t, testChanged.Invoke(&p.events, "again"))
	assert.Equal(t, []string{"value"}, r.calls)
}

func TestProperty_Set(t *testing.T) {
	var (
		props Properties
		h     = Action(func(string) {})
	)
	e := New(h)
	testChanged.Set(&props, e)
	assert.Same(t, e, testChanged.Get(&props))
	testChanged.Set(&props, Empty[string]())
	assert.True(t, testChanged.Get(&props).IsEmptySentinel())
	testChanged.Set(&props, New[string]())
	assert.False(t, testChanged.Get(&props).IsEmptySentinel(), "Empty events are kept by default")
	testChanged.Set(&props, nil)
	assert.Equal(t, 0, props.Len())
}

func TestProperty_DeleteEmpty(t *testing.T) {
	props := NewProperties(DeleteEmpty())
	h := Action(func(string) {})
	testChanged.Add(props, h)
	testChanged.Add(props, h)
	testChanged.Remove(props, h)
	assert.Equal(t, 1, testChanged.Get(props).Len())
	testChanged.Remove(props, h)
	assert.True(t, testChanged.Get(props).IsEmptySentinel(), "Removing the last handler should delete the event")
	assert.Equal(t, 0, props.Len())

	testChanged.Set(props, New[string]())
	assert.Equal(t, 0, props.Len())
}

func TestProperty_TypeMismatch(t *testing.T) {
	var props Properties
	conflicting := Declare[int]("changed")
	testChanged.Add(&props, Action(func(string) {}))
	assert.Panics(t, func() {
		conflicting.Get(&props)
	})
	assert.Panics(t, func() {
		Declare[int]("")
	})
	assert.Equal(t, "changed", conflicting.Name())
}

func TestAsyncProperty(t *testing.T) {
	var (
		props Properties
		calls atomic.Int32
		h     = AsyncFunc(func(ctx context.Context, s string) error {
			calls.Add(1)
			return nil
		})
	)
	sentinel := testLoaded.Get(&props)
	assert.Same(t, EmptyAsync[string](), sentinel)
	assert.NoError(t, testLoaded.Invoke(context.Background(), &props, ""))

	testLoaded.Add(&props, h)
	testLoaded.Add(&props, h)
	require.NoError(t, testLoaded.Invoke(context.Background(), &props, "x"))
	assert.Equal(t, int32(2), calls.Load())

	testLoaded.Remove(&props, h)
	testLoaded.Remove(&props, h)
	e := testLoaded.Get(&props)
	assert.False(t, e.IsEmptySentinel())
	assert.Equal(t, 0, e.Len())
	testLoaded.Delete(&props)
	assert.Same(t, sentinel, testLoaded.Get(&props))
	assert.Equal(t, "loaded", testLoaded.Name())
}

func TestAsyncProperty_Accessor(t *testing.T) {
	var (
		p     publisher
		calls atomic.Int32
		h     = AsyncFunc(func(context.Context, string) error {
			calls.Add(1)
			return nil
		})
		loaded = testLoaded.Accessor(&p.events)
	)
	assert.Equal(t, 0, p.events.Len(), "Creating an accessor should not create the event")
	loaded.Subscribe(h)
	assert.Equal(t, 1, p.events.Len())
	require.NoError(t, testLoaded.Invoke(context.Background(), &p.events, "x"))
	assert.Equal(t, int32(1), calls.Load())

	loaded.Unsubscribe(h)
	assert.Equal(t, 0, testLoaded.Get(&p.events).Len())
	require.NoError(t, testLoaded.Invoke(context.Background(), &p.events, "y"))
	assert.Equal(t, int32(1), calls.Load())
}
