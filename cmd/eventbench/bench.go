package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/delegate/event"
	"runtime"
	"slices"
	"time"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidParams     = errors.New("invalid benchmark parameters")
)

var collectionFactories = map[string]func() event.HandlerCollection[int, int]{
	"list":            func() event.HandlerCollection[int, int] { return event.NewHandlerList[int, int]() },
	"dict":            func() event.HandlerCollection[int, int] { return event.NewHandlerDict[int, int]() },
	"concurrent-list": func() event.HandlerCollection[int, int] { return event.NewConcurrentHandlerList[int, int]() },
	"concurrent-dict": func() event.HandlerCollection[int, int] { return event.NewConcurrentHandlerDict[int, int]() },
}

func collectionNames() []string {
	names := make([]string, 0, len(collectionFactories))
	for name := range collectionFactories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type params struct {
	keys     int
	handlers int
	rounds   int
}

func (p params) validate() error {
	if p.keys < 1 || p.handlers < 1 || p.rounds < 1 {
		return fmt.Errorf("%w: keys, handlers, and rounds must all be >= 1", ErrInvalidParams)
	}
	return nil
}

type result struct {
	collection string
	populate   time.Duration
	invoke     time.Duration
	heapBytes  uint64
	calls      int
}

// perInvoke is the average time of a single keyed invocation.
func (r result) perInvoke(p params) time.Duration {
	return r.invoke / time.Duration(p.keys*p.rounds)
}

func heapAlloc() uint64 {
	runtime.GC()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}

func measure(ctx context.Context, name string, p params) (result, error) {
	create, ok := collectionFactories[name]
	if !ok {
		return result{}, fmt.Errorf("%w '%s', expected one of %v", ErrUnknownCollection, name, collectionNames())
	}
	res := result{collection: name}
	handlers := make([]*event.Handler[int], p.handlers)
	for i := range handlers {
		handlers[i] = event.Action(func(int) {
			res.calls++
		})
	}

	before := heapAlloc()
	start := time.Now()
	collection := create()
	for key := 0; key < p.keys; key++ {
		for _, h := range handlers {
			collection.AddHandler(key, h)
		}
	}
	res.populate = time.Since(start)
	after := heapAlloc()
	if after > before {
		res.heapBytes = after - before
	}

	start = time.Now()
	for round := 0; round < p.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		for key := 0; key < p.keys; key++ {
			if err := collection.Invoke(key, round); err != nil {
				return res, err
			}
		}
	}
	res.invoke = time.Since(start)
	runtime.KeepAlive(collection)
	return res, nil
}
