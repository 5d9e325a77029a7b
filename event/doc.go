/*
Package event provides multicast events: ordered lists of handlers that are subscribed, unsubscribed, and invoked together.

# Events

An [Event] holds [Handler] values created with [Func] or [Action].
Handlers are matched by pointer identity, so keep the *Handler around to unsubscribe it later.

	changed := event.New[string]()
	logChange := event.Action(func(key string) {
		fmt.Println("changed:", key)
	})
	changed = changed.Add(logChange)
	_ = changed.Invoke("name") // changed: name
	changed = changed.Remove(logChange)

Handlers are called in subscription order on the invoking goroutine.
The invocation list is copied before calling anything, so a handler that subscribes or unsubscribes only changes later invocations.
The first error returned from a handler stops the invocation and is returned unchanged.
Removing a handler removes its most recent subscription only.

An [AsyncEvent] runs every [AsyncHandler] in its own goroutine and waits for all of them.
A failing handler doesn't stop the others, and the first error is returned once all are finished.

A [VolatileEvent] synchronizes subscription and invocation for use across goroutines.
Read operations are left to the caller to synchronize with [VolatileEvent.Locker].

# Storing many events

A type with many events that are rarely subscribed doesn't have to allocate all of them up front.
A [HandlerCollection] creates events by key when the first handler is added.
[HandlerList] is a linked list that's cheap for few keys, and [HandlerDict] is a map that's faster for many keys.
[ConcurrentHandlerList] and [ConcurrentHandlerDict] are safe for concurrent use.

[Properties] does the same by event name, with a [Property] declared for each event.
Reading an event that was never subscribed returns a shared empty sentinel (see [Empty]) instead of nil, and subscribing replaces the sentinel with a real event.

[Accessor] and [AsyncAccessor] expose subscription to any of these without exposing invocation.

# Dynamic arguments

Events that share one argument type but carry differently shaped data can use [Args].
[Checked] wraps a handler with an [ArgSchema] so that malformed arguments fail the invocation before the handler body runs.
*/
package event
