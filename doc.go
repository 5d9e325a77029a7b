/*
Package delegate is the root of a small module for multicast events in a single process.

The [event] package has the event types, keyed handler collections, and lazily stored event properties.
The [observer] package builds an observable value on top of it.

[event]: github.com/saylorsolutions/delegate/event
[observer]: github.com/saylorsolutions/delegate/observer
*/
package delegate
