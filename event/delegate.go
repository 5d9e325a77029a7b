package event

import (
	"iter"
	"slices"
)

// Delegate is an ordered invocation list of handler references.
// Entries keep subscription order, and duplicates are kept as separate entries.
//
// The zero value is an empty Delegate ready to use.
// A Delegate is not safe for concurrent mutation, see [VolatileEvent] for that.
type Delegate[H comparable] struct {
	list []H
}

// Add appends a handler to the end of the invocation list.
// Adding the zero value of H (a nil handler) does nothing.
func (d *Delegate[H]) Add(h H) {
	var zero H
	if h == zero {
		return
	}
	d.list = append(d.list, h)
}

// Remove detaches the last entry that is identical to h.
// Nothing happens if h is not in the invocation list.
func (d *Delegate[H]) Remove(h H) {
	for i := len(d.list) - 1; i >= 0; i-- {
		if d.list[i] == h {
			d.list = slices.Delete(d.list, i, i+1)
			return
		}
	}
}

// Contains reports whether h is in the invocation list.
func (d *Delegate[H]) Contains(h H) bool {
	if d == nil {
		return false
	}
	return slices.Contains(d.list, h)
}

// All iterates the handlers currently in the invocation list, in subscription order.
// The iterator may be used more than once, and reflects the list at the time iteration starts.
func (d *Delegate[H]) All() iter.Seq[H] {
	return func(yield func(H) bool) {
		if d == nil {
			return
		}
		for _, h := range d.list {
			if !yield(h) {
				return
			}
		}
	}
}

// Len returns the number of entries in the invocation list.
func (d *Delegate[H]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// InvocationList returns a copy of the invocation list, in invocation order.
// Changes to the Delegate don't affect the returned slice.
func (d *Delegate[H]) InvocationList() []H {
	if d == nil || len(d.list) == 0 {
		return nil
	}
	return slices.Clone(d.list)
}
