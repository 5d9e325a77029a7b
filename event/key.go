package event

// Key is an opaque token for use with a [HandlerCollection].
// Keys are compared by pointer identity, so a package may keep its keys private and be sure no other code can raise or subscribe to its events through a shared collection.
type Key struct {
	name string
}

// NewKey creates a unique [Key].
// The name is only used for display, two keys with the same name are still different keys.
func NewKey(name string) *Key {
	return &Key{name: name}
}

func (k *Key) String() string {
	if k == nil {
		return "<nil key>"
	}
	return k.name
}
