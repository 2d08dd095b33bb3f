package core

// KeyValueStore is the durable string store the TaskStore persists into.
// This interface is defined locally in core to avoid importing storage.
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
