package ports

// KVStore is a namespaced key-value store safe for use across processes.
//
//go:generate mockgen -source=kv.go -destination=mocks/mock_kv.go -package=mocks
type KVStore interface {
	// Contains reports whether key holds a value.
	Contains(key string) (bool, error)
	// GetString returns the string stored at key and whether it exists.
	GetString(key string) (string, bool, error)
	// PutString stores a string at key.
	PutString(key, value string) error
	// GetInt returns the integer stored at key and whether it exists.
	GetInt(key string) (int, bool, error)
	// PutInt stores an integer at key.
	PutInt(key string, value int) error
	// Keys returns every key in the namespace in sorted order.
	Keys() ([]string, error)
	// Clear removes every key in the namespace.
	Clear() error
	// Close releases the store. Further calls fail.
	Close() error
}

// KVOpener opens store namespaces.
type KVOpener interface {
	// Open opens the namespace under dir, creating it if needed.
	Open(dir, namespace string) (KVStore, error)
}
