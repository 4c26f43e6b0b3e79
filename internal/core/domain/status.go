package domain

// StoreStatus reports whether lookups are backed by the persistent store.
type StoreStatus uint8

const (
	// StoreClosed means no store handle is open.
	StoreClosed StoreStatus = iota
	// StoreReady means the store is open and entries are read and written.
	StoreReady
	// StoreDisabled means the store failed to open and caching is off.
	StoreDisabled
)

// String returns a human-readable status.
func (s StoreStatus) String() string {
	switch s {
	case StoreReady:
		return "ready"
	case StoreDisabled:
		return "disabled"
	default:
		return "closed"
	}
}

// SnapshotEntry is one caller entry as seen by inspection.
type SnapshotEntry struct {
	Key   string
	Entry CacheEntry
	// Err is set when the stored value could not be decoded.
	Err error
}

// Snapshot is a point-in-time view of a store namespace.
type Snapshot struct {
	CacheName   string
	Fingerprint StoredFingerprint
	Entries     []SnapshotEntry
}
