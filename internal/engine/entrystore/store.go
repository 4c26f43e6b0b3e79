// Package entrystore persists cache entries in the key-value store and
// degrades to a disabled store when the backing store cannot be opened.
package entrystore

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store maps caller keys to cache entries.
// A disabled store reports every key as absent and drops every write.
type Store struct {
	kv     ports.KVStore
	cause  error
	closed bool
}

// Open opens the store namespace name under the data directory.
// When the backing store fails to open, a warning is logged and a disabled
// store is returned.
func Open(opener ports.KVOpener, dataDir, name string, logger ports.Logger) *Store {
	kv, err := opener.Open(domain.StoreDir(dataDir), name)
	if err != nil {
		if logger != nil {
			logger.Warn("caching disabled: " + err.Error())
		}
		return Disabled(err)
	}
	return &Store{kv: kv}
}

// Disabled returns a store that caches nothing, recording cause.
func Disabled(cause error) *Store {
	return &Store{cause: errors.Join(domain.ErrStoreUnavailable, cause)}
}

// New wraps an already open key-value store.
func New(kv ports.KVStore) *Store {
	return &Store{kv: kv}
}

// Enabled reports whether entries are read and written.
func (s *Store) Enabled() bool {
	return s.kv != nil
}

// Cause returns why the store is disabled, or nil.
func (s *Store) Cause() error {
	return s.cause
}

// KV returns the backing store, or nil when disabled.
func (s *Store) KV() ports.KVStore {
	return s.kv
}

// Get returns the entry stored at key, or nil when there is none.
func (s *Store) Get(key string) (*domain.CacheEntry, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, nil
	}

	raw, ok, err := s.kv.GetString(key)
	if err != nil {
		return nil, zerr.With(err, "key", key)
	}
	if !ok {
		return nil, nil
	}

	entry, err := decode(raw)
	if err != nil {
		return nil, zerr.With(err, "key", key)
	}
	return &entry, nil
}

// Put stores entry at key. It is a no-op when the store is disabled.
func (s *Store) Put(key string, entry domain.CacheEntry) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return zerr.With(err, "key", key)
	}
	if !s.Enabled() {
		return nil
	}

	data, err := encode(entry)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEntryMarshalFailed.Error()), "key", key)
	}
	if err := s.kv.PutString(key, data); err != nil {
		return zerr.With(err, "key", key)
	}
	return nil
}

// Clear removes every entry and every fingerprint field.
func (s *Store) Clear() error {
	if !s.Enabled() {
		return nil
	}
	return s.kv.Clear()
}

// Entries returns every caller entry in key order. Entries that fail to
// decode are reported with Err set.
func (s *Store) Entries() ([]domain.SnapshotEntry, error) {
	if !s.Enabled() {
		return nil, nil
	}

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}

	out := make([]domain.SnapshotEntry, 0, len(keys))
	for _, key := range keys {
		if domain.IsReservedKey(key) {
			continue
		}
		item := domain.SnapshotEntry{Key: key}
		raw, _, err := s.kv.GetString(key)
		if err == nil {
			item.Entry, err = decode(raw)
		}
		item.Err = err
		out = append(out, item)
	}
	return out, nil
}

// Close releases the backing store. Closing a disabled or closed store is a no-op.
func (s *Store) Close() error {
	if !s.Enabled() || s.closed {
		return nil
	}
	s.closed = true
	return s.kv.Close()
}

func checkKey(key string) error {
	if domain.IsReservedKey(key) {
		return zerr.With(zerr.Wrap(domain.ErrReservedKey, "key is used by the fingerprint"), "key", key)
	}
	return nil
}

// encode marshals entry without HTML escaping so descriptors such as
// "T->M(chan<- int)" are stored verbatim.
func encode(entry domain.CacheEntry) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func decode(raw string) (domain.CacheEntry, error) {
	var entry domain.CacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.CacheEntry{}, errors.Join(domain.ErrInvalidEntry, err)
	}
	if err := entry.Validate(); err != nil {
		return domain.CacheEntry{}, err
	}
	return entry, nil
}
