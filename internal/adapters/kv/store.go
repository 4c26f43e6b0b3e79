// Package kv implements a multi-process key-value store backed by one JSON
// document per namespace and an advisory file lock.
package kv

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.KVStore  = (*Store)(nil)
	_ ports.KVOpener = (*Opener)(nil)
)

// value is a single stored value. Exactly one field is set.
type value struct {
	String *string `json:"s,omitempty"`
	Int    *int    `json:"i,omitempty"`
}

type document map[string]value

// Opener opens store namespaces on the local filesystem.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the namespace under dir, creating the directory if needed.
// The document is read once so that an unreadable or corrupt store fails here.
func (o *Opener) Open(dir, namespace string) (ports.KVStore, error) {
	if namespace == "" || strings.ContainsAny(namespace, `/\`) || namespace == "." || namespace == ".." {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "invalid store namespace"), "namespace", namespace)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}

	s := &Store{
		dir:  dir,
		path: filepath.Join(dir, namespace+domain.StoreFileExt),
		lock: flock.New(filepath.Join(dir, namespace+domain.LockFileExt), flock.SetPermissions(domain.FilePerm)),
	}

	if err := s.view(func(document) {}); err != nil {
		_ = s.lock.Close()
		return nil, err
	}

	return s, nil
}

// Store is a namespace document guarded by an in-process mutex and a
// cross-process file lock. Every operation re-reads the document so writes
// from other processes are observed.
type Store struct {
	mu     sync.Mutex
	dir    string
	path   string
	lock   *flock.Flock
	closed bool
}

// Path returns the path of the namespace document.
func (s *Store) Path() string {
	return s.path
}

// Contains reports whether key holds a value.
func (s *Store) Contains(key string) (bool, error) {
	var ok bool
	err := s.view(func(doc document) {
		_, ok = doc[key]
	})
	return ok, err
}

// GetString returns the string stored at key.
func (s *Store) GetString(key string) (string, bool, error) {
	var (
		out   string
		found bool
		err   error
	)
	viewErr := s.view(func(doc document) {
		v, ok := doc[key]
		if !ok {
			return
		}
		if v.String == nil {
			err = zerr.With(zerr.Wrap(domain.ErrStoreWrongType, "expected a string"), "key", key)
			return
		}
		out, found = *v.String, true
	})
	if viewErr != nil {
		return "", false, viewErr
	}
	return out, found, err
}

// PutString stores a string at key.
func (s *Store) PutString(key, v string) error {
	return s.update(func(doc document) {
		doc[key] = value{String: &v}
	})
}

// GetInt returns the integer stored at key.
func (s *Store) GetInt(key string) (int, bool, error) {
	var (
		out   int
		found bool
		err   error
	)
	viewErr := s.view(func(doc document) {
		v, ok := doc[key]
		if !ok {
			return
		}
		if v.Int == nil {
			err = zerr.With(zerr.Wrap(domain.ErrStoreWrongType, "expected an integer"), "key", key)
			return
		}
		out, found = *v.Int, true
	})
	if viewErr != nil {
		return 0, false, viewErr
	}
	return out, found, err
}

// PutInt stores an integer at key.
func (s *Store) PutInt(key string, v int) error {
	return s.update(func(doc document) {
		doc[key] = value{Int: &v}
	})
}

// Keys returns every key in sorted order.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.view(func(doc document) {
		keys = make([]string, 0, len(doc))
		for k := range doc {
			keys = append(keys, k)
		}
		slices.Sort(keys)
	})
	return keys, err
}

// Clear removes every key in the namespace.
func (s *Store) Clear() error {
	return s.update(func(doc document) {
		clear(doc)
	})
}

// Close releases the lock file handle. Further calls fail with ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.lock.Close()
}

func (s *Store) view(fn func(document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}

	if err := s.lock.RLock(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreLockFailed.Error()), "path", s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()

	doc, err := s.read()
	if err != nil {
		return err
	}
	fn(doc)
	return nil
}

func (s *Store) update(fn func(document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}

	if err := s.lock.Lock(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreLockFailed.Error()), "path", s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()

	doc, err := s.read()
	if err != nil {
		return err
	}
	fn(doc)
	return s.write(doc)
}

func (s *Store) read() (document, error) {
	//nolint:gosec // Path is built from the configured data directory and namespace
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	doc := document{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCorrupt.Error()), "path", s.path)
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}
