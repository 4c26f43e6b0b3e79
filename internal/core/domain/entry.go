package domain

import "go.trai.ch/zerr"

// CacheEntry is the persisted form of a search result.
// Exactly one of Descriptor and Descriptors is populated.
type CacheEntry struct {
	Kind        Kind     `json:"kind"`
	Descriptor  string   `json:"descriptor,omitempty"`
	Descriptors []string `json:"descriptors,omitempty"`
}

// IsList reports whether the entry holds a list payload.
func (e CacheEntry) IsList() bool {
	return len(e.Descriptors) > 0
}

// Validate checks the payload invariant of the entry.
func (e CacheEntry) Validate() error {
	if !e.Kind.Valid() {
		return zerr.Wrap(ErrInvalidEntry, "entry has no kind")
	}

	single := e.Descriptor != ""
	list := len(e.Descriptors) > 0
	if single == list {
		return zerr.With(zerr.Wrap(ErrInvalidEntry, "entry must hold exactly one payload"), "kind", e.Kind.String())
	}

	for i, d := range e.Descriptors {
		if d == "" {
			return zerr.With(zerr.Wrap(ErrInvalidEntry, "entry holds an empty descriptor"), "index", i)
		}
	}
	return nil
}

// Payload returns the stored descriptor strings in order.
func (e CacheEntry) Payload() []string {
	if e.IsList() {
		return e.Descriptors
	}
	return []string{e.Descriptor}
}
