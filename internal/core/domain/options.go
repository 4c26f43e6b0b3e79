package domain

import (
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultCacheName is the store namespace used when none is configured.
	DefaultCacheName = "symcache"

	// DefaultSchemaVersion is the schema version used when none is configured.
	DefaultSchemaVersion = 1
)

// Options configures a cache instance.
type Options struct {
	// CacheName is the store namespace.
	CacheName string
	// SchemaVersion is the caller-declared cache schema. Bumping it wipes the cache.
	SchemaVersion int
	// SourceBinaryPath is the binary whose identity is fingerprinted.
	SourceBinaryPath string
	// DataDirectory is the base path for the store.
	DataDirectory string
	// WatchDebounce coalesces binary change events in watch mode.
	WatchDebounce time.Duration
}

// WithDefaults returns a copy of o with empty fields defaulted.
func (o Options) WithDefaults() Options {
	if o.CacheName == "" {
		o.CacheName = DefaultCacheName
	}
	if o.SchemaVersion == 0 {
		o.SchemaVersion = DefaultSchemaVersion
	}
	return o
}

// Validate reports the first missing or invalid option.
func (o Options) Validate() error {
	switch {
	case o.SourceBinaryPath == "":
		return zerr.With(zerr.Wrap(ErrConfiguration, "missing required option"), "option", "source_binary")
	case o.DataDirectory == "":
		return zerr.With(zerr.Wrap(ErrConfiguration, "missing required option"), "option", "data_dir")
	case o.SchemaVersion < 0:
		return zerr.With(zerr.Wrap(ErrConfiguration, "schema version must not be negative"), "schema_version", o.SchemaVersion)
	}
	return nil
}

// Merge overlays the non-zero fields of other onto o.
func (o Options) Merge(other Options) Options {
	if other.CacheName != "" {
		o.CacheName = other.CacheName
	}
	if other.SchemaVersion != 0 {
		o.SchemaVersion = other.SchemaVersion
	}
	if other.SourceBinaryPath != "" {
		o.SourceBinaryPath = other.SourceBinaryPath
	}
	if other.DataDirectory != "" {
		o.DataDirectory = other.DataDirectory
	}
	if other.WatchDebounce != 0 {
		o.WatchDebounce = other.WatchDebounce
	}
	return o
}
