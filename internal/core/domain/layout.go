package domain

import "path/filepath"

const (
	// SymcacheDirName is the name of the metadata directory inside the data directory.
	SymcacheDirName = ".symcache"

	// StoreDirName is the name of the key-value store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "symcache.yaml"

	// StoreFileExt is the extension of a store namespace document.
	StoreFileExt = ".json"

	// LockFileExt is the extension of a store namespace lock file.
	LockFileExt = ".lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the store directory relative to a data directory.
// It joins .symcache and store.
func DefaultStorePath() string {
	return filepath.Join(SymcacheDirName, StoreDirName)
}

// StoreDir returns the absolute store directory for the given data directory.
func StoreDir(dataDir string) string {
	return filepath.Join(dataDir, DefaultStorePath())
}
