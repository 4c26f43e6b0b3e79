package config

// Symfile represents the structure of the symcache.yaml configuration file.
type Symfile struct {
	Version string    `yaml:"version"`
	Cache   CacheDTO  `yaml:"cache"`
	Watch   *WatchDTO `yaml:"watch"`
}

// CacheDTO holds the cache options as written in the file.
type CacheDTO struct {
	Name          string `yaml:"name"`
	SchemaVersion int    `yaml:"schemaVersion"`
	SourceBinary  string `yaml:"sourceBinary"`
	DataDir       string `yaml:"dataDir"`
}

// WatchDTO configures the watch command.
type WatchDTO struct {
	// Debounce is a Go duration string, e.g. "250ms".
	Debounce string `yaml:"debounce"`
}
