// Package config provides the configuration loader for symcache.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the options from path. When path is empty, symcache.yaml is
// searched for from cwd upward; finding none yields empty options.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(cwd, path string) (domain.Options, error) {
	if path == "" {
		found, err := findConfiguration(cwd)
		if err != nil {
			return domain.Options{}, err
		}
		if found == "" {
			return domain.Options{}, nil
		}
		path = found
	}

	file, err := readSymfile(path)
	if err != nil {
		return domain.Options{}, zerr.With(err, "path", path)
	}

	var debounce time.Duration
	if file.Watch != nil && file.Watch.Debounce != "" {
		debounce, err = time.ParseDuration(file.Watch.Debounce)
		if err != nil {
			return domain.Options{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "watch.debounce", file.Watch.Debounce)
		}
	}

	if file.Version != "" && file.Version != "1" && l.Logger != nil {
		l.Logger.Warn("unknown " + domain.ConfigFileName + " version " + file.Version + ", reading as version 1")
	}

	return domain.Options{
		CacheName:        file.Cache.Name,
		SchemaVersion:    file.Cache.SchemaVersion,
		SourceBinaryPath: resolvePath(path, file.Cache.SourceBinary),
		DataDirectory:    resolvePath(path, file.Cache.DataDir),
		WatchDebounce:    debounce,
	}, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func readSymfile(path string) (*Symfile, error) {
	// #nosec G304 -- path is operator configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.Wrap(domain.ErrConfigNotFound, "configuration file does not exist")
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file Symfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &file, nil
}

func resolvePath(configPath, configured string) string {
	if configured == "" {
		return ""
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}
