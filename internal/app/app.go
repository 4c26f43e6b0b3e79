// Package app implements the application layer for the symcache command.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/symcache/internal/engine/fingerprint"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.KVOpener
	guard        *fingerprint.Guard
	watcher      ports.Watcher
	tracer       ports.Tracer
	logger       ports.Logger
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.KVOpener,
	guard *fingerprint.Guard,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		guard:        guard,
		watcher:      watcher,
		tracer:       tracer,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects report output.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir sets the directory configuration discovery starts from.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// SetJSONLog switches the logger to JSON output when it supports it.
func (a *App) SetJSONLog(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Settings selects the configuration file and the values that override it.
type Settings struct {
	// ConfigPath is an explicit configuration file. Empty means discover.
	ConfigPath string
	// Overrides are applied on top of the file.
	Overrides domain.Options
}

// options loads the configuration, applies overrides and defaults, and
// checks what the command needs.
func (a *App) options(s Settings, needBinary bool) (domain.Options, error) {
	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return domain.Options{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
	}

	fromFile, err := a.configLoader.Load(cwd, s.ConfigPath)
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load configuration")
	}

	overrides := s.Overrides
	overrides.DataDirectory = absolute(cwd, overrides.DataDirectory)
	overrides.SourceBinaryPath = absolute(cwd, overrides.SourceBinaryPath)

	opts := fromFile.Merge(overrides).WithDefaults()
	if needBinary {
		return opts, opts.Validate()
	}
	if opts.DataDirectory == "" {
		return opts, zerr.With(zerr.Wrap(domain.ErrConfiguration, "missing required option"), "option", "data_dir")
	}
	return opts, nil
}

// openStore opens the configured namespace. Unlike lookups, commands fail
// when the store is unavailable.
func (a *App) openStore(opts domain.Options) (ports.KVStore, error) {
	kv, err := a.opener.Open(domain.StoreDir(opts.DataDirectory), opts.CacheName)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreUnavailable, err), "cache", opts.CacheName)
	}
	return kv, nil
}

func absolute(cwd, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

// closeStore closes kv, folding a close failure into err.
func closeStore(kv ports.KVStore, err *error) {
	if cerr := kv.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

// detach returns a context that is not cancelled with ctx. Used for cleanup
// that must run after a signal.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
