// Package lifecycle owns the single search engine handle and the cache
// store handle that goes with it.
package lifecycle

import (
	"context"
	"errors"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/symcache/internal/engine/entrystore"
	"go.trai.ch/symcache/internal/engine/fingerprint"
)

// Config holds what a fresh acquisition needs besides its collaborators.
type Config struct {
	CacheName        string
	SchemaVersion    int
	SourceBinaryPath string
	DataDirectory    string
	// OnStoreOpen runs after the fingerprint check on every newly opened,
	// enabled store. An error fails the acquisition.
	OnStoreOpen func(kv ports.KVStore) error
}

// Manager creates the engine lazily, reuses it while it stays valid for the
// same loader, and tears it down together with the store.
// It is not safe for concurrent use.
type Manager struct {
	cfg     Config
	opener  ports.KVOpener
	factory ports.EngineFactory
	guard   *fingerprint.Guard
	logger  ports.Logger

	engine   ports.Engine
	store    *entrystore.Store
	loaderID string
	report   fingerprint.Report
}

// New creates a Manager. Nothing is opened until Acquire.
func New(cfg Config, opener ports.KVOpener, factory ports.EngineFactory, guard *fingerprint.Guard, logger ports.Logger) *Manager {
	return &Manager{
		cfg:     cfg,
		opener:  opener,
		factory: factory,
		guard:   guard,
		logger:  logger,
	}
}

// Acquire returns a valid engine bound to loader and the store to use with it.
// A different loader closes the current handles first. A new acquisition
// opens the store, enforces the fingerprint, then opens the engine.
func (m *Manager) Acquire(ctx context.Context, loader ports.Loader) (ports.Engine, *entrystore.Store, error) {
	if m.engine != nil {
		if m.loaderID == loader.ID() && m.engine.Valid() {
			return m.engine, m.store, nil
		}
		if err := m.Close(); err != nil {
			m.warn("closing stale engine: " + err.Error())
		}
	}

	store, err := m.openStore()
	if err != nil {
		return nil, nil, err
	}

	engine, err := m.factory.Open(ctx, loader)
	if err != nil {
		_ = store.Close()
		return nil, nil, errors.Join(domain.ErrEngineOpenFailed, err)
	}

	m.engine = engine
	m.store = store
	m.loaderID = loader.ID()
	return engine, store, nil
}

// openStore opens the store and enforces the fingerprint on it. A store
// whose fingerprint cannot be computed or enforced is disabled.
func (m *Manager) openStore() (*entrystore.Store, error) {
	store := entrystore.Open(m.opener, m.cfg.DataDirectory, m.cfg.CacheName, m.logger)
	if !store.Enabled() {
		m.report = fingerprint.Report{}
		return store, nil
	}

	live, err := m.guard.Compute(m.cfg.SchemaVersion, m.cfg.SourceBinaryPath)
	if err == nil {
		m.report, err = m.guard.Enforce(store.KV(), live)
	}
	if err != nil {
		_ = store.Close()
		m.warn("caching disabled: " + err.Error())
		return entrystore.Disabled(err), nil
	}

	if m.cfg.OnStoreOpen != nil {
		if err := m.cfg.OnStoreOpen(store.KV()); err != nil {
			_ = store.Close()
			return nil, err
		}
	}
	return store, nil
}

// Close releases the engine, then the store. It is a no-op when nothing is open.
func (m *Manager) Close() error {
	var errs []error
	if m.engine != nil {
		errs = append(errs, m.engine.Close())
		m.engine = nil
	}
	if m.store != nil {
		errs = append(errs, m.store.Close())
		m.store = nil
	}
	m.loaderID = ""
	return errors.Join(errs...)
}

// Status reports whether the current store is open, disabled or closed.
func (m *Manager) Status() domain.StoreStatus {
	switch {
	case m.store == nil:
		return domain.StoreClosed
	case m.store.Enabled():
		return domain.StoreReady
	default:
		return domain.StoreDisabled
	}
}

// Report returns the fingerprint report of the last acquisition.
func (m *Manager) Report() fingerprint.Report {
	return m.report
}

func (m *Manager) warn(msg string) {
	if m.logger != nil {
		m.logger.Warn(msg)
	}
}
