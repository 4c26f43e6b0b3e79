// Package symcache memoizes symbol lookups across process restarts.
//
// A lookup runs a caller-supplied search against the symbol engine once and
// persists the descriptor of what it found under a key. Later processes
// rehydrate the symbol from the descriptor without searching. The whole cache
// is discarded when the schema version, the host binary or the platform build
// changes.
//
//	cache, err := symcache.New(symcache.Options{
//		Loader:           registry,
//		SourceBinaryPath: os.Args[0],
//		DataDirectory:    dir,
//	})
//	if err != nil {
//		return err
//	}
//	defer cache.Close()
//
//	m, err := symcache.FindAs[symcache.Method](ctx, cache, "session.refresh",
//		func(ctx context.Context, e symcache.Engine) (symcache.Result, error) {
//			return symcache.Only(e.FindMethod(ctx, symcache.MethodQuery{Name: "Refresh"}))
//		})
package symcache

import (
	"context"

	"go.trai.ch/symcache/internal/adapters/kv"
	"go.trai.ch/symcache/internal/adapters/logger"
	"go.trai.ch/symcache/internal/adapters/probe"
	"go.trai.ch/symcache/internal/adapters/symindex"
	"go.trai.ch/symcache/internal/adapters/telemetry"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/engine/codec"
	"go.trai.ch/symcache/internal/engine/fingerprint"
	"go.trai.ch/symcache/internal/engine/lifecycle"
	"go.trai.ch/symcache/internal/engine/lookup"
	"go.trai.ch/zerr"
)

// Options configures a Cache.
type Options struct {
	// CacheName is the store namespace. Defaults to "symcache".
	CacheName string
	// SchemaVersion is the cache schema. Bumping it wipes the cache. Defaults to 1.
	SchemaVersion int
	// Loader is the default loading context. Required.
	Loader Loader
	// SourceBinaryPath is the binary whose identity is part of the fingerprint. Required.
	SourceBinaryPath string
	// DataDirectory is the base directory of the store. Required.
	DataDirectory string

	// Logger receives warnings. Defaults to a logger writing to stderr.
	Logger Logger
	// Tracer traces lookups. Defaults to the global OpenTelemetry provider.
	Tracer Tracer
	// Engine builds the search engine. Defaults to the in-process symbol index.
	Engine EngineFactory
	// OnStoreOpen runs on every freshly opened store after the fingerprint check.
	OnStoreOpen func(store KVStore) error
	// MemoSize bounds the in-memory resolved symbol cache.
	MemoSize int
}

// Cache is a symbol lookup cache. Its methods are safe for concurrent use
// and are serialized internally.
type Cache struct {
	loader   Loader
	resolver *lookup.Resolver
}

// New validates opts and creates a Cache. Nothing is opened until the first lookup.
func New(opts Options) (*Cache, error) {
	if opts.Loader == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "missing required option"), "option", "loader")
	}

	cfg := domain.Options{
		CacheName:        opts.CacheName,
		SchemaVersion:    opts.SchemaVersion,
		SourceBinaryPath: opts.SourceBinaryPath,
		DataDirectory:    opts.DataDirectory,
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.New()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NewOTelTracer(telemetry.InstrumentationName)
	}
	factory := opts.Engine
	if factory == nil {
		factory = symindex.NewFactory()
	}

	c, err := codec.New(opts.MemoSize)
	if err != nil {
		return nil, err
	}

	guard := fingerprint.NewGuard(probe.NewHost(), probe.NewPlatform(), log)
	manager := lifecycle.New(lifecycle.Config{
		CacheName:        cfg.CacheName,
		SchemaVersion:    cfg.SchemaVersion,
		SourceBinaryPath: cfg.SourceBinaryPath,
		DataDirectory:    cfg.DataDirectory,
		OnStoreOpen:      opts.OnStoreOpen,
	}, kv.NewOpener(), factory, guard, log)

	return &Cache{
		loader:   opts.Loader,
		resolver: lookup.New(manager, c, tracer, log),
	}, nil
}

// Find returns the single symbol cached under key, running search on a miss.
// An empty key runs search every time and caches nothing.
func (c *Cache) Find(ctx context.Context, key string, search Search) (Symbol, error) {
	return c.resolver.Find(ctx, key, c.loader, search)
}

// FindIn is like Find with an explicit loading context. A loader with a
// different ID than the previous lookup rebuilds the engine.
func (c *Cache) FindIn(ctx context.Context, key string, loader Loader, search Search) (Symbol, error) {
	return c.resolver.Find(ctx, key, loader, search)
}

// FindAll returns the ordered list of symbols cached under key, running search on a miss.
func (c *Cache) FindAll(ctx context.Context, key string, search Search) ([]Symbol, error) {
	return c.resolver.FindAll(ctx, key, c.loader, search)
}

// FindAllIn is like FindAll with an explicit loading context.
func (c *Cache) FindAllIn(ctx context.Context, key string, loader Loader, search Search) ([]Symbol, error) {
	return c.resolver.FindAll(ctx, key, loader, search)
}

// Status reports whether lookups are backed by the store.
func (c *Cache) Status() StoreStatus {
	return c.resolver.Status()
}

// CachingEnabled reports whether the store is open and in use.
// It is false before the first lookup and after Close.
func (c *Cache) CachingEnabled() bool {
	return c.Status() == StoreReady
}

// Close releases the engine and the store. It may be called any number of times.
func (c *Cache) Close() error {
	return c.resolver.Close()
}

// FindAs is like Cache.Find and asserts the symbol kind.
func FindAs[T Symbol](ctx context.Context, c *Cache, key string, search Search) (T, error) {
	var zero T
	sym, err := c.Find(ctx, key, search)
	if err != nil {
		return zero, err
	}
	typed, ok := sym.(T)
	if !ok {
		return zero, kindMismatch[T](sym)
	}
	return typed, nil
}

// FindAllAs is like Cache.FindAll and asserts the symbol kind of every element.
func FindAllAs[T Symbol](ctx context.Context, c *Cache, key string, search Search) ([]T, error) {
	syms, err := c.FindAll(ctx, key, search)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(syms))
	for _, sym := range syms {
		typed, ok := sym.(T)
		if !ok {
			return nil, kindMismatch[T](sym)
		}
		out = append(out, typed)
	}
	return out, nil
}

func kindMismatch[T Symbol](got Symbol) error {
	var want T
	return zerr.With(
		zerr.With(zerr.Wrap(domain.ErrTypeMismatch, "symbol kind does not match the requested type"), "requested", want.Kind().String()),
		"found", got.Kind().String(),
	)
}
