// Package lookup implements the cached symbol lookup.
package lookup

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/symcache/internal/engine/codec"
	"go.trai.ch/symcache/internal/engine/entrystore"
	"go.trai.ch/symcache/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// Span attribute keys.
const (
	AttrKey   = "symcache.key"
	AttrList  = "symcache.list"
	AttrHit   = "symcache.hit"
	AttrKind  = "symcache.kind"
	AttrCount = "symcache.count"
)

// Resolver answers lookups from the cache, falling back to a caller search
// on a miss. Calls are serialized.
type Resolver struct {
	mu        sync.Mutex
	lifecycle *lifecycle.Manager
	codec     *codec.Codec
	tracer    ports.Tracer
	logger    ports.Logger
}

// New creates a Resolver. logger may be nil.
func New(manager *lifecycle.Manager, c *codec.Codec, tracer ports.Tracer, logger ports.Logger) *Resolver {
	return &Resolver{
		lifecycle: manager,
		codec:     c,
		tracer:    tracer,
		logger:    logger,
	}
}

// Find returns the single symbol cached under key, or runs search and caches
// its result. An empty key disables caching for the call.
func (r *Resolver) Find(ctx context.Context, key string, loader ports.Loader, search ports.Search) (domain.Symbol, error) {
	syms, err := r.lookup(ctx, key, loader, search, false)
	if err != nil {
		return nil, err
	}
	return syms[0], nil
}

// FindAll is like Find for list results. Order is preserved.
func (r *Resolver) FindAll(ctx context.Context, key string, loader ports.Loader, search ports.Search) ([]domain.Symbol, error) {
	return r.lookup(ctx, key, loader, search, true)
}

// Close releases the engine and the store and forgets resolved symbols.
// It is safe to call repeatedly.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codec.Purge()
	return r.lifecycle.Close()
}

// Status reports the state of the cache store.
func (r *Resolver) Status() domain.StoreStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lifecycle.Status()
}

func (r *Resolver) lookup(ctx context.Context, key string, loader ports.Loader, search ports.Search, list bool) ([]domain.Symbol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, span := r.tracer.Start(ctx, "symcache.lookup",
		ports.WithAttribute(AttrKey, key),
		ports.WithAttribute(AttrList, list),
	)
	defer span.End()

	syms, err := r.resolve(ctx, span, key, loader, search, list)
	if err != nil {
		span.RecordError(err)
		if key != "" {
			err = zerr.With(err, "key", key)
		}
		return nil, err
	}
	span.SetAttribute(AttrCount, len(syms))
	return syms, nil
}

func (r *Resolver) resolve(
	ctx context.Context,
	span ports.Span,
	key string,
	loader ports.Loader,
	search ports.Search,
	list bool,
) ([]domain.Symbol, error) {
	engine, store, err := r.lifecycle.Acquire(ctx, loader)
	if err != nil {
		return nil, err
	}

	if key != "" {
		entry, err := store.Get(key)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			span.SetAttribute(AttrHit, true)
			span.SetAttribute(AttrKind, entry.Kind.String())
			return r.rehydrate(*entry, loader, list)
		}
	}
	span.SetAttribute(AttrHit, false)

	result, err := search(ctx, engine)
	if err != nil {
		return nil, err
	}

	kind, err := result.Kind()
	if err != nil {
		return nil, err
	}
	if result.IsList() != list {
		return nil, mismatch(list, "search")
	}
	span.SetAttribute(AttrKind, kind.String())

	syms, err := r.codec.ResolveAll(result.Descriptors(), loader)
	if err != nil {
		return nil, errors.Join(domain.ErrResolutionFailed, err)
	}

	if key != "" && kind != domain.KindUnknown {
		r.persist(store, key, kind, result)
	}
	return syms, nil
}

func (r *Resolver) rehydrate(entry domain.CacheEntry, loader ports.Loader, list bool) ([]domain.Symbol, error) {
	if entry.IsList() != list {
		return nil, mismatch(list, "cached entry")
	}

	ds, err := r.codec.DecodeEntry(entry)
	if err != nil {
		return nil, errors.Join(domain.ErrResolutionFailed, err)
	}
	syms, err := r.codec.ResolveAll(ds, loader)
	if err != nil {
		return nil, errors.Join(domain.ErrResolutionFailed, err)
	}
	return syms, nil
}

// persist writes result under key. Failures are logged, not returned.
func (r *Resolver) persist(store *entrystore.Store, key string, kind domain.Kind, result domain.Result) {
	if !store.Enabled() {
		return
	}

	encoded, err := r.codec.EncodeAll(result.Descriptors())
	if err == nil {
		entry := domain.CacheEntry{Kind: kind}
		if result.IsList() {
			entry.Descriptors = encoded
		} else {
			entry.Descriptor = encoded[0]
		}
		err = store.Put(key, entry)
	}
	if err != nil && r.logger != nil {
		r.logger.Warn("failed to cache lookup " + key + ": " + err.Error())
	}
}

func mismatch(wantList bool, source string) error {
	want, got := "single", "list"
	if wantList {
		want, got = "list", "single"
	}
	return zerr.With(
		zerr.With(zerr.Wrap(domain.ErrTypeMismatch, source+" does not match the requested arity"), "requested", want),
		"found", got,
	)
}
