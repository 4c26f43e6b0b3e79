// Package typeloader provides the loading context that turns qualified type
// names back into live reflect types.
//
// Go cannot load a type from its name at runtime, so every type that a
// cached descriptor may refer to must be registered up front. A registry is
// identified by an ID; lookups bound to a different ID belong to a
// different loading context and force the engine to be rebuilt.
package typeloader

import (
	"reflect"
	"sync"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxUnwrap bounds pointer unwrapping during normalization.
const maxUnwrap = 8

var _ ports.Loader = (*Registry)(nil)

// Registry is a ports.Loader backed by an explicit set of registered types.
// It is safe for concurrent use.
type Registry struct {
	id string

	mu     sync.RWMutex
	byName map[string]reflect.Type
	order  []reflect.Type
}

// New creates an empty registry with the given loader ID.
func New(id string) *Registry {
	return &Registry{
		id:     id,
		byName: make(map[string]reflect.Type),
	}
}

// ID returns the loader ID.
func (r *Registry) ID() string {
	return r.id
}

// Register registers the named types of the given sample values.
// Pointers are unwrapped to the nearest named type, so both T{} and (*T)(nil) register T.
func (r *Registry) Register(samples ...any) error {
	for _, v := range samples {
		if err := r.RegisterType(reflect.TypeOf(v)); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(samples ...any) *Registry {
	if err := r.Register(samples...); err != nil {
		panic(err)
	}
	return r
}

// Register registers T in r. Interface types are registered with this form.
func Register[T any](r *Registry) error {
	return r.RegisterType(reflect.TypeFor[T]())
}

// RegisterType registers t. Registering the same type twice is a no-op.
func (r *Registry) RegisterType(t reflect.Type) error {
	named, err := normalize(t)
	if err != nil {
		return err
	}
	name := domain.TypeName(named)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		if existing == named {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrTypeConflict, "conflicting registration"), "type", name)
	}

	r.byName[name] = named
	r.order = append(r.order, named)
	return nil
}

// LoadType returns the type registered under the qualified name.
func (r *Registry) LoadType(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	return t, ok
}

// Types returns every registered type in registration order.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// normalize unwraps pointers until it reaches a named, package-qualified type.
func normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, zerr.Wrap(domain.ErrInvalidType, "nil type")
	}

	cur := t
	for range maxUnwrap {
		if cur.Name() != "" {
			break
		}
		if cur.Kind() != reflect.Pointer {
			break
		}
		cur = cur.Elem()
	}

	if cur.Name() == "" || cur.PkgPath() == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidType, "type is not a named package type"), "type", t.String())
	}
	return cur, nil
}
