// Package symindex implements the symbol search engine as an in-memory index
// over the types of a loading context.
package symindex

import (
	"context"
	"reflect"
	"slices"
	"sync"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Engine        = (*Index)(nil)
	_ ports.EngineFactory = (*Factory)(nil)
)

// Factory builds indexes over a loader.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open indexes every type currently registered in loader.
func (f *Factory) Open(ctx context.Context, loader ports.Loader) (ports.Engine, error) {
	if loader == nil {
		return nil, zerr.Wrap(domain.ErrEngineOpenFailed, "no loader")
	}

	types := loader.Types()
	idx := &Index{classes: make([]class, 0, len(types))}
	for _, t := range types {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, domain.ErrEngineOpenFailed.Error())
		}
		idx.classes = append(idx.classes, newClass(t))
	}
	return idx, nil
}

// class is one indexed type with its members.
type class struct {
	typ     reflect.Type
	name    string
	methods []reflect.Method
	fields  []reflect.StructField
}

func newClass(t reflect.Type) class {
	c := class{typ: t, name: domain.TypeName(t)}

	// Methods with pointer receivers are only in the method set of *T.
	set := t
	if t.Kind() != reflect.Interface {
		set = reflect.PointerTo(t)
	}
	for i := range set.NumMethod() {
		c.methods = append(c.methods, set.Method(i))
	}

	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			c.fields = append(c.fields, t.Field(i))
		}
	}
	return c
}

func (c class) implements(iface reflect.Type) bool {
	if c.typ.Implements(iface) {
		return true
	}
	return c.typ.Kind() != reflect.Interface && reflect.PointerTo(c.typ).Implements(iface)
}

func (c class) hasMethod(name string) bool {
	return slices.ContainsFunc(c.methods, func(m reflect.Method) bool { return m.Name == name })
}

func (c class) hasField(name string) bool {
	return slices.ContainsFunc(c.fields, func(f reflect.StructField) bool { return f.Name == name })
}

// params returns the parameter types of m without the receiver.
func (c class) params(m reflect.Method) []reflect.Type {
	start := 0
	if c.typ.Kind() != reflect.Interface {
		start = 1
	}
	out := make([]reflect.Type, 0, m.Type.NumIn()-start)
	for i := start; i < m.Type.NumIn(); i++ {
		out = append(out, m.Type.In(i))
	}
	return out
}

func results(m reflect.Method) []reflect.Type {
	out := make([]reflect.Type, 0, m.Type.NumOut())
	for i := range m.Type.NumOut() {
		out = append(out, m.Type.Out(i))
	}
	return out
}

// Index answers queries over a fixed set of types.
type Index struct {
	mu      sync.RWMutex
	classes []class
	closed  bool
}

// Valid reports whether the index is still open.
func (x *Index) Valid() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return !x.closed
}

// Close releases the index. It is safe to call more than once.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.closed = true
	x.classes = nil
	return nil
}

// Size returns the number of indexed types.
func (x *Index) Size() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.classes)
}

// FindClass returns the classes matching q in registration order.
func (x *Index) FindClass(ctx context.Context, q domain.ClassQuery) ([]domain.Descriptor, error) {
	match, err := compileClass(q)
	if err != nil {
		return nil, err
	}

	var out []domain.Descriptor
	err = x.scan(ctx, match, func(c class) {
		out = append(out, domain.ClassDescriptor(c.typ))
	})
	return out, err
}

// FindMethod returns the methods matching q, grouped by declaring class.
func (x *Index) FindMethod(ctx context.Context, q domain.MethodQuery) ([]domain.Descriptor, error) {
	match, err := compileClass(q.Declaring)
	if err != nil {
		return nil, err
	}
	name, err := compileName(q.Name, q.NamePattern)
	if err != nil {
		return nil, err
	}

	var out []domain.Descriptor
	err = x.scan(ctx, match, func(c class) {
		for _, m := range c.methods {
			if !name(m.Name) {
				continue
			}
			if q.Params != nil && !slices.Equal(c.params(m), q.Params) {
				continue
			}
			if q.Results != nil && !slices.Equal(results(m), q.Results) {
				continue
			}
			out = append(out, domain.MethodDescriptor(c.typ, m))
		}
	})
	return out, err
}

// FindField returns the fields matching q, grouped by declaring class.
func (x *Index) FindField(ctx context.Context, q domain.FieldQuery) ([]domain.Descriptor, error) {
	match, err := compileClass(q.Declaring)
	if err != nil {
		return nil, err
	}
	name, err := compileName(q.Name, q.NamePattern)
	if err != nil {
		return nil, err
	}

	var out []domain.Descriptor
	err = x.scan(ctx, match, func(c class) {
		for _, f := range c.fields {
			if !name(f.Name) {
				continue
			}
			if q.Type != nil && f.Type != q.Type {
				continue
			}
			out = append(out, domain.FieldDescriptor(c.typ, f))
		}
	})
	return out, err
}

func (x *Index) scan(ctx context.Context, match func(class) bool, visit func(class)) error {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.closed {
		return domain.ErrEngineClosed
	}

	for _, c := range x.classes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if match(c) {
			visit(c)
		}
	}
	return nil
}
