package ports

import (
	"context"

	"go.trai.ch/symcache/internal/core/domain"
)

// Engine is a live handle to the symbol search engine.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// Valid reports whether the handle can still serve queries.
	Valid() bool
	// FindClass returns the classes matching q.
	FindClass(ctx context.Context, q domain.ClassQuery) ([]domain.Descriptor, error)
	// FindMethod returns the methods matching q.
	FindMethod(ctx context.Context, q domain.MethodQuery) ([]domain.Descriptor, error)
	// FindField returns the fields matching q.
	FindField(ctx context.Context, q domain.FieldQuery) ([]domain.Descriptor, error)
	// Close releases the handle.
	Close() error
}

// EngineFactory constructs engine handles bound to a loader.
type EngineFactory interface {
	// Open builds a new engine over the types visible to loader.
	Open(ctx context.Context, loader Loader) (Engine, error)
}

// Search is a caller-supplied query run against the engine on a cache miss.
type Search func(ctx context.Context, engine Engine) (domain.Result, error)
