package symcache

import (
	"go.trai.ch/symcache/internal/adapters/typeloader"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
)

type (
	// Symbol is a resolved Class, Method or Field.
	Symbol = domain.Symbol
	// Class is a resolved named type.
	Class = domain.Class
	// Method is a resolved method.
	Method = domain.Method
	// Field is a resolved struct field.
	Field = domain.Field
	// Kind identifies a symbol kind.
	Kind = domain.Kind
	// Descriptor is the persisted location of a symbol.
	Descriptor = domain.Descriptor
	// Result is what a search returns.
	Result = domain.Result
	// ClassQuery selects named types.
	ClassQuery = domain.ClassQuery
	// MethodQuery selects methods.
	MethodQuery = domain.MethodQuery
	// FieldQuery selects struct fields.
	FieldQuery = domain.FieldQuery
	// StoreStatus reports the state of the store.
	StoreStatus = domain.StoreStatus

	// Engine is the search engine handed to a Search.
	Engine = ports.Engine
	// EngineFactory builds engines bound to a loader.
	EngineFactory = ports.EngineFactory
	// Search runs against the engine on a cache miss.
	Search = ports.Search
	// Loader is a loading context.
	Loader = ports.Loader
	// KVStore is the backing key-value store.
	KVStore = ports.KVStore
	// Logger receives warnings.
	Logger = ports.Logger
	// Tracer traces lookups.
	Tracer = ports.Tracer

	// Registry is a Loader over explicitly registered types.
	Registry = typeloader.Registry
)

// Symbol kinds.
const (
	KindClass  = domain.KindClass
	KindMethod = domain.KindMethod
	KindField  = domain.KindField
)

// Store states.
const (
	StoreClosed   = domain.StoreClosed
	StoreReady    = domain.StoreReady
	StoreDisabled = domain.StoreDisabled
)

// Errors returned by lookups. Match them with errors.Is.
var (
	ErrConfiguration       = domain.ErrConfiguration
	ErrReservedKey         = domain.ErrReservedKey
	ErrResolutionFailed    = domain.ErrResolutionFailed
	ErrSymbolNotFound      = domain.ErrSymbolNotFound
	ErrMalformedDescriptor = domain.ErrMalformedDescriptor
	ErrUnknownResultKind   = domain.ErrUnknownResultKind
	ErrHeterogeneousResult = domain.ErrHeterogeneousResult
	ErrTypeMismatch        = domain.ErrTypeMismatch
	ErrNoUniqueMatch       = domain.ErrNoUniqueMatch
	ErrStoreUnavailable    = domain.ErrStoreUnavailable
)

// NewRegistry creates an empty Registry identified by id.
func NewRegistry(id string) *Registry {
	return typeloader.New(id)
}

// Register registers T in r.
func Register[T any](r *Registry) error {
	return typeloader.Register[T](r)
}

// One returns a single-symbol result.
func One(d Descriptor) Result { return domain.One(d) }

// Many returns an ordered list result.
func Many(ds ...Descriptor) Result { return domain.Many(ds...) }

// Only wraps an engine answer that must hold exactly one match.
func Only(ds []Descriptor, err error) (Result, error) { return domain.Only(ds, err) }

// All wraps an engine answer as a list result.
func All(ds []Descriptor, err error) (Result, error) { return domain.All(ds, err) }
