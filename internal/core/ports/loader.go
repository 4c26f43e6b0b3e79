package ports

import "reflect"

// Loader is the loading context that turns qualified type names into live types.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type Loader interface {
	// ID identifies the loader. A different ID is a different loading context.
	ID() string
	// LoadType returns the type registered under the qualified name.
	LoadType(name string) (reflect.Type, bool)
	// Types returns every registered type in registration order.
	Types() []reflect.Type
}
