package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned when a required option is missing or invalid.
	ErrConfiguration = zerr.New("invalid configuration")

	// ErrReservedKey is returned when a caller key collides with a reserved fingerprint key.
	ErrReservedKey = zerr.New("cache key is reserved")

	// ErrResolutionFailed is returned when a descriptor cannot be turned back into a live symbol.
	ErrResolutionFailed = zerr.New("failed to resolve symbol descriptor")

	// ErrSymbolNotFound is returned when a descriptor names a type or member that no longer exists.
	ErrSymbolNotFound = zerr.New("symbol not found")

	// ErrMalformedDescriptor is returned when a stored descriptor does not parse.
	ErrMalformedDescriptor = zerr.New("malformed descriptor")

	// ErrUnknownResultKind is returned when a search produces something other than a class, method or field.
	ErrUnknownResultKind = zerr.New("unknown result kind")

	// ErrHeterogeneousResult is returned when a list result mixes symbol kinds.
	ErrHeterogeneousResult = zerr.New("result list mixes symbol kinds")

	// ErrTypeMismatch is returned when the requested arity does not match the cached or produced result.
	ErrTypeMismatch = zerr.New("result arity does not match request")

	// ErrNoUniqueMatch is returned when a search expected exactly one match.
	ErrNoUniqueMatch = zerr.New("search did not produce exactly one match")

	// ErrInvalidQuery is returned when a search query cannot be compiled.
	ErrInvalidQuery = zerr.New("invalid search query")

	// ErrEngineClosed is returned when a closed search engine is queried.
	ErrEngineClosed = zerr.New("search engine is closed")

	// ErrEngineOpenFailed is returned when the search engine cannot be constructed.
	ErrEngineOpenFailed = zerr.New("failed to open search engine")

	// ErrTypeConflict is returned when two different types are registered under one name.
	ErrTypeConflict = zerr.New("type name already registered")

	// ErrInvalidType is returned when a type cannot be registered.
	ErrInvalidType = zerr.New("type cannot be registered")

	// ErrStoreUnavailable is returned when the cache store fails to initialize.
	ErrStoreUnavailable = zerr.New("cache store unavailable")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreLockFailed is returned when the cross-process store lock cannot be taken.
	ErrStoreLockFailed = zerr.New("failed to lock cache store")

	// ErrStoreReadFailed is returned when the store document cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache store")

	// ErrStoreWriteFailed is returned when the store document cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache store")

	// ErrStoreCorrupt is returned when the store document cannot be decoded.
	ErrStoreCorrupt = zerr.New("cache store is corrupt")

	// ErrStoreClosed is returned when a closed store is used.
	ErrStoreClosed = zerr.New("cache store is closed")

	// ErrStoreWrongType is returned when a stored value has an unexpected type.
	ErrStoreWrongType = zerr.New("stored value has unexpected type")

	// ErrEntryMarshalFailed is returned when a cache entry cannot be encoded.
	ErrEntryMarshalFailed = zerr.New("failed to encode cache entry")

	// ErrInvalidEntry is returned when a cache entry violates its payload invariant.
	ErrInvalidEntry = zerr.New("invalid cache entry")

	// ErrHostProbeFailed is returned when the host binary identity cannot be computed.
	ErrHostProbeFailed = zerr.New("failed to compute host identity")

	// ErrPlatformProbeFailed is returned when the platform build id cannot be read.
	ErrPlatformProbeFailed = zerr.New("failed to read platform build id")

	// ErrConfigNotFound is returned when no configuration file can be located.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidOutputMode is returned when an unknown output mode is requested.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrWatcherFailed is returned when the source binary cannot be watched.
	ErrWatcherFailed = zerr.New("failed to watch source binary")
)
