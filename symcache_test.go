package symcache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symcache"
	"go.trai.ch/symcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type Session struct {
	Token   string
	Expires int64
}

func (s *Session) Refresh(ctx context.Context) error { return nil }

func (s *Session) Revoke() {}

type Mailbox struct {
	Payload any
	Events  chan int
	Replies <-chan string
	Filter  func(any) bool
}

type setup struct {
	dataDir string
	binary  string
	loader  *symcache.Registry
	logger  symcache.Logger
}

func newSetup(t *testing.T) *setup {
	t.Helper()
	dir := t.TempDir()
	binary := filepath.Join(dir, "app")
	require.NoError(t, os.WriteFile(binary, []byte("build 1"), 0o600))

	loader := symcache.NewRegistry("app")
	require.NoError(t, symcache.Register[Session](loader))

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return &setup{dataDir: filepath.Join(dir, "data"), binary: binary, loader: loader, logger: log}
}

func (s *setup) open(t *testing.T, schema int) *symcache.Cache {
	t.Helper()
	cache, err := symcache.New(symcache.Options{
		SchemaVersion:    schema,
		Loader:           s.loader,
		SourceBinaryPath: s.binary,
		DataDirectory:    s.dataDir,
		Logger:           s.logger,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func refresh(calls *int) symcache.Search {
	return func(ctx context.Context, e symcache.Engine) (symcache.Result, error) {
		*calls++
		return symcache.Only(e.FindMethod(ctx, symcache.MethodQuery{
			Declaring: symcache.ClassQuery{Name: "Session"},
			Name:      "Refresh",
		}))
	}
}

func fields(calls *int) symcache.Search {
	return func(ctx context.Context, e symcache.Engine) (symcache.Result, error) {
		*calls++
		return symcache.All(e.FindField(ctx, symcache.FieldQuery{
			Declaring: symcache.ClassQuery{Name: "Session"},
		}))
	}
}

func TestNew_Validation(t *testing.T) {
	loader := symcache.NewRegistry("app")

	tests := []struct {
		name string
		opts symcache.Options
	}{
		{"missing loader", symcache.Options{SourceBinaryPath: "/bin/app", DataDirectory: "/data"}},
		{"missing binary", symcache.Options{Loader: loader, DataDirectory: "/data"}},
		{"missing data directory", symcache.Options{Loader: loader, SourceBinaryPath: "/bin/app"}},
		{"negative schema", symcache.Options{Loader: loader, SourceBinaryPath: "/bin/app", DataDirectory: "/data", SchemaVersion: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := symcache.New(tt.opts)
			require.ErrorIs(t, err, symcache.ErrConfiguration)
		})
	}
}

func TestCache_SecondLookupSkipsSearch(t *testing.T) {
	s := newSetup(t)
	cache := s.open(t, 1)
	var calls int

	first, err := symcache.FindAs[symcache.Method](t.Context(), cache, "k1", refresh(&calls))
	require.NoError(t, err)
	assert.Equal(t, "Refresh", first.Method.Name)
	assert.True(t, cache.CachingEnabled())

	second, err := symcache.FindAs[symcache.Method](t.Context(), cache, "k1", refresh(&calls))
	require.NoError(t, err)
	assert.Equal(t, first.Descriptor(), second.Descriptor())
	assert.Equal(t, 1, calls)
}

func TestCache_CachedFieldsWithUnnamedTypes(t *testing.T) {
	s := newSetup(t)
	require.NoError(t, symcache.Register[Mailbox](s.loader))
	cache := s.open(t, 1)

	for _, name := range []string{"Payload", "Events", "Replies", "Filter"} {
		t.Run(name, func(t *testing.T) {
			var calls int
			search := func(ctx context.Context, e symcache.Engine) (symcache.Result, error) {
				calls++
				return symcache.Only(e.FindField(ctx, symcache.FieldQuery{
					Declaring: symcache.ClassQuery{Name: "Mailbox"},
					Name:      name,
				}))
			}

			first, err := symcache.FindAs[symcache.Field](t.Context(), cache, "mailbox."+name, search)
			require.NoError(t, err)
			second, err := symcache.FindAs[symcache.Field](t.Context(), cache, "mailbox."+name, search)
			require.NoError(t, err)

			assert.Equal(t, name, second.Field.Name)
			assert.Equal(t, first.Descriptor(), second.Descriptor())
			assert.Equal(t, 1, calls)
		})
	}
}

func TestCache_SurvivesRestart(t *testing.T) {
	s := newSetup(t)
	var calls int

	cache := s.open(t, 1)
	_, err := cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	cache = s.open(t, 1)
	sym, err := cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	assert.Equal(t, symcache.KindMethod, sym.Kind())
	assert.Equal(t, 1, calls)
}

func TestCache_SchemaBumpSearchesAgain(t *testing.T) {
	s := newSetup(t)
	var calls int

	cache := s.open(t, 1)
	_, err := cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	cache = s.open(t, 2)
	_, err = cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCache_BinaryUpdateSearchesAgain(t *testing.T) {
	s := newSetup(t)
	var calls int

	cache := s.open(t, 1)
	_, err := cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	require.NoError(t, os.WriteFile(s.binary, []byte("build 2"), 0o600))

	cache = s.open(t, 1)
	_, err = cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCache_NoKeyAlwaysSearches(t *testing.T) {
	s := newSetup(t)
	cache := s.open(t, 1)
	var calls int

	for range 3 {
		_, err := cache.Find(t.Context(), "", refresh(&calls))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestCache_FindAllAs(t *testing.T) {
	s := newSetup(t)
	cache := s.open(t, 1)
	var calls int

	for range 2 {
		got, err := symcache.FindAllAs[symcache.Field](t.Context(), cache, "fields", fields(&calls))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Token", got[0].Field.Name)
		assert.Equal(t, "Expires", got[1].Field.Name)
	}
	assert.Equal(t, 1, calls)
}

func TestCache_ArityMismatch(t *testing.T) {
	s := newSetup(t)
	cache := s.open(t, 1)
	var calls int

	_, err := cache.FindAll(t.Context(), "fields", fields(&calls))
	require.NoError(t, err)

	_, err = cache.Find(t.Context(), "fields", refresh(&calls))
	require.ErrorIs(t, err, symcache.ErrTypeMismatch)
	assert.Equal(t, 1, calls)

	_, err = symcache.FindAs[symcache.Class](t.Context(), cache, "method", refresh(&calls))
	require.ErrorIs(t, err, symcache.ErrTypeMismatch)
}

func TestCache_FindInOtherLoader(t *testing.T) {
	s := newSetup(t)
	cache := s.open(t, 1)
	var calls int

	_, err := cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)

	other := symcache.NewRegistry("other")
	_, err = cache.FindIn(t.Context(), "k1", other, refresh(&calls))
	require.ErrorIs(t, err, symcache.ErrResolutionFailed)
	require.ErrorIs(t, err, symcache.ErrSymbolNotFound)
}

func TestCache_OnStoreOpen(t *testing.T) {
	s := newSetup(t)
	var opened int

	cache, err := symcache.New(symcache.Options{
		Loader:           s.loader,
		SourceBinaryPath: s.binary,
		DataDirectory:    s.dataDir,
		Logger:           s.logger,
		OnStoreOpen: func(store symcache.KVStore) error {
			opened++
			return store.PutInt("app:opened", opened)
		},
	})
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	var calls int
	_, err = cache.Find(t.Context(), "k1", refresh(&calls))
	require.NoError(t, err)
	_, err = cache.Find(t.Context(), "k2", refresh(&calls))
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
}

func TestCache_UnavailableStore(t *testing.T) {
	s := newSetup(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	s.dataDir = blocker

	cache := s.open(t, 1)
	var calls int

	for range 2 {
		_, err := cache.Find(t.Context(), "k1", refresh(&calls))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
	assert.Equal(t, symcache.StoreDisabled, cache.Status())
	assert.False(t, cache.CachingEnabled())
}

func TestCache_CloseIsIdempotent(t *testing.T) {
	s := newSetup(t)
	cache := s.open(t, 1)

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
	assert.Equal(t, symcache.StoreClosed, cache.Status())
}
