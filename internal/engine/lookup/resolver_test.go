package lookup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/symcache/internal/adapters/kv"
	"go.trai.ch/symcache/internal/adapters/symindex"
	"go.trai.ch/symcache/internal/adapters/telemetry"
	"go.trai.ch/symcache/internal/adapters/typeloader"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/symcache/internal/core/ports/mocks"
	"go.trai.ch/symcache/internal/engine/codec"
	"go.trai.ch/symcache/internal/engine/fingerprint"
	"go.trai.ch/symcache/internal/engine/lifecycle"
	"go.trai.ch/symcache/internal/engine/lookup"
	"go.uber.org/mock/gomock"
)

const pkg = "go.trai.ch/symcache/internal/engine/lookup_test"

type Greeter struct {
	Name  string
	Count int
}

func (g *Greeter) Greet(msg string) string { return g.Name + ": " + msg }

func (g *Greeter) Wave() {}

type env struct {
	t        *testing.T
	dataDir  string
	schema   int
	opener   ports.KVOpener
	logger   ports.Logger
	loader   *typeloader.Registry
	recorder *tracetest.SpanRecorder
}

func newEnv(t *testing.T) *env {
	t.Helper()
	loader := typeloader.New("lookup-test")
	require.NoError(t, loader.Register(Greeter{}))
	return &env{
		t:       t,
		dataDir: t.TempDir(),
		schema:  1,
		opener:  kv.NewOpener(),
		loader:  loader,
	}
}

func (e *env) resolver() *lookup.Resolver {
	e.t.Helper()
	ctrl := gomock.NewController(e.t)
	host := mocks.NewMockHostProber(ctrl)
	host.EXPECT().Identity("/bin/app").Return("v1(aa)", nil).AnyTimes()
	platform := mocks.NewMockPlatformProber(ctrl)
	platform.EXPECT().BuildID().Return("linux/amd64 6.1", nil).AnyTimes()

	manager := lifecycle.New(lifecycle.Config{
		CacheName:        "test",
		SchemaVersion:    e.schema,
		SourceBinaryPath: "/bin/app",
		DataDirectory:    e.dataDir,
	}, e.opener, symindex.NewFactory(), fingerprint.NewGuard(host, platform, e.logger), e.logger)

	c, err := codec.New(0)
	require.NoError(e.t, err)

	e.recorder = tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(e.recorder))
	e.t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := lookup.New(manager, c, telemetry.NewOTelTracerWithProvider(tp, "test"), e.logger)
	e.t.Cleanup(func() { _ = r.Close() })
	return r
}

// counting wraps search and counts its invocations.
func counting(calls *int, search ports.Search) ports.Search {
	return func(ctx context.Context, engine ports.Engine) (domain.Result, error) {
		*calls++
		return search(ctx, engine)
	}
}

func findGreeter(ctx context.Context, engine ports.Engine) (domain.Result, error) {
	return domain.Only(engine.FindClass(ctx, domain.ClassQuery{Name: "Greeter"}))
}

func greeterFields(ctx context.Context, engine ports.Engine) (domain.Result, error) {
	return domain.All(engine.FindField(ctx, domain.FieldQuery{Declaring: domain.ClassQuery{Name: "Greeter"}}))
}

func callerKeys(t *testing.T, dataDir string) []string {
	t.Helper()
	store, err := kv.NewOpener().Open(domain.StoreDir(dataDir), "test")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	keys, err := store.Keys()
	require.NoError(t, err)
	var out []string
	for _, k := range keys {
		if !domain.IsReservedKey(k) {
			out = append(out, k)
		}
	}
	return out
}

func TestResolver_CachesAcrossInstances(t *testing.T) {
	e := newEnv(t)
	var calls int
	search := counting(&calls, findGreeter)

	r := e.resolver()
	first, err := r.Find(t.Context(), "k1", e.loader, search)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.IsType(t, domain.Class{}, first)
	assert.Equal(t, pkg+".Greeter", first.Descriptor().String())
	require.NoError(t, r.Close())

	assert.Equal(t, []string{"k1"}, callerKeys(t, e.dataDir))

	r = e.resolver()
	second, err := r.Find(t.Context(), "k1", e.loader, search)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestResolver_SchemaBumpInvalidates(t *testing.T) {
	e := newEnv(t)
	var calls int
	search := counting(&calls, findGreeter)

	r := e.resolver()
	_, err := r.Find(t.Context(), "k1", e.loader, search)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	e.schema = 2
	r = e.resolver()
	_, err = r.Find(t.Context(), "k1", e.loader, search)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, r.Close())

	assert.Equal(t, []string{"k1"}, callerKeys(t, e.dataDir))

	r = e.resolver()
	_, err = r.Find(t.Context(), "k1", e.loader, search)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestResolver_NoKeyNeverCaches(t *testing.T) {
	e := newEnv(t)
	var calls int
	search := counting(&calls, findGreeter)
	r := e.resolver()

	for range 3 {
		_, err := r.Find(t.Context(), "", e.loader, search)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
	require.NoError(t, r.Close())

	assert.Empty(t, callerKeys(t, e.dataDir))
}

func TestResolver_ListPreservesOrder(t *testing.T) {
	e := newEnv(t)
	var calls int
	search := counting(&calls, greeterFields)
	r := e.resolver()

	for range 2 {
		syms, err := r.FindAll(t.Context(), "fields", e.loader, search)
		require.NoError(t, err)
		require.Len(t, syms, 2)
		assert.Equal(t, "Name", syms[0].(domain.Field).Field.Name)
		assert.Equal(t, "Count", syms[1].(domain.Field).Field.Name)
	}
	assert.Equal(t, 1, calls)
}

func TestResolver_ArityMismatch(t *testing.T) {
	e := newEnv(t)
	r := e.resolver()

	_, err := r.Find(t.Context(), "single", e.loader, findGreeter)
	require.NoError(t, err)

	_, err = r.FindAll(t.Context(), "single", e.loader, findGreeter)
	require.ErrorIs(t, err, domain.ErrTypeMismatch)

	_, err = r.Find(t.Context(), "list", e.loader, greeterFields)
	require.ErrorIs(t, err, domain.ErrTypeMismatch)

	_, err = r.FindAll(t.Context(), "other", e.loader, findGreeter)
	require.ErrorIs(t, err, domain.ErrTypeMismatch)

	require.NoError(t, r.Close())
	assert.Equal(t, []string{"single"}, callerKeys(t, e.dataDir))
}

func TestResolver_InvalidResults(t *testing.T) {
	class := domain.Descriptor{Kind: domain.KindClass, Class: pkg + ".Greeter"}
	field := domain.Descriptor{Kind: domain.KindField, Class: pkg + ".Greeter", Name: "Name", Signature: "string"}

	tests := []struct {
		name    string
		list    bool
		result  domain.Result
		wantErr error
	}{
		{"unset result", false, domain.Result{}, domain.ErrUnknownResultKind},
		{"unknown kind", false, domain.One(domain.Descriptor{Class: "x"}), domain.ErrUnknownResultKind},
		{"mixed kinds", true, domain.Many(class, field), domain.ErrHeterogeneousResult},
		{"missing symbol", false, domain.One(domain.Descriptor{Kind: domain.KindClass, Class: pkg + ".Gone"}), domain.ErrResolutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			r := e.resolver()
			search := func(context.Context, ports.Engine) (domain.Result, error) { return tt.result, nil }

			var err error
			if tt.list {
				_, err = r.FindAll(t.Context(), "k", e.loader, search)
			} else {
				_, err = r.Find(t.Context(), "k", e.loader, search)
			}
			require.ErrorIs(t, err, tt.wantErr)

			require.NoError(t, r.Close())
			assert.Empty(t, callerKeys(t, e.dataDir))
		})
	}
}

func TestResolver_SearchErrorPropagates(t *testing.T) {
	e := newEnv(t)
	r := e.resolver()
	boom := errors.New("boom")

	_, err := r.Find(t.Context(), "k", e.loader, func(context.Context, ports.Engine) (domain.Result, error) {
		return domain.Result{}, boom
	})
	require.ErrorIs(t, err, boom)

	_, err = r.Find(t.Context(), "k", e.loader, func(ctx context.Context, engine ports.Engine) (domain.Result, error) {
		return domain.Only(engine.FindClass(ctx, domain.ClassQuery{Name: "Nothing"}))
	})
	require.ErrorIs(t, err, domain.ErrNoUniqueMatch)
}

func TestResolver_EmptyListNotPersisted(t *testing.T) {
	e := newEnv(t)
	var calls int
	search := counting(&calls, func(ctx context.Context, engine ports.Engine) (domain.Result, error) {
		return domain.All(engine.FindField(ctx, domain.FieldQuery{Name: "Missing"}))
	})
	r := e.resolver()

	for range 2 {
		syms, err := r.FindAll(t.Context(), "empty", e.loader, search)
		require.NoError(t, err)
		assert.Empty(t, syms)
	}
	assert.Equal(t, 2, calls)
}

func TestResolver_StaleEntryIsFatal(t *testing.T) {
	e := newEnv(t)
	r := e.resolver()
	_, err := r.Find(t.Context(), "k1", e.loader, findGreeter)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	store, err := kv.NewOpener().Open(domain.StoreDir(e.dataDir), "test")
	require.NoError(t, err)
	require.NoError(t, store.PutString("k1", `{"kind":"CLASS","descriptor":"`+pkg+`.Removed"}`))
	require.NoError(t, store.Close())

	r = e.resolver()
	_, err = r.Find(t.Context(), "k1", e.loader, findGreeter)
	require.ErrorIs(t, err, domain.ErrResolutionFailed)
	require.ErrorIs(t, err, domain.ErrSymbolNotFound)
}

func TestResolver_ReservedKey(t *testing.T) {
	e := newEnv(t)
	r := e.resolver()

	_, err := r.Find(t.Context(), domain.KeySchemaVersion, e.loader, findGreeter)
	require.ErrorIs(t, err, domain.ErrReservedKey)
}

func TestResolver_DisabledStore(t *testing.T) {
	e := newEnv(t)
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockKVOpener(ctrl)
	opener.EXPECT().Open(gomock.Any(), "test").Return(nil, errors.New("denied")).AnyTimes()
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("caching disabled: denied")
	e.opener = opener
	e.logger = log

	var calls int
	search := counting(&calls, findGreeter)
	r := e.resolver()

	for range 2 {
		sym, err := r.Find(t.Context(), "k1", e.loader, search)
		require.NoError(t, err)
		assert.Equal(t, domain.KindClass, sym.Kind())
	}
	assert.Equal(t, 2, calls)
	assert.Equal(t, domain.StoreDisabled, r.Status())
}

func TestResolver_WriteFailureIsLogged(t *testing.T) {
	e := newEnv(t)
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockKVOpener(ctrl)
	store := mocks.NewMockKVStore(ctrl)
	log := mocks.NewMockLogger(ctrl)

	opener.EXPECT().Open(gomock.Any(), "test").Return(store, nil)
	store.EXPECT().GetInt(gomock.Any()).Return(0, false, nil).AnyTimes()
	store.EXPECT().GetString(gomock.Any()).Return("", false, nil).AnyTimes()
	store.EXPECT().PutInt(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().PutString(domain.KeyHostIdentity, gomock.Any()).Return(nil)
	store.EXPECT().PutString(domain.KeyPlatformBuild, gomock.Any()).Return(nil)
	store.EXPECT().PutString("k1", gomock.Any()).Return(domain.ErrStoreWriteFailed)
	store.EXPECT().Close().Return(nil)
	log.EXPECT().Warn(gomock.Any())

	e.opener = opener
	e.logger = log
	r := e.resolver()

	sym, err := r.Find(t.Context(), "k1", e.loader, findGreeter)
	require.NoError(t, err)
	assert.Equal(t, domain.KindClass, sym.Kind())
}

func TestResolver_Tracing(t *testing.T) {
	e := newEnv(t)
	r := e.resolver()

	_, err := r.Find(t.Context(), "k1", e.loader, findGreeter)
	require.NoError(t, err)
	_, err = r.Find(t.Context(), "k1", e.loader, findGreeter)
	require.NoError(t, err)

	spans := e.recorder.Ended()
	require.Len(t, spans, 2)

	attrs := func(i int) map[attribute.Key]attribute.Value {
		out := map[attribute.Key]attribute.Value{}
		for _, kv := range spans[i].Attributes() {
			out[kv.Key] = kv.Value
		}
		return out
	}

	miss := attrs(0)
	assert.Equal(t, "symcache.lookup", spans[0].Name())
	assert.Equal(t, "k1", miss[lookup.AttrKey].AsString())
	assert.False(t, miss[lookup.AttrHit].AsBool())
	assert.Equal(t, "CLASS", miss[lookup.AttrKind].AsString())
	assert.Equal(t, int64(1), miss[lookup.AttrCount].AsInt64())

	hit := attrs(1)
	assert.True(t, hit[lookup.AttrHit].AsBool())
	assert.False(t, hit[lookup.AttrList].AsBool())
}

func TestResolver_CloseIsIdempotent(t *testing.T) {
	e := newEnv(t)
	r := e.resolver()

	require.NoError(t, r.Close())
	_, err := r.Find(t.Context(), "k1", e.loader, findGreeter)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, domain.StoreClosed, r.Status())
}
