package codec_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symcache/internal/adapters/typeloader"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports/mocks"
	"go.trai.ch/symcache/internal/engine/codec"
	"go.uber.org/mock/gomock"
)

const pkg = "go.trai.ch/symcache/internal/engine/codec_test"

type Widget struct {
	Label   string
	Sizes   []int
	Parent  *Widget
	Tags    map[string]bool
	Payload any
	Events  chan int
	Feed    <-chan string
	Hook    func() (int, error)
}

type Box[T any] struct {
	Value T
}

func (w *Widget) Resize(ctx context.Context, sizes ...int) (bool, error) { return true, nil }

func (w Widget) Name() string { return w.Label }

func (w *Widget) Emit(v any, out chan<- []any) {}

type Renderer interface {
	Render(w Widget, out chan<- string)
}

func newCodec(t *testing.T) *codec.Codec {
	t.Helper()
	c, err := codec.New(16)
	require.NoError(t, err)
	return c
}

func registry(t *testing.T) *typeloader.Registry {
	t.Helper()
	r := typeloader.New("codec-test")
	require.NoError(t, r.Register(Widget{}))
	require.NoError(t, typeloader.Register[Renderer](r))
	require.NoError(t, typeloader.Register[Box[func() int]](r))
	require.NoError(t, typeloader.Register[Box[map[string]any]](r))
	return r
}

func widgetType() reflect.Type { return reflect.TypeFor[Widget]() }

func TestCodec_RoundTrip(t *testing.T) {
	wt := widgetType()
	resize, ok := reflect.PointerTo(wt).MethodByName("Resize")
	require.True(t, ok)
	name, ok := reflect.PointerTo(wt).MethodByName("Name")
	require.True(t, ok)
	render, ok := reflect.TypeFor[Renderer]().MethodByName("Render")
	require.True(t, ok)
	sizes, ok := wt.FieldByName("Sizes")
	require.True(t, ok)
	tags, ok := wt.FieldByName("Tags")
	require.True(t, ok)
	emit, ok := reflect.PointerTo(wt).MethodByName("Emit")
	require.True(t, ok)
	boxFunc := reflect.TypeFor[Box[func() int]]()
	boxValue, ok := boxFunc.FieldByName("Value")
	require.True(t, ok)
	boxMap := reflect.TypeFor[Box[map[string]any]]()

	field := func(name string) domain.Symbol {
		f, ok := wt.FieldByName(name)
		require.True(t, ok)
		return domain.Field{Owner: wt, Field: f}
	}

	symbols := []domain.Symbol{
		domain.Class{Type: wt},
		domain.Class{Type: reflect.TypeFor[Renderer]()},
		domain.Method{Owner: wt, Method: resize},
		domain.Method{Owner: wt, Method: name},
		domain.Method{Owner: reflect.TypeFor[Renderer](), Method: render},
		domain.Field{Owner: wt, Field: sizes},
		domain.Field{Owner: wt, Field: tags},
		domain.Method{Owner: wt, Method: emit},
		field("Payload"),
		field("Events"),
		field("Feed"),
		field("Hook"),
		domain.Class{Type: boxFunc},
		domain.Field{Owner: boxFunc, Field: boxValue},
		domain.Class{Type: boxMap},
	}

	c := newCodec(t)
	loader := registry(t)

	for _, sym := range symbols {
		t.Run(sym.Descriptor().String(), func(t *testing.T) {
			encoded, err := c.Encode(sym.Descriptor())
			require.NoError(t, err)

			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, sym.Descriptor(), decoded)

			resolved, err := c.Resolve(decoded, loader)
			require.NoError(t, err)
			assert.Equal(t, sym.Kind(), resolved.Kind())
			assert.Equal(t, sym.Descriptor(), resolved.Descriptor())
		})
	}
}

func TestCodec_EncodedForms(t *testing.T) {
	wt := widgetType()
	resize, _ := reflect.PointerTo(wt).MethodByName("Resize")
	parent, _ := wt.FieldByName("Parent")

	c := newCodec(t)

	s, err := c.Encode(domain.ClassDescriptor(wt))
	require.NoError(t, err)
	assert.Equal(t, pkg+".Widget", s)

	s, err = c.Encode(domain.MethodDescriptor(wt, resize))
	require.NoError(t, err)
	assert.Equal(t, pkg+".Widget->Resize(context.Context,...int)(bool,error)", s)

	s, err = c.Encode(domain.FieldDescriptor(wt, parent))
	require.NoError(t, err)
	assert.Equal(t, pkg+".Widget->Parent:*"+pkg+".Widget", s)
}

func TestCodec_Decode_Malformed(t *testing.T) {
	c := newCodec(t)

	for _, s := range []string{
		"",
		"->Name()",
		"pkg.Type->",
		"pkg.Type->9bad()",
		"pkg.Type->Name",
		"pkg.Type->Name(int",
		"pkg.Type->Name:",
		"pkg.Type->Name: int",
		"pkg.Type->Name:int ",
		"pkg.Bad Type",
		"pkg.Box[int",
		"pkg.Box[]",
		"pkg.Box[a]b]",
		"pkg.Box[a][b]",
		"pkg.Box[a]->",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := c.Decode(s)
			require.ErrorIs(t, err, domain.ErrMalformedDescriptor)
		})
	}
}

func TestCodec_Decode_Generic(t *testing.T) {
	c := newCodec(t)

	d, err := c.Decode("example.com/p.Box[example.com/q.Item]")
	require.NoError(t, err)
	assert.Equal(t, domain.KindClass, d.Kind)

	d, err = c.Decode("example.com/p.Box[func() <-chan interface {}]->Value:func() <-chan interface {}")
	require.NoError(t, err)
	assert.Equal(t, domain.Descriptor{
		Kind:      domain.KindField,
		Class:     "example.com/p.Box[func() <-chan interface {}]",
		Name:      "Value",
		Signature: "func() <-chan interface {}",
	}, d)

	d, err = c.Decode("example.com/p.Box[map[string][]int]->Get(interface {})(int,error)")
	require.NoError(t, err)
	assert.Equal(t, domain.KindMethod, d.Kind)
	assert.Equal(t, "example.com/p.Box[map[string][]int]", d.Class)
	assert.Equal(t, "(interface {})(int,error)", d.Signature)
}

func TestCodec_Encode_RejectsUndecodable(t *testing.T) {
	c := newCodec(t)

	tests := []struct {
		name string
		d    domain.Descriptor
	}{
		{"unnamed class", domain.ClassDescriptor(reflect.TypeFor[[]int]())},
		{"member name with space", domain.Descriptor{Kind: domain.KindField, Class: "p.T", Name: "bad name", Signature: "int"}},
		{"padded field type", domain.Descriptor{Kind: domain.KindField, Class: "p.T", Name: "N", Signature: " int"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Encode(tt.d)
			require.ErrorIs(t, err, domain.ErrMalformedDescriptor)
		})
	}
}

func TestCodec_DecodeEntry(t *testing.T) {
	c := newCodec(t)

	ds, err := c.DecodeEntry(domain.CacheEntry{
		Kind:        domain.KindField,
		Descriptors: []string{"p.T->A:int", "p.T->B:string"},
	})
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "A", ds[0].Name)
	assert.Equal(t, "B", ds[1].Name)

	_, err = c.DecodeEntry(domain.CacheEntry{Kind: domain.KindMethod, Descriptor: "p.T->A:int"})
	require.ErrorIs(t, err, domain.ErrMalformedDescriptor)

	_, err = c.DecodeEntry(domain.CacheEntry{Kind: domain.KindClass})
	require.ErrorIs(t, err, domain.ErrInvalidEntry)
}

func TestCodec_Resolve_NotFound(t *testing.T) {
	c := newCodec(t)
	loader := registry(t)

	tests := []struct {
		name string
		d    domain.Descriptor
	}{
		{"unknown type", domain.Descriptor{Kind: domain.KindClass, Class: pkg + ".Gone"}},
		{"unknown method", domain.Descriptor{Kind: domain.KindMethod, Class: pkg + ".Widget", Name: "Gone", Signature: "()"}},
		{"changed signature", domain.Descriptor{Kind: domain.KindMethod, Class: pkg + ".Widget", Name: "Name", Signature: "()int"}},
		{"unknown field", domain.Descriptor{Kind: domain.KindField, Class: pkg + ".Widget", Name: "Gone", Signature: "int"}},
		{"changed field type", domain.Descriptor{Kind: domain.KindField, Class: pkg + ".Widget", Name: "Label", Signature: "int"}},
		{"field on interface", domain.Descriptor{Kind: domain.KindField, Class: pkg + ".Renderer", Name: "Render", Signature: "int"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Resolve(tt.d, loader)
			require.ErrorIs(t, err, domain.ErrSymbolNotFound)
		})
	}
}

func TestCodec_Resolve_Memoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().ID().Return("memo").Times(3)
	loader.EXPECT().LoadType(pkg+".Widget").Return(widgetType(), true).Times(2)

	c := newCodec(t)
	d := domain.ClassDescriptor(widgetType())

	_, err := c.Resolve(d, loader)
	require.NoError(t, err)
	_, err = c.Resolve(d, loader)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())

	_, err = c.Resolve(d, loader)
	require.NoError(t, err)
}

func TestCodec_ResolveAll_PreservesOrder(t *testing.T) {
	c := newCodec(t)
	loader := registry(t)

	ds := []domain.Descriptor{
		{Kind: domain.KindField, Class: pkg + ".Widget", Name: "Tags", Signature: "map[string]bool"},
		{Kind: domain.KindField, Class: pkg + ".Widget", Name: "Label", Signature: "string"},
	}

	syms, err := c.ResolveAll(ds, loader)
	require.NoError(t, err)
	require.Len(t, syms, 2)
	assert.Equal(t, "Tags", syms[0].(domain.Field).Field.Name)
	assert.Equal(t, "Label", syms[1].(domain.Field).Field.Name)

	strs, err := c.EncodeAll(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{
		pkg + ".Widget->Tags:map[string]bool",
		pkg + ".Widget->Label:string",
	}, strs)
}
