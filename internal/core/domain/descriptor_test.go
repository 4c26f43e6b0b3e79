package domain_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symcache/internal/core/domain"
)

const pkg = "go.trai.ch/symcache/internal/core/domain_test"

type server struct{}

func (*server) Handle(_ string, _ ...int) (bool, error) { return false, nil }

func (server) Name() string { return "" }

type record struct {
	Tags  map[string][]int
	Ch    <-chan error
	Out   chan<- [2]*server
	Hook  func(int) string
	plain int
}

type namer interface {
	Name() string
}

func TestDescriptor_String(t *testing.T) {
	serverType := reflect.TypeFor[server]()
	recordType := reflect.TypeFor[record]()

	handle, ok := reflect.PointerTo(serverType).MethodByName("Handle")
	require.True(t, ok)
	ifaceName, ok := reflect.TypeFor[namer]().MethodByName("Name")
	require.True(t, ok)

	field := func(name string) reflect.StructField {
		f, ok := recordType.FieldByName(name)
		require.True(t, ok)
		return f
	}

	tests := []struct {
		name string
		d    domain.Descriptor
		want string
	}{
		{name: "class", d: domain.ClassDescriptor(serverType), want: pkg + ".server"},
		{name: "pointer receiver method", d: domain.MethodDescriptor(serverType, handle), want: pkg + ".server->Handle(string,...int)(bool,error)"},
		{name: "interface method", d: domain.MethodDescriptor(reflect.TypeFor[namer](), ifaceName), want: pkg + ".namer->Name()string"},
		{name: "map field", d: domain.FieldDescriptor(recordType, field("Tags")), want: pkg + ".record->Tags:map[string][]int"},
		{name: "receive channel field", d: domain.FieldDescriptor(recordType, field("Ch")), want: pkg + ".record->Ch:<-chan error"},
		{name: "send channel field", d: domain.FieldDescriptor(recordType, field("Out")), want: pkg + ".record->Out:chan<- [2]*" + pkg + ".server"},
		{name: "func field", d: domain.FieldDescriptor(recordType, field("Hook")), want: pkg + ".record->Hook:func(int)string"},
		{name: "unexported field", d: domain.FieldDescriptor(recordType, field("plain")), want: pkg + ".record->plain:int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
			require.NoError(t, tt.d.Validate())
		})
	}
}

func TestDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name string
		d    domain.Descriptor
		want error
	}{
		{name: "no kind", d: domain.Descriptor{Class: "p.T"}, want: domain.ErrUnknownResultKind},
		{name: "no class", d: domain.Descriptor{Kind: domain.KindClass}, want: domain.ErrMalformedDescriptor},
		{name: "method without signature", d: domain.Descriptor{Kind: domain.KindMethod, Class: "p.T", Name: "Run"}, want: domain.ErrMalformedDescriptor},
		{name: "field without type", d: domain.Descriptor{Kind: domain.KindField, Class: "p.T", Name: "N"}, want: domain.ErrMalformedDescriptor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.d.Validate(), tt.want)
		})
	}

	assert.Empty(t, domain.Descriptor{}.String())
}

func TestTypeName_Builtins(t *testing.T) {
	assert.Equal(t, "nil", domain.TypeName(nil))
	assert.Equal(t, "int", domain.TypeName(reflect.TypeFor[int]()))
	assert.Equal(t, "error", domain.TypeName(reflect.TypeFor[error]()))
	assert.Equal(t, "chan string", domain.TypeName(reflect.TypeFor[chan string]()))
	assert.Equal(t, "reflect.Type", domain.TypeName(reflect.TypeFor[reflect.Type]()))
}
