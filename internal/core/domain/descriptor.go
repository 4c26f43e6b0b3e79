package domain

import (
	"reflect"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// MemberSeparator separates the owning class from a member name in a descriptor.
const MemberSeparator = "->"

// Descriptor is the structured, loader-independent location of a symbol.
//
// Encoded forms:
//
//	class:  <pkgpath>.<Type>
//	method: <class>-><Name>(<params>)<results>
//	field:  <class>-><Name>:<type>
type Descriptor struct {
	Kind      Kind
	Class     string
	Name      string
	Signature string
}

// String returns the encoded form of the descriptor.
func (d Descriptor) String() string {
	switch d.Kind {
	case KindClass:
		return d.Class
	case KindMethod:
		return d.Class + MemberSeparator + d.Name + d.Signature
	case KindField:
		return d.Class + MemberSeparator + d.Name + ":" + d.Signature
	default:
		return ""
	}
}

// Validate checks that the descriptor is complete for its kind.
func (d Descriptor) Validate() error {
	if !d.Kind.Valid() {
		return zerr.With(zerr.Wrap(ErrUnknownResultKind, "descriptor has no symbol kind"), "kind", int(d.Kind))
	}
	if d.Class == "" {
		return zerr.Wrap(ErrMalformedDescriptor, "descriptor has no class")
	}
	switch d.Kind {
	case KindMethod:
		if d.Name == "" || !strings.HasPrefix(d.Signature, "(") {
			return zerr.With(zerr.Wrap(ErrMalformedDescriptor, "incomplete method descriptor"), "class", d.Class)
		}
	case KindField:
		if d.Name == "" || d.Signature == "" {
			return zerr.With(zerr.Wrap(ErrMalformedDescriptor, "incomplete field descriptor"), "class", d.Class)
		}
	}
	return nil
}

// ClassDescriptor returns the descriptor of a named type.
func ClassDescriptor(t reflect.Type) Descriptor {
	return Descriptor{Kind: KindClass, Class: TypeName(t)}
}

// MethodDescriptor returns the descriptor of a method of owner.
// m must come from owner's method set, or from *owner's for concrete types.
func MethodDescriptor(owner reflect.Type, m reflect.Method) Descriptor {
	return Descriptor{
		Kind:      KindMethod,
		Class:     TypeName(owner),
		Name:      m.Name,
		Signature: Signature(m.Type, owner.Kind() != reflect.Interface),
	}
}

// FieldDescriptor returns the descriptor of a struct field of owner.
func FieldDescriptor(owner reflect.Type, f reflect.StructField) Descriptor {
	return Descriptor{
		Kind:      KindField,
		Class:     TypeName(owner),
		Name:      f.Name,
		Signature: TypeName(f.Type),
	}
}

// TypeName returns the fully qualified name of t.
// Named types are qualified with their full package path.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}
		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + TypeName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + TypeName(t.Elem())
		default:
			return "chan " + TypeName(t.Elem())
		}
	case reflect.Func:
		return "func" + Signature(t, false)
	default:
		return t.String()
	}
}

// Signature renders the parameter and result lists of a func type.
// When skipReceiver is set the first parameter is omitted.
func Signature(ft reflect.Type, skipReceiver bool) string {
	var b strings.Builder

	start := 0
	if skipReceiver {
		start = 1
	}

	b.WriteByte('(')
	for i := start; i < ft.NumIn(); i++ {
		if i > start {
			b.WriteByte(',')
		}
		in := ft.In(i)
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			b.WriteString("..." + TypeName(in.Elem()))
			continue
		}
		b.WriteString(TypeName(in))
	}
	b.WriteByte(')')

	switch ft.NumOut() {
	case 0:
	case 1:
		b.WriteString(TypeName(ft.Out(0)))
	default:
		b.WriteByte('(')
		for i := range ft.NumOut() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(TypeName(ft.Out(i)))
		}
		b.WriteByte(')')
	}

	return b.String()
}
