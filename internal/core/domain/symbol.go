package domain

import (
	"reflect"

	"go.trai.ch/zerr"
)

// Kind identifies which of the three symbol shapes a descriptor or entry holds.
type Kind uint8

const (
	// KindUnknown is the zero value and never valid in a stored entry.
	KindUnknown Kind = iota
	// KindClass is a named type.
	KindClass
	// KindMethod is a method in the method set of a named type.
	KindMethod
	// KindField is a struct field.
	KindField
)

// String returns the persisted tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "CLASS"
	case KindMethod:
		return "METHOD"
	case KindField:
		return "FIELD"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the three symbol kinds.
func (k Kind) Valid() bool {
	return k == KindClass || k == KindMethod || k == KindField
}

// ParseKind parses a persisted kind tag.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "CLASS":
		return KindClass, nil
	case "METHOD":
		return KindMethod, nil
	case "FIELD":
		return KindField, nil
	default:
		return KindUnknown, zerr.With(zerr.Wrap(ErrMalformedDescriptor, "unknown kind tag"), "tag", tag)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrUnknownResultKind, "cannot encode kind"), "kind", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Symbol is a live handle to a class, method or field bound to a loader.
// The set of implementations is closed: Class, Method and Field.
type Symbol interface {
	// Kind returns the symbol kind.
	Kind() Kind
	// Descriptor returns the reversible descriptor of the symbol.
	Descriptor() Descriptor
	sealed()
}

// Class is a resolved named type.
type Class struct {
	Type reflect.Type
}

// Kind implements Symbol.
func (Class) Kind() Kind { return KindClass }

// Descriptor implements Symbol.
func (c Class) Descriptor() Descriptor { return ClassDescriptor(c.Type) }

func (Class) sealed() {}

// Method is a resolved method of a named type.
// For concrete owners the method belongs to the method set of *Owner,
// so Method.Type carries the receiver as its first parameter.
type Method struct {
	Owner  reflect.Type
	Method reflect.Method
}

// Kind implements Symbol.
func (Method) Kind() Kind { return KindMethod }

// Descriptor implements Symbol.
func (m Method) Descriptor() Descriptor { return MethodDescriptor(m.Owner, m.Method) }

func (Method) sealed() {}

// Field is a resolved struct field.
type Field struct {
	Owner reflect.Type
	Field reflect.StructField
}

// Kind implements Symbol.
func (Field) Kind() Kind { return KindField }

// Descriptor implements Symbol.
func (f Field) Descriptor() Descriptor { return FieldDescriptor(f.Owner, f.Field) }

func (Field) sealed() {}
