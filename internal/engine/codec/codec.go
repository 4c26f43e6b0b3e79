// Package codec converts symbol descriptors to their persisted string form
// and resolves them back into live symbols through a loader.
package codec

import (
	"reflect"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMemoSize is the number of resolved symbols kept in memory.
const DefaultMemoSize = 512

// Codec encodes, decodes and resolves descriptors.
// Successful resolutions are memoized per loader.
type Codec struct {
	memo *lru.Cache[string, domain.Symbol]
}

// New creates a Codec whose memo holds up to size symbols.
func New(size int) (*Codec, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	memo, err := lru.New[string, domain.Symbol](size)
	if err != nil {
		return nil, err
	}
	return &Codec{memo: memo}, nil
}

// Encode returns the persisted form of d. Descriptors whose string form
// would not decode back to d are rejected so they are never persisted.
func (c *Codec) Encode(d domain.Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	s := d.String()
	if back, err := c.Decode(s); err != nil || back != d {
		return "", malformed(s, "descriptor does not round trip")
	}
	return s, nil
}

// EncodeAll encodes ds preserving order.
func (c *Codec) EncodeAll(ds []domain.Descriptor) ([]string, error) {
	out := make([]string, 0, len(ds))
	for i, d := range ds {
		s, err := c.Encode(d)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		out = append(out, s)
	}
	return out, nil
}

// Decode parses a persisted descriptor. The kind is inferred from its shape.
// Type arguments, field types and signatures may contain any characters.
func (c *Codec) Decode(s string) (domain.Descriptor, error) {
	class, member, isMember := cutMember(s)
	if !validClass(class) {
		return domain.Descriptor{}, malformed(s, "invalid class name")
	}
	if !isMember {
		return domain.Descriptor{Kind: domain.KindClass, Class: class}, nil
	}

	end := strings.IndexAny(member, "(:")
	if end <= 0 || !isIdentifier(member[:end]) {
		return domain.Descriptor{}, malformed(s, "invalid member name")
	}
	name, rest := member[:end], member[end:]

	if rest[0] == '(' {
		if !balanced(rest, '(', ')') {
			return domain.Descriptor{}, malformed(s, "unbalanced method signature")
		}
		return domain.Descriptor{Kind: domain.KindMethod, Class: class, Name: name, Signature: rest}, nil
	}

	fieldType := rest[1:]
	if fieldType == "" || strings.TrimSpace(fieldType) != fieldType {
		return domain.Descriptor{}, malformed(s, "invalid field type")
	}
	return domain.Descriptor{Kind: domain.KindField, Class: class, Name: name, Signature: fieldType}, nil
}

// cutMember splits s at the first member separator outside a type argument list.
func cutMember(s string) (class, member string, found bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '-':
			if depth == 0 && strings.HasPrefix(s[i:], domain.MemberSeparator) {
				return s[:i], s[i+len(domain.MemberSeparator):], true
			}
		}
	}
	return s, "", false
}

// DecodeEntry decodes the payload of e, checking each descriptor against
// the entry's kind tag.
func (c *Codec) DecodeEntry(e domain.CacheEntry) ([]domain.Descriptor, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	payload := e.Payload()
	out := make([]domain.Descriptor, 0, len(payload))
	for i, s := range payload {
		d, err := c.Decode(s)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		if d.Kind != e.Kind {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrMalformedDescriptor, "descriptor shape disagrees with kind tag"), "kind", e.Kind.String()),
				"descriptor", s,
			)
		}
		out = append(out, d)
	}
	return out, nil
}

// Resolve turns d into a live symbol bound to loader.
func (c *Codec) Resolve(d domain.Descriptor, loader ports.Loader) (domain.Symbol, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	key := loader.ID() + "|" + d.String()
	if sym, ok := c.memo.Get(key); ok {
		return sym, nil
	}

	sym, err := resolve(d, loader)
	if err != nil {
		return nil, err
	}
	c.memo.Add(key, sym)
	return sym, nil
}

// ResolveAll resolves ds preserving order.
func (c *Codec) ResolveAll(ds []domain.Descriptor, loader ports.Loader) ([]domain.Symbol, error) {
	out := make([]domain.Symbol, 0, len(ds))
	for i, d := range ds {
		sym, err := c.Resolve(d, loader)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		out = append(out, sym)
	}
	return out, nil
}

// Purge drops every memoized symbol.
func (c *Codec) Purge() {
	c.memo.Purge()
}

// Len returns the number of memoized symbols.
func (c *Codec) Len() int {
	return c.memo.Len()
}

func resolve(d domain.Descriptor, loader ports.Loader) (domain.Symbol, error) {
	owner, ok := loader.LoadType(d.Class)
	if !ok {
		return nil, notFound(d, "type is not loadable")
	}

	switch d.Kind {
	case domain.KindClass:
		return domain.Class{Type: owner}, nil

	case domain.KindMethod:
		var (
			m     reflect.Method
			found bool
		)
		if owner.Kind() == reflect.Interface {
			m, found = owner.MethodByName(d.Name)
		} else {
			m, found = reflect.PointerTo(owner).MethodByName(d.Name)
		}
		if !found {
			return nil, notFound(d, "method does not exist")
		}
		sym := domain.Method{Owner: owner, Method: m}
		if sym.Descriptor().Signature != d.Signature {
			return nil, notFound(d, "method signature differs")
		}
		return sym, nil

	case domain.KindField:
		if owner.Kind() != reflect.Struct {
			return nil, notFound(d, "type is not a struct")
		}
		f, found := owner.FieldByName(d.Name)
		if !found {
			return nil, notFound(d, "field does not exist")
		}
		if domain.TypeName(f.Type) != d.Signature {
			return nil, notFound(d, "field type differs")
		}
		return domain.Field{Owner: owner, Field: f}, nil

	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownResultKind, "descriptor has no symbol kind"), "kind", int(d.Kind))
	}
}

func malformed(s, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedDescriptor, reason), "descriptor", s)
}

func notFound(d domain.Descriptor, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrSymbolNotFound, reason), "descriptor", d.String())
}

// validClass accepts "pkgpath.Name", generic instantiations and predeclared names.
// The type argument list is only checked for balanced brackets.
func validClass(class string) bool {
	base := class
	if open := strings.IndexByte(class, '['); open >= 0 {
		args := class[open:]
		if len(args) < 3 || !strings.HasSuffix(args, "]") || !balanced(args, '[', ']') || closesAt(args) != len(args)-1 {
			return false
		}
		base = class[:open]
	}
	if base == "" || strings.ContainsAny(base, " \t\n()[]") {
		return false
	}
	i := strings.LastIndexByte(base, '.')
	return isIdentifier(base[i+1:])
}

// closesAt returns the index where the bracket opened at s[0] is closed.
func closesAt(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func balanced(s string, open, closing rune) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case open:
			depth++
		case closing:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
