package domain

import "go.trai.ch/zerr"

// Result is what a search produces: a single descriptor or an ordered list.
// The zero Result is neither and is rejected as an unknown result kind.
type Result struct {
	descriptors []Descriptor
	list        bool
	set         bool
}

// One returns a single-symbol result.
func One(d Descriptor) Result {
	return Result{descriptors: []Descriptor{d}, set: true}
}

// Many returns a list result. Order is preserved.
func Many(ds ...Descriptor) Result {
	out := make([]Descriptor, len(ds))
	copy(out, ds)
	return Result{descriptors: out, list: true, set: true}
}

// IsList reports whether the result is a list.
func (r Result) IsList() bool {
	return r.list
}

// Descriptors returns the descriptors of the result in order.
func (r Result) Descriptors() []Descriptor {
	return r.descriptors
}

// Kind classifies the result. An empty list has KindUnknown and no error.
func (r Result) Kind() (Kind, error) {
	if !r.set {
		return KindUnknown, zerr.Wrap(ErrUnknownResultKind, "search returned no result")
	}

	kind := KindUnknown
	for i, d := range r.descriptors {
		if !d.Kind.Valid() {
			return KindUnknown, zerr.With(zerr.Wrap(ErrUnknownResultKind, "search returned an unrecognized symbol"), "index", i)
		}
		if kind != KindUnknown && d.Kind != kind {
			return KindUnknown, zerr.With(
				zerr.With(zerr.Wrap(ErrHeterogeneousResult, "search returned mixed kinds"), "first", kind.String()),
				"other", d.Kind.String(),
			)
		}
		kind = d.Kind
	}
	return kind, nil
}

// Only turns an engine answer into a single-symbol result.
// It fails unless exactly one descriptor was found.
func Only(ds []Descriptor, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	if len(ds) != 1 {
		return Result{}, zerr.With(zerr.Wrap(ErrNoUniqueMatch, "expected a single match"), "matches", len(ds))
	}
	return One(ds[0]), nil
}

// All turns an engine answer into a list result.
func All(ds []Descriptor, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Many(ds...), nil
}
