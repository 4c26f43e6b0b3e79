package symindex

import (
	"reflect"
	"regexp"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/zerr"
)

func compileName(exact, pattern string) (func(string) bool, error) {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidQuery, "invalid name pattern"), "pattern", pattern)
		}
	}

	return func(name string) bool {
		if exact != "" && name != exact {
			return false
		}
		return re == nil || re.MatchString(name)
	}, nil
}

func compileClass(q domain.ClassQuery) (func(class) bool, error) {
	name, err := compileName(q.Name, q.NamePattern)
	if err != nil {
		return nil, err
	}

	for _, iface := range q.Implements {
		if iface == nil || iface.Kind() != reflect.Interface {
			return nil, zerr.Wrap(domain.ErrInvalidQuery, "implements requires interface types")
		}
	}

	return func(c class) bool {
		if q.Package != "" && c.typ.PkgPath() != q.Package {
			return false
		}
		if !name(c.typ.Name()) {
			return false
		}
		for _, iface := range q.Implements {
			if !c.implements(iface) {
				return false
			}
		}
		for _, m := range q.HasMethods {
			if !c.hasMethod(m) {
				return false
			}
		}
		for _, f := range q.HasFields {
			if !c.hasField(f) {
				return false
			}
		}
		return true
	}, nil
}
