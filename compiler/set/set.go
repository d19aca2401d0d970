package set

import (
	"fmt"
	"sort"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Set is an unordered collection keyed by structural equality.
	Set[K comparable] map[K]struct{}
)

func Make[K comparable](sizehint int) Set[K] {
	return make(Set[K], sizehint)
}

func Of[K comparable](ks ...K) Set[K] {
	s := Make[K](len(ks))
	s.AddAll(ks...)

	return s
}

func (s Set[K]) Add(k K) {
	s[k] = struct{}{}
}

func (s Set[K]) AddAll(ks ...K) {
	for _, k := range ks {
		s[k] = struct{}{}
	}
}

func (s Set[K]) Del(k K) {
	delete(s, k)
}

func (s Set[K]) Has(k K) bool {
	_, ok := s[k]

	return ok
}

func (s Set[K]) Or(x Set[K]) {
	for k := range x {
		s[k] = struct{}{}
	}
}

func (s Set[K]) AndNot(x Set[K]) {
	for k := range x {
		delete(s, k)
	}
}

func (s Set[K]) Copy() Set[K] {
	c := Make[K](len(s))
	c.Or(s)

	return c
}

func (s Set[K]) Size() int {
	return len(s)
}

func (s Set[K]) Equal(x Set[K]) bool {
	if len(s) != len(x) {
		return false
	}

	for k := range s {
		if _, ok := x[k]; !ok {
			return false
		}
	}

	return true
}

func (s Set[K]) Range(f func(k K) bool) {
	for k := range s {
		if !f(k) {
			return
		}
	}
}

func (s Set[K]) Slice() []K {
	r := make([]K, 0, len(s))

	for k := range s {
		r = append(r, k)
	}

	return r
}

func (s Set[K]) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if s == nil {
		return e.AppendNil(b)
	}

	b = e.AppendTag(b, tlwire.Array, -1)

	for _, k := range s.sorted() {
		b = e.AppendString(b, k)
	}

	b = e.AppendBreak(b)

	return b
}

func (s Set[K]) sorted() []string {
	r := make([]string, 0, len(s))

	for k := range s {
		r = append(r, fmt.Sprint(k))
	}

	sort.Strings(r)

	return r
}
