// Package class implements the Class/Map abstraction the IR compiler
// threads through compilation: a Class partitions the token alphabet by
// context (e.g. word-boundary state), and a Map associates a value (an NFA
// state, an exit set) with each class actually produced.
//
// Ported from original_source's MapSource/Class/Map/Unmapped, adapted from
// Rust's associated-type-constructor pattern to Go generics.
package class

import "github.com/coregx/iregex/alphabet"

// Class classifies tokens of type T into values of type C, and can advance
// to the next class after consuming a token. The trivial class is Trivial,
// with a single inhabitant struct{}{}.
type Class[T alphabet.Token, C comparable] interface {
	// Classify partitions set into one sub-range-set per class reachable
	// from it. The returned map's values are disjoint and their union is
	// exactly set.
	Classify(set *alphabet.RangeSet[T]) Map[C, alphabet.RangeSet[T]]

	// NextClass returns the class in effect after consuming token.
	NextClass(token T) C
}

// Map associates values of type V with classes of type C. Implementations
// must support lazy insertion (GetOrInsert) since the IR compiler allocates
// a join/exit state for a class only the first time two branches collide
// on it.
type Map[C comparable, V any] interface {
	Get(c C) (V, bool)
	Set(c C, v V)
	// GetOrInsert returns the existing value for c, or computes and stores
	// f() if none exists yet.
	GetOrInsert(c C, f func() V) V
	// Each calls visit once per (class, value) pair, in no particular
	// order the caller may depend on.
	Each(visit func(C, V))
	// Entries returns every (class, value) pair as a slice, for callers
	// that need to propagate an error out of the loop body (Each's
	// callback signature can't return one).
	Entries() []Entry[C, V]
	Len() int
}

// Entry is one (class, value) pair, used by Map.Entries.
type Entry[C comparable, V any] struct {
	Class C
	Value V
}

// Trivial is the single-inhabitant class used when no context-sensitivity
// is needed: every token belongs to the same class, (). It mirrors
// original_source's impl Class<T> for ().
type Trivial[T alphabet.Token] struct{}

func (Trivial[T]) Classify(set *alphabet.RangeSet[T]) Map[struct{}, alphabet.RangeSet[T]] {
	m := NewTrivialMap[alphabet.RangeSet[T]]()
	m.Set(struct{}{}, set.Clone())
	return m
}

func (Trivial[T]) NextClass(T) struct{} { return struct{}{} }

// trivialMap is the Map[struct{}, V] implementation with exactly one slot,
// mirroring original_source's Unmapped<T>.
type trivialMap[V any] struct {
	v    V
	has  bool
}

// NewTrivialMap returns an empty Map over the trivial class.
func NewTrivialMap[V any]() Map[struct{}, V] {
	return &trivialMap[V]{}
}

func (m *trivialMap[V]) Get(struct{}) (V, bool) {
	return m.v, m.has
}

func (m *trivialMap[V]) Set(_ struct{}, v V) {
	m.v = v
	m.has = true
}

func (m *trivialMap[V]) GetOrInsert(c struct{}, f func() V) V {
	if !m.has {
		m.Set(c, f())
	}
	return m.v
}

func (m *trivialMap[V]) Each(visit func(struct{}, V)) {
	if m.has {
		visit(struct{}{}, m.v)
	}
}

func (m *trivialMap[V]) Len() int {
	if m.has {
		return 1
	}
	return 0
}

func (m *trivialMap[V]) Entries() []Entry[struct{}, V] {
	if !m.has {
		return nil
	}
	return []Entry[struct{}, V]{{Class: struct{}{}, Value: m.v}}
}

// HashMap is a general Map[C, V] for any comparable class type, used by
// non-trivial classes such as WordBoundary.
type HashMap[C comparable, V any] struct {
	m map[C]V
}

// NewHashMap returns an empty Map keyed by a comparable class type.
func NewHashMap[C comparable, V any]() Map[C, V] {
	return &HashMap[C, V]{m: make(map[C]V)}
}

func (h *HashMap[C, V]) Get(c C) (V, bool) {
	v, ok := h.m[c]
	return v, ok
}

func (h *HashMap[C, V]) Set(c C, v V) { h.m[c] = v }

func (h *HashMap[C, V]) GetOrInsert(c C, f func() V) V {
	if v, ok := h.m[c]; ok {
		return v
	}
	v := f()
	h.m[c] = v
	return v
}

func (h *HashMap[C, V]) Each(visit func(C, V)) {
	for c, v := range h.m {
		visit(c, v)
	}
}

func (h *HashMap[C, V]) Len() int { return len(h.m) }

func (h *HashMap[C, V]) Entries() []Entry[C, V] {
	out := make([]Entry[C, V], 0, len(h.m))
	for c, v := range h.m {
		out = append(out, Entry[C, V]{Class: c, Value: v})
	}
	return out
}
