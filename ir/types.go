// Package ir implements the intermediate representation the ERE parser
// targets and the class-threaded NFA compiler consumes: Atom, Concatenation,
// Alternation, Affix and the top-level IRegEx, together with the compiler
// that turns an IRegEx into a *Compiled (prefix, root and suffix NFAs).
//
// Ported from original_source's src/ir/{mod,atom,concatenation,alternation,
// affix,boundary}.rs — the newer, class-threaded variant spec.md §9's first
// Open Question asks an implementer to choose (see DESIGN.md).
package ir

import (
	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/class"
	"github.com/coregx/iregex/nfa"
)

// CaptureGroupID identifies one capture group by its 1-based index in
// left-to-right order of opening parenthesis.
type CaptureGroupID = nfa.CaptureGroupID

// Repeat is a bounded or unbounded repetition count: Min repetitions
// required, Max an optional upper bound (nil means unbounded).
type Repeat struct {
	Min uint32
	Max *uint32 // nil = unbounded
}

// IsZero reports whether Repeat always matches the empty sequence and
// nothing else: Max is set and either Max == 0 or Max < Min. An unbounded
// Repeat (Max == nil) is never zero, and neither is {n,n} for n > 0. The
// malformed Max < Min case collapses to zero rather than panicking — this
// resolves spec.md §9's second Open Question.
func (r Repeat) IsZero() bool {
	return r.Max != nil && (*r.Max < r.Min || *r.Max == 0)
}

// IsOne reports whether Repeat matches exactly one repetition: Min == 1 and
// Max == Some(1).
func (r Repeat) IsOne() bool {
	return r.Min == 1 && r.Max != nil && *r.Max == 1
}

// splitOne returns the Repeat for "one fewer repetition": used to recurse
// down a bounded or lower-bounded repeat one atom at a time.
func (r Repeat) splitOne() Repeat {
	out := Repeat{}
	if r.Min > 0 {
		out.Min = r.Min - 1
	}
	if r.Max != nil {
		m := *r.Max - 1
		out.Max = &m
	}
	return out
}

func uint32p(v uint32) *uint32 { return &v }

// AtomKind discriminates the sum-type Atom, mirroring original_source's
// Atom<T,B> enum (Boundary, Token, Repeat, Capture).
type AtomKind int

const (
	AtomBoundary AtomKind = iota
	AtomToken
	AtomRepeat
	AtomCapture
)

// Atom is one irreducible piece of a Concatenation. Exactly one of the
// kind-specific fields is meaningful, selected by Kind.
type Atom[C comparable] struct {
	Kind AtomKind

	// AtomBoundary: the zero-width assertion to test.
	Boundary class.Boundary[C]

	// AtomToken: the set of tokens this atom matches (one token consumed).
	Token alphabet.RangeSet[byte]

	// AtomRepeat: body repeated per Count.
	RepeatBody Alternation[C]
	Count      Repeat

	// AtomCapture: a numbered capture group wrapping body.
	Group      CaptureGroupID
	CaptureEnd bool // unused placeholder for symmetry with Tags' start/end pair
	Body       Alternation[C]
}

// TokenAtom returns an Atom matching exactly one token from set.
func TokenAtom[C comparable](set alphabet.RangeSet[byte]) Atom[C] {
	return Atom[C]{Kind: AtomToken, Token: set}
}

// BoundaryAtom returns a zero-width assertion atom.
func BoundaryAtom[C comparable](b class.Boundary[C]) Atom[C] {
	return Atom[C]{Kind: AtomBoundary, Boundary: b}
}

// RepeatAtom returns body repeated according to count.
func RepeatAtom[C comparable](body Alternation[C], count Repeat) Atom[C] {
	return Atom[C]{Kind: AtomRepeat, RepeatBody: body, Count: count}
}

// CaptureAtom returns a numbered capture group wrapping body.
func CaptureAtom[C comparable](group CaptureGroupID, body Alternation[C]) Atom[C] {
	return Atom[C]{Kind: AtomCapture, Group: group, Body: body}
}

// StarAtom returns body* (zero or more repetitions, unbounded), matching
// original_source's Atom::star convenience constructor.
func StarAtom[C comparable](body Alternation[C]) Atom[C] {
	return RepeatAtom(body, Repeat{Min: 0, Max: nil})
}

// Concatenation is a sequence of atoms matched in order.
type Concatenation[C comparable] []Atom[C]

// Alternation is a set of concatenation branches, any one of which may
// match (the ERE "|" operator).
type Alternation[C comparable] []Concatenation[C]

// AffixKind discriminates Affix's three forms.
type AffixKind int

const (
	AffixAny AffixKind = iota
	AffixAnchor
	AffixAlternation
)

// Affix is the prefix or suffix half of an IRegEx: unanchored (Any, i.e.
// ".*"), anchored (Anchor, i.e. the empty string only), or an explicit
// look-around alternation. Ported from original_source's Affix<T,B>.
type Affix[C comparable] struct {
	Kind AffixKind
	Alt  Alternation[C]
}

// AnyAffix matches any run of tokens (unanchored).
func AnyAffix[C comparable]() Affix[C] { return Affix[C]{Kind: AffixAny} }

// AnchorAffix matches only the empty string (anchored).
func AnchorAffix[C comparable]() Affix[C] { return Affix[C]{Kind: AffixAnchor} }

// IRegEx is the top-level compiled-from-AST representation: a root
// alternation plus prefix/suffix affixes implementing anchoring, matching
// spec.md's CompoundAutomaton⟨A,C⟩ decomposition.
type IRegEx[C comparable] struct {
	Root   Alternation[C]
	Prefix Affix[C]
	Suffix Affix[C]
}

// Anchored returns an IRegEx matching root only when it spans the entire
// haystack.
func Anchored[C comparable](root Alternation[C]) IRegEx[C] {
	return IRegEx[C]{Root: root, Prefix: AnchorAffix[C](), Suffix: AnchorAffix[C]()}
}

// Unanchored returns an IRegEx matching root anywhere within the haystack.
func Unanchored[C comparable](root Alternation[C]) IRegEx[C] {
	return IRegEx[C]{Root: root, Prefix: AnyAffix[C](), Suffix: AnyAffix[C]()}
}
