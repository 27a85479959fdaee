// Package ere implements the POSIX Extended Regular Expression surface
// syntax spec.md §6 specifies as an external collaborator's contract:
// parsing source text to an AST, converting the AST to ir.IRegEx, and
// pretty-printing an ir.IRegEx back to canonical ERE text. Ported from
// original_source's src/regexp.rs (the complete, tested reference for
// escaping and canonical Display) and crates/syntax's Ast/Atom/Disjunction
// shape (the newer, anchor-aware AST spec.md §6 names), reconciled per
// spec.md §9's open question in favor of the newer AST shape.
package ere

import "github.com/coregx/iregex/alphabet"

// AST is the parsed form of an ERE pattern: an optional leading '^' and
// trailing '$' anchor around a Disjunction body.
type AST struct {
	StartAnchor bool
	EndAnchor   bool
	Body        Disjunction
}

// Disjunction is a set of alternative Sequences (the "|" operator).
type Disjunction []Sequence

// Sequence is a sequence of Atoms matched in order ("concatenation").
type Sequence []Atom

// AtomKind discriminates the sum-type Atom, mirroring spec.md §6's
// `Atom ∈ {Any, Char, Set(Charset), Repeat(Atom, Repeat), Group(Disjunction)}`
// with Char folded into Set as a singleton, matching regexp.rs's own fold.
type AtomKind int

const (
	AtomAny AtomKind = iota
	AtomSet
	AtomRepeat
	AtomGroup
)

// Repeat is a parsed quantifier's bounds. Max == nil means unbounded (`*`,
// `+`, `{m,}`).
type Repeat struct {
	Min uint32
	Max *uint32
}

// Atom is one piece of a Sequence.
type Atom struct {
	Kind AtomKind

	// AtomSet: the resolved character set (a single value for a plain
	// literal or \-escape, several for a [...] class).
	Set alphabet.RangeSet[byte]

	// AtomRepeat: Inner repeated per Count.
	Inner *Atom
	Count Repeat

	// AtomGroup: a parenthesized sub-disjunction.
	Group Disjunction
}

func maxU32p(v uint32) *uint32 { return &v }
