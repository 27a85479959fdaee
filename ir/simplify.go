package ir

// IsEmpty reports whether the concatenation matches only the empty
// sequence: either it has no atoms, or every atom is a zero-repetition
// AtomRepeat. Ported from original_source's RegExp::is_empty.
func (seq Concatenation[C]) IsEmpty() bool {
	for _, a := range seq {
		if a.Kind != AtomRepeat || !a.Count.IsZero() {
			return false
		}
	}
	return true
}

// IsSimple reports whether seq prints without needing parentheses when
// embedded in a larger expression: a single atom, or empty. Ported from
// original_source's RegExp::is_simple. The ere pretty-printer does not call
// it; it uses its own recursive concatIsSimple.
func (seq Concatenation[C]) IsSimple() bool {
	return len(seq) <= 1
}

// IsSingleton reports whether alt has exactly one branch.
func (alt Alternation[C]) IsSingleton() bool {
	return len(alt) == 1
}

// AsSingleton returns alt's sole branch if IsSingleton, else ok is false.
func (alt Alternation[C]) AsSingleton() (Concatenation[C], bool) {
	if len(alt) == 1 {
		return alt[0], true
	}
	return nil, false
}

// IsEmpty reports whether every branch of alt matches only the empty
// sequence (or alt has no branches at all, which recognizes nothing, not
// even the empty sequence — callers distinguishing "matches nothing" from
// "matches only empty" should check len(alt) == 0 separately).
func (alt Alternation[C]) IsEmpty() bool {
	if len(alt) == 0 {
		return false
	}
	for _, c := range alt {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Simplify simplifies the bodies of repeat and capture atoms recursively
// and drops every branch that matches only the empty sequence except the
// first such branch. It does not flatten single-branch alternations or
// single-atom concatenations, and nothing in this module calls it before
// compiling or printing. Ported from original_source's RegExp::simplified.
func Simplify[C comparable](alt Alternation[C]) Alternation[C] {
	out := make(Alternation[C], 0, len(alt))
	seenEmpty := false
	for _, branch := range alt {
		simplified := make(Concatenation[C], 0, len(branch))
		for _, a := range branch {
			simplified = append(simplified, simplifyAtom(a))
		}
		if simplified.IsEmpty() {
			if seenEmpty {
				continue
			}
			seenEmpty = true
		}
		out = append(out, simplified)
	}
	return out
}

func simplifyAtom[C comparable](a Atom[C]) Atom[C] {
	switch a.Kind {
	case AtomRepeat:
		a.RepeatBody = Simplify(a.RepeatBody)
	case AtomCapture:
		a.Body = Simplify(a.Body)
	}
	return a
}
