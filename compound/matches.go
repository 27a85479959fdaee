// Package compound implements the prefix/root/suffix matcher spec.md §4.H
// describes: a lazy iterator over non-overlapping match ranges, driven by
// the three-NFA family ir.Compile produces. Ported in spirit from
// original_source's src/compiled.rs (CompiledRegEx, Matches::next,
// next_from_position, check_suffix).
package compound

import (
	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/ir"
	"github.com/coregx/iregex/nfa"
)

// Span is a half-open match range [Start, End) into the haystack.
type Span struct {
	Start, End int
}

// Automaton wraps the compiled prefix/root/suffix family for one pattern
// and drives the matching algorithm over a haystack.
type Automaton[C comparable] struct {
	compiled  *ir.Compiled[C]
	prefilter *LiteralPrefilter
}

// New wraps compiled for matching. prefilter may be nil.
func New[C comparable](compiled *ir.Compiled[C], prefilter *LiteralPrefilter) *Automaton[C] {
	return &Automaton[C]{compiled: compiled, prefilter: prefilter}
}

// Matches returns a lazy iterator over every non-overlapping match in
// haystack, leftmost first.
func (a *Automaton[C]) Matches(haystack []byte) *Matches[C] {
	return &Matches[C]{a: a, haystack: haystack}
}

// Matches is the lazy match-range iterator, ported from compiled.rs's
// Matches::next: scan forward for a position where the prefix automaton is
// in a final state, attempt the longest root match from there, confirm it
// with a full-exhaustion suffix check, and advance past whatever was
// consumed (at least one token, to guarantee forward progress on
// zero-length matches) before resuming the scan.
type Matches[C comparable] struct {
	a        *Automaton[C]
	haystack []byte
	min      int // forward-progress watermark
	done     bool
}

// Next returns the next match, or ok=false when the haystack is exhausted.
func (m *Matches[C]) Next() (Span, bool) {
	if m.done {
		return Span{}, false
	}
	c := m.a.compiled

	start := m.min
	if m.a.prefilter != nil {
		next, ok := m.a.prefilter.NextCandidate(m.haystack, start)
		if !ok {
			m.done = true
			return Span{}, false
		}
		start = next
	}

	for pos := start; pos <= len(m.haystack); pos++ {
		if m.a.prefilter != nil && !m.a.prefilter.MayStartAt(m.haystack, pos) {
			continue
		}
		if span, ok := m.matchFrom(c, pos); ok {
			if span.End > pos {
				m.min = span.End
			} else {
				m.min = pos + 1
			}
			return span, true
		}
	}
	m.done = true
	return Span{}, false
}

// matchFrom attempts prefix -> root -> suffix starting exactly at pos,
// returning the longest full match (spec.md's "longest match within root,
// re-checked by suffix" rule).
func (m *Matches[C]) matchFrom(c *ir.Compiled[C], pos int) (Span, bool) {
	prefixClasses, ok := m.prefixExitClassesAt(c, pos)
	if !ok {
		return Span{}, false
	}

	best := -1
	for _, startClass := range prefixClasses {
		root, ok := c.Root[startClass]
		if !ok {
			continue
		}
		w := nfa.NewWalker(root.NFA)
		state, ok := w.InitialState()
		if !ok {
			continue
		}
		p := pos
		for {
			if w.IsFinalState(state) {
				for _, s := range state.States() {
					rc, ok := root.ExitClass[s]
					if !ok {
						continue
					}
					if suffix, ok := c.Suffix[rc]; ok && checkSuffix(suffix, m.haystack, p) {
						if p > best {
							best = p
						}
					}
				}
			}
			if p >= len(m.haystack) {
				break
			}
			next, ok := w.NextState(state, m.haystack[p])
			if !ok {
				break
			}
			state = next
			p++
		}
	}

	if best < 0 {
		return Span{}, false
	}
	return Span{Start: pos, End: best}, true
}

// prefixExitClassesAt walks the prefix automaton from scratch across
// haystack[0:pos] and returns the exit classes of its final states there.
// Re-walking from the start on every candidate position is the
// straightforward, if not maximally efficient, reading of
// next_from_position's incremental prefix_state threading; see DESIGN.md.
func (m *Matches[C]) prefixExitClassesAt(c *ir.Compiled[C], pos int) ([]C, bool) {
	w := nfa.NewWalker(c.Prefix.NFA)
	state, ok := w.InitialState()
	if !ok {
		return nil, false
	}
	for i := 0; i < pos; i++ {
		next, ok := w.NextState(state, m.haystack[i])
		if !ok {
			return nil, false
		}
		state = next
	}
	if !w.IsFinalState(state) {
		return nil, false
	}
	var out []C
	for _, s := range state.States() {
		if cl, ok := c.Prefix.ExitClass[s]; ok {
			out = append(out, cl)
		}
	}
	return out, len(out) > 0
}

// checkSuffix reports whether piece's automaton can consume the entire
// remainder of haystack (from pos to the end) and land on a final state —
// "running the suffix automaton to exhaustion", per spec.md §4.H. When
// piece's automaton accepts any run of bytes from a fixed set (the common
// unanchored-affix shape), this is answered with a single batched
// alphabet.ByteRangeSet.ContainsAll scan instead of stepping the NFA one
// byte at a time.
func checkSuffix[C comparable](piece *ir.CompiledPiece[C], haystack []byte, pos int) bool {
	if set, ok := uniformAcceptSet(piece.NFA); ok {
		return alphabet.NewByteRangeSet(&set).ContainsAll(haystack[pos:])
	}

	w := nfa.NewWalker(piece.NFA)
	state, ok := w.InitialState()
	if !ok {
		return false
	}
	for i := pos; i < len(haystack); i++ {
		next, ok := w.NextState(state, haystack[i])
		if !ok {
			return false
		}
		state = next
	}
	return w.IsFinalState(state)
}
