package compound

import (
	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/nfa"
)

// uniformAcceptSet detects the common "accept any run of bytes drawn from a
// fixed set" shape a suffix piece takes for an unanchored affix (.*, or a
// character-class-bounded tail): the initial VisitingState is itself final,
// every accepted byte leads from it to one and the same final loop
// VisitingState, and from that loop state exactly the same bytes lead back
// to it.
// When this holds, checkSuffix can replace its per-byte NFA walk with a flat
// membership scan over the whole remainder, which is what
// alphabet.ByteRangeSet.ContainsAll is for.
//
// This probes every byte value once per call rather than caching the result
// against the piece, matching the rest of this package's posture (see
// prefixExitClassesAt's re-walk-from-scratch comment) of favoring a simple,
// directly-readable implementation over a maximally efficient one.
func uniformAcceptSet(n *nfa.NFA[byte]) (alphabet.RangeSet[byte], bool) {
	w := nfa.NewWalker(n)
	initial, ok := w.InitialState()
	if !ok || !w.IsFinalState(initial) {
		return alphabet.RangeSet[byte]{}, false
	}

	ba := alphabet.ByteAlphabet{}
	set := alphabet.Empty[byte](ba.Succ, ba.Pred)
	var loop nfa.VisitingState
	for v := 0; v < 256; v++ {
		b := byte(v)
		next, ok := w.NextState(initial, b)
		if !ok {
			continue
		}
		if set.IsEmpty() {
			loop = next
		}
		if !w.IsFinalState(next) || !sameVisitingState(next, loop) {
			return alphabet.RangeSet[byte]{}, false
		}
		set.InsertValue(b)
	}
	if set.IsEmpty() {
		return alphabet.RangeSet[byte]{}, false
	}
	for v := 0; v < 256; v++ {
		b := byte(v)
		next, ok := w.NextState(loop, b)
		if ok != set.Contains(b) || (ok && !sameVisitingState(next, loop)) {
			return alphabet.RangeSet[byte]{}, false
		}
	}
	return set, true
}

// sameVisitingState reports whether a and b are the walk over the same set
// of underlying NFA states, order ignored.
func sameVisitingState(a, b nfa.VisitingState) bool {
	as, bs := a.States(), b.States()
	if len(as) != len(bs) {
		return false
	}
	seen := make(map[nfa.StateID]bool, len(as))
	for _, s := range as {
		seen[s] = true
	}
	for _, s := range bs {
		if !seen[s] {
			return false
		}
	}
	return true
}
