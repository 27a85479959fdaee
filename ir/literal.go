package ir

import "github.com/coregx/iregex/alphabet"

// ExtractLiterals reports whether every branch of alt is a concatenation of
// fixed single-byte tokens (no repeats, captures, or boundaries) and, if so,
// returns the literal byte string each branch spells out. An empty
// alternation, or any branch containing a non-literal atom or matching the
// empty string, fails the check. Used to recognize the literal-only-
// alternation shape before falling back to the general NFA walk, mirroring
// the teacher's meta.Engine UseAhoCorasick strategy (compile.go's literal-set
// detection ahead of the Pike VM).
func ExtractLiterals[C comparable](alt Alternation[C]) ([][]byte, bool) {
	if len(alt) == 0 {
		return nil, false
	}
	out := make([][]byte, 0, len(alt))
	for _, branch := range alt {
		lit, ok := concatLiteral(branch)
		if !ok {
			return nil, false
		}
		out = append(out, lit)
	}
	return out, true
}

func concatLiteral[C comparable](seq Concatenation[C]) ([]byte, bool) {
	lit := make([]byte, 0, len(seq))
	for _, atom := range seq {
		if atom.Kind != AtomToken {
			return nil, false
		}
		b, ok := singleByte(&atom.Token)
		if !ok {
			return nil, false
		}
		lit = append(lit, b)
	}
	if len(lit) == 0 {
		return nil, false
	}
	return lit, true
}

// singleByte reports whether set contains exactly one value, returning it.
func singleByte(set *alphabet.RangeSet[byte]) (byte, bool) {
	ivals := set.Intervals()
	if len(ivals) != 1 || ivals[0].Lo != ivals[0].Hi {
		return 0, false
	}
	return ivals[0].Lo, true
}
