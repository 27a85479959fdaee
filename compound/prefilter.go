package compound

import "github.com/coregx/ahocorasick"

// LiteralPrefilter accelerates scanning past positions that cannot possibly
// start a match, when the pattern's root alternation is made up entirely of
// plain-byte literals (e.g. "cat|dog|bird"). Ported from the teacher's
// meta.Engine's UseAhoCorasick strategy (compile.go/find.go), which builds
// one github.com/coregx/ahocorasick.Automaton over the pattern's literal set
// and uses its matches to bypass the general NFA walk entirely; here the
// automaton narrows candidate start positions instead, since iregex still
// needs the full prefix/root/suffix walk to confirm anchors and repeats.
type LiteralPrefilter struct {
	auto *ahocorasick.Automaton
}

// NewLiteralPrefilter builds a prefilter over literals, the distinct literal
// strings any root branch of the pattern begins with. Returns ok=false if
// literals is empty or the automaton fails to build, in which case callers
// should fall back to an unfiltered scan.
func NewLiteralPrefilter(literals [][]byte) (*LiteralPrefilter, bool) {
	if len(literals) == 0 {
		return nil, false
	}
	b := ahocorasick.NewBuilder()
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil, false
		}
		b.AddPattern(lit)
	}
	auto, err := b.Build()
	if err != nil {
		return nil, false
	}
	return &LiteralPrefilter{auto: auto}, true
}

// NextCandidate returns the start of the next position at or after from
// where some literal occurs, or ok=false if none remain.
func (p *LiteralPrefilter) NextCandidate(haystack []byte, from int) (int, bool) {
	if from >= len(haystack) {
		return 0, false
	}
	m := p.auto.Find(haystack, from)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}

// MayStartAt reports whether a match could plausibly start at pos: true
// whenever some literal begins there. Used to skip positions the
// prefilter's own scan already ruled out between two NextCandidate calls.
func (p *LiteralPrefilter) MayStartAt(haystack []byte, pos int) bool {
	if pos >= len(haystack) {
		return true // empty-match positions at EOF are never literal-gated
	}
	m := p.auto.Find(haystack, pos)
	return m != nil && m.Start == pos
}
