package nfa

// Tags records, per NFA state, which capture-group boundary markers (if
// any) fire when the automaton walk passes through that state. Ported from
// original_source's crates/automata/src/nfa/tags.rs.
//
// Per spec.md's Non-goals, tags are bookkeeping only: this module records
// where capture boundaries occur in the compiled NFA but does not surface
// captured substrings at match time.
type Tags[G comparable] struct {
	byState map[StateID][]G
}

// NewTags returns an empty tag table.
func NewTags[G comparable]() *Tags[G] {
	return &Tags[G]{byState: make(map[StateID][]G)}
}

// Add records that tag fires when the walk visits state s.
func (t *Tags[G]) Add(s StateID, tag G) {
	t.byState[s] = append(t.byState[s], tag)
}

// At returns the tags firing at state s, if any.
func (t *Tags[G]) At(s StateID) ([]G, bool) {
	tags, ok := t.byState[s]
	return tags, ok
}

// CaptureGroupID identifies one capture group by its 1-based index in
// left-to-right order of opening parenthesis, matching spec.md §6's AST
// numbering and original_source's CaptureGroupId(u32).
type CaptureGroupID uint32

// CaptureTag marks either the start or end boundary of a capture group.
type CaptureTag struct {
	Group CaptureGroupID
	IsEnd bool
}
