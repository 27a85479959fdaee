package ir

import (
	"github.com/coregx/iregex/class"
	"github.com/coregx/iregex/nfa"
)

// classConcat threads the per-class frontier through a Concatenation: each
// class seen so far maps to the state currently "active" in that class. The
// first atom reaching a given class records its exit state directly; a
// second atom reaching the SAME class allocates one shared join state and
// epsilon-links both into it, reusing that join state for any further
// collisions. This is the exact merging-flag discipline of
// original_source's ClassConcatenation<Q,C>.
type classConcat[C comparable] struct {
	m class.Map[C, concatSlot]
	b *nfa.U32StateBuilder[C]
}

type concatSlot struct {
	state   nfa.StateID
	merging bool
}

func newClassConcat[C comparable](b *nfa.U32StateBuilder[C]) *classConcat[C] {
	return &classConcat[C]{m: class.NewHashMap[C, concatSlot](), b: b}
}

// insert records that state s is reachable (via zero or more epsilon edges
// already present) when compilation is in class c.
func (cc *classConcat[C]) insert(c C, s nfa.StateID) error {
	if existing, ok := cc.m.Get(c); ok {
		if !existing.merging {
			d, err := cc.b.NextState(c)
			if err != nil {
				return err
			}
			cc.b.NFA.AddEpsilon(existing.state, d)
			existing = concatSlot{state: d, merging: true}
			cc.m.Set(c, existing)
		}
		cc.b.NFA.AddEpsilon(s, existing.state)
		return nil
	}
	cc.m.Set(c, concatSlot{state: s})
	return nil
}

// exits returns the final class -> state frontier.
func (cc *classConcat[C]) exits() class.Map[C, nfa.StateID] {
	out := class.NewHashMap[C, nfa.StateID]()
	for _, e := range cc.m.Entries() {
		out.Set(e.Class, e.Value.state)
	}
	return out
}

// classAlt unifies the exits of several alternation branches (or several
// loop-continuation paths) by lazily allocating one shared output state per
// class, the first time that class is produced by any branch; every branch
// reaching that class epsilon-links into the shared state. Ported from
// original_source's ClassAlternation<Q,C>.
type classAlt[C comparable] struct {
	m class.Map[C, nfa.StateID]
	b *nfa.U32StateBuilder[C]
}

func newClassAlt[C comparable](b *nfa.U32StateBuilder[C]) *classAlt[C] {
	return &classAlt[C]{m: class.NewHashMap[C, nfa.StateID](), b: b}
}

// insertDirect records that s (freshly allocated by the caller) is itself
// the shared state for class c, used when seeding a class with a state
// that should not get an extra epsilon indirection (e.g. a bounded
// repeat's skip state, which serves as its zero-repetition exit).
func (ca *classAlt[C]) insertDirect(c C, s nfa.StateID) {
	ca.m.Set(c, s)
}

// insert links branchExit into the shared output state for class c,
// allocating that shared state on first use.
func (ca *classAlt[C]) insert(c C, branchExit nfa.StateID) error {
	if shared, ok := ca.m.Get(c); ok {
		ca.b.NFA.AddEpsilon(branchExit, shared)
		return nil
	}
	shared, err := ca.b.NextState(c)
	if err != nil {
		return err
	}
	ca.m.Set(c, shared)
	ca.b.NFA.AddEpsilon(branchExit, shared)
	return nil
}
