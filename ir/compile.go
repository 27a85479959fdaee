package ir

import (
	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/class"
	"github.com/coregx/iregex/nfa"
)

// Tags is the concrete tag type threaded through compilation: a capture
// group boundary marker. Per spec.md's Non-goals, these are recorded for
// bookkeeping only and are not surfaced at match time.
type Tags = nfa.Tags[nfa.CaptureTag]

// BuildFrom compiles atom starting in class c, returning the entry state
// and the map of exit classes to exit states (the "frontier" the caller
// threads onward). Ported from original_source's Atom::build_nfa_from
// (spec.md §4.G).
func (a Atom[C]) BuildFrom(c C, b *nfa.U32StateBuilder[C], cls class.Class[byte, C], tags *Tags) (nfa.StateID, class.Map[C, nfa.StateID], error) {
	switch a.Kind {
	case AtomBoundary:
		entry, err := b.NextState(c)
		if err != nil {
			return 0, nil, err
		}
		exits := class.NewHashMap[C, nfa.StateID]()
		if c2, ok := a.Boundary.Apply(c); ok {
			exit, err := b.NextState(c2)
			if err != nil {
				return 0, nil, err
			}
			b.NFA.AddEpsilon(entry, exit)
			exits.Set(c2, exit)
		}
		return entry, exits, nil

	case AtomToken:
		entry, err := b.NextState(c)
		if err != nil {
			return 0, nil, err
		}
		parts := cls.Classify(&a.Token)
		exits := class.NewHashMap[C, nfa.StateID]()
		for _, pe := range parts.Entries() {
			if pe.Value.IsEmpty() {
				continue
			}
			exit, err := b.NextState(pe.Class)
			if err != nil {
				return 0, nil, err
			}
			b.NFA.AddRange(entry, pe.Value, exit)
			exits.Set(pe.Class, exit)
		}
		return entry, exits, nil

	case AtomRepeat:
		return buildRepeat(a.Count, a.RepeatBody, c, b, cls, tags, newKleeneMemo[C]())

	case AtomCapture:
		entry, exits, err := a.Body.BuildFrom(c, b, cls, tags)
		if err != nil {
			return 0, nil, err
		}
		tags.Add(entry, nfa.CaptureTag{Group: a.Group, IsEnd: false})
		for _, ee := range exits.Entries() {
			tags.Add(ee.Value, nfa.CaptureTag{Group: a.Group, IsEnd: true})
		}
		return entry, exits, nil

	default:
		panic("ir: unknown atom kind")
	}
}

// BuildFrom compiles a concatenation starting in class c, threading the
// per-class frontier across atoms via classConcat (spec.md §4.G's
// Concatenation algorithm).
func (seq Concatenation[C]) BuildFrom(c C, b *nfa.U32StateBuilder[C], cls class.Class[byte, C], tags *Tags) (nfa.StateID, class.Map[C, nfa.StateID], error) {
	entry, err := b.NextState(c)
	if err != nil {
		return 0, nil, err
	}
	frontier := []class.Entry[C, nfa.StateID]{{Class: c, Value: entry}}

	for _, atom := range seq {
		next := newClassConcat(b)
		for _, fe := range frontier {
			a, exits, err := atom.BuildFrom(fe.Class, b, cls, tags)
			if err != nil {
				return 0, nil, err
			}
			b.NFA.AddEpsilon(fe.Value, a)
			for _, ee := range exits.Entries() {
				if err := next.insert(ee.Class, ee.Value); err != nil {
					return 0, nil, err
				}
			}
		}
		frontier = next.exits().Entries()
	}

	out := class.NewHashMap[C, nfa.StateID]()
	for _, fe := range frontier {
		out.Set(fe.Class, fe.Value)
	}
	return entry, out, nil
}

// BuildFrom compiles an alternation starting in class c. Zero branches
// compiles to a dead end (recognizes nothing); one branch delegates
// directly; multiple branches fan out from a fresh entry state and unify
// their exits per class via classAlt (spec.md §4.G's Alternation
// algorithm).
func (alt Alternation[C]) BuildFrom(c C, b *nfa.U32StateBuilder[C], cls class.Class[byte, C], tags *Tags) (nfa.StateID, class.Map[C, nfa.StateID], error) {
	if len(alt) == 0 {
		entry, err := b.NextState(c)
		if err != nil {
			return 0, nil, err
		}
		return entry, class.NewHashMap[C, nfa.StateID](), nil
	}
	if len(alt) == 1 {
		return alt[0].BuildFrom(c, b, cls, tags)
	}

	entry, err := b.NextState(c)
	if err != nil {
		return 0, nil, err
	}
	ca := newClassAlt(b)
	for _, branch := range alt {
		a, exits, err := branch.BuildFrom(c, b, cls, tags)
		if err != nil {
			return 0, nil, err
		}
		b.NFA.AddEpsilon(entry, a)
		for _, ee := range exits.Entries() {
			if err := ca.insert(ee.Class, ee.Value); err != nil {
				return 0, nil, err
			}
		}
	}
	return entry, ca.m, nil
}

// buildRepeat implements spec.md §4.G's Repeat::build_nfa_for: IsZero
// collapses to a single state recognizing only the empty sequence; IsOne
// delegates to the body; Min > 0 builds the body once then recurses on
// {Min-1, Max-1}; Min == 0 with a bound builds a skip edge alongside one
// body copy and recurses on {0, Max-1}; Min == 0 unbounded is the memoized
// Kleene-star closure.
func buildRepeat[C comparable](rep Repeat, body Alternation[C], c C, b *nfa.U32StateBuilder[C], cls class.Class[byte, C], tags *Tags, memo *kleeneMemo[C]) (nfa.StateID, class.Map[C, nfa.StateID], error) {
	switch {
	case rep.IsZero():
		entry, err := b.NextState(c)
		if err != nil {
			return 0, nil, err
		}
		exits := class.NewHashMap[C, nfa.StateID]()
		exits.Set(c, entry)
		return entry, exits, nil

	case rep.IsOne():
		return body.BuildFrom(c, b, cls, tags)

	case rep.Min == 0 && rep.Max == nil:
		return kleeneStarClosure(c, body, b, cls, tags, memo)

	case rep.Min > 0:
		a, bodyExits, err := body.BuildFrom(c, b, cls, tags)
		if err != nil {
			return 0, nil, err
		}
		tail := rep.splitOne()
		cc := newClassConcat(b)
		for _, ee := range bodyExits.Entries() {
			a2, exits2, err := buildRepeat(tail, body, ee.Class, b, cls, tags, memo)
			if err != nil {
				return 0, nil, err
			}
			b.NFA.AddEpsilon(ee.Value, a2)
			for _, e2 := range exits2.Entries() {
				if err := cc.insert(e2.Class, e2.Value); err != nil {
					return 0, nil, err
				}
			}
		}
		return a, cc.exits(), nil

	default: // Min == 0, Max == Some(n), n >= 1
		entry, err := b.NextState(c)
		if err != nil {
			return 0, nil, err
		}
		// skip is a distinct state from entry: entry only ever gets an
		// epsilon edge OUT (to skip or into the body), never one pointed
		// back at it, so the zero-repetitions exit can't be re-entered into
		// the body through a standing edge. See original_source's
		// ir/mod.rs a/b pair and DESIGN.md for why entry must not double as
		// its own exit here.
		skip, err := b.NextState(c)
		if err != nil {
			return 0, nil, err
		}
		b.NFA.AddEpsilon(entry, skip)

		ca := newClassAlt(b)
		ca.insertDirect(c, skip)

		a, bodyExits, err := body.BuildFrom(c, b, cls, tags)
		if err != nil {
			return 0, nil, err
		}
		b.NFA.AddEpsilon(entry, a)

		tail := Repeat{Min: 0, Max: uint32p(*rep.Max - 1)}
		for _, ee := range bodyExits.Entries() {
			a2, exits2, err := buildRepeat(tail, body, ee.Class, b, cls, tags, memo)
			if err != nil {
				return 0, nil, err
			}
			b.NFA.AddEpsilon(ee.Value, a2)
			for _, e2 := range exits2.Entries() {
				if err := ca.insert(e2.Class, e2.Value); err != nil {
					return 0, nil, err
				}
			}
		}
		return entry, ca.m, nil
	}
}

// kleeneMemo records, per class, the loop-head state already allocated for
// that class and its (still being populated) exit map, so a repeat body
// whose exit class loops back to a class already under construction reuses
// the existing state instead of recursing forever. Ported from
// original_source's kleene_star_closure memoization requirement (spec.md
// §9's design notes call this out explicitly).
type kleeneMemo[C comparable] struct {
	entry map[C]nfa.StateID
	exits map[C]class.Map[C, nfa.StateID]
}

func newKleeneMemo[C comparable]() *kleeneMemo[C] {
	return &kleeneMemo[C]{entry: map[C]nfa.StateID{}, exits: map[C]class.Map[C, nfa.StateID]{}}
}

func kleeneStarClosure[C comparable](startClass C, body Alternation[C], b *nfa.U32StateBuilder[C], cls class.Class[byte, C], tags *Tags, memo *kleeneMemo[C]) (nfa.StateID, class.Map[C, nfa.StateID], error) {
	if e, ok := memo.entry[startClass]; ok {
		return e, memo.exits[startClass], nil
	}

	entry, err := b.NextState(startClass)
	if err != nil {
		return 0, nil, err
	}
	memo.entry[startClass] = entry

	altMap := class.NewHashMap[C, nfa.StateID]()
	altMap.Set(startClass, entry) // zero repetitions: the loop head is itself an exit
	memo.exits[startClass] = altMap

	a, bodyExits, err := body.BuildFrom(startClass, b, cls, tags)
	if err != nil {
		return 0, nil, err
	}
	b.NFA.AddEpsilon(entry, a)

	for _, ee := range bodyExits.Entries() {
		if ee.Class == startClass {
			b.NFA.AddEpsilon(ee.Value, entry)
			continue
		}
		a2, exits2, err := kleeneStarClosure(ee.Class, body, b, cls, tags, memo)
		if err != nil {
			return 0, nil, err
		}
		b.NFA.AddEpsilon(ee.Value, a2)
		for _, e2 := range exits2.Entries() {
			if _, already := altMap.Get(e2.Class); !already {
				altMap.Set(e2.Class, e2.Value)
			}
		}
	}

	return entry, altMap, nil
}

// AsAlternation converts an Affix into the Alternation its three forms
// represent, so the compiler can treat prefix/root/suffix uniformly.
// Ported from original_source's Affix::build_nfa_from: Any is .*, Anchor is
// the empty concatenation, Alternation delegates directly.
func (a Affix[C]) AsAlternation() Alternation[C] {
	switch a.Kind {
	case AffixAny:
		anyByte := alphabet.ByteAlphabet{}.All()
		return Alternation[C]{Concatenation[C]{StarAtom[C](Alternation[C]{Concatenation[C]{TokenAtom[C](anyByte)}})}}
	case AffixAnchor:
		return Alternation[C]{Concatenation[C]{}}
	default:
		return a.Alt
	}
}
