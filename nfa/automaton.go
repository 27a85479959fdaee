package nfa

import "github.com/coregx/iregex/alphabet"

// Automaton is the minimal stepping contract the compound matcher drives,
// with VisitingState as its "current position". Walker implements it; the
// dfa package's DFA does not. Ported from original_source's Automaton<T>
// trait.
type Automaton[T alphabet.Token] interface {
	InitialState() (VisitingState, bool)
	NextState(current VisitingState, token T) (VisitingState, bool)
	IsFinalState(current VisitingState) bool
}

// VisitingState is the "current position" of a walk over an NFA: the
// epsilon closure of a set of states. Every step (see Walker) returns a new
// VisitingState backed by a freshly allocated set; sets are not reused or
// swapped between steps.
type VisitingState struct {
	states map[StateID]bool
}

// IsEmpty reports whether the walk has died (no live states).
func (v VisitingState) IsEmpty() bool { return len(v.states) == 0 }

// States returns the underlying NFA states currently live in this walk, so
// callers (the compound matcher) can cross-reference them against a
// CompiledPiece's per-state exit class.
func (v VisitingState) States() []StateID {
	out := make([]StateID, 0, len(v.states))
	for s := range v.states {
		out = append(out, s)
	}
	return out
}

// Walker drives an NFA one token at a time. It holds no state of its own
// between steps: the caller passes the current VisitingState in and gets a
// new one back.
type Walker[T alphabet.Token] struct {
	n *NFA[T]
}

// NewWalker returns a Walker over n.
func NewWalker[T alphabet.Token](n *NFA[T]) *Walker[T] { return &Walker[T]{n: n} }

// InitialState returns the epsilon closure of n's initial states.
func (w *Walker[T]) InitialState() (VisitingState, bool) {
	initials := w.n.InitialStates()
	if len(initials) == 0 {
		return VisitingState{}, false
	}
	return VisitingState{states: w.n.EpsilonClosure(initials)}, true
}

// NextState consumes token from current, returning the new VisitingState
// and false if the walk has died (no transitions on token from any state in
// current).
func (w *Walker[T]) NextState(current VisitingState, token T) (VisitingState, bool) {
	var next []StateID
	for s := range current.states {
		for _, e := range w.n.ranges[s] {
			if e.Set.Contains(token) {
				next = append(next, e.Targets...)
			}
		}
	}
	if len(next) == 0 {
		return VisitingState{}, false
	}
	closure := w.n.EpsilonClosure(next)
	return VisitingState{states: closure}, true
}

// IsFinalState reports whether any state in current is accepting.
func (w *Walker[T]) IsFinalState(current VisitingState) bool {
	for s := range current.states {
		if w.n.final[s] {
			return true
		}
	}
	return false
}

// StateBuilder abstracts how a compiler allocates fresh NFA states while
// threading a per-class "frontier", ported from original_source's
// StateBuilder<T, Q, C> trait.
type StateBuilder[C any] interface {
	// NextState allocates a new state associated with class c, returning
	// ErrTooManyStates if the configured budget is exceeded.
	NextState(c C) (StateID, error)
	// ClassOf returns the class most recently associated with state s.
	ClassOf(s StateID) C
}

// U32StateBuilder is the concrete StateBuilder backing the IR compiler: a
// flat slice of per-state classes with a configurable state limit. Ported
// from original_source's U32StateBuilder<C>.
type U32StateBuilder[C any] struct {
	NFA     *NFA[byte]
	classes []C
	limit   int
}

// NewU32StateBuilder returns a builder over a fresh NFA[byte] with the
// given state limit (0 means unlimited).
func NewU32StateBuilder[C any](limit int) *U32StateBuilder[C] {
	return &U32StateBuilder[C]{NFA: New[byte](), limit: limit}
}

func (b *U32StateBuilder[C]) NextState(c C) (StateID, error) {
	if b.limit > 0 && b.NFA.count >= b.limit {
		return 0, &BuildError{Message: "state limit exceeded", Reached: b.NFA.count}
	}
	s := b.NFA.AddState()
	b.classes = append(b.classes, c)
	return s, nil
}

func (b *U32StateBuilder[C]) ClassOf(s StateID) C {
	return b.classes[int(s)]
}
