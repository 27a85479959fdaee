package nfa

import (
	"sort"

	"github.com/coregx/iregex/alphabet"
)

// StateID identifies a state within one NFA. IDs are allocated densely
// starting at 0, so the zero value is the first state allocated; callers
// should treat StateID as opaque.
type StateID uint32

// rangeEdge is a single token-labeled transition: consuming any token in Set
// moves to any state in Targets (multiple targets model non-determinism
// directly, avoiding an extra epsilon fan-out for the common "same label,
// many destinations" shape produced by class-threaded compilation).
type rangeEdge[T alphabet.Token] struct {
	Set     alphabet.RangeSet[T]
	Targets []StateID
}

// NFA is a non-deterministic finite automaton over token type T: states
// connected by epsilon edges and range-labeled token edges. Ported from
// original_source's NFA<Q, T>, with Q fixed to the concrete StateID type,
// matching the teacher's own concrete-state-id design in nfa/nfa.go.
type NFA[T alphabet.Token] struct {
	epsilon map[StateID][]StateID
	ranges  map[StateID][]rangeEdge[T]
	initial map[StateID]bool
	final   map[StateID]bool
	count   int
}

// New returns an empty NFA with no states.
func New[T alphabet.Token]() *NFA[T] {
	return &NFA[T]{
		epsilon: make(map[StateID][]StateID),
		ranges:  make(map[StateID][]rangeEdge[T]),
		initial: make(map[StateID]bool),
		final:   make(map[StateID]bool),
	}
}

// NumStates returns the number of states added so far.
func (n *NFA[T]) NumStates() int { return n.count }

// AddState allocates and returns a new, otherwise unconnected state.
func (n *NFA[T]) AddState() StateID {
	id := StateID(n.count)
	n.count++
	return id
}

// AddEpsilon adds an unlabeled transition from-&gt;to.
func (n *NFA[T]) AddEpsilon(from, to StateID) {
	n.epsilon[from] = append(n.epsilon[from], to)
}

// AddRange adds a transition from-&gt;to labeled with set: consuming any
// token in set moves to to.
func (n *NFA[T]) AddRange(from StateID, set alphabet.RangeSet[T], to StateID) {
	edges := n.ranges[from]
	for i := range edges {
		if edges[i].Set.Equal(&set) {
			edges[i].Targets = append(edges[i].Targets, to)
			n.ranges[from] = edges
			return
		}
	}
	n.ranges[from] = append(edges, rangeEdge[T]{Set: set, Targets: []StateID{to}})
}

// AddInitialState marks s as an initial (start) state.
func (n *NFA[T]) AddInitialState(s StateID) { n.initial[s] = true }

// AddFinalState marks s as an accepting state.
func (n *NFA[T]) AddFinalState(s StateID) { n.final[s] = true }

// IsInitialState reports whether s is marked initial.
func (n *NFA[T]) IsInitialState(s StateID) bool { return n.initial[s] }

// IsFinalState reports whether s is marked final.
func (n *NFA[T]) IsFinalState(s StateID) bool { return n.final[s] }

// InitialStates returns the set of initial states, sorted for determinism.
func (n *NFA[T]) InitialStates() []StateID { return sortedKeys(n.initial) }

// FinalStates returns the set of final states, sorted for determinism.
func (n *NFA[T]) FinalStates() []StateID { return sortedKeys(n.final) }

// EpsilonSuccessors returns the states reachable from s via one epsilon
// edge.
func (n *NFA[T]) EpsilonSuccessors(s StateID) []StateID { return n.epsilon[s] }

// RangeEdgesFrom returns the token-labeled edges leaving s.
func (n *NFA[T]) RangeEdgesFrom(s StateID) []rangeEdge[T] { return n.ranges[s] }

func sortedKeys(m map[StateID]bool) []StateID {
	out := make([]StateID, 0, len(m))
	for k, ok := range m {
		if ok {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EpsilonClosure returns the set of states reachable from states via zero
// or more epsilon edges, including states itself.
func (n *NFA[T]) EpsilonClosure(states []StateID) map[StateID]bool {
	closure := make(map[StateID]bool, len(states))
	stack := append([]StateID(nil), states...)
	for _, s := range states {
		closure[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.epsilon[s] {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// RecognizesEmpty reports whether the empty token sequence is accepted:
// some initial state's epsilon closure contains a final state.
func (n *NFA[T]) RecognizesEmpty() bool {
	closure := n.EpsilonClosure(n.InitialStates())
	for s := range closure {
		if n.final[s] {
			return true
		}
	}
	return false
}

// IsFinite reports whether the language recognized by n is finite, i.e. the
// subgraph of states that can reach a final state, following both epsilon
// and token edges, contains no cycle (so a cycle of epsilon edges alone also
// makes the result false). This is computed via a
// straightforward reachability-cycle search, matching the spirit of
// original_source's NFA::is_finite (a finite language has a DAG of "useful"
// states).
func (n *NFA[T]) IsFinite() bool {
	useful := n.usefulStates()
	color := make(map[StateID]int, len(useful)) // 0=white 1=gray 2=black
	var hasCycle bool
	var visit func(StateID)
	visit = func(s StateID) {
		if hasCycle || !useful[s] {
			return
		}
		color[s] = 1
		for _, t := range n.epsilon[s] {
			if !useful[t] {
				continue
			}
			if color[t] == 1 {
				hasCycle = true
				return
			}
			if color[t] == 0 {
				visit(t)
			}
		}
		for _, e := range n.ranges[s] {
			for _, t := range e.Targets {
				if !useful[t] {
					continue
				}
				if color[t] == 1 {
					hasCycle = true
					return
				}
				if color[t] == 0 {
					visit(t)
				}
			}
		}
		color[s] = 2
	}
	for s := range useful {
		if color[s] == 0 {
			visit(s)
		}
		if hasCycle {
			return false
		}
	}
	return true
}

// usefulStates returns the states that are both reachable from an initial
// state and can reach a final state; states outside this set never
// contribute to the recognized language.
func (n *NFA[T]) usefulStates() map[StateID]bool {
	reachable := make(map[StateID]bool)
	var stack []StateID
	for _, s := range n.InitialStates() {
		if !reachable[s] {
			reachable[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.epsilon[s] {
			if !reachable[t] {
				reachable[t] = true
				stack = append(stack, t)
			}
		}
		for _, e := range n.ranges[s] {
			for _, t := range e.Targets {
				if !reachable[t] {
					reachable[t] = true
					stack = append(stack, t)
				}
			}
		}
	}

	// Reverse reachability to a final state, restricted to `reachable`.
	revEps := make(map[StateID][]StateID)
	revTok := make(map[StateID][]StateID)
	for s := range reachable {
		for _, t := range n.epsilon[s] {
			revEps[t] = append(revEps[t], s)
		}
		for _, e := range n.ranges[s] {
			for _, t := range e.Targets {
				revTok[t] = append(revTok[t], s)
			}
		}
	}
	canReachFinal := make(map[StateID]bool)
	stack = stack[:0]
	for _, s := range n.FinalStates() {
		if reachable[s] && !canReachFinal[s] {
			canReachFinal[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range revEps[s] {
			if !canReachFinal[p] {
				canReachFinal[p] = true
				stack = append(stack, p)
			}
		}
		for _, p := range revTok[s] {
			if !canReachFinal[p] {
				canReachFinal[p] = true
				stack = append(stack, p)
			}
		}
	}

	useful := make(map[StateID]bool)
	for s := range reachable {
		if canReachFinal[s] {
			useful[s] = true
		}
	}
	return useful
}

// IsSingleton reports whether n recognizes exactly one token sequence, and
// if so returns it via ToSingleton.
func (n *NFA[T]) IsSingleton() bool {
	_, ok := n.ToSingleton()
	return ok
}

// ToSingleton returns the unique token sequence n recognizes, if the
// recognized language is exactly one sequence of single-token range sets
// (each edge a singleton value). Ported from original_source's
// NFA::is_singleton/to_singleton.
func (n *NFA[T]) ToSingleton() ([]T, bool) {
	initials := n.InitialStates()
	if len(initials) != 1 {
		return nil, false
	}
	var seq []T
	s := initials[0]
	steps := 0
	maxSteps := n.count + 1
	for {
		closure := n.EpsilonClosure([]StateID{s})
		finalCount, tokenCount := 0, 0
		var onlyEdge rangeEdge[T]
		for cs := range closure {
			if n.final[cs] {
				finalCount++
			}
			tokenCount += len(n.ranges[cs])
			if len(n.ranges[cs]) == 1 {
				onlyEdge = n.ranges[cs][0]
			}
		}
		if tokenCount == 0 {
			return seq, finalCount > 0
		}
		if tokenCount != 1 || finalCount != 0 || len(onlyEdge.Targets) != 1 {
			return nil, false
		}
		ivals := onlyEdge.Set.Intervals()
		if len(ivals) != 1 || ivals[0].Lo != ivals[0].Hi {
			return nil, false
		}
		seq = append(seq, ivals[0].Lo)
		s = onlyEdge.Targets[0]
		steps++
		if steps > maxSteps {
			return nil, false
		}
	}
}
