// Package dfa implements the deterministic automaton produced by
// determinizing an nfa.NFA, plus partition-refinement minimization, product
// construction, and state-ID compaction. Ported from original_source's
// crates/automata/src/dfa.rs.
package dfa

import (
	"sort"

	"github.com/coregx/iregex/alphabet"
)

// StateID identifies a state within one DFA.
type StateID uint32

// Edge is one outgoing, token-range-labeled transition.
type Edge[T alphabet.Token] struct {
	Set alphabet.RangeSet[T]
	To  StateID
}

// DFA is a deterministic finite automaton: each state has at most one
// transition per token (its outgoing edges have disjoint ranges). Ported
// from original_source's DFA<Q, L>.
type DFA[T alphabet.Token] struct {
	transitions map[StateID][]Edge[T]
	initial     StateID
	final       map[StateID]bool
	count       int
}

// New returns an empty DFA whose initial state is freshly allocated.
func New[T alphabet.Token]() *DFA[T] {
	d := &DFA[T]{transitions: make(map[StateID][]Edge[T]), final: make(map[StateID]bool)}
	d.initial = d.AddState()
	return d
}

// AddState allocates and returns a new, otherwise unconnected state.
func (d *DFA[T]) AddState() StateID {
	id := StateID(d.count)
	d.count++
	return id
}

// NumStates returns the number of states in the DFA.
func (d *DFA[T]) NumStates() int { return d.count }

// InitialState returns the DFA's single start state.
func (d *DFA[T]) InitialState() StateID { return d.initial }

// SetInitialState overrides the start state (used by Map/Compress when
// renumbering).
func (d *DFA[T]) SetInitialState(s StateID) { d.initial = s }

// AddFinalState marks s as accepting.
func (d *DFA[T]) AddFinalState(s StateID) { d.final[s] = true }

// IsFinalState reports whether s is accepting.
func (d *DFA[T]) IsFinalState(s StateID) bool { return d.final[s] }

// FinalStates returns the accepting states, sorted.
func (d *DFA[T]) FinalStates() []StateID {
	out := make([]StateID, 0, len(d.final))
	for s, ok := range d.final {
		if ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddEdge adds a transition from s to to labeled by set. Callers are
// responsible for keeping outgoing edges disjoint (Determinize and Product
// both guarantee this).
func (d *DFA[T]) AddEdge(s StateID, set alphabet.RangeSet[T], to StateID) {
	d.transitions[s] = append(d.transitions[s], Edge[T]{Set: set, To: to})
}

// EdgesFrom returns the outgoing edges of s.
func (d *DFA[T]) EdgesFrom(s StateID) []Edge[T] { return d.transitions[s] }

// Step consumes token from s, returning the destination state and whether a
// transition exists. This is the DFA specialization of nfa.Automaton's
// NextState: one active state instead of a VisitingState set.
func (d *DFA[T]) Step(s StateID, token T) (StateID, bool) {
	for _, e := range d.transitions[s] {
		if e.Set.Contains(token) {
			return e.To, true
		}
	}
	return 0, false
}

// Accepts reports whether the full token sequence is recognized, walking
// from the initial state.
func (d *DFA[T]) Accepts(tokens []T) bool {
	s := d.initial
	for _, tok := range tokens {
		next, ok := d.Step(s, tok)
		if !ok {
			return false
		}
		s = next
	}
	return d.IsFinalState(s)
}

// ReachableStates returns every state reachable from s, including s.
func (d *DFA[T]) ReachableStates(s StateID) map[StateID]bool {
	seen := map[StateID]bool{s: true}
	stack := []StateID{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range d.transitions[cur] {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return seen
}

// Compress renumbers states 0..k-1 in reachability order from the initial
// state, dropping unreachable states. Ported from original_source's
// DFA::compress.
func (d *DFA[T]) Compress() *DFA[T] {
	order := []StateID{d.initial}
	seen := map[StateID]bool{d.initial: true}
	renum := map[StateID]StateID{}
	i := 0
	for i < len(order) {
		s := order[i]
		i++
		if _, ok := renum[s]; !ok {
			renum[s] = StateID(len(renum))
		}
		for _, e := range d.transitions[s] {
			if !seen[e.To] {
				seen[e.To] = true
				order = append(order, e.To)
			}
		}
	}

	out := &DFA[T]{transitions: make(map[StateID][]Edge[T]), final: make(map[StateID]bool)}
	out.count = len(renum)
	out.initial = renum[d.initial]
	for old, nu := range renum {
		if d.final[old] {
			out.final[nu] = true
		}
		for _, e := range d.transitions[old] {
			if target, ok := renum[e.To]; ok {
				out.transitions[nu] = append(out.transitions[nu], Edge[T]{Set: e.Set, To: target})
			}
		}
	}
	return out
}

// Map renumbers states according to f. States for which f is not injective
// are merged: this is how Minimize turns an equivalence-class partition
// back into a DFA. Ported from original_source's DFA::map.
func (d *DFA[T]) Map(f func(StateID) StateID) *DFA[T] {
	out := &DFA[T]{transitions: make(map[StateID][]Edge[T]), final: make(map[StateID]bool)}
	maxID := StateID(0)
	seen := map[StateID]bool{}
	assign := func(s StateID) {
		if !seen[s] {
			seen[s] = true
			if s+1 > maxID {
				maxID = s + 1
			}
		}
	}
	for s := 0; s < d.count; s++ {
		assign(f(StateID(s)))
	}
	out.count = int(maxID)
	out.initial = f(d.initial)
	for s := 0; s < d.count; s++ {
		ns := f(StateID(s))
		if d.final[StateID(s)] {
			out.final[ns] = true
		}
		for _, e := range d.transitions[StateID(s)] {
			out.transitions[ns] = append(out.transitions[ns], Edge[T]{Set: e.Set, To: f(e.To)})
		}
	}
	return out
}

// Product builds the synchronized product of a and b: states are pairs
// (a-state, b-state), and combine decides finality of the product state
// from the two operands' finality (e.g. AND for intersection, OR for
// union). Ported from original_source's DFA::product.
func Product[T alphabet.Token](a, b *DFA[T], combine func(aFinal, bFinal bool) bool) *DFA[T] {
	out := &DFA[T]{transitions: make(map[StateID][]Edge[T]), final: make(map[StateID]bool)}
	type pair struct{ a, b StateID }
	ids := map[pair]StateID{}
	idOf := func(p pair) StateID {
		if id, ok := ids[p]; ok {
			return id
		}
		id := out.AddState()
		ids[p] = id
		return id
	}

	start := pair{a.initial, b.initial}
	startID := idOf(start)
	out.initial = startID

	queue := []pair{start}
	visited := map[pair]bool{start: true}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		id := idOf(p)
		if combine(a.IsFinalState(p.a), b.IsFinalState(p.b)) {
			out.AddFinalState(id)
		}
		for _, ea := range a.transitions[p.a] {
			for _, eb := range b.transitions[p.b] {
				shared := alphabet.Intersection(&ea.Set, &eb.Set)
				if shared.IsEmpty() {
					continue
				}
				np := pair{ea.To, eb.To}
				nid := idOf(np)
				out.AddEdge(id, shared, nid)
				if !visited[np] {
					visited[np] = true
					queue = append(queue, np)
				}
			}
		}
	}
	return out
}
