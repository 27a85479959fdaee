package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/nfa"
)

// nfaEdge is a flattened (range, destination) pair gathered from every
// state in a subset during determinization.
type nfaEdge[T alphabet.Token] struct {
	set alphabet.RangeSet[T]
	to  nfa.StateID
}

// interval is a half of an nfaEdge's range, after atomic splitting.
type interval[T alphabet.Token] struct{ Lo, Hi T }

// Determinize builds an equivalent DFA from n via subset construction,
// splitting overlapping token ranges into atomic pieces so each resulting
// DFA state has disjoint outgoing edges. Ported from original_source's
// NFA::determinize / determinize_transitions_for (the BTreeMap-of-ranges
// merge there corresponds to the boundary-point split below), cross-checked
// against the subset-construction shape in cznic-fsm/nfa.go and
// its-hmny-Choreia/internal/transforms/determinization.go.
func Determinize[T alphabet.Token](n *nfa.NFA[T]) *DFA[T] {
	d := &DFA[T]{transitions: make(map[StateID][]Edge[T]), final: make(map[StateID]bool)}

	key := func(states map[nfa.StateID]bool) string {
		ids := make([]int, 0, len(states))
		for s := range states {
			ids = append(ids, int(s))
		}
		sort.Ints(ids)
		parts := make([]string, len(ids))
		for i, v := range ids {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, ",")
	}

	subsetOf := map[string]map[nfa.StateID]bool{}
	idOf := map[string]StateID{}
	ensure := func(closure map[nfa.StateID]bool) StateID {
		k := key(closure)
		if id, ok := idOf[k]; ok {
			return id
		}
		id := d.AddState()
		idOf[k] = id
		subsetOf[k] = closure
		if anyFinal(n, closure) {
			d.AddFinalState(id)
		}
		return id
	}

	startClosure := n.EpsilonClosure(n.InitialStates())
	d.initial = ensure(startClosure)

	startKey := key(startClosure)
	queue := []string{startKey}
	visited := map[string]bool{startKey: true}

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		closure := subsetOf[k]
		fromID := idOf[k]

		var edges []nfaEdge[T]
		for s := range closure {
			for _, e := range n.RangeEdgesFrom(s) {
				for _, t := range e.Targets {
					edges = append(edges, nfaEdge[T]{set: e.Set, to: t})
				}
			}
		}
		if len(edges) == 0 {
			continue
		}

		for _, atom := range atomicIntervals(edges) {
			var targets []nfa.StateID
			for _, e := range edges {
				if e.set.Contains(atom.Lo) {
					targets = append(targets, e.to)
				}
			}
			if len(targets) == 0 {
				continue
			}
			nextClosure := n.EpsilonClosure(targets)
			nk := key(nextClosure)
			toID := ensure(nextClosure)

			rs := alphabet.FromInterval(edges[0].set.Succ(), edges[0].set.Pred(), atom.Lo, atom.Hi)
			d.AddEdge(fromID, rs, toID)
			if !visited[nk] {
				visited[nk] = true
				queue = append(queue, nk)
			}
		}
	}

	return d
}

func anyFinal[T alphabet.Token](n *nfa.NFA[T], closure map[nfa.StateID]bool) bool {
	for s := range closure {
		if n.IsFinalState(s) {
			return true
		}
	}
	return false
}

// atomicIntervals splits a collection of (possibly overlapping) ranged
// edges into the coarsest set of intervals such that every original edge's
// range is a union of atomic intervals — the standard boundary-point sweep
// subset construction uses to keep the produced DFA's edges disjoint.
func atomicIntervals[T alphabet.Token](edges []nfaEdge[T]) []interval[T] {
	if len(edges) == 0 {
		return nil
	}
	succ := edges[0].set.Succ()
	pred := edges[0].set.Pred()

	ptSet := map[T]bool{}
	var maxHi T
	first := true
	for _, e := range edges {
		for _, iv := range e.set.Intervals() {
			ptSet[iv.Lo] = true
			if succ != nil {
				if n, ok := succ(iv.Hi); ok {
					ptSet[n] = true
				}
			}
			if first || iv.Hi > maxHi {
				maxHi = iv.Hi
				first = false
			}
		}
	}

	pts := make([]T, 0, len(ptSet))
	for p := range ptSet {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })

	out := make([]interval[T], 0, len(pts))
	for i, lo := range pts {
		hi := maxHi
		if i+1 < len(pts) {
			if pred != nil {
				if p, ok := pred(pts[i+1]); ok {
					hi = p
				} else {
					hi = pts[i+1]
				}
			} else {
				hi = pts[i+1]
			}
		}
		if lo <= hi {
			out = append(out, interval[T]{Lo: lo, Hi: hi})
		}
	}
	return out
}
