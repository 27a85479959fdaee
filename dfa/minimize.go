package dfa

import (
	"sort"

	"github.com/coregx/iregex/alphabet"
)

// Minimize returns an equivalent DFA with the minimum number of states by
// Moore-style partition refinement: starting from final vs. non-final, every
// block is split by each state's transition signature, and the whole
// partition is re-split until no block changes. There is no Hopcroft
// worklist. Ported from
// original_source's DFA::minimize and spec.md §4.D's pseudocode, cross
// checked against the minimize-after-determinize pipeline order in
// wolever-nfa2regex.
func Minimize[T alphabet.Token](d *DFA[T]) *DFA[T] {
	reachable := d.ReachableStates(d.initial)

	// Initial partition: final vs. non-final, restricted to reachable
	// states.
	var final, nonFinal []StateID
	for s := range reachable {
		if d.IsFinalState(s) {
			final = append(final, s)
		} else {
			nonFinal = append(nonFinal, s)
		}
	}

	blockOf := map[StateID]int{}
	var blocks [][]StateID
	addBlock := func(members []StateID) int {
		if len(members) == 0 {
			return -1
		}
		id := len(blocks)
		blocks = append(blocks, members)
		for _, s := range members {
			blockOf[s] = id
		}
		return id
	}
	if id := addBlock(final); id >= 0 {
		_ = id
	}
	if id := addBlock(nonFinal); id >= 0 {
		_ = id
	}

	// Collect the alphabet of distinguishing boundary points across every
	// reachable state's outgoing edges, so refinement can test each atomic
	// slice of the alphabet independently.
	var allEdges []nfaEdgeLike[T]
	for s := range reachable {
		for _, e := range d.transitions[s] {
			allEdges = append(allEdges, nfaEdgeLike[T]{set: e.Set})
		}
	}
	atoms := atomicIntervalsLike(allEdges)

	changed := true
	for changed {
		changed = false
		for bi := 0; bi < len(blocks); bi++ {
			block := blocks[bi]
			if len(block) <= 1 {
				continue
			}
			// Partition block by, for each atomic token, which block its
			// transition target falls in.
			groups := map[string][]StateID{}
			for _, s := range block {
				sig := make([]byte, 0, len(atoms)*4)
				for _, a := range atoms {
					to, ok := d.Step(s, a.Lo)
					if !ok {
						sig = append(sig, 0xFF)
						continue
					}
					tb := blockOf[to]
					sig = append(sig, byte(tb), byte(tb>>8), byte(tb>>16), byte(tb>>24))
				}
				groups[string(sig)] = append(groups[string(sig)], s)
			}
			if len(groups) <= 1 {
				continue
			}
			// Split: keep the first group in place, allocate new blocks for
			// the rest.
			keys := make([]string, 0, len(groups))
			for k := range groups {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			blocks[bi] = groups[keys[0]]
			for _, s := range groups[keys[0]] {
				blockOf[s] = bi
			}
			for _, k := range keys[1:] {
				addBlock(groups[k])
			}
			changed = true
		}
	}

	rep := map[StateID]StateID{}
	for _, block := range blocks {
		r := block[0]
		for _, s := range block {
			rep[s] = r
		}
	}

	mapped := d.Map(func(s StateID) StateID {
		if r, ok := rep[s]; ok {
			return r
		}
		return s
	})
	return mapped.Compress()
}

// nfaEdgeLike is atomicIntervals' input shape specialized to DFA edges
// (which have no NFA destination to carry, only a range).
type nfaEdgeLike[T alphabet.Token] struct {
	set alphabet.RangeSet[T]
}

func atomicIntervalsLike[T alphabet.Token](edges []nfaEdgeLike[T]) []interval[T] {
	conv := make([]nfaEdge[T], len(edges))
	for i, e := range edges {
		conv[i] = nfaEdge[T]{set: e.set}
	}
	return atomicIntervals(conv)
}
