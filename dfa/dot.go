package dfa

import (
	"fmt"
	"strings"

	"github.com/coregx/iregex/alphabet"
)

// WriteDOT renders d as a Graphviz DOT digraph, mirroring nfa.WriteDOT's
// conventions but with exactly one outgoing edge per atomic range per
// state (no epsilon edges, by construction). Ported from original_source's
// crates/automata/src/dot.rs.
func WriteDOT[T alphabet.Token](d *DFA[T], format func(T) string) string {
	var b strings.Builder
	b.WriteString("digraph dfa {\n\trankdir=LR;\n")

	for s := 0; s < d.count; s++ {
		id := StateID(s)
		shape := "circle"
		if d.final[id] {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\tq%d [shape=%s];\n", id, shape)
	}
	fmt.Fprintf(&b, "\t_start [shape=point];\n\t_start -> q%d;\n", d.initial)

	for s := 0; s < d.count; s++ {
		id := StateID(s)
		for _, e := range d.transitions[id] {
			label := formatRangeSet(&e.Set, format)
			fmt.Fprintf(&b, "\tq%d -> q%d [label=%q];\n", id, e.To, label)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func formatRangeSet[T alphabet.Token](set *alphabet.RangeSet[T], format func(T) string) string {
	var parts []string
	for _, iv := range set.Intervals() {
		if iv.Lo == iv.Hi {
			parts = append(parts, format(iv.Lo))
		} else {
			parts = append(parts, format(iv.Lo)+"-"+format(iv.Hi))
		}
	}
	return strings.Join(parts, ",")
}
