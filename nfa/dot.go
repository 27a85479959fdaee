package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/iregex/alphabet"
)

// WriteDOT renders n as a Graphviz DOT digraph: one node per state (double
// circle for final states, an unlabeled arrow into each initial state),
// epsilon edges labeled "ε", and range edges labeled with their interval
// list. Ported from original_source's crates/automata/src/dot.rs; the
// teacher has no equivalent, so this is original-source-grounded.
func WriteDOT[T alphabet.Token](n *NFA[T], format func(T) string) string {
	var b strings.Builder
	b.WriteString("digraph nfa {\n\trankdir=LR;\n")

	for s := 0; s < n.count; s++ {
		id := StateID(s)
		shape := "circle"
		if n.final[id] {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\tq%d [shape=%s];\n", id, shape)
		if n.initial[id] {
			fmt.Fprintf(&b, "\t_start%d [shape=point];\n\t_start%d -> q%d;\n", id, id, id)
		}
	}

	for s := 0; s < n.count; s++ {
		id := StateID(s)
		for _, t := range n.epsilon[id] {
			fmt.Fprintf(&b, "\tq%d -> q%d [label=\"\xce\xb5\"];\n", id, t)
		}
		for _, e := range n.ranges[id] {
			label := formatRangeSet(&e.Set, format)
			for _, t := range e.Targets {
				fmt.Fprintf(&b, "\tq%d -> q%d [label=%q];\n", id, t, label)
			}
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
