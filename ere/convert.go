package ere

import (
	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/ir"
)

// oneRepeat is the transparent "exactly one repetition" count used to embed
// a Group's inner disjunction as a single ir.Atom: ir's compiler delegates
// an IsOne repeat straight to its body with no extra NFA states, so this
// has zero runtime cost and matches spec.md §6's literal conversion rule
// `Atom::Group -> alternation(inner.build())` (grouping is precedence-only,
// never a capture).
var oneRepeat = ir.Repeat{Min: 1, Max: oneU32()}

func oneU32() *uint32 { v := uint32(1); return &v }

// ToIR converts a parsed AST into the ir.IRegEx the compiler consumes, per
// spec.md §6's AST→IR conversion table.
func ToIR(ast *AST) ir.IRegEx[struct{}] {
	re := ir.IRegEx[struct{}]{Root: convertDisjunction(ast.Body)}
	if ast.StartAnchor {
		re.Prefix = ir.AnchorAffix[struct{}]()
	} else {
		re.Prefix = ir.AnyAffix[struct{}]()
	}
	if ast.EndAnchor {
		re.Suffix = ir.AnchorAffix[struct{}]()
	} else {
		re.Suffix = ir.AnyAffix[struct{}]()
	}
	return re
}

func convertDisjunction(d Disjunction) ir.Alternation[struct{}] {
	out := make(ir.Alternation[struct{}], len(d))
	for i, seq := range d {
		out[i] = convertSequence(seq)
	}
	return out
}

func convertSequence(seq Sequence) ir.Concatenation[struct{}] {
	out := make(ir.Concatenation[struct{}], len(seq))
	for i, a := range seq {
		out[i] = convertAtom(a)
	}
	return out
}

func convertAtom(a Atom) ir.Atom[struct{}] {
	switch a.Kind {
	case AtomAny:
		return ir.TokenAtom[struct{}](alphabet.ByteAlphabet{}.All())
	case AtomSet:
		return ir.TokenAtom[struct{}](a.Set)
	case AtomGroup:
		return ir.RepeatAtom[struct{}](convertDisjunction(a.Group), oneRepeat)
	case AtomRepeat:
		body := ir.Alternation[struct{}]{ir.Concatenation[struct{}]{convertAtom(*a.Inner)}}
		return ir.RepeatAtom[struct{}](body, toIRRepeat(a.Count))
	default:
		panic("ere: unknown atom kind")
	}
}

func toIRRepeat(r Repeat) ir.Repeat {
	out := ir.Repeat{Min: r.Min}
	if r.Max != nil {
		m := *r.Max
		out.Max = &m
	}
	return out
}
