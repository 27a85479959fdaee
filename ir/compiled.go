package ir

import (
	"github.com/coregx/iregex/class"
	"github.com/coregx/iregex/nfa"
)

// CompiledPiece is one compiled fragment of an IRegEx (its prefix, or its
// root starting in a particular class, or its suffix starting in a
// particular class): the NFA itself, plus which exit class each of its
// final states landed in. The compound matcher (package compound) uses
// ExitClass to decide which per-class root or suffix automaton to continue
// into after this piece accepts.
type CompiledPiece[C comparable] struct {
	NFA       *nfa.NFA[byte]
	ExitClass map[nfa.StateID]C
}

// CompileOptions bounds the state budget every piece is compiled under,
// following the teacher's functional-option-free, struct-of-defaults
// config style; MaxStates is handed to nfa.NewU32StateBuilder as its limit.
type CompileOptions struct {
	// MaxStates is the per-piece state budget; 0 means unlimited.
	MaxStates int
}

// compilePiece builds a single NFA for alt starting in startClass, and
// records the exit class of each of its final states.
func compilePiece[C comparable](alt Alternation[C], startClass C, cls class.Class[byte, C], opts CompileOptions) (*CompiledPiece[C], error) {
	b := nfa.NewU32StateBuilder[C](opts.MaxStates)
	tags := nfa.NewTags[nfa.CaptureTag]()

	entry, exits, err := alt.BuildFrom(startClass, b, cls, tags)
	if err != nil {
		return nil, err
	}
	b.NFA.AddInitialState(entry)

	exitClass := make(map[nfa.StateID]C, exits.Len())
	for _, e := range exits.Entries() {
		b.NFA.AddFinalState(e.Value)
		exitClass[e.Value] = e.Class
	}

	return &CompiledPiece[C]{NFA: b.NFA, ExitClass: exitClass}, nil
}

// Compiled is the result of IRegEx.Compile: a prefix piece plus one root
// piece per distinct class the prefix can exit in, and one suffix piece
// per distinct class the corresponding root piece can exit in. This is
// exactly original_source's IRegEx::compile (spec.md §4.H's
// CompoundAutomaton), generalized from its single-class sketch to the full
// per-class fan-out the class-threaded compiler produces.
type Compiled[C comparable] struct {
	Prefix  *CompiledPiece[C]
	Root    map[C]*CompiledPiece[C]
	Suffix  map[C]*CompiledPiece[C]
}

// Compile builds the full prefix/root/suffix automaton family for r,
// starting compilation in startClass (the class in effect before any input
// has been read — NonWord for class.WordBoundary, struct{}{} for
// class.Trivial).
func (r IRegEx[C]) Compile(startClass C, cls class.Class[byte, C], opts CompileOptions) (*Compiled[C], error) {
	prefix, err := compilePiece(r.Prefix.AsAlternation(), startClass, cls, opts)
	if err != nil {
		return nil, err
	}

	rootClasses := distinctClasses(prefix.ExitClass)
	roots := make(map[C]*CompiledPiece[C], len(rootClasses))
	for _, rc := range rootClasses {
		piece, err := compilePiece(r.Root, rc, cls, opts)
		if err != nil {
			return nil, err
		}
		roots[rc] = piece
	}

	suffixes := make(map[C]*CompiledPiece[C])
	for _, piece := range roots {
		for _, sc := range distinctClasses(piece.ExitClass) {
			if _, ok := suffixes[sc]; ok {
				continue
			}
			sp, err := compilePiece(r.Suffix.AsAlternation(), sc, cls, opts)
			if err != nil {
				return nil, err
			}
			suffixes[sc] = sp
		}
	}

	return &Compiled[C]{Prefix: prefix, Root: roots, Suffix: suffixes}, nil
}

func distinctClasses[C comparable](m map[nfa.StateID]C) []C {
	seen := make(map[C]bool, len(m))
	out := make([]C, 0, len(m))
	for _, c := range m {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
