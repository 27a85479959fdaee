package compound

import (
	"testing"

	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/ir"
	"github.com/coregx/iregex/nfa"
)

func compilePieceForTest(t *testing.T, alt ir.Alternation[struct{}]) *ir.CompiledPiece[struct{}] {
	t.Helper()
	compiled := compile(t, ir.Anchored(alt))
	return compiled.Root[struct{}{}]
}

func TestUniformAcceptSetDetectsAnyByteStar(t *testing.T) {
	piece := compilePieceForTest(t, ir.AnyAffix[struct{}]().AsAlternation())
	set, ok := uniformAcceptSet(piece.NFA)
	if !ok {
		t.Fatal("expected .* to be detected as a uniform accept set")
	}
	for v := 0; v < 256; v++ {
		if !set.Contains(byte(v)) {
			t.Fatalf("expected byte %d to be a member of .*'s accept set", v)
		}
	}
}

func TestUniformAcceptSetRejectsNonUniformShape(t *testing.T) {
	piece := compilePieceForTest(t, ir.Alternation[struct{}]{lit("cat")})
	if _, ok := uniformAcceptSet(piece.NFA); ok {
		t.Fatal("a fixed literal is not a uniform self-looping accept set")
	}
}

func TestCheckSuffixFastPathRespectsRestrictedClass(t *testing.T) {
	digit := alphabet.Empty[byte](byteStep, bytePred)
	digit.Insert('0', '9')
	digitsStar := ir.Alternation[struct{}]{ir.Concatenation[struct{}]{
		ir.StarAtom[struct{}](ir.Alternation[struct{}]{ir.Concatenation[struct{}]{ir.TokenAtom[struct{}](digit)}}),
	}}

	re := ir.IRegEx[struct{}]{
		Root:   ir.Alternation[struct{}]{lit("cat")},
		Prefix: ir.AnyAffix[struct{}](),
		Suffix: ir.Affix[struct{}]{Kind: ir.AffixAlternation, Alt: digitsStar},
	}
	compiled := compile(t, re)
	a := New[struct{}](compiled, nil)

	if _, ok := a.Matches([]byte("cat123")).Next(); !ok {
		t.Fatal("expected 'cat' followed by only digits to match")
	}

	a2 := New[struct{}](compiled, nil)
	if _, ok := a2.Matches([]byte("cat12a")).Next(); ok {
		t.Fatal("expected a non-digit tail to fail the restricted suffix check")
	}
}

func TestSameVisitingState(t *testing.T) {
	piece := compilePieceForTest(t, ir.AnyAffix[struct{}]().AsAlternation())
	w := nfa.NewWalker(piece.NFA)
	initial, ok := w.InitialState()
	if !ok {
		t.Fatal("expected an initial state")
	}
	if !sameVisitingState(initial, initial) {
		t.Fatal("a VisitingState should always equal itself")
	}
}
