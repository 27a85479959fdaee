package ir

import (
	"bytes"
	"testing"
)

func TestExtractLiterals(t *testing.T) {
	alt := Alternation[struct{}]{byteLit[struct{}]("cat"), byteLit[struct{}]("dog")}
	lits, ok := ExtractLiterals(alt)
	if !ok {
		t.Fatal("expected a literal-only alternation to extract")
	}
	want := [][]byte{[]byte("cat"), []byte("dog")}
	if len(lits) != len(want) {
		t.Fatalf("got %d literals, want %d", len(lits), len(want))
	}
	for i := range want {
		if !bytes.Equal(lits[i], want[i]) {
			t.Fatalf("literal %d: got %q, want %q", i, lits[i], want[i])
		}
	}
}

func TestExtractLiteralsRejectsNonLiteralAtoms(t *testing.T) {
	body := Alternation[struct{}]{byteLit[struct{}]("a")}
	withStar := Concatenation[struct{}]{StarAtom[struct{}](body)}
	if _, ok := ExtractLiterals(Alternation[struct{}]{withStar}); ok {
		t.Fatal("a branch containing a repeat should not extract as a literal")
	}

	withCapture := Concatenation[struct{}]{CaptureAtom[struct{}](1, body)}
	if _, ok := ExtractLiterals(Alternation[struct{}]{withCapture}); ok {
		t.Fatal("a branch containing a capture should not extract as a literal")
	}
}

func TestExtractLiteralsRejectsEmpty(t *testing.T) {
	if _, ok := ExtractLiterals(Alternation[struct{}]{}); ok {
		t.Fatal("an empty alternation should not extract any literals")
	}
	if _, ok := ExtractLiterals(Alternation[struct{}]{Concatenation[struct{}]{}}); ok {
		t.Fatal("a branch matching the empty string should not extract as a literal")
	}
}
