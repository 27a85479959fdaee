package class

import (
	"testing"

	"github.com/coregx/iregex/alphabet"
)

func TestIsWordByte(t *testing.T) {
	for _, b := range []byte("aZ9_") {
		if !IsWordByte(b) {
			t.Fatalf("%q should be a word byte", b)
		}
	}
	for _, b := range []byte(" .!\t") {
		if IsWordByte(b) {
			t.Fatalf("%q should not be a word byte", b)
		}
	}
}

func TestWordBoundaryClassify(t *testing.T) {
	mixed := alphabet.Empty[byte](nil, nil)
	mixed.Insert('a', 'z')
	mixed.Insert(' ', ' ')

	parts := WordBoundary{}.Classify(&mixed)
	word, ok := parts.Get(Word)
	if !ok || word.IsEmpty() {
		t.Fatal("expected a non-empty Word partition for a mixed letters+space set")
	}
	nonWord, ok := parts.Get(NonWord)
	if !ok || nonWord.IsEmpty() {
		t.Fatal("expected a non-empty NonWord partition for a mixed letters+space set")
	}
	if word.Contains(' ') || nonWord.Contains('a') {
		t.Fatal("classify must not mix word and non-word bytes across partitions")
	}
}

func TestWordBoundaryNextClass(t *testing.T) {
	if (WordBoundary{}).NextClass('c') != Word {
		t.Fatal("'c' should classify as Word")
	}
	if (WordBoundary{}).NextClass(' ') != NonWord {
		t.Fatal("' ' should classify as NonWord")
	}
}

func TestWordBoundaryAssertionApply(t *testing.T) {
	b := WordBoundaryAssertion{}
	if got, ok := b.Apply(Word); !ok || got != NonWord {
		t.Fatalf("\\b from Word should require NonWord next, got (%v, %v)", got, ok)
	}
	if got, ok := b.Apply(NonWord); !ok || got != Word {
		t.Fatalf("\\b from NonWord should require Word next, got (%v, %v)", got, ok)
	}

	neg := WordBoundaryAssertion{Negated: true}
	if got, ok := neg.Apply(Word); !ok || got != Word {
		t.Fatalf("\\B from Word should require staying Word, got (%v, %v)", got, ok)
	}
	if got, ok := neg.Apply(NonWord); !ok || got != NonWord {
		t.Fatalf("\\B from NonWord should require staying NonWord, got (%v, %v)", got, ok)
	}
}
