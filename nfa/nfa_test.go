package nfa

import (
	"testing"

	"github.com/coregx/iregex/alphabet"
)

// buildLiteral constructs an NFA recognizing exactly the byte sequence lit.
func buildLiteral(t *testing.T, lit []byte) *NFA[byte] {
	t.Helper()
	n := New[byte]()
	s := n.AddState()
	n.AddInitialState(s)
	for _, b := range lit {
		next := n.AddState()
		set := alphabet.Single[byte](byteSucc, bytePred, b)
		n.AddRange(s, set, next)
		s = next
	}
	n.AddFinalState(s)
	return n
}

func byteSucc(v byte) (byte, bool) {
	if v == 255 {
		return 0, false
	}
	return v + 1, true
}

func bytePred(v byte) (byte, bool) {
	if v == 0 {
		return 0, false
	}
	return v - 1, true
}

func TestRecognizesEmpty(t *testing.T) {
	n := New[byte]()
	s := n.AddState()
	n.AddInitialState(s)
	n.AddFinalState(s)
	if !n.RecognizesEmpty() {
		t.Fatal("expected empty-accepting NFA to recognize empty")
	}

	lit := buildLiteral(t, []byte("a"))
	if lit.RecognizesEmpty() {
		t.Fatal("literal 'a' should not recognize empty")
	}
}

func TestWalkerMatchesLiteral(t *testing.T) {
	n := buildLiteral(t, []byte("ab"))
	w := NewWalker(n)

	cur, ok := w.InitialState()
	if !ok {
		t.Fatal("expected initial state")
	}
	for _, b := range []byte("ab") {
		cur, ok = w.NextState(cur, b)
		if !ok {
			t.Fatalf("unexpected dead walk at byte %q", b)
		}
	}
	if !w.IsFinalState(cur) {
		t.Fatal("expected final state after consuming 'ab'")
	}

	cur2, _ := w.InitialState()
	cur2, ok = w.NextState(cur2, 'x')
	if ok && w.IsFinalState(cur2) {
		t.Fatal("should not match on wrong first byte")
	}
}

func TestIsFiniteDistinguishesLoop(t *testing.T) {
	lit := buildLiteral(t, []byte("cat"))
	if !lit.IsFinite() {
		t.Fatal("literal NFA should be finite")
	}

	// a+ : a self-loop back to the same state.
	loop := New[byte]()
	s0 := loop.AddState()
	s1 := loop.AddState()
	loop.AddInitialState(s0)
	loop.AddFinalState(s1)
	set := alphabet.Single[byte](byteSucc, bytePred, 'a')
	loop.AddRange(s0, set, s1)
	loop.AddRange(s1, set, s1)
	if loop.IsFinite() {
		t.Fatal("a+ should not be finite")
	}
}

func TestToSingleton(t *testing.T) {
	lit := buildLiteral(t, []byte("go"))
	seq, ok := lit.ToSingleton()
	if !ok {
		t.Fatal("expected literal NFA to be singleton")
	}
	if string(seq) != "go" {
		t.Fatalf("got %q, want %q", seq, "go")
	}

	loop := New[byte]()
	s0 := loop.AddState()
	loop.AddInitialState(s0)
	loop.AddFinalState(s0)
	set := alphabet.Single[byte](byteSucc, bytePred, 'a')
	loop.AddRange(s0, set, s0)
	if loop.IsSingleton() {
		t.Fatal("a* should not be singleton")
	}
}
