package dfa

import (
	"testing"

	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/nfa"
)

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

// buildAltNFA builds an NFA recognizing "cat" | "car", sharing the "ca"
// prefix across two branches so determinization must merge them.
func buildAltNFA() *nfa.NFA[byte] {
	n := nfa.New[byte]()
	start := n.AddState()
	n.AddInitialState(start)

	a := n.AddState()
	n.AddRange(start, alphabet.Single[byte](byteSucc, bytePred, 'c'), a)
	b := n.AddState()
	n.AddRange(a, alphabet.Single[byte](byteSucc, bytePred, 'a'), b)

	t1 := n.AddState()
	n.AddRange(b, alphabet.Single[byte](byteSucc, bytePred, 't'), t1)
	n.AddFinalState(t1)

	r1 := n.AddState()
	n.AddRange(b, alphabet.Single[byte](byteSucc, bytePred, 'r'), r1)
	n.AddFinalState(r1)

	return n
}

func TestDeterminizeAcceptsBothBranches(t *testing.T) {
	n := buildAltNFA()
	d := Determinize[byte](n)

	if !d.Accepts([]byte("cat")) {
		t.Fatal("expected 'cat' to be accepted")
	}
	if !d.Accepts([]byte("car")) {
		t.Fatal("expected 'car' to be accepted")
	}
	if d.Accepts([]byte("cab")) {
		t.Fatal("'cab' should be rejected")
	}
	if d.Accepts([]byte("ca")) {
		t.Fatal("'ca' (prefix) should be rejected")
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	n := buildAltNFA()
	d := Determinize[byte](n)
	m := Minimize[byte](d)

	if m.NumStates() > d.NumStates() {
		t.Fatalf("minimize should not increase state count: got %d from %d", m.NumStates(), d.NumStates())
	}
	for _, word := range []string{"cat", "car", "cab", "ca", ""} {
		if got, want := m.Accepts([]byte(word)), d.Accepts([]byte(word)); got != want {
			t.Fatalf("minimized DFA disagrees with original on %q: got %v want %v", word, got, want)
		}
	}
}

func TestProductIntersection(t *testing.T) {
	a := buildAltNFA()
	da := Determinize[byte](a)

	// Second DFA: accepts any string starting with 'c'.
	n2 := nfa.New[byte]()
	s0 := n2.AddState()
	n2.AddInitialState(s0)
	s1 := n2.AddState()
	n2.AddRange(s0, alphabet.Single[byte](byteSucc, bytePred, 'c'), s1)
	n2.AddFinalState(s1)
	n2.AddRange(s1, alphabet.FromInterval[byte](byteSucc, bytePred, 0, 255), s1)
	db := Determinize[byte](n2)

	inter := Product[byte](da, db, func(af, bf bool) bool { return af && bf })
	if !inter.Accepts([]byte("cat")) {
		t.Fatal("expected intersection to accept 'cat'")
	}
	if inter.Accepts([]byte("cab")) {
		t.Fatal("expected intersection to reject 'cab'")
	}
}
