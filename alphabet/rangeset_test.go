package alphabet

import "testing"

func runeSet(ivals ...[2]rune) RangeSet[rune] {
	s := Empty[rune](runeSucc, runePred)
	for _, iv := range ivals {
		s.Insert(iv[0], iv[1])
	}
	return s
}

func TestInsertMergesAdjacentAndOverlapping(t *testing.T) {
	s := Empty[rune](runeSucc, runePred)
	s.Insert('a', 'c')
	s.Insert('d', 'f') // adjacent to previous, must merge
	s.Insert('z', 'z')
	s.Insert('h', 'j')

	got := s.Intervals()
	want := []Interval[rune]{{'a', 'f'}, {'h', 'j'}, {'z', 'z'}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("interval %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInsertUnsortedBounds(t *testing.T) {
	s := Empty[rune](runeSucc, runePred)
	s.Insert('c', 'a') // reversed
	if !s.Contains('b') {
		t.Fatal("expected b to be contained after reversed insert")
	}
}

func TestRemoveSplits(t *testing.T) {
	s := runeSet([2]rune{'a', 'z'})
	s.Remove('m', 'o')

	if s.Contains('m') || s.Contains('n') || s.Contains('o') {
		t.Fatal("removed range still contained")
	}
	if !s.Contains('a') || !s.Contains('l') || !s.Contains('p') || !s.Contains('z') {
		t.Fatal("surviving range not contained")
	}
}

func TestComplementOfComplementIsIdentity(t *testing.T) {
	universe := RuneAlphabet{}.All()
	s := runeSet([2]rune{'a', 'z'}, [2]rune{'0', '9'})

	c1 := s.Complement(&universe)
	c2 := c1.Complement(&universe)

	if !s.Equal(&c2) {
		t.Fatalf("complement(complement(s)) != s: got %v", c2.Intervals())
	}
}

func TestIntersectionSubsetOfBoth(t *testing.T) {
	a := runeSet([2]rune{'a', 'm'})
	b := runeSet([2]rune{'g', 'z'})
	inter := Intersection(&a, &b)

	for _, iv := range inter.Intervals() {
		for v := iv.Lo; v <= iv.Hi; v++ {
			if !a.Contains(v) || !b.Contains(v) {
				t.Fatalf("intersection value %q not in both operands", v)
			}
		}
	}
	if !inter.Contains('g') || !inter.Contains('m') || inter.Contains('a') || inter.Contains('z') {
		t.Fatalf("unexpected intersection contents: %v", inter.Intervals())
	}
}

func TestIntersectionWithComplementIsEmpty(t *testing.T) {
	universe := RuneAlphabet{}.All()
	a := runeSet([2]rune{'a', 'm'})
	notA := a.Complement(&universe)

	inter := Intersection(&a, &notA)
	if !inter.IsEmpty() {
		t.Fatalf("a ∩ ¬a should be empty, got %v", inter.Intervals())
	}
}

func TestUnionContainsBoth(t *testing.T) {
	a := runeSet([2]rune{'a', 'c'})
	b := runeSet([2]rune{'x', 'z'})
	u := a.Union(&b)

	for _, v := range []rune{'a', 'b', 'c', 'x', 'y', 'z'} {
		if !u.Contains(v) {
			t.Fatalf("union missing %q", v)
		}
	}
	if u.Contains('m') {
		t.Fatal("union contains unexpected value")
	}
}

func TestByteRangeSetContainsAll(t *testing.T) {
	s := Empty[byte](byteSucc, bytePred)
	s.Insert('a', 'z')
	s.Insert('0', '9')
	brs := NewByteRangeSet(&s)

	if !brs.ContainsAll([]byte("hello42world")) {
		t.Fatal("expected all-lowercase-and-digit string to match")
	}
	if brs.ContainsAll([]byte("Hello")) {
		t.Fatal("uppercase H should not be contained")
	}
	// Exercise the batched path with input spanning multiple words.
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	if !brs.ContainsAll(long) {
		t.Fatal("expected long all-lowercase buffer to match")
	}
	long[150] = 'Z'
	if brs.ContainsAll(long) {
		t.Fatal("expected mismatch to be detected in batched path")
	}
}

func TestRuneAlphabetExcludesSurrogates(t *testing.T) {
	all := RuneAlphabet{}.All()
	if all.Contains(0xD900) {
		t.Fatal("surrogate range should not be part of the rune alphabet")
	}
	if !all.Contains('A') || !all.Contains(0x10FFFF) {
		t.Fatal("expected boundary values to be contained")
	}
}
