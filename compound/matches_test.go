package compound

import (
	"testing"

	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/class"
	"github.com/coregx/iregex/ir"
)

func byteStep(v byte) (byte, bool) {
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

func lit(s string) ir.Concatenation[struct{}] {
	var c ir.Concatenation[struct{}]
	for i := 0; i < len(s); i++ {
		c = append(c, ir.TokenAtom[struct{}](alphabet.Single[byte](byteStep, bytePred, s[i])))
	}
	return c
}

func compile(t *testing.T, re ir.IRegEx[struct{}]) *ir.Compiled[struct{}] {
	t.Helper()
	compiled, err := re.Compile(struct{}{}, class.Trivial[byte]{}, ir.CompileOptions{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return compiled
}

func allSpans(m *Matches[struct{}]) []Span {
	var out []Span
	for {
		s, ok := m.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

func TestUnanchoredLiteralFindsAllOccurrences(t *testing.T) {
	root := ir.Alternation[struct{}]{lit("cat")}
	compiled := compile(t, ir.Unanchored(root))
	a := New[struct{}](compiled, nil)

	got := allSpans(a.Matches([]byte("a cat sat on a cat")))
	want := []Span{{2, 5}, {15, 18}}
	if len(got) != len(want) {
		t.Fatalf("got %v spans, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("span %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAnchoredRequiresFullMatch(t *testing.T) {
	root := ir.Alternation[struct{}]{lit("cat")}
	compiled := compile(t, ir.Anchored(root))
	a := New[struct{}](compiled, nil)

	if _, ok := a.Matches([]byte("a cat")).Next(); ok {
		t.Fatal("anchored pattern should not match within a larger haystack")
	}

	a2 := New[struct{}](compiled, nil)
	spans := allSpans(a2.Matches([]byte("cat")))
	if len(spans) != 1 || spans[0] != (Span{0, 3}) {
		t.Fatalf("anchored exact match got %v", spans)
	}
}

func TestUnanchoredEmptyAlternationMatchesEveryOffset(t *testing.T) {
	// An empty concatenation branch matches the empty string at every
	// position, guaranteeing Matches.Next always makes forward progress
	// even though every individual match has zero length.
	root := ir.Alternation[struct{}]{{}}
	compiled := compile(t, ir.Unanchored(root))
	a := New[struct{}](compiled, nil)

	spans := allSpans(a.Matches([]byte("ab")))
	want := []Span{{0, 0}, {1, 1}, {2, 2}}
	if len(spans) != len(want) {
		t.Fatalf("got %v, want %v", spans, want)
	}
	for i := range spans {
		if spans[i] != want[i] {
			t.Fatalf("span %d = %v, want %v", i, spans[i], want[i])
		}
	}
}

func TestLiteralPrefilterAgreesWithUnfiltered(t *testing.T) {
	root := ir.Alternation[struct{}]{lit("cat"), lit("dog")}
	compiled := compile(t, ir.Unanchored(root))

	plain := New[struct{}](compiled, nil)
	pf, ok := NewLiteralPrefilter([][]byte{[]byte("cat"), []byte("dog")})
	if !ok {
		t.Fatal("expected prefilter to build")
	}
	filtered := New[struct{}](compiled, pf)

	haystack := []byte("the dog chased the cat down the road")
	wantSpans := allSpans(plain.Matches(haystack))
	gotSpans := allSpans(filtered.Matches(haystack))

	if len(gotSpans) != len(wantSpans) {
		t.Fatalf("filtered=%v plain=%v", gotSpans, wantSpans)
	}
	for i := range gotSpans {
		if gotSpans[i] != wantSpans[i] {
			t.Fatalf("span %d: filtered=%v plain=%v", i, gotSpans[i], wantSpans[i])
		}
	}
}
