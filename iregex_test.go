package iregex

import "testing"

func TestCompileAndMatch(t *testing.T) {
	re, err := Compile(`a(b|c)*d`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("abccd") {
		t.Fatalf("expected abccd to match %q", re.String())
	}
	if re.MatchString("xyz") {
		t.Fatalf("did not expect xyz to match")
	}
}

func TestFindAll(t *testing.T) {
	re := MustCompile(`[0-9]+`)
	got := re.FindAllString("a 12 bb 345 c", -1)
	want := []string{"12", "345"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("FindAllString[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindIndex(t *testing.T) {
	re := MustCompile(`cat`)
	loc := re.FindStringIndex("a cat sat")
	if loc == nil || loc[0] != 2 || loc[1] != 5 {
		t.Fatalf("FindStringIndex = %v, want [2 5]", loc)
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile(`?`)
}
