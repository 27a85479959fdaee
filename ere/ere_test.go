package ere

import "testing"

// TestRoundTrip exercises spec.md §8 scenario 8: every pattern here is the
// exact table from original_source's regexp.rs #[test] mod, the ground
// truth for this package's canonical Display form.
func TestRoundTrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{`a*`, `a*`},
		{`a\*`, `a\*`},
		{`[cab]`, `[a-c]`},
		{`[^cab]`, `[^a-c]`},
		{`(abc)|de`, `abc|de`},
		{`(a|b)?`, `(a|b)?`},
		{`[A-Za-z0-89]`, `[0-9A-Za-z]`},
		{`[a|b]`, `[ab\|]`},
	}
	for _, c := range cases {
		ast, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		got := Format(ToIR(ast))
		if got != c.want {
			t.Errorf("Parse(%q) -> Format = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestParseErrors exercises spec.md §8 scenario 9: every listed invalid
// input must fail with its expected error kind.
func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind ErrorKind
	}{
		{`?`, ErrNothingToRepeat},
		{`(abc`, ErrMissingClosingParen},
		{`[[:abc:]]`, ErrUnknownPosixClass},
		{`[abc`, ErrIncompleteCharset},
		{`abc)`, ErrUnmatchedClosingParen},
		{`(abc){4294967296}`, ErrRepetitionOverflow},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error %v, got none", c.in, c.kind)
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("Parse(%q): error %v is not a *ParseError", c.in, err)
		}
		if pe.Kind != c.kind {
			t.Errorf("Parse(%q): got error kind %v, want %v", c.in, pe.Kind, c.kind)
		}
	}
}

func TestAnchors(t *testing.T) {
	ast, err := Parse(`^abc$`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ast.StartAnchor || !ast.EndAnchor {
		t.Fatalf("expected both anchors set, got %+v", ast)
	}
	if got, want := Format(ToIR(ast)), `^abc$`; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestPosixClassCompiles(t *testing.T) {
	ast, err := Parse(`[[:digit:]]+`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	re := ToIR(ast)
	if len(re.Root) != 1 || len(re.Root[0]) != 1 {
		t.Fatalf("expected a single repeat atom, got %+v", re.Root)
	}
}

func TestBraceQuantifiers(t *testing.T) {
	cases := []struct{ in, want string }{
		{`a{3}`, `a{3}`},
		{`a{3,}`, `a{3,}`},
		{`a{3,5}`, `a{3,5}`},
	}
	for _, c := range cases {
		ast, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		got := Format(ToIR(ast))
		if got != c.want {
			t.Errorf("Parse(%q) -> Format = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnmatchedBraceIsLiteral(t *testing.T) {
	ast, err := Parse(`a{foo`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Format(ToIR(ast))
	want := `a\{foo`
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
