// Package iregex implements a POSIX Extended Regular Expression engine over
// a generic range-set token alphabet: parse an ERE pattern (package ere),
// lower it to the class-threaded intermediate representation (package ir),
// compile it to a prefix/root/suffix NFA family, and drive a lazy,
// leftmost-first match iterator over it (package
// compound). This root package is the small public surface tying the
// pieces together, mirroring the teacher's own top-level Regex type.
package iregex

import (
	"github.com/coregx/iregex/class"
	"github.com/coregx/iregex/compound"
	"github.com/coregx/iregex/ere"
	"github.com/coregx/iregex/ir"
)

// Regexp represents a compiled ERE pattern.
//
// A Regexp is safe for concurrent use by multiple goroutines: Compile
// builds everything it needs up front, and Matches iterators hold no
// shared mutable state beyond their own haystack.
type Regexp struct {
	pattern   string
	compiled  *ir.Compiled[struct{}]
	prefilter *compound.LiteralPrefilter
}

// Compile parses pattern as a POSIX ERE and compiles it for matching.
func Compile(pattern string) (*Regexp, error) {
	ast, err := ere.Parse(pattern)
	if err != nil {
		return nil, err
	}
	re := ere.ToIR(ast)
	compiled, err := re.Compile(struct{}{}, class.Trivial[byte]{}, ir.CompileOptions{})
	if err != nil {
		return nil, err
	}

	var prefilter *compound.LiteralPrefilter
	if literals, ok := ir.ExtractLiterals(re.Root); ok {
		prefilter, _ = compound.NewLiteralPrefilter(literals)
	}
	return &Regexp{pattern: pattern, compiled: compiled, prefilter: prefilter}, nil
}

// MustCompile is like Compile but panics if pattern is invalid.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("iregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string { return re.pattern }

func (re *Regexp) automaton() *compound.Automaton[struct{}] {
	return compound.New[struct{}](re.compiled, re.prefilter)
}

// Match reports whether b contains any match of re.
func (re *Regexp) Match(b []byte) bool {
	_, ok := re.automaton().Matches(b).Next()
	return ok
}

// MatchString reports whether s contains any match of re.
func (re *Regexp) MatchString(s string) bool { return re.Match([]byte(s)) }

// Find returns the leftmost match in b, or nil if there is none.
func (re *Regexp) Find(b []byte) []byte {
	span, ok := re.automaton().Matches(b).Next()
	if !ok {
		return nil
	}
	return b[span.Start:span.End]
}

// FindString is like Find but operates on and returns a string.
func (re *Regexp) FindString(s string) string {
	m := re.Find([]byte(s))
	if m == nil {
		return ""
	}
	return string(m)
}

// FindIndex returns a two-element slice holding the [start, end) of the
// leftmost match in b, or nil if there is none.
func (re *Regexp) FindIndex(b []byte) []int {
	span, ok := re.automaton().Matches(b).Next()
	if !ok {
		return nil
	}
	return []int{span.Start, span.End}
}

// FindStringIndex is like FindIndex but operates on a string.
func (re *Regexp) FindStringIndex(s string) []int { return re.FindIndex([]byte(s)) }

// FindAll returns every non-overlapping match of re in b, leftmost first.
// If n >= 0, at most n matches are returned.
func (re *Regexp) FindAll(b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}
	var out [][]byte
	it := re.automaton().Matches(b)
	for {
		span, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, b[span.Start:span.End])
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out
}

// FindAllString is like FindAll but operates on and returns strings.
func (re *Regexp) FindAllString(s string, n int) []string {
	matches := re.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

// FindAllIndex is like FindAll but returns the [start, end) index pairs
// instead of the matched bytes.
func (re *Regexp) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}
	var out [][]int
	it := re.automaton().Matches(b)
	for {
		span, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, []int{span.Start, span.End})
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out
}
