package alphabet

import "cmp"

// Token is the constraint on values a RangeSet can hold: any totally
// ordered type. Concrete engines instantiate it with rune or byte, mirroring
// original_source's Token trait impls for char and u8.
type Token interface {
	cmp.Ordered
}

// Alphabet describes the universe of values of T and how to step through
// it, so the generic NFA/DFA/IR layers never need to know whether T is a
// Unicode rune or a raw byte.
type Alphabet[T Token] interface {
	// All returns the full range set of every representable value of T.
	All() RangeSet[T]

	// Succ returns the value immediately following v, and false if v is
	// the maximum representable value.
	Succ(v T) (T, bool)

	// Pred returns the value immediately preceding v, and false if v is
	// the minimum representable value.
	Pred(v T) (T, bool)

	// Len reports the encoded length of a single token v (1 for byte,
	// UTF-8 length for rune).
	Len(v T) int
}

// RuneAlphabet is the Unicode scalar value alphabet: every rune except the
// UTF-16 surrogate range 0xD800-0xDFFF, matching original_source's
// any_char().
type RuneAlphabet struct{}

func (RuneAlphabet) All() RangeSet[rune] {
	s := Empty[rune](runeSucc, runePred)
	s.Insert(0, 0xD7FF)
	s.Insert(0xE000, 0x10FFFF)
	return s
}

func (RuneAlphabet) Succ(v rune) (rune, bool) { return runeSucc(v) }
func (RuneAlphabet) Pred(v rune) (rune, bool) { return runePred(v) }

func (RuneAlphabet) Len(v rune) int {
	switch {
	case v < 0x80:
		return 1
	case v < 0x800:
		return 2
	case v < 0x10000:
		return 3
	default:
		return 4
	}
}

func runeSucc(v rune) (rune, bool) {
	if v >= 0x10FFFF {
		return 0, false
	}
	return v + 1, true
}

func runePred(v rune) (rune, bool) {
	if v <= 0 {
		return 0, false
	}
	return v - 1, true
}

// ByteAlphabet is the raw-byte alphabet (0-255), matching
// original_source's Token impl for u8.
type ByteAlphabet struct{}

func (ByteAlphabet) All() RangeSet[byte] {
	s := Empty[byte](byteSucc, bytePred)
	s.Insert(0, 255)
	return s
}

func (ByteAlphabet) Succ(v byte) (byte, bool) { return byteSucc(v) }
func (ByteAlphabet) Pred(v byte) (byte, bool) { return bytePred(v) }
func (ByteAlphabet) Len(byte) int             { return 1 }

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
