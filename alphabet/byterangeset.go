package alphabet

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// ByteRangeSet wraps a RangeSet[byte] with a batched containment check over
// []byte haystacks. The scalar path (Contains in a loop) is always correct;
// ContainsAll additionally picks a larger SWAR batch size when the host has
// AVX2, following the dispatch-by-CPU-feature shape of the teacher's
// simd/ascii_amd64.go + simd/ascii_fallback.go pair. This is a portable Go
// SWAR implementation, not hand-written assembly: the AVX2 check only
// changes how many bytes we test per iteration of the pure-Go loop below.
type ByteRangeSet struct {
	set RangeSet[byte]
	// lut is a 256-entry membership table, built once from set, so the
	// per-byte test in the hot loop is an array index rather than a
	// binary search over intervals.
	lut [256]bool
}

// NewByteRangeSet builds a lookup-accelerated view of set. set is not
// retained; later mutation of the original RangeSet does not affect it.
func NewByteRangeSet(set *RangeSet[byte]) *ByteRangeSet {
	b := &ByteRangeSet{set: set.Clone()}
	for _, iv := range b.set.Intervals() {
		for v := int(iv.Lo); v <= int(iv.Hi); v++ {
			b.lut[v] = true
		}
	}
	return b
}

// batchSize returns how many bytes ContainsAll consumes per SWAR step: 8 on
// any platform (a uint64 word), or 16 when the host advertises AVX2, which
// lets us halve the number of loop iterations by reading two words per
// check. The AVX2 bit is purely a sizing heuristic here — there is no
// vector instruction involved. Grounded on simd/memchr_class_fallback.go's
// feature-gated batch dispatch.
func batchSize() int {
	if cpu.X86.HasAVX2 {
		return 16
	}
	return 8
}

// ContainsAll reports whether every byte in data is a member of the range
// set. Equivalent to, but faster than, looping Contains over each byte.
func (b *ByteRangeSet) ContainsAll(data []byte) bool {
	n := batchSize()
	i := 0
	for ; i+n <= len(data); i += n {
		for j := 0; j < n; j += 8 {
			w := binary.LittleEndian.Uint64(data[i+j : i+j+8])
			if !b.wordAllMembers(w) {
				return false
			}
		}
	}
	for ; i < len(data); i++ {
		if !b.lut[data[i]] {
			return false
		}
	}
	return true
}

// wordAllMembers tests the 8 bytes packed in w against the membership
// table. There is no single bitwise trick for an arbitrary membership set
// (unlike the teacher's ASCII-only high-bit check), so this unpacks the
// word and consults lut per byte; the win over a naive loop is amortizing
// the bounds checks and load into one 64-bit read.
func (b *ByteRangeSet) wordAllMembers(w uint64) bool {
	for k := 0; k < 8; k++ {
		if !b.lut[byte(w>>(8*k))] {
			return false
		}
	}
	return true
}

// Contains reports whether v is a member of the underlying set.
func (b *ByteRangeSet) Contains(v byte) bool { return b.lut[v] }
