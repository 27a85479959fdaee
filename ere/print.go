package ere

import (
	"fmt"
	"strings"

	"github.com/coregx/iregex/alphabet"
	"github.com/coregx/iregex/ir"
)

// Format renders re back to canonical ERE text, reproducing
// original_source's regexp.rs Display/display_sub canonicalization: ranges
// sorted and merged (inherited from RangeSet's own canonical form), minimal
// parenthesization (only where structurally required), and the
// negated-bracket heuristic (print whichever of a charset or its
// complement has fewer member bytes).
func Format(re ir.IRegEx[struct{}]) string {
	var b strings.Builder
	if re.Prefix.Kind == ir.AffixAnchor {
		b.WriteByte('^')
	}
	b.WriteString(printAlternation(re.Root))
	if re.Suffix.Kind == ir.AffixAnchor {
		b.WriteByte('$')
	}
	return b.String()
}

func printAlternation(alt ir.Alternation[struct{}]) string {
	parts := make([]string, len(alt))
	for i, seq := range alt {
		parts[i] = printConcatenation(seq)
	}
	return strings.Join(parts, "|")
}

func printConcatenation(seq ir.Concatenation[struct{}]) string {
	if len(seq) == 0 {
		return ""
	}
	if len(seq) == 1 {
		return printAtomInline(seq[0])
	}
	var b strings.Builder
	for _, a := range seq {
		b.WriteString(printAtomSub(a))
	}
	return b.String()
}

// concatIsSimple mirrors ir.Concatenation.IsSimple but recurses into the
// sole atom's own simplicity, so a transparent group wrapping a non-simple
// alternation (e.g. "(a|b)") is correctly treated as non-simple even
// though the wrapping concatenation itself has length 1. See DESIGN.md:
// this recursive form fixes an edge case the original's blanket
// `Sequence => simple` rule gets wrong for nested groups.
func concatIsSimple(seq ir.Concatenation[struct{}]) bool {
	if len(seq) == 0 {
		return true
	}
	if len(seq) > 1 {
		return false
	}
	return atomIsSimple(seq[0])
}

func alternationIsSimple(alt ir.Alternation[struct{}]) bool {
	return len(alt) == 1 && concatIsSimple(alt[0])
}

func atomIsSimple(a ir.Atom[struct{}]) bool {
	switch a.Kind {
	case ir.AtomToken, ir.AtomBoundary:
		return true
	case ir.AtomRepeat:
		if a.Count.IsOne() {
			return alternationIsSimple(a.RepeatBody)
		}
		return false
	default:
		return false
	}
}

// printAtomInline prints a as the sole content of its enclosing
// concatenation (no self-imposed parentheses).
func printAtomInline(a ir.Atom[struct{}]) string {
	switch a.Kind {
	case ir.AtomToken:
		return printCharset(a.Token)
	case ir.AtomRepeat:
		if a.Count.IsOne() {
			return printAlternation(a.RepeatBody)
		}
		return printRepeatBody(a) + printRepeatSuffix(a.Count)
	default:
		return ""
	}
}

// printAtomSub prints a embedded within a longer concatenation, adding
// parentheses when a is not structurally simple (ported from
// original_source's display_sub).
func printAtomSub(a ir.Atom[struct{}]) string {
	if atomIsSimple(a) {
		return printAtomInline(a)
	}
	return "(" + printAtomInline(a) + ")"
}

func printRepeatBody(a ir.Atom[struct{}]) string {
	body := printAlternation(a.RepeatBody)
	if !alternationIsSimple(a.RepeatBody) {
		body = "(" + body + ")"
	}
	return body
}

func printRepeatSuffix(count ir.Repeat) string {
	switch {
	case count.Max != nil && count.Min == 0 && *count.Max == 1:
		return "?"
	case count.Max == nil && count.Min == 0:
		return "*"
	case count.Max == nil && count.Min == 1:
		return "+"
	case count.Max == nil:
		return fmt.Sprintf("{%d,}", count.Min)
	case count.Min == 0:
		return fmt.Sprintf("{0,%d}", *count.Max)
	case count.Min == *count.Max:
		return fmt.Sprintf("{%d}", count.Min)
	default:
		return fmt.Sprintf("{%d,%d}", count.Min, *count.Max)
	}
}

const byteUniverseSize = 256

// printCharset prints set as a single escaped char (the common literal/
// \-escape case), or a `[...]`/`[^...]` bracket expression, choosing
// whichever of the set or its complement has fewer member bytes —
// ported from regexp.rs's Display impl for Set.
func printCharset(set alphabet.RangeSet[byte]) string {
	ivals := set.Intervals()
	if len(ivals) == 1 && ivals[0].Lo == ivals[0].Hi {
		return printEscapedByte(ivals[0].Lo)
	}

	total := 0
	for _, iv := range ivals {
		total += int(iv.Hi) - int(iv.Lo) + 1
	}

	var b strings.Builder
	b.WriteByte('[')
	if total*2 > byteUniverseSize {
		b.WriteByte('^')
		all := alphabet.ByteAlphabet{}.All()
		for _, iv := range set.Gaps(&all) {
			writeRange(&b, iv)
		}
	} else {
		for _, iv := range ivals {
			writeRange(&b, iv)
		}
	}
	b.WriteByte(']')
	return b.String()
}

func writeRange(b *strings.Builder, iv alphabet.Interval[byte]) {
	b.WriteString(printEscapedByte(iv.Lo))
	if iv.Lo == iv.Hi {
		return
	}
	if int(iv.Hi) > int(iv.Lo)+1 {
		b.WriteByte('-')
	}
	b.WriteString(printEscapedByte(iv.Hi))
}

// printEscapedByte ports regexp.rs's fmt_char: escape the ERE metacharacters
// and the control-char table, print everything else literally.
func printEscapedByte(c byte) string {
	switch c {
	case '(':
		return "\\("
	case ')':
		return "\\)"
	case '[':
		return "\\["
	case ']':
		return "\\]"
	case '{':
		return "\\{"
	case '}':
		return "\\}"
	case '?':
		return "\\?"
	case '*':
		return "\\*"
	case '+':
		return "\\+"
	case '-':
		return "\\-"
	case '^':
		return "\\^"
	case '|':
		return "\\|"
	case '.':
		return "\\."
	case '$':
		return "\\$"
	case '\\':
		return "\\\\"
	case 0:
		return "\\0"
	case '\a':
		return "\\a"
	case '\b':
		return "\\b"
	case '\t':
		return "\\t"
	case '\n':
		return "\\n"
	case '\v':
		return "\\v"
	case '\f':
		return "\\f"
	case '\r':
		return "\\r"
	case 0x1b:
		return "\\e"
	default:
		return string(rune(c))
	}
}
