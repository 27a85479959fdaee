package ere

import (
	"math"
	"strconv"

	"github.com/coregx/iregex/alphabet"
)

func byteSucc(v byte) (byte, bool) { return alphabet.ByteAlphabet{}.Succ(v) }
func bytePred(v byte) (byte, bool) { return alphabet.ByteAlphabet{}.Pred(v) }

// Parse parses an ERE pattern into an AST, per spec.md §6's informative
// grammar: literals, `.`, `[...]`/`[^...]` (ranges and `[:class:]` POSIX
// names), the escape table of original_source's parse_escaped_char,
// quantifiers `? * + {m} {m,} {m,n}`, alternation `|`, grouping `( )`, and
// anchors `^ $`.
func Parse(pattern string) (*AST, error) {
	data := []byte(pattern)
	ast := &AST{}

	start := 0
	if len(data) > 0 && data[0] == '^' {
		ast.StartAnchor = true
		start = 1
	}

	end := len(data)
	if end > start && data[end-1] == '$' && !precededByOddBackslashes(data, end-1) {
		ast.EndAnchor = true
		end--
	}

	body, err := parseDisjunction(data[start:end])
	if err != nil {
		return nil, err
	}
	ast.Body = body
	return ast, nil
}

func precededByOddBackslashes(data []byte, i int) bool {
	n := 0
	for k := i - 1; k >= 0 && data[k] == '\\'; k-- {
		n++
	}
	return n%2 == 1
}

// frame is one level of a disjunction under construction: a list of
// sequences (alternatives), the last of which is still being appended to.
type frame struct {
	seqs [][]Atom
}

func newFrame() *frame { return &frame{seqs: [][]Atom{{}}} }

func (f *frame) lastSeq() *[]Atom { return &f.seqs[len(f.seqs)-1] }

func (f *frame) lastAtom() *Atom {
	seq := f.lastSeq()
	if len(*seq) == 0 {
		return nil
	}
	return &(*seq)[len(*seq)-1]
}

func (f *frame) toDisjunction() Disjunction {
	out := make(Disjunction, len(f.seqs))
	for i, s := range f.seqs {
		out[i] = Sequence(s)
	}
	return out
}

// parseDisjunction recursively descends into groups (each '(' opens a fresh
// frame, each ')' closes the innermost one into a Group atom of the
// enclosing frame), so nested alternation never merges into an
// in-construction outer sequence.
func parseDisjunction(data []byte) (Disjunction, error) {
	stack := []*frame{newFrame()}
	top := func() *frame { return stack[len(stack)-1] }

	applyRepeat := func(r Repeat, offset int) error {
		a := top().lastAtom()
		if a == nil {
			return &ParseError{Kind: ErrNothingToRepeat, Offset: offset}
		}
		inner := *a
		*a = Atom{Kind: AtomRepeat, Inner: &inner, Count: r}
		return nil
	}
	push := func(a Atom) {
		seq := top().lastSeq()
		*seq = append(*seq, a)
	}

	i, n := 0, len(data)
	for i < n {
		c := data[i]
		switch c {
		case '^':
			return nil, &ParseError{Kind: ErrUnexpectedMetacharacter, Offset: i, Detail: "^"}
		case '.':
			push(Atom{Kind: AtomAny})
			i++
		case '(':
			stack = append(stack, newFrame())
			i++
		case ')':
			if len(stack) == 1 {
				return nil, &ParseError{Kind: ErrUnmatchedClosingParen, Offset: i}
			}
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			push(Atom{Kind: AtomGroup, Group: popped.toDisjunction()})
			i++
		case '|':
			f := top()
			f.seqs = append(f.seqs, []Atom{})
			i++
		case '[':
			set, next, err := parseCharset(data, i+1)
			if err != nil {
				return nil, err
			}
			push(Atom{Kind: AtomSet, Set: set})
			i = next
		case '\\':
			ch, next, err := parseEscapedChar(data, i+1)
			if err != nil {
				return nil, err
			}
			push(Atom{Kind: AtomSet, Set: alphabet.Single[byte](byteSucc, bytePred, ch)})
			i = next
		case '?':
			if err := applyRepeat(Repeat{Min: 0, Max: maxU32p(1)}, i); err != nil {
				return nil, err
			}
			i++
		case '*':
			if err := applyRepeat(Repeat{Min: 0, Max: nil}, i); err != nil {
				return nil, err
			}
			i++
		case '+':
			if err := applyRepeat(Repeat{Min: 1, Max: nil}, i); err != nil {
				return nil, err
			}
			i++
		case '{':
			r, next, ok, err := tryParseBraceRepeat(data, i)
			if err != nil {
				return nil, err
			}
			if !ok {
				push(Atom{Kind: AtomSet, Set: alphabet.Single[byte](byteSucc, bytePred, '{')})
				i++
				continue
			}
			if err := applyRepeat(r, i); err != nil {
				return nil, err
			}
			i = next
		default:
			push(Atom{Kind: AtomSet, Set: alphabet.Single[byte](byteSucc, bytePred, c)})
			i++
		}
	}

	if len(stack) != 1 {
		return nil, &ParseError{Kind: ErrMissingClosingParen, Offset: n}
	}
	return stack[0].toDisjunction(), nil
}

// tryParseBraceRepeat attempts to read a `{m}`, `{m,}` or `{m,n}` quantifier
// starting at data[i] == '{'. ok is false (with err nil) when the braces
// don't form a valid quantifier, in which case the caller treats '{' as a
// literal character — the common POSIX fallback.
func tryParseBraceRepeat(data []byte, i int) (Repeat, int, bool, error) {
	n := len(data)
	j := i + 1
	digitsStart := j
	for j < n && data[j] >= '0' && data[j] <= '9' {
		j++
	}
	if j == digitsStart {
		return Repeat{}, i, false, nil
	}
	minVal, _ := strconv.ParseUint(string(data[digitsStart:j]), 10, 64)

	var maxVal *uint64
	if j < n && data[j] == ',' {
		j++
		start2 := j
		for j < n && data[j] >= '0' && data[j] <= '9' {
			j++
		}
		if j > start2 {
			v, _ := strconv.ParseUint(string(data[start2:j]), 10, 64)
			maxVal = &v
		}
	} else {
		v := minVal
		maxVal = &v
	}

	if j >= n || data[j] != '}' {
		return Repeat{}, i, false, nil
	}
	j++

	if minVal > math.MaxUint32 || (maxVal != nil && *maxVal > math.MaxUint32) {
		return Repeat{}, j, true, &ParseError{Kind: ErrRepetitionOverflow, Offset: i}
	}

	r := Repeat{Min: uint32(minVal)}
	if maxVal != nil {
		m := uint32(*maxVal)
		r.Max = &m
	}
	return r, j, true, nil
}

// parseCharset parses a `[...]`/`[^...]` bracket expression body (data[i]
// is the character right after the opening '['), supporting `a-b` ranges
// and `[:name:]` POSIX class names. Ported from original_source's
// parse_charset state machine, extended with POSIX class support.
func parseCharset(data []byte, i int) (alphabet.RangeSet[byte], int, error) {
	n := len(data)
	set := alphabet.Empty[byte](byteSucc, bytePred)

	negate := false
	if i < n && data[i] == '^' {
		negate = true
		i++
	}

	var pending byte
	havePending := false
	flush := func() {
		if havePending {
			set.InsertValue(pending)
			havePending = false
		}
	}

	for {
		if i >= n {
			return set, i, &ParseError{Kind: ErrIncompleteCharset, Offset: i}
		}
		c := data[i]

		if c == ']' {
			flush()
			i++
			if negate {
				all := alphabet.ByteAlphabet{}.All()
				set = set.Complement(&all)
			}
			return set, i, nil
		}

		if c == '[' && i+1 < n && data[i+1] == ':' {
			closeAt := indexPosixClose(data, i+2)
			if closeAt < 0 {
				return set, i, &ParseError{Kind: ErrIncompleteCharset, Offset: i}
			}
			flush()
			name := string(data[i+2 : closeAt])
			if !insertPosixClass(&set, name) {
				return set, i, &ParseError{Kind: ErrUnknownPosixClass, Offset: i, Detail: name}
			}
			i = closeAt + 2
			continue
		}

		if c == '-' && havePending && i+1 < n && data[i+1] != ']' {
			i++
			var rangeEnd byte
			if data[i] == '\\' {
				ch, next, err := parseEscapedChar(data, i+1)
				if err != nil {
					return set, i, err
				}
				rangeEnd = ch
				i = next
			} else {
				rangeEnd = data[i]
				i++
			}
			set.Insert(pending, rangeEnd)
			havePending = false
			continue
		}

		flush()
		if c == '\\' {
			ch, next, err := parseEscapedChar(data, i+1)
			if err != nil {
				return set, i, err
			}
			pending = ch
			i = next
		} else {
			pending = c
			i++
		}
		havePending = true
	}
}

// indexPosixClose finds the ':' of a ":]" sequence starting the search at
// start, returning -1 if none is found before the end of data.
func indexPosixClose(data []byte, start int) int {
	for k := start; k+1 < len(data); k++ {
		if data[k] == ':' && data[k+1] == ']' {
			return k
		}
	}
	return -1
}

// parseEscapedChar decodes a single escape sequence, data[i] being the
// character right after the backslash. Ported verbatim from
// original_source's parse_escaped_char table.
func parseEscapedChar(data []byte, i int) (byte, int, error) {
	if i >= len(data) {
		return 0, i, &ParseError{Kind: ErrIncompleteEscape, Offset: i}
	}
	c := data[i]
	i++
	switch c {
	case '0':
		return 0, i, nil
	case 'a':
		return '\a', i, nil
	case 'b':
		return '\b', i, nil
	case 's':
		return ' ', i, nil
	case 't':
		return '\t', i, nil
	case 'n':
		return '\n', i, nil
	case 'v':
		return '\v', i, nil
	case 'f':
		return '\f', i, nil
	case 'r':
		return '\r', i, nil
	case 'e':
		return 0x1b, i, nil
	default:
		return c, i, nil
	}
}
