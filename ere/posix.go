package ere

import "github.com/coregx/iregex/alphabet"

// posixClasses maps a `[:name:]` bracket-expression class name to the byte
// ranges it resolves to. ASCII-only, matching the byte-specialized token
// alphabet this module's IR/NFA layers are built over (see DESIGN.md).
var posixClasses = map[string][]alphabet.Interval[byte]{
	"alpha":  {{Lo: 'A', Hi: 'Z'}, {Lo: 'a', Hi: 'z'}},
	"digit":  {{Lo: '0', Hi: '9'}},
	"alnum":  {{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'Z'}, {Lo: 'a', Hi: 'z'}},
	"upper":  {{Lo: 'A', Hi: 'Z'}},
	"lower":  {{Lo: 'a', Hi: 'z'}},
	"space":  {{Lo: '\t', Hi: '\r'}, {Lo: ' ', Hi: ' '}},
	"blank":  {{Lo: '\t', Hi: '\t'}, {Lo: ' ', Hi: ' '}},
	"punct":  {{Lo: '!', Hi: '/'}, {Lo: ':', Hi: '@'}, {Lo: '[', Hi: '`'}, {Lo: '{', Hi: '~'}},
	"cntrl":  {{Lo: 0, Hi: 0x1f}, {Lo: 0x7f, Hi: 0x7f}},
	"print":  {{Lo: ' ', Hi: '~'}},
	"graph":  {{Lo: '!', Hi: '~'}},
	"xdigit": {{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'F'}, {Lo: 'a', Hi: 'f'}},
}

func insertPosixClass(set *alphabet.RangeSet[byte], name string) bool {
	ivals, ok := posixClasses[name]
	if !ok {
		return false
	}
	for _, iv := range ivals {
		set.Insert(iv.Lo, iv.Hi)
	}
	return true
}
