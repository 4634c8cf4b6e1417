package expr

// maxCodePoint is the highest valid Unicode code point, used by EndOfInput
// to build a "matches any code point" primitive to negate.
const maxCodePoint = 0x10FFFF

// CodeRange is one (min,max) pair of a character class; see Class.
type CodeRange struct {
	Min, Max rune
}

// Class builds a character class over one or more code-point ranges,
// grounded on original_source/ufpeg/rules.py's CharSetRule (which, unlike
// a single-range Range expression, accepts a list of ranges). It lowers
// to a Choice of Range expressions, so it introduces no new Instruction
// opcode.
func Class(ranges ...CodeRange) Expression {
	if len(ranges) == 0 {
		return Choice{}
	}
	items := make([]Expression, len(ranges))
	for i, r := range ranges {
		items[i] = Range{Min: r.Min, Max: r.Max}
	}
	return Choice{Items: items}
}

// Repeat matches item at least min and at most max times, greedily.
// A max of -1 means unbounded, matching original_source/ufpeg/rules.py's
// RepeatRule (whose default max is +infinity). Lowers to min mandatory
// copies of item followed either by a trailing ZeroOrMore(item)
// (max < 0) or by max-min copies of ZeroOrOne(item).
func Repeat(item Expression, min, max int) Expression {
	if min < 0 {
		min = 0
	}
	items := make([]Expression, 0, min+1)
	for i := 0; i < min; i++ {
		items = append(items, item)
	}
	switch {
	case max < 0:
		items = append(items, ZeroOrMore{Item: item})
	case max > min:
		for i := 0; i < max-min; i++ {
			items = append(items, ZeroOrOne{Item: item})
		}
	}
	switch len(items) {
	case 0:
		// min == 0 and max == 0: matches only the empty string. An empty
		// Literal is the lowering primitive that matches zero-width
		// unconditionally, without making Sequence deal with zero items.
		return Literal{}
	case 1:
		return items[0]
	default:
		return Sequence{Items: items}
	}
}

// EndOfInput matches only when the cursor is at the end of the input,
// grounded on original_source/ufpeg/rules.py's EndOfInputRule. Lowers to
// a negative lookahead on "any code point".
var EndOfInput Expression = Not{Item: Range{Min: 0, Max: maxCodePoint}}
