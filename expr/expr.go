// Package expr defines the source-level Expression tree for PEG
// constructs. Expression is a closed, tagged variant type: the compiler
// package type-switches over the concrete variants defined here to lower
// a tree into an instruction program.
//
// Text and code-point bounds are represented as Go runes throughout,
// which are already 32-bit Unicode code points, so full-Unicode input
// needs no extra encoding step in Go.
package expr

// Expression is a node in a PEG expression tree. The interface is sealed:
// every variant lives in this package and implements the unexported
// sealed marker method, so that no external type can implement
// Expression.
type Expression interface {
	sealed()
}

// Literal matches an exact sequence of code points and advances the
// cursor past it on success.
type Literal struct {
	Text []rune
}

func (Literal) sealed() {}

// Range matches a single code point c with Min <= c <= Max.
type Range struct {
	Min, Max rune
}

func (Range) sealed() {}

// Sequence matches Items in order, all-or-nothing: if any item fails, the
// cursor is restored to the sequence's starting position.
type Sequence struct {
	Items []Expression
}

func (Sequence) sealed() {}

// Choice tries Items in priority order and matches the first one that
// succeeds; PEG prioritized choice, not ambiguous alternation.
type Choice struct {
	Items []Expression
}

func (Choice) sealed() {}

// ZeroOrOne matches Item zero or one times; always succeeds.
type ZeroOrOne struct {
	Item Expression
}

func (ZeroOrOne) sealed() {}

// ZeroOrMore matches Item as many times as possible, greedily; always
// succeeds.
type ZeroOrMore struct {
	Item Expression
}

func (ZeroOrMore) sealed() {}

// OneOrMore matches Item one or more times, greedily.
type OneOrMore struct {
	Item Expression
}

func (OneOrMore) sealed() {}

// And is positive lookahead: matches iff Item matches, but never advances
// the cursor.
type And struct {
	Item Expression
}

func (And) sealed() {}

// Not is negative lookahead: matches iff Item fails, but never advances
// the cursor.
type Not struct {
	Item Expression
}

func (Not) sealed() {}

// RuleReference invokes the named rule. Forward references (a
// RuleReference mentioning a rule not yet defined) are legal; the
// compiler resolves them in a second pass.
type RuleReference struct {
	Name string
}

func (RuleReference) sealed() {}

// RuleDefinition binds Name to Item as an invocable rule. Entering the
// rule reserves a partial node that is finalized with Name on success or
// discarded on failure.
type RuleDefinition struct {
	Name string
	Item Expression
}

func (RuleDefinition) sealed() {}

// Grammar is a sequence of rule definitions. The first rule is the
// program's entry point; later rules are reachable only via
// RuleReference.
type Grammar struct {
	Rules []RuleDefinition
}

func (Grammar) sealed() {}
