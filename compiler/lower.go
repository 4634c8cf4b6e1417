package compiler

import (
	"fmt"

	"github.com/eb08a167/ufpeg/expr"
	"github.com/eb08a167/ufpeg/inst"
	"github.com/eb08a167/ufpeg/ref"
)

// lower implements the per-construct lowering table: every Expression
// variant's compile(ctx, {entry, success, failure}) -> [items].
// entry is the Reference the first emitted item must carry; success and
// failure are where control flows on match and mismatch respectively.
func lower(ctx *Context, e expr.Expression, entry, success, failure ref.Ref) ([]item, error) {
	switch e := e.(type) {
	case expr.Literal:
		expectEntry := ctx.arena.New()
		return []item{
			{entry: entry, op: inst.MatchLiteral, text: e.Text, success: success, failure: expectEntry},
			{entry: expectEntry, op: inst.Expect, name: literalExpectName(e.Text), target: failure},
		}, nil

	case expr.Range:
		if e.Min > e.Max {
			return nil, &Error{Kind: MalformedGrammar, Message: fmt.Sprintf("invalid range: min %U > max %U", e.Min, e.Max)}
		}
		expectEntry := ctx.arena.New()
		return []item{
			{entry: entry, op: inst.MatchRange, min: e.Min, max: e.Max, success: success, failure: expectEntry},
			{entry: expectEntry, op: inst.Expect, name: rangeExpectName(e.Min, e.Max), target: failure},
		}, nil

	case expr.Sequence:
		return lowerSequence(ctx, e, entry, success, failure)

	case expr.Choice:
		return lowerChoice(ctx, e, entry, success, failure)

	case expr.ZeroOrOne:
		return lower(ctx, e.Item, entry, success, success)

	case expr.ZeroOrMore:
		return lower(ctx, e.Item, entry, entry, success)

	case expr.OneOrMore:
		return lower(ctx, expr.Sequence{Items: []expr.Expression{e.Item, expr.ZeroOrMore{Item: e.Item}}}, entry, success, failure)

	case expr.And:
		return lowerPredicate(ctx, e.Item, entry, success, failure, false)

	case expr.Not:
		return lowerPredicate(ctx, e.Item, entry, success, failure, true)

	case expr.RuleReference:
		return lowerRuleReference(ctx, e, entry, success, failure), nil

	case expr.RuleDefinition:
		return nil, &Error{Kind: InternalCompilerError, Message: "RuleDefinition must be lowered via compileRule, not lower"}

	case expr.Grammar:
		return nil, &Error{Kind: InternalCompilerError, Message: "Grammar must be lowered via Compile, not lower"}

	default:
		return nil, &Error{Kind: InternalCompilerError, Message: fmt.Sprintf("unhandled expression type %T", e)}
	}
}

func lowerSequence(ctx *Context, s expr.Sequence, entry, success, failure ref.Ref) ([]item, error) {
	if len(s.Items) == 0 {
		return nil, &Error{Kind: MalformedGrammar, Message: "Sequence requires at least one item"}
	}
	commitRef := ctx.arena.New()
	abortRef := ctx.arena.New()

	items := make([]item, 0, 4)
	currentEntry := ctx.arena.New()
	items = append(items, item{entry: entry, op: inst.Begin, target: currentEntry})

	for i, sub := range s.Items {
		var itemSuccess ref.Ref
		if i == len(s.Items)-1 {
			itemSuccess = commitRef
		} else {
			itemSuccess = ctx.arena.New()
		}
		lowered, err := lower(ctx, sub, currentEntry, itemSuccess, abortRef)
		if err != nil {
			return nil, err
		}
		items = append(items, lowered...)
		currentEntry = itemSuccess
	}

	items = append(items, item{entry: commitRef, op: inst.Commit, target: success})
	items = append(items, item{entry: abortRef, op: inst.Abort, target: failure})
	return items, nil
}

func lowerChoice(ctx *Context, c expr.Choice, entry, success, failure ref.Ref) ([]item, error) {
	if len(c.Items) == 0 {
		return []item{{entry: entry, op: inst.Jump, target: failure}}, nil
	}

	items := make([]item, 0, len(c.Items))
	altEntry := entry
	for i, alt := range c.Items {
		var altFailure ref.Ref
		if i == len(c.Items)-1 {
			altFailure = failure
		} else {
			altFailure = ctx.arena.New()
		}
		lowered, err := lower(ctx, alt, altEntry, success, altFailure)
		if err != nil {
			return nil, err
		}
		items = append(items, lowered...)
		altEntry = altFailure
	}
	return items, nil
}

// lowerPredicate implements And(negate=false) and Not(negate=true): both
// wrap item in Begin and always roll the checkpoint back via a terminal
// Abort, differing only in which of the item's two outcomes routes to
// which terminal Abort.
func lowerPredicate(ctx *Context, sub expr.Expression, entry, success, failure ref.Ref, negate bool) ([]item, error) {
	itemEntry := ctx.arena.New()
	abortToSuccess := ctx.arena.New()
	abortToFailure := ctx.arena.New()

	itemSuccess, itemFailure := abortToSuccess, abortToFailure
	if negate {
		itemSuccess, itemFailure = abortToFailure, abortToSuccess
	}

	lowered, err := lower(ctx, sub, itemEntry, itemSuccess, itemFailure)
	if err != nil {
		return nil, err
	}

	items := make([]item, 0, len(lowered)+3)
	items = append(items, item{entry: entry, op: inst.Begin, target: itemEntry})
	items = append(items, lowered...)
	items = append(items, item{entry: abortToSuccess, op: inst.Abort, target: success})
	items = append(items, item{entry: abortToFailure, op: inst.Abort, target: failure})
	return items, nil
}

// literalExpectName and rangeExpectName name the "expected token" recorded
// by the Expect instructions that lower(Literal)/lower(Range) emit on
// their failure edges. Literal/Range route their failure edge through an
// Expect so a bare primitive failing on its own, with no enclosing
// RuleReference, still localizes a diagnostic name at the cursor it
// failed at — the same furthest-failure bookkeeping a rule invocation
// gets, just named after the literal text or range instead of a rule.
func literalExpectName(text []rune) string {
	return string(text)
}

func rangeExpectName(min, max rune) string {
	if min == max {
		return string(min)
	}
	return fmt.Sprintf("[%c-%c]", min, max)
}

// lowerRuleReference emits Invoke, and on the failure edge routes through
// Expect(name) before continuing to the outer failure, so a failed call
// records which rule it was trying to match.
func lowerRuleReference(ctx *Context, r expr.RuleReference, entry, success, failure ref.Ref) []item {
	expectEntry := ctx.arena.New()
	return []item{
		{entry: entry, op: inst.Invoke, target: ctx.ruleRef(r.Name), success: success, failure: expectEntry},
		{entry: expectEntry, op: inst.Expect, name: r.Name, target: failure},
	}
}

// compileRule lowers one RuleDefinition's body into its Prepare/.../
// RevokeSuccess/RevokeFailure block. ruleEntry is the
// Reference under which the rule is invoked (ctx.ruleRef(name), possibly
// aliased to the program's overall entry by Compile for the first rule).
func compileRule(ctx *Context, name string, ruleEntry ref.Ref, body expr.Expression) ([]item, error) {
	bodyEntry := ctx.arena.New()
	consumeRef := ctx.arena.New()
	discardRef := ctx.arena.New()
	revokeSuccessRef := ctx.arena.New()
	revokeFailureRef := ctx.arena.New()

	lowered, err := lower(ctx, body, bodyEntry, consumeRef, discardRef)
	if err != nil {
		return nil, err
	}

	items := make([]item, 0, len(lowered)+5)
	items = append(items, item{entry: ruleEntry, op: inst.Prepare, target: bodyEntry})
	items = append(items, lowered...)
	items = append(items, item{entry: consumeRef, op: inst.Consume, name: name, target: revokeSuccessRef})
	items = append(items, item{entry: discardRef, op: inst.Discard, target: revokeFailureRef})
	items = append(items, item{entry: revokeSuccessRef, op: inst.RevokeSuccess})
	items = append(items, item{entry: revokeFailureRef, op: inst.RevokeFailure})
	return items, nil
}
