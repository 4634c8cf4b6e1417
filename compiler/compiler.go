// Package compiler lowers an expr.Expression tree into a resolved
// inst.Program: recursive emission against a Context (whose Reference
// arena tracks not-yet-known offsets), followed by a single resolution
// pass once every instruction's position in the final linear list is
// known.
package compiler

import (
	"fmt"

	"github.com/eb08a167/ufpeg/expr"
	"github.com/eb08a167/ufpeg/inst"
	"github.com/eb08a167/ufpeg/ref"
)

// Compile lowers root into a resolved inst.Program. root is typically an
// expr.Grammar; a bare non-Grammar Expression is also accepted, in which
// case its outer success/failure route directly to the VM's halt
// sentinels (inst.HaltSuccess/HaltFailure) rather than to another rule's
// call frame.
//
// Compile is pure: it holds no state across calls, and the same tree
// compiled twice yields byte-for-byte identical programs.
func Compile(root expr.Expression) (inst.Program, error) {
	ctx := newContext()

	entrySentinel := ctx.arena.New()
	successSentinel := ctx.arena.New()
	failureSentinel := ctx.arena.New()
	ctx.arena.Resolve(successSentinel, inst.HaltSuccess)
	ctx.arena.Resolve(failureSentinel, inst.HaltFailure)

	var items []item
	var err error
	if g, ok := root.(expr.Grammar); ok {
		items, err = compileGrammar(ctx, g, entrySentinel)
	} else {
		items, err = lower(ctx, root, entrySentinel, successSentinel, failureSentinel)
	}
	if err != nil {
		return nil, err
	}

	for i, it := range items {
		ctx.arena.Resolve(it.entry, i)
	}

	for i := 0; i < ctx.arena.Len(); i++ {
		if !ctx.arena.Resolved(ref.Ref(i)) {
			return nil, &Error{Kind: InternalCompilerError, Message: fmt.Sprintf("reference %d left unresolved (likely a RuleReference to an undefined rule)", i)}
		}
	}

	program := make(inst.Program, len(items))
	for i, it := range items {
		program[i] = convert(ctx, it)
	}
	return program, nil
}

func compileGrammar(ctx *Context, g expr.Grammar, entrySentinel ref.Ref) ([]item, error) {
	if len(g.Rules) == 0 {
		return nil, &Error{Kind: MalformedGrammar, Message: "Grammar requires at least one rule"}
	}
	var items []item
	for i, rule := range g.Rules {
		var ruleEntry ref.Ref
		if i == 0 {
			ruleEntry = ctx.bindRuleRef(rule.Name, entrySentinel)
		} else {
			ruleEntry = ctx.ruleRef(rule.Name)
		}
		lowered, err := compileRule(ctx, rule.Name, ruleEntry, rule.Item)
		if err != nil {
			return nil, err
		}
		items = append(items, lowered...)
	}
	return items, nil
}

// convert resolves one item's Refs into the final inst.Instruction, only
// touching the fields the opcode actually defines (see inst/doc.go's
// per-opcode operand table).
func convert(ctx *Context, it item) inst.Instruction {
	get := func(r ref.Ref) int { return ctx.arena.Get(r) }

	switch it.op {
	case inst.MatchLiteral:
		return inst.Instruction{Op: it.op, Text: it.text, Success: get(it.success), Failure: get(it.failure)}
	case inst.MatchRange:
		return inst.Instruction{Op: it.op, Min: it.min, Max: it.max, Success: get(it.success), Failure: get(it.failure)}
	case inst.Invoke:
		return inst.Instruction{Op: it.op, Target: get(it.target), Success: get(it.success), Failure: get(it.failure)}
	case inst.Consume, inst.Expect:
		return inst.Instruction{Op: it.op, Name: it.name, Target: get(it.target)}
	case inst.RevokeSuccess, inst.RevokeFailure:
		return inst.Instruction{Op: it.op}
	default: // Begin, Commit, Abort, Jump, Prepare, Discard
		return inst.Instruction{Op: it.op, Target: get(it.target)}
	}
}
