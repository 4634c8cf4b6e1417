package compiler

import (
	"github.com/eb08a167/ufpeg/ref"
)

// Context holds compiler state for one Compile call: the reference arena
// and the rule-name -> Ref map that lets a RuleReference compiled before
// its matching RuleDefinition still resolve correctly once that
// definition is lowered. Grounded on
// original_source/ufpeg/booster/compilercontext.hpp's
// `map<u32string, shared_ptr<Reference>> references`.
type Context struct {
	arena      ref.Arena
	references map[string]ref.Ref
}

func newContext() *Context {
	return &Context{references: make(map[string]ref.Ref)}
}

// ruleRef returns the Ref registered for name, allocating one lazily if
// this is the first mention (by either a RuleReference or a
// RuleDefinition).
func (c *Context) ruleRef(name string) ref.Ref {
	if r, ok := c.references[name]; ok {
		return r
	}
	r := c.arena.New()
	c.references[name] = r
	return r
}

// bindRuleRef registers want as name's Ref if name has not been mentioned
// yet, otherwise it leaves the existing Ref in place (the one already
// handed out to an earlier forward RuleReference). Used only to let
// Grammar's first rule line up with the Ref the top-level Compile call
// allocated for Program's entry point; see compiler.go.
func (c *Context) bindRuleRef(name string, want ref.Ref) ref.Ref {
	if r, ok := c.references[name]; ok {
		return r
	}
	c.references[name] = want
	return want
}
