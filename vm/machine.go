// Package vm executes a compiled inst.Program against full-Unicode
// input: pc, the saved-cursor stack, the call-frame stack, the
// partial-node stack, and the furthest-failure expectation set.
package vm

import (
	"sort"

	"github.com/eb08a167/ufpeg/inst"
	"github.com/eb08a167/ufpeg/node"
)

// Machine wraps an immutable Program. It holds no mutable state itself —
// all run state lives in the Execution that each Run call creates — so
// one Machine may drive any number of concurrent Run calls against the
// same compiled program.
type Machine struct {
	Program inst.Program
}

// New wraps program for execution.
func New(program inst.Program) *Machine {
	return &Machine{Program: program}
}

// Result is the outcome of one Run: either a matched parse tree plus
// diagnostic metadata, or a failure with no tree.
type Result struct {
	Matched      bool
	Root         node.Node
	Expectations []string
	Offset       int
}

// Run executes the program against text to completion and reports the
// outcome. The returned error is non-nil only for a *RuntimeError (a
// malformed program); an ordinary parse failure is reported via
// Result.Matched == false, never as an error.
func (m *Machine) Run(text []rune) (Result, error) {
	x := NewExecution(m.Program, text)
	if err := x.Run(); err != nil {
		return Result{}, err
	}
	return x.Result(), nil
}

// Result snapshots the outcome of a halted Execution. Calling it before
// State leaves Running returns a meaningless zero-ish value; callers
// drive Run or Step to completion first.
func (x *Execution) Result() Result {
	expectations := make([]string, 0, len(x.Expectations))
	for name := range x.Expectations {
		expectations = append(expectations, name)
	}
	sort.Strings(expectations)

	if x.State != MatchedState {
		return Result{Matched: false, Expectations: expectations, Offset: x.Offset}
	}

	root := x.Nodes[0]
	var matched node.Node
	if len(root.Children) > 0 {
		matched = root.Children[0]
	}
	return Result{Matched: true, Root: matched, Expectations: expectations, Offset: x.Offset}
}
