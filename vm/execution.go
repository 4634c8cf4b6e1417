package vm

import (
	"fmt"

	"github.com/eb08a167/ufpeg/inst"
	"github.com/eb08a167/ufpeg/node"
)

// State is the run state of an Execution.
type State uint8

const (
	Running State = iota
	MatchedState
	FailedState
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case MatchedState:
		return "MatchedState"
	case FailedState:
		return "FailedState"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Frame is a call continuation pushed by Invoke and popped by
// RevokeSuccess/RevokeFailure.
type Frame struct {
	Success, Failure int
}

// Execution is the context of one match-in-progress: pc plus the three
// backtracking stacks and the failure-diagnostic state. Its fields are
// exported, and Step is exported, so a host can drive the loop itself to
// enforce a step budget or deadline instead of calling Run.
type Execution struct {
	Program inst.Program
	Text    []rune

	PC int

	Cursors []int
	Frames  []Frame
	Nodes   []node.Node

	Expectations map[string]struct{}
	Offset       int

	State State
}

// NewExecution initializes a fresh Execution over program and text:
// pc=0, cursors=[0], a sentinel frame whose success/failure are the VM's
// halt pcs, a single implicit root node, and empty expectations.
func NewExecution(program inst.Program, text []rune) *Execution {
	return &Execution{
		Program:      program,
		Text:         text,
		PC:           0,
		Cursors:      []int{0},
		Frames:       []Frame{{Success: inst.HaltSuccess, Failure: inst.HaltFailure}},
		Nodes:        []node.Node{{}},
		Expectations: make(map[string]struct{}),
		Offset:       0,
		State:        Running,
	}
}

func (x *Execution) cursor() int {
	return x.Cursors[len(x.Cursors)-1]
}

func (x *Execution) setCursor(c int) {
	x.Cursors[len(x.Cursors)-1] = c
}

// popFrame pops the top call frame. The outermost (sentinel) frame is
// read but never popped, so the first rule's own RevokeSuccess/
// RevokeFailure still reaches a halt pc and Frames is back at depth 1 at
// halt.
func (x *Execution) popFrame() Frame {
	i := len(x.Frames) - 1
	fr := x.Frames[i]
	if i > 0 {
		x.Frames = x.Frames[:i]
	}
	return fr
}

func (x *Execution) popNode() node.Node {
	i := len(x.Nodes) - 1
	n := x.Nodes[i]
	x.Nodes = x.Nodes[:i]
	return n
}

// Step executes exactly one instruction, per the opcode table of
// inst/doc.go; when pc is a halt sentinel it instead moves State to
// MatchedState or FailedState. It returns ErrHalted if the Execution already reached a
// halt sentinel, or a *RuntimeError if the program violates an invariant
// this VM depends on.
func (x *Execution) Step() error {
	if x.State != Running {
		return ErrHalted
	}

	switch x.PC {
	case inst.HaltSuccess:
		x.State = MatchedState
		return nil
	case inst.HaltFailure:
		x.State = FailedState
		return nil
	}

	if x.PC < 0 || x.PC >= len(x.Program) {
		return &RuntimeError{PC: x.PC, Err: fmt.Errorf("pc out of program bounds [0,%d)", len(x.Program))}
	}

	in := x.Program[x.PC]
	switch in.Op {
	case inst.MatchLiteral:
		cur := x.cursor()
		n := len(in.Text)
		if cur+n <= len(x.Text) && runesEqual(x.Text[cur:cur+n], in.Text) {
			x.setCursor(cur + n)
			x.PC = in.Success
		} else {
			x.PC = in.Failure
		}

	case inst.MatchRange:
		cur := x.cursor()
		if cur < len(x.Text) && in.Min <= x.Text[cur] && x.Text[cur] <= in.Max {
			x.setCursor(cur + 1)
			x.PC = in.Success
		} else {
			x.PC = in.Failure
		}

	case inst.Begin:
		x.Cursors = append(x.Cursors, x.cursor())
		x.PC = in.Target

	case inst.Commit:
		c := x.cursor()
		x.Cursors = x.Cursors[:len(x.Cursors)-1]
		x.setCursor(c)
		x.PC = in.Target

	case inst.Abort:
		x.Cursors = x.Cursors[:len(x.Cursors)-1]
		x.PC = in.Target

	case inst.Jump:
		x.PC = in.Target

	case inst.Invoke:
		x.Frames = append(x.Frames, Frame{Success: in.Success, Failure: in.Failure})
		x.PC = in.Target

	case inst.RevokeSuccess:
		fr := x.popFrame()
		x.PC = fr.Success

	case inst.RevokeFailure:
		fr := x.popFrame()
		x.PC = fr.Failure

	case inst.Prepare:
		x.Nodes = append(x.Nodes, node.Node{Start: x.cursor()})
		x.PC = in.Target

	case inst.Consume:
		child := x.popNode()
		child.Name = in.Name
		child.Stop = x.cursor()
		parent := &x.Nodes[len(x.Nodes)-1]
		parent.Children = append(parent.Children, child)
		x.PC = in.Target

	case inst.Discard:
		x.popNode()
		x.PC = in.Target

	case inst.Expect:
		cur := x.cursor()
		if cur > x.Offset {
			x.Expectations = make(map[string]struct{})
			x.Offset = cur
		}
		if cur == x.Offset {
			x.Expectations[in.Name] = struct{}{}
		}
		x.PC = in.Target

	default:
		return &RuntimeError{PC: x.PC, Err: fmt.Errorf("unknown opcode %v", in.Op)}
	}
	return nil
}

// Run drives Step in a loop until the Execution halts.
func (x *Execution) Run() error {
	for x.State == Running {
		if err := x.Step(); err != nil {
			return err
		}
	}
	return nil
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
