package vm

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Step when called again after the Execution has
// already reached a halt sentinel.
var ErrHalted = errors.New("github.com/eb08a167/ufpeg/vm: execution already halted")

// RuntimeError marks a program that violates an invariant this VM relies
// on — a pc outside the program, or an opcode this build of the VM does
// not recognize. It should never occur for a program produced by package
// compiler; seeing one means either a hand-built Program is malformed or
// this VM has a bug.
type RuntimeError struct {
	PC  int
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("github.com/eb08a167/ufpeg/vm: runtime error @ pc %d: %v", e.PC, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
