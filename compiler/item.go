package compiler

import (
	"github.com/eb08a167/ufpeg/inst"
	"github.com/eb08a167/ufpeg/ref"
)

// item is one not-yet-resolved instruction: an inst.Instruction whose
// offsets are still ref.Refs rather than resolved ints. The compiler
// accumulates a []item while lowering an Expression tree and converts it
// to an inst.Program in a single final resolution pass (see compiler.go).
//
// This is the staging type package inst's doc comment refers to
// ("the ref.Ref bookkeeping ... is the compiler package's concern").
type item struct {
	entry ref.Ref
	op    inst.Opcode

	text []rune
	min  rune
	max  rune
	name string

	target  ref.Ref
	success ref.Ref
	failure ref.Ref
}
