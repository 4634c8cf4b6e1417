/*
Package ufpeg is a Parsing Expression Grammar compiler and virtual
machine.

Consists of subpackages:
  - expr: the source-level Expression tree for PEG constructs;
  - compiler: lowers an Expression tree into a resolved instruction program;
  - inst: the VM's instruction set;
  - vm: executes a program against UCS-4 input;
  - node: the produced parse tree;
  - visitor: dispatches callbacks by parse-tree node name;
  - ref: the forward-declarable Reference arena the compiler resolves
    offsets through.

Typical usage is:

 1. Build an expr.Grammar (or embed one built by some other layer, such
    as a textual-PEG-source parser — that layer is outside this module's
    scope).
 2. Compile it with Compile, once, to get an inst.Program.
 3. Wrap that Program with vm.New and call the Machine's Run method
    against any number of inputs. Run in this package compiles and runs
    in one call, for a single input.
*/
package ufpeg

import (
	"github.com/eb08a167/ufpeg/compiler"
	"github.com/eb08a167/ufpeg/expr"
	"github.com/eb08a167/ufpeg/inst"
	"github.com/eb08a167/ufpeg/vm"
)

// Compile lowers root into an executable Program. See package compiler
// for the full contract and error kinds.
func Compile(root expr.Expression) (inst.Program, error) {
	return compiler.Compile(root)
}

// Run compiles root and executes it against text in one call. Callers
// that will run the same grammar against many inputs should call Compile
// once, wrap the resulting Program with vm.New, and reuse that
// vm.Machine instead.
func Run(root expr.Expression, text []rune) (vm.Result, error) {
	program, err := Compile(root)
	if err != nil {
		return vm.Result{}, err
	}
	return vm.New(program).Run(text)
}
