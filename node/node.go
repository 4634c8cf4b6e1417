// Package node defines the parse tree the VM produces. Grounded on
// original_source/ufpeg/booster/node.hpp's name/start/stop/children
// shape, with peggyvm.Capture as precedent for representing a finished
// input span as a small value type rather than a pointer-heavy tree.
package node

// Node is one finalized (or, inside package vm, still partial) node of
// the produced parse tree. Name is empty for the implicit root that the
// VM's nodes stack starts with. Invariant: Start <= Stop, and for any
// child c of a node p, p.Start <= c.Start <= c.Stop <= p.Stop.
type Node struct {
	Name     string
	Start    int
	Stop     int
	Children []Node
}

// Text returns the slice of input runes this node spans.
func (n Node) Text(input []rune) []rune {
	return input[n.Start:n.Stop]
}
