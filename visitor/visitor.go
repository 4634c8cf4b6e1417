// Package visitor implements a dispatcher keyed by node name, used
// downstream to re-interpret a parsed grammar into an expr.Expression
// tree — the same mechanism a grammar-of-grammars bootstrap would use to
// turn its own parse of a .peg file back into the Expression tree that
// drives this module.
package visitor

import (
	"fmt"

	"github.com/eb08a167/ufpeg/node"
)

// Handler produces a T from n. It is handed the owning Visitor so it can
// recurse into n's children by calling v.Visit itself — the Visitor does
// not recurse on its own, which lets a handler choose synthesized-attribute
// style (combine children's results upward) or inherited-attribute style
// (pass context downward) freely.
type Handler[T any] func(n *node.Node, v *Visitor[T]) (T, error)

// Visitor dispatches by node name to a registered Handler. A name with no
// registered handler is a lookup failure, surfaced to the caller as an
// error rather than silently skipped.
type Visitor[T any] struct {
	handlers map[string]Handler[T]
}

// New returns an empty Visitor with no handlers registered.
func New[T any]() *Visitor[T] {
	return &Visitor[T]{handlers: make(map[string]Handler[T])}
}

// AddHandler registers h for name, replacing any handler already
// registered under that name.
func (v *Visitor[T]) AddHandler(name string, h Handler[T]) {
	v.handlers[name] = h
}

// Visit dispatches n to its registered handler.
func (v *Visitor[T]) Visit(n *node.Node) (T, error) {
	h, ok := v.handlers[n.Name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("visitor: no handler registered for node name %q", n.Name)
	}
	return h(n, v)
}
