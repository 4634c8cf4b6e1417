// Package ref implements the forward-declarable program offsets used to
// thread entry, success, and failure continuations through a compiled PEG
// program.
//
// A Ref is a stable index into an Arena, not a pointer: this sidesteps
// reference-counted sharing without introducing cycles, since the arena
// owns every cell and a Ref is just an int.
package ref

import "fmt"

// Ref is an indirection to an eventually-assigned, non-negative program
// offset. There is no sentinel "unset" Ref value (Arena.New's first
// allocation is Ref(0), indistinguishable from the Go zero value); a Ref
// only means something once it has come out of Arena.New.
type Ref int

// Arena owns a set of Refs and their resolution state. The zero Arena is
// ready to use.
type Arena struct {
	offsets  []int
	resolved []bool
}

// New allocates a fresh, unresolved Ref.
func (a *Arena) New() Ref {
	a.offsets = append(a.offsets, -1)
	a.resolved = append(a.resolved, false)
	return Ref(len(a.offsets) - 1)
}

// Resolve assigns offset to ref. Resolving the same Ref twice is a
// compiler bug and panics rather than silently overwriting the offset.
func (a *Arena) Resolve(r Ref, offset int) {
	i := int(r)
	if a.resolved[i] {
		panic(fmt.Sprintf("ref: Ref %d resolved twice (already %d, now %d)", i, a.offsets[i], offset))
	}
	a.offsets[i] = offset
	a.resolved[i] = true
}

// Get returns the resolved offset for ref. Reading an unresolved Ref is a
// compiler bug and panics rather than returning a meaningless offset.
func (a *Arena) Get(r Ref) int {
	i := int(r)
	if !a.resolved[i] {
		panic(fmt.Sprintf("ref: Ref %d read before resolution", i))
	}
	return a.offsets[i]
}

// Resolved reports whether ref has been resolved.
func (a *Arena) Resolved(r Ref) bool {
	return a.resolved[int(r)]
}

// Len returns the number of Refs allocated from the arena.
func (a *Arena) Len() int {
	return len(a.offsets)
}
