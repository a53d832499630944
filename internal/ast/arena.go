package ast

// Arena owns every Node allocated for a single build. Nodes are never freed
// individually; the whole arena is dropped at once when the build context
// goes out of scope (spec §3.1 "Ownership").
type Arena struct {
	nodes []*Node
}

// NewArena creates an empty arena with a capacity hint.
func NewArena(capHint int) *Arena {
	if capHint <= 0 {
		capHint = 64
	}
	return &Arena{nodes: make([]*Node, 0, capHint)}
}

// New allocates a zero-value Node of the given kind and records it in the
// arena so it is reachable for diagnostics/debugging even if no other part
// of the tree references it yet.
func (a *Arena) New(kind Kind) *Node {
	n := &Node{Kind: kind}
	a.nodes = append(a.nodes, n)
	return n
}

// Len reports how many nodes the arena has allocated.
func (a *Arena) Len() int { return len(a.nodes) }

// All returns a copy of the list of every node the arena has allocated, in
// allocation order; changing the returned slice does not affect the arena.
func (a *Arena) All() []*Node {
	out := make([]*Node, len(a.nodes))
	copy(out, a.nodes)
	return out
}
