package ast

// Arena owns every node allocated during a single compilation unit's
// parse/analysis pass. Go's garbage collector makes arena-freeing
// unnecessary; Arena exists only to give every node a single allocation
// site and a stable slice a caller can range over (e.g. for diagnostics
// that want to walk nodes in allocation order).
type Arena struct {
	nodes []Node
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates a zero-valued T, records it in the arena, and returns a
// pointer to it. Callers fill in fields on the returned pointer.
func New[T any](a *Arena) *T {
	v := new(T)
	if n, ok := any(v).(Node); ok {
		a.nodes = append(a.nodes, n)
	}
	return v
}

// Nodes returns every node allocated through this arena, in allocation
// order.
func (a *Arena) Nodes() []Node {
	return a.nodes
}

// Len reports how many nodes this arena has allocated.
func (a *Arena) Len() int {
	return len(a.nodes)
}
