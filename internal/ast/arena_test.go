package ast

import "testing"

func TestArenaNewTracksNodes(t *testing.T) {
	a := NewArena()
	v := New[Variable](a)
	v.Name = "x"

	b := New[Binary](a)
	b.Op = "+"

	if a.Len() != 2 {
		t.Fatalf("expected 2 nodes tracked, got %d", a.Len())
	}
	nodes := a.Nodes()
	if nodes[0] != Node(v) || nodes[1] != Node(b) {
		t.Error("Nodes() should return allocations in allocation order")
	}
}
