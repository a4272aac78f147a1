package ast

import (
	"strings"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

// RangeExpr is a `Low..High` range expression, used both as an array
// index bound and as a set-member range.
type RangeExpr struct {
	typedNode
	Token lexer.Token
	Low   Expression
	High  Expression
}

func (n *RangeExpr) expressionNode()      {}
func (n *RangeExpr) TokenLiteral() string { return n.Token.Literal }
func (n *RangeExpr) Pos() lexer.Position  { return n.Token.Pos }
func (n *RangeExpr) String() string       { return n.Low.String() + ".." + n.High.String() }

// SetExpr is a set literal `[a, b, x..y]`. An empty Elements list denotes
// the empty-set literal `[]`, which has no resolved type until the
// analyser adopts one from context (spec.md §4.5 "Set expressions").
type SetExpr struct {
	typedNode
	Token    lexer.Token
	Elements []Expression
}

func (n *SetExpr) expressionNode()      {}
func (n *SetExpr) TokenLiteral() string { return n.Token.Literal }
func (n *SetExpr) Pos() lexer.Position  { return n.Token.Pos }
func (n *SetExpr) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ArrayIndex indexes into a fixed-range array: Array[Index]. The analyser
// wraps Index in a RangeCheck or RangeReduce node once it has verified
// Index is integral (spec.md §4.5 "Array and DynArray indexing").
type ArrayIndex struct {
	typedNode
	Token lexer.Token
	Array Expression
	Index Expression
}

func (n *ArrayIndex) expressionNode()      {}
func (n *ArrayIndex) TokenLiteral() string { return n.Token.Literal }
func (n *ArrayIndex) Pos() lexer.Position  { return n.Token.Pos }
func (n *ArrayIndex) String() string       { return n.Array.String() + "[" + n.Index.String() + "]" }

// DynArrayIndex indexes into a dynamic-range array. Unlike ArrayIndex, the
// analyser only checks that the index is integral, never inserting a
// RangeCheck/RangeReduce (the bound is not known until runtime).
type DynArrayIndex struct {
	typedNode
	Token lexer.Token
	Array Expression
	Index Expression
}

func (n *DynArrayIndex) expressionNode()      {}
func (n *DynArrayIndex) TokenLiteral() string { return n.Token.Literal }
func (n *DynArrayIndex) Pos() lexer.Position  { return n.Token.Pos }
func (n *DynArrayIndex) String() string {
	return n.Array.String() + "[" + n.Index.String() + "]"
}

// InitArrayEntry is one (Indexes, Value) pair of an InitArray, or the
// catch-all `otherwise` clause when Indexes is empty and Otherwise is
// true.
type InitArrayEntry struct {
	Indexes   []Expression
	Value     Expression
	Otherwise bool
}

// InitArray is an array initializer: a set of explicit index/value pairs
// plus at most one `otherwise` default (spec.md §4.5 "Array
// initializers").
type InitArray struct {
	typedNode
	Token   lexer.Token
	Entries []InitArrayEntry
}

func (n *InitArray) expressionNode()      {}
func (n *InitArray) TokenLiteral() string { return n.Token.Literal }
func (n *InitArray) Pos() lexer.Position  { return n.Token.Pos }
func (n *InitArray) String() string {
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		if e.Otherwise {
			parts[i] = "otherwise: " + e.Value.String()
			continue
		}
		idx := make([]string, len(e.Indexes))
		for j, ix := range e.Indexes {
			idx[j] = ix.String()
		}
		parts[i] = strings.Join(idx, ", ") + ": " + e.Value.String()
	}
	return "(" + strings.Join(parts, "; ") + ")"
}
