package ast

import (
	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// TypeCast is an explicit widening/promotion the analyser inserts when two
// operand types need aligning or a value needs coercing to an assignment
// target (spec.md §4.3 "Rewrite nodes").
type TypeCast struct {
	typedNode
	Expr Expression
}

func NewTypeCast(expr Expression, to types.Type) *TypeCast {
	n := &TypeCast{Expr: expr}
	n.SetType(to)
	return n
}

func (n *TypeCast) expressionNode()      {}
func (n *TypeCast) TokenLiteral() string { return n.Expr.TokenLiteral() }
func (n *TypeCast) Pos() lexer.Position  { return n.Expr.Pos() }
func (n *TypeCast) String() string       { return "cast<" + n.Type().String() + ">(" + n.Expr.String() + ")" }

// RangeCheck wraps an index expression with a runtime bounds check against
// Range, used when the analyser's configuration enables range checking
// (spec.md §4.3, §4.5).
type RangeCheck struct {
	typedNode
	Expr  Expression
	Range *types.RangeType
}

func NewRangeCheck(expr Expression, rng *types.RangeType) *RangeCheck {
	n := &RangeCheck{Expr: expr, Range: rng}
	n.SetType(expr.Type())
	return n
}

func (n *RangeCheck) expressionNode()      {}
func (n *RangeCheck) TokenLiteral() string { return n.Expr.TokenLiteral() }
func (n *RangeCheck) Pos() lexer.Position  { return n.Expr.Pos() }
func (n *RangeCheck) String() string {
	return "rangecheck<" + n.Range.String() + ">(" + n.Expr.String() + ")"
}

// RangeReduce unconditionally offsets an index expression to a 0-based
// array slot without a runtime check (spec.md §4.3, §4.5).
type RangeReduce struct {
	typedNode
	Expr  Expression
	Range *types.RangeType
}

func NewRangeReduce(expr Expression, rng *types.RangeType) *RangeReduce {
	n := &RangeReduce{Expr: expr, Range: rng}
	n.SetType(expr.Type())
	return n
}

func (n *RangeReduce) expressionNode()      {}
func (n *RangeReduce) TokenLiteral() string { return n.Expr.TokenLiteral() }
func (n *RangeReduce) Pos() lexer.Position  { return n.Expr.Pos() }
func (n *RangeReduce) String() string {
	return "rangereduce<" + n.Range.String() + ">(" + n.Expr.String() + ")"
}
