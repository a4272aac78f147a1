package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeArrayIndex implements spec.md §4.5 "Array and DynArray indexing"
// for a fixed-range array.
func (a *Analyzer) analyzeArrayIndex(n *ast.ArrayIndex) ast.Expression {
	n.Array = a.analyzeExpr(n.Array)
	n.Index = a.analyzeExpr(n.Index)

	arr, ok := n.Array.Type().(*types.ArrayType)
	if !ok {
		a.addError(n.Pos(), "Indexed value is not an array")
		n.SetType(types.VoidType)
		return n
	}
	n.SetType(arr.Elem)

	if _, isRange := n.Index.Type().(*types.RangeType); isRange {
		a.addError(n.Pos(), "Array index may not itself be a range")
	}
	if !types.IsIntegral(n.Index.Type()) {
		a.addError(n.Pos(), "Array index must be an integral value")
		return n
	}

	switch n.Index.(type) {
	case *ast.RangeCheck, *ast.RangeReduce:
		return n
	}

	idxRange := arr.Indexes[0]
	if a.cfg.RangeCheck {
		n.Index = ast.NewRangeCheck(n.Index, idxRange)
	} else {
		n.Index = ast.NewRangeReduce(n.Index, idxRange)
	}
	return n
}

// analyzeDynArrayIndex implements spec.md §4.5 for a dynamic-range array:
// only the element type is checked, never a RangeCheck/RangeReduce (the
// bound is not known until runtime).
func (a *Analyzer) analyzeDynArrayIndex(n *ast.DynArrayIndex) ast.Expression {
	n.Array = a.analyzeExpr(n.Array)
	n.Index = a.analyzeExpr(n.Index)

	arr, ok := n.Array.Type().(*types.DynArrayType)
	if !ok {
		a.addError(n.Pos(), "Indexed value is not a dynamic array")
		n.SetType(types.VoidType)
		return n
	}
	n.SetType(arr.Elem)

	if !types.IsIntegral(n.Index.Type()) {
		a.addError(n.Pos(), "Array index must be an integral value")
	}
	if _, isRange := n.Index.Type().(*types.RangeType); isRange {
		a.addError(n.Pos(), "Array index may not itself be a range")
	}
	return n
}

// analyzeUnary type-checks a unary prefix expression. The closed operator
// set is "-" (numeric negation), "not" (boolean/bitwise complement), and
// "@" (address-of, used only to mark a variable addressable for a
// function-pointer argument).
func (a *Analyzer) analyzeUnary(n *ast.Unary) ast.Expression {
	n.Operand = a.analyzeExpr(n.Operand)
	t := n.Operand.Type()

	switch n.Op {
	case "-":
		if !types.IsNumeric(t) {
			a.addError(n.Pos(), "Invalid operand for unary -")
		}
		n.SetType(t)
	case "not":
		if isBooleanType(t) {
			n.SetType(types.BooleanType)
		} else if types.IsIntegral(t) {
			n.SetType(t)
		} else {
			a.addError(n.Pos(), "Invalid operand for 'not'")
			n.SetType(t)
		}
	case "@":
		n.SetType(types.NewPointer(t))
	default:
		a.ice(n.Pos(), "analyzeUnary: unknown operator %q", n.Op)
	}
	return n
}

// analyzeRangeExpr type-checks a `Low..High` literal range. Both bounds
// must be integral and of the same base kind; the node's type is a fresh
// RangeType over that base.
func (a *Analyzer) analyzeRangeExpr(n *ast.RangeExpr) ast.Expression {
	n.Low = a.analyzeExpr(n.Low)
	n.High = a.analyzeExpr(n.High)

	if !types.IsIntegral(n.Low.Type()) || !types.IsIntegral(n.High.Type()) {
		a.addError(n.Pos(), "Range bounds must be integral")
		n.SetType(types.VoidType)
		return n
	}

	lowLit, lowOK := isIntegerLit(n.Low)
	highLit, highOK := isIntegerLit(n.High)
	if lowOK && highOK {
		if highLit.Value <= lowLit.Value {
			a.addError(n.Pos(), "Range upper bound must be greater than its lower bound")
			n.SetType(n.Low.Type())
			return n
		}
		n.SetType(types.NewRange(int(lowLit.Value), int(highLit.Value), n.Low.Type()))
		return n
	}
	n.SetType(n.Low.Type())
	return n
}
