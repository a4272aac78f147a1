package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeAssign implements spec.md §4.5 "Assignments".
func (a *Analyzer) analyzeAssign(n *ast.Assign) ast.Expression {
	n.Target = a.analyzeExpr(n.Target)
	n.Value = a.analyzeExpr(n.Value)

	v := variableIn(n.Target)
	if v == nil {
		a.addError(n.Pos(), "Assigning to a constant")
		n.SetType(n.Target.Type())
		return n
	}
	if v.Protected {
		a.addError(n.Pos(), "Assigning to protected value")
		n.SetType(n.Target.Type())
		return n
	}

	lty, rty := n.Target.Type(), n.Value.Type()

	// set <- set: propagate missing range/element type from LHS to RHS.
	if lset, ok := isSetType(lty); ok {
		if rset, ok := isSetType(rty); ok {
			if rset.IsEmpty() {
				rset.Elem = lset.Elem
				rset.Range = lset.Range
			}
			n.SetType(lty)
			return n
		}
	}

	// pointer <- nil
	if isPointerType(lty) && isNilLit(n.Value) {
		n.Value = cast(n.Value, lty)
		n.SetType(lty)
		return n
	}

	// subrange target, integer-literal source: compile-time range check.
	if lrange, ok := isRangeType(lty); ok {
		if lit, ok := isIntegerLit(n.Value); ok {
			if lit.Value < int64(lrange.Start) || lit.Value > int64(lrange.End) {
				a.addError(n.Pos(), "Constant value %d is out of range %s", lit.Value, lrange.String())
			}
			n.SetType(lty)
			return n
		}
	}

	// dynamic-range target, integer-literal source: element-type check only.
	if larr, ok := lty.(*types.DynArrayType); ok {
		if _, ok := isIntegerLit(n.Value); ok {
			if !types.Equal(larr.Elem, types.IntegerType) {
				a.addError(n.Pos(), "Incompatible type in expression")
			}
			n.SetType(lty)
			return n
		}
	}

	// char-array target, string-literal source: length must fit, no cast.
	if larr, ok := lty.(*types.ArrayType); ok && types.Equal(larr.Elem, types.CharType) {
		if lit, ok := isStringLit(n.Value); ok {
			if len(larr.Indexes) == 1 && int64(len(lit.Value)) > int64(larr.Indexes[0].Size()) {
				a.addError(n.Pos(), "String literal too long for char array target")
			}
			n.SetType(lty)
			return n
		}
	}

	target, ok := types.Assignable(lty, rty)
	if !ok {
		a.addError(n.Pos(), "Incompatible type in expression")
		n.SetType(lty)
		return n
	}
	n.Value = cast(n.Value, target)
	n.SetType(lty)
	return n
}
