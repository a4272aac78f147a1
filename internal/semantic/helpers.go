package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

func isBooleanType(t types.Type) bool {
	return types.Equal(t, types.BooleanType)
}

func isComplexType(t types.Type) bool {
	return types.Equal(t, types.ComplexType)
}

func isPointerType(t types.Type) bool {
	_, ok := t.(*types.PointerType)
	return ok
}

func isSetType(t types.Type) (*types.SetType, bool) {
	s, ok := t.(*types.SetType)
	return s, ok
}

func isRangeType(t types.Type) (*types.RangeType, bool) {
	r, ok := t.(*types.RangeType)
	return r, ok
}

func isNilLit(e ast.Expression) bool {
	_, ok := e.(*ast.NilLit)
	return ok
}

func isIntegerLit(e ast.Expression) (*ast.IntegerLit, bool) {
	lit, ok := e.(*ast.IntegerLit)
	return lit, ok
}

func isStringLit(e ast.Expression) (*ast.StringLit, bool) {
	lit, ok := e.(*ast.StringLit)
	return lit, ok
}

// cast wraps e in a TypeCast targeting to, unless e already has that type.
func cast(e ast.Expression, to types.Type) ast.Expression {
	if types.Equal(e.Type(), to) {
		return e
	}
	return ast.NewTypeCast(e, to)
}

// isAddressable reports whether e is a node the call-site / Read-statement
// rules consider a writable location: a bare unprotected Variable, or an
// Array/DynArray index chain rooted in one. Closures count too,
// since by-ref function-pointer parameters accept them (spec.md §4.5
// "Calls").
func isAddressable(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Variable:
		return !n.Protected
	case *ast.ArrayIndex:
		return isAddressable(n.Array)
	case *ast.DynArrayIndex:
		return isAddressable(n.Array)
	case *ast.Closure:
		return true
	default:
		return false
	}
}

// variableIn returns the *Variable node in e's access chain, or nil if e
// is not an addressable chain rooted in one (spec.md §4.5 "Assignments":
// "Target must contain a Variable node in its access chain").
func variableIn(e ast.Expression) *ast.Variable {
	switch n := e.(type) {
	case *ast.Variable:
		return n
	case *ast.ArrayIndex:
		return variableIn(n.Array)
	case *ast.DynArrayIndex:
		return variableIn(n.Array)
	default:
		return nil
	}
}
