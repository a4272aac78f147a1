package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeFor implements spec.md §4.5 "For loops": the iteration variable
// must be integral. The counted form casts both bounds to the iterator's
// type; the iterator form requires a set or single-dimensional array whose
// element type is compatible with the loop variable.
func (a *Analyzer) analyzeFor(n *ast.ForStmt) ast.Statement {
	guard := a.stack.NewGuard()
	defer guard.Close()

	variable := a.analyzeExpr(n.Variable).(*ast.Variable)
	n.Variable = variable

	if !types.IsIntegral(variable.Type()) {
		a.addError(n.Pos(), "For-loop variable must be an integral value")
	}

	if n.Collection != nil {
		n.Collection = a.analyzeExpr(n.Collection)
		elemType := iterableElementType(n.Collection.Type())
		if elemType == nil {
			a.addError(n.Collection.Pos(), "For-in requires a set or single-dimensional array")
		} else if _, ok := types.Compatible(variable.Type(), elemType); !ok {
			a.addError(n.Collection.Pos(), "Incompatible type in expression")
		}
	} else {
		n.Start = a.analyzeExpr(n.Start)
		n.End = a.analyzeExpr(n.End)
		if target, ok := types.Assignable(variable.Type(), n.Start.Type()); ok {
			n.Start = cast(n.Start, target)
		} else {
			a.addError(n.Start.Pos(), "Incompatible type in expression")
		}
		if target, ok := types.Assignable(variable.Type(), n.End.Type()); ok {
			n.End = cast(n.End, target)
		} else {
			a.addError(n.End.Pos(), "Incompatible type in expression")
		}
	}

	n.Body = a.analyzeStmt(n.Body)
	return n
}

// iterableElementType returns the element type of a for-in collection: a
// set's element type, or a single-dimensional array's element type.
func iterableElementType(t types.Type) types.Type {
	switch v := t.(type) {
	case *types.SetType:
		return v.Elem
	case *types.ArrayType:
		if len(v.Indexes) == 1 {
			return v.Elem
		}
	case *types.DynArrayType:
		return v.Elem
	}
	return nil
}
