package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeSetExpr implements spec.md §4.5 "Set expressions". If the
// resulting set lacks a range, a provisional one is computed from the
// element type and a SetRangeFixup is queued to apply it once the rest of
// the traversal (which may still widen the range via BinarySetUpdate) has
// finished.
func (a *Analyzer) analyzeSetExpr(n *ast.SetExpr) ast.Expression {
	var elemType types.Type
	rewritten := make([]ast.Expression, len(n.Elements))
	for i, elem := range n.Elements {
		rewritten[i] = a.analyzeExpr(elem)
		if elemType == nil {
			elemType = rewritten[i].Type()
		} else if !types.Equal(elemType, rewritten[i].Type()) {
			a.addError(elem.Pos(), "Incompatible set element types")
		}
	}
	n.Elements = rewritten

	set := &types.SetType{}
	n.SetType(set)

	if elemType == nil {
		return n
	}
	set.Elem = elemType

	a.fixups = append(a.fixups, func() {
		if set.Range != nil {
			return
		}
		set.Range = a.getRangeDecl(elemType, n)
	})
	return n
}

// getRangeDecl derives a provisional index range from a set's element
// type, applying MaxSetSize truncation (spec.md §4.5, §9 "Deferred
// set-range fixup").
func (a *Analyzer) getRangeDecl(elem types.Type, pos ast.Node) *types.RangeType {
	switch t := elem.(type) {
	case *types.EnumType:
		last := len(t.Members) - 1
		if last < 1 {
			last = 1
		}
		return types.TruncateRange(types.NewRange(0, last, t), a.cfg.MaxSetSize)
	case *types.RangeType:
		return types.TruncateRange(t, a.cfg.MaxSetSize)
	default:
		return types.TruncateRange(types.NewRange(0, types.DefaultMaxSetSize-1, types.IntegerType), a.cfg.MaxSetSize)
	}
}
