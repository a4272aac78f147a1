package semantic

import (
	"fmt"

	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeInitArray implements spec.md §4.5 "Array initializers": every
// literal/range-derived index must be unique across entries, and at most
// one `otherwise` clause may appear.
func (a *Analyzer) analyzeInitArray(n *ast.InitArray) ast.Expression {
	seen := make(map[string]bool)
	otherwiseSeen := false
	var elemType types.Type

	for i := range n.Entries {
		entry := &n.Entries[i]
		entry.Value = a.analyzeExpr(entry.Value)
		if elemType == nil {
			elemType = entry.Value.Type()
		}

		if entry.Otherwise {
			if otherwiseSeen {
				a.addError(n.Pos(), "Multiple 'otherwise' clauses in array initializer")
			}
			otherwiseSeen = true
			continue
		}

		for j, idx := range entry.Indexes {
			entry.Indexes[j] = a.analyzeExpr(idx)
			for _, key := range enumerateIndexKeys(entry.Indexes[j]) {
				if seen[key] {
					a.addError(n.Pos(), "Duplicate index %s in array initializer", key)
				}
				seen[key] = true
			}
		}
	}

	// The initializer carries its element type; the declared array type (if
	// any) is reconciled against it by the enclosing Assign/VarDecl rule via
	// AssignableType.
	if elemType == nil {
		elemType = types.VoidType
	}
	n.SetType(elemType)
	return n
}

// enumerateIndexKeys expands an index expression into the set of scalar
// keys it denotes: a literal denotes one key, a RangeExpr over two integer
// literals denotes every key in between.
func enumerateIndexKeys(e ast.Expression) []string {
	if lit, ok := isIntegerLit(e); ok {
		return []string{fmt.Sprintf("%d", lit.Value)}
	}
	if rng, ok := e.(*ast.RangeExpr); ok {
		low, lowOK := isIntegerLit(rng.Low)
		high, highOK := isIntegerLit(rng.High)
		if lowOK && highOK {
			keys := make([]string, 0, high.Value-low.Value+1)
			for v := low.Value; v <= high.Value; v++ {
				keys = append(keys, fmt.Sprintf("%d", v))
			}
			return keys
		}
	}
	return nil
}
