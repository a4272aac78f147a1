package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeCase implements spec.md §4.5 "Case": the selector must be
// integral and every branch's label set must be pairwise disjoint after
// enumerating ranges.
func (a *Analyzer) analyzeCase(n *ast.CaseStmt) ast.Statement {
	n.Selector = a.analyzeExpr(n.Selector)
	if !types.IsIntegral(n.Selector.Type()) {
		a.addError(n.Selector.Pos(), "Case selector must be an integral value")
	}

	seen := make(map[string]bool)
	for bi := range n.Branches {
		branch := &n.Branches[bi]
		for vi, val := range branch.Values {
			branch.Values[vi] = a.analyzeExpr(val)
			for _, key := range enumerateIndexKeys(branch.Values[vi]) {
				if seen[key] {
					a.addError(n.Pos(), "Duplicate case label %s", key)
				}
				seen[key] = true
			}
		}
		branch.Body = a.analyzeStmt(branch.Body)
	}

	if n.Otherwise != nil {
		n.Otherwise = a.analyzeStmt(n.Otherwise)
	}
	return n
}
