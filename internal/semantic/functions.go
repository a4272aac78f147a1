package semantic

import (
	"sort"

	"github.com/cwbudde/go-pascal-sema/internal/ast"
)

// analyzeFunctionDecl type-checks a function/procedure body in its own
// scope, seeding parameter bindings, then computes FreeVars for nested
// functions from the names touched during the body walk (spec.md §4.5
// "Calls" trampoline synthesis; GLOSSARY "Closure").
func (a *Analyzer) analyzeFunctionDecl(n *ast.FunctionDecl) {
	a.funcStack = append(a.funcStack, n)
	defer func() { a.funcStack = a.funcStack[:len(a.funcStack)-1] }()

	guard := a.stack.NewGuard()
	defer guard.Close()

	for i := range n.Params {
		p := &n.Params[i]
		v := &ast.Variable{Name: p.Name}
		v.SetType(p.Type)
		a.stack.Add(p.Name, varBinding{v})
	}

	if n.Body != nil {
		n.Body = a.analyzeStmt(n.Body).(*ast.BlockStatement)
	}

	if n.Nested {
		n.FreeVars = a.computeFreeVars(n)
	}
}

// computeFreeVars returns the names touched in fn's body that are not its
// own parameters: the closure capture set a Trampoline needs.
func (a *Analyzer) computeFreeVars(fn *ast.FunctionDecl) []string {
	touched := a.touched[fn]
	if len(touched) == 0 {
		return nil
	}
	params := make(map[string]bool, len(fn.Params))
	for _, p := range fn.Params {
		params[p.Name] = true
	}
	var free []string
	for name := range touched {
		if !params[name] && name != fn.Name {
			free = append(free, name)
		}
	}
	sort.Strings(free)
	return free
}
