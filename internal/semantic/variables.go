package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeVariable resolves n against the symbol stack and attaches its
// bound type. An unresolved name is reported once and left Void-typed so
// traversal can continue without cascading nil-type panics.
func (a *Analyzer) analyzeVariable(n *ast.Variable) ast.Expression {
	a.markTouched(n.Name)

	binding, ok := a.stack.Find(n.Name)
	if !ok {
		a.addError(n.Pos(), "Undefined variable '%s'", n.Name)
		n.SetType(types.VoidType)
		return n
	}

	switch b := binding.(type) {
	case varBinding:
		if n.Type() == nil {
			n.SetType(b.v.Type())
		}
		if b.v.Protected {
			n.Protected = true
		}
	case funcBinding:
		n.SetType(b.decl.Signature())
	}
	return n
}

// declare binds name to typ in the innermost scope, reporting a
// redeclaration error instead of silently shadowing within the same level.
func (a *Analyzer) declare(pos ast.Node, name string, v *ast.Variable) {
	if !a.stack.Add(name, varBinding{v}) {
		a.addError(pos.Pos(), "'%s' is already declared in this scope", name)
	}
}

// DeclareVariable seeds the analyser's global scope with a variable
// binding. The parser populates the symbol stack with declared names as
// it builds the AST (spec.md §6 "Upstream"); this is that entry point for
// callers that construct the program in memory rather than parsing it.
// It returns false if name is already bound at the global level.
func (a *Analyzer) DeclareVariable(v *ast.Variable) bool {
	return a.stack.Add(v.Name, varBinding{v})
}

// DeclareFunction seeds the analyser's global scope with a function
// binding, the counterpart to DeclareVariable for top-level procedures
// and functions.
func (a *Analyzer) DeclareFunction(decl *ast.FunctionDecl) bool {
	return a.stack.Add(decl.Name, funcBinding{decl})
}
