package ast

import (
	"strings"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// Param is one formal parameter of a FunctionDecl.
type Param struct {
	Name  string
	Type  types.Type
	ByRef bool
}

// FunctionDecl declares a function or procedure. Nested (non-top-level)
// functions may close over variables from an enclosing scope; FreeVars is
// populated by the analyser once it knows which enclosing names the body
// actually reads or writes (spec.md §4.5 "Calls" - trampoline synthesis).
type FunctionDecl struct {
	typedNode
	Token      lexer.Token
	Name       string
	Params     []Param
	ReturnType types.Type
	Body       *BlockStatement
	FreeVars   []string
	Nested     bool
}

func (n *FunctionDecl) expressionNode()      {}
func (n *FunctionDecl) statementNode()       {}
func (n *FunctionDecl) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionDecl) Pos() lexer.Position  { return n.Token.Pos }
func (n *FunctionDecl) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		prefix := ""
		if p.ByRef {
			prefix = "var "
		}
		parts[i] = prefix + p.Name + ": " + p.Type.String()
	}
	sig := "function " + n.Name + "(" + strings.Join(parts, ", ") + ")"
	if n.ReturnType != nil && n.ReturnType.Kind() != types.Void {
		sig += ": " + n.ReturnType.String()
	}
	return sig
}

// Signature returns the FuncPtrType this declaration's prototype
// corresponds to.
func (n *FunctionDecl) Signature() *types.FuncPtrType {
	params := make([]types.Param, len(n.Params))
	for i, p := range n.Params {
		params[i] = types.Param{Type: p.Type, ByRef: p.ByRef}
	}
	ret := n.ReturnType
	if ret == nil {
		ret = types.VoidType
	}
	return types.NewFuncPtr(ret, params...)
}

// Closure is a record of captured free variables materialized for a
// nested function passed as a function-pointer value (spec.md §3.3, §4.5,
// GLOSSARY "Closure").
type Closure struct {
	typedNode
	Token    lexer.Token
	Callee   *FunctionDecl
	Captures []*Variable
}

func (n *Closure) expressionNode()      {}
func (n *Closure) TokenLiteral() string { return n.Token.Literal }
func (n *Closure) Pos() lexer.Position  { return n.Token.Pos }
func (n *Closure) String() string {
	names := make([]string, len(n.Captures))
	for i, c := range n.Captures {
		names[i] = c.Name
	}
	return "closure(" + n.Callee.Name + ")[" + strings.Join(names, ", ") + "]"
}

// Trampoline is a synthetic wrapper adapting a function-with-closure to a
// plain function-pointer call site: it carries the callee and the Closure
// built over its free variables (spec.md §4.5 "Calls", GLOSSARY
// "Trampoline").
type Trampoline struct {
	typedNode
	Token   lexer.Token
	Callee  *FunctionDecl
	Closure *Closure
}

func (n *Trampoline) expressionNode()      {}
func (n *Trampoline) TokenLiteral() string { return n.Token.Literal }
func (n *Trampoline) Pos() lexer.Position  { return n.Token.Pos }
func (n *Trampoline) String() string       { return "trampoline(" + n.Callee.Name + ")" }

// Builtin is a call to a built-in/intrinsic function (chr, succ, ord, ...)
// rather than a user-declared FunctionDecl.
type Builtin struct {
	typedNode
	Token lexer.Token
	Name  string
	Args  []Expression
}

func (n *Builtin) expressionNode()      {}
func (n *Builtin) TokenLiteral() string { return n.Token.Literal }
func (n *Builtin) Pos() lexer.Position  { return n.Token.Pos }
func (n *Builtin) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Call is a call to a user-declared function, either by direct name
// (Callee set) or through a function-pointer-valued expression
// (FuncExpr set).
type Call struct {
	typedNode
	Token    lexer.Token
	Callee   *FunctionDecl
	FuncExpr Expression
	Args     []Expression
}

func (n *Call) expressionNode()      {}
func (n *Call) TokenLiteral() string { return n.Token.Literal }
func (n *Call) Pos() lexer.Position  { return n.Token.Pos }
func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	name := ""
	if n.Callee != nil {
		name = n.Callee.Name
	} else if n.FuncExpr != nil {
		name = n.FuncExpr.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
