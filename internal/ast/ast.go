// Package ast defines the typed abstract syntax tree the semantic
// analyser consumes and rewrites. Every node carries a source location and
// a current type, which may be under-specified until the analyser resolves
// it (spec.md §3.3).
package ast

import (
	"bytes"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any node that produces a value and carries a (possibly
// unresolved) type.
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
	SetType(types.Type)
}

// Statement is a node that performs an action but does not itself produce
// a value.
type Statement interface {
	Node
	statementNode()
}

// typedNode is embedded by every Expression implementation to provide the
// Type()/SetType() pair without repeating the field in each struct.
type typedNode struct {
	typ types.Type
}

func (t *typedNode) Type() types.Type      { return t.typ }
func (t *typedNode) SetType(ty types.Type) { t.typ = ty }

// Program is the root node: the ordered list of top-level statements the
// parser produced.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// BlockStatement is a begin..end sequence of statements.
type BlockStatement struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *BlockStatement) statementNode()       {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) Pos() lexer.Position  { return b.Token.Pos }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("begin\n")
	for _, s := range b.Statements {
		out.WriteString("  " + s.String() + ";\n")
	}
	out.WriteString("end")
	return out.String()
}

// ExpressionStatement wraps an Expression used in statement position (a
// bare procedure call, typically).
type ExpressionStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expr == nil {
		return ""
	}
	return e.Expr.String()
}
