package ast

import (
	"fmt"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

// IntegerLit is an integer literal.
type IntegerLit struct {
	typedNode
	Token lexer.Token
	Value int64
}

func (n *IntegerLit) expressionNode()       {}
func (n *IntegerLit) TokenLiteral() string  { return n.Token.Literal }
func (n *IntegerLit) Pos() lexer.Position   { return n.Token.Pos }
func (n *IntegerLit) String() string        { return n.Token.Literal }

// RealLit is a floating-point literal.
type RealLit struct {
	typedNode
	Token lexer.Token
	Value float64
}

func (n *RealLit) expressionNode()      {}
func (n *RealLit) TokenLiteral() string { return n.Token.Literal }
func (n *RealLit) Pos() lexer.Position  { return n.Token.Pos }
func (n *RealLit) String() string       { return n.Token.Literal }

// CharLit is a character literal.
type CharLit struct {
	typedNode
	Token lexer.Token
	Value byte
}

func (n *CharLit) expressionNode()      {}
func (n *CharLit) TokenLiteral() string { return n.Token.Literal }
func (n *CharLit) Pos() lexer.Position  { return n.Token.Pos }
func (n *CharLit) String() string       { return fmt.Sprintf("#%d", n.Value) }

// StringLit is a string literal.
type StringLit struct {
	typedNode
	Token lexer.Token
	Value string
}

func (n *StringLit) expressionNode()      {}
func (n *StringLit) TokenLiteral() string { return n.Token.Literal }
func (n *StringLit) Pos() lexer.Position  { return n.Token.Pos }
func (n *StringLit) String() string       { return fmt.Sprintf("%q", n.Value) }

// NilLit is the `nil` literal.
type NilLit struct {
	typedNode
	Token lexer.Token
}

func (n *NilLit) expressionNode()      {}
func (n *NilLit) TokenLiteral() string { return n.Token.Literal }
func (n *NilLit) Pos() lexer.Position  { return n.Token.Pos }
func (n *NilLit) String() string       { return "nil" }

// Variable references a declared name (variable, parameter, constant, or
// function). The analyser attaches its resolved type via SetType once the
// symbol stack lookup succeeds.
type Variable struct {
	typedNode
	Token     lexer.Token
	Name      string
	Protected bool // true if this binding may not be assigned to
}

func (n *Variable) expressionNode()      {}
func (n *Variable) TokenLiteral() string { return n.Token.Literal }
func (n *Variable) Pos() lexer.Position  { return n.Token.Pos }
func (n *Variable) String() string       { return n.Name }
