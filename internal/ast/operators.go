package ast

import "github.com/cwbudde/go-pascal-sema/internal/lexer"

// Binary is a binary operator expression. Op is the source operator
// spelling (e.g. "+", "in", "and_then") rather than a lexer.TokenType, so
// the analyser's per-operator dispatch (spec.md §4.5) can switch on it
// directly without re-deriving the spelling from a token type.
type Binary struct {
	typedNode
	Token lexer.Token
	Left  Expression
	Op    string
	Right Expression
}

func (n *Binary) expressionNode()      {}
func (n *Binary) TokenLiteral() string { return n.Token.Literal }
func (n *Binary) Pos() lexer.Position  { return n.Token.Pos }
func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

// Unary is a unary prefix operator expression ("-", "not", "@").
type Unary struct {
	typedNode
	Token   lexer.Token
	Op      string
	Operand Expression
}

func (n *Unary) expressionNode()      {}
func (n *Unary) TokenLiteral() string { return n.Token.Literal }
func (n *Unary) Pos() lexer.Position  { return n.Token.Pos }
func (n *Unary) String() string       { return "(" + n.Op + n.Operand.String() + ")" }

// Assign is an assignment: Target := Value. The analyser requires
// Target's access chain to contain a *Variable node (spec.md §4.5
// "Assignments").
type Assign struct {
	typedNode
	Token  lexer.Token
	Target Expression
	Value  Expression
}

func (n *Assign) expressionNode()      {}
func (n *Assign) TokenLiteral() string { return n.Token.Literal }
func (n *Assign) Pos() lexer.Position  { return n.Token.Pos }
func (n *Assign) String() string       { return n.Target.String() + " := " + n.Value.String() }
