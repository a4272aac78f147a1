package ast

import (
	"strings"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

// ForDirection is the direction of a counted for loop.
type ForDirection int

const (
	ForTo ForDirection = iota
	ForDownto
)

func (d ForDirection) String() string {
	if d == ForDownto {
		return "downto"
	}
	return "to"
}

// ForStmt is a for loop. It has two forms: counted (Start/End set,
// Collection nil) and iterator (Collection set, Start/End nil), matching
// spec.md §4.5 "For loops".
type ForStmt struct {
	Token      lexer.Token
	Variable   *Variable
	Start      Expression
	End        Expression
	Direction  ForDirection
	Collection Expression
	Body       Statement
}

func (n *ForStmt) statementNode()       {}
func (n *ForStmt) TokenLiteral() string { return n.Token.Literal }
func (n *ForStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *ForStmt) String() string {
	if n.Collection != nil {
		return "for " + n.Variable.String() + " in " + n.Collection.String() + " do " + n.Body.String()
	}
	return "for " + n.Variable.String() + " := " + n.Start.String() + " " + n.Direction.String() + " " + n.End.String() + " do " + n.Body.String()
}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (n *WhileStmt) statementNode()       {}
func (n *WhileStmt) TokenLiteral() string { return n.Token.Literal }
func (n *WhileStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *WhileStmt) String() string {
	return "while " + n.Condition.String() + " do " + n.Body.String()
}

// RepeatStmt is a post-tested loop: the body runs at least once.
type RepeatStmt struct {
	Token     lexer.Token
	Body      Statement
	Condition Expression
}

func (n *RepeatStmt) statementNode()       {}
func (n *RepeatStmt) TokenLiteral() string { return n.Token.Literal }
func (n *RepeatStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *RepeatStmt) String() string {
	return "repeat " + n.Body.String() + " until " + n.Condition.String()
}

// IfStmt is an if/then/else conditional.
type IfStmt struct {
	Token       lexer.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (n *IfStmt) statementNode()       {}
func (n *IfStmt) TokenLiteral() string { return n.Token.Literal }
func (n *IfStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *IfStmt) String() string {
	s := "if " + n.Condition.String() + " then " + n.Consequence.String()
	if n.Alternative != nil {
		s += " else " + n.Alternative.String()
	}
	return s
}

// CaseBranch is one label-list/statement arm of a CaseStmt.
type CaseBranch struct {
	Values []Expression // literal or RangeExpr label values
	Body   Statement
}

// CaseStmt is a case (switch) statement. Label sets across all Branches
// must be pairwise disjoint after enumerating any RangeExpr labels
// (spec.md §4.5 "Case"). Otherwise is the optional else-clause body.
type CaseStmt struct {
	Token      lexer.Token
	Selector   Expression
	Branches   []CaseBranch
	Otherwise  Statement
}

func (n *CaseStmt) statementNode()       {}
func (n *CaseStmt) TokenLiteral() string { return n.Token.Literal }
func (n *CaseStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *CaseStmt) String() string {
	var parts []string
	for _, b := range n.Branches {
		labels := make([]string, len(b.Values))
		for i, v := range b.Values {
			labels[i] = v.String()
		}
		parts = append(parts, strings.Join(labels, ", ")+": "+b.Body.String())
	}
	s := "case " + n.Selector.String() + " of " + strings.Join(parts, "; ")
	if n.Otherwise != nil {
		s += " else " + n.Otherwise.String()
	}
	return s + " end"
}
