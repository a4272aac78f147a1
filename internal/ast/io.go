package ast

import (
	"strings"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

// WriteArg is one argument to a Write statement, optionally carrying a
// field width and/or precision (spec.md §4.5 "Read / Write I/O").
type WriteArg struct {
	Value     Expression
	Width     Expression
	Precision Expression
}

// WriteStmt is a Write/WriteLn/WriteStr call. Dest is nil for the default
// console stream; when set and its type is Text, text-mode rules apply,
// otherwise binary-mode rules do (spec.md §4.5).
type WriteStmt struct {
	Token   lexer.Token
	Dest    Expression
	Args    []WriteArg
	Newline bool
	ToStr   bool
}

func (n *WriteStmt) statementNode()       {}
func (n *WriteStmt) TokenLiteral() string { return n.Token.Literal }
func (n *WriteStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *WriteStmt) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.Value.String()
	}
	name := "Write"
	if n.Newline {
		name = "WriteLn"
	}
	if n.ToStr {
		name = "WriteStr"
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// ReadStmt is a Read/ReadLn/ReadStr call. Every argument must be
// addressable (spec.md §4.5 "Read / Write I/O").
type ReadStmt struct {
	Token   lexer.Token
	Dest    Expression
	Args    []Expression
	Newline bool
	FromStr bool
}

func (n *ReadStmt) statementNode()       {}
func (n *ReadStmt) TokenLiteral() string { return n.Token.Literal }
func (n *ReadStmt) Pos() lexer.Position  { return n.Token.Pos }
func (n *ReadStmt) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	name := "Read"
	if n.Newline {
		name = "ReadLn"
	}
	if n.FromStr {
		name = "ReadStr"
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
