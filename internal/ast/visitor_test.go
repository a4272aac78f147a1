package ast

import (
	"testing"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

func tok(typ lexer.TokenType, lit string) lexer.Token {
	return lexer.NewToken(typ, lit, lexer.Position{Line: 1, Column: 1})
}

func intLit(v int64) *IntegerLit {
	n := &IntegerLit{Token: tok(lexer.INT, "0"), Value: v}
	n.SetType(types.IntegerType)
	return n
}

func TestWalkVisitsEveryNode(t *testing.T) {
	left := intLit(1)
	right := intLit(2)
	bin := &Binary{Token: tok(lexer.PLUS, "+"), Left: left, Op: "+", Right: right}
	bin.SetType(types.IntegerType)

	stmt := &ExpressionStatement{Token: tok(lexer.IDENT, "x"), Expr: bin}
	prog := &Program{Statements: []Statement{stmt}}

	var visited []Node
	Inspect(prog, func(n Node) bool {
		if n != nil {
			visited = append(visited, n)
		}
		return true
	})

	const want = 5 // Program, ExpressionStatement, Binary, left literal, right literal
	if len(visited) != want {
		t.Fatalf("expected %d nodes visited, got %d: %v", want, len(visited), visited)
	}
}

func TestWalkStopsDescentWhenVisitorReturnsFalse(t *testing.T) {
	left := intLit(1)
	right := intLit(2)
	bin := &Binary{Token: tok(lexer.PLUS, "+"), Left: left, Op: "+", Right: right}
	bin.SetType(types.IntegerType)

	var sawLeaf bool
	Inspect(bin, func(n Node) bool {
		if _, ok := n.(*Binary); ok {
			return false
		}
		if n == left || n == right {
			sawLeaf = true
		}
		return true
	})

	if sawLeaf {
		t.Error("Inspect should not have descended into Binary's children")
	}
}

func TestBuildAncestorsFindsParent(t *testing.T) {
	v := &Variable{Token: tok(lexer.IDENT, "x"), Name: "x"}
	bin := &Binary{Token: tok(lexer.PLUS, "+"), Left: v, Op: "+", Right: intLit(1)}
	block := &BlockStatement{Token: tok(lexer.BEGIN, "begin"), Statements: []Statement{
		&ExpressionStatement{Token: tok(lexer.IDENT, ""), Expr: bin},
	}}

	ancestors := BuildAncestors(block)
	parent, ok := FindParentOfType[*Binary](v, ancestors)
	if !ok {
		t.Fatal("expected to find a *Binary ancestor of the Variable")
	}
	if parent != bin {
		t.Error("FindParentOfType returned the wrong Binary node")
	}

	if _, ok := FindParentOfType[*ForStmt](v, ancestors); ok {
		t.Error("there is no enclosing ForStmt; FindParentOfType should report false")
	}
}
