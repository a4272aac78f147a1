package semantic

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/diag"
	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
)

func tokAt(typ lexer.TokenType, lit string) lexer.Token {
	return lexer.NewToken(typ, lit, lexer.Position{Line: 1, Column: 1})
}

func intLit(v int64) *ast.IntegerLit {
	n := &ast.IntegerLit{Token: tokAt(lexer.INT, "0"), Value: v}
	n.SetType(types.IntegerType)
	return n
}

func realLit(v float64) *ast.RealLit {
	n := &ast.RealLit{Token: tokAt(lexer.FLOAT, "0"), Value: v}
	n.SetType(types.RealType)
	return n
}

func variable(name string, t types.Type) *ast.Variable {
	v := &ast.Variable{Token: tokAt(lexer.IDENT, name), Name: name}
	v.SetType(t)
	return v
}

func runAnalysis(prog *ast.Program) *diag.Sink {
	a := New(diag.DefaultConfig())
	return a.Run(prog)
}

func errorStrings(s *diag.Sink) string {
	var sb strings.Builder
	for _, d := range s.Errors() {
		sb.WriteString(d.Message)
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return "<no errors>\n"
	}
	return sb.String()
}

func TestBinaryIntPlusInt(t *testing.T) {
	bin := &ast.Binary{Token: tokAt(lexer.PLUS, "+"), Left: intLit(2), Op: "+", Right: intLit(3)}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ExpressionStatement{Token: tokAt(lexer.IDENT, ""), Expr: bin},
	}}
	sink := runAnalysis(prog)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %s", errorStrings(sink))
	}
	if !types.Equal(bin.Type(), types.IntegerType) {
		t.Errorf("2 + 3 should be Integer-typed, got %s", bin.Type())
	}
}

func TestBinaryIntPlusRealPromotesToReal(t *testing.T) {
	bin := &ast.Binary{Token: tokAt(lexer.PLUS, "+"), Left: intLit(2), Op: "+", Right: realLit(0.5)}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ExpressionStatement{Token: tokAt(lexer.IDENT, ""), Expr: bin},
	}}
	runAnalysis(prog)
	if !types.Equal(bin.Type(), types.RealType) {
		t.Errorf("Integer + Real should unify to Real, got %s", bin.Type())
	}
	if _, ok := bin.Left.(*ast.TypeCast); !ok {
		t.Error("the Integer operand should have been wrapped in a TypeCast to Real")
	}
}

func TestWhileRequiresBoolean(t *testing.T) {
	loop := &ast.WhileStmt{Token: tokAt(lexer.WHILE, "while"), Condition: intLit(1), Body: &ast.BlockStatement{Token: tokAt(lexer.BEGIN, "begin")}}
	prog := &ast.Program{Statements: []ast.Statement{loop}}
	sink := runAnalysis(prog)
	snaps.MatchSnapshot(t, errorStrings(sink))
}

func TestCaseDuplicateLabel(t *testing.T) {
	selector := variable("x", types.IntegerType)
	caseStmt := &ast.CaseStmt{
		Token:    tokAt(lexer.CASE, "case"),
		Selector: selector,
		Branches: []ast.CaseBranch{
			{Values: []ast.Expression{intLit(1)}, Body: &ast.BlockStatement{Token: tokAt(lexer.BEGIN, "begin")}},
			{Values: []ast.Expression{intLit(1)}, Body: &ast.BlockStatement{Token: tokAt(lexer.BEGIN, "begin")}},
		},
	}
	sink := declareThenRun(t, []*ast.Variable{selector}, caseStmt)
	snaps.MatchSnapshot(t, errorStrings(sink))
}

func TestAssignToProtectedValue(t *testing.T) {
	decl := variable("x", types.IntegerType)
	decl.Protected = true
	target := variable("x", types.IntegerType)
	assign := &ast.Assign{Token: tokAt(lexer.ASSIGN, ":="), Target: target, Value: intLit(1)}
	sink := declareThenRun(t, []*ast.Variable{decl}, ast.Expression(assign))
	snaps.MatchSnapshot(t, errorStrings(sink))
}

func TestArrayIndexInsertsRangeReduceByDefault(t *testing.T) {
	arrType := types.NewArray(types.IntegerType, types.NewRange(1, 10, types.IntegerType))
	arr := variable("a", arrType)
	idx := variable("i", types.IntegerType)
	index := &ast.ArrayIndex{Token: tokAt(lexer.LBRACK, "["), Array: arr, Index: idx}
	declareThenRun(t, []*ast.Variable{arr, idx}, index)

	if _, ok := index.Index.(*ast.RangeReduce); !ok {
		t.Errorf("expected the index to be wrapped in RangeReduce by default, got %T", index.Index)
	}
}

// declareThenRun seeds the analyzer's global scope with each of decls'
// bindings, then runs the analysis with root as the sole top-level
// expression or statement, returning the diagnostic sink.
func declareThenRun(t *testing.T, decls []*ast.Variable, root ast.Node) *diag.Sink {
	t.Helper()
	a := New(diag.DefaultConfig())
	for _, decl := range decls {
		a.stack.Add(decl.Name, varBinding{decl})
	}

	switch n := root.(type) {
	case ast.Expression:
		stmt := &ast.ExpressionStatement{Token: tokAt(lexer.IDENT, ""), Expr: n}
		a.analyzeStmt(stmt)
	case ast.Statement:
		a.analyzeStmt(n)
	}
	a.runFixups()
	return a.sink
}
