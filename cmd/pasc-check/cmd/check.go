package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/diag"
	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/semantic"
	"github.com/cwbudde/go-pascal-sema/internal/types"
	"github.com/spf13/cobra"
)

var (
	checkCaseSensitive bool
	checkRangeCheck    bool
	checkMaxSetSize    int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the semantic analyser over a built-in demonstration program",
	Long: `check builds a small fixed AST in memory, exercising a handful of
the analyser's rules (integer/real promotion, an array index wrapped
in RangeReduce, or in a bounds-checked RangeCheck with --range-check,
a boolean-guarded loop), runs the analyser over it, and prints
the resulting diagnostics and typed program.

There is no source file to pass: the lexer and parser that would turn
Pascal source into this AST are out of scope for this module. This
command exists to drive the analyser the way an embedding compiler
front-end would.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkCaseSensitive, "case-sensitive", false, "treat identifiers as case-sensitive (default: case-insensitive)")
	checkCmd.Flags().BoolVar(&checkRangeCheck, "range-check", false, "insert bounds-checked RangeCheck nodes instead of RangeReduce")
	checkCmd.Flags().IntVar(&checkMaxSetSize, "max-set-size", diag.DefaultMaxSetSize, "maximum element count of an inferred set type")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := diag.Config{
		CaseInsensitive: !checkCaseSensitive,
		RangeCheck:      checkRangeCheck,
		MaxSetSize:      checkMaxSetSize,
	}

	prog, globals := demoProgram()

	analyzer := semantic.New(cfg)
	for _, v := range globals {
		analyzer.DeclareVariable(v)
	}
	sink := analyzer.Run(prog)

	for _, d := range sink.Errors() {
		fmt.Fprintln(os.Stderr, diag.Format(d))
	}

	fmt.Println(prog.String())

	if sink.HasErrors() {
		return fmt.Errorf("analysis failed with %d error(s)", sink.Count())
	}
	return nil
}

// demoProgram builds a small fixed AST, equivalent to:
//
//	var a: array[1..10] of Integer;
//	var i: Integer;
//	var x: Real;
//	x := 2 + 0.5;
//	for i := 1 to 10 do
//	  if i > 5 then
//	    a[i] := i;
//
// It is hand-built rather than parsed from source since the parser that
// would normally produce this AST is a separate, out-of-scope component.
func demoProgram() (*ast.Program, []*ast.Variable) {
	pos := lexer.Position{Line: 1, Column: 1}
	tok := func(t lexer.TokenType, lit string) lexer.Token { return lexer.NewToken(t, lit, pos) }

	arrType := types.NewArray(types.IntegerType, types.NewRange(1, 10, types.IntegerType))

	a := &ast.Variable{Token: tok(lexer.IDENT, "a"), Name: "a"}
	a.SetType(arrType)
	i := &ast.Variable{Token: tok(lexer.IDENT, "i"), Name: "i"}
	i.SetType(types.IntegerType)
	x := &ast.Variable{Token: tok(lexer.IDENT, "x"), Name: "x"}
	x.SetType(types.RealType)

	two := &ast.IntegerLit{Token: tok(lexer.INT, "2"), Value: 2}
	two.SetType(types.IntegerType)
	half := &ast.RealLit{Token: tok(lexer.FLOAT, "0.5"), Value: 0.5}
	half.SetType(types.RealType)

	assignX := &ast.Assign{
		Token:  tok(lexer.ASSIGN, ":="),
		Target: x,
		Value:  &ast.Binary{Token: tok(lexer.PLUS, "+"), Left: two, Op: "+", Right: half},
	}

	one := &ast.IntegerLit{Token: tok(lexer.INT, "1"), Value: 1}
	one.SetType(types.IntegerType)
	ten := &ast.IntegerLit{Token: tok(lexer.INT, "10"), Value: 10}
	ten.SetType(types.IntegerType)
	five := &ast.IntegerLit{Token: tok(lexer.INT, "5"), Value: 5}
	five.SetType(types.IntegerType)

	cond := &ast.Binary{Token: tok(lexer.GREATER, ">"), Left: i, Op: ">", Right: five}
	indexAssign := &ast.Assign{
		Token:  tok(lexer.ASSIGN, ":="),
		Target: &ast.ArrayIndex{Token: tok(lexer.LBRACK, "["), Array: a, Index: i},
		Value:  i,
	}
	ifStmt := &ast.IfStmt{
		Token:       tok(lexer.IF, "if"),
		Condition:   cond,
		Consequence: &ast.ExpressionStatement{Token: tok(lexer.IDENT, ""), Expr: indexAssign},
	}

	forLoop := &ast.ForStmt{
		Token:     tok(lexer.FOR, "for"),
		Variable:  i,
		Start:     one,
		End:       ten,
		Direction: ast.ForTo,
		Body:      ifStmt,
	}

	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.ExpressionStatement{Token: tok(lexer.IDENT, ""), Expr: assignX},
			forLoop,
		},
	}
	return prog, []*ast.Variable{a, i, x}
}
