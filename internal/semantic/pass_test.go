package semantic

import (
	"errors"
	"testing"

	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/diag"
	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

// countingPass records how many times Run was invoked, for asserting
// PassManager's ordering and stop-on-error behavior.
type countingPass struct {
	name string
	runs *[]string
	err  error
}

func (p *countingPass) Name() string { return p.name }

func (p *countingPass) Run(program *ast.Program, ctx *PassContext) error {
	*p.runs = append(*p.runs, p.name)
	return p.err
}

func TestPassManagerRunsInOrder(t *testing.T) {
	var runs []string
	pm := NewPassManager(
		&countingPass{name: "first", runs: &runs},
		&countingPass{name: "second", runs: &runs},
	)
	ctx := NewPassContext(diag.DefaultConfig(), diag.NewSink())
	if err := pm.RunAll(&ast.Program{}, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 || runs[0] != "first" || runs[1] != "second" {
		t.Fatalf("passes ran in order %v, want [first second]", runs)
	}
}

func TestPassManagerStopsOnError(t *testing.T) {
	var runs []string
	failure := errors.New("boom")
	pm := NewPassManager(
		&countingPass{name: "first", runs: &runs, err: failure},
		&countingPass{name: "second", runs: &runs},
	)
	ctx := NewPassContext(diag.DefaultConfig(), diag.NewSink())
	if err := pm.RunAll(&ast.Program{}, ctx); !errors.Is(err, failure) {
		t.Fatalf("RunAll() error = %v, want %v", err, failure)
	}
	if len(runs) != 1 || runs[0] != "first" {
		t.Fatalf("expected only the first pass to run, got %v", runs)
	}
}

func TestPassManagerAddPass(t *testing.T) {
	pm := NewPassManager()
	if len(pm.Passes()) != 0 {
		t.Fatalf("new PassManager should start empty, got %d passes", len(pm.Passes()))
	}
	var runs []string
	pm.AddPass(&countingPass{name: "only", runs: &runs})
	if len(pm.Passes()) != 1 || pm.Passes()[0].Name() != "only" {
		t.Fatalf("AddPass did not register the pass, got %v", pm.Passes())
	}
}

// TestAnalyzerRunExercisesAnalyzerPass confirms Run's PassManager wiring
// actually drives the type-checking traversal: a bare integer literal
// statement should type-check cleanly through the one-entry PassManager.
func TestAnalyzerRunExercisesAnalyzerPass(t *testing.T) {
	bin := &ast.Binary{Token: tokAt(lexer.PLUS, "+"), Left: intLit(1), Op: "+", Right: intLit(1)}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ExpressionStatement{Token: tokAt(lexer.IDENT, ""), Expr: bin},
	}}
	sink := runAnalysis(prog)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors running through PassManager: %s", errorStrings(sink))
	}
}
