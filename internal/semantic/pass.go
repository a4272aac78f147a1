package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/diag"
)

// Pass represents a single semantic analysis pass over a program. Today's
// front end runs exactly one: the type-checking traversal Analyzer.Run
// drives. This interface and PassManager are retained from the teacher's
// multi-pass architecture as the seam a later pre-pass (e.g. hoisting
// forward declarations, out of scope here since spec.md's AST arrives
// from the parser with names already in the symbol stack) would plug
// into without changing Analyzer's public surface.
type Pass interface {
	// Name returns the pass name, for diagnostics and logging.
	Name() string

	// Run executes this pass over program, recording diagnostics on
	// ctx.Sink. It returns an error only for a fatal condition that should
	// stop the remaining passes from running; ordinary semantic errors are
	// recorded on the sink instead.
	Run(program *ast.Program, ctx *PassContext) error
}

// PassContext carries the state a Pass needs. It is intentionally thin:
// a single type-checking pass needs nothing beyond the sink its
// diagnostics land in and the configuration that shaped the Analyzer
// running it.
type PassContext struct {
	Sink *diag.Sink
	Cfg  diag.Config
}

// NewPassContext builds a PassContext around sink and cfg.
func NewPassContext(cfg diag.Config, sink *diag.Sink) *PassContext {
	return &PassContext{Sink: sink, Cfg: cfg}
}

// PassManager coordinates the execution of multiple passes in order.
type PassManager struct {
	passes []Pass
}

// NewPassManager creates a pass manager running passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// AddPass appends a pass, to run after every pass already registered.
func (pm *PassManager) AddPass(pass Pass) {
	pm.passes = append(pm.passes, pass)
}

// Passes returns the registered passes, in run order.
func (pm *PassManager) Passes() []Pass {
	return pm.passes
}

// RunAll executes every registered pass in sequence, stopping early if a
// pass returns an error. Unlike a fatal error, accumulated diagnostics on
// ctx.Sink never stop later passes: spec.md §7 requires a run to surface
// as many problems as possible in one pass over the program.
func (pm *PassManager) RunAll(program *ast.Program, ctx *PassContext) error {
	for _, pass := range pm.passes {
		if err := pass.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}

// analyzerPass adapts an *Analyzer's traversal to Pass, so the
// type-checking traversal runs through the same PassManager machinery a
// future second pass would.
type analyzerPass struct {
	a *Analyzer
}

func (p *analyzerPass) Name() string { return "typecheck" }

func (p *analyzerPass) Run(program *ast.Program, ctx *PassContext) error {
	for i, stmt := range program.Statements {
		program.Statements[i] = p.a.analyzeStmt(stmt)
	}
	p.a.runFixups()
	return nil
}
