// Package semantic implements the pass that walks a parsed program,
// resolves and coerces types, rewrites the AST with explicit
// TypeCast/RangeCheck/RangeReduce/Trampoline nodes, and reports
// diagnostics (spec.md §4.5).
package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/diag"
	"github.com/cwbudde/go-pascal-sema/internal/lexer"
	"github.com/cwbudde/go-pascal-sema/internal/symstack"
)

// fixup is a deferred piece of work registered during traversal and run
// once, strictly after traversal completes, in registration order
// (spec.md §4.5 "Fixups and errors", §5).
type fixup func()

// funcBinding adapts an *ast.FunctionDecl to symstack.Binding so function
// names live in the same scope stack as variables.
type funcBinding struct{ decl *ast.FunctionDecl }

func (f funcBinding) BindingName() string { return f.decl.Name }

// varBinding adapts an *ast.Variable to symstack.Binding.
type varBinding struct{ v *ast.Variable }

func (b varBinding) BindingName() string { return b.v.Name }

// Analyzer walks a Program and rewrites it into a fully typed AST. It is
// single-use: construct one per compilation unit via New.
type Analyzer struct {
	cfg    diag.Config
	sink   *diag.Sink
	stack  *symstack.Stack
	fixups []fixup

	// funcStack tracks the lexical nesting of FunctionDecls currently being
	// analyzed, innermost last, so nested-function free-variable capture
	// (spec.md §4.5 "Calls" trampoline synthesis) can tell which names
	// belong to an enclosing function rather than the global scope.
	funcStack []*ast.FunctionDecl

	// reads/writes accumulated per function while its body is analyzed,
	// keyed by the FunctionDecl being analyzed; used to compute FreeVars
	// once the body is done.
	touched map[*ast.FunctionDecl]map[string]bool
}

// New constructs an Analyzer over the given configuration.
func New(cfg diag.Config) *Analyzer {
	return &Analyzer{
		cfg:     cfg,
		sink:    diag.NewSink(),
		stack:   symstack.New(cfg.CaseInsensitive),
		touched: make(map[*ast.FunctionDecl]map[string]bool),
	}
}

// Run analyzes prog in place and returns the diagnostic sink holding every
// error collected. An ICE (programming-bug signal, not a user error) is
// raised via Sink.AddICE, which records it before panicking; the deferred
// recover here only stops the panic from taking the whole process down
// (spec.md §7). The diagnostic itself is already on a.sink by then.
//
// The traversal itself runs through a PassManager holding the single
// analyzerPass wrapping this Analyzer, the seam a future pre-pass would
// extend without this method's signature changing.
func (a *Analyzer) Run(prog *ast.Program) (sink *diag.Sink) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*diag.ICE); !ok {
				panic(r)
			}
		}
		sink = a.sink
	}()

	pm := NewPassManager(&analyzerPass{a: a})
	ctx := NewPassContext(a.cfg, a.sink)
	if err := pm.RunAll(prog, ctx); err != nil {
		a.sink.Add(lexer.Position{}, "pass %q failed: %s", pm.Passes()[0].Name(), err)
	}

	return a.sink
}

// runFixups drains the deferred fixup queue in registration order
// (spec.md §5).
func (a *Analyzer) runFixups() {
	fixups := a.fixups
	a.fixups = nil
	for _, f := range fixups {
		f()
	}
}

func (a *Analyzer) addError(pos lexer.Position, format string, args ...any) {
	a.sink.Add(pos, format, args...)
}

func (a *Analyzer) ice(pos lexer.Position, format string, args ...any) {
	a.sink.AddICE(pos, format, args...)
}

// markTouched records that name was read or written inside the
// currently-analyzing innermost function, for free-variable computation.
func (a *Analyzer) markTouched(name string) {
	if len(a.funcStack) == 0 {
		return
	}
	fn := a.funcStack[len(a.funcStack)-1]
	set := a.touched[fn]
	if set == nil {
		set = make(map[string]bool)
		a.touched[fn] = set
	}
	set[name] = true
}
