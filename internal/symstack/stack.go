// Package symstack implements the lexically scoped name -> binding stack
// the semantic analyser uses to resolve identifiers (spec.md §4.4).
package symstack

import "golang.org/x/text/cases"

// folder performs the case-fold Add/Find use to compare identifiers
// case-insensitively; built once since cases.Caser carries internal state.
var folder = cases.Fold()

// Binding is anything a name can resolve to: a variable, constant, or
// function declaration. The analyser stores its own node types behind this
// interface so symstack stays independent of internal/ast.
type Binding interface {
	BindingName() string
}

// level is one lexical scope: a flat name -> Binding map.
type level struct {
	names map[string]Binding
}

func newLevel() *level {
	return &level{names: make(map[string]Binding)}
}

// Stack is a stack of lexical scopes. The bottom level is the global scope;
// each NewLevel call pushes a fresh, empty level on top.
type Stack struct {
	levels          []*level
	caseInsensitive bool
}

// New returns a Stack with a single (global) level already pushed.
// caseInsensitive controls whether Add/Find fold names to a canonical case
// before comparing, matching the process-wide configuration option
// spec.md §4.4 and §9 describe.
func New(caseInsensitive bool) *Stack {
	s := &Stack{caseInsensitive: caseInsensitive}
	s.NewLevel()
	return s
}

func (s *Stack) fold(name string) string {
	if s.caseInsensitive {
		return folder.String(name)
	}
	return name
}

// NewLevel pushes a fresh, empty scope.
func (s *Stack) NewLevel() {
	s.levels = append(s.levels, newLevel())
}

// DropLevel pops the innermost scope. Calling DropLevel on a Stack with
// no level left is a programming error and panics, matching
// the rest of the package's "bugs cause panics, user errors go in the
// diagnostic sink" split.
func (s *Stack) DropLevel() {
	if len(s.levels) == 0 {
		panic("symstack: DropLevel on an empty stack")
	}
	s.levels = s.levels[:len(s.levels)-1]
}

// Depth reports how many levels are currently pushed.
func (s *Stack) Depth() int {
	return len(s.levels)
}

// Add binds name to v in the innermost scope. It returns false without
// modifying the stack if name is already bound at that same level
// (spec.md §4.4 "returns false on redefinition at current level").
func (s *Stack) Add(name string, v Binding) bool {
	top := s.levels[len(s.levels)-1]
	key := s.fold(name)
	if _, exists := top.names[key]; exists {
		return false
	}
	top.names[key] = v
	return true
}

// Find searches from the innermost scope outward and returns the first
// binding for name, or (nil, false) if no level defines it.
func (s *Stack) Find(name string) (Binding, bool) {
	key := s.fold(name)
	for i := len(s.levels) - 1; i >= 0; i-- {
		if v, ok := s.levels[i].names[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// FindLocal searches only the innermost scope, the check call-sites use to
// detect shadowing versus redefinition.
func (s *Stack) FindLocal(name string) (Binding, bool) {
	key := s.fold(name)
	v, ok := s.levels[len(s.levels)-1].names[key]
	return v, ok
}

// Guard is an RAII-style scope guard: NewGuard pushes a level, and calling
// Close (typically via defer) pops it. It lets call sites write
// `defer stack.NewGuard().Close()` instead of pairing NewLevel/DropLevel by
// hand (spec.md §4.4 "An RAII-style scope guard pushes a level on
// construction and pops it on destruction").
type Guard struct {
	stack *Stack
}

// NewGuard pushes a new level on s and returns a Guard that will pop it.
func (s *Stack) NewGuard() *Guard {
	s.NewLevel()
	return &Guard{stack: s}
}

// Close pops the level this Guard pushed. It is safe to call at most once;
// calling it twice will pop an unrelated level.
func (g *Guard) Close() {
	g.stack.DropLevel()
}
