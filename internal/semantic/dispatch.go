package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
)

// analyzeExpr recursively type-checks e, rewrites its children in place,
// and returns the node that should replace e in its parent: usually e
// itself, sometimes e wrapped in a TypeCast/RangeCheck/RangeReduce.
func (a *Analyzer) analyzeExpr(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}

	switch n := e.(type) {
	case *ast.IntegerLit, *ast.RealLit, *ast.CharLit, *ast.StringLit, *ast.NilLit:
		return e

	case *ast.Variable:
		return a.analyzeVariable(n)

	case *ast.Binary:
		return a.analyzeBinary(n)

	case *ast.Unary:
		return a.analyzeUnary(n)

	case *ast.Assign:
		return a.analyzeAssign(n)

	case *ast.RangeExpr:
		return a.analyzeRangeExpr(n)

	case *ast.SetExpr:
		return a.analyzeSetExpr(n)

	case *ast.ArrayIndex:
		return a.analyzeArrayIndex(n)

	case *ast.DynArrayIndex:
		return a.analyzeDynArrayIndex(n)

	case *ast.InitArray:
		return a.analyzeInitArray(n)

	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(n)
		return n

	case *ast.Builtin:
		return a.analyzeBuiltin(n)

	case *ast.Call:
		return a.analyzeCall(n)

	case *ast.Closure, *ast.Trampoline, *ast.TypeCast, *ast.RangeCheck, *ast.RangeReduce:
		// Already-rewritten nodes are idempotent: Run(Analyse) twice must
		// not insert further casts (spec.md §8 "round-trip / idempotence").
		return e

	default:
		a.ice(e.Pos(), "analyzeExpr: unhandled expression node %T", e)
		return e
	}
}

// analyzeStmt recursively type-checks s and returns the node that should
// replace it in its parent.
func (a *Analyzer) analyzeStmt(s ast.Statement) ast.Statement {
	if s == nil {
		return nil
	}

	switch n := s.(type) {
	case *ast.BlockStatement:
		guard := a.stack.NewGuard()
		defer guard.Close()
		for i, inner := range n.Statements {
			n.Statements[i] = a.analyzeStmt(inner)
		}
		return n

	case *ast.ExpressionStatement:
		n.Expr = a.analyzeExpr(n.Expr)
		return n

	case *ast.ForStmt:
		return a.analyzeFor(n)

	case *ast.WhileStmt:
		n.Condition = a.requireBoolean(n.Condition, "while")
		n.Body = a.analyzeStmt(n.Body)
		return n

	case *ast.RepeatStmt:
		n.Body = a.analyzeStmt(n.Body)
		n.Condition = a.requireBoolean(n.Condition, "repeat")
		return n

	case *ast.IfStmt:
		n.Condition = a.requireBoolean(n.Condition, "if")
		n.Consequence = a.analyzeStmt(n.Consequence)
		if n.Alternative != nil {
			n.Alternative = a.analyzeStmt(n.Alternative)
		}
		return n

	case *ast.CaseStmt:
		return a.analyzeCase(n)

	case *ast.WriteStmt:
		return a.analyzeWrite(n)

	case *ast.ReadStmt:
		return a.analyzeRead(n)

	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(n)
		return n

	default:
		a.ice(s.Pos(), "analyzeStmt: unhandled statement node %T", s)
		return s
	}
}

// requireBoolean type-checks cond and reports the standard "condition for
// 'kw' should be a boolean expression" error if it isn't (spec.md §4.5
// "Control flow", §8 scenario 6).
func (a *Analyzer) requireBoolean(cond ast.Expression, kw string) ast.Expression {
	cond = a.analyzeExpr(cond)
	if !isBooleanType(cond.Type()) {
		a.addError(cond.Pos(), "The condition for '%s' should be a boolean expression", kw)
	}
	return cond
}
