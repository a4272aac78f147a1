package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// analyzeCall implements spec.md §4.5 "Calls": arity match against the
// prototype, by-ref addressability, Nil-to-pointer casts, and function
// name -> Trampoline synthesis when a nested function is passed where a
// function-pointer parameter is expected.
func (a *Analyzer) analyzeCall(n *ast.Call) ast.Expression {
	if n.FuncExpr != nil {
		n.FuncExpr = a.analyzeExpr(n.FuncExpr)
	}

	sig := callSignature(n)
	if sig == nil {
		for i, arg := range n.Args {
			n.Args[i] = a.analyzeExpr(arg)
		}
		n.SetType(types.VoidType)
		return n
	}

	if len(n.Args) != len(sig.Params) {
		a.addError(n.Pos(), "Wrong number of arguments: expected %d, got %d", len(sig.Params), len(n.Args))
	}

	for i := range n.Args {
		if i >= len(sig.Params) {
			n.Args[i] = a.analyzeExpr(n.Args[i])
			continue
		}
		param := sig.Params[i]
		n.Args[i] = a.analyzeCallArg(n.Args[i], param)
	}

	n.SetType(sig.Return)
	return n
}

func callSignature(n *ast.Call) *types.FuncPtrType {
	if n.Callee != nil {
		return n.Callee.Signature()
	}
	if n.FuncExpr != nil {
		if fp, ok := n.FuncExpr.Type().(*types.FuncPtrType); ok {
			return fp
		}
	}
	return nil
}

// analyzeCallArg type-checks one call argument against its formal
// parameter.
func (a *Analyzer) analyzeCallArg(arg ast.Expression, param types.Param) ast.Expression {
	// A bare function-name argument against a function-pointer parameter is
	// resolved before the generic analyzeExpr pass, since a *FunctionDecl
	// used as a value needs Trampoline synthesis rather than ordinary
	// expression typing.
	if fnRef, ok := arg.(*ast.Variable); ok {
		if binding, found := a.stack.Find(fnRef.Name); found {
			if fb, isFunc := binding.(funcBinding); isFunc {
				if fpParam, ok := param.Type.(*types.FuncPtrType); ok {
					return a.resolveFunctionPointerArg(fnRef, fb.decl, fpParam)
				}
			}
		}
	}

	arg = a.analyzeExpr(arg)

	if param.ByRef && !isAddressable(arg) {
		a.addError(arg.Pos(), "Argument passed by reference must be addressable")
		return arg
	}

	if isPointerType(param.Type) && isNilLit(arg) {
		return cast(arg, param.Type)
	}

	target, ok := types.Assignable(param.Type, arg.Type())
	if !ok {
		a.addError(arg.Pos(), "Incompatible type in expression")
		return arg
	}
	return cast(arg, target)
}

// resolveFunctionPointerArg implements the function-pointer argument rule:
// if callee's prototype matches modulo the closure slot, synthesize a
// Trampoline capturing its free variables; otherwise require exact
// prototype equality (spec.md §4.5 "Calls").
func (a *Analyzer) resolveFunctionPointerArg(ref *ast.Variable, callee *ast.FunctionDecl, want *types.FuncPtrType) ast.Expression {
	got := callee.Signature()

	if types.Equal(got, want) {
		ref.SetType(got)
		return ref
	}

	if !got.MatchesModuloClosure(want) {
		a.addError(ref.Pos(), "Function '%s' does not match the expected signature %s", callee.Name, want.String())
		ref.SetType(got)
		return ref
	}

	closure := &ast.Closure{Callee: callee}
	closure.SetType(got)
	for _, name := range callee.FreeVars {
		v := &ast.Variable{Name: name}
		if binding, ok := a.stack.Find(name); ok {
			if vb, isVar := binding.(varBinding); isVar {
				v.SetType(vb.v.Type())
			}
		}
		closure.Captures = append(closure.Captures, v)
	}

	tramp := &ast.Trampoline{Callee: callee, Closure: closure}
	tramp.SetType(want)
	return tramp
}

// analyzeBuiltin type-checks every argument of an intrinsic/builtin call.
// Arity and type checking for specific builtins beyond "every argument
// type-checks" is a codegen-backend concern (spec.md §1 scope note: the
// backend, not this pass, owns builtin lowering).
func (a *Analyzer) analyzeBuiltin(n *ast.Builtin) ast.Expression {
	for i, arg := range n.Args {
		n.Args[i] = a.analyzeExpr(arg)
	}
	if n.Type() == nil {
		n.SetType(types.VoidType)
	}
	return n
}
