package ast

// Visitor is implemented by callers of Walk. Visit is invoked once per
// Node; if it returns a non-nil Visitor, Walk continues to use that
// visitor to traverse the node's children, then calls Visit(nil) once
// traversal of those children is complete. If Visit returns nil, Walk
// does not descend into the node's children (idiomatic go/ast-style
// single-dispatch traversal).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order, calling v.Visit for each
// node. It follows the same two-call convention as go/ast.Walk: a
// second Visit(nil) call fires after a node's children have all been
// walked.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(v, s)
		}

	case *BlockStatement:
		for _, s := range n.Statements {
			Walk(v, s)
		}

	case *ExpressionStatement:
		Walk(v, n.Expr)

	case *IntegerLit, *RealLit, *CharLit, *StringLit, *NilLit, *Variable:
		// leaves

	case *Binary:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *Unary:
		Walk(v, n.Operand)

	case *Assign:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *RangeExpr:
		Walk(v, n.Low)
		Walk(v, n.High)

	case *SetExpr:
		for _, e := range n.Elements {
			Walk(v, e)
		}

	case *ArrayIndex:
		Walk(v, n.Array)
		Walk(v, n.Index)

	case *DynArrayIndex:
		Walk(v, n.Array)
		Walk(v, n.Index)

	case *InitArray:
		for _, e := range n.Entries {
			for _, ix := range e.Indexes {
				Walk(v, ix)
			}
			Walk(v, e.Value)
		}

	case *FunctionDecl:
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *Closure:
		Walk(v, n.Callee)
		for _, c := range n.Captures {
			Walk(v, c)
		}

	case *Trampoline:
		Walk(v, n.Callee)
		if n.Closure != nil {
			Walk(v, n.Closure)
		}

	case *Builtin:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *Call:
		if n.FuncExpr != nil {
			Walk(v, n.FuncExpr)
		}
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *ForStmt:
		Walk(v, n.Variable)
		if n.Collection != nil {
			Walk(v, n.Collection)
		} else {
			Walk(v, n.Start)
			Walk(v, n.End)
		}
		Walk(v, n.Body)

	case *WhileStmt:
		Walk(v, n.Condition)
		Walk(v, n.Body)

	case *RepeatStmt:
		Walk(v, n.Body)
		Walk(v, n.Condition)

	case *IfStmt:
		Walk(v, n.Condition)
		Walk(v, n.Consequence)
		if n.Alternative != nil {
			Walk(v, n.Alternative)
		}

	case *CaseStmt:
		Walk(v, n.Selector)
		for _, b := range n.Branches {
			for _, val := range b.Values {
				Walk(v, val)
			}
			Walk(v, b.Body)
		}
		if n.Otherwise != nil {
			Walk(v, n.Otherwise)
		}

	case *WriteStmt:
		if n.Dest != nil {
			Walk(v, n.Dest)
		}
		for _, a := range n.Args {
			Walk(v, a.Value)
			if a.Width != nil {
				Walk(v, a.Width)
			}
			if a.Precision != nil {
				Walk(v, a.Precision)
			}
		}

	case *ReadStmt:
		if n.Dest != nil {
			Walk(v, n.Dest)
		}
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *TypeCast:
		Walk(v, n.Expr)

	case *RangeCheck:
		Walk(v, n.Expr)

	case *RangeReduce:
		Walk(v, n.Expr)

	default:
		panic("ast.Walk: unexpected node type " + node.TokenLiteral())
	}

	v.Visit(nil)
}

// inspector adapts a plain func(Node) bool to the Visitor interface, the
// same trick go/ast.Inspect uses.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// It stops descending into a node's children when f returns false.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
