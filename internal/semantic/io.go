package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

// destFile returns dest's FileType and true when dest is an expression
// typed as a File; a nil dest (the default console stream) or any other
// type yields (nil, false) (spec.md §4.5 "Read / Write I/O").
func destFile(dest ast.Expression) (*types.FileType, bool) {
	if dest == nil {
		return nil, false
	}
	f, ok := dest.Type().(*types.FileType)
	return f, ok
}

// analyzeWrite implements spec.md §4.5 "Read / Write I/O" for Write/
// WriteLn/WriteStr.
func (a *Analyzer) analyzeWrite(n *ast.WriteStmt) ast.Statement {
	if n.Dest != nil {
		n.Dest = a.analyzeExpr(n.Dest)
	}

	file, hasFile := destFile(n.Dest)
	textMode := n.ToStr || !hasFile || file.IsText()

	if !textMode {
		if len(n.Args) != 1 {
			a.addError(n.Pos(), "Binary Write requires exactly one argument")
			return n
		}
		arg := &n.Args[0]
		arg.Value = a.analyzeExpr(arg.Value)
		if target, ok := types.Assignable(file.Elem, arg.Value.Type()); ok {
			arg.Value = cast(arg.Value, target)
		} else {
			a.addError(arg.Value.Pos(), "Incompatible type in expression")
		}
		return n
	}

	for i := range n.Args {
		arg := &n.Args[i]
		arg.Value = a.analyzeExpr(arg.Value)
		if !isSimpleOrStringLike(arg.Value.Type()) {
			a.addError(arg.Value.Pos(), "Write argument must be a simple, string, or char-array value")
		}
		if arg.Width != nil {
			arg.Width = a.analyzeExpr(arg.Width)
			if !types.Equal(arg.Width.Type(), types.IntegerType) {
				a.addError(arg.Width.Pos(), "Write field width must be an Integer")
			}
		}
		if arg.Precision != nil {
			arg.Precision = a.analyzeExpr(arg.Precision)
			if !types.IsNumeric(arg.Value.Type()) || types.Equal(arg.Value.Type(), types.IntegerType) {
				a.addError(arg.Precision.Pos(), "Write precision requires a real argument")
			}
		}
	}
	return n
}

// analyzeRead implements spec.md §4.5 "Read / Write I/O" for Read/ReadLn/
// ReadStr.
func (a *Analyzer) analyzeRead(n *ast.ReadStmt) ast.Statement {
	if n.Dest != nil {
		n.Dest = a.analyzeExpr(n.Dest)
	}

	file, hasFile := destFile(n.Dest)
	textMode := n.FromStr || !hasFile || file.IsText()

	if !textMode {
		if len(n.Args) != 1 {
			a.addError(n.Pos(), "Binary Read requires exactly one argument")
			return n
		}
		n.Args[0] = a.analyzeExpr(n.Args[0])
		if !isAddressable(n.Args[0]) {
			a.addError(n.Args[0].Pos(), "Read argument must be addressable")
		}
		if _, ok := types.Assignable(n.Args[0].Type(), file.Elem); !ok {
			a.addError(n.Args[0].Pos(), "Incompatible type in expression")
		}
		return n
	}

	for i, arg := range n.Args {
		n.Args[i] = a.analyzeExpr(arg)
		if !isAddressable(n.Args[i]) {
			a.addError(n.Args[i].Pos(), "Read argument must be addressable")
		}
		if !isSimpleOrStringLike(n.Args[i].Type()) {
			a.addError(n.Args[i].Pos(), "Read argument must be a simple, string, or char-array value")
		}
	}
	return n
}

func isSimpleOrStringLike(t types.Type) bool {
	return types.IsNumeric(t) || isBooleanType(t) || types.IsStringLike(t)
}
