package semantic

import (
	"github.com/cwbudde/go-pascal-sema/internal/ast"
	"github.com/cwbudde/go-pascal-sema/internal/types"
)

func isComparisonOp(op string) bool {
	switch op {
	case "=", "<>", "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}

func isEqualityOp(op string) bool {
	return op == "=" || op == "<>"
}

func isPowerOp(op string) bool {
	return op == "**" || op == "^"
}

func isBitwiseOp(op string) bool {
	return op == "and" || op == "or" || op == "xor"
}

// analyzeBinary implements the twelve-rule dispatch spec.md §4.5 "Binary
// expressions" describes, in order: the first rule that applies to the
// operator/operand-kind combination determines the result.
func (a *Analyzer) analyzeBinary(n *ast.Binary) ast.Expression {
	n.Left = a.analyzeExpr(n.Left)
	n.Right = a.analyzeExpr(n.Right)
	lty, rty := n.Left.Type(), n.Right.Type()

	// Rule 1: `in`
	if n.Op == "in" {
		if !types.IsIntegral(lty) {
			a.addError(n.Pos(), "Left-hand side of 'in' must be an integral value")
		}
		rset, ok := isSetType(rty)
		if !ok {
			a.addError(n.Pos(), "Right-hand side of 'in' must be a set")
		} else if rset.IsEmpty() {
			rset.Elem = lty
		}
		n.SetType(types.BooleanType)
		return n
	}

	// Rule 2: set op set
	lset, lIsSet := isSetType(lty)
	rset, rIsSet := isSetType(rty)
	if lIsSet && rIsSet {
		unified := a.binarySetUpdate(n, lset, rset)
		if isComparisonOp(n.Op) {
			n.SetType(types.BooleanType)
		} else {
			n.SetType(unified)
		}
		return n
	}

	// Rule 3: comparisons
	if isComparisonOp(n.Op) {
		if isComplexType(lty) && isComplexType(rty) {
			if !isEqualityOp(n.Op) {
				a.addError(n.Pos(), "Complex values only support '=' and '<>'")
			}
			n.SetType(types.BooleanType)
			return n
		}
		if types.IsStringLike(lty) || types.IsStringLike(rty) {
			n.Left = cast(n.Left, types.StringValue)
			n.Right = cast(n.Right, types.StringValue)
			n.SetType(types.BooleanType)
			return n
		}
		// Rule 9: pointer vs nil
		if isPointerType(lty) && isNilLit(n.Right) {
			n.Right = cast(n.Right, lty)
			n.SetType(types.BooleanType)
			return n
		}
		if isPointerType(rty) && isNilLit(n.Left) {
			n.Left = cast(n.Left, rty)
			n.SetType(types.BooleanType)
			return n
		}
		// Rule 10: subrange vs integer literal
		if _, ok := isRangeType(lty); ok {
			if _, litOK := isIntegerLit(n.Right); litOK {
				n.SetType(types.BooleanType)
				return n
			}
		}
		if _, ok := isRangeType(rty); ok {
			if _, litOK := isIntegerLit(n.Left); litOK {
				n.SetType(types.BooleanType)
				return n
			}
		}
	}

	// Rule 4: and_then / or_else
	if n.Op == "and_then" || n.Op == "or_else" {
		if !isBooleanType(lty) || !isBooleanType(rty) {
			a.addError(n.Pos(), "'%s' requires boolean operands", n.Op)
		}
		n.SetType(types.BooleanType)
		return n
	}

	// Rule 5: string concatenation
	if n.Op == "+" && types.IsStringLike(lty) && types.IsStringLike(rty) {
		n.Left = cast(n.Left, types.StringValue)
		n.Right = cast(n.Right, types.StringValue)
		n.SetType(types.StringValue)
		return n
	}

	// Rule 6: Pow on complex left
	if isPowerOp(n.Op) && isComplexType(lty) {
		if !types.IsIntegral(rty) {
			a.addError(n.Pos(), "Exponent of a complex power must be an integer")
		}
		n.Right = cast(n.Right, types.RealType)
		n.SetType(lty)
		return n
	}

	// Rule 7: real divide
	if n.Op == "/" {
		if !types.IsNumeric(lty) || !types.IsNumeric(rty) {
			a.addError(n.Pos(), "Invalid operand for /")
			n.SetType(types.RealType)
			return n
		}
		target := types.Type(types.RealType)
		if isComplexType(lty) || isComplexType(rty) {
			target = types.ComplexType
		}
		n.Left = cast(n.Left, target)
		n.Right = cast(n.Right, target)
		n.SetType(target)
		return n
	}

	// Rule 8: general power
	if isPowerOp(n.Op) {
		if !types.IsNumeric(lty) || !types.IsNumeric(rty) {
			a.addError(n.Pos(), "Invalid operand for %s", n.Op)
		}
		if isComplexType(rty) {
			a.addError(n.Pos(), "Exponent may not be complex")
		}
		target := types.Type(types.RealType)
		if isComplexType(lty) {
			target = types.ComplexType
		}
		n.Right = cast(n.Right, types.RealType)
		n.SetType(target)
		return n
	}

	// Rule 11: operator-specific secondary rules
	switch n.Op {
	case "div", "mod":
		if !types.IsIntegral(lty) || !types.IsIntegral(rty) || types.Equal(lty, types.CharType) || types.Equal(rty, types.CharType) {
			a.addError(n.Pos(), "Invalid operand for %s", n.Op)
		}
		n.SetType(types.IntegerType)
		return n

	case "shl", "shr":
		if !types.IsIntegral(lty) || !types.IsIntegral(rty) {
			a.addError(n.Pos(), "Invalid operand for %s", n.Op)
		}
		n.SetType(types.IntegerType)
		return n

	case "and", "or", "xor":
		if isBooleanType(lty) && isBooleanType(rty) {
			n.SetType(types.BooleanType)
			return n
		}
		if !types.IsIntegral(lty) || !types.IsIntegral(rty) {
			a.addError(n.Pos(), "Invalid operand for %s", n.Op)
		}
		n.SetType(types.IntegerType)
		return n

	case "+", "-", "*":
		if types.Equal(lty, types.CharType) || types.Equal(rty, types.CharType) {
			a.addError(n.Pos(), "Invalid operand for %s", n.Op)
			n.SetType(lty)
			return n
		}
		if types.IsNumeric(lty) && types.IsNumeric(rty) {
			common, ok := types.Compatible(lty, rty)
			if !ok {
				a.addError(n.Pos(), "Invalid operand for %s", n.Op)
				n.SetType(lty)
				return n
			}
			n.Left = cast(n.Left, common)
			n.Right = cast(n.Right, common)
			n.SetType(common)
			return n
		}
	}

	// Rule 12: final fallback
	common, ok := types.Compatible(lty, rty)
	if !ok {
		a.addError(n.Pos(), "Incompatible type in expression")
		n.SetType(lty)
		return n
	}
	if !types.IsCompound(common) {
		n.Left = cast(n.Left, common)
		n.Right = cast(n.Right, common)
	}
	n.SetType(common)
	return n
}

// binarySetUpdate implements spec.md §4.5 "Binary set update (set-set
// operations)".
func (a *Analyzer) binarySetUpdate(n *ast.Binary, l, r *types.SetType) types.Type {
	switch {
	case l.IsEmpty() && r.IsEmpty():
		rng := types.TruncateRange(types.NewRange(0, types.DefaultMaxSetSize-1, types.IntegerType), a.cfg.MaxSetSize)
		widened := types.NewSet(rng, types.IntegerType, a.cfg.MaxSetSize)
		n.Left = cast(n.Left, widened)
		n.Right = cast(n.Right, widened)
		return widened

	case l.IsEmpty():
		l.Elem = r.Elem
		l.Range = r.Range
		return r

	case r.IsEmpty():
		r.Elem = l.Elem
		r.Range = l.Range
		return l
	}

	if l.Elem != nil && r.Elem != nil && !types.Equal(l.Elem, r.Elem) {
		a.addError(n.Pos(), "Incompatible set element types")
		return l
	}

	if l.Range == nil && r.Range != nil {
		return r
	}
	if r.Range == nil && l.Range != nil {
		return l
	}
	if l.Range == nil && r.Range == nil {
		return l
	}

	if l.Range.Start == r.Range.Start && l.Range.End == r.Range.End {
		return l
	}

	start := min(l.Range.Start, r.Range.Start)
	end := max(l.Range.End, r.Range.End)
	widened := types.NewSet(types.TruncateRange(types.NewRange(start, end, l.Range.Base), a.cfg.MaxSetSize), l.Elem, a.cfg.MaxSetSize)
	n.Left = cast(n.Left, widened)
	n.Right = cast(n.Right, widened)
	return widened
}
