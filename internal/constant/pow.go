package constant

import "math"

// Pow raises base to an integer exponent. Supports integer and real bases.
// A negative exponent returns 1 / x^|y|; for an integer base this is an
// integer reciprocal, which truncates toward zero (spec.md §4.2, §8
// "Pow(Int(2), Int(-2)) -> Int(0)").
func Pow(base Const, exp int64) (Const, error) {
	neg := exp < 0
	n := exp
	if neg {
		n = -n
	}

	switch b := base.(type) {
	case *IntConst:
		result := int64(1)
		for i := int64(0); i < n; i++ {
			result *= b.Value
		}
		if neg {
			if result == 0 {
				return nil, errInvalidOperand("pow")
			}
			return NewInt(base.Pos(), 1/result), nil
		}
		return NewInt(base.Pos(), result), nil
	case *RealConst:
		result := math.Pow(b.Value, float64(n))
		if neg {
			result = 1 / result
		}
		return NewReal(base.Pos(), result), nil
	default:
		return nil, errInvalidOperand("pow")
	}
}

// Power raises base to a general (possibly non-integer) exponent, coercing
// both operands to real and evaluating exp(log(x)*y) (spec.md §4.2).
func Power(base, exp Const) (Const, error) {
	bv, ok1 := ToReal(base)
	ev, ok2 := ToReal(exp)
	if !ok1 || !ok2 {
		return nil, errInvalidOperand("power")
	}
	return NewReal(base.Pos(), math.Exp(math.Log(bv.Value)*ev.Value)), nil
}

func errInvalidOperand(name string) error {
	return &invalidOperandError{name}
}

type invalidOperandError struct{ name string }

func (e *invalidOperandError) Error() string {
	return "Invalid operand for " + e.name
}
