package constant

import "fmt"

// asReal extracts lhs/rhs as float64 if both are numeric (Real or Int),
// promoting any integer operand to real. This mirrors the original
// implementation's GetAsReal helper.
func asReal(l, r Const) (lv, rv float64, ok bool) {
	li, lIsInt := l.(*IntConst)
	ri, rIsInt := r.(*IntConst)
	lr, lIsReal := l.(*RealConst)
	rr, rIsReal := r.(*RealConst)

	if !lIsReal && !rIsReal {
		return 0, 0, false
	}
	if lIsReal {
		lv = lr.Value
	} else if lIsInt {
		lv = float64(li.Value)
	} else {
		return 0, 0, false
	}
	if rIsReal {
		rv = rr.Value
	} else if rIsInt {
		rv = float64(ri.Value)
	} else {
		return 0, 0, false
	}
	return lv, rv, true
}

// asInt extracts lhs/rhs as int64 only if both are IntConst.
func asInt(l, r Const) (lv, rv int64, ok bool) {
	li, lOk := l.(*IntConst)
	ri, rOk := r.(*IntConst)
	if !lOk || !rOk {
		return 0, 0, false
	}
	return li.Value, ri.Value, true
}

// asString extracts lhs/rhs as strings if both are string-like (String or
// Char, with a Char promoted to a single-character string).
func asString(l, r Const) (lv, rv string, ok bool) {
	ls, lIsStr := l.(*StringConst)
	rs, rIsStr := r.(*StringConst)
	lc, lIsChar := l.(*CharConst)
	rc, rIsChar := r.(*CharConst)

	if lIsStr {
		lv = ls.Value
	} else if lIsChar {
		lv = string(rune(lc.Value))
	} else {
		return "", "", false
	}
	if rIsStr {
		rv = rs.Value
	} else if rIsChar {
		rv = string(rune(rc.Value))
	} else {
		return "", "", false
	}
	return lv, rv, true
}

// Add implements `+`: real math (note: operands swapped, matching the
// original implementation's quirk - see spec.md §9), else integer math,
// else string-like concatenation.
func Add(l, r Const) (Const, error) {
	// The swapped-operand call is deliberate: the original `+` folding
	// calls DoRealMath(rhs, lhs, ...) while `-`, `*`, `/` do not. It is
	// harmless for a commutative operator and is retained as spec.md
	// directs rather than "fixed".
	if lv, rv, ok := asReal(r, l); ok {
		return NewReal(l.Pos(), lv+rv), nil
	}
	if lv, rv, ok := asInt(l, r); ok {
		return NewInt(l.Pos(), lv+rv), nil
	}
	if lv, rv, ok := asString(l, r); ok {
		return NewString(l.Pos(), lv+rv), nil
	}
	return nil, fmt.Errorf("Invalid operand for +")
}

func Sub(l, r Const) (Const, error) {
	if lv, rv, ok := asReal(l, r); ok {
		return NewReal(l.Pos(), lv-rv), nil
	}
	if lv, rv, ok := asInt(l, r); ok {
		return NewInt(l.Pos(), lv-rv), nil
	}
	return nil, fmt.Errorf("Invalid operand for -")
}

func Mul(l, r Const) (Const, error) {
	if lv, rv, ok := asReal(l, r); ok {
		return NewReal(l.Pos(), lv*rv), nil
	}
	if lv, rv, ok := asInt(l, r); ok {
		return NewInt(l.Pos(), lv*rv), nil
	}
	return nil, fmt.Errorf("Invalid operand for *")
}

// Div implements real division `/`: always promotes to Real, even for two
// integer operands (subrange/integer `div` is a separate operator).
func Div(l, r Const) (Const, error) {
	if lv, rv, ok := asReal(l, r); ok {
		return NewReal(l.Pos(), lv/rv), nil
	}
	if lv, rv, ok := asInt(l, r); ok {
		return NewReal(l.Pos(), float64(lv)/float64(rv)), nil
	}
	return nil, fmt.Errorf("Invalid operand for /")
}

func intOnly(name string, l, r Const, fn func(a, b int64) int64) (Const, error) {
	if lv, rv, ok := asInt(l, r); ok {
		return NewInt(l.Pos(), fn(lv, rv)), nil
	}
	return nil, fmt.Errorf("Invalid operand for %s", name)
}

// IntDiv implements Pascal integer `div`.
func IntDiv(l, r Const) (Const, error) {
	return intOnly("div", l, r, func(a, b int64) int64 { return a / b })
}

// Mod implements Pascal `mod`.
func Mod(l, r Const) (Const, error) {
	return intOnly("mod", l, r, func(a, b int64) int64 { return a % b })
}

func And(l, r Const) (Const, error) { return intOnly("and", l, r, func(a, b int64) int64 { return a & b }) }
func Or(l, r Const) (Const, error)  { return intOnly("or", l, r, func(a, b int64) int64 { return a | b }) }
func Xor(l, r Const) (Const, error) { return intOnly("xor", l, r, func(a, b int64) int64 { return a ^ b }) }
func Shl(l, r Const) (Const, error) { return intOnly("shl", l, r, func(a, b int64) int64 { return a << uint(b) }) }
func Shr(l, r Const) (Const, error) { return intOnly("shr", l, r, func(a, b int64) int64 { return int64(uint64(a) >> uint(b)) }) }

// ToInt extracts the ordinal of any integral constant (spec.md §4.2, §8
// round-trip laws).
func ToInt(c Const) (int64, bool) {
	switch v := c.(type) {
	case *IntConst:
		return v.Value, true
	case *CharConst:
		return int64(v.Value), true
	case *BoolConst:
		if v.Value {
			return 1, true
		}
		return 0, true
	case *EnumConst:
		return int64(v.Ordinal), true
	default:
		return 0, false
	}
}

// ToReal returns c as a RealConst, promoting an IntConst; other kinds fail.
func ToReal(c Const) (*RealConst, bool) {
	switch v := c.(type) {
	case *RealConst:
		return v, true
	case *IntConst:
		return NewReal(v.Pos(), float64(v.Value)), true
	default:
		return nil, false
	}
}
