package constant

import (
	"fmt"
	"math"
	"strings"
)

// intrinsic describes one foldable built-in function: its arity bounds and
// its evaluation rule.
type intrinsic struct {
	minArgs int
	maxArgs int
	eval    func(pos Const, args []Const) (Const, error)
}

var registry = map[string]intrinsic{
	"chr": {1, 1, func(_ Const, a []Const) (Const, error) {
		i, ok := asSingleInt(a[0])
		if !ok {
			return nil, nil
		}
		return NewChar(a[0].Pos(), byte(i)), nil
	}},
	"succ": {1, 2, func(_ Const, a []Const) (Const, error) { return stepConst(a, +1) }},
	"pred": {1, 2, func(_ Const, a []Const) (Const, error) { return stepConst(a, -1) }},
	"ord": {1, 1, func(_ Const, a []Const) (Const, error) {
		i, ok := ToInt(a[0])
		if !ok {
			return nil, nil
		}
		return NewInt(a[0].Pos(), i), nil
	}},
	"length": {1, 1, func(_ Const, a []Const) (Const, error) {
		switch v := a[0].(type) {
		case *StringConst:
			return NewInt(a[0].Pos(), int64(len(v.Value))), nil
		case *SetConst:
			return NewInt(a[0].Pos(), int64(len(v.Elements))), nil
		default:
			return nil, nil
		}
	}},
	"sin":  {1, 1, realFunc(math.Sin)},
	"cos":  {1, 1, realFunc(math.Cos)},
	"ln":   {1, 1, realFunc(math.Log)},
	"exp":  {1, 1, realFunc(math.Exp)},
	"frac": {1, 1, realFunc(func(x float64) float64 { _, f := math.Modf(x); return f })},
	"int": {1, 1, func(_ Const, a []Const) (Const, error) {
		r, ok := ToReal(a[0])
		if !ok {
			return nil, nil
		}
		sign := 1.0
		x := r.Value
		if x < 0 {
			sign = -1
			x = -x
		}
		return NewReal(a[0].Pos(), sign*math.Floor(x)), nil
	}},
	"trunc": {1, 1, func(_ Const, a []Const) (Const, error) {
		r, ok := ToReal(a[0])
		if !ok {
			return nil, nil
		}
		return NewInt(a[0].Pos(), int64(math.Trunc(r.Value))), nil
	}},
	"round": {1, 1, func(_ Const, a []Const) (Const, error) {
		r, ok := ToReal(a[0])
		if !ok {
			return nil, nil
		}
		return NewInt(a[0].Pos(), int64(math.Round(r.Value))), nil
	}},
	"odd": {1, 1, func(_ Const, a []Const) (Const, error) {
		i, ok := asSingleInt(a[0])
		if !ok {
			return nil, nil
		}
		return NewBool(a[0].Pos(), i%2 != 0), nil
	}},
}

func asSingleInt(c Const) (int64, bool) {
	if ic, ok := c.(*IntConst); ok {
		return ic.Value, true
	}
	return 0, false
}

func realFunc(fn func(float64) float64) func(Const, []Const) (Const, error) {
	return func(_ Const, a []Const) (Const, error) {
		r, ok := ToReal(a[0])
		if !ok {
			return nil, nil
		}
		return NewReal(a[0].Pos(), fn(r.Value)), nil
	}
}

// stepConst implements succ/pred: same-typed v +/- n (n defaults to 1).
func stepConst(args []Const, dir int64) (Const, error) {
	v := args[0]
	n := int64(1)
	if len(args) == 2 {
		i, ok := asSingleInt(args[1])
		if !ok {
			return nil, nil
		}
		n = i
	}
	delta := dir * n

	switch c := v.(type) {
	case *IntConst:
		return NewInt(c.Pos(), c.Value+delta), nil
	case *CharConst:
		return NewChar(c.Pos(), byte(int64(c.Value)+delta)), nil
	case *EnumConst:
		return NewEnum(c.Pos(), c.Type, c.Ordinal+int(delta)), nil
	case *BoolConst:
		cur := int64(0)
		if c.Value {
			cur = 1
		}
		return NewBool(c.Pos(), cur+delta != 0), nil
	default:
		return nil, nil
	}
}

// IsEvaluableFunc reports whether name (case-insensitive) is a registered
// foldable intrinsic.
func IsEvaluableFunc(name string) bool {
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Eval folds a call to the named intrinsic. A wrong arity yields a
// formatted error; a wrong argument type yields (nil, nil) so the caller
// can fall back to runtime evaluation (spec.md §4.2, §7).
func Eval(name string, args []Const) (Const, error) {
	in, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown intrinsic %q", name)
	}
	if len(args) < in.minArgs || len(args) > in.maxArgs {
		return nil, fmt.Errorf("%s expects %d to %d argument(s), got %d", name, in.minArgs, in.maxArgs, len(args))
	}
	return in.eval(nil, args)
}
