package types

import "strings"

// Param describes one parameter of a FuncPtrType: its type and whether it
// is passed by reference (spec.md §3.1 "reference-mode per parameter").
type Param struct {
	Type  Type
	ByRef bool
}

// FuncPtrType is a procedure/function signature usable as a first-class
// value: a parameter list, return type (Void for a procedure), and
// reference-mode per parameter (spec.md §3.1).
type FuncPtrType struct {
	backendCache
	Params []Param
	Return Type
}

func NewFuncPtr(ret Type, params ...Param) *FuncPtrType {
	return &FuncPtrType{Return: ret, Params: params}
}

// MatchesModuloClosure reports whether two function-pointer signatures
// agree on every parameter and return type, ignoring an implicit trailing
// closure-capture slot a nested function's prototype may carry. This is
// the "matches... modulo the closure slot" check spec.md §4.5 "Calls" uses
// to decide whether a Trampoline is needed.
func (f *FuncPtrType) MatchesModuloClosure(other *FuncPtrType) bool {
	if !Equal(f.Return, other.Return) {
		return false
	}
	n := len(f.Params)
	if len(other.Params) < n {
		n = len(other.Params)
	}
	if abs(len(f.Params)-len(other.Params)) > 1 {
		return false
	}
	for i := 0; i < n; i++ {
		if f.Params[i].ByRef != other.Params[i].ByRef || !Equal(f.Params[i].Type, other.Params[i].Type) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (f *FuncPtrType) Kind() Kind { return FuncPtr }

func (f *FuncPtrType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		prefix := ""
		if p.ByRef {
			prefix = "var "
		}
		parts[i] = prefix + p.Type.String()
	}
	sig := "function(" + strings.Join(parts, ", ") + ")"
	if f.Return != nil && f.Return.Kind() != Void {
		sig += ": " + f.Return.String()
	}
	return sig
}

// Equal requires exact prototype equality: same parameter types/modes and
// same return type (spec.md §4.1 "function pointers... require structural
// equality (same prototype)").
func (f *FuncPtrType) Equal(other Type) bool {
	o, ok := other.(*FuncPtrType)
	if !ok || len(o.Params) != len(f.Params) || !Equal(f.Return, o.Return) {
		return false
	}
	for i := range f.Params {
		if f.Params[i].ByRef != o.Params[i].ByRef || !Equal(f.Params[i].Type, o.Params[i].Type) {
			return false
		}
	}
	return true
}

func (f *FuncPtrType) BackendType() BackendRepr {
	return f.resolve(func() BackendRepr { return BackendRepr("funcptr<" + f.String() + ">") })
}
