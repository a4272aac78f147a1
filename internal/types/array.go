package types

import "strings"

// ArrayType is an ordered, non-empty sequence of index RangeType
// declarations over a single element type (spec.md §3.1). Multi-dimensional
// arrays carry more than one index range.
type ArrayType struct {
	backendCache
	Elem    Type
	Indexes []*RangeType
}

// NewArray builds an ArrayType. It panics on an empty index list: spec.md
// requires arrays carry a non-empty sequence of index ranges.
func NewArray(elem Type, indexes ...*RangeType) *ArrayType {
	if len(indexes) == 0 {
		panic("types.NewArray: array must have at least one index range")
	}
	return &ArrayType{Elem: elem, Indexes: indexes}
}

func (a *ArrayType) Kind() Kind { return Array }

func (a *ArrayType) String() string {
	parts := make([]string, len(a.Indexes))
	for i, idx := range a.Indexes {
		parts[i] = idx.String()
	}
	return "array[" + strings.Join(parts, ", ") + "] of " + a.Elem.String()
}

func (a *ArrayType) Equal(other Type) bool {
	o, ok := other.(*ArrayType)
	if !ok || len(o.Indexes) != len(a.Indexes) || !Equal(o.Elem, a.Elem) {
		return false
	}
	for i := range a.Indexes {
		if !a.Indexes[i].Equal(o.Indexes[i]) {
			return false
		}
	}
	return true
}

func (a *ArrayType) BackendType() BackendRepr {
	return a.resolve(func() BackendRepr {
		return BackendRepr("array<" + string(a.Elem.BackendType()) + ">")
	})
}

// DynArrayType is an array whose bound is resolved at runtime rather than
// fixed at declaration; it carries only the element type. Indexing into a
// dynamic array only needs an element-type check, never a compile-time
// range check (spec.md §4.5 "Array and DynArray indexing").
type DynArrayType struct {
	backendCache
	Elem Type
}

func NewDynArray(elem Type) *DynArrayType {
	return &DynArrayType{Elem: elem}
}

func (a *DynArrayType) Kind() Kind   { return Array }
func (a *DynArrayType) String() string { return "array of " + a.Elem.String() }

func (a *DynArrayType) Equal(other Type) bool {
	o, ok := other.(*DynArrayType)
	return ok && Equal(o.Elem, a.Elem)
}

func (a *DynArrayType) BackendType() BackendRepr {
	return a.resolve(func() BackendRepr {
		return BackendRepr("dynarray<" + string(a.Elem.BackendType()) + ">")
	})
}
