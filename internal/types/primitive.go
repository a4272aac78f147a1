package types

// PrimitiveType represents one of the named scalar singletons: Integer,
// Int64, Real, Char, Boolean, Complex, Void. Instances are never
// constructed outside this file; callers obtain them through Get or the
// package-level singleton variables.
type PrimitiveType struct {
	backendCache
	kind Kind
}

func (t *PrimitiveType) Kind() Kind   { return t.kind }
func (t *PrimitiveType) String() string { return t.kind.String() }

func (t *PrimitiveType) Equal(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.kind == t.kind
}

func (t *PrimitiveType) BackendType() BackendRepr {
	return t.resolve(func() BackendRepr { return BackendRepr(t.kind.String()) })
}

// Singletons for the named primitive kinds (spec.md §3.1: "named
// primitives... are singletons accessible by kind").
var (
	IntegerType = &PrimitiveType{kind: Integer}
	Int64Type   = &PrimitiveType{kind: Int64}
	RealType    = &PrimitiveType{kind: Real}
	CharType    = &PrimitiveType{kind: Char}
	BooleanType = &PrimitiveType{kind: Boolean}
	ComplexType = &PrimitiveType{kind: Complex}
	VoidType    = &PrimitiveType{kind: Void}
)

// Get returns the canonical singleton for one of the primitive kinds. It
// panics if kind does not name a primitive singleton; structural kinds
// (Array, Range, Set, ...) must be built with their own constructors.
func Get(kind Kind) Type {
	switch kind {
	case Integer:
		return IntegerType
	case Int64:
		return Int64Type
	case Real:
		return RealType
	case Char:
		return CharType
	case Boolean:
		return BooleanType
	case Complex:
		return ComplexType
	case Void:
		return VoidType
	default:
		panic("types.Get: " + kind.String() + " is not a primitive singleton kind")
	}
}
