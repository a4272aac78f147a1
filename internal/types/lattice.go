package types

// Equal reports structural equality between two types, treating a nil pair
// as equal and a single nil as unequal. It is the free function form of
// Type.Equal so callers never need a nil check before dispatching.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// IsIntegral reports whether t is one of the integral kinds: Integer,
// Int64, Char, Boolean, Enum, or a Range whose base is itself integral
// (spec.md §4.1).
func IsIntegral(t Type) bool {
	switch v := t.(type) {
	case *PrimitiveType:
		switch v.kind {
		case Integer, Int64, Char, Boolean:
			return true
		}
		return false
	case *EnumType:
		return true
	case *RangeType:
		return IsIntegral(v.Base)
	default:
		return false
	}
}

// IsNumeric reports whether t is integral, Real, or Complex.
func IsNumeric(t Type) bool {
	if IsIntegral(t) {
		return true
	}
	p, ok := t.(*PrimitiveType)
	return ok && (p.kind == Real || p.kind == Complex)
}

// IsStringLike reports whether t is String, an array of Char, or Char
// itself.
func IsStringLike(t Type) bool {
	switch v := t.(type) {
	case *StringType:
		return true
	case *PrimitiveType:
		return v.kind == Char
	case *ArrayType:
		return Equal(v.Elem, CharType)
	default:
		return false
	}
}

// IsCompound reports whether t cannot be represented in a single machine
// scalar: arrays, records, variants, sets, files, and function pointers.
func IsCompound(t Type) bool {
	switch t.(type) {
	case *ArrayType, *DynArrayType, *RecordType, *VariantType, *SetType, *FileType, *FuncPtrType:
		return true
	default:
		return false
	}
}

func isNil(t Type) bool {
	_, ok := t.(*NilType)
	return ok
}

// NilType is the type of the `nil` literal; it is compatible with every
// pointer type but no other structural type.
type NilType struct{ backendCache }

var Nil = &NilType{}

func (n *NilType) Kind() Kind          { return Pointer }
func (n *NilType) String() string      { return "Nil" }
func (n *NilType) Equal(o Type) bool   { return isNil(o) }
func (n *NilType) BackendType() BackendRepr {
	return n.resolve(func() BackendRepr { return BackendRepr("nil") })
}

// Compatible returns the common super-type usable for a binary operation
// between a and b, or (nil, false) if no implicit conversion exists
// (spec.md §3.1 "CompatibleType").
func Compatible(a, b Type) (Type, bool) {
	if Equal(a, b) {
		return a, true
	}
	switch {
	case isKind(a, Boolean) || isKind(b, Boolean):
		// Boolean only combines with Boolean (handled by Equal above).
		return nil, false
	case IsNumeric(a) && IsNumeric(b):
		return numericCommon(a, b), true
	case IsStringLike(a) && IsStringLike(b):
		return StringValue, true
	}
	if rb, ok := b.(*RangeType); ok && IsIntegral(a) {
		return a, IsIntegral(rb.Base)
	}
	if ra, ok := a.(*RangeType); ok && IsIntegral(b) {
		return b, IsIntegral(ra.Base)
	}
	return nil, false
}

// numericCommon picks the widened numeric type for two numeric operands:
// Complex dominates, then Real, then Int64, then Integer.
func numericCommon(a, b Type) Type {
	rank := func(t Type) int {
		switch {
		case isKind(t, Complex):
			return 3
		case isKind(t, Real):
			return 2
		case isKind(t, Int64):
			return 1
		default:
			return 0
		}
	}
	ra, rb := rank(a), rank(b)
	switch {
	case ra >= 3 || rb >= 3:
		return ComplexType
	case ra >= 2 || rb >= 2:
		return RealType
	case ra >= 1 || rb >= 1:
		return Int64Type
	default:
		return IntegerType
	}
}

func isKind(t Type, k Kind) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.kind == k
}

// Assignable returns the type source must be coerced to in order to be
// assigned into a target-typed location, or (nil, false) if no coercion
// exists (spec.md §3.1 "AssignableType", §4.1 rule set).
func Assignable(target, source Type) (Type, bool) {
	if Equal(target, source) {
		return target, true
	}

	switch t := target.(type) {
	case *PrimitiveType:
		switch t.kind {
		case Int64:
			if isKind(source, Integer) {
				return target, true
			}
		case Real:
			if IsIntegral(source) {
				return target, true
			}
		case Char:
			if r, ok := source.(*RangeType); ok && IsIntegral(r.Base) {
				return target, true
			}
		}
	case *EnumType:
		if r, ok := source.(*RangeType); ok {
			if e, ok := r.Base.(*EnumType); ok && e.Equal(t) {
				return target, true
			}
		}
	case *RangeType:
		if IsIntegral(source) && IsIntegral(t.Base) {
			return target, true
		}
	case *StringType:
		if IsStringLike(source) {
			return target, true
		}
	case *ArrayType:
		if Equal(t.Elem, CharType) {
			if s, ok := source.(*StringType); ok && (s.Size == 0 || s.Size <= t.Indexes[0].Size()) {
				return target, true
			}
		}
	case *PointerType:
		if isNil(source) {
			return target, true
		}
	case *SetType:
		if s, ok := source.(*SetType); ok && s.IsEmpty() {
			return target, true
		}
	}

	if IsNumeric(target) && IsNumeric(source) {
		if common, ok := Compatible(target, source); ok && Equal(common, target) {
			return target, true
		}
	}

	return nil, false
}
