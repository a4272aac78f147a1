package types

import "fmt"

// DefaultMaxSetSize is the element count a set's provisional range is
// drawn from before any configured MaxSetSize truncates it (spec.md §4.1,
// §4.5 "Set expressions" default adoption).
const DefaultMaxSetSize = 256

// SetType is a bit-indexed membership collection over an integral domain.
// Both Range and Elem may be nil: an empty-set literal (`[]`) carries
// neither until later context resolves them (spec.md §3.1, §4.5 "Set
// expressions").
type SetType struct {
	backendCache
	Range *RangeType
	Elem  Type
}

// NewSet builds a SetType, truncating rng to maxSetSize elements if it
// would otherwise exceed the runtime-fixed set capacity (spec.md §3.1,
// §4.1: "the lattice truncates the effective range to [0, MaxSetSize-1]").
// rng may be nil for an unresolved set.
func NewSet(rng *RangeType, elem Type, maxSetSize int) *SetType {
	return &SetType{Range: TruncateRange(rng, maxSetSize), Elem: elem}
}

// TruncateRange clamps rng to at most maxSetSize elements, anchored at 0,
// when it would otherwise exceed the runtime set capacity. A nil rng (an
// unresolved set) or a rng already within bounds is returned unchanged.
func TruncateRange(rng *RangeType, maxSetSize int) *RangeType {
	if rng == nil || maxSetSize <= 0 {
		return rng
	}
	if rng.Size() <= maxSetSize {
		return rng
	}
	return NewRange(0, maxSetSize-1, rng.Base)
}

// IsEmpty reports whether this set has neither a resolved range nor a
// resolved element type, i.e. it is still an empty-set literal awaiting
// adoption from context.
func (s *SetType) IsEmpty() bool {
	return s.Range == nil && s.Elem == nil
}

func (s *SetType) Kind() Kind { return Set }

func (s *SetType) String() string {
	if s.IsEmpty() {
		return "set of <unresolved>"
	}
	if s.Range != nil {
		return fmt.Sprintf("set of %s", s.Range)
	}
	return fmt.Sprintf("set of %s", s.Elem)
}

func (s *SetType) Equal(other Type) bool {
	o, ok := other.(*SetType)
	if !ok {
		return false
	}
	if (s.Range == nil) != (o.Range == nil) {
		return false
	}
	if s.Range != nil && !s.Range.Equal(o.Range) {
		return false
	}
	return Equal(s.Elem, o.Elem)
}

func (s *SetType) BackendType() BackendRepr {
	return s.resolve(func() BackendRepr {
		if s.Range == nil {
			return BackendRepr("set<unresolved>")
		}
		return BackendRepr(fmt.Sprintf("set<%s>", s.Range.BackendType()))
	})
}
