package types

import "fmt"

// RangeType is an inclusive [Start, End] interval over an integral Base
// type. It is used both as an array index domain and as a scalar subrange
// type (e.g. `type TDigit = 0..9`). spec.md §3.1 requires End > Start.
type RangeType struct {
	backendCache
	Base  Type
	Start int
	End   int
}

// NewRange constructs a RangeType. It panics if end <= start, matching the
// invariant the original implementation's Range constructor asserts.
func NewRange(start, end int, base Type) *RangeType {
	if end <= start {
		panic(fmt.Sprintf("types.NewRange: range should have start before end, got [%d, %d]", start, end))
	}
	return &RangeType{Start: start, End: end, Base: base}
}

// Size returns the number of integral values the range spans.
func (r *RangeType) Size() int {
	return r.End - r.Start + 1
}

func (r *RangeType) Kind() Kind { return Range }

func (r *RangeType) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

func (r *RangeType) Equal(other Type) bool {
	o, ok := other.(*RangeType)
	if !ok {
		return false
	}
	return o.Start == r.Start && o.End == r.End && Equal(o.Base, r.Base)
}

func (r *RangeType) BackendType() BackendRepr {
	return r.resolve(func() BackendRepr {
		return BackendRepr(fmt.Sprintf("range<%s>", r.Base.BackendType()))
	})
}
