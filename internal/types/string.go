package types

import "fmt"

// StringType is a String(Size) type: an array of Char indexed by [0, Size]
// (spec.md §3.1). A Size of 0 means an unconstrained (default) string.
type StringType struct {
	backendCache
	Size int
}

// DefaultStringSize is the width new string literals/types adopt when no
// explicit size is given, matching the 255-byte short-string convention
// spec.md §4.5 uses for comparison/concat promotion ("String(255)").
const DefaultStringSize = 255

var (
	// StringValue is the canonical String(DefaultStringSize) type most
	// expressions carry.
	StringValue = &StringType{Size: DefaultStringSize}
)

func NewString(size int) *StringType {
	return &StringType{Size: size}
}

func (s *StringType) Kind() Kind { return String }

func (s *StringType) String() string {
	if s.Size == 0 {
		return "String"
	}
	return fmt.Sprintf("String(%d)", s.Size)
}

func (s *StringType) Equal(other Type) bool {
	o, ok := other.(*StringType)
	return ok && o.Size == s.Size
}

func (s *StringType) BackendType() BackendRepr {
	return s.resolve(func() BackendRepr {
		return BackendRepr(fmt.Sprintf("string<%d>", s.Size))
	})
}
