package types

import "strings"

// EnumMember is one (name, ordinal) pair of an EnumType. Ordinals run
// 0..n-1 in declaration order (spec.md §3.1).
type EnumMember struct {
	Name    string
	Ordinal int
}

// EnumType is an ordered list of named members.
type EnumType struct {
	backendCache
	Name    string
	Members []EnumMember
}

// NewEnum builds an EnumType, assigning ordinals 0..n-1 in the given order.
func NewEnum(name string, memberNames ...string) *EnumType {
	members := make([]EnumMember, len(memberNames))
	for i, n := range memberNames {
		members[i] = EnumMember{Name: n, Ordinal: i}
	}
	return &EnumType{Name: name, Members: members}
}

// Ordinal looks up a member's ordinal by name (case-sensitive; the symbol
// stack is responsible for case folding before calling in).
func (e *EnumType) Ordinal(name string) (int, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m.Ordinal, true
		}
	}
	return 0, false
}

func (e *EnumType) Kind() Kind { return Enum }

func (e *EnumType) String() string {
	if e.Name != "" {
		return e.Name
	}
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func (e *EnumType) Equal(other Type) bool {
	o, ok := other.(*EnumType)
	if !ok || len(o.Members) != len(e.Members) {
		return false
	}
	if e.Name != "" || o.Name != "" {
		return e.Name == o.Name
	}
	for i := range e.Members {
		if e.Members[i] != o.Members[i] {
			return false
		}
	}
	return true
}

func (e *EnumType) BackendType() BackendRepr {
	return e.resolve(func() BackendRepr { return BackendRepr("enum<" + e.Name + ">") })
}
