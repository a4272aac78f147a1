package types

import "sync"

// BackendRepr stands in for the concrete representation the (out of scope)
// code generator would hand back for LlvmType(); this package only needs to
// guarantee the call is idempotent and memoized, not what the backend does
// with the value.
type BackendRepr string

// Type is the interface every member of the closed type-kind set
// implements. Equal compares structural shape, not identity: two distinct
// RangeType values with the same bounds and base compare equal.
type Type interface {
	Kind() Kind
	String() string
	Equal(other Type) bool

	// BackendType returns the backend's representation of this type,
	// computing it once and caching the result on first call.
	BackendType() BackendRepr
}

// backendCache is embedded by every concrete Type to provide the memoized
// BackendType behavior spec.md §6 requires ("idempotent, memoizes the first
// result") without repeating sync.Once bookkeeping in every struct.
type backendCache struct {
	once  sync.Once
	value BackendRepr
}

func (c *backendCache) resolve(compute func() BackendRepr) BackendRepr {
	c.once.Do(func() {
		c.value = compute()
	})
	return c.value
}
