package types

// PointerType is either incomplete (carrying only the name of a
// forward-referenced target type) or resolved (carrying the target Type).
// The transition from incomplete to resolved is one-way: once Resolve has
// been called, the pointer can never return to the incomplete state
// (spec.md §3.1, §9 "Late pointer resolution").
type PointerType struct {
	backendCache
	Name   string // target type name, meaningful only while incomplete
	Target Type   // nil until resolved
}

// NewIncompletePointer builds a pointer awaiting resolution of its target
// type name, e.g. a `^TNode` appearing before `TNode` is declared.
func NewIncompletePointer(targetName string) *PointerType {
	return &PointerType{Name: targetName}
}

// NewPointer builds an already-resolved pointer to target.
func NewPointer(target Type) *PointerType {
	return &PointerType{Target: target}
}

// IsIncomplete reports whether Resolve has not yet been called.
func (p *PointerType) IsIncomplete() bool {
	return p.Target == nil
}

// Resolve fixes the pointer's target type. It panics if called twice: the
// lattice forbids re-resolving an already-resolved pointer, and forbids
// every operation but resolution on an incomplete one.
func (p *PointerType) Resolve(target Type) {
	if p.Target != nil {
		panic("types: pointer to " + p.Name + " already resolved")
	}
	p.Target = target
}

func (p *PointerType) Kind() Kind { return Pointer }

func (p *PointerType) String() string {
	if p.IsIncomplete() {
		return "^" + p.Name
	}
	return "^" + p.Target.String()
}

func (p *PointerType) Equal(other Type) bool {
	o, ok := other.(*PointerType)
	if !ok {
		return false
	}
	if p.IsIncomplete() || o.IsIncomplete() {
		return false
	}
	return Equal(p.Target, o.Target)
}

func (p *PointerType) BackendType() BackendRepr {
	return p.resolve(func() BackendRepr {
		if p.IsIncomplete() {
			panic("types: BackendType called on incomplete pointer to " + p.Name)
		}
		return BackendRepr("ptr<" + string(p.Target.BackendType()) + ">")
	})
}
