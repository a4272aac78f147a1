package types

import "strings"

// FieldType pairs a field name with its declared type. spec.md §3.1 lists
// Field as its own TypeDecl kind; it is modeled here as a lightweight
// wrapper so a Record's Fields slice can carry position-independent name
// lookups without duplicating RecordType's bookkeeping.
type FieldType struct {
	backendCache
	Name string
	Type Type
}

func (f *FieldType) Kind() Kind   { return Field }
func (f *FieldType) String() string { return f.Name + ": " + f.Type.String() }

func (f *FieldType) Equal(other Type) bool {
	o, ok := other.(*FieldType)
	return ok && o.Name == f.Name && Equal(o.Type, f.Type)
}

func (f *FieldType) BackendType() BackendRepr {
	return f.resolve(func() BackendRepr { return f.Type.BackendType() })
}

// VariantType is the variant (union) part of a record: one discriminant
// field followed by a set of mutually-exclusive field lists selected by a
// tag value. spec.md §3.1 allows a Record to carry an optional variant
// part.
type VariantType struct {
	backendCache
	Tag   *FieldType
	Cases [][]*FieldType
}

func (v *VariantType) Kind() Kind { return Variant }

func (v *VariantType) String() string {
	return "variant(" + v.Tag.String() + ")"
}

func (v *VariantType) Equal(other Type) bool {
	o, ok := other.(*VariantType)
	if !ok || len(o.Cases) != len(v.Cases) || !v.Tag.Equal(o.Tag) {
		return false
	}
	for i := range v.Cases {
		if len(v.Cases[i]) != len(o.Cases[i]) {
			return false
		}
		for j := range v.Cases[i] {
			if !v.Cases[i][j].Equal(o.Cases[i][j]) {
				return false
			}
		}
	}
	return true
}

func (v *VariantType) BackendType() BackendRepr {
	return v.resolve(func() BackendRepr { return BackendRepr("variant<" + v.Tag.Name + ">") })
}

// RecordType is an ordered list of fields plus an optional variant part.
// Field names are unique within the record (spec.md §3.1).
type RecordType struct {
	backendCache
	Name    string
	Fields  []*FieldType
	Variant *VariantType
}

// NewRecord builds a RecordType, panicking if two fields share a name -
// the uniqueness invariant spec.md §3.1 states.
func NewRecord(name string, fields ...*FieldType) *RecordType {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		key := strings.ToLower(f.Name)
		if seen[key] {
			panic("types.NewRecord: duplicate field name " + f.Name)
		}
		seen[key] = true
	}
	return &RecordType{Name: name, Fields: fields}
}

// Field looks up a field by name (case-insensitive, matching Pascal-family
// identifier rules).
func (r *RecordType) Field(name string) (*FieldType, bool) {
	for _, f := range r.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return nil, false
}

func (r *RecordType) Kind() Kind { return Record }

func (r *RecordType) String() string {
	if r.Name != "" {
		return r.Name
	}
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.String()
	}
	return "record { " + strings.Join(parts, "; ") + " }"
}

// Equal for Record requires structural equality: same field sequence
// (spec.md §4.1 "Records... require structural equality (same field
// sequence)").
func (r *RecordType) Equal(other Type) bool {
	o, ok := other.(*RecordType)
	if !ok || len(o.Fields) != len(r.Fields) {
		return false
	}
	if o == r {
		// Identical records are equal; this also stops a self-referencing
		// record (a field pointing back to it) from recursing forever.
		return true
	}
	for i := range r.Fields {
		if !r.Fields[i].Equal(o.Fields[i]) {
			return false
		}
	}
	if (r.Variant == nil) != (o.Variant == nil) {
		return false
	}
	if r.Variant != nil && !r.Variant.Equal(o.Variant) {
		return false
	}
	return true
}

func (r *RecordType) BackendType() BackendRepr {
	return r.resolve(func() BackendRepr { return BackendRepr("record<" + r.Name + ">") })
}
