package types

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestTypeStringRendering snapshots String() across a representative
// sample of every Type variant, the rendering spec.md §6 requires to be
// stable for diagnostic output.
func TestTypeStringRendering(t *testing.T) {
	point := NewRecord("TPoint",
		&FieldType{Name: "X", Type: IntegerType},
		&FieldType{Name: "Y", Type: IntegerType},
	)
	anonRecord := NewRecord("",
		&FieldType{Name: "Tag", Type: BooleanType},
	)

	tests := []struct {
		name string
		typ  Type
	}{
		{"primitive integer", IntegerType},
		{"primitive string", StringValue},
		{"array", NewArray(RealType, NewRange(1, 10, IntegerType))},
		{"multi-dim array", NewArray(CharType, NewRange(1, 3, IntegerType), NewRange(1, 4, IntegerType))},
		{"dynarray", NewDynArray(StringValue)},
		{"range", NewRange(1, 10, IntegerType)},
		{"enum", NewEnum("Color", "Red", "Green", "Blue")},
		{"named pointer incomplete", NewIncompletePointer("TNode")},
		{"named pointer resolved", NewPointer(IntegerType)},
		{"named record", point},
		{"anonymous record", anonRecord},
		{"funcptr procedure", NewFuncPtr(VoidType, Param{Type: IntegerType}, Param{Type: RealType, ByRef: true})},
		{"funcptr function", NewFuncPtr(BooleanType, Param{Type: IntegerType})},
		{"file of integer", NewFile(IntegerType)},
		{"text file", NewText()},
		{"set", NewSet(NewRange(0, 15, IntegerType), IntegerType, DefaultMaxSetSize)},
		{"empty set", NewSet(nil, nil, DefaultMaxSetSize)},
		{"nil type", Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, tt.typ.String())
		})
	}
}
