package types

import "testing"

func TestNewArrayPanicsOnNoIndexes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewArray with no indexes should panic")
		}
	}()
	NewArray(IntegerType)
}

func TestNewArrayMultiDimensional(t *testing.T) {
	rows := NewRange(1, 3, IntegerType)
	cols := NewRange(1, 4, IntegerType)
	arr := NewArray(RealType, rows, cols)
	if arr.Kind() != Array {
		t.Fatalf("Kind() = %v, want Array", arr.Kind())
	}
	if len(arr.Indexes) != 2 {
		t.Fatalf("len(Indexes) = %d, want 2", len(arr.Indexes))
	}
	if !Equal(arr.Elem, RealType) {
		t.Fatalf("Elem = %v, want RealType", arr.Elem)
	}
}

func TestNewDynArray(t *testing.T) {
	da := NewDynArray(StringValue)
	if da.Kind() != Array {
		t.Fatalf("Kind() = %v, want Array", da.Kind())
	}
	if !Equal(da.Elem, StringValue) {
		t.Fatalf("Elem = %v, want StringValue", da.Elem)
	}
}

func TestNewEnumAssignsOrdinals(t *testing.T) {
	e := NewEnum("Color", "Red", "Green", "Blue")
	for i, name := range []string{"Red", "Green", "Blue"} {
		ord, ok := e.Ordinal(name)
		if !ok || ord != i {
			t.Errorf("Ordinal(%q) = (%d, %v), want (%d, true)", name, ord, ok, i)
		}
	}
	if _, ok := e.Ordinal("Purple"); ok {
		t.Error("Ordinal(\"Purple\") should not be found")
	}
}

func TestPointerResolution(t *testing.T) {
	p := NewIncompletePointer("TNode")
	if !p.IsIncomplete() {
		t.Fatal("freshly built pointer should be incomplete")
	}
	rec := NewRecord("TNode", &FieldType{Name: "Next", Type: p})
	p.Resolve(rec)
	if p.IsIncomplete() {
		t.Fatal("pointer should be resolved after Resolve")
	}
	if !Equal(p.Target, rec) {
		t.Errorf("Target = %v, want %v", p.Target, rec)
	}
}

func TestPointerResolveTwicePanics(t *testing.T) {
	p := NewPointer(IntegerType)
	defer func() {
		if recover() == nil {
			t.Fatal("resolving an already-resolved pointer should panic")
		}
	}()
	p.Resolve(RealType)
}

func TestNewRecordRejectsDuplicateFieldNames(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate field names should panic")
		}
	}()
	NewRecord("TPoint",
		&FieldType{Name: "X", Type: IntegerType},
		&FieldType{Name: "x", Type: RealType},
	)
}

func TestNewRecordFields(t *testing.T) {
	rec := NewRecord("TPoint",
		&FieldType{Name: "X", Type: IntegerType},
		&FieldType{Name: "Y", Type: IntegerType},
	)
	if rec.Kind() != Record {
		t.Fatalf("Kind() = %v, want Record", rec.Kind())
	}
	if len(rec.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(rec.Fields))
	}
}

func TestNewFuncPtrMatchesModuloClosure(t *testing.T) {
	plain := NewFuncPtr(VoidType, Param{Type: IntegerType})
	withClosure := NewFuncPtr(VoidType, Param{Type: IntegerType}, Param{Type: NewPointer(VoidType)})
	if !plain.MatchesModuloClosure(withClosure) {
		t.Error("signatures differing only by a trailing closure slot should match")
	}
	mismatched := NewFuncPtr(IntegerType, Param{Type: IntegerType})
	if plain.MatchesModuloClosure(mismatched) {
		t.Error("signatures with different return types should not match")
	}
}

func TestNewFileAndNewText(t *testing.T) {
	f := NewFile(IntegerType)
	if f.IsText() {
		t.Error("file of Integer should not be Text")
	}
	if f.Kind() != File {
		t.Errorf("Kind() = %v, want File", f.Kind())
	}

	text := NewText()
	if !text.IsText() {
		t.Error("NewText() should be Text")
	}
	if text.Kind() != Text {
		t.Errorf("Kind() = %v, want Text", text.Kind())
	}
	if !Equal(text.Elem, CharType) {
		t.Errorf("Text Elem = %v, want CharType", text.Elem)
	}
}

func TestNewSetTruncatesOversizedRange(t *testing.T) {
	wide := NewRange(0, 1000, IntegerType)
	s := NewSet(wide, IntegerType, 16)
	if s.Range.Size() != 16 {
		t.Errorf("Range.Size() = %d, want 16", s.Range.Size())
	}
}

func TestNewSetLeavesSmallRangeUntouched(t *testing.T) {
	small := NewRange(1, 5, IntegerType)
	s := NewSet(small, IntegerType, 256)
	if !s.Range.Equal(small) {
		t.Errorf("Range = %v, want unchanged %v", s.Range, small)
	}
}

func TestNewSetEmpty(t *testing.T) {
	s := NewSet(nil, nil, DefaultMaxSetSize)
	if !s.IsEmpty() {
		t.Error("a set built from nil range and elem should be IsEmpty")
	}
}
