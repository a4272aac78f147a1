package types

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same primitive", IntegerType, IntegerType, true},
		{"different primitive", IntegerType, RealType, false},
		{"equal ranges", NewRange(1, 10, IntegerType), NewRange(1, 10, IntegerType), true},
		{"different range bounds", NewRange(1, 10, IntegerType), NewRange(1, 11, IntegerType), false},
		{"equal enums", NewEnum("Color", "Red", "Green"), NewEnum("Color", "Red", "Green"), true},
		{"different enum names", NewEnum("Color", "Red"), NewEnum("Shade", "Red"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsIntegral(t *testing.T) {
	tests := []struct {
		t    Type
		want bool
	}{
		{IntegerType, true},
		{Int64Type, true},
		{CharType, true},
		{BooleanType, true},
		{NewEnum("E", "A"), true},
		{NewRange(1, 5, IntegerType), true},
		{RealType, false},
		{StringValue, false},
	}
	for _, tt := range tests {
		if got := IsIntegral(tt.t); got != tt.want {
			t.Errorf("IsIntegral(%s) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric(RealType) {
		t.Error("Real should be numeric")
	}
	if !IsNumeric(ComplexType) {
		t.Error("Complex should be numeric")
	}
	if IsNumeric(StringValue) {
		t.Error("String should not be numeric")
	}
}

func TestIsStringLike(t *testing.T) {
	arr := NewArray(CharType, NewRange(0, 9, IntegerType))
	if !IsStringLike(arr) {
		t.Error("array of char should be string-like")
	}
	if !IsStringLike(CharType) {
		t.Error("Char should be string-like")
	}
	if !IsStringLike(StringValue) {
		t.Error("String should be string-like")
	}
	if IsStringLike(IntegerType) {
		t.Error("Integer should not be string-like")
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Type
		wantOK  bool
		wantRes Type
	}{
		{"integer/integer", IntegerType, IntegerType, true, IntegerType},
		{"integer/real", IntegerType, RealType, true, RealType},
		{"integer/int64", IntegerType, Int64Type, true, Int64Type},
		{"real/complex", RealType, ComplexType, true, ComplexType},
		{"boolean/boolean", BooleanType, BooleanType, true, BooleanType},
		{"boolean/integer", BooleanType, IntegerType, false, nil},
		{"record/record structural", NewRecord("", &FieldType{Name: "X", Type: IntegerType}), NewRecord("", &FieldType{Name: "X", Type: IntegerType}), true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compatible(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Compatible(%s, %s) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if tt.wantRes != nil && !Equal(got, tt.wantRes) {
				t.Errorf("Compatible(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.wantRes)
			}
		})
	}
}

func TestAssignableScalarWidening(t *testing.T) {
	res, ok := Assignable(Int64Type, IntegerType)
	if !ok || !Equal(res, Int64Type) {
		t.Errorf("Integer should be assignable to Int64, got %v %v", res, ok)
	}
	res, ok = Assignable(RealType, IntegerType)
	if !ok || !Equal(res, RealType) {
		t.Errorf("Integer should be assignable to Real, got %v %v", res, ok)
	}
	_, ok = Assignable(IntegerType, RealType)
	if ok {
		t.Error("Real should not be assignable to Integer")
	}
}

func TestAssignablePointerNil(t *testing.T) {
	ptr := NewPointer(IntegerType)
	res, ok := Assignable(ptr, Nil)
	if !ok || !Equal(res, ptr) {
		t.Errorf("Nil should be assignable to pointer type, got %v %v", res, ok)
	}
}

func TestAssignableSetEmpty(t *testing.T) {
	target := NewSet(NewRange(1, 5, IntegerType), IntegerType, DefaultMaxSetSize)
	empty := &SetType{}
	res, ok := Assignable(target, empty)
	if !ok {
		t.Fatal("empty set literal should be assignable to any set")
	}
	got, ok2 := res.(*SetType)
	if !ok2 || !Equal(got.Elem, target.Elem) {
		t.Errorf("Assignable(set, empty) = %v, want element type adopted from target", res)
	}
}

func TestAssignableCharArrayFromString(t *testing.T) {
	target := NewArray(CharType, NewRange(0, 9, IntegerType))
	_, ok := Assignable(target, NewString(5))
	if !ok {
		t.Error("string should be assignable to sufficiently sized char array")
	}
}

func TestAssignableRecordStructural(t *testing.T) {
	a := NewRecord("Point", &FieldType{Name: "X", Type: IntegerType}, &FieldType{Name: "Y", Type: IntegerType})
	b := NewRecord("Point", &FieldType{Name: "X", Type: IntegerType}, &FieldType{Name: "Y", Type: IntegerType})
	if _, ok := Assignable(a, b); !ok {
		t.Error("structurally identical records should be assignable")
	}
}
