package constant

import (
	"testing"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

var zeroPos = lexer.Position{}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		l, r Const
		want string
	}{
		{"int + int", NewInt(zeroPos, 3), NewInt(zeroPos, 4), "7"},
		{"int + real", NewInt(zeroPos, 3), NewReal(zeroPos, 0.5), "3.5"},
		{"string + char", NewString(zeroPos, "ab"), NewChar(zeroPos, 'c'), `"abc"`},
		{"char + char", NewChar(zeroPos, 'a'), NewChar(zeroPos, 'b'), `"ab"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.l, tt.r)
			if err != nil {
				t.Fatalf("Add returned error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Add(%s, %s) = %s, want %s", tt.l, tt.r, got, tt.want)
			}
		})
	}
}

func TestAddInvalidOperand(t *testing.T) {
	_, err := Add(NewBool(zeroPos, true), NewBool(zeroPos, false))
	if err == nil {
		t.Fatal("expected error adding two bools")
	}
}

func TestSubMulDiv(t *testing.T) {
	if got, _ := Sub(NewInt(zeroPos, 10), NewInt(zeroPos, 4)); got.String() != "6" {
		t.Errorf("Sub = %s, want 6", got)
	}
	if got, _ := Mul(NewInt(zeroPos, 3), NewInt(zeroPos, 4)); got.String() != "12" {
		t.Errorf("Mul = %s, want 12", got)
	}
	got, _ := Div(NewInt(zeroPos, 7), NewInt(zeroPos, 2))
	if _, ok := got.(*RealConst); !ok {
		t.Errorf("Div of two ints should yield Real, got %T", got)
	}
}

func TestIntDivAndMod(t *testing.T) {
	got, err := IntDiv(NewInt(zeroPos, 7), NewInt(zeroPos, 2))
	if err != nil || got.String() != "3" {
		t.Errorf("IntDiv(7,2) = %v, %v, want 3", got, err)
	}
	got, err = Mod(NewInt(zeroPos, 7), NewInt(zeroPos, 2))
	if err != nil || got.String() != "1" {
		t.Errorf("Mod(7,2) = %v, %v, want 1", got, err)
	}
}

func TestBitwiseRejectsNonInt(t *testing.T) {
	if _, err := And(NewReal(zeroPos, 1.0), NewInt(zeroPos, 2)); err == nil {
		t.Error("And should reject a real operand")
	}
}

func TestToIntRoundTrip(t *testing.T) {
	enumT := newTestEnum()
	tests := []struct {
		c    Const
		want int64
	}{
		{NewInt(zeroPos, 5), 5},
		{NewChar(zeroPos, 'A'), 65},
		{NewBool(zeroPos, true), 1},
		{NewBool(zeroPos, false), 0},
		{NewEnum(zeroPos, enumT, 2), 2},
	}
	for _, tt := range tests {
		got, ok := ToInt(tt.c)
		if !ok || got != tt.want {
			t.Errorf("ToInt(%s) = %d, %v, want %d", tt.c, got, ok, tt.want)
		}
	}
}

func TestToRealPromotesInt(t *testing.T) {
	r, ok := ToReal(NewInt(zeroPos, 4))
	if !ok || r.Value != 4.0 {
		t.Errorf("ToReal(Int(4)) = %v, want 4.0", r)
	}
}
