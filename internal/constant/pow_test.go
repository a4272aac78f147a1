package constant

import "testing"

func TestPowInteger(t *testing.T) {
	got, err := Pow(NewInt(zeroPos, 2), 10)
	if err != nil {
		t.Fatalf("Pow error: %v", err)
	}
	if got.String() != "1024" {
		t.Errorf("Pow(2, 10) = %s, want 1024", got)
	}
}

func TestPowNegativeExponentTruncatesToZero(t *testing.T) {
	got, err := Pow(NewInt(zeroPos, 2), -2)
	if err != nil {
		t.Fatalf("Pow error: %v", err)
	}
	if got.String() != "0" {
		t.Errorf("Pow(2, -2) = %s, want 0 (integer reciprocal truncates)", got)
	}
}

func TestPowReal(t *testing.T) {
	got, err := Pow(NewReal(zeroPos, 2.0), 3)
	if err != nil {
		t.Fatalf("Pow error: %v", err)
	}
	if got.String() != "8" {
		t.Errorf("Pow(2.0, 3) = %s, want 8", got)
	}
}

func TestPowerGeneralExponent(t *testing.T) {
	got, err := Power(NewReal(zeroPos, 4.0), NewReal(zeroPos, 0.5))
	if err != nil {
		t.Fatalf("Power error: %v", err)
	}
	r, ok := got.(*RealConst)
	if !ok {
		t.Fatalf("Power should return a Real constant, got %T", got)
	}
	if r.Value < 1.999 || r.Value > 2.001 {
		t.Errorf("Power(4, 0.5) = %v, want ~2.0", r.Value)
	}
}
