package ptr

import "testing"

func TestRoundTrip(t *testing.T) {
	if e, a := "eo", ToString(String("eo")); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if e, a := 42, ToInt(Int(42)); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if e, a := int64(7), *Int64(7); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if e, a := true, ToBool(Bool(true)); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestNil(t *testing.T) {
	if a := ToString(nil); len(a) != 0 {
		t.Errorf("expected empty string, got %q", a)
	}
	if a := ToInt(nil); a != 0 {
		t.Errorf("expected zero, got %v", a)
	}
	if a := ToBool(nil); a {
		t.Errorf("expected false, got %v", a)
	}
}

func TestEmptyStringIsNotNil(t *testing.T) {
	if p := String(""); p == nil {
		t.Fatalf("expected non-nil pointer for empty string")
	}
}

func TestDistinctPointers(t *testing.T) {
	a, b := String("x"), String("x")
	if a == b {
		t.Errorf("expected distinct pointers")
	}
}
