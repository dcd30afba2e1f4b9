package pico

import "testing"

func TestDynEqEquality(t *testing.T) {
	a := newDynEq(pair{A: "x", B: 1})
	b := newDynEq(pair{A: "x", B: 1})
	c := newDynEq(pair{A: "x", B: 2})

	if !a.Equal(b) {
		t.Fatalf("expected equal pairs to compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected differing pairs to compare unequal")
	}
}

func TestDynEqZeroValueNeverEqual(t *testing.T) {
	var zero DynEq
	a := newDynEq(1)
	if zero.Equal(zero) {
		t.Fatalf("zero-value DynEq must never equal itself")
	}
	if zero.Equal(a) || a.Equal(zero) {
		t.Fatalf("zero-value DynEq must never equal a boxed value")
	}
}

func TestDynEqValueStableAddress(t *testing.T) {
	d := newDynEq("hello")
	p1 := dynEqValue[string](d)
	p2 := dynEqValue[string](d)
	if p1 != p2 {
		t.Fatalf("dynEqValue returned different addresses for the same DynEq")
	}
	if *p1 != "hello" {
		t.Fatalf("dynEqValue = %q, want hello", *p1)
	}
}
