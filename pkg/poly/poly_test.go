package poly

import "testing"

func TestPlusMinusTimes(t *testing.T) {
	a := New()
	a.Set(2, 1)
	a.Set(1, 2)

	b := New()
	b.Set(1, 1)
	b.Set(0, 3)

	sum := Plus(a, b)
	if sum.Terms[2] != 1 || sum.Terms[1] != 3 || sum.Terms[0] != 3 {
		t.Fatalf("unexpected sum: %#v", sum.Terms)
	}

	diff := Minus(a, b)
	if diff.Terms[2] != 1 || diff.Terms[1] != 1 || diff.Terms[0] != -3 {
		t.Fatalf("unexpected difference: %#v", diff.Terms)
	}

	prod := Times(a, b)
	// (x^2 + 2x) * (x + 3) = x^3 + 3x^2 + 2x^2 + 6x = x^3 + 5x^2 + 6x
	if prod.Terms[3] != 1 || prod.Terms[2] != 5 || prod.Terms[1] != 6 {
		t.Fatalf("unexpected product: %#v", prod.Terms)
	}
}

func TestSetDropsZero(t *testing.T) {
	p := New()
	p.Set(3, 0)
	if _, present := p.Terms[3]; present {
		t.Error("Set with a zero coefficient should not store a term")
	}
}

func TestInvalidPropagates(t *testing.T) {
	inv := Invalid()
	ok := New()
	if Plus(inv, ok).OK {
		t.Error("Plus with an invalid operand should stay invalid")
	}
	if Times(ok, inv).OK {
		t.Error("Times with an invalid operand should stay invalid")
	}
}

func TestDegree(t *testing.T) {
	p := New()
	p.Set(0, 5)
	p.Set(4, 1)
	p.Set(2, 3)
	deg, ok := p.Degree()
	if !ok || deg != 4 {
		t.Errorf("Degree() = %d, %v; want 4, true", deg, ok)
	}

	if _, ok := New().Degree(); ok {
		t.Error("Degree of the zero polynomial should report ok=false")
	}
}
