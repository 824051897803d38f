package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStableTextualForms(t *testing.T) {
	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"pow", NewPowInt(6), "x^6"},
		{"sin", NewSin(), "sin(x)"},
		{"cos", NewCos(), "cos(x)"},
		{"tan", NewTan(), "tan(x)"},
		{"arcsin", NewArcSin(), "arcsin(x)"},
		{"powc", NewPowCInt(NewVarX(), 3), "(x)^3"},
		{"exponential", NewExponentialInt(2), "e^(2*x)"},
		{"sqrt-of-diff", NewSqrt(NewAddSub(NewConstInt(1), NewPowInt(2), OpSub)), "sqrt(1 - x^2)"},
		{"rational literal", NewConstRat(3, 4), "3/4"},
		{"integer literal denominator one", NewConstRat(6, 2), "3"},
		{"sum no outer parens", NewAddSub(NewVarX(), NewConstInt(1), OpAdd), "x + 1"},
		{"product wraps addsub child", NewMul(NewAddSub(NewVarX(), NewConstInt(1), OpAdd), NewVarX()), "(x + 1)*x"},
		{"fn squared", NewMul(NewSin(), NewSin()), "sin^2(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.String())
		})
	}
}

func TestEvaluate(t *testing.T) {
	assert.InDelta(t, 64.0, NewPowInt(6).Evaluate(2), 1e-9)
	assert.InDelta(t, 1.0, NewSin().Evaluate(math.Pi/2), 1e-9)
	assert.InDelta(t, math.E, NewExponentialInt(1).Evaluate(1), 1e-9)

	// Division by zero yields NaN.
	div := NewDiv(NewConstInt(1), NewConstInt(0))
	assert.True(t, math.IsNaN(div.Evaluate(0)))

	// VarY and DerivY always evaluate to NaN.
	assert.True(t, math.IsNaN(NewVarY().Evaluate(3)))
	assert.True(t, math.IsNaN(NewDerivY().Evaluate(3)))
}

func TestArcDomainGuards(t *testing.T) {
	assert.True(t, math.IsNaN(NewArcSin().Evaluate(2)))
	assert.True(t, math.IsNaN(NewArcCos().Evaluate(-2)))
	assert.True(t, math.IsNaN(NewArcCsc().Evaluate(0.5)))
	assert.False(t, math.IsNaN(NewArcTan().Evaluate(1e9)))
}

func TestToFromPolynomialRoundTrip(t *testing.T) {
	// x^2 + 2x + x + 3 - 1, built left-associatively like a parser would.
	e := NewAddSub(
		NewAddSub(
			NewAddSub(
				NewAddSub(NewPowInt(2), NewMul(NewConstInt(2), NewVarX()), OpAdd),
				NewVarX(), OpAdd),
			NewConstInt(3), OpAdd),
		NewConstInt(1), OpSub)

	p := ToPolynomial(e)
	if !p.OK {
		t.Fatal("expected e to be representable as a polynomial")
	}
	assert.InDelta(t, 1.0, p.Terms[2], 1e-9)
	assert.InDelta(t, 3.0, p.Terms[1], 1e-9)
	assert.InDelta(t, 2.0, p.Terms[0], 1e-9)

	rebuilt := FromPolynomial(p)
	assert.Equal(t, "x^2 + 3*x + 2", rebuilt.String())
}

func TestToPolynomialRejectsTrig(t *testing.T) {
	p := ToPolynomial(NewAddSub(NewSin(), NewVarX(), OpAdd))
	assert.False(t, p.OK)
}
