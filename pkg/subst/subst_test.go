package subst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MT-0606/Coding-Calculus/pkg/expr"
)

func TestAtomicPromotion(t *testing.T) {
	r := expr.NewAddSub(expr.NewVarX(), expr.NewConstInt(1), expr.OpAdd)

	tests := []struct {
		name string
		e    expr.Expr
		want string
	}{
		{"sin promotes", expr.NewSin(), "sin(x + 1)"},
		{"cos promotes", expr.NewCos(), "cos(x + 1)"},
		{"tan does not promote", expr.NewTan(), "tan(x)"},
		{"pow promotes", expr.NewPowInt(3), "(x + 1)^3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.e, r).String())
		})
	}
}

func TestCscSecCotRewrite(t *testing.T) {
	r := expr.NewVarX()
	assert.Equal(t, "1/sin(x)", Substitute(expr.NewCsc(), r).String())
	assert.Equal(t, "1/cos(x)", Substitute(expr.NewSec(), r).String())
	assert.Equal(t, "cos(x)/sin(x)", Substitute(expr.NewCot(), r).String())
}

func TestArcInvariant(t *testing.T) {
	r := expr.NewAddSub(expr.NewVarX(), expr.NewConstInt(2), expr.OpAdd)
	assert.Equal(t, "arcsin(x)", Substitute(expr.NewArcSin(), r).String())
	assert.Equal(t, "arctan(x)", Substitute(expr.NewArcTan(), r).String())
}

func TestSubstitutionLaw(t *testing.T) {
	// evaluate(E.substitute(r), x) ~= evaluate(E, evaluate(r, x))
	r := expr.NewAddSub(expr.NewMul(expr.NewConstInt(2), expr.NewVarX()), expr.NewConstInt(1), expr.OpAdd)
	es := []expr.Expr{
		expr.NewSin(),
		expr.NewCos(),
		expr.NewPowInt(3),
		expr.NewExponentialInt(1),
	}
	for _, e := range es {
		substituted := Substitute(e, r)
		for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
			want := e.Evaluate(r.Evaluate(x))
			got := substituted.Evaluate(x)
			if math.IsNaN(want) || math.IsNaN(got) {
				continue
			}
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}
