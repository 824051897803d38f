// Package implicit solves dy/dx from an equation L = R over {x, y, y'} by
// implicit differentiation: differentiate both sides, split the result
// linearly in y', and isolate y'.
package implicit

import (
	"errors"

	"github.com/MT-0606/Coding-Calculus/pkg/calculus"
	"github.com/MT-0606/Coding-Calculus/pkg/expr"
	"github.com/MT-0606/Coding-Calculus/pkg/simplify"
)

// ErrNonlinear is returned when D cannot be split into a·y' + b: either y'
// appears on both sides of a product, or it occurs inside a variant the
// splitter does not know how to decompose (e.g. the denominator of a Div).
var ErrNonlinear = errors.New("implicit: equation is not linear in y'")

// Equation is L = R, both sides expressions over {x, y, y'}.
type Equation struct {
	L, R expr.Expr
}

// New builds an implicit equation from its two sides.
func New(l, r expr.Expr) Equation {
	return Equation{L: l, R: r}
}

// Derivative computes dy/dx. On success it returns the simplified form of
// (-1 * b) / a from the a*y' + b decomposition of d(L-R)/dx. On failure
// (the split is nonlinear in y') it returns expr.NaN() alongside a non-nil
// error describing why — an explicit failure marker plus its cause, in
// place of a bare untyped sentinel.
func (eq Equation) Derivative() (expr.Expr, error) {
	dl := calculus.Derivative(eq.L)
	dr := calculus.Derivative(eq.R)
	d := simplify.Simplify(expr.NewAddSub(dl, dr, expr.OpSub))

	a, b, err := split(d)
	if err != nil {
		return expr.NaN(), err
	}
	if isZeroConst(a) {
		return expr.NaN(), errors.New("implicit: y' does not appear in the differentiated equation")
	}

	negB := expr.NewMul(expr.NewConstInt(-1), b)
	return simplify.Simplify(expr.NewDiv(negB, a)), nil
}

// split decomposes d into (a, b) such that d == a*y' + b.
func split(d expr.Expr) (a, b expr.Expr, err error) {
	if _, ok := d.(*expr.DerivY); ok {
		return expr.NewConstInt(1), expr.NewConstInt(0), nil
	}

	if !containsDerivY(d) {
		return expr.NewConstInt(0), d, nil
	}

	switch t := d.(type) {
	case *expr.AddSub:
		al, bl, err := split(t.Left())
		if err != nil {
			return nil, nil, err
		}
		ar, br, err := split(t.Right())
		if err != nil {
			return nil, nil, err
		}
		return simplify.Simplify(expr.NewAddSub(al, ar, t.Op())),
			simplify.Simplify(expr.NewAddSub(bl, br, t.Op())), nil

	case *expr.Mul:
		lHas := containsDerivY(t.Left())
		rHas := containsDerivY(t.Right())
		if lHas && rHas {
			return nil, nil, ErrNonlinear
		}
		if lHas {
			as, bs, err := split(t.Left())
			if err != nil {
				return nil, nil, err
			}
			return simplify.Simplify(expr.NewMul(as, t.Right())),
				simplify.Simplify(expr.NewMul(bs, t.Right())), nil
		}
		as, bs, err := split(t.Right())
		if err != nil {
			return nil, nil, err
		}
		return simplify.Simplify(expr.NewMul(t.Left(), as)),
			simplify.Simplify(expr.NewMul(t.Left(), bs)), nil

	case *expr.Div:
		if containsDerivY(t.Right()) {
			return nil, nil, ErrNonlinear
		}
		an, bn, err := split(t.Left())
		if err != nil {
			return nil, nil, err
		}
		return simplify.Simplify(expr.NewDiv(an, t.Right())),
			simplify.Simplify(expr.NewDiv(bn, t.Right())), nil

	default:
		return nil, nil, ErrNonlinear
	}
}

// ContainsDerivY reports whether e mentions y' anywhere in its tree. It is
// exported so a caller can pre-validate an equation (e.g. reject one with
// no y' term at all) before attempting Derivative.
func ContainsDerivY(e expr.Expr) bool {
	return containsDerivY(e)
}

// containsDerivY reports whether e mentions y' anywhere in its tree.
func containsDerivY(e expr.Expr) bool {
	switch t := e.(type) {
	case *expr.DerivY:
		return true
	case *expr.Const, *expr.VarX, *expr.VarY:
		return false
	case *expr.AddSub:
		return containsDerivY(t.Left()) || containsDerivY(t.Right())
	case *expr.Mul:
		return containsDerivY(t.Left()) || containsDerivY(t.Right())
	case *expr.Div:
		return containsDerivY(t.Left()) || containsDerivY(t.Right())
	case *expr.SinC:
		return containsDerivY(t.Inner())
	case *expr.CosC:
		return containsDerivY(t.Inner())
	case *expr.PowC:
		return containsDerivY(t.Inner())
	case *expr.ExpC:
		return containsDerivY(t.Inner())
	case *expr.Sqrt:
		return containsDerivY(t.Inner())
	case *expr.Chain:
		return containsDerivY(t.Outer()) || containsDerivY(t.Inner())
	default:
		return false
	}
}

func isZeroConst(e expr.Expr) bool {
	c, ok := e.(*expr.Const)
	return ok && c.Real() == 0
}
