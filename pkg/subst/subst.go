// Package subst implements substitution of an arbitrary expression for x,
// promoting atomic trig/power/exponential nodes to their composed
// (chain-rule) counterparts as required by the differentiator's Chain case.
package subst

import (
	"github.com/MT-0606/Coding-Calculus/pkg/expr"
	"github.com/MT-0606/Coding-Calculus/pkg/simplify"
)

// Substitute replaces every occurrence of VarX in e with r, promoting Sin,
// Cos, Pow, and Exponential to their composed forms. Tan is left
// unchanged rather than promoted (see the Open Question resolutions in
// DESIGN.md for why). Csc/Sec/Cot
// rewrite to 1/sin(r), 1/cos(r), cos(r)/sin(r). ArcXxx variants are
// invariant: they only ever operate on x in this engine. The result is
// simplified before return.
func Substitute(e expr.Expr, r expr.Expr) expr.Expr {
	return simplify.Simplify(substitute(e, r))
}

func substitute(e, r expr.Expr) expr.Expr {
	switch t := e.(type) {
	case *expr.Const:
		return t
	case *expr.VarX:
		return r
	case *expr.VarY, *expr.DerivY:
		return t

	case *expr.Pow:
		if t.IsRationalExponent() {
			n, d := t.RationalExponent()
			return expr.NewPowCRat(r, n, d)
		}
		return expr.NewPowCReal(r, t.Exponent())

	case *expr.Exponential:
		return expr.NewExpC(scaleExponentialArg(t, r))

	case *expr.AddSub:
		return expr.NewAddSub(substitute(t.Left(), r), substitute(t.Right(), r), t.Op())

	case *expr.Mul:
		return expr.NewMul(substitute(t.Left(), r), substitute(t.Right(), r))

	case *expr.Div:
		return expr.NewDiv(substitute(t.Left(), r), substitute(t.Right(), r))

	case *expr.Sin:
		return expr.NewSinC(r)
	case *expr.Cos:
		return expr.NewCosC(r)
	case *expr.Tan:
		return t
	case *expr.Csc:
		return expr.NewDiv(expr.NewConstInt(1), expr.NewSinC(r))
	case *expr.Sec:
		return expr.NewDiv(expr.NewConstInt(1), expr.NewCosC(r))
	case *expr.Cot:
		return expr.NewDiv(expr.NewCosC(r), expr.NewSinC(r))

	case *expr.ArcSin, *expr.ArcCos, *expr.ArcTan, *expr.ArcCsc, *expr.ArcSec, *expr.ArcCot:
		return t

	case *expr.SinC:
		return expr.NewSinC(substitute(t.Inner(), r))
	case *expr.CosC:
		return expr.NewCosC(substitute(t.Inner(), r))
	case *expr.PowC:
		inner := substitute(t.Inner(), r)
		if t.IsRationalExponent() {
			n, d := t.RationalExponent()
			return expr.NewPowCRat(inner, n, d)
		}
		return expr.NewPowCReal(inner, t.Exponent())
	case *expr.ExpC:
		return expr.NewExpC(substitute(t.Inner(), r))
	case *expr.Sqrt:
		return expr.NewSqrt(substitute(t.Inner(), r))
	case *expr.Chain:
		return expr.NewChain(t.Outer(), substitute(t.Inner(), r))

	default:
		return t
	}
}

func scaleExponentialArg(e *expr.Exponential, r expr.Expr) expr.Expr {
	if e.IsRationalCoefficient() {
		n, d := e.RationalCoefficient()
		if n == d {
			return r
		}
		return expr.NewMul(expr.NewConstRat(n, d), r)
	}
	if e.Coefficient() == 1 {
		return r
	}
	return expr.NewMul(expr.NewConstReal(e.Coefficient()), r)
}
